package resolver

import (
	"context"
	"net/http"

	"citator/internal/citation"
)

// uscValidator checks that a cited US Code section exists in the current
// edition. uscode.house.gov answers a request for a nonexistent section
// with a redirect to its not-found page, so the check is issued without
// following redirects and anything but 200 removes the link. Display layers
// must not offer a dead link.
type uscValidator struct{}

func (r *uscValidator) Name() string {
	return "usc_validate"
}

func (r *uscValidator) Applies(cite *citation.Citation, env *Environment) bool {
	if cite.USC == nil {
		return false
	}
	link := cite.USC.Links.Get(citation.SourceHouse.Name)
	return link != nil && link.HTML != ""
}

func (r *uscValidator) Resolve(ctx context.Context, cite *citation.Citation, env *Environment) Outcome {
	link := cite.USC.Links.Get(citation.SourceHouse.Name)

	status, err := env.Client.Status(ctx, link.HTML)
	if err != nil {
		// Transport failure says nothing about the section; keep the link.
		if env.Logger != nil {
			env.Logger.DebugContext(ctx, "usc check failed", "url", link.HTML, "error", err)
		}
		return Outcome{}
	}

	if status != http.StatusOK {
		cite.USC.Links.Delete(citation.SourceHouse.Name)
	}
	return Outcome{}
}
