package resolver

import (
	"context"
	"encoding/json"
	"net/url"

	"citator/internal/citation"
)

// caseSearchEndpoint is a var so tests can point the resolver at a stub.
var caseSearchEndpoint = "https://www.courtlistener.com/api/rest/v3/search/"

// caseSearchResolver runs an authenticated CourtListener search built from
// the reporter sub-cite's existing search link. A single match resolves the
// citation to a concrete case: the court name and a direct landing link are
// written onto the reporter sub-cite, and the case name and canonical string
// are suggested through the outcome. Zero or multiple matches leave the
// search link for a human to resolve.
type caseSearchResolver struct{}

func (r *caseSearchResolver) Name() string {
	return "case_search"
}

func (r *caseSearchResolver) Applies(cite *citation.Citation, env *Environment) bool {
	if cite.Reporter == nil || !env.CourtListener.Enabled() {
		return false
	}
	link := cite.Reporter.Links.Get(citation.SourceCourtListener.Name)
	if link == nil || link.Landing == "" {
		return false
	}
	// A search link carries query parameters; a direct landing link (set
	// once a search has resolved) does not.
	u, err := url.Parse(link.Landing)
	return err == nil && u.RawQuery != ""
}

type caseSearchResponse struct {
	Count   int          `json:"count"`
	Results []caseResult `json:"results"`
}

type caseResult struct {
	CaseName    string   `json:"caseName"`
	Court       string   `json:"court"`
	Citation    []string `json:"citation"`
	AbsoluteURL string   `json:"absolute_url"`
}

func (r *caseSearchResolver) Resolve(ctx context.Context, cite *citation.Citation, env *Environment) Outcome {
	link := cite.Reporter.Links.Get(citation.SourceCourtListener.Name)

	searchURL, err := url.Parse(link.Landing)
	if err != nil {
		return Outcome{}
	}
	params := searchURL.Query()
	params.Set("format", "json")

	body, err := env.Client.GetWithAuth(ctx, caseSearchEndpoint+"?"+params.Encode(),
		env.CourtListener.Username, env.CourtListener.Password)
	if err != nil {
		if env.Logger != nil {
			env.Logger.DebugContext(ctx, "case search failed", "citation", cite.Citation, "error", err)
		}
		return Outcome{}
	}

	var resp caseSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		if env.Logger != nil {
			env.Logger.WarnContext(ctx, "case search parse failed", "citation", cite.Citation, "error", err)
		}
		return Outcome{}
	}

	// Anything but exactly one match stays ambiguous; the search link is
	// left in place for a display layer to resolve.
	if len(resp.Results) != 1 {
		return Outcome{}
	}
	match := resp.Results[0]

	cite.Reporter.TypeName = match.Court
	if match.AbsoluteURL != "" {
		cite.Reporter.Links.Set(&citation.Link{
			Source:  citation.SourceCourtListener,
			Landing: citation.SourceCourtListener.Link + match.AbsoluteURL,
		})
	}

	out := Outcome{Title: match.CaseName}
	if len(match.Citation) > 0 {
		out.Citation = match.Citation[0]
	}
	return out
}
