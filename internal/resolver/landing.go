package resolver

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"

	"citator/internal/citation"
)

// billAddress matches GovTrack's canonical bill page address, e.g.
// /congress/bills/112/hr3261.
var billAddress = regexp.MustCompile(`/congress/bills/(\d+)/([a-z]+?)(\d+)$`)

// landingResolver follows a law's GovTrack landing link. GovTrack redirects
// a public-law address to the page of the bill that became that law; when
// the final address matches the bill pattern, the resolver fetches the
// structured bill record and emits the originating bill as a parallel
// citation.
type landingResolver struct{}

func (r *landingResolver) Name() string {
	return "landing"
}

func (r *landingResolver) Applies(cite *citation.Citation, env *Environment) bool {
	if cite.Law == nil {
		return false
	}
	link := cite.Law.Links.Get(citation.SourceGovTrack.Name)
	return link != nil && link.Landing != ""
}

// billRecord is GovTrack's JSON bill representation, limited to the fields
// the resolver reads.
type billRecord struct {
	Congress           int    `json:"congress"`
	Number             int    `json:"number"`
	Title              string `json:"title"`
	TitleWithoutNumber string `json:"title_without_number"`
}

func (r *landingResolver) Resolve(ctx context.Context, cite *citation.Citation, env *Environment) Outcome {
	link := cite.Law.Links.Get(citation.SourceGovTrack.Name)

	_, finalURL, err := env.Client.Get(ctx, link.Landing)
	if err != nil {
		if env.Logger != nil {
			env.Logger.DebugContext(ctx, "landing fetch failed", "url", link.Landing, "error", err)
		}
		return Outcome{}
	}

	m := billAddress.FindStringSubmatch(finalURL)
	if m == nil {
		return Outcome{}
	}
	congress, _ := strconv.Atoi(m[1])
	billType := m[2]
	number, _ := strconv.Atoi(m[3])

	// Second fetch is sequential on the first: the record address is only
	// known once the redirect has been observed.
	body, _, err := env.Client.Get(ctx, finalURL+".json")
	if err != nil {
		if env.Logger != nil {
			env.Logger.DebugContext(ctx, "bill record fetch failed", "url", finalURL, "error", err)
		}
		return Outcome{}
	}

	var record billRecord
	if err := json.Unmarshal(body, &record); err != nil {
		if env.Logger != nil {
			env.Logger.WarnContext(ctx, "bill record parse failed", "url", finalURL, "error", err)
		}
		return Outcome{}
	}

	title := record.TitleWithoutNumber
	if title == "" {
		title = record.Title
	}

	bill := citation.NewBill(congress, billType, number)
	bill.Bill.IsEnacted = true
	bill.Title = title

	// The bill's own landing link supersedes the search link on the law.
	cite.Law.Links.Delete(citation.SourceGovTrack.Name)

	return Outcome{Found: []*citation.Citation{bill}, Title: title}
}
