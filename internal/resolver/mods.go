package resolver

import (
	"context"
	"encoding/xml"
	"strconv"

	"citator/internal/citation"
)

// modsResolver fetches a sub-cite's MODS metadata document from GPO and
// extracts the parallel references embedded in its extension blocks: the
// public/private law a statute enacts, and the originating bill of a law.
type modsResolver struct {
	sub citation.Type
}

func newMODSResolver(sub citation.Type) *modsResolver {
	return &modsResolver{sub: sub}
}

func (r *modsResolver) Name() string {
	return "mods_" + string(r.sub)
}

func (r *modsResolver) links(cite *citation.Citation) citation.Links {
	switch r.sub {
	case citation.TypeStatute:
		if cite.Statute != nil {
			return cite.Statute.Links
		}
	case citation.TypeLaw:
		if cite.Law != nil {
			return cite.Law.Links
		}
	}
	return nil
}

func (r *modsResolver) Applies(cite *citation.Citation, env *Environment) bool {
	link := r.links(cite).Get(citation.SourceUSGPO.Name)
	return link != nil && link.MODS != ""
}

// MODS document shape, limited to the extension fields this resolver reads.
type modsDocument struct {
	XMLName    xml.Name        `xml:"mods"`
	Extensions []modsExtension `xml:"extension"`
}

type modsExtension struct {
	Laws        []modsLaw  `xml:"law"`
	Bills       []modsBill `xml:"bill"`
	ShortTitle  string     `xml:"shortTitle"`
	SearchTitle string     `xml:"searchTitle"`
}

type modsLaw struct {
	Congress  string `xml:"congress,attr"`
	Number    string `xml:"number,attr"`
	IsPrivate string `xml:"isPrivate,attr"`
}

type modsBill struct {
	Congress string `xml:"congress,attr"`
	Number   string `xml:"number,attr"`
	Type     string `xml:"type,attr"`
	Priority string `xml:"priority,attr"`
}

func (r *modsResolver) Resolve(ctx context.Context, cite *citation.Citation, env *Environment) Outcome {
	link := r.links(cite).Get(citation.SourceUSGPO.Name)

	body, _, err := env.Client.Get(ctx, link.MODS)
	if err != nil {
		if env.Logger != nil {
			env.Logger.DebugContext(ctx, "mods fetch failed", "url", link.MODS, "error", err)
		}
		return Outcome{}
	}

	var doc modsDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		if env.Logger != nil {
			env.Logger.WarnContext(ctx, "mods parse failed", "url", link.MODS, "error", err)
		}
		return Outcome{}
	}

	// A MODS document repeats the same reference across extension blocks;
	// dedupe by identity within this fetch, seeded with the identities the
	// citation already carries so a law's own MODS never re-emits that law.
	seen := existingIDs(cite)
	var found []*citation.Citation

	for _, ext := range doc.Extensions {
		for _, law := range ext.Laws {
			congress, err1 := strconv.Atoi(law.Congress)
			number, err2 := strconv.Atoi(law.Number)
			if err1 != nil || err2 != nil {
				continue
			}
			lawType := "public"
			if law.IsPrivate == "true" {
				lawType = "private"
			}
			id := citation.LawID(lawType, congress, number)
			if seen[id] {
				continue
			}
			seen[id] = true
			found = append(found, citation.NewLaw(lawType, congress, number))
		}

		for _, bill := range ext.Bills {
			// Only the bill GPO marks "primary" is taken; whether that
			// reliably means the originating bill is not established.
			if bill.Priority != "primary" {
				continue
			}
			congress, err1 := strconv.Atoi(bill.Congress)
			number, err2 := strconv.Atoi(bill.Number)
			if err1 != nil || err2 != nil || bill.Type == "" {
				continue
			}
			id := citation.BillID(congress, bill.Type, number)
			if seen[id] {
				continue
			}
			seen[id] = true
			b := citation.NewBill(congress, bill.Type, number)
			b.Bill.IsEnacted = true
			found = append(found, b)
		}
	}

	return Outcome{Found: found, Title: pickTitle(doc.Extensions)}
}

// pickTitle prefers the structured short title over the plain search title.
func pickTitle(exts []modsExtension) string {
	var search string
	for _, ext := range exts {
		if ext.ShortTitle != "" {
			return ext.ShortTitle
		}
		if search == "" {
			search = ext.SearchTitle
		}
	}
	return search
}

// existingIDs collects the identities already present on a citation and its
// sub-cites.
func existingIDs(cite *citation.Citation) map[string]bool {
	seen := make(map[string]bool)
	if cite.Statute != nil {
		seen[cite.Statute.ID] = true
	}
	if cite.Law != nil {
		seen[cite.Law.ID] = true
	}
	if cite.USC != nil {
		seen[cite.USC.ID] = true
	}
	if cite.Bill != nil {
		seen[cite.Bill.ID] = true
	}
	for _, p := range cite.Parallel {
		for id := range existingIDs(p) {
			seen[id] = true
		}
	}
	return seen
}
