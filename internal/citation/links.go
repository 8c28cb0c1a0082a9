package citation

// Source describes where a link points. Note is per-link: a copy of the
// source descriptor carries context such as "page N is inside this
// instrument".
type Source struct {
	Name          string `json:"name"`
	Abbreviation  string `json:"abbreviation"`
	Link          string `json:"link"`
	Authoritative bool   `json:"authoritative"`
	Note          string `json:"note,omitempty"`
}

// Link is one source's set of addresses for a citation.
type Link struct {
	Source  Source `json:"source"`
	Landing string `json:"landing,omitempty"`
	PDF     string `json:"pdf,omitempty"`
	MODS    string `json:"mods,omitempty"`
	HTML    string `json:"html,omitempty"`
	XML     string `json:"xml,omitempty"`
}

// Links maps source name to link descriptor. Concurrent resolvers each write
// only under their own source key, so no locking is needed.
type Links map[string]*Link

// Get returns the link for a source name, or nil.
func (l Links) Get(name string) *Link {
	if l == nil {
		return nil
	}
	return l[name]
}

// Set stores a link under its source name. Sub-cites are constructed with an
// allocated Links map, so the receiver is never nil on the write path.
func (l Links) Set(link *Link) {
	l[link.Source.Name] = link
}

// Delete removes the link for a source name.
func (l Links) Delete(name string) {
	delete(l, name)
}

// Known source descriptors. Links copy these values so a per-link Note never
// leaks between citations.
var (
	SourceUSGPO = Source{
		Name:          "usgpo",
		Abbreviation:  "US GPO",
		Link:          "https://www.govinfo.gov",
		Authoritative: true,
	}
	SourceLegisworks = Source{
		Name:          "legisworks",
		Abbreviation:  "Legisworks",
		Link:          "https://github.com/unitedstates/legisworks-historical-statutes",
		Authoritative: false,
	}
	SourceGovTrack = Source{
		Name:          "govtrack",
		Abbreviation:  "GovTrack.us",
		Link:          "https://www.govtrack.us",
		Authoritative: false,
	}
	SourceCourtListener = Source{
		Name:          "courtlistener",
		Abbreviation:  "CourtListener",
		Link:          "https://www.courtlistener.com",
		Authoritative: false,
	}
	SourceHouse = Source{
		Name:          "house",
		Abbreviation:  "US House",
		Link:          "https://uscode.house.gov",
		Authoritative: true,
	}
	SourceECFR = Source{
		Name:          "ecfr",
		Abbreviation:  "eCFR",
		Link:          "https://www.ecfr.gov",
		Authoritative: true,
	}
	SourceFederalRegister = Source{
		Name:          "federalregister",
		Abbreviation:  "Fed. Reg.",
		Link:          "https://www.federalregister.gov",
		Authoritative: true,
	}
)
