package citation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Coverage boundaries for the external sources the link templates target.
// GPO's digitized Statutes at Large start at volume 65 (82nd Congress);
// earlier volumes are disambiguated against the historical ledger instead.
// GPO public-law packages start with the 104th Congress, GovTrack's bill
// records with the 93rd.
const (
	GPOFirstStatuteVolume = 65
	GPOFirstLawCongress   = 104
	GovTrackFirstCongress = 93
)

// StatuteID computes the stable identifier for a Statutes at Large citation.
func StatuteID(volume, page string) string {
	return fmt.Sprintf("stat/%s/%s", volume, page)
}

// LawID computes the stable identifier for a public or private law.
func LawID(lawType string, congress, number int) string {
	return fmt.Sprintf("us-law/%s/%d/%d", lawType, congress, number)
}

// USCID computes the stable identifier for a US Code section.
func USCID(title, section string) string {
	return fmt.Sprintf("usc/%s/%s", title, section)
}

// BillID computes the stable identifier for a congressional bill.
func BillID(congress int, billType string, number int) string {
	return fmt.Sprintf("us-bill/%d/%s/%d", congress, billType, number)
}

// CFRID computes the stable identifier for a CFR citation.
func CFRID(title, part, section string) string {
	if section == "" {
		return fmt.Sprintf("cfr/%s/%s", title, part)
	}
	return fmt.Sprintf("cfr/%s/%s/%s", title, part, section)
}

// FedRegID computes the stable identifier for a Federal Register notice.
func FedRegID(volume, page string) string {
	return fmt.Sprintf("fedreg/%s/%s", volume, page)
}

// ReporterID computes the stable identifier for a case reporter citation.
func ReporterID(reporter, volume, page string) string {
	r := strings.ToLower(strings.ReplaceAll(reporter, " ", ""))
	return fmt.Sprintf("reporter/%s/%s/%s", r, volume, page)
}

// NewStatute builds a statute citation with identity and source links.
// Volumes within GPO coverage get an authoritative govinfo link with a MODS
// address the metadata-document resolver can follow; earlier volumes carry
// no links until ledger expansion attaches the historical source.
func NewStatute(volume, page string) *Citation {
	s := &Statute{
		ID:     StatuteID(volume, page),
		Links:  Links{},
		Volume: volume,
		Page:   page,
	}
	if vol, err := strconv.Atoi(volume); err == nil && vol >= GPOFirstStatuteVolume {
		pkg := fmt.Sprintf("STATUTE-%s", volume)
		granule := fmt.Sprintf("STATUTE-%s-Pg%s", volume, page)
		s.Links.Set(&Link{
			Source:  SourceUSGPO,
			Landing: fmt.Sprintf("https://www.govinfo.gov/app/details/%s/%s", pkg, granule),
			PDF:     fmt.Sprintf("https://www.govinfo.gov/content/pkg/%s/pdf/%s.pdf", pkg, granule),
			MODS:    fmt.Sprintf("https://www.govinfo.gov/metadata/granule/%s/%s/mods.xml", pkg, granule),
		})
	}
	return &Citation{
		Type:     TypeStatute,
		Statute:  s,
		Citation: s.String(),
	}
}

// NewLaw builds a public or private law citation with identity and source
// links. Recent laws link to govinfo (with MODS metadata); laws within
// GovTrack coverage additionally get a landing link the landing-page
// resolver can follow to the originating bill.
func NewLaw(lawType string, congress, number int) *Citation {
	l := &Law{
		ID:       LawID(lawType, congress, number),
		Links:    Links{},
		Type:     lawType,
		Congress: congress,
		Number:   number,
	}
	if congress >= GPOFirstLawCongress {
		pkg := fmt.Sprintf("PLAW-%d%s%d", congress, lawAbbrev(lawType), number)
		l.Links.Set(&Link{
			Source:  SourceUSGPO,
			Landing: fmt.Sprintf("https://www.govinfo.gov/app/details/%s", pkg),
			PDF:     fmt.Sprintf("https://www.govinfo.gov/content/pkg/%s/pdf/%s.pdf", pkg, pkg),
			MODS:    fmt.Sprintf("https://www.govinfo.gov/metadata/pkg/%s/mods.xml", pkg),
		})
	}
	if lawType == "public" && congress >= GovTrackFirstCongress {
		l.Links.Set(&Link{
			Source:  SourceGovTrack,
			Landing: fmt.Sprintf("https://www.govtrack.us/congress/bills/pl/%d-%d", congress, number),
		})
	}
	return &Citation{
		Type:     TypeLaw,
		Law:      l,
		Citation: l.String(),
	}
}

// NewUSC builds a US Code section citation with an authoritative link to the
// House Office of the Law Revision Counsel. The section-existence validator
// removes the link when the section does not exist in the current edition.
func NewUSC(title, section string, subsections ...string) *Citation {
	u := &USC{
		ID:          USCID(title, section),
		Links:       Links{},
		Title:       title,
		Section:     section,
		Subsections: subsections,
	}
	u.Links.Set(&Link{
		Source: SourceHouse,
		HTML: fmt.Sprintf(
			"https://uscode.house.gov/view.xhtml?req=granuleid:USC-prelim-title%s-section%s&num=0&edition=prelim",
			title, section),
	})
	return &Citation{
		Type:     TypeUSC,
		USC:      u,
		Citation: u.String(),
	}
}

// NewBill builds a congressional bill citation with a GovTrack landing link.
func NewBill(congress int, billType string, number int) *Citation {
	b := &Bill{
		ID:       BillID(congress, billType, number),
		Links:    Links{},
		Congress: congress,
		Type:     billType,
		Number:   number,
	}
	if congress >= GovTrackFirstCongress {
		b.Links.Set(&Link{
			Source:  SourceGovTrack,
			Landing: fmt.Sprintf("https://www.govtrack.us/congress/bills/%d/%s%d", congress, billType, number),
		})
	}
	return &Citation{
		Type:     TypeBill,
		Bill:     b,
		Citation: b.String(),
	}
}

// NewCFR builds a Code of Federal Regulations citation with an eCFR link.
func NewCFR(title, part, section string) *Citation {
	c := &CFR{
		ID:      CFRID(title, part, section),
		Links:   Links{},
		Title:   title,
		Part:    part,
		Section: section,
	}
	landing := fmt.Sprintf("https://www.ecfr.gov/current/title-%s/part-%s", title, part)
	if section != "" {
		landing = fmt.Sprintf("%s/section-%s.%s", landing, part, section)
	}
	c.Links.Set(&Link{Source: SourceECFR, Landing: landing})
	return &Citation{
		Type:     TypeCFR,
		CFR:      c,
		Citation: c.String(),
	}
}

// NewFedReg builds a Federal Register citation with the federalregister.gov
// citation redirect link.
func NewFedReg(volume, page string) *Citation {
	f := &FedReg{
		ID:     FedRegID(volume, page),
		Links:  Links{},
		Volume: volume,
		Page:   page,
	}
	f.Links.Set(&Link{
		Source:  SourceFederalRegister,
		Landing: fmt.Sprintf("https://www.federalregister.gov/citation/%s-FR-%s", volume, page),
	})
	return &Citation{
		Type:     TypeFedReg,
		FedReg:   f,
		Citation: f.String(),
	}
}

// NewReporter builds a case reporter citation with a CourtListener search
// link. The case-search resolver replaces the search link with a direct
// landing link when the search yields exactly one match.
func NewReporter(reporter, volume, page string) *Citation {
	r := &Reporter{
		ID:       ReporterID(reporter, volume, page),
		Links:    Links{},
		Reporter: reporter,
		Volume:   volume,
		Page:     page,
	}
	q := url.Values{}
	q.Set("citation", fmt.Sprintf("%s %s %s", volume, reporter, page))
	r.Links.Set(&Link{
		Source:  SourceCourtListener,
		Landing: "https://www.courtlistener.com/?" + q.Encode(),
	})
	return &Citation{
		Type:     TypeReporter,
		Reporter: r,
		Citation: r.String(),
	}
}

// NewLegisworksLink builds the historical-source link for a ledger entry's
// scanned document. note distinguishes body-page hits from start-page hits.
func NewLegisworksLink(file, note string) *Link {
	src := SourceLegisworks
	src.Note = note
	link := &Link{Source: src}
	if file != "" {
		link.PDF = "https://legisworks.org/sal/" + file
	}
	return link
}

func lawAbbrev(lawType string) string {
	if lawType == "private" {
		return "pvtl"
	}
	return "publ"
}
