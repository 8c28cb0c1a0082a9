// Package citation defines the citation data model and the identity & link
// registry: stable identifiers computed from a citation's defining fields,
// and the per-source link templates for authoritative and third-party
// mirrors of each citation type.
package citation

// Type discriminates the closed set of citation families.
type Type string

const (
	TypeStatute  Type = "statute"  // Statutes at Large, e.g. "43 Stat. 1"
	TypeLaw      Type = "law"      // public/private law, e.g. "Pub. L. 112-29"
	TypeUSC      Type = "usc"      // US Code section, e.g. "12 U.S.C. 95a"
	TypeBill     Type = "bill"     // congressional bill, e.g. "H.R. 3261"
	TypeCFR      Type = "cfr"      // Code of Federal Regulations
	TypeFedReg   Type = "fedreg"   // Federal Register notice
	TypeReporter Type = "reporter" // case reporter, e.g. "520 U.S. 518"
)

// SubTypes lists citation sub-types in the fixed order the parallel-citation
// orchestrator iterates them. Output ordering of resolver results follows
// this order, so it must stay stable.
var SubTypes = []Type{TypeStatute, TypeLaw, TypeUSC, TypeBill, TypeCFR, TypeFedReg, TypeReporter}

// Citation is one parsed legal citation. Exactly one sub-cite matches Type;
// additional sub-cites may be attached when the citation is known to refer
// to several instruments at once (a statute that is also a public law).
type Citation struct {
	Type Type `json:"type"`

	Statute  *Statute  `json:"statute,omitempty"`
	Law      *Law      `json:"law,omitempty"`
	USC      *USC      `json:"usc,omitempty"`
	Bill     *Bill     `json:"bill,omitempty"`
	CFR      *CFR      `json:"cfr,omitempty"`
	FedReg   *FedReg   `json:"fedreg,omitempty"`
	Reporter *Reporter `json:"reporter,omitempty"`

	Title          string `json:"title,omitempty"`
	Citation       string `json:"citation,omitempty"`
	Disambiguation string `json:"disambiguation,omitempty"`

	// Parallel holds citations discovered while resolving this one
	// (a citation-of-a-citation, e.g. the public law a statute enacts).
	Parallel []*Citation `json:"parallel_citations,omitempty"`
}

// Has reports whether the sub-cite for t is present.
func (c *Citation) Has(t Type) bool {
	switch t {
	case TypeStatute:
		return c.Statute != nil
	case TypeLaw:
		return c.Law != nil
	case TypeUSC:
		return c.USC != nil
	case TypeBill:
		return c.Bill != nil
	case TypeCFR:
		return c.CFR != nil
	case TypeFedReg:
		return c.FedReg != nil
	case TypeReporter:
		return c.Reporter != nil
	}
	return false
}

// Statute is a Statutes at Large sub-cite. Volume and page stay strings:
// page references such as "95a" appear in early volumes, and identity must
// preserve the text as cited.
type Statute struct {
	ID     string `json:"id,omitempty"`
	Links  Links  `json:"links,omitempty"`
	Volume string `json:"volume"`
	Page   string `json:"page"`
}

// Law is a public or private law sub-cite.
type Law struct {
	ID       string `json:"id,omitempty"`
	Links    Links  `json:"links,omitempty"`
	Type     string `json:"law_type"` // "public" or "private"
	Congress int    `json:"congress"`
	Number   int    `json:"number"`
}

// USC is a United States Code section sub-cite.
type USC struct {
	ID          string   `json:"id,omitempty"`
	Links       Links    `json:"links,omitempty"`
	Title       string   `json:"title"`
	Section     string   `json:"section"`
	Subsections []string `json:"subsections,omitempty"`
}

// Bill is a congressional bill sub-cite.
type Bill struct {
	ID        string `json:"id,omitempty"`
	Links     Links  `json:"links,omitempty"`
	Congress  int    `json:"congress"`
	Type      string `json:"bill_type"` // hr, s, hres, sres, hjres, sjres, hconres, sconres
	Number    int    `json:"number"`
	IsEnacted bool   `json:"is_enacted,omitempty"`
}

// CFR is a Code of Federal Regulations sub-cite.
type CFR struct {
	ID      string `json:"id,omitempty"`
	Links   Links  `json:"links,omitempty"`
	Title   string `json:"title"`
	Part    string `json:"part"`
	Section string `json:"section,omitempty"`
}

// FedReg is a Federal Register notice sub-cite.
type FedReg struct {
	ID     string `json:"id,omitempty"`
	Links  Links  `json:"links,omitempty"`
	Volume string `json:"volume"`
	Page   string `json:"page"`
}

// Reporter is a case reporter sub-cite.
type Reporter struct {
	ID       string `json:"id,omitempty"`
	Links    Links  `json:"links,omitempty"`
	Reporter string `json:"reporter"`
	Volume   string `json:"volume"`
	Page     string `json:"page"`
	// TypeName is the deciding court's name, filled in by case search.
	TypeName string `json:"type_name,omitempty"`
}
