package citation

import (
	"fmt"
	"strings"
)

// Canonical display strings per sub-type, matching bluebook-adjacent usage.

func (s *Statute) String() string {
	return fmt.Sprintf("%s Stat. %s", s.Volume, s.Page)
}

func (l *Law) String() string {
	if l.Type == "private" {
		return fmt.Sprintf("Pvt. L. %d-%d", l.Congress, l.Number)
	}
	return fmt.Sprintf("Pub. L. %d-%d", l.Congress, l.Number)
}

func (u *USC) String() string {
	base := fmt.Sprintf("%s U.S.C. %s", u.Title, u.Section)
	if len(u.Subsections) > 0 {
		return base + "(" + strings.Join(u.Subsections, ")(") + ")"
	}
	return base
}

var billTypeDisplay = map[string]string{
	"hr":      "H.R.",
	"s":       "S.",
	"hres":    "H.Res.",
	"sres":    "S.Res.",
	"hjres":   "H.J.Res.",
	"sjres":   "S.J.Res.",
	"hconres": "H.Con.Res.",
	"sconres": "S.Con.Res.",
}

func (b *Bill) String() string {
	display, ok := billTypeDisplay[b.Type]
	if !ok {
		display = strings.ToUpper(b.Type)
	}
	return fmt.Sprintf("%s %d (%s Congress)", display, b.Number, ordinal(b.Congress))
}

func (c *CFR) String() string {
	if c.Section == "" {
		return fmt.Sprintf("%s CFR %s", c.Title, c.Part)
	}
	return fmt.Sprintf("%s CFR %s.%s", c.Title, c.Part, c.Section)
}

func (f *FedReg) String() string {
	return fmt.Sprintf("%s Fed. Reg. %s", f.Volume, f.Page)
}

func (r *Reporter) String() string {
	return fmt.Sprintf("%s %s %s", r.Volume, r.Reporter, r.Page)
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
