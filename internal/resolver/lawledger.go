package resolver

import (
	"context"
	"strconv"

	"citator/internal/citation"
	"citator/internal/ledger"
)

// congressVolumes maps a congress to the Statutes at Large volume(s) holding
// its session laws. This is a fixed historical table, not computed: early
// volumes do not divide evenly by congress, and from the 75th Congress on a
// single congress can span two volumes due to mid-congress volume breaks.
var congressVolumes = map[int][]int{
	1: {1}, 2: {1}, 3: {1}, 4: {1}, 5: {1},
	6: {2}, 7: {2}, 8: {2}, 9: {2}, 10: {2}, 11: {2}, 12: {2},
	13: {3}, 14: {3}, 15: {3}, 16: {3}, 17: {3},
	18: {4}, 19: {4}, 20: {4}, 21: {4}, 22: {4}, 23: {4},
	24: {5}, 25: {5}, 26: {5}, 27: {5}, 28: {5},
	29: {9}, 30: {9}, 31: {9},
	32: {10}, 33: {10},
	34: {11}, 35: {11},
	36: {12}, 37: {12},
	38: {13}, 39: {14}, 40: {15}, 41: {16}, 42: {17},
	43: {18}, 44: {19}, 45: {20}, 46: {21}, 47: {22}, 48: {23},
	49: {24}, 50: {25}, 51: {26}, 52: {27}, 53: {28},
	54: {29}, 55: {30}, 56: {31}, 57: {32}, 58: {33},
	59: {34}, 60: {35}, 61: {36}, 62: {37}, 63: {38},
	64: {39}, 65: {40}, 66: {41}, 67: {42}, 68: {43},
	69: {44}, 70: {45}, 71: {46}, 72: {47}, 73: {48},
	74: {49},
	75: {50, 52},
	76: {53, 54},
	77: {55, 56},
	78: {57, 58},
	79: {59, 60},
	80: {61, 62},
	81: {63, 64},
}

// lawLedgerResolver cross-references a law against the historical ledger.
// It covers laws too old for GPO's structured metadata: the congress number
// selects the candidate volume(s), and a congress+number match yields the
// law's Statutes at Large identity.
type lawLedgerResolver struct{}

func (r *lawLedgerResolver) Name() string {
	return "law_ledger"
}

func (r *lawLedgerResolver) Applies(cite *citation.Citation, env *Environment) bool {
	if cite.Law == nil || env.Ledger == nil {
		return false
	}
	if link := cite.Law.Links.Get(citation.SourceUSGPO.Name); link != nil && link.MODS != "" {
		return false
	}
	// Already cross-referenced on a previous pass.
	if cite.Law.Links.Get(citation.SourceLegisworks.Name) != nil {
		return false
	}
	_, ok := congressVolumes[cite.Law.Congress]
	return ok
}

func (r *lawLedgerResolver) Resolve(ctx context.Context, cite *citation.Citation, env *Environment) Outcome {
	law := cite.Law
	entryType := "publaw"
	if law.Type == "private" {
		entryType = "pvtlaw"
	}

	for _, volume := range congressVolumes[law.Congress] {
		entries, err := env.Ledger.Volume(ctx, volume)
		if err != nil {
			if env.Logger != nil {
				env.Logger.DebugContext(ctx, "ledger volume unavailable", "volume", volume, "error", err)
			}
			continue
		}

		entry, ok := ledger.FindLaw(entries, entryType, law.Congress, law.Number)
		if !ok {
			continue
		}

		law.Links.Set(citation.NewLegisworksLink(entry.File, ""))

		// The nested statute targets the same scanned document already
		// linked on the parent, so it carries no link object of its own.
		stat := citation.NewStatute(strconv.Itoa(entry.Volume), strconv.Itoa(entry.Page))
		stat.Title = entry.DisplayTitle()

		out := Outcome{Found: []*citation.Citation{stat}}
		// The ledger title only fills a blank; it never overrides a title
		// the citation arrived with.
		if cite.Title == "" {
			out.Title = entry.DisplayTitle()
		}
		return out
	}
	return Outcome{}
}
