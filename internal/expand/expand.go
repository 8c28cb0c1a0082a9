// Package expand resolves ambiguous Statutes at Large citations against the
// historical ledger, exploding one volume/page reference into the concrete
// candidate citations that could have been meant.
package expand

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"citator/internal/citation"
	"citator/internal/ledger"
	"citator/internal/ledger/store"
)

// MaxLedgerVolume is the last Statutes at Large volume covered by the
// historical ledger. From the next volume on, GPO's digitized set carries
// unique page numbers and no disambiguation is needed.
const MaxLedgerVolume = 64

// FirstPubLawCongress is the congress from which numbered public laws
// exist; earlier ledger entries have no law identity to attach.
const FirstPubLawCongress = 38

// Exploder turns ambiguous statute citations into candidate citations.
type Exploder struct {
	store  store.Store
	logger *slog.Logger
}

// Option configures an Exploder.
type Option func(*Exploder)

// WithLogger attaches a logger for lookup diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(x *Exploder) {
		x.logger = logger
	}
}

// New constructs an Exploder over the given ledger store.
func New(s store.Store, opts ...Option) (*Exploder, error) {
	if s == nil {
		return nil, fmt.Errorf("ledger store is required")
	}
	x := &Exploder{store: s}
	for _, opt := range opts {
		opt(x)
	}
	return x, nil
}

// Explode maps a citation to its candidate citations.
//
// Only statute citations within ledger coverage (volume <= MaxLedgerVolume)
// are expanded; everything else passes through unchanged as a single-element
// list. When several ledger entries claim the queried page, every candidate
// carries disambiguation text and the caller decides; the expansion never
// silently picks one. A missing ledger volume is an error: expansion has no
// fallback.
func (x *Exploder) Explode(ctx context.Context, cite *citation.Citation) ([]*citation.Citation, error) {
	passthrough := []*citation.Citation{cite}

	if cite.Type != citation.TypeStatute || cite.Statute == nil {
		return passthrough, nil
	}
	volume, err := strconv.Atoi(cite.Statute.Volume)
	if err != nil || volume > MaxLedgerVolume {
		return passthrough, nil
	}
	page, err := strconv.Atoi(cite.Statute.Page)
	if err != nil {
		// Lettered pages ("95a") never appear in the ledger index.
		return passthrough, nil
	}

	entries, err := x.store.Volume(ctx, volume)
	if err != nil {
		return nil, fmt.Errorf("explode %s: %w", cite.Citation, err)
	}

	matches := ledger.Query(entries, volume, page)
	if len(matches) == 0 {
		if x.logger != nil {
			x.logger.DebugContext(ctx, "no ledger match", "volume", volume, "page", page)
		}
		return passthrough, nil
	}

	candidates := make([]*citation.Citation, 0, len(matches))
	for _, entry := range matches {
		candidates = append(candidates, x.candidate(cite, entry, page, len(matches) > 1))
	}
	return candidates, nil
}

// candidate builds one concrete citation from a ledger entry. Identity is
// recomputed from the original citation's volume/page so link templates stay
// consistent with what was cited; the canonical string uses the entry's true
// start page, which may differ when the reference pointed inside the body of
// the instrument.
func (x *Exploder) candidate(cite *citation.Citation, entry ledger.Entry, page int, ambiguous bool) *citation.Citation {
	cand := citation.NewStatute(cite.Statute.Volume, cite.Statute.Page)
	cand.Title = entry.DisplayTitle()
	cand.Citation = entry.StatCitation()

	var note string
	if entry.Page != page {
		note = fmt.Sprintf("page %d is within this instrument, which begins at %s", page, entry.StatCitation())
	}
	cand.Statute.Links.Set(citation.NewLegisworksLink(entry.File, note))

	if ambiguous {
		cand.Disambiguation = entry.Citation
	}

	if entry.Congress >= FirstPubLawCongress && entry.Type == "publaw" {
		law := citation.NewLaw("public", entry.Congress, entry.Number)
		law.Title = cand.Title
		cand.Parallel = append(cand.Parallel, law)
	}
	return cand
}
