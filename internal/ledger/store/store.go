// Package store provides ledger volume loading. The filesystem store reads
// the per-volume YAML files the historical-statutes dataset ships; the
// Postgres store serves the same rows from a database; the cache store
// decorates either with a Redis volume cache.
package store

import (
	"context"

	"citator/internal/ledger"
)

// Store loads the ordered ledger for one statute volume.
//
// Implementations return sentinel.ErrNotFound (wrapped) when no ledger data
// exists for the volume. That is fatal for the lookup that needed it and is
// never retried.
type Store interface {
	Volume(ctx context.Context, volume int) ([]ledger.Entry, error)
}
