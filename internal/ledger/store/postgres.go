package store

import (
	"context"
	"database/sql"
	"fmt"

	"citator/internal/ledger"
	"citator/pkg/platform/sentinel"
)

// PostgresStore serves ledger volumes from PostgreSQL. The seq column
// preserves the construction order of the source files, which the query
// layer's preference ordering depends on.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed ledger store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const volumeQuery = `
SELECT page, COALESCE(npages, 0), entry_type, congress, number,
       COALESCE(title, ''), COALESCE(topic, ''), COALESCE(file, ''), COALESCE(citation, '')
FROM ledger_entries
WHERE volume = $1
ORDER BY seq`

func (s *PostgresStore) Volume(ctx context.Context, volume int) ([]ledger.Entry, error) {
	rows, err := s.db.QueryContext(ctx, volumeQuery, volume)
	if err != nil {
		return nil, fmt.Errorf("query ledger volume %d: %w", volume, err)
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		e := ledger.Entry{Volume: volume}
		if err := rows.Scan(
			&e.Page, &e.NPages, &e.Type, &e.Congress, &e.Number,
			&e.Title, &e.Topic, &e.File, &e.Citation,
		); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger volume %d: %w", volume, err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("ledger volume %d: %w", volume, sentinel.ErrNotFound)
	}
	return entries, nil
}
