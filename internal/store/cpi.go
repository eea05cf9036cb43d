package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type CPIStore struct {
	db *sqlx.DB
}

func (cs *CPIStore) UpsertCPI(ctx context.Context, row *CPIRow) error {
	query := `INSERT INTO cpi_series (
		year,
		index_value
	) VALUES (
		:year,
		:index_value
	) ON CONFLICT (year) DO UPDATE SET
		index_value = EXCLUDED.index_value`

	if _, err := cs.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to upsert CPI for %d: %w", row.Year, err)
	}
	return nil
}

func (cs *CPIStore) GetSeries(ctx context.Context) (map[int]float64, error) {
	query := `SELECT year, index_value FROM cpi_series ORDER BY year`

	rows := []CPIRow{}
	if err := cs.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query CPI series: %w", err)
	}

	series := make(map[int]float64, len(rows))
	for _, r := range rows {
		series[r.Year] = r.IndexValue
	}
	return series, nil
}
