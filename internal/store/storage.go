package store

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

// ErrRecordNotFound is returned by lookups that matched no row.
var ErrRecordNotFound = errors.New("record not found")

type Storage struct {
	Multiplier interface {
		UpsertMultiplier(ctx context.Context, record *MultiplierRecord) error
		GetRecord(ctx context.Context, state, sector string) (*MultiplierRecord, error)
		GetByState(ctx context.Context, state string) ([]MultiplierRecord, error)
		ListStates(ctx context.Context) ([]string, error)
		ListSectors(ctx context.Context) ([]string, error)
	}

	CPI interface {
		UpsertCPI(ctx context.Context, row *CPIRow) error
		GetSeries(ctx context.Context) (map[int]float64, error)
	}

	BatchRun interface {
		InsertBatchRun(ctx context.Context, run *BatchRun) error
		GetLatest(ctx context.Context, limit int) ([]BatchRun, error)
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Multiplier: &MultiplierStore{db: db},
		CPI:        &CPIStore{db: db},
		BatchRun:   &BatchRunStore{db: db},
	}
}
