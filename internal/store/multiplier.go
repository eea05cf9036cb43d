package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type MultiplierStore struct {
	db *sqlx.DB
}

func (ms *MultiplierStore) UpsertMultiplier(ctx context.Context, record *MultiplierRecord) error {
	query := `INSERT INTO multipliers (
		state,
		sector,
		sector_name,
		base_year,
		va_coef,
		wage_coef,
		emp_coef,
		type_i_output,
		type_ii_output,
		type_i_va,
		type_ii_va,
		type_i_wage,
		type_ii_wage,
		type_i_employment,
		type_ii_employment,
		inserted_at,
		updated_at
	) VALUES (
		:state,
		:sector,
		:sector_name,
		:base_year,
		:va_coef,
		:wage_coef,
		:emp_coef,
		:type_i_output,
		:type_ii_output,
		:type_i_va,
		:type_ii_va,
		:type_i_wage,
		:type_ii_wage,
		:type_i_employment,
		:type_ii_employment,
		:inserted_at,
		:updated_at
	) ON CONFLICT (state, sector) DO UPDATE SET
		sector_name = EXCLUDED.sector_name,
		base_year = EXCLUDED.base_year,
		va_coef = EXCLUDED.va_coef,
		wage_coef = EXCLUDED.wage_coef,
		emp_coef = EXCLUDED.emp_coef,
		type_i_output = EXCLUDED.type_i_output,
		type_ii_output = EXCLUDED.type_ii_output,
		type_i_va = EXCLUDED.type_i_va,
		type_ii_va = EXCLUDED.type_ii_va,
		type_i_wage = EXCLUDED.type_i_wage,
		type_ii_wage = EXCLUDED.type_ii_wage,
		type_i_employment = EXCLUDED.type_i_employment,
		type_ii_employment = EXCLUDED.type_ii_employment,
		updated_at = EXCLUDED.updated_at`

	if _, err := ms.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("failed to upsert multiplier %s/%s: %w", record.State, record.Sector, err)
	}
	return nil
}

func (ms *MultiplierStore) GetRecord(ctx context.Context, state, sector string) (*MultiplierRecord, error) {
	query := `SELECT * FROM multipliers WHERE state = $1 AND sector = $2`

	record := &MultiplierRecord{}
	err := ms.db.GetContext(ctx, record, query, state, sector)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query multiplier %s/%s: %w", state, sector, err)
	}
	return record, nil
}

func (ms *MultiplierStore) GetByState(ctx context.Context, state string) ([]MultiplierRecord, error) {
	query := `SELECT * FROM multipliers WHERE state = $1 ORDER BY sector`

	records := []MultiplierRecord{}
	if err := ms.db.SelectContext(ctx, &records, query, state); err != nil {
		return nil, fmt.Errorf("failed to query multipliers for %s: %w", state, err)
	}
	return records, nil
}

func (ms *MultiplierStore) ListStates(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT state FROM multipliers ORDER BY state`

	states := []string{}
	if err := ms.db.SelectContext(ctx, &states, query); err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	return states, nil
}

func (ms *MultiplierStore) ListSectors(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT sector FROM multipliers ORDER BY sector`

	sectors := []string{}
	if err := ms.db.SelectContext(ctx, &sectors, query); err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}
	return sectors, nil
}
