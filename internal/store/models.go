package store

import (
	"time"
)

// MultiplierRecord represents the 'multipliers' table: one row per
// (state, sector), written by the offline batch and read-only afterwards.
// This flat table is the contract between derivation and decomposition.
type MultiplierRecord struct {
	ID         int64  `db:"id" json:"-"`
	State      string `db:"state" json:"state"`
	Sector     string `db:"sector" json:"sector"`
	SectorName string `db:"sector_name" json:"sector_name"`
	BaseYear   int    `db:"base_year" json:"base_year"`

	VACoef   float64 `db:"va_coef" json:"va_coef"`
	WageCoef float64 `db:"wage_coef" json:"wage_coef"`
	EmpCoef  float64 `db:"emp_coef" json:"emp_coef"`

	TypeIOutput  float64 `db:"type_i_output" json:"type_i_output"`
	TypeIIOutput float64 `db:"type_ii_output" json:"type_ii_output"`

	TypeIVA  float64 `db:"type_i_va" json:"type_i_va"`
	TypeIIVA float64 `db:"type_ii_va" json:"type_ii_va"`

	TypeIWage  float64 `db:"type_i_wage" json:"type_i_wage"`
	TypeIIWage float64 `db:"type_ii_wage" json:"type_ii_wage"`

	TypeIEmployment  float64 `db:"type_i_employment" json:"type_i_employment"`
	TypeIIEmployment float64 `db:"type_ii_employment" json:"type_ii_employment"`

	InsertedAt time.Time `db:"inserted_at" json:"-"`
	UpdatedAt  time.Time `db:"updated_at" json:"-"`
}

// CPIRow represents the 'cpi_series' table.
type CPIRow struct {
	Year       int     `db:"year"`
	IndexValue float64 `db:"index_value"`
}

// BatchRun represents the 'batch_runs' table, the offline run history.
type BatchRun struct {
	ID             int64     `db:"id"`
	Trigger        string    `db:"trigger_type"`
	Status         string    `db:"status"`
	StatesComputed int       `db:"states_computed"`
	StatesSkipped  int       `db:"states_skipped"`
	WarningCount   int       `db:"warning_count"`
	StartedAt      time.Time `db:"started_at"`
	FinishedAt     time.Time `db:"finished_at"`
}
