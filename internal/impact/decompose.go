package impact

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/econlab/gaming_impact/internal/iomodel/types"
	"github.com/econlab/gaming_impact/internal/store"
)

// MultiplierSource is the read-only view of the persisted multiplier table
// the decomposer consumes. store.MultiplierStore satisfies it; tests use an
// in-memory implementation.
type MultiplierSource interface {
	GetRecord(ctx context.Context, state, sector string) (*store.MultiplierRecord, error)
	ListStates(ctx context.Context) ([]string, error)
}

// Metric tags one of the four impact metrics.
type Metric int

const (
	MetricOutput Metric = iota
	MetricGDP
	MetricWages
	MetricEmployment
)

func (m Metric) String() string {
	switch m {
	case MetricOutput:
		return "output"
	case MetricGDP:
		return "gdp"
	case MetricWages:
		return "wages"
	case MetricEmployment:
		return "employment"
	}
	return "unknown"
}

// Query is one impact request. Revenue is in millions of current-year
// dollars. DirectEmployment and DirectWages override the calculated direct
// figures when the caller knows the property's actual numbers. Year selects
// the CPI deflation target; zero means the IO base year.
type Query struct {
	RevenueMillions  float64  `json:"revenue_millions"`
	State            string   `json:"state"`
	Sector           string   `json:"sector"`
	DirectEmployment *float64 `json:"direct_employment,omitempty"`
	DirectWages      *float64 `json:"direct_wages,omitempty"`
	Year             int      `json:"year,omitempty"`
}

// Effects is the direct/indirect/induced/total breakdown for one metric.
// Multiplier is always total/direct, recomputed after decomposition so it
// stays consistent when an override changes the direct base.
type Effects struct {
	Direct     float64 `json:"direct"`
	Indirect   float64 `json:"indirect"`
	Induced    float64 `json:"induced"`
	Total      float64 `json:"total"`
	Multiplier float64 `json:"multiplier"`
}

// Result is the request-scoped impact table. Dollar figures are in millions;
// employment is in jobs. UsedOverrides discloses that at least one direct
// figure came from the caller rather than the coefficients.
type Result struct {
	State      string `json:"state"`
	Sector     string `json:"sector"`
	SectorName string `json:"sector_name"`
	Year       int    `json:"year"`

	Output     Effects `json:"output"`
	GDP        Effects `json:"gdp"`
	Wages      Effects `json:"wages"`
	Employment Effects `json:"employment"`

	UsedOverrides bool    `json:"used_overrides"`
	Deflator      float64 `json:"deflator"`
}

// Effect returns the breakdown for a metric tag.
func (r *Result) Effect(m Metric) Effects {
	switch m {
	case MetricOutput:
		return r.Output
	case MetricGDP:
		return r.GDP
	case MetricWages:
		return r.Wages
	case MetricEmployment:
		return r.Employment
	}
	return Effects{}
}

// Engine decomposes revenue into direct, indirect, and induced effects using
// a precomputed multiplier record. It is pure arithmetic over read-only
// state and safe for arbitrary concurrent use.
type Engine struct {
	source   MultiplierSource
	deflator *Deflator
}

func NewEngine(source MultiplierSource, deflator *Deflator) *Engine {
	return &Engine{source: source, deflator: deflator}
}

// Decompose runs one impact query.
//
// Employment uses the multiplier-ratio form throughout: direct jobs come
// from the deflated direct GDP times the jobs-per-$1M-VA coefficient (or the
// caller's override), and indirect/induced scale off that direct base via
// the Type I/II employment multipliers.
func (e *Engine) Decompose(ctx context.Context, q Query) (*Result, error) {
	if q.RevenueMillions <= 0 {
		return nil, fmt.Errorf("%w: revenue must be positive, got %v", ErrInvalidInput, q.RevenueMillions)
	}
	if !types.IsTargetSector(q.Sector) {
		return nil, fmt.Errorf("%w: unknown sector code %q", ErrInvalidInput, q.Sector)
	}
	if q.DirectEmployment != nil && *q.DirectEmployment < 0 {
		return nil, fmt.Errorf("%w: direct employment cannot be negative", ErrInvalidInput)
	}
	if q.DirectWages != nil && *q.DirectWages < 0 {
		return nil, fmt.Errorf("%w: direct wages cannot be negative", ErrInvalidInput)
	}

	known, err := e.source.ListStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	state, err := ResolveState(q.State, known)
	if err != nil {
		return nil, err
	}

	rec, err := e.source.GetRecord(ctx, state, q.Sector)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, &NoDataError{State: state, Sector: q.Sector}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load multiplier record: %w", err)
	}

	r := q.RevenueMillions
	deflate := e.deflator.Factor(q.Year)

	res := &Result{
		State:      rec.State,
		Sector:     rec.Sector,
		SectorName: rec.SectorName,
		Year:       q.Year,
		Deflator:   deflate,
	}
	if res.Year == 0 {
		res.Year = rec.BaseYear
	}

	res.Output = finishEffects(Effects{
		Direct:   r,
		Indirect: r * (rec.TypeIOutput - 1),
		Induced:  r * (rec.TypeIIOutput - rec.TypeIOutput),
	})

	res.GDP = finishEffects(Effects{
		Direct:   r * rec.VACoef,
		Indirect: r*rec.TypeIVA - r*rec.VACoef,
		Induced:  r*rec.TypeIIVA - r*rec.TypeIVA,
	})

	wages := Effects{
		Direct:   r * rec.WageCoef,
		Indirect: r*rec.TypeIWage - r*rec.WageCoef,
		Induced:  r * (rec.TypeIIWage - rec.TypeIWage),
	}
	if q.DirectWages != nil {
		// Rescale the downstream effects to the caller's actual wage
		// intensity so indirect/induced stay proportional to the override.
		wages.Direct = *q.DirectWages
		scale := safeRatio(*q.DirectWages/r, rec.WageCoef)
		wages.Indirect *= scale
		wages.Induced *= scale
		res.UsedOverrides = true
	}
	res.Wages = finishEffects(wages)

	directJobs := deflate * res.GDP.Direct * rec.EmpCoef
	if q.DirectEmployment != nil {
		directJobs = *q.DirectEmployment
		res.UsedOverrides = true
	}
	res.Employment = finishEffects(Effects{
		Direct:   directJobs,
		Indirect: directJobs * (rec.TypeIEmployment - 1),
		Induced:  directJobs * (rec.TypeIIEmployment - rec.TypeIEmployment),
	})

	return res, nil
}

func finishEffects(e Effects) Effects {
	e.Total = e.Direct + e.Indirect + e.Induced
	e.Multiplier = safeRatio(e.Total, e.Direct)
	return e
}

// safeRatio returns num/den, 1.0 when the denominator is zero or the result
// is not finite. A zero direct base means "no multiplier effect", not an
// undefined one.
func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 1.0
	}
	v := num / den
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 1.0
	}
	return v
}
