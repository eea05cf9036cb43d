package iomodel

import (
	"fmt"
	"math"

	"github.com/econlab/gaming_impact/internal/iomodel/types"
	"gonum.org/v1/gonum/mat"
)

// SectorMultipliers is the derived record for one (state, sector). The VA
// and wage "multipliers" are total effects per dollar of sector output; the
// output and employment multipliers are dimensionless ratios to direct.
type SectorMultipliers struct {
	Sector     string
	SectorName string

	VACoef   float64
	WageCoef float64
	EmpCoef  float64 // jobs per $1M value added

	TypeIOutput  float64
	TypeIIOutput float64

	TypeIVA  float64
	TypeIIVA float64

	TypeIWage  float64
	TypeIIWage float64

	TypeIEmployment  float64
	TypeIIEmployment float64
}

// StateMultipliers is the offline batch output for one state.
type StateMultipliers struct {
	State   string
	Sectors []SectorMultipliers
}

// ComputeMultipliers closes the model with the household row/column, inverts
// the augmented system, and reads off Type I and Type II multipliers for
// every target sector present in the state's aligned code set.
//
// Employment multipliers are employment-weighted: the coefficient vector is
// propagated through the Leontief inverse rather than rescaled from the VA
// multiplier, because supply-chain sectors differ widely in labor intensity.
func ComputeMultipliers(m *Model, c *Coefficients) (*StateMultipliers, []string, error) {
	s := m.Snapshot
	n := len(s.Industries)

	// Household-augmented direct requirements.
	abar := mat.NewDense(n+1, n+1, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			abar.Set(i, j, m.A.At(i, j))
		}
		abar.Set(n, i, c.HouseholdRow[i])
		abar.Set(i, n, c.HouseholdCol[i])
	}

	ima2 := mat.NewDense(n+1, n+1, nil)
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			v := -abar.At(i, j)
			if i == j {
				v = 1 - abar.At(i, j)
			}
			ima2.Set(i, j, v)
		}
	}
	l2 := mat.NewDense(n+1, n+1, nil)
	if err := l2.Inverse(ima2); err != nil {
		return nil, nil, &SingularMatrixError{State: s.State, Err: err}
	}

	out := &StateMultipliers{State: s.State}
	warnings := []string{}

	for _, target := range types.TargetSectors {
		i := s.IndustryIndex(target.Code)
		if i < 0 {
			continue
		}

		sm := SectorMultipliers{
			Sector:     target.Code,
			SectorName: target.Name,
			VACoef:     c.VACoef[i],
			WageCoef:   c.WageCoef[i],
			EmpCoef:    c.EmpCoef[i],
		}

		var t1Emp, t2Emp float64
		for r := 0; r < n; r++ {
			sm.TypeIOutput += m.L.At(r, i)
			sm.TypeIVA += c.VACoef[r] * m.L.At(r, i)
			sm.TypeIWage += c.WageCoef[r] * m.L.At(r, i)
			t1Emp += c.EmpCoef[r] * m.L.At(r, i)

			// Industry block of the augmented inverse only; the household
			// pseudo-row is not industry output.
			sm.TypeIIOutput += l2.At(r, i)
			sm.TypeIIVA += c.VACoef[r] * l2.At(r, i)
			sm.TypeIIWage += c.WageCoef[r] * l2.At(r, i)
			t2Emp += c.EmpCoef[r] * l2.At(r, i)
		}

		// Convert employment effects to ratio form against the sector's own
		// direct jobs per dollar of output.
		directEmpPerOutput := c.EmpCoef[i] * c.VACoef[i]
		sm.TypeIEmployment = empRatio(t1Emp, directEmpPerOutput)
		sm.TypeIIEmployment = empRatio(t2Emp, directEmpPerOutput)

		warnings = append(warnings, validateSector(s.State, &sm)...)
		out.Sectors = append(out.Sectors, sm)
	}

	return out, warnings, nil
}

func empRatio(total, direct float64) float64 {
	if direct == 0 {
		return 1.0
	}
	v := total / direct
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 1.0
	}
	return v
}

// validateSector flags data-quality problems in the derived multipliers.
// Violations do not block persistence; they usually point at inconsistent
// upstream tables rather than an algorithmic fault.
func validateSector(state string, sm *SectorMultipliers) []string {
	w := []string{}
	if sm.TypeIOutput < 1.0 {
		w = append(w, fmt.Sprintf("%s/%s: Type I output multiplier %.4f below 1.0", state, sm.Sector, sm.TypeIOutput))
	}
	if sm.TypeIIOutput < sm.TypeIOutput {
		w = append(w, fmt.Sprintf("%s/%s: Type II output %.4f below Type I %.4f", state, sm.Sector, sm.TypeIIOutput, sm.TypeIOutput))
	}
	if sm.TypeIIVA < sm.TypeIVA {
		w = append(w, fmt.Sprintf("%s/%s: Type II VA %.4f below Type I %.4f", state, sm.Sector, sm.TypeIIVA, sm.TypeIVA))
	}
	if sm.TypeIIWage < sm.TypeIWage {
		w = append(w, fmt.Sprintf("%s/%s: Type II wage %.4f below Type I %.4f", state, sm.Sector, sm.TypeIIWage, sm.TypeIWage))
	}
	if sm.TypeIIEmployment < sm.TypeIEmployment {
		w = append(w, fmt.Sprintf("%s/%s: Type II employment %.4f below Type I %.4f", state, sm.Sector, sm.TypeIIEmployment, sm.TypeIEmployment))
	}
	if sm.VACoef < 0 || sm.VACoef > 1 {
		w = append(w, fmt.Sprintf("%s/%s: VA coefficient %.4f outside [0,1]", state, sm.Sector, sm.VACoef))
	}
	return w
}
