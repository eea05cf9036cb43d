package iomodel

import (
	"gonum.org/v1/gonum/mat"
)

// DefaultEmploymentCoef is the jobs-per-$1M-value-added fallback used when a
// state has no usable employment data in any sector.
const DefaultEmploymentCoef = 10.0

// Coefficients are the per-industry direct coefficient vectors plus the
// household row/column used to close the model for Type II.
type Coefficients struct {
	VACoef   []float64 // value added per $ output
	WageCoef []float64 // employee compensation per $ output
	EmpCoef  []float64 // jobs per $1M value added, economy-wide

	HouseholdRow []float64 // labor income per $ output, by industry
	HouseholdCol []float64 // consumption per $ labor income, industry space
}

// DeriveCoefficients computes the direct coefficient vectors for every
// industry in the model. Employment coefficients are derived economy-wide:
// Type I/II employment multipliers propagate through the whole supply chain,
// so sectors outside the target list still need a coefficient.
func DeriveCoefficients(m *Model) *Coefficients {
	s := m.Snapshot
	n := len(s.Industries)
	nc := len(s.Commodities)

	c := &Coefficients{
		VACoef:       make([]float64, n),
		WageCoef:     make([]float64, n),
		EmpCoef:      make([]float64, n),
		HouseholdRow: make([]float64, n),
		HouseholdCol: make([]float64, n),
	}

	totalVA := make([]float64, n)
	totalLabor := 0.0
	for i := 0; i < n; i++ {
		totalVA[i] = s.Compensation[i] + s.Taxes[i] + s.Surplus[i]
		c.VACoef[i] = SafeDivide(totalVA[i], s.IndustryOutput[i])
		c.WageCoef[i] = SafeDivide(s.Compensation[i], s.IndustryOutput[i])
		c.HouseholdRow[i] = c.WageCoef[i]
		totalLabor += s.Compensation[i]
	}

	// Household spending pattern: PCE per dollar of labor income, mapped
	// from commodity space to industry space through the market shares.
	hhCom := mat.NewVecDense(nc, nil)
	for j := 0; j < nc; j++ {
		hhCom.SetVec(j, SafeDivide(s.PCE[j], totalLabor))
	}
	hhInd := mat.NewVecDense(n, nil)
	hhInd.MulVec(m.D, hhCom)
	for i := 0; i < n; i++ {
		c.HouseholdCol[i] = hhInd.AtVec(i)
	}

	// Jobs per $1M value added, with fallbacks: sector mean where a sector
	// has no usable employment figure, then a fixed default when the whole
	// state lacks data.
	positive := []float64{}
	for i := 0; i < n; i++ {
		coef := SafeDivide(s.Employment[i], totalVA[i]/1e6)
		c.EmpCoef[i] = coef
		if coef > 0 {
			positive = append(positive, coef)
		}
	}
	fallback := DefaultEmploymentCoef
	if len(positive) > 0 {
		sum := 0.0
		for _, v := range positive {
			sum += v
		}
		fallback = sum / float64(len(positive))
	}
	for i := 0; i < n; i++ {
		if c.EmpCoef[i] <= 0 {
			c.EmpCoef[i] = fallback
		}
	}

	return c
}
