package iomodel

import (
	"sort"

	"github.com/econlab/gaming_impact/internal/iomodel/types"
	"gonum.org/v1/gonum/mat"
)

// Snapshot is one state's aligned IO system: every matrix and vector is
// indexed by the same ordered industry and commodity code sets.
type Snapshot struct {
	State string

	Industries  []string
	Commodities []string
	indIdx      map[string]int
	comIdx      map[string]int

	Make *mat.Dense // industry x commodity
	Use  *mat.Dense // commodity x industry

	IndustryOutput  []float64
	CommodityOutput []float64

	Compensation []float64 // V001, by industry
	Taxes        []float64 // V002
	Surplus      []float64 // V003

	PCE        []float64 // by commodity
	Employment []float64 // jobs, by industry
}

// IndustryIndex returns the position of an industry code in the aligned
// ordering, or -1 when the code was dropped during alignment.
func (s *Snapshot) IndustryIndex(code string) int {
	if i, ok := s.indIdx[code]; ok {
		return i
	}
	return -1
}

// CommodityIndex is the commodity-space counterpart of IndustryIndex.
func (s *Snapshot) CommodityIndex(code string) int {
	if c, ok := s.comIdx[code]; ok {
		return c
	}
	return -1
}

// Align intersects the code sets of a state's source tables and builds the
// dense, consistently ordered snapshot the model is derived from. Codes that
// do not appear in every relevant table are dropped for that state, which
// can make a target sector unavailable there.
func Align(raw *types.RawStateTables) (*Snapshot, error) {
	if raw.ValueAdded[types.VARowCompensation] == nil {
		return nil, &AlignmentError{State: raw.State, Reason: "value-added row V001 missing"}
	}

	useIndustries := map[string]bool{}
	for _, row := range raw.Use {
		for ind := range row {
			useIndustries[ind] = true
		}
	}
	makeCommodities := map[string]bool{}
	for _, row := range raw.Make {
		for com := range row {
			makeCommodities[com] = true
		}
	}

	industries := []string{}
	for ind := range raw.Make {
		if useIndustries[ind] {
			if _, ok := raw.IndustryOutput[ind]; ok {
				industries = append(industries, ind)
			}
		}
	}
	commodities := []string{}
	for com := range raw.Use {
		if com == types.PCEColumn {
			continue
		}
		if makeCommodities[com] {
			if _, ok := raw.CommodityOutput[com]; ok {
				commodities = append(commodities, com)
			}
		}
	}

	if len(industries) == 0 {
		return nil, &AlignmentError{State: raw.State, Reason: "empty industry intersection"}
	}
	if len(commodities) == 0 {
		return nil, &AlignmentError{State: raw.State, Reason: "empty commodity intersection"}
	}

	sort.Strings(industries)
	sort.Strings(commodities)

	n := len(industries)
	m := len(commodities)

	s := &Snapshot{
		State:           raw.State,
		Industries:      industries,
		Commodities:     commodities,
		indIdx:          make(map[string]int, n),
		comIdx:          make(map[string]int, m),
		Make:            mat.NewDense(n, m, nil),
		Use:             mat.NewDense(m, n, nil),
		IndustryOutput:  make([]float64, n),
		CommodityOutput: make([]float64, m),
		Compensation:    make([]float64, n),
		Taxes:           make([]float64, n),
		Surplus:         make([]float64, n),
		PCE:             make([]float64, m),
		Employment:      make([]float64, n),
	}
	for i, code := range industries {
		s.indIdx[code] = i
	}
	for c, code := range commodities {
		s.comIdx[code] = c
	}

	for i, ind := range industries {
		for c, com := range commodities {
			s.Make.Set(i, c, raw.Make[ind][com])
			s.Use.Set(c, i, raw.Use[com][ind])
		}
		s.IndustryOutput[i] = raw.IndustryOutput[ind]
		s.Compensation[i] = raw.ValueAdded[types.VARowCompensation][ind]
		s.Taxes[i] = raw.ValueAdded[types.VARowTaxes][ind]
		s.Surplus[i] = raw.ValueAdded[types.VARowSurplus][ind]
		s.Employment[i] = raw.Employment[ind].Jobs
	}
	for c, com := range commodities {
		s.CommodityOutput[c] = raw.CommodityOutput[com]
		s.PCE[c] = raw.PCE[com]
	}

	return s, nil
}
