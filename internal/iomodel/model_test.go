package iomodel

import (
	"math"
	"testing"

	"github.com/econlab/gaming_impact/internal/iomodel/types"
)

// twoSectorState is a hand-checkable economy: industries 713 and 721, each
// producing exactly its own commodity, so D is the identity and A equals B.
// Table values are in dollars.
func twoSectorState() *types.RawStateTables {
	return &types.RawStateTables{
		State: "Testland",
		Make: map[string]map[string]float64{
			"713": {"713": 100e6, "721": 0},
			"721": {"713": 0, "721": 200e6},
		},
		Use: map[string]map[string]float64{
			"713": {"713": 10e6, "721": 20e6},
			"721": {"713": 5e6, "721": 40e6},
		},
		IndustryOutput:  map[string]float64{"713": 100e6, "721": 200e6},
		CommodityOutput: map[string]float64{"713": 100e6, "721": 200e6},
		ValueAdded: map[string]map[string]float64{
			types.VARowCompensation: {"713": 40e6, "721": 80e6},
			types.VARowTaxes:        {"713": 5e6, "721": 10e6},
			types.VARowSurplus:      {"713": 15e6, "721": 30e6},
		},
		PCE: map[string]float64{"713": 30e6, "721": 60e6},
		Employment: map[string]types.EmploymentRow{
			"713": {Jobs: 600, Wages: 40e6},
			"721": {Jobs: 0, Wages: 0},
		},
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestAlignIntersectsCodes(t *testing.T) {
	raw := twoSectorState()
	// 999 appears only in the Make table, so it must be dropped.
	raw.Make["999"] = map[string]float64{"713": 1e6}

	s, err := Align(raw)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	if got, want := len(s.Industries), 2; got != want {
		t.Fatalf("len(Industries)=%d, want %d", got, want)
	}
	if s.IndustryIndex("999") != -1 {
		t.Fatalf("industry 999 should have been dropped")
	}
	if s.IndustryIndex("713") < 0 || s.IndustryIndex("721") < 0 {
		t.Fatalf("target industries missing after alignment")
	}
}

func TestAlignMissingValueAddedRow(t *testing.T) {
	raw := twoSectorState()
	delete(raw.ValueAdded, types.VARowCompensation)

	if _, err := Align(raw); err == nil {
		t.Fatalf("Align should fail without the V001 row")
	}
}

func TestAlignEmptyIntersection(t *testing.T) {
	raw := twoSectorState()
	raw.IndustryOutput = map[string]float64{}

	_, err := Align(raw)
	if err == nil {
		t.Fatalf("Align should fail on an empty industry intersection")
	}
	if _, ok := err.(*AlignmentError); !ok {
		t.Fatalf("err=%T, want *AlignmentError", err)
	}
}

func TestBuildModelDirectRequirements(t *testing.T) {
	s, err := Align(twoSectorState())
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}

	i713 := s.IndustryIndex("713")
	i721 := s.IndustryIndex("721")

	// D is the identity here, so A = B.
	if got := m.D.At(i713, i713); !almostEqual(got, 1.0, 1e-12) {
		t.Fatalf("D[713,713]=%v, want 1.0", got)
	}
	if got := m.A.At(i713, i713); !almostEqual(got, 0.1, 1e-12) {
		t.Fatalf("A[713,713]=%v, want 0.1", got)
	}
	if got := m.A.At(i713, i721); !almostEqual(got, 0.1, 1e-12) {
		t.Fatalf("A[713,721]=%v, want 0.1", got)
	}
	if got := m.A.At(i721, i713); !almostEqual(got, 0.05, 1e-12) {
		t.Fatalf("A[721,713]=%v, want 0.05", got)
	}
	if got := m.A.At(i721, i721); !almostEqual(got, 0.2, 1e-12) {
		t.Fatalf("A[721,721]=%v, want 0.2", got)
	}

	// det(I-A) = 0.715; L = adj/det.
	if got := m.L.At(i713, i713); !almostEqual(got, 0.8/0.715, 1e-9) {
		t.Fatalf("L[713,713]=%v, want %v", got, 0.8/0.715)
	}
	if got := m.L.At(i721, i713); !almostEqual(got, 0.05/0.715, 1e-9) {
		t.Fatalf("L[721,713]=%v, want %v", got, 0.05/0.715)
	}
}

func TestBuildModelZeroOutputYieldsZeroCoefficients(t *testing.T) {
	raw := twoSectorState()
	raw.CommodityOutput["721"] = 0

	s, err := Align(raw)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}

	c721 := s.CommodityIndex("721")
	if c721 < 0 {
		t.Fatalf("commodity 721 missing after alignment")
	}
	for i := range s.Industries {
		if got := m.D.At(i, c721); got != 0 {
			t.Fatalf("D[%d,721]=%v, want 0 for zero commodity output", i, got)
		}
	}
}

func TestBuildModelSingularMatrix(t *testing.T) {
	raw := twoSectorState()
	// Both industries spend their entire output on commodity 713 purchases,
	// and 713's column repeats 721's; (I-A) becomes singular.
	raw.Use = map[string]map[string]float64{
		"713": {"713": 100e6, "721": 200e6},
		"721": {"713": 0, "721": 0},
	}

	s, err := Align(raw)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	_, err = BuildModel(s)
	if err == nil {
		t.Fatalf("BuildModel should fail on a singular system")
	}
	if _, ok := err.(*SingularMatrixError); !ok {
		t.Fatalf("err=%T, want *SingularMatrixError", err)
	}
}

func TestDeriveCoefficients(t *testing.T) {
	s, err := Align(twoSectorState())
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}

	c := DeriveCoefficients(m)
	i713 := s.IndustryIndex("713")
	i721 := s.IndustryIndex("721")

	if got := c.VACoef[i713]; !almostEqual(got, 0.6, 1e-12) {
		t.Fatalf("VACoef[713]=%v, want 0.6", got)
	}
	if got := c.WageCoef[i713]; !almostEqual(got, 0.4, 1e-12) {
		t.Fatalf("WageCoef[713]=%v, want 0.4", got)
	}
	if got := c.HouseholdRow[i713]; got != c.WageCoef[i713] {
		t.Fatalf("household row should equal the wage coefficients")
	}

	// Total labor income is 120e6; PCE is 30e6/60e6 by commodity; D is the
	// identity, so the household column is (0.25, 0.5) in industry space.
	if got := c.HouseholdCol[i713]; !almostEqual(got, 0.25, 1e-9) {
		t.Fatalf("HouseholdCol[713]=%v, want 0.25", got)
	}
	if got := c.HouseholdCol[i721]; !almostEqual(got, 0.5, 1e-9) {
		t.Fatalf("HouseholdCol[721]=%v, want 0.5", got)
	}

	// 600 jobs on $60M of value added.
	if got := c.EmpCoef[i713]; !almostEqual(got, 10.0, 1e-9) {
		t.Fatalf("EmpCoef[713]=%v, want 10", got)
	}
	// 721 has no employment data; it takes the mean of positive
	// coefficients, which is 713's value.
	if got := c.EmpCoef[i721]; !almostEqual(got, 10.0, 1e-9) {
		t.Fatalf("EmpCoef[721]=%v, want fallback 10", got)
	}
}

func TestDeriveCoefficientsDefaultEmployment(t *testing.T) {
	raw := twoSectorState()
	raw.Employment = map[string]types.EmploymentRow{}

	s, err := Align(raw)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}

	c := DeriveCoefficients(m)
	for i, code := range s.Industries {
		if got := c.EmpCoef[i]; got != DefaultEmploymentCoef {
			t.Fatalf("EmpCoef[%s]=%v, want default %v", code, got, DefaultEmploymentCoef)
		}
	}
}

func TestComputeMultipliersInvariants(t *testing.T) {
	s, err := Align(twoSectorState())
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}
	c := DeriveCoefficients(m)

	sm, warnings, err := ComputeMultipliers(m, c)
	if err != nil {
		t.Fatalf("ComputeMultipliers failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected validation warnings: %v", warnings)
	}
	if got, want := len(sm.Sectors), 2; got != want {
		t.Fatalf("len(Sectors)=%d, want %d", got, want)
	}

	for _, sec := range sm.Sectors {
		if sec.TypeIOutput < 1.0 {
			t.Fatalf("%s: Type I output %v below 1.0", sec.Sector, sec.TypeIOutput)
		}
		if sec.TypeIIOutput < sec.TypeIOutput {
			t.Fatalf("%s: Type II output %v below Type I %v", sec.Sector, sec.TypeIIOutput, sec.TypeIOutput)
		}
		if sec.TypeIIVA < sec.TypeIVA {
			t.Fatalf("%s: Type II VA %v below Type I %v", sec.Sector, sec.TypeIIVA, sec.TypeIVA)
		}
		if sec.TypeIIWage < sec.TypeIWage {
			t.Fatalf("%s: Type II wage %v below Type I %v", sec.Sector, sec.TypeIIWage, sec.TypeIWage)
		}
		if sec.TypeIIEmployment < sec.TypeIEmployment {
			t.Fatalf("%s: Type II employment %v below Type I %v", sec.Sector, sec.TypeIIEmployment, sec.TypeIEmployment)
		}
		if sec.VACoef < 0 || sec.VACoef > 1 {
			t.Fatalf("%s: VA coefficient %v outside [0,1]", sec.Sector, sec.VACoef)
		}
	}
}

func TestComputeMultipliersTypeIOutput(t *testing.T) {
	s, err := Align(twoSectorState())
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}
	c := DeriveCoefficients(m)

	sm, _, err := ComputeMultipliers(m, c)
	if err != nil {
		t.Fatalf("ComputeMultipliers failed: %v", err)
	}

	var s713 *SectorMultipliers
	for i := range sm.Sectors {
		if sm.Sectors[i].Sector == "713" {
			s713 = &sm.Sectors[i]
		}
	}
	if s713 == nil {
		t.Fatalf("sector 713 missing from results")
	}

	// Column sum of L for 713: (0.8+0.05)/0.715.
	want := 0.85 / 0.715
	if !almostEqual(s713.TypeIOutput, want, 1e-9) {
		t.Fatalf("TypeIOutput=%v, want %v", s713.TypeIOutput, want)
	}

	// With a uniform employment coefficient the weighted ratio collapses to
	// TypeIOutput/VACoef: the coefficient cancels between numerator and the
	// direct jobs-per-output base.
	wantEmp := s713.TypeIOutput / s713.VACoef
	if !almostEqual(s713.TypeIEmployment, wantEmp, 1e-9) {
		t.Fatalf("TypeIEmployment=%v, want %v", s713.TypeIEmployment, wantEmp)
	}
}

func TestComputeMultipliersEmploymentWeighting(t *testing.T) {
	// Give the supply-chain sector a far lower labor intensity than the
	// target sector: the employment multiplier must fall below the VA-based
	// rescale, not track it.
	raw := twoSectorState()
	raw.Employment["713"] = types.EmploymentRow{Jobs: 6000, Wages: 40e6}
	raw.Employment["721"] = types.EmploymentRow{Jobs: 120, Wages: 80e6}

	s, err := Align(raw)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	m, err := BuildModel(s)
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}
	c := DeriveCoefficients(m)

	sm, _, err := ComputeMultipliers(m, c)
	if err != nil {
		t.Fatalf("ComputeMultipliers failed: %v", err)
	}

	for _, sec := range sm.Sectors {
		if sec.Sector != "713" {
			continue
		}
		// uniform is what the multiplier would be if every supplier were as
		// labor-intensive as the gaming sector itself.
		uniform := sec.TypeIOutput / sec.VACoef
		if sec.TypeIEmployment >= uniform {
			t.Fatalf("employment multiplier %v should fall below the uniform-intensity %v when suppliers are less labor-intensive", sec.TypeIEmployment, uniform)
		}
		if sec.TypeIEmployment < 1.0 {
			t.Fatalf("employment multiplier %v fell below 1.0", sec.TypeIEmployment)
		}
	}
}
