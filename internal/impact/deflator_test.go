package impact

import (
	"math"
	"testing"
)

func TestDeflatorFactor(t *testing.T) {
	d := NewDeflator(2023, map[int]float64{
		2023: 304.7,
		2024: 313.7,
		2025: 322.1,
	})

	if got := d.Factor(2023); got != 1.0 {
		t.Fatalf("Factor(base)=%v, want 1.0", got)
	}
	if got := d.Factor(0); got != 1.0 {
		t.Fatalf("Factor(0)=%v, want 1.0", got)
	}

	want := 304.7 / 313.7
	if got := d.Factor(2024); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Factor(2024)=%v, want %v", got, want)
	}
	if got := d.Factor(2024); got >= 1.0 {
		t.Fatalf("deflating a later year must shrink dollars, got %v", got)
	}
}

func TestDeflatorMissingYear(t *testing.T) {
	d := NewDeflator(2023, map[int]float64{2023: 304.7})

	if got := d.Factor(2030); got != 1.0 {
		t.Fatalf("Factor(missing)=%v, want 1.0", got)
	}
}

func TestDeflatorEmptySeries(t *testing.T) {
	d := NewDeflator(2023, map[int]float64{})

	if got := d.Factor(2024); got != 1.0 {
		t.Fatalf("Factor with empty series=%v, want 1.0", got)
	}
}
