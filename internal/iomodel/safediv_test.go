package iomodel

import (
	"math"
	"testing"
)

func TestSafeDivide(t *testing.T) {
	if got, want := SafeDivide(10, 4), 2.5; got != want {
		t.Fatalf("SafeDivide(10,4)=%v, want %v", got, want)
	}

	if got := SafeDivide(10, 0); got != 0 {
		t.Fatalf("SafeDivide(10,0)=%v, want 0", got)
	}

	if got := SafeDivide(0, 0); got != 0 {
		t.Fatalf("SafeDivide(0,0)=%v, want 0", got)
	}

	if got := SafeDivide(math.NaN(), 5); got != 0 {
		t.Fatalf("SafeDivide(NaN,5)=%v, want 0", got)
	}

	if got := SafeDivide(math.Inf(1), 5); got != 0 {
		t.Fatalf("SafeDivide(+Inf,5)=%v, want 0", got)
	}

	if got, want := SafeDivide(-3, 2), -1.5; got != want {
		t.Fatalf("SafeDivide(-3,2)=%v, want %v", got, want)
	}
}
