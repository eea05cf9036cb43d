package iomodel

import (
	"gonum.org/v1/gonum/mat"
)

// Model is a state's derived direct-requirements system under the industry
// technology assumption: A = D.B, L = (I-A)^-1.
type Model struct {
	Snapshot *Snapshot

	D *mat.Dense // market shares, industry x commodity
	B *mat.Dense // commodity coefficients, commodity x industry
	A *mat.Dense // direct requirements, industry x industry
	L *mat.Dense // Type I Leontief inverse
}

// BuildModel derives D, B, A and the Type I Leontief inverse from an aligned
// snapshot. A singular (I-A) is reported as a SingularMatrixError so the
// batch can skip the state.
func BuildModel(s *Snapshot) (*Model, error) {
	n := len(s.Industries)
	m := len(s.Commodities)

	D := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		for c := 0; c < m; c++ {
			D.Set(i, c, SafeDivide(s.Make.At(i, c), s.CommodityOutput[c]))
		}
	}

	B := mat.NewDense(m, n, nil)
	for c := 0; c < m; c++ {
		for j := 0; j < n; j++ {
			B.Set(c, j, SafeDivide(s.Use.At(c, j), s.IndustryOutput[j]))
		}
	}

	A := mat.NewDense(n, n, nil)
	A.Mul(D, B)

	ima := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -A.At(i, j)
			if i == j {
				v = 1 - A.At(i, j)
			}
			ima.Set(i, j, v)
		}
	}

	L := mat.NewDense(n, n, nil)
	if err := L.Inverse(ima); err != nil {
		return nil, &SingularMatrixError{State: s.State, Err: err}
	}

	return &Model{Snapshot: s, D: D, B: B, A: A, L: L}, nil
}
