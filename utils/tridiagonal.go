package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SolveImplicit solves one column's tridiagonal system restricted to its water levels ks..nz-1.
// a is the sub-diagonal (coupling to k-1), b the diagonal, c the super-diagonal (coupling to k+1)
// and d the right hand side, all of length nz. The edge row ks takes its diagonal from bEdge and
// has no sub-diagonal term. Only x[ks:] is written; a land column (ks < 0) leaves x untouched
func SolveImplicit(a, b, c, d, bEdge []float64, ks int, x []float64) (err error) {
	var (
		nz = len(d)
	)
	if ks < 0 {
		return
	}
	if len(a) != nz || len(b) != nz || len(c) != nz || len(bEdge) != nz || len(x) != nz {
		err = fmt.Errorf("tridiagonal system size mismatch: a,b,c,d,bEdge,x = %d,%d,%d,%d,%d,%d",
			len(a), len(b), len(c), nz, len(bEdge), len(x))
		return
	}
	if ks >= nz {
		err = fmt.Errorf("edge row %d outside system of size %d", ks, nz)
		return
	}
	var (
		n = nz - ks
	)
	if n == 1 {
		x[ks] = d[ks] / bEdge[ks]
		return
	}
	var (
		dl  = make([]float64, n-1)
		dg  = make([]float64, n)
		du  = make([]float64, n-1)
		rhs = make([]float64, n)
	)
	copy(dl, a[ks+1:])
	copy(dg, b[ks:])
	dg[0] = bEdge[ks]
	copy(du, c[ks:nz-1])
	copy(rhs, d[ks:])
	A := mat.NewTridiag(n, dl, dg, du)
	dst := mat.NewVecDense(n, x[ks:])
	if err = A.SolveVecTo(dst, false, mat.NewVecDense(n, rhs)); err != nil {
		err = fmt.Errorf("tridiagonal solve of %d water levels failed: %w", n, err)
	}
	return
}
