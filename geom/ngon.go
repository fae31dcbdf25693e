package geom

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// NgonVertexOrder returns a permutation of indices 0..len(positions)-1 that
// visits positions in cyclic order about their centroid, for use by quad and
// virtual-ngon regions whose gain formulas require a consistent winding.
//
// The positions are projected onto their best-fit plane (the two
// eigenvectors of the covariance matrix with the largest eigenvalues) and
// sorted by the resulting 2D angle about the centroid.
func NgonVertexOrder(positions []r3.Vec) []int {
	n := len(positions)

	centroid := r3.Vec{}
	for _, p := range positions {
		centroid = r3.Add(centroid, p)
	}

	centroid = r3.Scale(1/float64(n), centroid)

	var cxx, cxy, cxz, cyy, cyz, czz float64

	for _, p := range positions {
		d := r3.Sub(p, centroid)
		cxx += d.X * d.X
		cxy += d.X * d.Y
		cxz += d.X * d.Z
		cyy += d.Y * d.Y
		cyz += d.Y * d.Z
		czz += d.Z * d.Z
	}

	cov := mat.NewSymDense(3, nil)
	cov.SetSym(0, 0, cxx)
	cov.SetSym(0, 1, cxy)
	cov.SetSym(0, 2, cxz)
	cov.SetSym(1, 1, cyy)
	cov.SetSym(1, 2, cyz)
	cov.SetSym(2, 2, czz)

	var eig mat.EigenSym
	ok := eig.Factorize(cov, true)

	// If the eigendecomposition fails, fall back to the natural X/Y basis
	// rather than panicking.
	u := r3.Vec{X: 1}
	v := r3.Vec{Y: 1}

	if ok {
		var vectors mat.Dense
		eig.VectorsTo(&vectors)

		// Pick the two eigenvectors with the largest eigenvalues as the plane
		// basis; gonum returns eigenvalues in ascending order, so the last two
		// columns are what we want.
		u = r3.Vec{X: vectors.At(0, 2), Y: vectors.At(1, 2), Z: vectors.At(2, 2)}
		v = r3.Vec{X: vectors.At(0, 1), Y: vectors.At(1, 1), Z: vectors.At(2, 1)}
	}

	angles := make([]float64, n)
	for i, p := range positions {
		d := r3.Sub(p, centroid)
		angles[i] = math.Atan2(r3.Dot(d, v), r3.Dot(d, u))
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return angles[order[i]] < angles[order[j]]
	})

	return order
}
