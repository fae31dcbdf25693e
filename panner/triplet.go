package panner

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// tripletEpsilon is the VBAP coverage slack: a negative gain component no
// larger in magnitude than this is still accepted and clamped to zero,
// so that adjacent triangles both "claim" the shared boundary direction and
// the hull tiling has no gaps.
const tripletEpsilon = -1e-11

// Triplet implements VBAP (vector-base amplitude panning) over three
// loudspeakers: Handle(p) succeeds iff p lies in the cone spanned by the
// three speaker directions.
type Triplet struct {
	outputChannels [3]int
	positions      [3]r3.Vec
	basisInv       mat.Dense // inverse of the 3x3 matrix of speaker positions
}

// NewTriplet builds a Triplet from three output channel indices and the
// corresponding speaker positions. It fails with ErrDegenerateTriplet if
// the positions are collinear (or otherwise span fewer than 3 dimensions).
func NewTriplet(outputChannels [3]int, positions [3]r3.Vec) (*Triplet, error) {
	m := mat.NewDense(3, 3, []float64{
		positions[0].X, positions[0].Y, positions[0].Z,
		positions[1].X, positions[1].Y, positions[1].Z,
		positions[2].X, positions[2].Y, positions[2].Z,
	})

	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateTriplet, err)
	}

	return &Triplet{outputChannels: outputChannels, positions: positions, basisInv: inv}, nil
}

// OutputChannels implements Region.
func (t *Triplet) OutputChannels() []int { return t.outputChannels[:] }

// Handle implements Region.
func (t *Triplet) Handle(position r3.Vec) ([]float64, bool) {
	posVec := mat.NewVecDense(3, []float64{position.X, position.Y, position.Z})

	var pvVec mat.VecDense
	pvVec.MulVec(t.basisInv.T(), posVec)

	gains := []float64{pvVec.AtVec(0), pvVec.AtVec(1), pvVec.AtVec(2)}

	for _, g := range gains {
		if g < tripletEpsilon {
			return nil, false
		}
	}

	// Clamped to zero before normalising rather than after (the reference
	// implementation normalises first and clips the result to [0,1]); the
	// two orders disagree by at most ~1e-11 for components already within
	// tripletEpsilon of zero, so it doesn't change which boundary a
	// direction is assigned to.
	for i, g := range gains {
		if g < 0 {
			gains[i] = 0
		}
	}

	norm := floats.Norm(gains, 2)
	if norm == 0 {
		return nil, false
	}

	floats.Scale(1/norm, gains)

	return gains, true
}
