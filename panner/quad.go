package panner

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/briarcliff-audio/admpanner/geom"
	"github.com/briarcliff-audio/admpanner/internal/quadroot"
)

// QuadRegion implements bilinear panning over four (approximately)
// coplanar loudspeakers: Handle(p) succeeds iff the ray from the origin
// through p pierces the quad's front face.
type QuadRegion struct {
	outputChannels [4]int
	positions      [4]r3.Vec
	order          [4]int
	polyX, polyY   [3]r3.Vec // vector-valued quadratic coefficients, descending power
}

// NewQuadRegion builds a QuadRegion from four output channel indices and
// the corresponding (approximately coplanar) speaker positions.
func NewQuadRegion(outputChannels [4]int, positions [4]r3.Vec) *QuadRegion {
	order := geom.NgonVertexOrder(positions[:])

	ordered := [4]r3.Vec{
		positions[order[0]], positions[order[1]], positions[order[2]], positions[order[3]],
	}
	rotated := [4]r3.Vec{ordered[1], ordered[2], ordered[3], ordered[0]}

	var o [4]int
	copy(o[:], order)

	return &QuadRegion{
		outputChannels: outputChannels,
		positions:      positions,
		order:          o,
		polyX:          panAxisPoly(ordered),
		polyY:          panAxisPoly(rotated),
	}
}

// panAxisPoly builds the vector-valued quadratic coefficients (descending
// power: t^2, t^1, t^0) for one pan axis of a quad ordered a, b, c, d. The
// bilinear interpolation p(t,u) = (1-t)(1-u)a + t(1-u)b + tu*c + (1-t)u*d,
// dotted against a source position and solved for the axis parameter t
// (along a->b and d->c), reduces to this quadratic:
//
//	P(t) = (b-a)x(c-d) t^2 + [ax(c-d) + (b-a)xd] t + axd
func panAxisPoly(pts [4]r3.Vec) [3]r3.Vec {
	a, b, c, d := pts[0], pts[1], pts[2], pts[3]

	cMinusD := r3.Sub(c, d)
	bMinusA := r3.Sub(b, a)

	c2 := r3.Cross(bMinusA, cMinusD)
	c1 := r3.Add(r3.Cross(a, cMinusD), r3.Cross(bMinusA, d))
	c0 := r3.Cross(a, d)

	return [3]r3.Vec{c2, c1, c0}
}

func panAxis(poly [3]r3.Vec, position r3.Vec) (float64, bool) {
	return quadroot.Solve(quadroot.Coefficients{
		A2: r3.Dot(poly[0], position),
		A1: r3.Dot(poly[1], position),
		A0: r3.Dot(poly[2], position),
	})
}

// OutputChannels implements Region.
func (q *QuadRegion) OutputChannels() []int { return q.outputChannels[:] }

// Handle implements Region.
func (q *QuadRegion) Handle(position r3.Vec) ([]float64, bool) {
	x, ok := panAxis(q.polyX, position)
	if !ok {
		return nil, false
	}

	y, ok := panAxis(q.polyY, position)
	if !ok {
		return nil, false
	}

	gains := make([]float64, 4)
	gains[q.order[0]] = (1 - x) * (1 - y)
	gains[q.order[1]] = x * (1 - y)
	gains[q.order[2]] = x * y
	gains[q.order[3]] = (1 - x) * y

	recon := r3.Vec{}
	for i, g := range gains {
		recon = r3.Add(recon, r3.Scale(g, q.positions[i]))
	}

	if r3.Dot(recon, position) <= 0 {
		return nil, false // ray pierces the back face
	}

	norm := floats.Norm(gains, 2)
	if norm == 0 {
		return nil, false
	}

	floats.Scale(1/norm, gains)

	return gains, true
}
