package panner

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Panner is the outward-facing interface shared by PointSourcePanner and
// PointSourcePannerDownmix, so tests and callers can dispatch a position to
// either the bare panner or one wrapped in a downmix without caring which.
type Panner interface {
	// NumChannels is the length of Handle's result.
	NumChannels() int

	// Handle computes a gain vector for position. It never errors; a
	// direction no region claims returns (nil, false).
	Handle(position r3.Vec) ([]float64, bool)
}

// Option configures a PointSourcePanner at construction time.
type Option func(*pointSourcePannerConfig) error

type pointSourcePannerConfig struct {
	numChannels int // 0 means "derive from regions"
}

// WithNumChannels overrides the output channel count that would otherwise
// be derived from the maximum output channel index any region references.
// It fails validation if numChannels is smaller than that minimum,
// mirroring the original's num_channels=attrib(default=None) assertion.
func WithNumChannels(numChannels int) Option {
	return func(c *pointSourcePannerConfig) error {
		if numChannels < 0 {
			return fmt.Errorf("%w: %d is negative", ErrInvalidChannelCount, numChannels)
		}
		c.numChannels = numChannels
		return nil
	}
}

// PointSourcePanner dispatches a Cartesian direction to whichever of its
// regions claims it, remapping the claimed region's partial gain vector
// into the panner's full output width.
type PointSourcePanner struct {
	regions     []Region
	numChannels int
}

// NewPointSourcePanner builds a PointSourcePanner from a set of regions
// tiling the sphere. The output width defaults to one more than the
// largest output channel index referenced by any region, unless overridden
// (upward only) by WithNumChannels.
func NewPointSourcePanner(regions []Region, opts ...Option) (*PointSourcePanner, error) {
	minChannels := 0
	for _, r := range regions {
		for _, ch := range r.OutputChannels() {
			if ch+1 > minChannels {
				minChannels = ch + 1
			}
		}
	}

	var cfg pointSourcePannerConfig
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	numChannels := minChannels
	if cfg.numChannels != 0 {
		if cfg.numChannels < minChannels {
			return nil, fmt.Errorf("%w: %d < %d", ErrInvalidChannelCount, cfg.numChannels, minChannels)
		}
		numChannels = cfg.numChannels
	}

	return &PointSourcePanner{regions: regions, numChannels: numChannels}, nil
}

// NumChannels implements Panner.
func (p *PointSourcePanner) NumChannels() int { return p.numChannels }

// Handle implements Panner. Regions are tried in order; the first to claim
// position wins, matching the reference implementation's linear scan (the
// hull's regions never overlap except at shared boundaries, where either
// claimant gives the same gain at the boundary itself).
func (p *PointSourcePanner) Handle(position r3.Vec) ([]float64, bool) {
	for _, region := range p.regions {
		if gains, ok := remap(region, p.numChannels, position); ok {
			return gains, true
		}
	}
	return nil, false
}

// PointSourcePannerDownmix wraps an inner Panner and applies a fixed
// downmix matrix to its result, re-normalising the output. Used whenever a
// layout's real channel count differs from its panning-region channel
// count, e.g. extra/virtual speakers folded back onto real ones.
type PointSourcePannerDownmix struct {
	inner  Panner
	matrix mat.Dense // numChannels x inner.NumChannels()
}

// NewPointSourcePannerDownmix wraps inner, applying matrix (numChannels x
// inner.NumChannels()) to every gain vector inner.Handle produces.
func NewPointSourcePannerDownmix(inner Panner, matrix mat.Dense) *PointSourcePannerDownmix {
	return &PointSourcePannerDownmix{inner: inner, matrix: matrix}
}

// NumChannels implements Panner.
func (p *PointSourcePannerDownmix) NumChannels() int {
	r, _ := p.matrix.Dims()
	return r
}

// Handle implements Panner.
func (p *PointSourcePannerDownmix) Handle(position r3.Vec) ([]float64, bool) {
	inner, ok := p.inner.Handle(position)
	if !ok {
		return nil, false
	}

	innerVec := mat.NewVecDense(len(inner), inner)

	var outVec mat.VecDense
	outVec.MulVec(&p.matrix, innerVec)

	out := make([]float64, outVec.Len())
	for i := range out {
		out[i] = outVec.AtVec(i)
	}

	return normalize(out)
}

// normalize L2-normalises gains in place, returning (nil, false) for an
// all-zero vector.
func normalize(gains []float64) ([]float64, bool) {
	norm := floats.Norm(gains, 2)
	if norm == 0 {
		return nil, false
	}
	floats.Scale(1/norm, gains)
	return gains, true
}
