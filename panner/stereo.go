package panner

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/briarcliff-audio/admpanner/layout"
)

var (
	sqrt3Over3 = math.Sqrt(3) / 3
	sqrtHalf   = math.Sqrt(0.5)
)

// StereoPanDownmix is the 0+2+0 specialisation: it configures a full
// panner for the 0+5+0 layout internally and applies a BS.775-modified
// downmix to the stereo pair, preserving the velocity vector rather than
// output power, then attenuates by a front/back balance factor.
type StereoPanDownmix struct {
	leftChannel, rightChannel int
	inner                     Panner
}

// NewStereoPanDownmix builds a StereoPanDownmix targeting output channels
// leftChannel and rightChannel. It configures a 0+5+0 reference layout
// internally and fails with ErrUnsupportedLayout if that layout's channel
// order doesn't match what the downmix coefficients assume.
func NewStereoPanDownmix(leftChannel, rightChannel int) (*StereoPanDownmix, error) {
	ref, err := layout.BS2051("0+5+0")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedLayout, err)
	}

	ref = ref.WithoutLFE()

	want := []string{"M+030", "M-030", "M+000", "M+110", "M-110"}
	names := ref.ChannelNames()

	if len(names) != len(want) {
		return nil, fmt.Errorf("%w: 0+5+0 reference layout has %d channels, want %d", ErrUnsupportedLayout, len(names), len(want))
	}

	for i := range want {
		if names[i] != want[i] {
			return nil, fmt.Errorf("%w: 0+5+0 reference layout channel %d is %q, want %q", ErrUnsupportedLayout, i, names[i], want[i])
		}
	}

	inner, err := configureFull(ref)
	if err != nil {
		return nil, err
	}

	return &StereoPanDownmix{leftChannel: leftChannel, rightChannel: rightChannel, inner: inner}, nil
}

// OutputChannels implements Region.
func (s *StereoPanDownmix) OutputChannels() []int {
	return []int{s.leftChannel, s.rightChannel}
}

// Handle implements Region.
func (s *StereoPanDownmix) Handle(position r3.Vec) ([]float64, bool) {
	pv, ok := s.inner.Handle(position)
	if !ok {
		return nil, false
	}

	// BS.775 downmix, modified: the centre downmix is adjusted to
	// preserve the velocity vector rather than the output power.
	out := []float64{
		pv[0] + sqrt3Over3*pv[2] + sqrtHalf*pv[3],
		pv[1] + sqrt3Over3*pv[2] + sqrtHalf*pv[4],
	}

	norm := floats.Norm(out, 2)
	if norm == 0 {
		return nil, false
	}

	floats.Scale(1/norm, out)

	front := math.Max(pv[0], math.Max(pv[1], pv[2]))
	back := math.Max(pv[3], pv[4])

	// 0dB at the front, -1.5dB (0.5^0.5) pure-rear, continuous between.
	factor := math.Pow(0.5, 0.5*back/(front+back))
	floats.Scale(factor, out)

	return out, true
}
