package panner

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/briarcliff-audio/admpanner/geom"
)

// VirtualNgon represents n real loudspeakers ringed around a central
// virtual loudspeaker, whose gain is redistributed to the real
// loudspeakers. It is built from n Triplets, one per consecutive pair of
// real speakers plus the virtual centre, so that only three speakers are
// ever active at once internally, while Handle's result only ever
// references real channels.
type VirtualNgon struct {
	outputChannels []int
	centreDownmix  []float64
	subTriplets    []*Triplet // each outputs into a local (n+1)-slot buffer
}

// NewVirtualNgon builds a VirtualNgon from n real output channel indices,
// their positions, the virtual centre's position, and the per-channel
// downmix coefficients applied when the centre's gain is folded back into
// the real ring.
func NewVirtualNgon(outputChannels []int, positions []r3.Vec, centrePosition r3.Vec, centreDownmix []float64) (*VirtualNgon, error) {
	n := len(outputChannels)
	order := geom.NgonVertexOrder(positions)

	subTriplets := make([]*Triplet, n)

	for i := 0; i < n; i++ {
		j := (i + 1) % n

		triPositions := [3]r3.Vec{positions[order[i]], positions[order[j]], centrePosition}
		// Channel n designates the virtual centre slot in the local
		// working buffer of length n+1.
		triChannels := [3]int{order[i], order[j], n}

		t, err := NewTriplet(triChannels, triPositions)
		if err != nil {
			return nil, err
		}

		subTriplets[i] = t
	}

	return &VirtualNgon{
		outputChannels: outputChannels,
		centreDownmix:  centreDownmix,
		subTriplets:    subTriplets,
	}, nil
}

// OutputChannels implements Region.
func (v *VirtualNgon) OutputChannels() []int { return v.outputChannels }

// Handle implements Region.
func (v *VirtualNgon) Handle(position r3.Vec) ([]float64, bool) {
	n := len(v.outputChannels)

	for _, t := range v.subTriplets {
		local, ok := remap(t, n+1, position)
		if !ok {
			continue
		}

		real := local[:n]
		centreGain := local[n]

		for i := range real {
			real[i] += centreGain * v.centreDownmix[i]
		}

		norm := floats.Norm(real, 2)
		if norm == 0 {
			continue
		}

		floats.Scale(1/norm, real)

		return real, true
	}

	return nil, false
}
