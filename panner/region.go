package panner

import "gonum.org/v1/gonum/spatial/r3"

// Region is a polymorphic region handler: one of Triplet, QuadRegion,
// VirtualNgon, or StereoPanDownmix. Each owns the output channel indices
// its gains are placed at within a PointSourcePanner's output vector.
type Region interface {
	// OutputChannels returns the channel indices, in the order Handle's
	// result corresponds to.
	OutputChannels() []int

	// Handle computes gains for position if it falls within this region,
	// returning a vector the same length as OutputChannels and true;
	// otherwise (nil, false).
	Handle(position r3.Vec) ([]float64, bool)
}

// remap calls region.Handle and places its result into a zero vector of
// length size at region.OutputChannels(), mirroring the reference
// implementation's single handle_remap routine shared by every region
// dispatch site (PointSourcePanner.Handle and VirtualNgon's internal
// sub-triplet dispatch both use it).
func remap(region Region, size int, position r3.Vec) ([]float64, bool) {
	gains, ok := region.Handle(position)
	if !ok {
		return nil, false
	}

	out := make([]float64, size)
	for i, ch := range region.OutputChannels() {
		out[ch] = gains[i]
	}

	return out, true
}
