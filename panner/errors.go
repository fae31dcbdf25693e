package panner

import "errors"

// Fatal configuration-time errors, split between a layout that's simply
// invalid (an LFE channel) and one Configure's pipeline can't handle
// (unsupported facet shapes, reference tables it doesn't carry). Handle
// never errors; see the Panner interface doc.
var (
	// ErrLFEChannel is returned when Configure is given a layout containing
	// an LFE channel; the panner has no notion of subwoofer feeds.
	ErrLFEChannel = errors.New("panner: layout contains an LFE channel")

	// ErrUnsupportedFacet is returned when the convex hull (after coplanar
	// merging) produces a facet with more than four vertices, and also when
	// one virtual apex is adjacent to the other on the hull. No supported
	// layout does this; it indicates a malformed or pathological layout.
	ErrUnsupportedFacet = errors.New("panner: hull facet has more than 4 vertices")

	// ErrDegenerateTriplet is returned when a Triplet's three speaker
	// positions are collinear (or otherwise span less than 3 dimensions),
	// so its basis matrix is not invertible.
	ErrDegenerateTriplet = errors.New("panner: triplet basis is not invertible")

	// ErrUnsupportedLayout is returned when a specialisation path (the
	// stereo downmix) needs a reference layout table that isn't available.
	ErrUnsupportedLayout = errors.New("panner: unsupported layout")

	// ErrInvalidChannelCount is returned by NewPointSourcePanner when an
	// explicit channel count is smaller than the regions require.
	ErrInvalidChannelCount = errors.New("panner: num_channels is smaller than the regions require")
)
