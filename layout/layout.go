package layout

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/briarcliff-audio/admpanner/geom"
)

// PolarPosition is an azimuth/elevation/distance position using the
// convention documented in package geom.
type PolarPosition struct {
	Azimuth   float64 // degrees
	Elevation float64 // degrees
	Distance  float64
}

// Channel is one loudspeaker (or LFE feed) in a Layout. Real is the
// as-deployed position used for gain computation; Nominal is the idealised
// reference position used to build the hull topology, so that a speaker
// deployed off its reference position still panner-tiles the same regions
// as an ideal rig.
type Channel struct {
	Name    string
	Real    PolarPosition
	Nominal PolarPosition
	IsLFE   bool
}

// Layout is an ordered, named list of Channels. A channel's index is its
// position within Channels.
type Layout struct {
	name     string
	channels []Channel
}

// New builds a Layout from a name and an ordered channel list.
func New(name string, channels []Channel) Layout {
	return Layout{name: name, channels: append([]Channel(nil), channels...)}
}

// Name returns the layout's name (the panner dispatches on "0+2+0"
// specially; all other names use the general hull-based pipeline).
func (l Layout) Name() string { return l.name }

// Channels returns the layout's channels in order.
func (l Layout) Channels() []Channel { return l.channels }

// ChannelNames returns the name of each channel, in order.
func (l Layout) ChannelNames() []string {
	names := make([]string, len(l.channels))
	for i, c := range l.channels {
		names[i] = c.Name
	}

	return names
}

// IndexOf returns the index of the channel with the given name, or -1.
func (l Layout) IndexOf(name string) int {
	for i, c := range l.channels {
		if c.Name == name {
			return i
		}
	}

	return -1
}

// NominalPositions returns the Cartesian nominal position of each channel,
// in order. Nominal positions drive hull topology.
func (l Layout) NominalPositions() []r3.Vec {
	out := make([]r3.Vec, len(l.channels))
	for i, c := range l.channels {
		out[i] = cartesian(c.Nominal)
	}

	return out
}

// NormPositions returns the unit-length Cartesian real position of each
// channel, in order. Gains are computed against real (not nominal)
// positions, so a deployment deviation shows up in the output gains
// themselves rather than only in which region claims a direction.
func (l Layout) NormPositions() []r3.Vec {
	out := make([]r3.Vec, len(l.channels))
	for i, c := range l.channels {
		out[i] = r3.Unit(cartesian(c.Real))
	}

	return out
}

// WithoutLFE returns a copy of the layout with LFE channels removed.
func (l Layout) WithoutLFE() Layout {
	channels := make([]Channel, 0, len(l.channels))

	for _, c := range l.channels {
		if !c.IsLFE {
			channels = append(channels, c)
		}
	}

	return New(l.name, channels)
}

// WithChannels returns a copy of the layout with additional channels
// appended (used by the panner's extra-speaker augmentation step, which
// synthesises filler positions on sparse upper/lower layers).
func (l Layout) WithChannels(extra []Channel) Layout {
	channels := append(append([]Channel(nil), l.channels...), extra...)
	return New(l.name, channels)
}

func cartesian(p PolarPosition) r3.Vec {
	return geom.CartesianFromPolar(p.Azimuth, p.Elevation, p.Distance)
}
