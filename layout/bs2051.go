package layout

import (
	"errors"
	"fmt"
)

// ErrUnknownLayout is returned by BS2051 for a name with no reference
// layout table.
var ErrUnknownLayout = errors.New("layout: unknown BS.2051 layout")

// BS2051 returns one of a small set of reference ITU-R BS.2051 loudspeaker
// layouts, with real positions equal to nominal positions (no deployment
// deviation). LFE channels are included and flagged IsLFE; callers that
// need a panner-ready layout should call WithoutLFE first.
func BS2051(name string) (Layout, error) {
	switch name {
	case "0+2+0":
		return stereo(), nil
	case "0+5+0":
		return surround50(), nil
	case "4+5+0":
		return surround450(), nil
	default:
		return Layout{}, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}

func pos(az, el float64) PolarPosition {
	return PolarPosition{Azimuth: az, Elevation: el, Distance: 1}
}

func speaker(name string, az, el float64) Channel {
	p := pos(az, el)
	return Channel{Name: name, Real: p, Nominal: p}
}

func lfe(name string, az, el float64) Channel {
	c := speaker(name, az, el)
	c.IsLFE = true

	return c
}

func stereo() Layout {
	return New("0+2+0", []Channel{
		speaker("M+030", 30, 0),
		speaker("M-030", -30, 0),
	})
}

func mid5() []Channel {
	return []Channel{
		speaker("M+030", 30, 0),
		speaker("M-030", -30, 0),
		speaker("M+000", 0, 0),
		speaker("M+110", 110, 0),
		speaker("M-110", -110, 0),
	}
}

func surround50() Layout {
	channels := append(mid5(), lfe("LFE1", 45, -30))
	return New("0+5+0", channels)
}

func surround450() Layout {
	channels := mid5()
	channels = append(channels,
		speaker("U+030", 30, 30),
		speaker("U-030", -30, 30),
		speaker("U+110", 110, 30),
		speaker("U-110", -110, 30),
		lfe("LFE1", 45, -30),
	)

	return New("4+5+0", channels)
}
