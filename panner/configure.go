package panner

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/briarcliff-audio/admpanner/internal/hull"
	"github.com/briarcliff-audio/admpanner/layout"
)

// Configure builds a Panner for l. It rejects layouts containing an LFE
// channel and special-cases the 0+2+0 stereo layout; every other layout
// goes through the full convex-hull configuration pipeline.
func Configure(l layout.Layout) (Panner, error) {
	for _, c := range l.Channels() {
		if c.IsLFE {
			return nil, fmt.Errorf("panner: configure %s: %w", l.Name(), ErrLFEChannel)
		}
	}

	if l.Name() == "0+2+0" {
		return configureStereo(l)
	}

	panner, err := configureFull(l)
	if err != nil {
		return nil, fmt.Errorf("panner: configure %s: %w", l.Name(), err)
	}

	return panner, nil
}

func configureStereo(l layout.Layout) (Panner, error) {
	left := l.IndexOf("M+030")
	right := l.IndexOf("M-030")
	if left < 0 || right < 0 {
		return nil, fmt.Errorf("panner: configure %s: %w: missing M+030/M-030", l.Name(), ErrUnsupportedLayout)
	}

	region, err := NewStereoPanDownmix(left, right)
	if err != nil {
		return nil, fmt.Errorf("panner: configure %s: %w", l.Name(), err)
	}

	return NewPointSourcePanner([]Region{region})
}

// extraPositionsVerticalNominal synthesises extra loudspeaker positions
// that fill gaps in the upper and lower layers above/below mid-layer
// speakers whose azimuth falls outside the range already covered by real
// speakers on that layer. Without these, the hull's upper/lower facets
// would stretch across a wide unsupported azimuth range and the panner
// would localise poorly there. It returns the extra channels and the
// downmix matrix (real channel count x extended channel count) that folds
// their gains back onto the real channel they were derived from.
func extraPositionsVerticalNominal(l layout.Layout) ([]layout.Channel, mat.Dense) {
	channels := l.Channels()
	n := len(channels)

	// columns of the eventual downmix matrix; the first n are the
	// identity, one more is appended per synthesised extra channel.
	columns := make([][]float64, n)
	for i := range columns {
		col := make([]float64, n)
		col[i] = 1
		columns[i] = col
	}

	isMid := func(el float64) bool { return el >= -10 && el <= 10 }

	layers := []struct {
		nominalEl, lowerBound, upperBound float64
	}{
		{-30, -70, -10},
		{30, 10, 70},
	}

	var extraChannels []layout.Channel

	const epsilon = 1e-5

	for _, layer := range layers {
		var layerIdx []int
		for i, c := range channels {
			if c.Nominal.Elevation >= layer.lowerBound && c.Nominal.Elevation <= layer.upperBound {
				layerIdx = append(layerIdx, i)
			}
		}

		var azLimit, layerRealEl float64
		if len(layerIdx) > 0 {
			azRange := 0.0
			sumRealEl := 0.0
			for _, i := range layerIdx {
				if a := math.Abs(channels[i].Nominal.Azimuth); a > azRange {
					azRange = a
				}
				sumRealEl += channels[i].Real.Elevation
			}
			azLimit = azRange + 40
			layerRealEl = sumRealEl / float64(len(layerIdx))
		} else {
			azLimit = 0
			layerRealEl = layer.nominalEl
		}

		for i, c := range channels {
			if !isMid(c.Nominal.Elevation) {
				continue
			}
			if math.Abs(c.Nominal.Azimuth) < azLimit-epsilon {
				continue
			}

			extraChannels = append(extraChannels, layout.Channel{
				Name: "extra",
				Real: layout.PolarPosition{
					Azimuth:   c.Real.Azimuth,
					Elevation: layerRealEl,
					Distance:  1,
				},
				Nominal: layout.PolarPosition{
					Azimuth:   c.Nominal.Azimuth,
					Elevation: layer.nominalEl,
					Distance:  1,
				},
			})

			col := make([]float64, n)
			col[i] = 1
			columns = append(columns, col)
		}
	}

	downmix := *mat.NewDense(n, len(columns), nil)
	for col, values := range columns {
		for row := 0; row < n; row++ {
			downmix.Set(row, col, values[row])
		}
	}

	return extraChannels, downmix
}

// configureFull runs the configuration pipeline for any non-stereo layout:
// extra vertical speakers are synthesised and treated as real until the
// final downmix; virtual apex speakers are added above and below; the
// convex hull of the nominal positions is computed and its facets turned
// into VirtualNgon, Triplet or QuadRegion regions over the real
// (non-nominal) positions.
func configureFull(l layout.Layout) (Panner, error) {
	extraChannels, downmix := extraPositionsVerticalNominal(l)
	extended := l.WithChannels(extraChannels)

	virtualPositions := []r3.Vec{{X: 0, Y: 0, Z: -1}}

	suppressUpperApex := false
	for _, name := range l.ChannelNames() {
		if name == "T+000" || name == "UH+180" {
			suppressUpperApex = true
			break
		}
	}
	if !suppressUpperApex {
		virtualPositions = append(virtualPositions, r3.Vec{X: 0, Y: 0, Z: 1})
	}

	nominal := extended.NominalPositions()
	real := extended.NormPositions()

	positionsNominal := append(append([]r3.Vec{}, nominal...), virtualPositions...)
	positionsReal := append(append([]r3.Vec{}, real...), virtualPositions...)

	base := len(extended.Channels())
	virtualVerts := make([]int, len(virtualPositions))
	for i := range virtualVerts {
		virtualVerts[i] = base + i
	}

	isVirtual := func(v int) bool {
		for _, vv := range virtualVerts {
			if v == vv {
				return true
			}
		}
		return false
	}

	facets := hull.Facets(positionsNominal)

	var regions []Region

	for _, vv := range virtualVerts {
		realVerts := hull.AdjacentVertices(facets, vv)

		for _, rv := range realVerts {
			if isVirtual(rv) {
				return nil, fmt.Errorf("%w: virtual apex %d is adjacent to virtual apex %d", ErrUnsupportedFacet, vv, rv)
			}
		}

		positions := make([]r3.Vec, len(realVerts))
		for i, rv := range realVerts {
			positions[i] = positionsReal[rv]
		}

		coef := 1 / math.Sqrt(float64(len(realVerts)))
		centreDownmix := make([]float64, len(realVerts))
		for i := range centreDownmix {
			centreDownmix[i] = coef
		}

		ngon, err := NewVirtualNgon(realVerts, positions, positionsReal[vv], centreDownmix)
		if err != nil {
			return nil, err
		}

		regions = append(regions, ngon)
	}

	for _, facet := range facets {
		touchesVirtual := false
		for _, v := range facet.Vertices {
			if isVirtual(v) {
				touchesVirtual = true
				break
			}
		}
		if touchesVirtual {
			continue
		}

		verts := facet.Vertices
		positions := make([]r3.Vec, len(verts))
		for i, v := range verts {
			positions[i] = positionsReal[v]
		}

		switch len(verts) {
		case 3:
			var channels [3]int
			var pos [3]r3.Vec
			copy(channels[:], verts)
			copy(pos[:], positions)

			t, err := NewTriplet(channels, pos)
			if err != nil {
				return nil, err
			}

			regions = append(regions, t)
		case 4:
			var channels [4]int
			var pos [4]r3.Vec
			copy(channels[:], verts)
			copy(pos[:], positions)

			regions = append(regions, NewQuadRegion(channels, pos))
		default:
			return nil, fmt.Errorf("%w: facet has %d vertices", ErrUnsupportedFacet, len(verts))
		}
	}

	psp, err := NewPointSourcePanner(regions)
	if err != nil {
		return nil, err
	}

	return NewPointSourcePannerDownmix(psp, downmix), nil
}
