package panner

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/briarcliff-audio/admpanner/internal/testutil"
)

func octantRegions(t *testing.T) []Region {
	t.Helper()

	tri, err := NewTriplet([3]int{0, 1, 2}, [3]r3.Vec{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	})
	if err != nil {
		t.Fatalf("NewTriplet: %v", err)
	}

	return []Region{tri}
}

func TestPointSourcePannerDerivesNumChannels(t *testing.T) {
	p, err := NewPointSourcePanner(octantRegions(t))
	if err != nil {
		t.Fatalf("NewPointSourcePanner: %v", err)
	}

	if p.NumChannels() != 3 {
		t.Fatalf("NumChannels() = %d, want 3", p.NumChannels())
	}
}

func TestPointSourcePannerWithNumChannels(t *testing.T) {
	p, err := NewPointSourcePanner(octantRegions(t), WithNumChannels(5))
	if err != nil {
		t.Fatalf("NewPointSourcePanner: %v", err)
	}

	if p.NumChannels() != 5 {
		t.Fatalf("NumChannels() = %d, want 5", p.NumChannels())
	}

	gains, ok := p.Handle(r3.Vec{X: 1, Y: 0, Z: 0})
	if !ok {
		t.Fatal("Handle returned false")
	}
	if len(gains) != 5 {
		t.Fatalf("len(gains) = %d, want 5", len(gains))
	}

	testutil.RequireGainsNearlyEqual(t, gains, []float64{1, 0, 0, 0, 0}, 1e-9)
}

func TestPointSourcePannerRejectsTooFewChannels(t *testing.T) {
	_, err := NewPointSourcePanner(octantRegions(t), WithNumChannels(2))
	if !errors.Is(err, ErrInvalidChannelCount) {
		t.Fatalf("got %v, want ErrInvalidChannelCount", err)
	}
}

func TestPointSourcePannerUnclaimedDirection(t *testing.T) {
	p, err := NewPointSourcePanner(octantRegions(t))
	if err != nil {
		t.Fatalf("NewPointSourcePanner: %v", err)
	}

	if _, ok := p.Handle(r3.Vec{X: -1, Y: -1, Z: -1}); ok {
		t.Fatal("Handle succeeded for a direction outside every region")
	}
}

func TestPointSourcePannerDownmixIdentity(t *testing.T) {
	inner, err := NewPointSourcePanner(octantRegions(t))
	if err != nil {
		t.Fatalf("NewPointSourcePanner: %v", err)
	}

	identity := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})

	downmix := NewPointSourcePannerDownmix(inner, *identity)

	if downmix.NumChannels() != 3 {
		t.Fatalf("NumChannels() = %d, want 3", downmix.NumChannels())
	}

	gains, ok := downmix.Handle(r3.Vec{X: 1, Y: 1, Z: 1})
	if !ok {
		t.Fatal("Handle returned false")
	}

	testutil.RequireGainsFinite(t, gains)
	testutil.RequireUnitNorm(t, gains, 1e-9)
}

func TestPointSourcePannerDownmixFoldsChannels(t *testing.T) {
	inner, err := NewPointSourcePanner(octantRegions(t))
	if err != nil {
		t.Fatalf("NewPointSourcePanner: %v", err)
	}

	// fold channels 1 and 2 onto a single output channel
	matrix := mat.NewDense(2, 3, []float64{
		1, 0, 0,
		0, 1, 1,
	})

	downmix := NewPointSourcePannerDownmix(inner, *matrix)

	gains, ok := downmix.Handle(r3.Vec{X: 0, Y: 1, Z: 0})
	if !ok {
		t.Fatal("Handle returned false")
	}

	testutil.RequireGainsNearlyEqual(t, gains, []float64{0, 1}, 1e-9)
}
