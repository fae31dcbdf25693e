package panner

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/briarcliff-audio/admpanner/internal/testutil"
)

func equatorialRing(t *testing.T) (*VirtualNgon, [4]r3.Vec) {
	t.Helper()

	positions := [4]r3.Vec{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: -1, Z: 0},
	}

	coef := 1 / math.Sqrt(4)
	ngon, err := NewVirtualNgon([]int{0, 1, 2, 3}, positions[:], r3.Vec{X: 0, Y: 0, Z: 1},
		[]float64{coef, coef, coef, coef})
	if err != nil {
		t.Fatalf("NewVirtualNgon: %v", err)
	}

	return ngon, positions
}

func TestVirtualNgonRealSpeakerDirections(t *testing.T) {
	ngon, positions := equatorialRing(t)

	for i, p := range positions {
		gains, ok := ngon.Handle(p)
		if !ok {
			t.Fatalf("Handle(%v) returned false", p)
		}

		want := make([]float64, 4)
		want[i] = 1

		testutil.RequireGainsNearlyEqual(t, gains, want, 1e-6)
	}
}

func TestVirtualNgonApexSpreadsAcrossRing(t *testing.T) {
	ngon, _ := equatorialRing(t)

	gains, ok := ngon.Handle(r3.Vec{X: 0, Y: 0, Z: 1})
	if !ok {
		t.Fatal("Handle returned false at the ring's apex direction")
	}

	testutil.RequireGainsFinite(t, gains)

	nonzero := 0
	for _, g := range gains {
		if g > 1e-9 {
			nonzero++
		}
	}
	if nonzero == 0 {
		t.Fatal("apex direction produced an all-zero gain vector")
	}

	testutil.RequireUnitNorm(t, gains, 1e-9)
}

func TestVirtualNgonOutputChannels(t *testing.T) {
	ngon, _ := equatorialRing(t)

	got := ngon.OutputChannels()
	for i, ch := range got {
		if ch != i {
			t.Fatalf("OutputChannels = %v, want [0 1 2 3]", got)
		}
	}
}

func TestVirtualNgonOppositeApexRejected(t *testing.T) {
	ngon, _ := equatorialRing(t)

	if _, ok := ngon.Handle(r3.Vec{X: 0, Y: 0, Z: -1}); ok {
		t.Fatal("Handle succeeded for the direction opposite the ring's virtual centre")
	}
}
