package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireGainsNearlyEqual fails t if got and want are gain vectors of
// different channel counts, or if any per-channel gain pair differs by more
// than eps.
func RequireGainsNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("channel count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("channel %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireGainsFinite fails t if any channel of a gain vector is NaN or Inf,
// which would indicate a degenerate region handler slipped a division by
// zero or an unbounded root past its guard.
func RequireGainsFinite(t *testing.T, gains []float64) {
	t.Helper()
	for i, v := range gains {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("channel %d: non-finite gain %v", i, v)
		}
	}
}

// RequireUnitNorm fails t if a gain vector's L2 norm differs from 1 by more
// than eps, the energy-normalisation invariant every region handler and
// downmix must preserve.
func RequireUnitNorm(t *testing.T, gains []float64, eps float64) {
	t.Helper()
	if n := GainNorm(gains); math.Abs(n-1) > eps {
		t.Fatalf("gains not unit norm: %v (norm %v)", gains, n)
	}
}

// GainNorm returns the L2 norm of a gain vector.
func GainNorm(gains []float64) float64 {
	var sumSq float64
	for _, g := range gains {
		sumSq += g * g
	}
	return math.Sqrt(sumSq)
}

// MaxGainDiff returns the largest per-channel absolute difference between
// two gain vectors of the same channel count, for bounding how much a gain
// vector may change between two nearby source directions in a continuity
// check. Returns an error if the channel counts differ.
func MaxGainDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("channel count mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
