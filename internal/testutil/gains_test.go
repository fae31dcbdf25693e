package testutil

import (
	"math"
	"testing"
)

func TestMaxGainDiff(t *testing.T) {
	a := []float64{1.0, 0.0, 0.0}
	b := []float64{0.9, 0.1, 0.0}

	d, err := MaxGainDiff(a, b)
	if err != nil {
		t.Fatalf("MaxGainDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxGainDiff = %v, want 0.1", d)
	}
}

func TestMaxGainDiffChannelCountMismatch(t *testing.T) {
	_, err := MaxGainDiff([]float64{1}, []float64{1, 0})
	if err == nil {
		t.Fatal("expected error for channel count mismatch")
	}
}

func TestMaxGainDiffIdentical(t *testing.T) {
	a := []float64{1, 0, 0}

	d, err := MaxGainDiff(a, a)
	if err != nil {
		t.Fatalf("MaxGainDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxGainDiff = %v, want 0 for identical gain vectors", d)
	}
}

func TestGainNorm(t *testing.T) {
	n := GainNorm([]float64{0.6, 0.8})
	if math.Abs(n-1) > 1e-15 {
		t.Fatalf("GainNorm = %v, want 1", n)
	}
}
