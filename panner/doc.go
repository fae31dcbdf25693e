// Package panner computes per-loudspeaker gain vectors that render a
// Cartesian source direction as if emitted from that direction, for an
// arbitrary loudspeaker layout.
//
// Configure partitions the direction sphere into regions (VBAP triangles,
// bilinear quads, or virtual-ngons around a phantom apex) such that the
// resulting gain function is continuous across region boundaries,
// energy-normalised, and defined for every direction. Handle then looks up
// the region covering a given direction and returns its gains.
//
// # Usage
//
//	l, err := layout.BS2051("0+5+0")
//	p, err := panner.Configure(l.WithoutLFE())
//	gains, ok := p.Handle(r3.Vec{X: 1, Y: 0, Z: 0})
package panner
