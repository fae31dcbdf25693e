// Package geom provides the small set of 3D geometry utilities the point
// source panner is built on: polar/Cartesian conversion and n-gon vertex
// ordering. It has no notion of loudspeakers or audio; it works entirely in
// terms of gonum's r3.Vec.
//
// # Coordinate convention
//
// Azimuth and elevation are in degrees. Azimuth 0 points along +X; positive
// azimuth rotates toward +Y (this is the convention the reference panner's
// own test vectors use: the M+030 direction is (cos 30°, sin 30°, 0), not
// the "front is +Y" convention used elsewhere in ADM tooling). Elevation 0
// is the horizontal plane through the origin; positive elevation is +Z.
package geom
