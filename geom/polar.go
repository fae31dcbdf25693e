package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// CartesianFromPolar converts a polar position (azimuth, elevation in
// degrees, distance) to Cartesian coordinates. See the package doc for the
// azimuth/elevation convention.
func CartesianFromPolar(azimuth, elevation, distance float64) r3.Vec {
	az := azimuth * math.Pi / 180
	el := elevation * math.Pi / 180

	cosEl := math.Cos(el)

	return r3.Vec{
		X: distance * math.Cos(az) * cosEl,
		Y: distance * math.Sin(az) * cosEl,
		Z: distance * math.Sin(el),
	}
}

// PolarFromCartesian converts a Cartesian position back to azimuth,
// elevation (degrees) and distance. The zero vector maps to zero azimuth
// and elevation with zero distance.
func PolarFromCartesian(v r3.Vec) (azimuth, elevation, distance float64) {
	distance = r3.Norm(v)
	if distance == 0 {
		return 0, 0, 0
	}

	azimuth = math.Atan2(v.Y, v.X) * 180 / math.Pi
	elevation = math.Asin(v.Z/distance) * 180 / math.Pi

	return azimuth, elevation, distance
}
