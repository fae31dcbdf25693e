package hull

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// planeTolerance bounds both the degenerate-triple (collinear) rejection
// and the "is this point on the plane" test used while enumerating
// candidate faces.
const planeTolerance = 1e-9

// mergeTolerance is the coplanar-facet merge tolerance: two triangular
// faces merge into one facet when their normalised plane equations (unit
// normal, offset) differ by less than this in L2 norm.
const mergeTolerance = 1e-5

// Facet is a maximal coplanar face of the convex hull of a point set.
type Facet struct {
	// Vertices holds the indices (into the positions slice passed to
	// Facets) of the facet's corners, in no particular order.
	Vertices []int

	// Normal is the facet's outward-pointing unit normal.
	Normal r3.Vec

	// Offset is the plane's offset such that Normal.Dot(p) == Offset for
	// every point p on the plane.
	Offset float64
}

// Has reports whether v is one of the facet's vertices.
func (f Facet) Has(v int) bool {
	for _, u := range f.Vertices {
		if u == v {
			return true
		}
	}

	return false
}

// Facets computes the convex hull of positions and returns its facets,
// with coplanar triangular faces merged into single facets. Coplanar groups
// of any size on the hull boundary are supported: every triangle among them
// is accepted as a face and they merge into one facet.
func Facets(positions []r3.Vec) []Facet {
	n := len(positions)

	type triangle struct {
		verts  [3]int
		normal r3.Vec
		offset float64
	}

	var triangles []triangle

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				normal := r3.Cross(r3.Sub(positions[j], positions[i]), r3.Sub(positions[k], positions[i]))
				if r3.Norm(normal) < planeTolerance {
					continue // collinear triple, not a candidate plane
				}

				normal = r3.Unit(normal)
				offset := r3.Dot(normal, positions[i])

				pos, neg := false, false

				for m := 0; m < n; m++ {
					if m == i || m == j || m == k {
						continue
					}

					d := r3.Dot(normal, positions[m]) - offset
					if d > planeTolerance {
						pos = true
					} else if d < -planeTolerance {
						neg = true
					}
				}

				if pos && neg {
					continue // some points on each side: not a hull face
				}

				if pos && !neg {
					// Every other point is on the positive side, so the
					// outward normal is the opposite direction.
					normal = r3.Scale(-1, normal)
					offset = -offset
				}

				triangles = append(triangles, triangle{verts: [3]int{i, j, k}, normal: normal, offset: offset})
			}
		}
	}

	var facets []Facet

	for _, tri := range triangles {
		merged := false

		for fi := range facets {
			dn := r3.Sub(facets[fi].Normal, tri.normal)
			diff := math.Sqrt(r3.Dot(dn, dn) + (facets[fi].Offset-tri.offset)*(facets[fi].Offset-tri.offset))

			if diff < mergeTolerance {
				facets[fi].Vertices = unionInts(facets[fi].Vertices, tri.verts[:])
				merged = true

				break
			}
		}

		if !merged {
			facets = append(facets, Facet{
				Vertices: append([]int(nil), tri.verts[:]...),
				Normal:   tri.normal,
				Offset:   tri.offset,
			})
		}
	}

	return facets
}

// AdjacentVertices returns the vertices adjacent to vert: every vertex that
// shares a facet with vert, excluding vert itself.
func AdjacentVertices(facets []Facet, vert int) []int {
	seen := make(map[int]bool)

	for _, f := range facets {
		if !f.Has(vert) {
			continue
		}

		for _, v := range f.Vertices {
			if v != vert {
				seen[v] = true
			}
		}
	}

	adjacent := make([]int, 0, len(seen))
	for v := range seen {
		adjacent = append(adjacent, v)
	}

	sort.Ints(adjacent)

	return adjacent
}

func unionInts(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	for _, v := range a {
		seen[v] = true
	}

	out := append([]int(nil), a...)

	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	return out
}
