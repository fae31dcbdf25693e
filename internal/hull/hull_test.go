package hull

import (
	"sort"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func sortedCopy(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)

	return out
}

func TestFacetsOctahedron(t *testing.T) {
	positions := []r3.Vec{
		{X: 1, Y: 0, Z: 0},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: -1},
	}

	facets := Facets(positions)
	if len(facets) != 8 {
		t.Fatalf("got %d facets, want 8 (octahedron)", len(facets))
	}

	for _, f := range facets {
		if len(f.Vertices) != 3 {
			t.Fatalf("facet %v has %d vertices, want 3", f.Vertices, len(f.Vertices))
		}
	}
}

func TestFacetsMergesCoplanarCube(t *testing.T) {
	// A cube has 6 square facets; each should come back merged into one
	// 4-vertex facet rather than two coplanar triangles.
	positions := []r3.Vec{
		{X: -1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: -1},
		{X: 1, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
		{X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: 1, Z: 1},
	}

	facets := Facets(positions)
	if len(facets) != 6 {
		t.Fatalf("got %d facets, want 6 (cube)", len(facets))
	}

	for _, f := range facets {
		if len(f.Vertices) != 4 {
			t.Fatalf("facet %v has %d vertices, want 4", f.Vertices, len(f.Vertices))
		}
	}
}

func TestAdjacentVertices(t *testing.T) {
	positions := []r3.Vec{
		{X: 1, Y: 0, Z: 0},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: -1},
	}

	facets := Facets(positions)

	// Vertex 4 (top) is adjacent to the four equatorial vertices (0,1,2,3),
	// never to vertex 5 (bottom, the antipode).
	adjacent := AdjacentVertices(facets, 4)

	want := []int{0, 1, 2, 3}
	got := sortedCopy(adjacent)

	if len(got) != len(want) {
		t.Fatalf("adjacent = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("adjacent = %v, want %v", got, want)
		}
	}
}
