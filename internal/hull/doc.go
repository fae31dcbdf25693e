// Package hull computes the convex hull of a small set of 3D points and
// merges coplanar triangular facets into single faces.
//
// No convex-hull library is available anywhere in this module's dependency
// surface, so this is a direct, from-scratch implementation rather than a
// binding to a proven library (contrast the geom package, which leans on
// gonum's eigendecomposition). The inputs here are loudspeaker layouts
// augmented with a handful of extra and virtual positions — at most a few
// dozen points — so the O(n^4) brute-force face enumeration below (check
// every triple of points as a candidate face, accept it if every other
// point lies weakly on one side of its plane) is more than fast enough,
// even though it is not the algorithm of choice for large point clouds.
package hull
