// Package geo provides pure distance estimators over node coordinates,
// used as A* heuristics by the search package.
//
// Every estimator is a pure function (core.Node, core.Node) → float64 in
// meters: symmetric, zero exactly for identical nodes (same ID, or same
// coordinates), strictly positive for distinct coordinates.
//
// Estimators:
//
//   - Haversine: great-circle distance, R = 6371 km. The default and the
//     only estimator guaranteed admissible for road networks (a road can
//     never be shorter than the straight line between its ends).
//   - Manhattan: scaled axis-distance sum (111,320 m per degree, longitude
//     shrunk by cos of the mean latitude). Not guaranteed admissible off a
//     strict grid; exploratory option.
//   - Diagonal: Chebyshev distance, the max of the two scaled axis
//     distances. For comparison only.
//   - Equirectangular: flat-projection Euclidean distance; the cheapest to
//     compute, accurate at city scale.
//
// Admissibility matters: A* returns optimal paths only while its heuristic
// never overestimates the remaining cost. Pick Haversine unless you are
// deliberately trading optimality for expansion counts.
package geo
