package geo

import (
	"math"

	"github.com/tesselic/waypath/core"
)

const (
	// earthRadiusMeters is the mean Earth radius used by the haversine formula.
	earthRadiusMeters = 6_371_000.0

	// metersPerDegree approximates one degree of latitude at the Earth's
	// surface; longitude degrees shrink by cos(latitude).
	metersPerDegree = 111_320.0
)

// Haversine returns the great-circle distance between a and b in meters.
//
// This is the default A* heuristic: it never exceeds the true road distance
// between two nodes, because any road is at least as long as the straight
// line over the sphere, so it is admissible.
func Haversine(a, b core.Node) float64 {
	if a.ID == b.ID {
		return 0
	}

	return HaversineMeters(a.Lat, a.Lon, b.Lat, b.Lon)
}

// HaversineMeters is the coordinate-level form of Haversine, for callers
// that hold a raw lat/lon pair rather than a graph node.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lon2 - lon1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// Manhattan returns the sum of the north-south and east-west distances
// between a and b in meters, with the east-west axis scaled by the cosine
// of the mean latitude.
//
// Manhattan overestimates straight-line distance on anything but a strict
// grid, so it is NOT guaranteed admissible for curved road networks. It is
// an exploratory option for grid-like street plans, never the default.
func Manhattan(a, b core.Node) float64 {
	if a.ID == b.ID {
		return 0
	}

	latMeters, lonMeters := axisMeters(a, b)

	return latMeters + lonMeters
}

// Diagonal returns the Chebyshev distance between a and b in meters: the
// larger of the two scaled axis distances, as if diagonal movement cost the
// same as cardinal movement. Offered for comparison only.
func Diagonal(a, b core.Node) float64 {
	if a.ID == b.ID {
		return 0
	}

	latMeters, lonMeters := axisMeters(a, b)

	return math.Max(latMeters, lonMeters)
}

// Equirectangular returns a flat-projection Euclidean distance between a
// and b in meters. It is the cheapest estimator (one cosine, no arcsine)
// and accurate to a fraction of a percent at city scale, where the
// projection distortion is negligible.
func Equirectangular(a, b core.Node) float64 {
	if a.ID == b.ID {
		return 0
	}

	latMeters, lonMeters := axisMeters(a, b)

	return math.Sqrt(latMeters*latMeters + lonMeters*lonMeters)
}

// axisMeters converts the latitude and longitude deltas between a and b to
// meters, scaling the longitude axis by the cosine of the mean latitude.
func axisMeters(a, b core.Node) (latMeters, lonMeters float64) {
	meanLat := (a.Lat + b.Lat) / 2
	latMeters = math.Abs(b.Lat-a.Lat) * metersPerDegree
	lonMeters = math.Abs(b.Lon-a.Lon) * metersPerDegree * math.Cos(radians(meanLat))

	return latMeters, lonMeters
}

// radians converts decimal degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
