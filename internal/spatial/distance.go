package spatial

import (
	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// HaversineDistance calculates the great-circle distance between two points
// in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// CumulativeDistance returns the running great-circle distance along an
// ordered track, in meters. The first element is always zero.
func CumulativeDistance(points []Point) []float64 {
	distances := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		cur := points[i]
		distances[i] = distances[i-1] + HaversineDistance(prev.Lat, prev.Lon, cur.Lat, cur.Lon)
	}
	return distances
}
