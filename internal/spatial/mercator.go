package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/mpendle/fitstore/internal/models"
)

// Point represents a geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// PlanarPoint is a projected display coordinate in meters.
type PlanarPoint struct {
	X float64
	Y float64
}

// Project converts a geographic coordinate to planar coordinates using the
// spherical Mercator projection:
//
//	x = R * lon_radians
//	y = R * ln(tan(π/4 + lat_radians/2))
//
// The projection is undefined at the poles, so any latitude at or beyond
// ±90° fails with an OutOfRange error. The transform is stateless and pure.
func Project(p Point) (PlanarPoint, error) {
	if p.Lat >= 90 || p.Lat <= -90 || math.IsNaN(p.Lat) {
		return PlanarPoint{}, &models.OutOfRangeError{Index: 0, Latitude: p.Lat}
	}

	ll := s2.LatLngFromDegrees(p.Lat, p.Lon)
	return PlanarPoint{
		X: EarthRadiusMeters * ll.Lng.Radians(),
		Y: EarthRadiusMeters * math.Log(math.Tan(math.Pi/4+ll.Lat.Radians()/2)),
	}, nil
}

// ProjectAll projects an ordered sequence of points. Invalid samples fail
// individually: the returned errors identify the offending indices and the
// corresponding output points are zero. Valid samples are always projected.
func ProjectAll(points []Point) ([]PlanarPoint, []*models.OutOfRangeError) {
	projected := make([]PlanarPoint, len(points))
	var faults []*models.OutOfRangeError
	for i, p := range points {
		pp, err := Project(p)
		if err != nil {
			faults = append(faults, &models.OutOfRangeError{Index: i, Latitude: p.Lat})
			continue
		}
		projected[i] = pp
	}
	return projected, faults
}

// ProjectAllStrict projects an ordered sequence of points, failing the whole
// transform on the first invalid sample.
func ProjectAllStrict(points []Point) ([]PlanarPoint, error) {
	projected := make([]PlanarPoint, len(points))
	for i, p := range points {
		pp, err := Project(p)
		if err != nil {
			return nil, &models.OutOfRangeError{Index: i, Latitude: p.Lat}
		}
		projected[i] = pp
	}
	return projected, nil
}
