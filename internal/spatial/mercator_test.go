package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpendle/fitstore/internal/models"
)

func TestProjectOrigin(t *testing.T) {
	p, err := Project(Point{Lat: 0, Lon: 0})
	require.NoError(t, err)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func TestProjectReferencePoints(t *testing.T) {
	// x = R * lon_radians
	p, err := Project(Point{Lat: 0, Lon: 180})
	require.NoError(t, err)
	assert.InDelta(t, EarthRadiusMeters*math.Pi, p.X, 1e-3)
	assert.InDelta(t, 0, p.Y, 1e-6)

	// y(45°) = R * ln(tan(67.5°)) ≈ 5615231.2 m
	p, err = Project(Point{Lat: 45, Lon: 0})
	require.NoError(t, err)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 5615231.2, p.Y, 1.0)

	// The projection is symmetric about the equator.
	south, err := Project(Point{Lat: -45, Lon: 0})
	require.NoError(t, err)
	assert.InDelta(t, -p.Y, south.Y, 1e-6)
}

func TestProjectPolesOutOfRange(t *testing.T) {
	for _, lat := range []float64{90, -90, 90.5, -120} {
		_, err := Project(Point{Lat: lat, Lon: 10})
		var oor *models.OutOfRangeError
		require.ErrorAs(t, err, &oor, "lat %v", lat)
		assert.Equal(t, lat, oor.Latitude)
	}
}

func TestProjectAllLenient(t *testing.T) {
	points := []Point{
		{Lat: 0, Lon: 0},
		{Lat: 90, Lon: 0},
		{Lat: 45, Lon: 0},
	}

	projected, faults := ProjectAll(points)

	require.Len(t, projected, 3)
	require.Len(t, faults, 1)
	assert.Equal(t, 1, faults[0].Index)
	assert.Equal(t, 90.0, faults[0].Latitude)
	// Valid samples around the fault are still projected.
	assert.InDelta(t, 5615231.2, projected[2].Y, 1.0)
}

func TestProjectAllStrict(t *testing.T) {
	points := []Point{
		{Lat: 0, Lon: 0},
		{Lat: 91, Lon: 0},
	}

	_, err := ProjectAllStrict(points)

	var oor *models.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 1, oor.Index)

	projected, err := ProjectAllStrict(points[:1])
	require.NoError(t, err)
	assert.Len(t, projected, 1)
}
