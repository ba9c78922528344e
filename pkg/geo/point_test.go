package geo

import (
	"testing"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
)

func TestCoordinateOrder(t *testing.T) {
	c := NewCoordinate(-122.4167, 37.7833)
	assert.Equal(t, [2]float64{-122.4167, 37.7833}, c.Coordinates())
	assert.Equal(t, 37.7833, c.GetLat())
	assert.Equal(t, -122.4167, c.GetLon())
}

func TestPointAdapters(t *testing.T) {
	want := NewCoordinate(110.3695, -7.7956)

	t.Run("orb point", func(t *testing.T) {
		got := FromOrb(orb.Point{110.3695, -7.7956})
		assert.Equal(t, want, got)
	})

	t.Run("osm node", func(t *testing.T) {
		got := FromOSMNode(&osm.Node{ID: 1, Lat: -7.7956, Lon: 110.3695})
		assert.Equal(t, want, got)
	})

	t.Run("s2 latlng", func(t *testing.T) {
		got := FromS2LatLng(s2.LatLngFromDegrees(-7.7956, 110.3695))
		assert.InDelta(t, want.Lon, got.Lon, 1e-12)
		assert.InDelta(t, want.Lat, got.Lat, 1e-12)
	})
}

func TestBearingAcrossAdapters(t *testing.T) {
	from := FromOrb(orb.Point{-122.4167, 37.7833})
	to := FromOSMNode(&osm.Node{Lat: 40.7127, Lon: -74.0059})
	assert.InDelta(t, 69.9194454755196, Bearing(from, to), 1e-9)
}
