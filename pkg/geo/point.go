package geo

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Point. anything that can report its position as [longitude, latitude] in decimal degrees.
// the order matters: a point returning [lat, lng] silently gets a transposed bearing.
type Point interface {
	Coordinates() [2]float64
}

type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

func NewCoordinate(lon, lat float64) Coordinate {
	return Coordinate{
		Lon: lon,
		Lat: lat,
	}
}

func (c Coordinate) Coordinates() [2]float64 {
	return [2]float64{c.Lon, c.Lat}
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

// FromOrb. orb points are already ordered [lng, lat].
func FromOrb(p orb.Point) Coordinate {
	return NewCoordinate(p[0], p[1])
}

func FromOSMNode(n *osm.Node) Coordinate {
	return NewCoordinate(n.Lon, n.Lat)
}

func FromS2LatLng(ll s2.LatLng) Coordinate {
	return NewCoordinate(ll.Lng.Degrees(), ll.Lat.Degrees())
}

// ToPoints. widen a coordinate slice to the Point interface.
func ToPoints(coords []Coordinate) []Point {
	points := make([]Point, len(coords))
	for i := range coords {
		points[i] = coords[i]
	}
	return points
}
