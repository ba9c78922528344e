package geo

import (
	"fmt"

	"github.com/twpayne/go-polyline"
)

// PathBearings. initial bearing of every segment (points[i], points[i+1]).
func PathBearings(points []Point) []float64 {
	if len(points) < 2 {
		return []float64{}
	}
	bearings := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		bearings = append(bearings, Bearing(points[i-1], points[i]))
	}
	return bearings
}

// DecodePolyline. google encoded polyline (precision 5) to coordinates.
func DecodePolyline(encoded string) ([]Coordinate, error) {
	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("polyline has %d trailing bytes", len(rest))
	}

	path := make([]Coordinate, len(coords))
	for i, c := range coords {
		// polyline coords are [lat, lng]
		path[i] = NewCoordinate(c[1], c[0])
	}
	return path, nil
}

func EncodePolyline(path []Coordinate) string {
	coords := make([][]float64, len(path))
	for i, c := range path {
		coords[i] = []float64{c.GetLat(), c.GetLon()}
	}
	return string(polyline.EncodeCoords(coords))
}

// Segment. directed pair of points, bearing is taken From -> To.
type Segment struct {
	From Coordinate `json:"from"`
	To   Coordinate `json:"to"`
}

func NewSegment(from, to Coordinate) Segment {
	return Segment{From: from, To: to}
}
