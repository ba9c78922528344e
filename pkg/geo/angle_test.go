package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	sanFrancisco = NewCoordinate(-122.4167, 37.7833)
	newYork      = NewCoordinate(-74.0059, 40.7127)
	losAngeles   = NewCoordinate(-118.25, 34.05)
)

func TestBearing(t *testing.T) {
	testCases := []struct {
		name  string
		from  Coordinate
		to    Coordinate
		want  float64
		delta float64
	}{
		{name: "due east", from: NewCoordinate(0, 0), to: NewCoordinate(1, 0), want: 90.0},
		{name: "due north", from: NewCoordinate(0, 0), to: NewCoordinate(0, 1), want: 0.0},
		{name: "due south", from: NewCoordinate(0, 1), to: NewCoordinate(0, 0), want: 180.0},
		{name: "due west", from: NewCoordinate(1, 0), to: NewCoordinate(0, 0), want: -90.0},
		{name: "north east diagonal", from: NewCoordinate(0, 0), to: NewCoordinate(1, 1), want: 44.9956, delta: 1e-4},
		{name: "san francisco to new york", from: sanFrancisco, to: newYork, want: 69.9194454755196, delta: 1e-9},
		{name: "san francisco to los angeles", from: sanFrancisco, to: losAngeles, want: 136.6491858805329, delta: 1e-9},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := Bearing(tt.from, tt.to)
			if tt.delta == 0 {
				assert.Equal(t, tt.want, got)
				return
			}
			assert.InDelta(t, tt.want, got, tt.delta)
		})
	}
}

func TestBearingSamePoint(t *testing.T) {
	points := []Coordinate{
		NewCoordinate(0, 0),
		sanFrancisco,
		NewCoordinate(110.3695, -7.7956),
		NewCoordinate(179.9, 89.9),
		NewCoordinate(-180, -90),
	}
	for _, p := range points {
		assert.Equal(t, 0.0, Bearing(p, p), "bearing from %v to itself", p)
	}
}

func TestBearingNotAntisymmetric(t *testing.T) {
	forward := Bearing(sanFrancisco, newYork)
	backward := Bearing(newYork, sanFrancisco)
	assert.NotEqual(t, forward, -backward)

	// along the cardinal axes the reverse bearing is the opposite direction
	assert.Equal(t, 90.0, Bearing(NewCoordinate(0, 0), NewCoordinate(1, 0)))
	assert.Equal(t, -90.0, Bearing(NewCoordinate(1, 0), NewCoordinate(0, 0)))
}

func TestBearingOutOfRangeInput(t *testing.T) {
	// no validation, longitude is periodic
	got := Bearing(NewCoordinate(360, 0), NewCoordinate(361, 0))
	assert.InDelta(t, 90.0, got, 1e-9)
}

func TestBearingNaNPropagates(t *testing.T) {
	got := Bearing(NewCoordinate(math.NaN(), 0), NewCoordinate(1, 0))
	assert.True(t, math.IsNaN(got))
}

func TestBearingRange(t *testing.T) {
	for lon := -180.0; lon <= 180.0; lon += 15 {
		for lat := -85.0; lat <= 85.0; lat += 17 {
			got := Bearing(sanFrancisco, NewCoordinate(lon, lat))
			assert.Greater(t, got, -180.0)
			assert.LessOrEqual(t, got, 180.0)
		}
	}
}

func TestAbsBearing(t *testing.T) {
	testCases := []struct {
		name    string
		bearing float64
		want    float64
	}{
		{name: "positive stays", bearing: 30.0, want: 30.0},
		{name: "negative wraps", bearing: -30.0, want: 330.0},
		{name: "more than one turn", bearing: 710.0, want: 350.0},
		{name: "negative half turn", bearing: -180.0, want: 180.0},
		{name: "positive half turn", bearing: 180.0, want: 180.0},
		{name: "zero", bearing: 0.0, want: 0.0},
		{name: "full turn", bearing: 360.0, want: 0.0},
		{name: "negative full turns", bearing: -750.0, want: 330.0},
		// remainder -1e-20 plus 360 rounds to exactly 360 in float64
		{name: "tiny negative rounds up to a full turn", bearing: -1e-20, want: 360.0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbsBearing(tt.bearing))
		})
	}
}

func TestAbsBearingIdempotent(t *testing.T) {
	for b := -179.5; b <= 180.0; b += 0.5 {
		abs := AbsBearing(b)
		assert.GreaterOrEqual(t, abs, 0.0)
		assert.Less(t, abs, 360.0)
		assert.Equal(t, abs, AbsBearing(abs))
	}
}

func TestFinalBearing(t *testing.T) {
	assert.Equal(t, 90.0, FinalBearing(NewCoordinate(0, 0), NewCoordinate(1, 0)))
	assert.Equal(t, 0.0, FinalBearing(NewCoordinate(0, 0), NewCoordinate(0, 1)))
	assert.InDelta(t, 101.68171332626429, FinalBearing(sanFrancisco, newYork), 1e-9)
}
