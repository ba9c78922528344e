package geo

import (
	"math"

	"github.com/lintang-b-s/navbearing/pkg/util"
)

/*
Bearing. initial bearing (forward azimuth) of the great circle from `from` to `to`, in degrees.
https://www.movable-type.co.uk/scripts/latlong.html

	θ = atan2( sin Δλ ⋅ cos φ2 , cos φ1 ⋅ sin φ2 − sin φ1 ⋅ cos φ2 ⋅ cos Δλ )

result is signed, in (-180, 180]: 0 north, 90 east, -90 west.
coincident points give atan2(0,0) = 0. inputs are not range checked, NaN propagates.
*/
func Bearing(from, to Point) float64 {
	coord1 := from.Coordinates()
	coord2 := to.Coordinates()

	lng1 := util.DegreeToRadians(coord1[0])
	lng2 := util.DegreeToRadians(coord2[0])
	lat1 := util.DegreeToRadians(coord1[1])
	lat2 := util.DegreeToRadians(coord2[1])

	dLng := lng2 - lng1

	a := math.Sin(dLng) * math.Cos(lat2)
	b := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)

	return util.RadiansToDegree(math.Atan2(a, b))
}

// AbsBearing. map any signed bearing into [0, 360).
// math.Mod keeps the sign of the dividend, so negative remainders get one full turn added.
// a negative remainder smaller than half an ulp of 360 (e.g. -1e-20) rounds to 360.
func AbsBearing(bearing float64) float64 {
	r := math.Mod(bearing, 360.0)
	if r < 0 {
		r += 360.0
	}
	return r
}

// FinalBearing. bearing on arrival at `to`, in [0, 360).
// reverse initial bearing turned around by 180°.
func FinalBearing(from, to Point) float64 {
	return AbsBearing(Bearing(to, from) + 180.0)
}
