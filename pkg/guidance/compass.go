package guidance

import "github.com/lintang-b-s/navbearing/pkg/geo"

// BearingToCompass. 8-wind compass point for a bearing in degrees.
func BearingToCompass(bearing float64) string {
	bearing = geo.AbsBearing(bearing)
	if bearing < 22.5 {
		return "North"
	} else if bearing < 67.5 {
		return "North East"
	} else if bearing < 112.5 {
		return "East"
	} else if bearing < 157.5 {
		return "South East"
	} else if bearing < 202.5 {
		return "South"
	} else if bearing < 247.5 {
		return "South West"
	} else if bearing < 292.5 {
		return "West"
	} else if bearing < 337.5 {
		return "North West"
	}
	return "North"
}
