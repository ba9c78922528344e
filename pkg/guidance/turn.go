package guidance

import (
	"github.com/lintang-b-s/navbearing/pkg/geo"
)

type Turn int

const (
	TURN_SHARP_LEFT    Turn = -3
	TURN_LEFT          Turn = -2
	TURN_SLIGHT_LEFT   Turn = -1
	CONTINUE_ON_STREET Turn = 0
	TURN_SLIGHT_RIGHT  Turn = 1
	TURN_RIGHT         Turn = 2
	TURN_SHARP_RIGHT   Turn = 3
)

func (t Turn) String() string {
	switch t {
	case TURN_SHARP_LEFT:
		return "sharp_left"
	case TURN_LEFT:
		return "left"
	case TURN_SLIGHT_LEFT:
		return "slight_left"
	case CONTINUE_ON_STREET:
		return "continue"
	case TURN_SLIGHT_RIGHT:
		return "slight_right"
	case TURN_RIGHT:
		return "right"
	case TURN_SHARP_RIGHT:
		return "sharp_right"
	}
	return "unknown"
}

/*
DeltaBearing. signed change of heading from prevBearing to bearing, folded into (-180°, 180°].
positive = clockwise (right), negative = counter-clockwise (left).

misal:

	          \
			   \ bearing (350°)
				\
				/
			   /		prevBearing (20°)
			  /

dif = 350° - 20° = 330°, harusnya belok kiri 30°. fold: 330° - 360° = -30°.
*/ // nolint: gofmt
func DeltaBearing(prevBearing, bearing float64) float64 {
	delta := bearing - prevBearing
	if delta > 180 {
		delta -= 360
	} else if delta <= -180 {
		delta += 360
	}
	return delta
}

// TurnDirection. classify the heading change at a vertex. bearings in degrees, signed or absolute.
func TurnDirection(prevBearing, bearing float64) Turn {
	delta := DeltaBearing(prevBearing, bearing)
	absDelta := delta
	if absDelta < 0 {
		absDelta = -absDelta
	}

	if absDelta < 12 {
		// 12°
		return CONTINUE_ON_STREET
	} else if absDelta < 40 {
		if delta < 0 {
			return TURN_SLIGHT_LEFT
		}
		return TURN_SLIGHT_RIGHT
	} else if absDelta < 105 {
		if delta < 0 {
			return TURN_LEFT
		}
		return TURN_RIGHT
	} else if delta < 0 {
		return TURN_SHARP_LEFT
	}
	return TURN_SHARP_RIGHT
}

// PathTurns. turn at every interior vertex of the path, len(points)-2 values.
func PathTurns(points []geo.Point) []Turn {
	bearings := geo.PathBearings(points)
	if len(bearings) < 2 {
		return []Turn{}
	}
	turns := make([]Turn, 0, len(bearings)-1)
	for i := 1; i < len(bearings); i++ {
		turns = append(turns, TurnDirection(bearings[i-1], bearings[i]))
	}
	return turns
}
