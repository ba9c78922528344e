package controllers

import (
	"context"

	"github.com/lintang-b-s/navbearing/pkg/geo"
	"github.com/lintang-b-s/navbearing/pkg/guidance"
)

type BearingService interface {
	Bearing(from, to geo.Point, absolute bool) (float64, float64, error)
	BatchBearing(ctx context.Context, segments []geo.Segment, absolute bool) ([]float64, error)
	PolylineBearings(encoded string, absolute bool) ([]geo.Coordinate, []float64, []guidance.Turn, error)
	Heading(prev, cur geo.Point) (float64, error)
}
