package controllers

import (
	"github.com/lintang-b-s/navbearing/pkg/geo"
	"github.com/lintang-b-s/navbearing/pkg/guidance"
)

const (
	modeSigned   = "signed"
	modeAbsolute = "absolute"
)

// coordinate ranges are not validated, out of range degrees are processed as given.
type bearingRequest struct {
	FromLon float64 `json:"from_lon"`
	FromLat float64 `json:"from_lat"`
	ToLon   float64 `json:"to_lon"`
	ToLat   float64 `json:"to_lat"`
	Mode    string  `json:"mode" validate:"omitempty,oneof=signed absolute"`
}

type bearingResponse struct {
	Bearing      float64 `json:"bearing"`
	FinalBearing float64 `json:"final_bearing"`
	Compass      string  `json:"compass"`
	Mode         string  `json:"mode"`
}

func NewBearingResponse(bearing, finalBearing float64, mode string) bearingResponse {
	return bearingResponse{
		Bearing:      bearing,
		FinalBearing: finalBearing,
		Compass:      guidance.BearingToCompass(bearing),
		Mode:         mode,
	}
}

type coordinateRequest struct {
	Lon *float64 `json:"lon" validate:"required"`
	Lat *float64 `json:"lat" validate:"required"`
}

func (c coordinateRequest) toCoordinate() geo.Coordinate {
	return geo.NewCoordinate(*c.Lon, *c.Lat)
}

type segmentRequest struct {
	From coordinateRequest `json:"from"`
	To   coordinateRequest `json:"to"`
}

type batchBearingRequest struct {
	Pairs []segmentRequest `json:"pairs" validate:"required,min=1,dive"`
	Mode  string           `json:"mode" validate:"omitempty,oneof=signed absolute"`
}

func (req batchBearingRequest) toSegments() []geo.Segment {
	segments := make([]geo.Segment, len(req.Pairs))
	for i, p := range req.Pairs {
		segments[i] = geo.NewSegment(p.From.toCoordinate(), p.To.toCoordinate())
	}
	return segments
}

type batchBearingResponse struct {
	Bearings []float64 `json:"bearings"`
	Mode     string    `json:"mode"`
}

type polylineBearingsRequest struct {
	Polyline string `json:"polyline" validate:"required"`
	Mode     string `json:"mode" validate:"omitempty,oneof=signed absolute"`
}

type polylineBearingsResponse struct {
	Path     []geo.Coordinate `json:"path"`
	Bearings []float64        `json:"bearings"`
	Turns    []string         `json:"turns"`
	Mode     string           `json:"mode"`
}

func NewPolylineBearingsResponse(path []geo.Coordinate, bearings []float64, turns []guidance.Turn, mode string) polylineBearingsResponse {
	turnNames := make([]string, len(turns))
	for i, t := range turns {
		turnNames[i] = t.String()
	}
	return polylineBearingsResponse{
		Path:     path,
		Bearings: bearings,
		Turns:    turnNames,
		Mode:     mode,
	}
}

type headingFix struct {
	Lon *float64 `json:"lon" validate:"required"`
	Lat *float64 `json:"lat" validate:"required"`
}

func (f headingFix) toCoordinate() geo.Coordinate {
	return geo.NewCoordinate(*f.Lon, *f.Lat)
}

type headingResponse struct {
	Heading         float64 `json:"heading"`
	AbsoluteHeading float64 `json:"absolute_heading"`
	Compass         string  `json:"compass"`
}

func NewHeadingResponse(heading float64) headingResponse {
	return headingResponse{
		Heading:         heading,
		AbsoluteHeading: geo.AbsBearing(heading),
		Compass:         guidance.BearingToCompass(heading),
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
