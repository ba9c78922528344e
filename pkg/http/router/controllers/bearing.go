package controllers

import (
	"encoding/json"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/navbearing/pkg/geo"
	helper "github.com/lintang-b-s/navbearing/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type bearingAPI struct {
	bearingService BearingService
	log            *zap.Logger
	validate       *validator.Validate
	trans          ut.Translator
}

func New(bearingService BearingService, log *zap.Logger) *bearingAPI {
	validate := validator.New()
	return &bearingAPI{
		bearingService: bearingService,
		log:            log,
		validate:       validate,
		trans:          newTranslator(validate),
	}
}

func (api *bearingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/bearing", api.bearing)
	group.POST("/bearings", api.batchBearing)
	group.GET("/polylineBearings", api.polylineBearings)
	group.GET("/headingStream", api.headingStream)
}

func (api *bearingAPI) bearing(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request bearingRequest
		err     error
	)

	query := r.URL.Query()

	request.FromLon, err = parseFloatParam(query, "from_lon")
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	request.FromLat, err = parseFloatParam(query, "from_lat")
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	request.ToLon, err = parseFloatParam(query, "to_lon")
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	request.ToLat, err = parseFloatParam(query, "to_lat")
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	request.Mode = query.Get("mode")

	if err := api.validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	mode := modeOrDefault(request.Mode)

	bearing, finalBearing, err := api.bearingService.Bearing(
		geo.NewCoordinate(request.FromLon, request.FromLat),
		geo.NewCoordinate(request.ToLon, request.ToLat),
		mode == modeAbsolute,
	)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewBearingResponse(bearing, finalBearing, mode)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *bearingAPI) batchBearing(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request batchBearingRequest

	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := api.validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	mode := modeOrDefault(request.Mode)

	bearings, err := api.bearingService.BatchBearing(r.Context(), request.toSegments(), mode == modeAbsolute)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": batchBearingResponse{Bearings: bearings, Mode: mode}}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *bearingAPI) polylineBearings(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := polylineBearingsRequest{
		Polyline: query.Get("polyline"),
		Mode:     query.Get("mode"),
	}

	if err := api.validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	mode := modeOrDefault(request.Mode)

	path, bearings, turns, err := api.bearingService.PolylineBearings(request.Polyline, mode == modeAbsolute)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewPolylineBearingsResponse(path, bearings, turns, mode)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
