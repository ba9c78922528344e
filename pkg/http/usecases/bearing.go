package usecases

import (
	"context"
	"math"

	"github.com/lintang-b-s/navbearing/pkg/concurrent"
	"github.com/lintang-b-s/navbearing/pkg/geo"
	"github.com/lintang-b-s/navbearing/pkg/guidance"
	"github.com/lintang-b-s/navbearing/pkg/metrics"
	"github.com/lintang-b-s/navbearing/pkg/util"
	"go.uber.org/zap"
)

type BearingService struct {
	log        *zap.Logger
	metrics    *metrics.Metrics
	numWorkers int
	maxPairs   int
}

func NewBearingService(log *zap.Logger, m *metrics.Metrics, numWorkers, maxPairs int) *BearingService {
	return &BearingService{
		log:        log,
		metrics:    m,
		numWorkers: numWorkers,
		maxPairs:   maxPairs,
	}
}

// Bearing. initial bearing (signed, or absolute when absolute=true) and final bearing in [0, 360).
func (bs *BearingService) Bearing(from, to geo.Point, absolute bool) (float64, float64, error) {
	bearing, final := geo.Bearing(from, to), geo.FinalBearing(from, to)
	if err := checkFinite(from, to, bearing, final); err != nil {
		return 0, 0, err
	}
	bs.metrics.AddBearings("single", 1)
	return orient(bearing, absolute), final, nil
}

type bearingJob struct {
	index   int
	segment geo.Segment
}

type bearingResult struct {
	index   int
	bearing float64
}

// BatchBearing. bearings of many segments through the worker pool, result i belongs to segments[i].
func (bs *BearingService) BatchBearing(ctx context.Context, segments []geo.Segment, absolute bool) ([]float64, error) {
	if len(segments) > bs.maxPairs {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "too many pairs: %d, maximum is %d", len(segments), bs.maxPairs)
	}

	wp := concurrent.NewWorkerPool[bearingJob, bearingResult](bs.numWorkers, len(segments))
	wp.Start(func(job bearingJob) bearingResult {
		return bearingResult{
			index:   job.index,
			bearing: orient(geo.Bearing(job.segment.From, job.segment.To), absolute),
		}
	})
	bs.log.Debug("batch bearing started", zap.Int("pairs", len(segments)), zap.Int("workers", wp.NumWorkers()))

	for i, seg := range segments {
		if util.StopConcurrentOperation(ctx) {
			break
		}
		wp.AddJob(bearingJob{index: i, segment: seg})
	}
	wp.Close()
	wp.Wait()

	if err := ctx.Err(); err != nil {
		bs.log.Info("batch bearing canceled", zap.Int("pairs", len(segments)), zap.Error(err))
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "batch bearing canceled")
	}

	bearings := make([]float64, len(segments))
	for res := range wp.CollectResults() {
		bearings[res.index] = res.bearing
	}
	for i, b := range bearings {
		if err := checkFinite(segments[i].From, segments[i].To, b); err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "pairs[%d]: %v", i, err)
		}
	}

	bs.metrics.AddBearings("batch", len(segments))
	return bearings, nil
}

// PolylineBearings. decode an encoded polyline, then bearing of every segment and turn at every interior vertex.
func (bs *BearingService) PolylineBearings(encoded string, absolute bool) ([]geo.Coordinate, []float64, []guidance.Turn, error) {
	path, err := geo.DecodePolyline(encoded)
	if err != nil {
		return nil, nil, nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid polyline: %v", err)
	}

	points := geo.ToPoints(path)
	bearings := geo.PathBearings(points)
	turns := guidance.PathTurns(points)
	for i := range bearings {
		if err := checkFinite(points[i], points[i+1], bearings[i]); err != nil {
			return nil, nil, nil, err
		}
		bearings[i] = orient(bearings[i], absolute)
	}

	bs.metrics.AddBearings("polyline", len(bearings))
	return path, bearings, turns, nil
}

// Heading. signed bearing between two consecutive fixes of a stream.
func (bs *BearingService) Heading(prev, cur geo.Point) (float64, error) {
	heading := geo.Bearing(prev, cur)
	if err := checkFinite(prev, cur, heading); err != nil {
		return 0, err
	}
	bs.metrics.AddBearings("stream", 1)
	return heading, nil
}

// checkFinite. finite degrees can still overflow in the radian conversion (|deg| > ~5.7e307),
// the bearing then comes out NaN and cannot be encoded as json.
func checkFinite(from, to geo.Point, bearings ...float64) error {
	for _, b := range bearings {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return util.WrapErrorf(nil, util.ErrBadParamInput,
				"bearing from %v to %v is not a finite number", from.Coordinates(), to.Coordinates())
		}
	}
	return nil
}

func orient(bearing float64, absolute bool) float64 {
	if absolute {
		return geo.AbsBearing(bearing)
	}
	return bearing
}
