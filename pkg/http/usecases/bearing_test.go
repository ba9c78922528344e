package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/lintang-b-s/navbearing/pkg/geo"
	"github.com/lintang-b-s/navbearing/pkg/guidance"
	"github.com/lintang-b-s/navbearing/pkg/metrics"
	"github.com/lintang-b-s/navbearing/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	sanFrancisco = geo.NewCoordinate(-122.4167, 37.7833)
	newYork      = geo.NewCoordinate(-74.0059, 40.7127)
	losAngeles   = geo.NewCoordinate(-118.25, 34.05)
)

func newTestService(t *testing.T, maxPairs int) (*BearingService, *metrics.Metrics) {
	t.Helper()
	m := metrics.NewMetrics(prometheus.NewRegistry())
	return NewBearingService(zap.NewNop(), m, 4, maxPairs), m
}

func TestBearing(t *testing.T) {
	bs, m := newTestService(t, 10)

	bearing, final, err := bs.Bearing(geo.NewCoordinate(1, 0), geo.NewCoordinate(0, 0), false)
	require.NoError(t, err)
	assert.Equal(t, -90.0, bearing)
	assert.Equal(t, 270.0, final)

	bearing, _, err = bs.Bearing(geo.NewCoordinate(1, 0), geo.NewCoordinate(0, 0), true)
	require.NoError(t, err)
	assert.Equal(t, 270.0, bearing)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BearingQueryCount.WithLabelValues("single")))
}

func assertBadParam(t *testing.T, err error) {
	t.Helper()
	var uerr *util.Error
	require.True(t, errors.As(err, &uerr), "want *util.Error, got %v", err)
	assert.Equal(t, util.ErrBadParamInput, uerr.Code())
}

func TestBearingOverflow(t *testing.T) {
	bs, m := newTestService(t, 10)

	// 1e308 degrees is finite but overflows to Inf in radians, the bearing is NaN
	huge := geo.NewCoordinate(1e308, 0)

	_, _, err := bs.Bearing(huge, geo.NewCoordinate(0, 0), false)
	assertBadParam(t, err)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.BearingQueryCount.WithLabelValues("single")))

	_, err = bs.BatchBearing(context.Background(), []geo.Segment{
		geo.NewSegment(sanFrancisco, newYork),
		geo.NewSegment(huge, geo.NewCoordinate(0, 0)),
	}, true)
	assertBadParam(t, err)
	assert.Contains(t, err.Error(), "pairs[1]")

	_, err = bs.Heading(geo.NewCoordinate(0, 0), huge)
	assertBadParam(t, err)
}

func TestBatchBearing(t *testing.T) {
	bs, m := newTestService(t, 100)

	segments := []geo.Segment{
		geo.NewSegment(sanFrancisco, newYork),
		geo.NewSegment(sanFrancisco, losAngeles),
		geo.NewSegment(geo.NewCoordinate(0, 0), geo.NewCoordinate(1, 0)),
		geo.NewSegment(geo.NewCoordinate(1, 0), geo.NewCoordinate(0, 0)),
		geo.NewSegment(sanFrancisco, sanFrancisco),
	}

	t.Run("signed keeps input order", func(t *testing.T) {
		got, err := bs.BatchBearing(context.Background(), segments, false)
		require.NoError(t, err)
		require.Len(t, got, len(segments))
		assert.InDelta(t, 69.9194454755196, got[0], 1e-9)
		assert.InDelta(t, 136.6491858805329, got[1], 1e-9)
		assert.Equal(t, 90.0, got[2])
		assert.Equal(t, -90.0, got[3])
		assert.Equal(t, 0.0, got[4])
	})

	t.Run("absolute", func(t *testing.T) {
		got, err := bs.BatchBearing(context.Background(), segments, true)
		require.NoError(t, err)
		assert.Equal(t, 270.0, got[3])
		for _, b := range got {
			assert.GreaterOrEqual(t, b, 0.0)
			assert.Less(t, b, 360.0)
		}
	})

	assert.Equal(t, float64(2*len(segments)), testutil.ToFloat64(m.BearingQueryCount.WithLabelValues("batch")))
}

func TestBatchBearingManyPairs(t *testing.T) {
	bs, _ := newTestService(t, 5000)

	segments := make([]geo.Segment, 5000)
	for i := range segments {
		lon := float64(i%360) - 180
		segments[i] = geo.NewSegment(sanFrancisco, geo.NewCoordinate(lon, 10))
	}

	got, err := bs.BatchBearing(context.Background(), segments, false)
	require.NoError(t, err)
	for i, seg := range segments {
		assert.Equal(t, geo.Bearing(seg.From, seg.To), got[i])
	}
}

func TestBatchBearingTooManyPairs(t *testing.T) {
	bs, _ := newTestService(t, 1)

	_, err := bs.BatchBearing(context.Background(), []geo.Segment{
		geo.NewSegment(sanFrancisco, newYork),
		geo.NewSegment(sanFrancisco, losAngeles),
	}, false)

	assertBadParam(t, err)
}

func TestBatchBearingCanceled(t *testing.T) {
	bs, _ := newTestService(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bs.BatchBearing(ctx, []geo.Segment{geo.NewSegment(sanFrancisco, newYork)}, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPolylineBearings(t *testing.T) {
	bs, _ := newTestService(t, 10)

	encoded := geo.EncodePolyline([]geo.Coordinate{
		geo.NewCoordinate(0, 0),
		geo.NewCoordinate(0, 1),
		geo.NewCoordinate(1, 1),
		geo.NewCoordinate(1, 0),
	})

	path, bearings, turns, err := bs.PolylineBearings(encoded, true)
	require.NoError(t, err)
	assert.Len(t, path, 4)
	require.Len(t, bearings, 3)
	assert.Equal(t, 0.0, bearings[0])
	assert.InDelta(t, 90.0, bearings[1], 0.01)
	assert.Equal(t, 180.0, bearings[2])
	assert.Equal(t, []guidance.Turn{guidance.TURN_RIGHT, guidance.TURN_RIGHT}, turns)

	_, _, _, err = bs.PolylineBearings("_p~iF~ps|U_", false)
	assertBadParam(t, err)
}

func TestHeading(t *testing.T) {
	bs, _ := newTestService(t, 10)
	heading, err := bs.Heading(geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, heading)

	heading, err = bs.Heading(sanFrancisco, sanFrancisco)
	require.NoError(t, err)
	assert.Equal(t, 0.0, heading)
}
