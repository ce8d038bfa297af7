package sweeper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PlaceBooking/internal/usecase/expire_bookings"
	"github.com/m04kA/SMC-PlaceBooking/pkg/logger"
)

type stubExpirer struct {
	calls     atomic.Int32
	completed int
	err       error
	deadline  bool
}

func (s *stubExpirer) Execute(ctx context.Context) (*expire_bookings.Response, error) {
	s.calls.Add(1)
	_, s.deadline = ctx.Deadline()
	if s.err != nil {
		return nil, s.err
	}
	return &expire_bookings.Response{Completed: s.completed}, nil
}

type runCounter struct {
	results map[string]int
}

func (r *runCounter) IncSweeperRun(result string) {
	if r.results == nil {
		r.results = make(map[string]int)
	}
	r.results[result]++
}

func TestRunOnce_ReturnsCompletedCount(t *testing.T) {
	expirer := &stubExpirer{completed: 3}
	runs := &runCounter{}
	s := New("", 0, nil, expirer, runs, logger.NewNop())

	n, err := s.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, expirer.deadline)
	assert.Equal(t, 1, runs.results["ok"])
}

func TestRunOnce_PropagatesError(t *testing.T) {
	expirer := &stubExpirer{err: errors.New("db down")}
	runs := &runCounter{}
	s := New("", 0, nil, expirer, runs, logger.NewNop())

	_, err := s.RunOnce(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, runs.results["error"])
}

func TestStart_InvalidSchedule(t *testing.T) {
	s := New("every sometimes", 0, nil, &stubExpirer{}, &runCounter{}, logger.NewNop())

	assert.Error(t, s.Start())
}

func TestStart_RunsOnSchedule(t *testing.T) {
	expirer := &stubExpirer{}
	s := New("@every 1s", time.Second, time.UTC, expirer, &runCounter{}, logger.NewNop())
	require.NoError(t, s.Start())

	assert.Eventually(t, func() bool { return expirer.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
