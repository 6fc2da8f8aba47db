package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_AddRejectsInvalidSpec(t *testing.T) {
	s := newScheduler(newDiscardLogger())

	err := s.Add("not a spec", "broken", 0, func(context.Context) error { return nil })
	assert.Error(t, err)
}

func TestScheduler_RunsJob(t *testing.T) {
	s := newScheduler(newDiscardLogger())

	var runs atomic.Int32
	require.NoError(t, s.Add("@every 1s", "count", time.Second, func(ctx context.Context) error {
		runs.Add(1)

		return errors.New("logged, not fatal")
	}))

	s.cron.Start()
	defer s.Stop(context.Background())

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_StopCancelsJobContext(t *testing.T) {
	s := newScheduler(newDiscardLogger())

	s.Stop(context.Background())

	assert.Error(t, s.ctx.Err())
}
