package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUsecase "pulse/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestServer(t *testing.T, pollInterval time.Duration) (*schedulerServer, *mockUsecase.MockScheduleUsecase) {
	t.Helper()

	schedules := mockUsecase.NewMockScheduleUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &schedulerServer{
		logger:       logger,
		schedules:    schedules,
		pollInterval: pollInterval,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}, schedules
}

func TestSchedulerServer_SweepsOnTick(t *testing.T) {
	srv, schedules := createTestServer(t, 5*time.Millisecond)

	swept := make(chan struct{})
	schedules.EXPECT().ProcessDueSchedules(mock.Anything).RunAndReturn(func(context.Context) (int, error) {
		select {
		case swept <- struct{}{}:
		default:
		}

		return 1, nil
	})

	go srv.Serve(context.Background())

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("expected a sweep to run")
	}

	assert.NoError(t, srv.shutdown(context.Background()))
}

func TestSchedulerServer_KeepsPollingAfterSweepError(t *testing.T) {
	srv, schedules := createTestServer(t, 5*time.Millisecond)

	calls := 0
	recovered := make(chan struct{})
	schedules.EXPECT().ProcessDueSchedules(mock.Anything).RunAndReturn(func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("database unavailable")
		}
		select {
		case recovered <- struct{}{}:
		default:
		}

		return 0, nil
	})

	go srv.Serve(context.Background())

	select {
	case <-recovered:
	case <-time.After(time.Second):
		t.Fatal("expected polling to continue after a failed sweep")
	}

	assert.NoError(t, srv.shutdown(context.Background()))
}

func TestSchedulerServer_StopsOnContextCancel(t *testing.T) {
	srv, _ := createTestServer(t, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ctx)
	}()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("expected Serve to return on context cancellation")
	}
}
