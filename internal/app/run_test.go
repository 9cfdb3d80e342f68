package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"yard-console/internal/logx"
	testlog "yard-console/internal/testutil"
)

func hasMsg(entries []testlog.Entry, msg string) bool {
	for _, e := range entries {
		if e.Msg == msg {
			return true
		}
	}
	return false
}

func loggerContainer(t *testing.T, rec *testlog.Recorder) *dig.Container {
	t.Helper()
	c := dig.New()
	require.NoError(t, c.Provide(func() logx.Logger { return rec.Logger() }))
	return c
}

func TestRunner_MustRun_ShutdownRequested(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	r := &Runner{runFn: func(*dig.Container) error { return context.Canceled }}

	r.MustRun(loggerContainer(t, rec))
	require.True(t, hasMsg(rec.Entries(), "shutdown requested, exiting"))
}

func TestRunner_MustRun_StartupTimeout(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	r := &Runner{runFn: func(*dig.Container) error { return context.DeadlineExceeded }}

	r.MustRun(loggerContainer(t, rec))
	require.True(t, hasMsg(rec.Entries(), "startup aborted: startup timeout exceeded"))
}

func TestRunner_MustRun_OtherErrorIsFatal(t *testing.T) {
	t.Parallel()

	var fatal string
	r := &Runner{
		runFn: func(*dig.Container) error { return errors.New("port in use") },
		logFatalf: func(format string, args ...interface{}) {
			fatal = fmt.Sprintf(format, args...)
		},
	}

	r.MustRun(loggerContainer(t, testlog.New()))
	require.Equal(t, "run error: port in use", fatal)
}

func TestNewRunner_DefaultFields(t *testing.T) {
	t.Parallel()

	r := NewRunner()
	require.NotNil(t, r)
	require.NotNil(t, r.runFn)
	require.NotNil(t, r.logFatalf)
	require.Equal(t, fmt.Sprintf("%p", run), fmt.Sprintf("%p", r.runFn))
}

func TestGracefulShutdown_DoesNotPanic(t *testing.T) {
	t.Parallel()

	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}

	require.NotPanics(t, func() {
		gracefulShutdown(logx.Nop(), 100*time.Millisecond, srv, nil)
	})
}

func TestCloseResources_NilSafe(t *testing.T) {
	t.Parallel()

	closed := false
	require.NotPanics(t, func() {
		closeResources(logx.Nop(), nil, &flashBackend{close: func() error {
			closed = true
			return nil
		}})
		closeResources(logx.Nop(), nil, nil)
	})
	require.True(t, closed)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := testlog.New()
	c := dig.New()
	require.NoError(t, c.Provide(func() context.Context { return ctx }))
	require.NoError(t, c.Provide(func() logx.Logger { return rec.Logger() }))
	require.NoError(t, c.Provide(func() *pgxpool.Pool { return nil }))
	require.NoError(t, c.Provide(func() *http.Server {
		return &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	}))

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := run(c)
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, hasMsg(rec.Entries(), "shutting down yard-console"))
}

func TestRun_ListenFailureIsReported(t *testing.T) {
	t.Parallel()

	c := dig.New()
	require.NoError(t, c.Provide(context.Background))
	require.NoError(t, c.Provide(logx.Nop))
	require.NoError(t, c.Provide(func() *pgxpool.Pool { return nil }))
	require.NoError(t, c.Provide(func() *http.Server {
		return &http.Server{Addr: "127.0.0.1:-1", Handler: http.NewServeMux()}
	}))

	err := run(c)
	require.Error(t, err)
	require.NotErrorIs(t, err, context.Canceled)
}
