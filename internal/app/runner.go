package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"yard-console/internal/logx"
)

const shutdownTimeout = 15 * time.Second

// Runner starts the console from a built container.
type Runner struct {
	runFn     func(*dig.Container) error
	logFatalf func(string, ...interface{})
}

// NewRunner returns a Runner that serves until the container context ends.
func NewRunner() *Runner {
	return &Runner{runFn: run, logFatalf: log.Fatalf}
}

// MustRun runs the console. Cancellation and startup timeouts end quietly;
// any other error is fatal.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Info("startup aborted: startup timeout exceeded")
	default:
		fatalf := r.logFatalf
		if fatalf == nil {
			fatalf = log.Fatalf
		}
		fatalf("run error: %v", err)
	}
}

// MustRun runs the console with the default Runner.
func MustRun(container *dig.Container) {
	NewRunner().MustRun(container)
}

type runIn struct {
	dig.In

	Ctx    context.Context
	Logger logx.Logger
	Server *http.Server
	Pprof  *http.Server `name:"pprof_server" optional:"true"`
	Pool   *pgxpool.Pool
	Flash  *flashBackend `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		errCh := make(chan error, 2)
		startServer(in.Server, in.Logger, "console", errCh)
		if in.Pprof != nil {
			startServer(in.Pprof, in.Logger, "pprof", errCh)
		}

		var runErr error
		select {
		case <-in.Ctx.Done():
			in.Logger.Info("shutting down yard-console")
			runErr = in.Ctx.Err()
		case runErr = <-errCh:
			in.Logger.Error("server stopped unexpectedly", logx.Err(runErr))
		}

		gracefulShutdown(in.Logger, shutdownTimeout, in.Server, in.Pprof)
		closeResources(in.Logger, in.Pool, in.Flash)
		return runErr
	})
}

func startServer(server *http.Server, logger logx.Logger, name string, errCh chan<- error) {
	go func() {
		logger.Info("listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
}

func gracefulShutdown(logger logx.Logger, timeout time.Duration, servers ...*http.Server) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	for _, srv := range servers {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(shCtx); err != nil {
			logger.Warn("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
		}
	}
}

func closeResources(logger logx.Logger, pool *pgxpool.Pool, flash *flashBackend) {
	if flash != nil {
		if err := flash.Close(); err != nil {
			logger.Warn("flash backend close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
