package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"yard-console/internal/config"
	"yard-console/internal/http/flash"
	"yard-console/internal/http/handlers"
	"yard-console/internal/http/pprofserver"
	"yard-console/internal/http/router"
	"yard-console/internal/http/view"
	"yard-console/internal/logx"
	"yard-console/internal/metrics"
	"yard-console/internal/repository"
	"yard-console/internal/service/branch"
	"yard-console/internal/service/yard"
)

type dbConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	dbConnect  dbConnectFunc
	migrate    func(context.Context, *pgxpool.Pool) error
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		dbConnect:  connectDbWithRetry,
		migrate:    repository.Migrate,
		logFatalf:  log.Fatalf,
	}
}

// WithConfigLoader replaces config.Load.
func (b *ContainerBuilder) WithConfigLoader(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithDBConnect sets the database connection function.
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate replaces the schema bootstrap run after connecting.
func (b *ContainerBuilder) WithMigrate(fn func(context.Context, *pgxpool.Pool) error) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect dbConnectFunc,
	migrate func(context.Context, *pgxpool.Pool) error,
) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewBranchRepo,
		repository.NewYardRepo,
		func(cfg *config.Config, repo *repository.BranchRepo) *branch.Service {
			return branch.NewService(repo, cfg.ServiceTimeout)
		},
		func(cfg *config.Config, repo *repository.YardRepo, branches *branch.Service) *yard.Service {
			return yard.NewService(repo, branches, cfg.ServiceTimeout)
		},
	)
}

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter     `name:"rate_limit_exceeded_total"`
	ServiceFailuresTotal   *prometheus.CounterVec `name:"service_failures_total"`
}

// provideMetrics registers the container-owned collectors on the default
// registry, reusing already registered ones.
func provideMetrics() (metricsOut, error) {
	rl := metrics.NewRateLimitExceededTotal()
	if err := prometheus.DefaultRegisterer.Register(rl); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return metricsOut{}, fmt.Errorf("register rate_limit_exceeded_total: %w", err)
		}
		existing, ok := are.ExistingCollector.(prometheus.Counter)
		if !ok {
			return metricsOut{}, fmt.Errorf("rate_limit_exceeded_total registered with type %T", are.ExistingCollector)
		}
		rl = existing
	}

	failures := metrics.NewServiceFailuresTotal()
	if err := prometheus.DefaultRegisterer.Register(failures); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return metricsOut{}, fmt.Errorf("register service_failures_total: %w", err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return metricsOut{}, fmt.Errorf("service_failures_total registered with type %T", are.ExistingCollector)
		}
		failures = existing
	}

	return metricsOut{RateLimitExceededTotal: rl, ServiceFailuresTotal: failures}, nil
}

type handlersIn struct {
	dig.In

	Logger   logx.Logger
	Views    *view.Renderer
	Flashes  flash.Store
	Failures *prometheus.CounterVec `name:"service_failures_total"`
}

func newHandlers(in handlersIn) *handlers.Handlers {
	return handlers.New(in.Logger, in.Views, in.Flashes, in.Failures)
}

type pprofOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

func newPprofServer(cfg *config.Config, logger logx.Logger) pprofOut {
	if !cfg.Pprof.Enabled {
		return pprofOut{}
	}
	return pprofOut{Server: pprofserver.New(pprofserver.Config{
		Addr: cfg.Pprof.Addr,
		User: cfg.Pprof.User,
		Pass: cfg.Pprof.Pass,
	}, logger)}
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		provideMetrics,
		view.New,
		newFlashBackend,
		func(b *flashBackend) flash.Store { return b.store },
		newHandlers,
		func(base *handlers.Handlers, svc *branch.Service) *handlers.BranchHandler {
			return handlers.NewBranchHandler(base, svc)
		},
		func(base *handlers.Handlers, yards *yard.Service, branches *branch.Service) *handlers.YardHandler {
			return handlers.NewYardHandler(base, yards, branches)
		},
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
		newPprofServer,
	)
}

// flashBackend pairs the selected store with the resources it holds.
type flashBackend struct {
	store flash.Store
	close func() error
}

func (b *flashBackend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// newFlashBackend picks the one-shot message store from cfg.Flash.Backend.
func newFlashBackend(cfg *config.Config, logger logx.Logger) (*flashBackend, error) {
	switch cfg.Flash.Backend {
	case config.FlashBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("flash backend selected", logx.String("backend", "redis"), logx.String("addr", cfg.Redis.Addr))
		return &flashBackend{store: flash.NewRedisStore(rdb, cfg.Flash.TTL), close: rdb.Close}, nil
	default:
		store, err := flash.NewCookieStore([]byte(cfg.Flash.Secret), cfg.Flash.TTL)
		if err != nil {
			return nil, err
		}
		if cfg.Flash.Secret == "" {
			logger.Warn("FLASH_SECRET not set, using a random per-process secret")
		}
		logger.Info("flash backend selected", logx.String("backend", "cookie"))
		return &flashBackend{store: store}, nil
	}
}
