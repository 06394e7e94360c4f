package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/modeststyle-backend/api/controllers"
	"github.com/angelmondragon/modeststyle-backend/api/routes"
	"github.com/angelmondragon/modeststyle-backend/internal/access"
	"github.com/angelmondragon/modeststyle-backend/internal/admin"
	"github.com/angelmondragon/modeststyle-backend/internal/cart"
	"github.com/angelmondragon/modeststyle-backend/internal/checkout"
	"github.com/angelmondragon/modeststyle-backend/internal/content"
	"github.com/angelmondragon/modeststyle-backend/internal/cron"
	"github.com/angelmondragon/modeststyle-backend/internal/forwarding"
	"github.com/angelmondragon/modeststyle-backend/internal/payments"
	"github.com/angelmondragon/modeststyle-backend/internal/snapshot"
	"github.com/angelmondragon/modeststyle-backend/internal/wishlist"
	"github.com/angelmondragon/modeststyle-backend/pkg/backend"
	"github.com/angelmondragon/modeststyle-backend/pkg/config"
	"github.com/angelmondragon/modeststyle-backend/pkg/db"
	"github.com/angelmondragon/modeststyle-backend/pkg/env"
	"github.com/angelmondragon/modeststyle-backend/pkg/instance"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
	"github.com/angelmondragon/modeststyle-backend/pkg/metrics"
	"github.com/angelmondragon/modeststyle-backend/pkg/migrate"
	"github.com/angelmondragon/modeststyle-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(context.Background(), "api stopped", err)
		os.Exit(1)
	}
}

// closers collects shutdown hooks; they run in reverse order and all errors are kept.
type closers []func() error

func (c closers) close() error {
	var err error
	for i := len(c) - 1; i >= 0; i-- {
		err = multierr.Append(err, c[i]())
	}
	return err
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) (err error) {
	var cleanup closers
	defer func() {
		err = multierr.Append(err, cleanup.close())
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	paymentMetrics := metrics.NewPaymentMetrics(reg)
	jobMetrics := metrics.NewJobMetrics(reg)

	pingers := map[string]controllers.Pinger{}

	var redisClient *redis.Client
	if cfg.Redis.IsConfigured() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return err
		}
		cleanup = append(cleanup, redisClient.Close)
		pingers["redis"] = redisClient
	}

	var (
		snapshots snapshot.Port
		purger    *snapshot.GormStore
	)
	switch cfg.Snapshot.Normalized() {
	case config.SnapshotBackendRedis:
		store, storeErr := snapshot.NewRedisStore(redisClient, cfg.Snapshot.TTL)
		if storeErr != nil {
			return storeErr
		}
		snapshots = store
	case config.SnapshotBackendDB:
		dbClient, dbErr := db.New(ctx, cfg.DB, logg)
		if dbErr != nil {
			return dbErr
		}
		cleanup = append(cleanup, dbClient.Close)
		pingers["db"] = dbClient
		if err := migrate.MaybeRun(ctx, cfg.DB, logg, dbClient); err != nil {
			return err
		}
		store, storeErr := snapshot.NewGormStore(dbClient.DB(), cfg.Snapshot.TTL)
		if storeErr != nil {
			return storeErr
		}
		snapshots, purger = store, store
	default:
		snapshots = snapshot.NewMemoryStore(cfg.Snapshot.TTL)
	}

	cartService, err := cart.NewService(cart.ServiceParams{Port: snapshots, Logger: logg, IdleTTL: cfg.Session.IdleTTL})
	if err != nil {
		return err
	}
	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{Port: snapshots, Logger: logg})
	if err != nil {
		return err
	}

	backendClient, err := backend.NewClient(cfg.Backend.BaseURL)
	if err != nil {
		return err
	}
	forwardClient, err := backend.NewClient(cfg.Payments.ForwardBaseURL)
	if err != nil {
		return err
	}
	paymentClient, err := payments.NewClient(payments.ClientParams{Forwarder: forwardClient, Logger: logg, Metrics: paymentMetrics})
	if err != nil {
		return err
	}

	drafts := checkout.NewSessions(cfg.Checkout.SessionTTL)
	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Carts:    cartService,
		Payments: paymentClient,
		Sessions: drafts,
		Logger:   logg,
	})
	if err != nil {
		return err
	}

	forwardingService, err := forwarding.NewService(forwarding.ServiceParams{Backend: backendClient, Logger: logg, Metrics: paymentMetrics})
	if err != nil {
		return err
	}
	contentService, err := content.NewService(content.ServiceParams{Client: content.NewClient(cfg.CMS), Logger: logg})
	if err != nil {
		return err
	}
	if !contentService.Configured() {
		logg.Warn(ctx, "cms project not configured, content endpoints return empty results")
	}
	adminService, err := admin.NewService(admin.ServiceParams{Backend: backendClient, Logger: logg})
	if err != nil {
		return err
	}

	if cfg.Jobs.Enabled {
		housekeeping, hkErr := newHousekeeping(cfg, logg, redisClient, jobMetrics, purger, cartService, drafts)
		if hkErr != nil {
			return hkErr
		}
		go func() {
			if runErr := housekeeping.Run(ctx); runErr != nil && !errors.Is(runErr, context.Canceled) {
				logg.Error(ctx, "housekeeping stopped", runErr)
			}
		}()
	}

	// PORT is injected by the platform and wins over the configured port.
	addr := ":" + env.Get("PORT", cfg.App.Port)
	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:     cfg,
			Logger:     logg,
			Registry:   reg,
			Pingers:    pingers,
			Sessions:   access.NewJWTResolver(cfg.JWT),
			Cart:       cartService,
			Wishlist:   wishlistService,
			Checkout:   checkoutService,
			Forwarding: forwardingService,
			Content:    contentService,
			Admin:      adminService,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logCtx := logg.WithFields(ctx, map[string]any{
		"env":              cfg.App.Env,
		"instance":         instance.ID(),
		"addr":             addr,
		"snapshot_backend": cfg.Snapshot.Normalized(),
	})
	logg.Info(logCtx, "starting api server")

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logg.Info(logCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newHousekeeping registers the purge and sweep jobs. The purge touches shared
// storage, so replicas sharing redis take turns through a redis lock. The sweep
// clears this process's caches and runs on every tick.
func newHousekeeping(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	jobMetrics *metrics.JobMetrics,
	purger *snapshot.GormStore,
	sweepers ...cron.Sweeper,
) (*cron.Service, error) {
	shared := cron.NewRegistry()
	if purger != nil {
		job, err := cron.NewSnapshotPurgeJob(cron.SnapshotPurgeJobParams{Logger: logg, Store: purger})
		if err != nil {
			return nil, err
		}
		shared.Register(job)
	}
	sweep, err := cron.NewSessionSweepJob(sweepers...)
	if err != nil {
		return nil, err
	}

	var lock cron.Lock = &cron.LocalLock{}
	if redisClient != nil {
		redisLock, err := cron.NewRedisLock(redisClient, redisClient.LockKey("housekeeping"), 0)
		if err != nil {
			return nil, err
		}
		lock = redisLock
	}

	return cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: shared,
		Local:    cron.NewRegistry(sweep),
		Lock:     lock,
		Metrics:  jobMetrics,
		Interval: cfg.Jobs.Interval,
	})
}
