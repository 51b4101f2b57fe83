package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"dashboard/internal/app"
	"dashboard/internal/handlers/kafka-consumer/order_status_changed"
	"dashboard/internal/handlers/rest/dashboard_delete"
	"dashboard/internal/handlers/rest/dashboard_get"
	"dashboard/internal/handlers/rest/dashboard_refresh_post"
	"dashboard/internal/handlers/rest/dashboard_stream_get"
	"dashboard/internal/handlers/rest/delivery_assign_post"
	"dashboard/internal/handlers/rest/delivery_status_put"
	"dashboard/internal/handlers/rest/healthcheck_head"
	"dashboard/internal/handlers/rest/notification_read_put"
	"dashboard/internal/handlers/rest/notification_test_post"
	"dashboard/internal/handlers/rest/notifications_read_all_post"
	"dashboard/internal/handlers/rest/notifications_sort_put"
	"dashboard/internal/handlers/rest/order_delete"
	"dashboard/internal/handlers/rest/order_post"
	"dashboard/internal/handlers/rest/order_status_put"
	"dashboard/internal/handlers/rest/ping_get"
	"dashboard/internal/handlers/rest/user_delete"
	"dashboard/internal/pkg/config"
	"dashboard/internal/pkg/dotenv"
	"dashboard/internal/pkg/kafka"
	metrics_system "dashboard/internal/pkg/metrics"
	"dashboard/internal/pkg/middlewares/gate"
	"dashboard/internal/pkg/middlewares/graceful_shutdown"
	"dashboard/internal/pkg/middlewares/metrics"
	"dashboard/internal/pkg/middlewares/rate_limiter"
	"dashboard/internal/pkg/middlewares/session"
	"dashboard/internal/pkg/middlewares/timeout"
	"dashboard/internal/pkg/probe"
	"dashboard/pkg/logger"
	"dashboard/pkg/logger/zap_adapter"
	"dashboard/pkg/token_bucket"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const rateLimiterIdleTTL = 10 * time.Minute

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Options{
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Format,
	})
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting dashboard application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx наследуются от context.Background() намеренно, это часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	client := &http.Client{Timeout: cfg.Backend.CallTimeout}
	probesDone := probeBackends(ctx, log, client, cfg.Backend)
	defer func() {
		stop()
		<-probesDone
	}()

	businessApp, err := app.InitializeApplication(ctx, log, client, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer businessApp.Close()

	metrics_system.StartSystemMetricsCollector(ctx, 5*time.Second)

	var consumerErr chan error
	if cfg.Kafka.Enabled {
		consumer, err := kafka.NewConsumer(ctx, log, cfg.Kafka, order_status_changed.New(
			log,
			businessApp.Views,
			cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout,
		))
		if err != nil {
			return fmt.Errorf("kafka consumer: %w", err)
		}
		defer func() {
			if err := consumer.Close(); err != nil {
				runLog.Error("failed to close kafka consumer", logger.NewField("error", err))
			}
		}()

		consumerErr = make(chan error, 1)
		go func() {
			defer close(consumerErr)
			if err := consumer.Start(ctx); err != nil {
				consumerErr <- err
			}
		}()
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	// nil-каналы выключенных серверов в select никогда не срабатывают
	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr:
		return fmt.Errorf("pprof server: %w", err)
	case err, ok := <-consumerErr:
		if ok {
			return fmt.Errorf("kafka consumer: %w", err)
		}
		runLog.Warn("kafka consumer stopped")
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

// probeBackends проверяет доступность сервисов в фоне. Недоступный сервис не мешает запуску.
func probeBackends(ctx context.Context, log logger.Logger, client *http.Client, cfg config.Backend) <-chan struct{} {
	targets := []struct {
		name string
		url  string
	}{
		{name: "gateway", url: cfg.GatewayURL},
		{name: "user-service", url: cfg.UserServiceURL},
		{name: "order-service", url: cfg.OrderServiceURL},
		{name: "delivery-service", url: cfg.DeliveryServiceURL},
		{name: "notification-service", url: cfg.NotificationServiceURL},
	}

	probeTargets := make([]probe.Target, 0, len(targets))
	for _, t := range targets {
		probeTargets = append(probeTargets, probe.Target{
			Name:    t.name,
			URL:     t.url,
			Retrier: probe.NewRetrier(log, t.name),
		})
	}
	return probe.Background(ctx, log, client, probeTargets)
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	businessApp *app.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(session.Middleware())
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS,
		token_bucket.NewKeyed(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS), rateLimiterIdleTTL),
	))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, businessApp.Views)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	check := gate.Check(log)
	acquire := gate.Acquire(log, businessApp.Views.Acquire)
	active := func(h http.Handler) http.Handler {
		return check(acquire(h))
	}
	d := businessApp.Dispatcher

	router.Handle("/dashboard/{view}", active(dashboard_get.New(log))).Methods("GET")
	router.Handle("/dashboard/{view}", check(dashboard_delete.New(log, businessApp.Views))).Methods("DELETE")
	router.Handle("/dashboard/{view}/refresh", active(dashboard_refresh_post.New(log))).Methods("POST")
	router.Handle("/dashboard/{view}/stream", active(dashboard_stream_get.New(log))).Methods("GET")

	router.Handle("/dashboard/{view}/notifications/sort", active(notifications_sort_put.New(log))).Methods("PUT")
	router.Handle("/dashboard/{view}/notifications/{id}/read", active(notification_read_put.New(log, d))).Methods("PUT")
	router.Handle("/dashboard/{view}/notifications/read-all", active(notifications_read_all_post.New(log, d))).Methods("POST")
	router.Handle("/dashboard/{view}/notifications/test", active(notification_test_post.New(log, d))).Methods("POST")

	router.Handle("/dashboard/{view:admin}/orders/{id}/status", active(order_status_put.New(log, d))).Methods("PUT")
	router.Handle("/dashboard/{view:admin}/deliveries", active(delivery_assign_post.New(log, d))).Methods("POST")
	router.Handle("/dashboard/{view:admin}/users/{id}", active(user_delete.New(log, d))).Methods("DELETE")

	router.Handle("/dashboard/{view:customer}/orders", active(order_post.New(log, d))).Methods("POST")
	router.Handle("/dashboard/{view:customer}/orders/{id}", active(order_delete.New(log, d))).Methods("DELETE")

	router.Handle("/dashboard/{view:delivery}/deliveries/{id}/status", active(delivery_status_put.New(log, d))).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
