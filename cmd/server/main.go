package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	g "github.com/mahabubulhasibshawon/storefront/internal/adapters/grpc"
	h "github.com/mahabubulhasibshawon/storefront/internal/adapters/http"
	"github.com/mahabubulhasibshawon/storefront/internal/adapters/mpesa"
	"github.com/mahabubulhasibshawon/storefront/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/storefront/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/storefront/internal/application"
	"github.com/mahabubulhasibshawon/storefront/internal/config"
	"github.com/mahabubulhasibshawon/storefront/internal/domain"
	"github.com/mahabubulhasibshawon/storefront/internal/logger"
	"github.com/mahabubulhasibshawon/storefront/internal/pricing"
	"github.com/mahabubulhasibshawon/storefront/pkg/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := repository.Open(cfg.DB.DSN())
	if err != nil {
		log.WithError(err).Fatal("failed to connect to DB")
	}
	defer db.Close()
	if err := repository.RunMigrations(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	redisClient := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
	defer redisClient.Close()
	cache := redis.NewCache(redisClient, cfg.CacheTTL)
	if err := cache.Ping(context.Background()); err != nil {
		log.WithError(err).Fatal("failed to connect to Redis")
	}

	repo := repository.NewPostgresRepository(db)
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.AccessTokenTTL)
	engine := pricing.NewEngine(cfg.Pricing)

	sandbox := mpesa.NewSandbox(cfg.SandboxDelay, cfg.SandboxSuccessRate, logger.Component(log, "mpesa"))
	defer sandbox.Close()

	vouchers := application.NewVoucherService(repo)
	svc := h.Services{
		Auth:     application.NewAuthService(repo, redis.NewRefreshStore(redisClient, cfg.RefreshTokenTTL), issuer),
		Carts:    application.NewCartService(repo, cache, logger.Component(log, "cart")),
		Vouchers: vouchers,
		Orders:   application.NewOrderService(repo, vouchers, engine, cache, logger.Component(log, "orders")),
		Payments: application.NewPaymentService(repo, sandbox, logger.Component(log, "payments")),
	}
	sandbox.SetResultHandler(svc.Payments.HandleResult)

	seedDemoUser(svc.Auth, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := h.NewRateLimiter(cfg.LoginRatePerSecond, cfg.LoginBurst, logger.Component(log, "ratelimit"))
	limiter.StartCleanup(ctx, time.Minute, 10000)

	api := h.NewServer(svc, issuer, limiter, h.Config{
		RequestTimeout: cfg.RequestTimeout,
		CookieSecure:   cfg.CookieSecure,
		RefreshTTL:     cfg.RefreshTokenTTL,
		HealthChecks: map[string]func(context.Context) error{
			"postgres": db.PingContext,
			"redis":    cache.Ping,
		},
	}, logger.Component(log, "http"))

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      api.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(g.AuthInterceptor(issuer, healthpb.Health_Check_FullMethodName)),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	g.RegisterOrderStatusServer(grpcServer, g.NewServer(svc.Orders, logger.Component(log, "grpc")))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.WithError(err).Fatal("failed to listen")
	}

	errCh := make(chan error, 2)
	go func() {
		log.WithField("port", cfg.HTTPPort).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
	}()
	go func() {
		log.WithField("port", cfg.GRPCPort).Info("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		log.WithError(err).Error("server failed, shutting down")
	}

	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server forced to shutdown")
	}
	grpcServer.GracefulStop()
	log.Info("server exited")
}

func seedDemoUser(authSvc *application.AuthService, cfg *config.Config, log *logrus.Logger) {
	if cfg.DemoEmail == "" || cfg.DemoPassword == "" {
		return
	}
	_, err := authSvc.Signup(context.Background(), cfg.DemoEmail, cfg.DemoPassword)
	switch {
	case err == nil:
		log.WithField("email", cfg.DemoEmail).Info("demo user created")
	case errors.Is(err, domain.ErrUserExists):
	default:
		log.WithError(err).Warn("failed to create demo user")
	}
}
