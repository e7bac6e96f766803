package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/application"
	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/Lexv0lk/merch-checkout/internal/checkout/infrastructure/cache"
	httpwrap "github.com/Lexv0lk/merch-checkout/internal/checkout/infrastructure/http"
	"github.com/Lexv0lk/merch-checkout/internal/checkout/infrastructure/postgres"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/database"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/jwt"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/logging"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/metrics"
	"github.com/Lexv0lk/merch-checkout/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	shutdownTimeout = 5 * time.Second
	metricsService  = "checkout"
)

type CheckoutApp struct {
	cfg    CheckoutConfig
	logger logging.Logger

	server      *http.Server
	dbpool      *pgxpool.Pool
	redisClient *redis.Client
}

func NewCheckoutApp(cfg CheckoutConfig, logger logging.Logger) *CheckoutApp {
	return &CheckoutApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *CheckoutApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg
	dbURL := cfg.DbSettings.GetUrl()

	err := database.MigrateDatabase(dbURL, migrations.FS, migrations.Dir, database.PgxDriverName, database.PostgresDialect)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	idempotencyStore, err := a.createIdempotencyStore(ctx)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	serverMetrics := metrics.NewServerMetrics(registry, metricsService)

	txManager := database.NewDelegateTxManager(dbpool, logger)

	cartRepository := postgres.NewCartRepository()
	userFinder := postgres.NewUserFinder()
	productRepository := postgres.NewProductRepository()
	purchaseRepository := postgres.NewPurchaseRepository(dbpool, logger)

	reserver := application.NewInventoryReserver(productRepository, cfg.StockPolicy, logger)
	checkoutCase := application.NewCheckoutCase(
		txManager,
		cartRepository,
		userFinder,
		reserver,
		purchaseRepository,
		idempotencyStore,
		serverMetrics,
		logger,
	)
	purchaseCase := application.NewPurchaseCase(purchaseRepository, logger)

	router := httpwrap.NewRouter(httpwrap.RouterDeps{
		Handler:     httpwrap.NewPurchaseHandler(checkoutCase, purchaseCase, logger),
		TokenParser: jwt.NewJWTTokenParser(),
		JwtSecret:   cfg.JwtSecret,
		Metrics:     serverMetrics,
		Gatherer:    registry,
		Logger:      logger,
	})

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "port", cfg.HttpPort, "stock_policy", string(cfg.StockPolicy))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *CheckoutApp) createIdempotencyStore(ctx context.Context) (domain.IdempotencyStore, error) {
	if a.cfg.RedisAddr == "" {
		a.logger.Warn("redis address is not set, idempotency keys are ignored")
		return cache.NopIdempotencyStore{}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	a.redisClient = client

	ttl := a.cfg.IdempotencyTTL
	if ttl <= 0 {
		ttl = cache.DefaultIdempotencyTTL
	}

	return cache.NewRedisIdempotencyStore(client, ttl), nil
}

func (a *CheckoutApp) Shutdown() {
	if a.server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("failed to close redis client", "error", err.Error())
		}
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}

	a.logger.Info("checkout service stopped")
}
