package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/bootstrap"
	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/Lexv0lk/merch-checkout/internal/checkout/infrastructure/cache"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/database"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/env"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	httpPort := ":8080"
	jwtSecret := "test-secret"
	redisAddr := ""
	idempotencyTTL := cache.DefaultIdempotencyTTL
	stockPolicy := string(domain.StockPolicySkip)
	databaseSettings := database.PostgresSettings{
		User:       "admin",
		Password:   "password",
		Host:       "localhost",
		Port:       "5432",
		DBName:     "merch_checkout_db",
		SSlEnabled: false,
	}.WithEnvOverrides()

	env.TrySetFromEnv(env.EnvHttpPort, &httpPort)
	env.TrySetFromEnv(env.EnvJwtSecret, &jwtSecret)
	env.TrySetFromEnv(env.EnvRedisAddr, &redisAddr)
	env.TrySetDurationFromEnv(env.EnvIdempotencyTTL, &idempotencyTTL)
	env.TrySetFromEnv(env.EnvStockPolicy, &stockPolicy)

	policy, err := domain.ParseStockPolicy(stockPolicy)
	if err != nil {
		defaultLogger.Error("invalid stock policy", "error", err.Error())
		return
	}

	app := bootstrap.NewCheckoutApp(bootstrap.CheckoutConfig{
		DbSettings:     databaseSettings,
		HttpPort:       httpPort,
		JwtSecret:      jwtSecret,
		RedisAddr:      redisAddr,
		IdempotencyTTL: idempotencyTTL,
		StockPolicy:    policy,
	}, defaultLogger)
	defer app.Shutdown()

	if err := app.Run(mainCtx); err != nil {
		defaultLogger.Error("checkout service failed", "error", err.Error())
		return
	}
}
