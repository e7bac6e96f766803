package bootstrap

import (
	"time"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/database"
)

type CheckoutConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string
	JwtSecret  string

	// RedisAddr is optional. Without it idempotency keys are ignored.
	RedisAddr      string
	IdempotencyTTL time.Duration

	StockPolicy domain.StockPolicy
}
