package env

const (
	EnvHttpPort = "HTTP_PORT"

	EnvDatabaseHost       = "DB_HOST"
	EnvDatabasePort       = "DB_PORT"
	EnvDatabaseUser       = "DB_USER"
	EnvDatabasePassword   = "DB_PASSWORD"
	EnvDatabaseName       = "DB_NAME"
	EnvDatabaseSSLEnabled = "DB_SSL_ENABLED"

	EnvJwtSecret = "JWT_SECRET"

	EnvRedisAddr      = "REDIS_ADDR"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"

	EnvStockPolicy = "CHECKOUT_STOCK_POLICY"
)
