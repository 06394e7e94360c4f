package config

const EnvPrefix = "MODESTSTYLE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

const (
	SnapshotBackendMemory = "memory"
	SnapshotBackendRedis  = "redis"
	SnapshotBackendDB     = "db"
)

const (
	EnvAppEnv          = "MODESTSTYLE_APP_ENV"
	EnvPort            = "MODESTSTYLE_APP_PORT"
	EnvLogLevel        = "MODESTSTYLE_LOG_LEVEL"
	EnvDBDSN           = "MODESTSTYLE_DB_DSN"
	EnvDBDriver        = "MODESTSTYLE_DB_DRIVER"
	EnvDBHost          = "MODESTSTYLE_DB_HOST"
	EnvDBUser          = "MODESTSTYLE_DB_USER"
	EnvDBName          = "MODESTSTYLE_DB_NAME"
	EnvRedisURL        = "MODESTSTYLE_REDIS_URL"
	EnvRedisAddr       = "MODESTSTYLE_REDIS_ADDR"
	EnvSnapshotBackend = "MODESTSTYLE_SNAPSHOT_BACKEND"
	EnvJWTSecret       = "MODESTSTYLE_JWT_SECRET"
	EnvJWTIssuer       = "MODESTSTYLE_JWT_ISSUER"
	EnvAPIURL          = "MODESTSTYLE_API_URL"
	EnvForwardURL      = "MODESTSTYLE_PAYMENT_FORWARD_URL"
	EnvSanityProjectID = "MODESTSTYLE_SANITY_PROJECT_ID"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
