package config

// EnvPrefix namespaces every environment variable the platform reads.
const EnvPrefix = "BOFA"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Canonical environment variable names, shared with tests and deploy tooling.
const (
	EnvAppEnv     = "BOFA_APP_ENV"
	EnvPort       = "BOFA_APP_PORT"
	EnvDBDSN      = "BOFA_DB_DSN"
	EnvDBHost     = "BOFA_DB_HOST"
	EnvDBUser     = "BOFA_DB_USER"
	EnvDBName     = "BOFA_DB_NAME"
	EnvRedisURL   = "BOFA_REDIS_URL"
	EnvJWTSecret  = "BOFA_JWT_SECRET"
	EnvJWTIssuer  = "BOFA_JWT_ISSUER"
	EnvJWTExpMins = "BOFA_JWT_EXPIRATION_MINUTES"

	EnvRefreshTokenTTLMinutes = "BOFA_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
