package config

const EnvPrefix = "WISHLIST"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "WISHLIST_APP_ENV"
	EnvPort   = "WISHLIST_APP_PORT"
	EnvDBDSN  = "WISHLIST_DB_DSN"
	EnvDBHost = "WISHLIST_DB_HOST"
	EnvDBUser = "WISHLIST_DB_USER"
	EnvDBName = "WISHLIST_DB_NAME"
	EnvDBPass = "WISHLIST_DB_PASSWORD"
	EnvDBPort = "WISHLIST_DB_PORT"
	EnvDBSSL  = "WISHLIST_DB_SSLMODE"
	EnvLogFmt = "WISHLIST_LOG_FORMAT"
	EnvLogLvl = "WISHLIST_LOG_LEVEL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
