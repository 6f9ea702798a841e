package config

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv    = "APP_ENV"
	EnvPort      = "PORT"
	EnvDBURL     = "DATABASE_URL"
	EnvDBHost    = "DB_HOST"
	EnvDBPort    = "DB_PORT"
	EnvDBUser    = "DB_USER"
	EnvDBPass    = "DB_PASSWORD"
	EnvDBName    = "DB_DATABASE"
	EnvJWTSecret = "JWT_SECRET"
	EnvRedisURL  = "REDIS_URL"
)

var discreteDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
