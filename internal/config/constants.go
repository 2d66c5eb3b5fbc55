package config

import "time"

// Environment variable names
const (
	EnvDiscordToken              = "DISCORD_TOKEN"
	EnvDiscordAppID              = "DISCORD_APP_ID"
	EnvDiscordGuildID            = "DISCORD_GUILD_ID"
	EnvDiscordForceCommandUpdate = "DISCORD_FORCE_COMMAND_UPDATE"

	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdle     = "DB_MAX_CONN_IDLE"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"

	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvEnvironment = "ENVIRONMENT"
	EnvVersion     = "VERSION"
	EnvLogDir      = "LOG_DIR"

	EnvHTTPPort        = "HTTP_PORT"
	EnvSweepInterval   = "GIVEAWAY_SWEEP_INTERVAL"
	EnvWorkerCount     = "WORKER_COUNT"
	EnvWorkerQueueSize = "WORKER_QUEUE_SIZE"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// Defaults
const (
	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "giveawaybot"
	DefaultDBMaxConns = 10

	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultHTTPPort    = "8081"

	DefaultWorkerCount     = 2
	DefaultWorkerQueueSize = 100
)

const (
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultSweepInterval     = time.Minute
	DefaultShutdownTimeout   = 15 * time.Second
)
