package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Discord
	DiscordToken              string
	DiscordAppID              string
	DiscordGuildID            string // empty registers commands globally
	DiscordForceCommandUpdate bool

	// Database
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Logging
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	LogDir      string // optional; when set, logs are also written to a session file here

	// HTTP side server (health + metrics)
	HTTPPort int

	// Scheduling
	SweepInterval   time.Duration
	WorkerCount     int
	WorkerQueueSize int
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:              getEnv(EnvDiscordToken, ""),
		DiscordAppID:              getEnv(EnvDiscordAppID, ""),
		DiscordGuildID:            getEnv(EnvDiscordGuildID, ""),
		DiscordForceCommandUpdate: getEnvAsBool(EnvDiscordForceCommandUpdate, false),

		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdle, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),

		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Version:     getEnv(EnvVersion, DefaultVersion),
		LogDir:      getEnv(EnvLogDir, ""),

		SweepInterval:   getEnvAsDuration(EnvSweepInterval, DefaultSweepInterval),
		WorkerCount:     getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt(EnvWorkerQueueSize, DefaultWorkerQueueSize),
		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	portStr := getEnv(EnvHTTPPort, DefaultHTTPPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvHTTPPort, err)
	}
	cfg.HTTPPort = port

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("%s environment variable must be set", EnvDiscordToken)
	}
	if cfg.DiscordAppID == "" {
		return nil, fmt.Errorf("%s environment variable must be set", EnvDiscordAppID)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go duration syntax only; bare numbers fall back to the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
