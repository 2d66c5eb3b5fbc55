package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/GiveawayBot_Go/internal/config"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
)

// SetupLogger initializes the application logger.
// Logs always go to stdout; when cfg.LogDir is set they are also written to a
// timestamped session file and older session files beyond the retention count are removed.
// Returns the log file handle (nil when no LogDir is set; caller must close otherwise).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == logger.EnvironmentDev,
	)

	var out io.Writer = os.Stdout
	var logFile *os.File
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		timestamp := time.Now().Format(LogFileTimestampFormat)
		logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

		f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, logFile)
	}

	logger.InitLoggerWithWriter(loggerConfig, out)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingGiveawayBot,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"http_port", cfg.HTTPPort,
		"guild_id", cfg.DiscordGuildID,
		"sweep_interval", cfg.SweepInterval)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so at most keep remain
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	// Timestamped names sort chronologically
	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
