package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	EnvDiscordToken,
	EnvDiscordAppID,
	EnvDBUser,
	EnvDBPassword,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
}

// ValidateEnv checks that all required environment variables are set
func ValidateEnv() error {
	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvDBPassword) == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv(EnvDiscordGuildID) == "" {
		warnings = append(warnings, "DISCORD_GUILD_ID is not set - commands will be registered globally and may take up to an hour to appear")
	}

	return warnings, nil
}
