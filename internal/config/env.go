package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig is a DTO used exclusively for environment parsing. Variables are
// prefixed with SUMMARIZE (e.g. SUMMARIZE_DATABASE_PATH). Pointer fields
// distinguish "unset" from a zero value.
type EnvConfig struct {
	DatabasePath       *string        `envconfig:"DATABASE_PATH"`
	BlobDatabasePath   *string        `envconfig:"BLOB_DATABASE_PATH"`
	DefaultLanguage    *string        `envconfig:"DEFAULT_LANGUAGE"`
	MaxFileMB          *int           `envconfig:"MAX_FILE_MB"`
	RateLimitAttempts  *int           `envconfig:"RATE_LIMIT_ATTEMPTS"`
	RateLimitWindow    *time.Duration `envconfig:"RATE_LIMIT_WINDOW"`
	ModerationEnabled  *bool          `envconfig:"MODERATION_ENABLED"`
	LoginRedirectDelay *time.Duration `envconfig:"LOGIN_REDIRECT_DELAY"`
}

// parseEnv overlays cfg with values from the environment, after loading a
// .env file when one sits in the working directory. A missing .env is fine;
// unparseable variables panic.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec EnvConfig
	if err := envconfig.Process("summarize", &ec); err != nil {
		panic(err)
	}

	if ec.DatabasePath != nil {
		cfg.DatabasePath = *ec.DatabasePath
	}
	if ec.BlobDatabasePath != nil {
		cfg.BlobDatabasePath = *ec.BlobDatabasePath
	}
	if ec.DefaultLanguage != nil {
		cfg.DefaultLanguage = *ec.DefaultLanguage
	}
	if ec.MaxFileMB != nil {
		cfg.MaxFileMB = *ec.MaxFileMB
	}
	if ec.RateLimitAttempts != nil {
		cfg.RateLimitAttempts = *ec.RateLimitAttempts
	}
	if ec.RateLimitWindow != nil {
		cfg.RateLimitWindow = *ec.RateLimitWindow
	}
	if ec.ModerationEnabled != nil {
		cfg.ModerationEnabled = *ec.ModerationEnabled
	}
	if ec.LoginRedirectDelay != nil {
		cfg.LoginRedirectDelay = *ec.LoginRedirectDelay
	}
}
