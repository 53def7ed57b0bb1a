// Package config handles runtime configuration: defaults, an optional JSON
// file, environment variables, and command-line flags, each layer overriding
// the one before it.
package config

import (
	"time"

	"github.com/summarize-app/summarize/internal/i18n"
	"github.com/summarize-app/summarize/internal/security"
	"github.com/summarize-app/summarize/internal/store"
)

// Config holds the runtime settings.
//
// Fields:
//   - DatabasePath: sqlite file holding the record collections and preferences.
//   - BlobDatabasePath: sqlite file holding the binary file payloads.
//   - DefaultLanguage: UI language used until the user stores a preference.
//   - MaxFileMB: upload size cap in megabytes.
//   - RateLimitAttempts / RateLimitWindow: login throttling parameters.
//   - ModerationEnabled: route uploads through the review queue.
//   - LoginRedirectDelay: pause before sending an unauthenticated downloader
//     to the login view.
type Config struct {
	DatabasePath       string
	BlobDatabasePath   string
	DefaultLanguage    string
	MaxFileMB          int
	RateLimitAttempts  int
	RateLimitWindow    time.Duration
	ModerationEnabled  bool
	LoginRedirectDelay time.Duration
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "summarize.db"
	c.BlobDatabasePath = store.DefaultBlobDBName
	c.DefaultLanguage = string(i18n.DefaultLang)
	c.MaxFileMB = security.DefaultMaxFileMB
	c.RateLimitAttempts = security.DefaultMaxAttempts
	c.RateLimitWindow = security.DefaultWindow
	c.ModerationEnabled = true
	c.LoginRedirectDelay = 900 * time.Millisecond
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line
// flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
