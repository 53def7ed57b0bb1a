package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/summarize-app/summarize/internal/flagx"
	"github.com/summarize-app/summarize/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be written either as strings like "60s" or
// as integer nanoseconds. Pointer fields distinguish "absent" from a zero
// value, so a partial file only overrides what it names.
type JsonConfig struct {
	DatabasePath       *string         `json:"database_path"`
	BlobDatabasePath   *string         `json:"blob_database_path"`
	DefaultLanguage    *string         `json:"default_language"`
	MaxFileMB          *int            `json:"max_file_mb"`
	RateLimitAttempts  *int            `json:"rate_limit_attempts"`
	RateLimitWindow    *timex.Duration `json:"rate_limit_window"`
	ModerationEnabled  *bool           `json:"moderation_enabled"`
	LoginRedirectDelay *timex.Duration `json:"login_redirect_delay"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags; when neither is given, nothing is loaded.
// Read and unmarshal errors panic (caller may recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.BlobDatabasePath != nil {
		cfg.BlobDatabasePath = *jc.BlobDatabasePath
	}
	if jc.DefaultLanguage != nil {
		cfg.DefaultLanguage = *jc.DefaultLanguage
	}
	if jc.MaxFileMB != nil {
		cfg.MaxFileMB = *jc.MaxFileMB
	}
	if jc.RateLimitAttempts != nil {
		cfg.RateLimitAttempts = *jc.RateLimitAttempts
	}
	if jc.RateLimitWindow != nil {
		cfg.RateLimitWindow = time.Duration(jc.RateLimitWindow.Duration)
	}
	if jc.ModerationEnabled != nil {
		cfg.ModerationEnabled = *jc.ModerationEnabled
	}
	if jc.LoginRedirectDelay != nil {
		cfg.LoginRedirectDelay = time.Duration(jc.LoginRedirectDelay.Duration)
	}
}
