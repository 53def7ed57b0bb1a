package config

import (
	"flag"
	"os"
	"time"

	"github.com/summarize-app/summarize/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the record database (default from Config)
//	-b string   path to the blob database (default from Config)
//	-l string   default UI language, "ar" or "en" (default from Config)
//	-m int      upload size cap in megabytes (default from Config)
//	-w int      login rate-limit window in seconds (default from Config)
//	-mod bool   route uploads through the review queue (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-l", "-m", "-w", "-mod"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the record database")
	fs.StringVar(&cfg.BlobDatabasePath, "b", cfg.BlobDatabasePath, "path to the blob database")
	fs.StringVar(&cfg.DefaultLanguage, "l", cfg.DefaultLanguage, "default UI language (ar or en)")
	fs.IntVar(&cfg.MaxFileMB, "m", cfg.MaxFileMB, "upload size cap (in megabytes)")
	window := fs.Int("w", int(cfg.RateLimitWindow.Seconds()), "login rate-limit window (in seconds)")
	fs.BoolVar(&cfg.ModerationEnabled, "mod", cfg.ModerationEnabled, "review uploads before publishing")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RateLimitWindow = time.Duration(*window) * time.Second
}
