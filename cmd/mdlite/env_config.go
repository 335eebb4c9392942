package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mdlite/internal/config"
)

// envPrefix starts every environment variable read by the CLI.
const envPrefix = "MDLITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDLITE_CONFIG: config file name or path
	Template   string // MDLITE_TEMPLATE: template name or path
	Style      string // MDLITE_STYLE: CSS style name or path
	Workers    int    // MDLITE_WORKERS: parallel workers
}

// knownEnvVars lists valid MDLITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDLITE_CONFIG":   true,
	"MDLITE_TEMPLATE": true,
	"MDLITE_STYLE":    true,
	"MDLITE_WORKERS":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid or non-positive MDLITE_WORKERS values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDLITE_CONFIG"),
		Template:   os.Getenv("MDLITE_TEMPLATE"),
		Style:      os.Getenv("MDLITE_STYLE"),
	}

	if workers := os.Getenv("MDLITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDLITE_* variables.
// Helps catch typos like MDLITE_STYEL.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A set variable overrides the config file; CLI flags are applied later
// via mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Template != "" {
		cfg.Template = env.Template
	}
	if env.Style != "" {
		cfg.Style = env.Style
	}
}
