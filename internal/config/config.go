// Package config handles loading and validating runtime configuration for the starter API.
// Configuration values (like the database URL and API port) are read from environment variables
// rather than being hardcoded, so the same binary can run in dev, staging, and production
// without changing any code, only the environment variables.
package config

import (
	"path/filepath"

	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	// This is convenient in development; in production, real env vars are used instead.
	"github.com/joho/godotenv"
	// pflag is the flag package cobra uses; flags bound here override environment variables.
	"github.com/spf13/pflag"
	// viper layers defaults, environment variables, and command-line flags into one lookup.
	"github.com/spf13/viper"

	"github.com/trentd187/fiber-starter/internal/apperr"
)

// Keys used in viper and the environment variables they map to.
const (
	keyPort        = "port"         // PORT
	keyDatabaseURL = "database_url" // DATABASE_URL
	keyStaticDir   = "static_dir"   // STATIC_DIR
	keyFavicon     = "favicon_file" // FAVICON_FILE
	keyDocs        = "docs_enabled" // DOCS_ENABLED
	keyEnv         = "env"          // ENV
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port        string // The TCP port the HTTP server will listen on (e.g., "8080")
	DatabaseURL string // SQLite location, either "sqlite://path/to/file.db" or a bare path
	StaticDir   string // Directory served under /static
	FaviconFile string // File served at /favicon.ico
	DocsEnabled bool   // Serve /api-docs/openapi.json and the /scalar UI
	Env         string // The runtime environment: "development", "staging", or "production"
}

// IsProduction reports whether the service runs with production settings (JSON logs).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr is the listen address: all interfaces on the configured port.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// RegisterFlags adds the command-line overrides understood by Load to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("port", "8080", "TCP port to listen on (overrides PORT)")
	fs.String("database-url", "", "SQLite database location (overrides DATABASE_URL)")
}

// Load reads configuration from an optional .env file, environment variables, and
// (when flags is non-nil) command-line flags, in increasing order of precedence.
//
// DATABASE_URL is required: Load returns a configuration error when it is unset or empty.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// The error is intentionally ignored: missing .env is acceptable in production
	// because real environment variables will already be set by the deployment platform.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(keyPort, "8080")
	v.SetDefault(keyStaticDir, "static")
	v.SetDefault(keyDocs, true)
	v.SetDefault(keyEnv, "development")

	// AutomaticEnv maps key "database_url" to env var DATABASE_URL.
	// AllowEmptyEnv keeps DATABASE_URL="" visible to IsSet so it is reported as empty, not unset.
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	if flags != nil {
		if f := flags.Lookup("port"); f != nil {
			if err := v.BindPFlag(keyPort, f); err != nil {
				return nil, apperr.Wrap(apperr.KindConfiguration, err, "failed to bind --port")
			}
		}
		if f := flags.Lookup("database-url"); f != nil {
			if err := v.BindPFlag(keyDatabaseURL, f); err != nil {
				return nil, apperr.Wrap(apperr.KindConfiguration, err, "failed to bind --database-url")
			}
		}
	}

	if !v.IsSet(keyDatabaseURL) {
		return nil, apperr.New(apperr.KindConfiguration, "DATABASE_URL environment variable is not set")
	}
	databaseURL := v.GetString(keyDatabaseURL)
	if databaseURL == "" {
		return nil, apperr.New(apperr.KindConfiguration, "DATABASE_URL cannot be empty")
	}

	port := v.GetString(keyPort)
	if port == "" {
		port = "8080"
	}

	staticDir := v.GetString(keyStaticDir)
	if staticDir == "" {
		staticDir = "static"
	}
	favicon := v.GetString(keyFavicon)
	if favicon == "" {
		favicon = filepath.Join(staticDir, "logo.png")
	}

	return &Config{
		Port:        port,
		DatabaseURL: databaseURL,
		StaticDir:   staticDir,
		FaviconFile: favicon,
		DocsEnabled: v.GetBool(keyDocs),
		Env:         v.GetString(keyEnv),
	}, nil
}
