package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

// DefaultPassword is the fallback entry password. main warns loudly
// when it is still in use.
const DefaultPassword = "default_password"

type Config struct {
	Port           int
	DatabaseDriver string
	DatabaseURL    string
	EntryPassword  string
	CatalogPath    string

	// Watch mode (headless viewer).
	Watch        bool
	APIBaseURL   string
	PollInterval time.Duration
}

// ParseFlags validates flags with environment fallbacks.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("election-map", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database DSN (sqlite path or postgres URL)")
	fs.StringVar(&cfg.DatabaseDriver, "t", "", "Database driver (sqlite or postgres)")
	fs.StringVar(&cfg.CatalogPath, "catalog", "", "Region/party catalog YAML (built-in default if empty)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.EntryPassword, "password", "", "Entry password (prefer ELECTION_MAP_PASSWORD env)")

	fs.BoolVar(&cfg.Watch, "watch", false, "Run as a headless viewer polling the API")
	fs.StringVar(&cfg.APIBaseURL, "api", "", "API base URL for watch mode")
	fs.DurationVar(&cfg.PollInterval, "interval", 0, "Poll interval for watch mode")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}

	if cfg.DatabaseDriver == "" {
		cfg.DatabaseDriver = os.Getenv("DATABASE_DRIVER")
		if cfg.DatabaseDriver == "" {
			cfg.DatabaseDriver = "sqlite"
		}
	}
	if cfg.DatabaseDriver != "sqlite" && cfg.DatabaseDriver != "postgres" {
		return Config{}, errors.New("database driver must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseDriver == "postgres" {
			return Config{}, errors.New("postgres requires a DSN (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "live_results.db"
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	}

	if cfg.EntryPassword == "" {
		cfg.EntryPassword = os.Getenv("ELECTION_MAP_PASSWORD")
	}
	if cfg.EntryPassword == "" {
		cfg.EntryPassword = DefaultPassword
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = os.Getenv("API_URL")
		if cfg.APIBaseURL == "" {
			cfg.APIBaseURL = "http://localhost:" + strconv.Itoa(cfg.Port)
		}
	}

	if cfg.PollInterval == 0 {
		if s := os.Getenv("POLL_INTERVAL"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid POLL_INTERVAL env variable")
			}
			cfg.PollInterval = d
		} else {
			cfg.PollInterval = 30 * time.Second
		}
	}
	if cfg.PollInterval < 0 {
		return Config{}, errors.New("poll interval must be positive")
	}

	return cfg, nil
}
