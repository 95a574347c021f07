package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseDriver string
	Serve          bool
}

// ParseFlags validates flags and fills in defaults. Flags win over
// environment variables; a .env file is loaded first if present.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Missing .env is fine, env vars may be set directly
	_ = godotenv.Load()

	fs := flag.NewFlagSet("gradebook", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Report API port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseDriver, "t", "", "Database driver (sqlite or postgres)")
	fs.BoolVar(&cfg.Serve, "serve", false, "Serve the report API after the report prints")

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
			cfg.Port = 8080 // default
		}
	}

	if cfg.DatabaseDriver == "" {
		cfg.DatabaseDriver = os.Getenv("DATABASE_DRIVER")
		if cfg.DatabaseDriver == "" {
			cfg.DatabaseDriver = DriverSQLite
		}
	}
	if cfg.DatabaseDriver != DriverSQLite && cfg.DatabaseDriver != DriverPostgres {
		return Config{}, errors.New("database driver must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseDriver == DriverPostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:gradebook.db"
	}

	if !cfg.Serve && os.Getenv("SERVE") == "true" {
		cfg.Serve = true
	}

	return cfg, nil
}
