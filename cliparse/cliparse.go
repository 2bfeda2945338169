package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	TransitionDelay time.Duration
	SelfProviderID  string
}

// ParseFlags validates flags and applies environment fallbacks.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var transitionMS int

	fs := flag.NewFlagSet("servizoapp", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&transitionMS, "transition-ms", 0, "Navigation transition delay in milliseconds")
	fs.StringVar(&cfg.SelfProviderID, "self-provider", "", "Provider id the provider dashboard manages")

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
			cfg.Port = 4217 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "servizo.db"
	}

	if transitionMS == 0 {
		if msStr := os.Getenv("TRANSITION_MS"); msStr != "" {
			ms, err := strconv.Atoi(msStr)
			if err != nil {
				return Config{}, errors.New("invalid TRANSITION_MS env variable")
			}
			transitionMS = ms
		} else {
			transitionMS = 800 // default, matches the loading animation
		}
	}
	if transitionMS < 0 {
		return Config{}, errors.New("transition delay must not be negative")
	}
	cfg.TransitionDelay = time.Duration(transitionMS) * time.Millisecond

	if cfg.SelfProviderID == "" {
		cfg.SelfProviderID = os.Getenv("SELF_PROVIDER_ID")
	}
	if cfg.SelfProviderID == "" {
		cfg.SelfProviderID = "1"
	}

	return cfg, nil
}
