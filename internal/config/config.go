// Package config reads the service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	Port            string
	StoreDriver     string
	MongoURI        string
	MongoDatabase   string
	DatabaseURL     string
	ConnectTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load builds a Config from the environment. Call godotenv.Load first to
// pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "5000"),
		StoreDriver:   getenv("STORE_DRIVER", DriverMongo),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getenv("MONGO_DATABASE", "blog"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}

	var err error
	if cfg.ConnectTimeout, err = duration("CONNECT_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = duration("SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}

	switch cfg.StoreDriver {
	case DriverMongo:
		if cfg.MongoURI == "" {
			return Config{}, errors.New("MONGO_URI is required")
		}
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q (want %s or %s)", cfg.StoreDriver, DriverMongo, DriverPostgres)
	}

	return cfg, nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func duration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
