package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port            string
	MongoURI        string
	MongoDBName     string
	AccessSecret    string
	RefreshSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Env             string
}

// Load reads the configuration from environment variables and fails fast on
// any missing required key.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            os.Getenv("SERVER_PORT"),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDBName:     os.Getenv("MONGO_DB_NAME"),
		AccessSecret:    os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshSecret:   os.Getenv("REFRESH_TOKEN_SECRET"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		Env:             os.Getenv("GO_ENV"),
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("SERVER_PORT is missing")
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is missing")
	}
	if cfg.MongoDBName == "" {
		return nil, fmt.Errorf("MONGO_DB_NAME is missing")
	}
	if cfg.AccessSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is missing")
	}
	if cfg.RefreshSecret == "" {
		return nil, fmt.Errorf("REFRESH_TOKEN_SECRET is missing")
	}

	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %v", err)
		}
		cfg.AccessTokenTTL = ttl
	}
	if v := os.Getenv("REFRESH_TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_TOKEN_TTL: %v", err)
		}
		cfg.RefreshTokenTTL = ttl
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in a production-equivalent
// deployment. Secure cookies are only enabled there.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
