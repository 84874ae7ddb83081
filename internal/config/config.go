// Package config reads service settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort      = "8050"
	DefaultRateLimit = 1.0
	DefaultRateBurst = 3
)

type Config struct {
	Port        string
	TokenKey    string
	DatabaseURL string
	TLSCert     string
	TLSKey      string
	RateLimit   float64 // requests per second per IP
	RateBurst   int
}

// Load applies the given env files (".env" when none) and then reads the
// environment. Missing env files are not an error; variables already set in
// the environment take precedence over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	c := Config{
		Port:        getenv("PORT", DefaultPort),
		TokenKey:    os.Getenv("TOKEN_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		TLSCert:     os.Getenv("TLS_CERT"),
		TLSKey:      os.Getenv("TLS_KEY"),
		RateLimit:   DefaultRateLimit,
		RateBurst:   DefaultRateBurst,
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT must be a positive number, got %q", v)
		}
		c.RateLimit = f
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("RATE_BURST must be a positive integer, got %q", v)
		}
		c.RateBurst = n
	}
	return c, nil
}

// Validate checks the settings the HTTP server cannot run without.
func (c Config) Validate() error {
	if c.TokenKey == "" {
		return errors.New("TOKEN_KEY environment variable is not set")
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return errors.New("TLS_CERT and TLS_KEY must be set together")
	}
	return nil
}

func (c Config) Addr() string { return ":" + c.Port }

func (c Config) TLS() bool { return c.TLSCert != "" && c.TLSKey != "" }

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
