// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/colorcraft/colorcraft/internal/colour"
)

// Environment variable names.
const (
	EnvListenAddr     = "COLORCRAFT_LISTEN_ADDR"
	EnvSeed           = "COLORCRAFT_SEED"
	EnvMaxSamples     = "COLORCRAFT_MAX_SAMPLES"
	EnvRestarts       = "COLORCRAFT_RESTARTS"
	EnvMaxIterations  = "COLORCRAFT_MAX_ITERATIONS"
	EnvMaxDimension   = "COLORCRAFT_MAX_IMAGE_DIMENSION"
	EnvMaxUploadBytes = "COLORCRAFT_MAX_UPLOAD_BYTES"
	EnvRequestTimeout = "COLORCRAFT_REQUEST_TIMEOUT_SEC"
	EnvCacheDir       = "COLORCRAFT_CACHE_DIR"
)

// Config holds settings shared by the CLI and the HTTP server.
type Config struct {
	ListenAddr     string
	Extract        colour.ExtractOptions
	MaxDimension   int
	MaxUploadBytes int64
	RequestTimeout time.Duration
	// CacheDir holds downloaded remote images. Empty means the user cache
	// directory.
	CacheDir string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr:     ":8000",
		Extract:        colour.DefaultExtractOptions(),
		MaxDimension:   400,
		MaxUploadBytes: 10 << 20,
		RequestTimeout: 30 * time.Second,
	}
}

// Load reads a .env file from the working directory when present, then
// overlays the process environment on the defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, falling back to defaults
// for unset variables.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	var errs []error

	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) {
		v := getenv(key)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not an integer", key, v))
			return
		}
		*dst = n
	}

	seed := int(cfg.Extract.Seed)
	timeoutSec := int(cfg.RequestTimeout / time.Second)
	upload := int(cfg.MaxUploadBytes)

	str(EnvListenAddr, &cfg.ListenAddr)
	str(EnvCacheDir, &cfg.CacheDir)
	integer(EnvSeed, &seed)
	integer(EnvMaxSamples, &cfg.Extract.MaxSamples)
	integer(EnvRestarts, &cfg.Extract.Restarts)
	integer(EnvMaxIterations, &cfg.Extract.MaxIterations)
	integer(EnvMaxDimension, &cfg.MaxDimension)
	integer(EnvMaxUploadBytes, &upload)
	integer(EnvRequestTimeout, &timeoutSec)

	cfg.Extract.Seed = int64(seed)
	cfg.MaxUploadBytes = int64(upload)
	cfg.RequestTimeout = time.Duration(timeoutSec) * time.Second

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every limit is positive.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("listen address must not be empty")
	}
	if err := c.Extract.Validate(); err != nil {
		return err
	}
	if c.MaxDimension <= 0 {
		return errors.New("max image dimension must be > 0")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("max upload bytes must be > 0")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be > 0")
	}
	return nil
}
