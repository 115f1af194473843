// SPDX-License-Identifier: MIT

// Package config resolves runtime settings from a .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/fuzzytwin/core"
	"github.com/katalvlaran/fuzzytwin/logger"
)

// Environment variable names.
const (
	EnvAddr        = "FUZZYTWIN_ADDR"
	EnvDebug       = "FUZZYTWIN_DEBUG"
	EnvMaxVertices = "FUZZYTWIN_MAX_VERTICES"
	EnvParallel    = "FUZZYTWIN_PARALLEL"
)

// Defaults.
const (
	DefaultAddr        = ":5000"
	DefaultMaxVertices = 7
	DefaultParallel    = 1
)

// ErrInvalidConfig wraps every rejected setting.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the resolved settings.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// Debug enables debug logging and gin debug mode.
	Debug bool

	// MaxVertices caps twin-width requests; 0 disables the cap.
	MaxVertices int

	// Parallel is the number of twin-width search workers.
	Parallel int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:        DefaultAddr,
		MaxVertices: DefaultMaxVertices,
		Parallel:    DefaultParallel,
	}
}

// LoadEnv reads the given .env files (".env" when none are given) into the
// process environment. Variables already set are kept. A missing file is
// not an error.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
}

// Load calls LoadEnv, then resolves Config from the environment and
// validates it.
func Load(files ...string) (Config, error) {
	LoadEnv(files...)
	c := Config{
		Addr:        GetEnvString(EnvAddr, DefaultAddr),
		Debug:       GetEnvBool(EnvDebug, false),
		MaxVertices: GetEnvInt(EnvMaxVertices, DefaultMaxVertices),
		Parallel:    GetEnvInt(EnvParallel, DefaultParallel),
	}

	return c, c.Validate()
}

// Validate checks ranges.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if c.MaxVertices < 0 || c.MaxVertices > core.MaxOriginals {
		return fmt.Errorf("%w: max vertices %d outside [0,%d]", ErrInvalidConfig, c.MaxVertices, core.MaxOriginals)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("%w: parallel %d < 1", ErrInvalidConfig, c.Parallel)
	}

	return nil
}

// GetEnvString returns the value of key, or defaultValue when unset.
func GetEnvString(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	return value
}

// GetEnvInt returns key parsed as an integer, or defaultValue when unset
// or malformed.
func GetEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		logger.Warn("Ignoring malformed integer", "key", key, "value", value)
		return defaultValue
	}

	return n
}

// GetEnvBool accepts the forms understood by strconv.ParseBool and returns
// defaultValue for anything else.
func GetEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}

	return b
}
