// Package config loads the engine's process-start configuration from
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default values and hard ceilings. The *_MAX_* environment variables may
// only lower these ceilings, never raise them.
const (
	DefaultAddr           = "0.0.0.0:8081"
	DefaultRequestTimeout = 5 * time.Second
	DefaultLogDev         = false
	DefaultMaxDOF         = 64
	DefaultMaxIterations  = 10_000
	DefaultMaxSamples     = 1_000_000
	DefaultMaxWaypoints   = 100_000
)

// Config is the engine's resolved process configuration.
type Config struct {
	Addr           string
	RequestTimeout time.Duration
	LogDev         bool
	MaxDOF         int
	MaxIterations  int
	MaxSamples     int
	MaxWaypoints   int
}

// Load reads the engine's configuration from the environment, applying the
// defaults and ceilings above. It never returns an error for unset
// variables; it returns an error only when a set variable fails to parse or
// sets a bound to zero, a negative value, or above its hard ceiling.
func Load() (Config, error) {
	cfg := Config{
		Addr:           DefaultAddr,
		RequestTimeout: DefaultRequestTimeout,
		LogDev:         DefaultLogDev,
		MaxDOF:         DefaultMaxDOF,
		MaxIterations:  DefaultMaxIterations,
		MaxSamples:     DefaultMaxSamples,
		MaxWaypoints:   DefaultMaxWaypoints,
	}

	if v, ok := os.LookupEnv("KINEMATICS_ADDR"); ok && v != "" {
		cfg.Addr = v
	}

	if v, ok := os.LookupEnv("KINEMATICS_REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config.Load: KINEMATICS_REQUEST_TIMEOUT=%q: %w", v, err)
		}
		cfg.RequestTimeout = d
	}

	if v, ok := os.LookupEnv("KINEMATICS_LOG_DEV"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config.Load: KINEMATICS_LOG_DEV=%q: %w", v, err)
		}
		cfg.LogDev = b
	}

	if err := applyBoundedInt("KINEMATICS_MAX_DOF", &cfg.MaxDOF, DefaultMaxDOF); err != nil {
		return Config{}, err
	}
	if err := applyBoundedInt("KINEMATICS_MAX_ITERATIONS", &cfg.MaxIterations, DefaultMaxIterations); err != nil {
		return Config{}, err
	}
	if err := applyBoundedInt("KINEMATICS_MAX_SAMPLES", &cfg.MaxSamples, DefaultMaxSamples); err != nil {
		return Config{}, err
	}
	if err := applyBoundedInt("KINEMATICS_MAX_WAYPOINTS", &cfg.MaxWaypoints, DefaultMaxWaypoints); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyBoundedInt overrides *dst from the named environment variable,
// rejecting any value above ceiling — resource bounds are hard ceilings, a
// downward-only override, never deployment-tunable upward.
func applyBoundedInt(name string, dst *int, ceiling int) error {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config.Load: %s=%q: %w", name, v, err)
	}
	if n <= 0 || n > ceiling {
		return fmt.Errorf("config.Load: %s=%d must be in (0, %d]", name, n, ceiling)
	}
	*dst = n
	return nil
}
