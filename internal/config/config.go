// Package config loads environment configuration for ddcswitch.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultDataDir      = "./data"
	defaultVCPTimeoutMs = 2000
)

// Config holds runtime configuration values.
type Config struct {
	DataDir      string
	ProfilesPath string
	StatePath    string
	VCPTimeout   time.Duration
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{DataDir: defaultDataDir}
	cfg.DataDir = envString("DDCSWITCH_DATA_DIR", cfg.DataDir)
	cfg.ProfilesPath = envString("DDCSWITCH_PROFILES_PATH", filepath.Join(cfg.DataDir, "profiles.yaml"))
	cfg.StatePath = envString("DDCSWITCH_STATE_PATH", filepath.Join(cfg.DataDir, "state.json"))

	timeoutMs, err := envInt("DDCSWITCH_VCP_TIMEOUT_MS", defaultVCPTimeoutMs)
	if err != nil {
		return Config{}, err
	}
	if timeoutMs <= 0 {
		return Config{}, fmt.Errorf("DDCSWITCH_VCP_TIMEOUT_MS must be > 0")
	}
	cfg.VCPTimeout = time.Duration(timeoutMs) * time.Millisecond

	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}
