package config

import (
	"os"
	"strings"

	"github.com/footprint-tools/hookwatch/internal/domain"
)

// EnvPrefix prefixes the environment variables that override config keys.
const EnvPrefix = "HW_"

// Defaults holds the in-code default of every known key.
var Defaults = buildDefaults()

func buildDefaults() map[string]func() string {
	defaults := make(map[string]func() string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		value := key.Default
		defaults[key.Name] = func() string { return value }
	}
	return defaults
}

// EnvName returns the environment variable that overrides key,
// e.g. api_url -> HW_API_URL.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

func fromEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(EnvName(key))
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}

// Get returns the value for a config key.
// Lookup order: HW_<KEY> environment variable, config file, default.
func Get(key string) (string, bool) {
	if value, ok := fromEnv(key); ok {
		return value, true
	}

	if cfg, err := readConfig(); err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values: defaults, then the file, then env overrides.
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	if cfg, err := readConfig(); err == nil {
		for key, value := range cfg {
			result[key] = value
		}
	}

	for key := range result {
		if value, ok := fromEnv(key); ok {
			result[key] = value
		}
	}

	return result, nil
}

func readConfig() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
