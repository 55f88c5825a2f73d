package config

import (
	"strings"

	"github.com/footprint-tools/hookwatch/internal/config"
	"github.com/footprint-tools/hookwatch/internal/events"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
	"github.com/footprint-tools/hookwatch/internal/usage"
)

// validateValue rejects values that would break the next run. Keys
// without a rule accept anything.
func validateValue(key, value string) error {
	switch {
	case key == "api_url":
		only := func(k string) (string, bool) {
			if k == "api_url" {
				return value, true
			}
			return "", false
		}
		if _, err := events.LoadSettings(only, ""); err != nil {
			return usage.InvalidValue(key, value, "want http(s)://host[:port]")
		}
	case key == "poll_interval" || key == "request_timeout":
		if _, err := config.ParseDuration(value); err != nil {
			return usage.InvalidValue(key, value, err.Error())
		}
	case key == "theme":
		if !style.IsValidTheme(value) {
			return usage.InvalidValue(key, value, "see 'hw theme list'")
		}
	case key == "enable_log":
		if value != "true" && value != "false" {
			return usage.InvalidValue(key, value, "want true or false")
		}
	case key == "log_level":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "warning", "error":
		default:
			return usage.InvalidValue(key, value, "want debug, info, warn or error")
		}
	}
	return nil
}
