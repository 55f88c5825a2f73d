package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// maxSeconds is the largest bare number that fits in a time.Duration.
const maxSeconds = float64(math.MaxInt64) / float64(time.Second)

// ParseDuration accepts Go duration strings ("15s", "1m30s") and bare
// numbers, which are read as seconds.
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if secs, err := strconv.ParseFloat(value, 64); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("negative duration %q", value)
		}
		if math.IsNaN(secs) || math.IsInf(secs, 0) || secs > maxSeconds {
			return 0, fmt.Errorf("duration out of range %q", value)
		}
		return time.Duration(secs * float64(time.Second)), nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", value)
	}
	return d, nil
}

// Duration reads key and parses it with ParseDuration. The default is
// returned when the key is missing or unparseable.
func Duration(key string, fallback time.Duration) time.Duration {
	value, ok := Get(key)
	if !ok {
		return fallback
	}
	d, err := ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
