package events

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/footprint-tools/hookwatch/internal/config"
	"github.com/footprint-tools/hookwatch/internal/domain"
)

// DefaultPollInterval is the watch refresh period.
const DefaultPollInterval = 15 * time.Second

// Settings are the resolved backend settings for one invocation.
type Settings struct {
	BaseURL      string
	Timeout      time.Duration
	PollInterval time.Duration
}

// LoadSettings resolves the backend settings. The base URL comes from
// urlOverride (the --url flag) when set, otherwise from get, which
// already layers HW_API_URL over ~/.hwrc over the built-in default.
func LoadSettings(get func(string) (string, bool), urlOverride string) (Settings, error) {
	s := Settings{
		BaseURL:      domain.DefaultAPIURL,
		PollInterval: DefaultPollInterval,
	}

	if v, ok := get("api_url"); ok && strings.TrimSpace(v) != "" {
		s.BaseURL = v
	}
	if strings.TrimSpace(urlOverride) != "" {
		s.BaseURL = urlOverride
	}
	s.BaseURL = strings.TrimRight(strings.TrimSpace(s.BaseURL), "/")

	u, err := url.Parse(s.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Settings{}, fmt.Errorf("invalid backend url %q: want http(s)://host[:port]", s.BaseURL)
	}

	if v, ok := get("request_timeout"); ok {
		d, err := config.ParseDuration(v)
		if err != nil {
			return Settings{}, fmt.Errorf("request_timeout: %w", err)
		}
		s.Timeout = d
	}

	if v, ok := get("poll_interval"); ok {
		d, err := config.ParseDuration(v)
		if err != nil {
			return Settings{}, fmt.Errorf("poll_interval: %w", err)
		}
		if d > 0 {
			s.PollInterval = d
		}
	}

	return s, nil
}

// NewClient builds a Client for these settings.
func (s Settings) NewClient(opts ...Option) *Client {
	base := []Option{WithTimeout(s.Timeout)}
	return New(s.BaseURL, append(base, opts...)...)
}
