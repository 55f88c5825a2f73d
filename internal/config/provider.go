package config

import (
	"time"

	"github.com/footprint-tools/hookwatch/internal/domain"
)

// Provider wraps configuration operations and implements domain.ConfigProvider.
// Writes hold the config lock.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Duration reads a duration-valued key, see ParseDuration.
func (p *Provider) Duration(key string, fallback time.Duration) time.Duration {
	return Duration(key, fallback)
}

func (p *Provider) Set(key, value string) error {
	return Update(func(lines []string) []string {
		lines, _ = Set(lines, key, value)
		return lines
	})
}

func (p *Provider) Unset(key string) error {
	return Update(func(lines []string) []string {
		lines, _ = Unset(lines, key)
		return lines
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
