package config

import (
	"fmt"

	"github.com/footprint-tools/hookwatch/internal/config"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	WithLock   func(func() error) error
	Set        func([]string, string, string) ([]string, bool)
	Unset      func([]string, string) ([]string, bool)
	Get        func(string) (string, bool)
	GetAll     func() (map[string]string, error)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		WithLock:   config.WithLock,
		Set:        config.Set,
		Unset:      config.Unset,
		Get:        config.Get,
		GetAll:     config.GetAll,
		Printf:     fmt.Printf,
		Println:    fmt.Println,
	}
}

// locked runs fn under deps.WithLock when one is provided.
func (d Deps) locked(fn func() error) error {
	if d.WithLock == nil {
		return fn()
	}
	return d.WithLock(fn)
}
