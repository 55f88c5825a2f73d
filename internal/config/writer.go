package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/hookwatch/internal/paths"
)

// WriteLines replaces ~/.hwrc with lines. Readers see either the old or
// the new file, never a partial one. Read-modify-write callers should
// go through Update so they also hold the lock.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}
	return replaceFile(configPath, renderLines(lines))
}

// Update reads ~/.hwrc, applies edit and writes the result while holding
// the config lock.
func Update(edit func(lines []string) []string) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		return WriteLines(edit(lines))
	})
}

func renderLines(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// replaceFile writes data to a 0600 temp file next to path, syncs it and
// renames it over path.
func replaceFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0600); err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
