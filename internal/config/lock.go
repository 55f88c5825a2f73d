package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/footprint-tools/hookwatch/internal/paths"
)

const (
	lockTimeout      = 5 * time.Second
	staleLockTimeout = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when the config lock cannot be taken in time.
var ErrLockTimeout = errors.New("config: lock timeout")

// WithLock runs fn while holding ~/.hwrc.lock, so that concurrent
// `hw config set` invocations do not lose writes.
func WithLock(fn func() error) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}
	lockPath := configPath + ".lock"

	lockFile, err := acquireLock(lockPath)
	if err != nil {
		return err
	}
	defer releaseLock(lockFile, lockPath)

	return fn()
}

func acquireLock(lockPath string) (*os.File, error) {
	deadline := time.Now().Add(lockTimeout)

	for {
		if info, err := os.Stat(lockPath); err == nil && time.Since(info.ModTime()) > staleLockTimeout {
			_ = os.Remove(lockPath)
		}

		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		}

		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		time.Sleep(lockPollInterval)
	}
}

func releaseLock(f *os.File, lockPath string) {
	if f != nil {
		_ = f.Close()
	}
	_ = os.Remove(lockPath)
}
