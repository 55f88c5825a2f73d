package logs

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/footprint-tools/hookwatch/internal/paths"
)

type Deps struct {
	LogFilePath func() string
	Printf      func(string, ...any) (int, error)
	Println     func(...any) (int, error)
	ReadFile    func(string) ([]byte, error)
	WriteFile   func(string, []byte, os.FileMode) error
	Stat        func(string) (os.FileInfo, error)
	OpenFile    func(string, int, os.FileMode) (*os.File, error)
	// Context bounds tail; the default one ends on SIGINT or SIGTERM.
	Context      func() (context.Context, context.CancelFunc)
	TailInterval time.Duration
}

func DefaultDeps() Deps {
	return Deps{
		LogFilePath: paths.LogFilePath,
		Printf:      fmt.Printf,
		Println:     fmt.Println,
		ReadFile:    os.ReadFile,
		WriteFile:   os.WriteFile,
		Stat:        os.Stat,
		OpenFile:    os.OpenFile,
		Context: func() (context.Context, context.CancelFunc) {
			return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		},
		TailInterval: 500 * time.Millisecond,
	}
}
