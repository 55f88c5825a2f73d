package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName     = "hookwatch"
	configFileName = ".hwrc"
	logFileName    = "hw.log"
)

// AppDataDir returns the application data directory for the log file.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, configFileName), nil
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/hookwatch/hw.log
//   - Linux: $XDG_CONFIG_HOME/hookwatch/hw.log or ~/.config/hookwatch/hw.log
//   - Windows: %AppData%\hookwatch\hw.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), logFileName)
}
