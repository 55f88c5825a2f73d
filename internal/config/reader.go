package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/footprint-tools/hookwatch/internal/log"
	"github.com/footprint-tools/hookwatch/internal/paths"
)

// ReadLines returns the raw lines of ~/.hwrc, creating the file with
// commented defaults when it is missing or empty.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initialLines()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// initialLines renders the first-run config file, grouped by section.
func initialLines() []string {
	lines := []string{
		"# hookwatch configuration",
		"# Edit values below or use: hw config set <key> <value>",
		"# Any key can also be set with an HW_<KEY> environment variable.",
	}

	bySection := domain.ConfigKeysBySection()
	for _, section := range domain.ConfigSections() {
		lines = append(lines, "", "# "+section)

		for _, key := range bySection[section] {
			if key.Hidden {
				continue
			}
			if key.HideIfEmpty {
				lines = append(lines, "# "+key.Name+"=")
				continue
			}
			lines = append(lines, key.Name+"="+quote(key.Default))
		}
	}

	return lines
}

func quote(value string) string {
	if strings.Contains(value, " ") {
		return "\"" + value + "\""
	}
	return value
}
