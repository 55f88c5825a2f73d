package config

import (
	"encoding/json"

	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/footprint-tools/hookwatch/internal/domain"
)

type listEntry struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Default bool   `json:"default"`
}

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	var entries []listEntry
	for _, key := range domain.VisibleConfigKeys() {
		value, exists := configMap[key.Name]
		if !exists {
			value = key.Default
		}
		if key.HideIfEmpty && value == "" {
			continue
		}
		entries = append(entries, listEntry{Key: key.Name, Value: value, Default: value == key.Default})
	}

	if flags.Has("--json") {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, _ = deps.Println(string(data))
		return nil
	}

	for _, e := range entries {
		_, _ = deps.Printf("%s=%s\n", e.Key, e.Value)
	}
	return nil
}
