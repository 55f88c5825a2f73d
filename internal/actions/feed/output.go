package feed

import (
	"encoding/json"
	"io"

	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/footprint-tools/hookwatch/internal/usage"
	"gopkg.in/yaml.v3"
)

type outputFormat int

const (
	outputText outputFormat = iota
	outputJSON
	outputYAML
)

func parseOutput(flags *dispatchers.ParsedFlags) (outputFormat, error) {
	jsonOut, yamlOut := flags.Has("--json"), flags.Has("--yaml")
	switch {
	case jsonOut && yamlOut:
		return outputText, usage.InvalidFlag("--json and --yaml are mutually exclusive")
	case jsonOut:
		return outputJSON, nil
	case yamlOut:
		return outputYAML, nil
	default:
		return outputText, nil
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
