package dispatchers

import (
	"strconv"
	"strings"
	"time"

	"github.com/footprint-tools/hookwatch/internal/config"
)

// ParsedFlags provides typed access to command-line flags.
// Valued flags use the --name=value form.
type ParsedFlags struct {
	raw []string
}

func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// Raw returns the underlying flag strings.
func (f *ParsedFlags) Raw() []string {
	if f == nil {
		return nil
	}
	return f.raw
}

// Has reports whether a boolean flag is present.
func (f *ParsedFlags) Has(name string) bool {
	for _, flag := range f.Raw() {
		if flag == name {
			return true
		}
	}
	return false
}

// String returns the value of --name=value, or defaultVal.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := name + "="
	for _, flag := range f.Raw() {
		if strings.HasPrefix(flag, prefix) {
			return strings.TrimPrefix(flag, prefix)
		}
	}
	return defaultVal
}

// Int returns the integer value of a flag, or defaultVal if absent or invalid.
func (f *ParsedFlags) Int(name string, defaultVal int) int {
	n, err := strconv.Atoi(f.String(name, ""))
	if err != nil {
		return defaultVal
	}
	return n
}

// Duration returns the value of a duration flag ("30s", "2m" or bare
// seconds). ok is false when the flag is absent; err is set when it is
// present but unparseable.
func (f *ParsedFlags) Duration(name string) (d time.Duration, ok bool, err error) {
	value := f.String(name, "")
	if value == "" {
		return 0, false, nil
	}
	d, err = config.ParseDuration(value)
	return d, true, err
}
