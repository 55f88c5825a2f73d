package config

import "strings"

// Set replaces the value of key in lines, keeping any trailing comment,
// or appends key=value. It reports whether an existing entry was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	value = quote(value)

	for i, line := range lines {
		name, rest, ok := entry(line)
		if !ok || name != key {
			continue
		}

		if idx := strings.Index(rest, " #"); idx >= 0 {
			lines[i] = key + "=" + value + " " + strings.TrimSpace(rest[idx:])
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	return append(lines, key+"="+value), false
}

// Unset drops every entry for key. Comments and blank lines survive.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if name, _, ok := entry(line); ok && name == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

// entry splits a key=value line. Comments and blanks are not entries.
func entry(line string) (key, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	key, rest, ok = strings.Cut(trimmed, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), rest, true
}
