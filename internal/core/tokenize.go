package core

import "strings"

// SplitLines splits raw text into trimmed, non-empty logical lines.
// Returns ErrEmptyInput when no line survives trimming.
func SplitLines(text string) ([]string, error) {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	return lines, nil
}

// SplitFields splits one line on commas that are outside double quotes.
//
// Each '"' toggles the quoted state and is dropped from the value. Escaped
// quotes are not supported: `""` toggles twice and contributes nothing.
// Fields are trimmed, and the last field is emitted even without a trailing
// separator.
func SplitFields(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for _, c := range line {
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}

	return append(fields, strings.TrimSpace(current.String()))
}
