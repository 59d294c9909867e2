package utils

import (
	"fmt"
	"strings"
)

// ParseBool interprets a user-supplied flag such as a query parameter.
// Empty input yields fallback. Matching is case-insensitive.
func ParseBool(raw string, fallback bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return fallback, nil
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	default:
		return fallback, fmt.Errorf("invalid boolean %q", raw)
	}
}
