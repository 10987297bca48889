package ogscrape

import (
	"strconv"
	"strings"
)

// Coerce converts a raw value to t. It reports false when the value cannot
// be represented, in which case the field is treated as absent.
func Coerce(raw string, t ValueType) (any, bool) {
	switch t {
	case TypeInteger:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, false
		}
		return n, true
	case TypeBoolean:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return nil, false
	default:
		if raw == "" {
			return nil, false
		}
		return raw, true
	}
}
