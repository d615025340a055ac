package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToString converts loosely typed metadata values to their display string.
// Whole floats print without exponent or fraction ("12000", not "1.2e+04").
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToStrings converts a list-like value to a string slice.
// A string is split on commas; empty entries are dropped.
func ToStrings(val any) []string {
	var out []string
	switch v := val.(type) {
	case nil:
		return nil
	case []string:
		for _, s := range v {
			out = appendTrimmed(out, s)
		}
	case []any:
		for _, s := range v {
			out = appendTrimmed(out, ToString(s))
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			out = appendTrimmed(out, s)
		}
	default:
		out = appendTrimmed(out, ToString(v))
	}
	return out
}

func appendTrimmed(out []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		return append(out, s)
	}
	return out
}
