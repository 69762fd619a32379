package config

import (
	"strconv"
	"strings"
)

// CoerceInt converts a loosely-typed caller value into an int. Nil, blank
// strings and unparseable input fall back to def; booleans become 0/1;
// numeric strings may carry a fractional part, which is truncated.
func CoerceInt(val any, def int) int {
	switch v := val.(type) {
	case nil:
		return def
	case bool:
		if v {
			return 1
		}
		return 0
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return def
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		return int(f)
	default:
		return def
	}
}

// CoercePositive is CoerceInt with non-positive results snapped back to def.
func CoercePositive(val any, def int) int {
	n := CoerceInt(val, def)
	if n <= 0 {
		return def
	}
	return n
}
