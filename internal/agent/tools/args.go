package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Args is a decoded tool-call argument map. Models are loose with types
// (numbers arrive as strings, strings as numbers), so lookups coerce.
type Args map[string]any

// ParseArgs decodes the raw JSON arguments of a tool call. An empty
// argument string decodes to an empty map.
func ParseArgs(raw string) (Args, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Args{}, nil
	}
	args := make(Args)
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("parse arguments failed: %w", err)
	}
	return args, nil
}

// String returns the trimmed string form of the value at key, or "".
func (a Args) String(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// Float returns the numeric value at key, coercing from the JSON types a
// model may emit.
func (a Args) Float(key string) (float64, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	return toFloat64(v)
}

func toFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		parsed, err := val.Float64()
		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}
