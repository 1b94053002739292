package zcl

import (
	"encoding/hex"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
)

// Args holds the named field values of a record or command payload.
type Args map[string]any

func toBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case float64:
		return val != 0, true
	case int:
		return val != 0, true
	case int64:
		return val != 0, true
	case uint8:
		return val != 0, true
	}
	return false, false
}

func toUint64(v any) (uint64, bool) {
	switch val := v.(type) {
	case uint8:
		return uint64(val), true
	case uint16:
		return uint64(val), true
	case uint32:
		return uint64(val), true
	case uint64:
		return val, true
	case uint:
		return uint64(val), true
	case int, int8, int16, int32, int64:
		i, _ := toInt64(val)
		if i < 0 {
			return 0, false
		}
		return uint64(i), true
	case float32:
		return toUint64(float64(val))
	case float64:
		if val < 0 || val != math.Trunc(val) || val > math.MaxUint64 {
			return 0, false
		}
		return uint64(val), true
	case Status:
		return uint64(val), true
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float32:
		return float64(val), true
	case float64:
		return val, true
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	if u, ok := toUint64(v); ok {
		return float64(u), true
	}
	return 0, false
}

func toInt64(v any) (int64, bool) {
	switch val := v.(type) {
	case int8:
		return int64(val), true
	case int16:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case int:
		return int64(val), true
	case uint8:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint32:
		return int64(val), true
	case uint:
		if uint64(val) > math.MaxInt64 {
			return 0, false
		}
		return int64(val), true
	case uint64:
		if val > math.MaxInt64 {
			return 0, false
		}
		return int64(val), true
	case float32:
		return toInt64(float64(val))
	case float64:
		if val > math.MaxInt64 || val < math.MinInt64 || val != math.Trunc(val) {
			return 0, false
		}
		return int64(val), true
	}
	return 0, false
}

// ToUint64 converts a decoded or user supplied number.
func ToUint64(v any) (uint64, bool) { return toUint64(v) }

// ToInt64 converts a decoded or user supplied number.
func ToInt64(v any) (int64, bool) { return toInt64(v) }

func toBytes(v any) ([]byte, bool) {
	switch val := v.(type) {
	case []byte:
		return val, true
	case string:
		return []byte(val), true
	case nil:
		return nil, true
	case interface{ Bytes() []byte }:
		return val.Bytes(), true
	case []any:
		out := make([]byte, 0, len(val))
		for _, x := range val {
			u, ok := toUint64(x)
			if !ok || u > 0xFF {
				return nil, false
			}
			out = append(out, byte(u))
		}
		return out, true
	}
	return nil, false
}

// toSlice accepts []any or any other slice kind.
func toSlice(v any) ([]any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, true
	case []any:
		return val, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

var hexIDNoise = regexp.MustCompile(`^0x|[-:\s]`)

func parseHexID(s string, n int) ([]byte, error) {
	b, err := hex.DecodeString(hexIDNoise.ReplaceAllString(strings.ToLower(s), ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidValue, s, err)
	}
	if len(b) != n {
		return nil, fmt.Errorf("%w: %q is %d bytes, want %d", ErrInvalidValue, s, len(b), n)
	}
	return b, nil
}

func formatHexID(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, ":")
}

// Devices pad strings with NUL and terminal escape sequences.
var stringNoise = regexp.MustCompile(`[\x00-\x1F](\[(B|C|D|A))?`)

func sanitizeString(b []byte) string {
	s := string(b)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	s = stringNoise.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
