package schema

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
)

// normalize converts decoded YAML values: integers become int64, floats
// float64, lists of numbers []float64 and ordered mappings map[string]any.
func normalize(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return uintToInt(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return uintToInt(x)
	case float32:
		return float64(x)
	case []any:
		return normalizeList(x)
	case yaml.MapSlice:
		res := make(map[string]any, len(x))
		for _, item := range x {
			res[fmt.Sprint(item.Key)] = normalize(item.Value)
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, v := range x {
			res[k] = normalize(v)
		}
		return res
	}
	return v
}

func uintToInt(u uint64) any {
	if u > math.MaxInt64 {
		return u
	}
	return int64(u)
}

func normalizeList(l []any) any {
	res := make([]any, len(l))
	numeric := len(l) > 0
	for i, v := range l {
		res[i] = normalize(v)
		switch res[i].(type) {
		case int64, float64:
		default:
			numeric = false
		}
	}
	if !numeric {
		return res
	}
	fs := make([]float64, len(res))
	for i, v := range res {
		switch n := v.(type) {
		case int64:
			fs[i] = float64(n)
		case float64:
			fs[i] = n
		}
	}
	return fs
}

// normalizeKey converts a decoded YAML mapping key to a map key.
func normalizeKey(k any) any {
	switch n := normalize(k).(type) {
	case int64, float64, string, bool, uint64:
		return n
	case nil:
		return "null"
	default:
		return fmt.Sprint(n)
	}
}
