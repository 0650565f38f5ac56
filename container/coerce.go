package container

import (
	"encoding/json"
	"math"
	"reflect"
)

// coerce converts v to the Go type of cur when v is a number, or a list of
// numbers, that converts losslessly. Decoded documents carry float64 or
// json.Number where the declared default is, say, an int or []float64.
func coerce(cur, v any) any {
	if cur == nil || v == nil {
		return normalizeNumber(v)
	}
	ct := reflect.TypeOf(cur)
	if reflect.TypeOf(v) == ct {
		return v
	}
	if isNumberKind(ct.Kind()) {
		if c, ok := convertNumber(v, ct); ok {
			return c
		}
		return normalizeNumber(v)
	}
	if ct.Kind() == reflect.Slice && isNumberKind(ct.Elem().Kind()) {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice {
			return v
		}
		res := reflect.MakeSlice(ct, rv.Len(), rv.Len())
		for i := range rv.Len() {
			c, ok := convertNumber(rv.Index(i).Interface(), ct.Elem())
			if !ok {
				return v
			}
			res.Index(i).Set(reflect.ValueOf(c))
		}
		return res.Interface()
	}
	return normalizeNumber(v)
}

func normalizeNumber(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

func convertNumber(v any, t reflect.Type) (any, bool) {
	v = normalizeNumber(v)
	rv := reflect.ValueOf(v)
	if !isNumberKind(rv.Kind()) {
		return nil, false
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Convert(t).Interface(), true
	}
	// integer target: only integral, in range values
	var f float64
	switch {
	case rv.CanInt():
		f = float64(rv.Int())
	case rv.CanUint():
		f = float64(rv.Uint())
	default:
		f = rv.Float()
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, false
	}
	c := rv.Convert(t)
	if back := c.Convert(rv.Type()); !back.Equal(rv) {
		return nil, false
	}
	return c.Interface(), true
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Coerce converts v to the type of cur the way Update does: numbers, and
// lists of numbers, convert when no precision is lost and json.Number
// values become int64 or float64.
func Coerce(cur, v any) any {
	return coerce(cur, v)
}
