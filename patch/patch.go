package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/recordkit/container"
	"github.com/signadot/recordkit/debug"
)

var ErrNotObject = errors.New("patched document is not an object")

// ElemFunc returns the record type of new entries of a map field.
// (*schema.Registry).Elem is an ElemFunc.
type ElemFunc func(typeName, field string) (*container.Type, bool)

type Option func(*state)

func WithElem(f ElemFunc) Option {
	return func(st *state) { st.elem = f }
}

type state struct {
	elem ElemFunc
}

// JSON applies an RFC 6902 patch to rec.
func JSON(rec *container.Record, ops []byte, opts ...Option) error {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("json patch on %s: %d ops\n", rec.Type().Name(), len(p))
	}
	return apply(rec, func(d []byte) ([]byte, error) { return p.Apply(d) }, opts)
}

// Merge applies an RFC 7386 merge patch to rec.
func Merge(rec *container.Record, doc []byte, opts ...Option) error {
	if debug.Patch() {
		debug.Logf("merge patch on %s: %s\n", rec.Type().Name(), doc)
	}
	return apply(rec, func(d []byte) ([]byte, error) { return jsonpatch.MergePatch(d, doc) }, opts)
}

// Create returns the merge patch turning a into b.
func Create(a, b *container.Record) ([]byte, error) {
	da, err := Marshal(a)
	if err != nil {
		return nil, err
	}
	db, err := Marshal(b)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(da, db)
}

// Marshal encodes the recursive export of rec as JSON.
func Marshal(rec *container.Record) ([]byte, error) {
	m, err := rec.AsMapping(container.Recursive(true))
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

func apply(rec *container.Record, f func([]byte) ([]byte, error), opts []Option) error {
	st := &state{}
	for _, opt := range opts {
		opt(st)
	}
	d, err := Marshal(rec)
	if err != nil {
		return err
	}
	out, err := f(d)
	if err != nil {
		return err
	}
	var doc any
	dec := json.NewDecoder(bytes.NewReader(out))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotObject, doc)
	}
	work := rec.Clone()
	if err := st.record(work, obj, ""); err != nil {
		return err
	}
	for name, v := range work.All() {
		if err := rec.Set(name, v); err != nil {
			return err
		}
	}
	return nil
}

func (st *state) record(r *container.Record, doc map[string]any, path string) error {
	typ := r.Type()
	for _, name := range slices.Sorted(maps.Keys(doc)) {
		if _, ok := typ.Field(name); !ok {
			return atPath(path, &container.FieldError{Type: typ.Name(), Field: name, Err: container.ErrUnknownField})
		}
	}
	leaves := map[string]any{}
	for _, f := range typ.Fields() {
		fPath := joinPath(path, f.Name)
		v, present := doc[f.Name]
		if !present {
			if err := r.Set(f.Name, f.Default); err != nil {
				return atPath(path, err)
			}
			continue
		}
		cur, err := r.Get(f.Name)
		if err != nil {
			return err
		}
		sub, isObj := v.(map[string]any)
		switch c := cur.(type) {
		case *container.Record:
			if isObj && c != nil {
				if err := st.record(c, sub, fPath); err != nil {
					return err
				}
				continue
			}
		case *container.Map:
			if isObj && c != nil {
				if err := st.entries(typ.Name(), f.Name, c, sub, fPath); err != nil {
					return err
				}
				continue
			}
		}
		leaves[f.Name] = numbers(v)
	}
	return atPath(path, r.Update(leaves))
}

func (st *state) entries(typeName, field string, m *container.Map, doc map[string]any, path string) error {
	seen := map[string]bool{}
	for _, k := range m.Keys() {
		s := fmt.Sprint(k)
		seen[s] = true
		v, present := doc[s]
		if !present {
			m.Delete(k)
			continue
		}
		cur, _ := m.Lookup(k)
		sub, isObj := v.(map[string]any)
		if rec, ok := cur.(*container.Record); ok && rec != nil && isObj {
			if err := st.record(rec, sub, keyPath(path, k)); err != nil {
				return err
			}
			continue
		}
		m.Set(k, container.Coerce(cur, numbers(v)))
	}
	for _, s := range slices.Sorted(maps.Keys(doc)) {
		if seen[s] {
			continue
		}
		k := newKey(s, m)
		v := doc[s]
		sub, isObj := v.(map[string]any)
		if isObj && st.elem != nil {
			if elem, ok := st.elem(typeName, field); ok {
				rec := elem.New()
				if err := st.record(rec, sub, keyPath(path, k)); err != nil {
					return err
				}
				m.Set(k, rec)
				continue
			}
		}
		m.Set(k, numbers(v))
	}
	return nil
}

// newKey converts a JSON object key to the key type already used by m,
// falling back to int64 for integers and string otherwise.
func newKey(s string, m *container.Map) any {
	if m.Len() > 0 {
		k0, _ := m.At(0)
		kt := reflect.TypeOf(k0)
		switch {
		case kt == nil:
		case kt.Kind() == reflect.String:
			return reflect.ValueOf(s).Convert(kt).Interface()
		case kt.Kind() >= reflect.Int && kt.Kind() <= reflect.Int64:
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				kv := reflect.New(kt).Elem()
				if !kv.OverflowInt(i) {
					kv.SetInt(i)
					return kv.Interface()
				}
			}
		case kt.Kind() >= reflect.Uint && kt.Kind() <= reflect.Uint64:
			if u, err := strconv.ParseUint(s, 10, 64); err == nil {
				kv := reflect.New(kt).Elem()
				if !kv.OverflowUint(u) {
					kv.SetUint(u)
					return kv.Interface()
				}
			}
		}
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

// numbers replaces json.Number values, at any depth, with int64 or float64.
func numbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = numbers(e)
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[k] = numbers(e)
		}
		return res
	}
	return v
}

func atPath(path string, err error) error {
	if err == nil || path == "" {
		return err
	}
	return &container.PathError{Path: path, Err: err}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func keyPath(path string, k any) string {
	return fmt.Sprintf("%s[%v]", path, k)
}
