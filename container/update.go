package container

import (
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/recordkit/debug"
	"github.com/signadot/recordkit/omap"
)

// Update assigns values by field name.
//
// A mapping given for a field currently holding a record updates that record
// field by field. A mapping given for a field holding a map updates the
// existing entries whose key prints (with fmt.Sprint) as the mapping key;
// Update never adds or removes map entries, and an unmatched key fails with
// ErrKeyNotFound. Numbers are converted to the type of the value they
// replace when the conversion is lossless.
//
// All of values is checked before anything is assigned, so a failed Update
// leaves r unchanged. Mappings are map[string]any, map[any]any or
// *omap.Map[string, any]; a *Map value replaces the field's map.
func (r *Record) Update(values map[string]any) error {
	if err := r.update(values, false, "", nil); err != nil {
		return err
	}
	if debug.Update() {
		debug.Logf("update %s %v\n", r.typ.name, values)
	}
	return r.update(values, true, "", nil)
}

func (r *Record) update(values map[string]any, apply bool, path string, anc []*Record) error {
	if len(anc) >= MaxDepth {
		return &PathError{Path: pathOrRoot(path), Err: ErrMaxDepth}
	}
	anc = append(anc, r)
	for _, name := range slices.Sorted(maps.Keys(values)) {
		v := values[name]
		i, err := r.typ.lookup(name)
		if err != nil {
			return atPath(path, err)
		}
		fPath := joinPath(path, name)
		switch cur := r.values[i].(type) {
		case *Record:
			if sub, ok := mapping(v); ok && cur != nil {
				if err := cur.update(sub, apply, fPath, anc); err != nil {
					return err
				}
				continue
			}
		case *Map:
			if sub, ok := mapping(v); ok && cur != nil {
				if err := updateMap(cur, sub, apply, fPath, anc); err != nil {
					return err
				}
				continue
			}
		}
		if !apply {
			if err := checkContainment(v, anc, r.typ.name, name, path); err != nil {
				return err
			}
			continue
		}
		r.values[i] = coerce(r.values[i], v)
	}
	return nil
}

func updateMap(m *Map, values map[string]any, apply bool, path string, anc []*Record) error {
	keys := make(map[string]any, m.Len())
	for k := range m.All() {
		keys[fmt.Sprint(k)] = k
	}
	for _, mk := range slices.Sorted(maps.Keys(values)) {
		v := values[mk]
		k, ok := keys[mk]
		if !ok {
			return &PathError{Path: path, Err: &KeyError{Key: mk}}
		}
		cur, _ := m.Lookup(k)
		if rec, ok := cur.(*Record); ok && rec != nil {
			if sub, ok := mapping(v); ok {
				if err := rec.update(sub, apply, keyPath(path, k), anc); err != nil {
					return err
				}
				continue
			}
		}
		if !apply {
			if err := checkContainment(v, anc, "", mk, path); err != nil {
				return err
			}
			continue
		}
		m.Set(k, coerce(cur, v))
	}
	return nil
}

func checkContainment(v any, anc []*Record, typ, field, path string) error {
	for _, a := range anc {
		if err := containment(v, a, 0); err != nil {
			return atPath(path, &FieldError{Type: typ, Field: field, Err: err})
		}
	}
	return nil
}

func atPath(path string, err error) error {
	if path == "" {
		return err
	}
	return &PathError{Path: path, Err: err}
}

// mapping views v as a string keyed mapping if it is one. A *Map is a value
// in its own right, not a mapping.
func mapping(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case *omap.Map[string, any]:
		if x == nil {
			return nil, false
		}
		return x.ToMap(), true
	case map[any]any:
		res := make(map[string]any, len(x))
		for k, v := range x {
			res[fmt.Sprint(k)] = v
		}
		return res, true
	}
	return nil, false
}
