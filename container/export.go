package container

import (
	"fmt"

	"github.com/signadot/recordkit/debug"
	"github.com/signadot/recordkit/omap"
)

// MaxDepth bounds record nesting during export.
const MaxDepth = 64

// DefaultSeparator joins path components of flattened keys.
const DefaultSeparator = "_"

type ExportOption func(*exportState)

// Recursive includes nested records and maps in the export.
func Recursive(v bool) ExportOption {
	return func(es *exportState) { es.recursive = v }
}

// Flatten merges a recursive export into one level with composite keys.
// It has no effect without Recursive.
func Flatten(v bool) ExportOption {
	return func(es *exportState) { es.flatten = v }
}

// Separator sets the string joining flattened key components.
func Separator(sep string) ExportOption {
	return func(es *exportState) { es.sep = sep }
}

type exportState struct {
	recursive bool
	flatten   bool
	sep       string

	stack []*Record
	// flattened key -> path which produced it
	origins map[string]string
}

// AsMapping exports r as an ordered mapping from field name to value.
//
// By default only fields whose current value is neither a record nor a map
// are exported. With Recursive(true), nested records become nested
// mappings and maps become mappings from their keys to the export of each
// value. With Flatten(true) as well, the result has a single level whose
// keys join the field names and map keys along each path, e.g. tel_5_image.
// A nil nested record exports as nil in both shapes.
// Two paths flattening to the same key fail with ErrFlattenKeyCollision.
//
// Leaf values are copied; the export shares no mutable state with r.
func (r *Record) AsMapping(opts ...ExportOption) (*omap.Map[string, any], error) {
	es := &exportState{sep: DefaultSeparator}
	for _, opt := range opts {
		opt(es)
	}
	if !es.recursive {
		es.flatten = false
	}
	if debug.Export() {
		debug.Logf("export %s recursive=%t flatten=%t\n", r.typ.name, es.recursive, es.flatten)
	}
	res := omap.New[string, any]()
	if es.flatten {
		es.origins = map[string]string{}
		if err := es.flattenRecord(res, r, "", ""); err != nil {
			return nil, err
		}
		return res, nil
	}
	if err := es.exportRecord(res, r, ""); err != nil {
		return nil, err
	}
	return res, nil
}

func (es *exportState) push(r *Record, path string) error {
	if len(es.stack) >= MaxDepth {
		return &PathError{Path: pathOrRoot(path), Err: ErrMaxDepth}
	}
	for _, p := range es.stack {
		if p == r {
			return &PathError{Path: pathOrRoot(path), Err: ErrSelfContainment}
		}
	}
	es.stack = append(es.stack, r)
	return nil
}

func (es *exportState) pop() {
	es.stack = es.stack[:len(es.stack)-1]
}

func (es *exportState) exportRecord(dst *omap.Map[string, any], r *Record, path string) error {
	if err := es.push(r, path); err != nil {
		return err
	}
	defer es.pop()
	for i := range r.typ.fields {
		name := r.typ.fields[i].Name
		fPath := joinPath(path, name)
		switch v := r.values[i].(type) {
		case *Record:
			if !es.recursive {
				continue
			}
			if v == nil {
				dst.Set(name, nil)
				continue
			}
			sub := omap.New[string, any]()
			if err := es.exportRecord(sub, v, fPath); err != nil {
				return err
			}
			dst.Set(name, sub)
		case *Map:
			if !es.recursive {
				continue
			}
			sub, err := es.exportMap(v, fPath)
			if err != nil {
				return err
			}
			dst.Set(name, sub)
		default:
			dst.Set(name, cloneValue(v))
		}
	}
	return nil
}

func (es *exportState) exportMap(m *Map, path string) (*omap.Map[any, any], error) {
	res := omap.New[any, any]()
	for k, v := range m.All() {
		rec, ok := v.(*Record)
		if !ok || rec == nil {
			res.Set(k, cloneValue(v))
			continue
		}
		sub := omap.New[string, any]()
		if err := es.exportRecord(sub, rec, keyPath(path, k)); err != nil {
			return nil, err
		}
		res.Set(k, sub)
	}
	return res, nil
}

func (es *exportState) flattenRecord(dst *omap.Map[string, any], r *Record, prefix, path string) error {
	if err := es.push(r, path); err != nil {
		return err
	}
	defer es.pop()
	for i := range r.typ.fields {
		name := r.typ.fields[i].Name
		key := es.join(prefix, name)
		fPath := joinPath(path, name)
		switch v := r.values[i].(type) {
		case *Record:
			if v == nil {
				if err := es.put(dst, key, fPath, nil); err != nil {
					return err
				}
				continue
			}
			if err := es.flattenRecord(dst, v, key, fPath); err != nil {
				return err
			}
		case *Map:
			for k, mv := range v.All() {
				mKey := es.join(key, fmt.Sprint(k))
				mPath := keyPath(fPath, k)
				rec, ok := mv.(*Record)
				if !ok || rec == nil {
					if err := es.put(dst, mKey, mPath, cloneValue(mv)); err != nil {
						return err
					}
					continue
				}
				if err := es.flattenRecord(dst, rec, mKey, mPath); err != nil {
					return err
				}
			}
		default:
			if err := es.put(dst, key, fPath, cloneValue(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (es *exportState) put(dst *omap.Map[string, any], key, path string, v any) error {
	if prev, ok := es.origins[key]; ok {
		return &CollisionError{Key: key, Paths: [2]string{prev, path}}
	}
	es.origins[key] = path
	dst.Set(key, v)
	return nil
}

func (es *exportState) join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + es.sep + name
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

func pathOrRoot(path string) string {
	if path == "" {
		return "$"
	}
	return path
}

// FlatKeys returns the keys of the flattened export of r, in order.
func (r *Record) FlatKeys(sep string) ([]string, error) {
	m, err := r.AsMapping(Recursive(true), Flatten(true), Separator(sep))
	if err != nil {
		return nil, err
	}
	return m.Keys(), nil
}
