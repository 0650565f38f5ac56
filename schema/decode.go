package schema

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/signadot/recordkit/container"
)

// Decode instantiates typeName and fills it from a YAML data document.
func (r *Registry) Decode(typeName string, data []byte) (*container.Record, error) {
	t, err := r.Type(typeName)
	if err != nil {
		return nil, err
	}
	rec := t.New()
	if err := r.DecodeInto(rec, data); err != nil {
		return nil, err
	}
	return rec, nil
}

// DecodeFile is Decode reading the document from path.
func (r *Registry) DecodeFile(typeName, path string) (*container.Record, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rec, err := r.Decode(typeName, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// DecodeInto fills rec from a YAML data document. An empty document leaves
// rec unchanged, as does a failing one. The document is decoded into a copy
// of rec, so nested records and maps are replaced by their filled copies.
func (r *Registry) DecodeInto(rec *container.Record, data []byte) error {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return &Error{Type: rec.Type().Name(), Message: err.Error()}
	}
	if v == nil {
		return nil
	}
	ms, ok := v.(yaml.MapSlice)
	if !ok {
		return &Error{Type: rec.Type().Name(), Message: fmt.Sprintf("document is a %T, not a mapping", v)}
	}
	work := rec.Clone()
	if err := r.fill(work, ms); err != nil {
		return err
	}
	for name, v := range work.All() {
		if err := rec.Set(name, v); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) fill(rec *container.Record, ms yaml.MapSlice) error {
	typeName := rec.Type().Name()
	for _, item := range ms {
		name := fmt.Sprint(item.Key)
		cur, err := rec.Get(name)
		if err != nil {
			return err
		}
		sub, isMapping := item.Value.(yaml.MapSlice)
		switch c := cur.(type) {
		case *container.Record:
			if isMapping && c != nil {
				if err := r.fill(c, sub); err != nil {
					return err
				}
				continue
			}
		case *container.Map:
			if isMapping && c != nil {
				elem, _ := r.Elem(typeName, name)
				if err := r.fillMap(c, elem, sub); err != nil {
					return &Error{Type: typeName, Field: name, Err: err}
				}
				continue
			}
		}
		if err := rec.Update(map[string]any{name: normalize(item.Value)}); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) fillMap(m *container.Map, elem *container.Type, ms yaml.MapSlice) error {
	for _, item := range ms {
		k := normalizeKey(item.Key)
		sub, isMapping := item.Value.(yaml.MapSlice)
		cur, present := m.Lookup(k)
		if rec, ok := cur.(*container.Record); ok && rec != nil && isMapping {
			if err := r.fill(rec, sub); err != nil {
				return err
			}
			continue
		}
		if !present && elem != nil && isMapping {
			rec := elem.New()
			if err := r.fill(rec, sub); err != nil {
				return err
			}
			m.Set(k, rec)
			continue
		}
		m.Set(k, normalize(item.Value))
	}
	return nil
}
