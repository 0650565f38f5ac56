package schema

import (
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/signadot/recordkit/container"
	"github.com/signadot/recordkit/debug"
	"github.com/signadot/recordkit/omap"
)

// Registry holds named record types in declaration order, along with the
// element types of their map fields.
type Registry struct {
	types *omap.Map[string, *container.Type]
	// type name -> map field name -> element type
	elems map[string]map[string]*container.Type
}

func NewRegistry() *Registry {
	return &Registry{
		types: omap.New[string, *container.Type](),
		elems: map[string]map[string]*container.Type{},
	}
}

// Add registers a type declared in Go. elems names the element types of its
// map fields, if any.
func (r *Registry) Add(t *container.Type, elems map[string]*container.Type) error {
	if r.types.Has(t.Name()) {
		return &Error{Type: t.Name(), Err: ErrDuplicate}
	}
	for field, elem := range elems {
		if _, ok := t.Field(field); !ok {
			return &Error{Type: t.Name(), Field: field, Err: container.ErrUnknownField}
		}
		if r.elems[t.Name()] == nil {
			r.elems[t.Name()] = map[string]*container.Type{}
		}
		r.elems[t.Name()][field] = elem
	}
	r.types.Set(t.Name(), t)
	return nil
}

func (r *Registry) Type(name string) (*container.Type, error) {
	t, ok := r.types.Lookup(name)
	if !ok {
		return nil, &Error{Type: name, Err: ErrUnknownType}
	}
	return t, nil
}

// Names returns the registered type names in declaration order.
func (r *Registry) Names() []string {
	return r.types.Keys()
}

// Elem returns the element type declared for a map field.
func (r *Registry) Elem(typeName, field string) (*container.Type, bool) {
	t, ok := r.elems[typeName][field]
	return t, ok
}

type document struct {
	Types []typeDecl `yaml:"types"`
}

type typeDecl struct {
	Name   string           `yaml:"name"`
	Fields []yaml.MapSlice `yaml:"fields"`
}

var fieldKeys = []string{"name", "description", "unit", "default", "zeros", "record", "map"}

// ParseFile reads a type document from path.
func ParseFile(path string) (*Registry, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	reg, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Parse reads a type document.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, &Error{Message: err.Error()}
	}
	reg := NewRegistry()
	for _, td := range doc.Types {
		if td.Name == "" {
			return nil, &Error{Message: "type without name"}
		}
		fields := make([]container.Field, 0, len(td.Fields))
		elems := map[string]*container.Type{}
		for _, fd := range td.Fields {
			f, elem, err := reg.field(td.Name, fd)
			if err != nil {
				return nil, err
			}
			if elem != nil {
				elems[f.Name] = elem
			}
			fields = append(fields, f)
		}
		t, err := container.NewType(td.Name, fields...)
		if err != nil {
			return nil, &Error{Type: td.Name, Message: err.Error()}
		}
		if err := reg.Add(t, elems); err != nil {
			return nil, err
		}
		if debug.Schema() {
			debug.Logf("schema: declared %s %v\n", t.Name(), t.FieldNames())
		}
	}
	return reg, nil
}

func (r *Registry) field(typeName string, fd yaml.MapSlice) (container.Field, *container.Type, error) {
	var (
		f     container.Field
		elem  *container.Type
		kinds []string
	)
	for _, item := range fd {
		key := fmt.Sprint(item.Key)
		if !slices.Contains(fieldKeys, key) {
			return f, nil, &Error{Type: typeName, Field: f.Name, Message: fmt.Sprintf("unknown field attribute %q", key)}
		}
		switch key {
		case "name":
			f.Name = fmt.Sprint(item.Value)
		case "description":
			f.Description = fmt.Sprint(item.Value)
		case "unit":
			f.Unit = fmt.Sprint(item.Value)
		case "default":
			kinds = append(kinds, key)
			f.Default = normalize(item.Value)
		case "zeros":
			kinds = append(kinds, key)
			n, ok := normalize(item.Value).(int64)
			if !ok || n < 0 {
				return f, nil, &Error{Type: typeName, Field: f.Name, Message: fmt.Sprintf("zeros must be a non-negative integer, got %v", item.Value)}
			}
			f.Default = make([]float64, n)
		case "record":
			kinds = append(kinds, key)
			sub, err := r.Type(fmt.Sprint(item.Value))
			if err != nil {
				return f, nil, &Error{Type: typeName, Field: f.Name, Err: ErrUnknownType, Message: fmt.Sprint(item.Value)}
			}
			f.Default = sub.New()
		case "map":
			kinds = append(kinds, key)
			f.Default = container.NewMap()
			switch v := item.Value.(type) {
			case bool:
				if !v {
					return f, nil, &Error{Type: typeName, Field: f.Name, Message: "map: false"}
				}
			case string:
				sub, err := r.Type(v)
				if err != nil {
					return f, nil, &Error{Type: typeName, Field: f.Name, Err: ErrUnknownType, Message: v}
				}
				elem = sub
			default:
				return f, nil, &Error{Type: typeName, Field: f.Name, Message: fmt.Sprintf("map must be true or a type name, got %v", v)}
			}
		}
	}
	if f.Name == "" {
		return f, nil, &Error{Type: typeName, Message: "field without name"}
	}
	if len(kinds) > 1 {
		return f, nil, &Error{Type: typeName, Field: f.Name, Message: fmt.Sprintf("conflicting attributes %v", kinds)}
	}
	return f, elem, nil
}
