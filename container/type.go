package container

import (
	"fmt"
)

// Type is a named, ordered list of fields shared by all of its records. A
// Type is immutable after NewType returns and may be used concurrently.
type Type struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewType declares a record type. Field defaults are copied, so later
// changes to the values passed in do not affect the type.
func NewType(name string, fields ...Field) (*Type, error) {
	t := &Type{
		name:   name,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			return nil, &FieldError{Type: name, Err: ErrEmptyFieldName}
		}
		if _, present := t.index[f.Name]; present {
			return nil, &FieldError{Type: name, Field: f.Name, Err: ErrDuplicateField}
		}
		if rec, ok := f.Default.(*Record); ok && rec == nil {
			return nil, &FieldError{Type: name, Field: f.Name, Err: ErrFieldKind, Message: "nil record default"}
		}
		t.index[f.Name] = len(t.fields)
		t.fields = append(t.fields, f.clone())
	}
	return t, nil
}

// MustType is NewType for package level declarations; it panics on error.
func MustType(name string, fields ...Field) *Type {
	t, err := NewType(name, fields...)
	if err != nil {
		panic(fmt.Sprintf("record type %s: %v", name, err))
	}
	return t
}

func (t *Type) Name() string { return t.name }

func (t *Type) Len() int { return len(t.fields) }

// Fields returns the declared fields in order. Defaults are copies.
func (t *Type) Fields() []Field {
	res := make([]Field, len(t.fields))
	for i := range t.fields {
		res[i] = t.fields[i].clone()
	}
	return res
}

// FieldNames returns the declared field names in order.
func (t *Type) FieldNames() []string {
	res := make([]string, len(t.fields))
	for i := range t.fields {
		res[i] = t.fields[i].Name
	}
	return res
}

func (t *Type) Field(name string) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}
	return t.fields[i].clone(), true
}

// New instantiates a record whose slots hold fresh copies of the defaults.
func (t *Type) New() *Record {
	r := &Record{
		typ:    t,
		values: make([]any, len(t.fields)),
	}
	for i := range t.fields {
		r.values[i] = cloneValue(t.fields[i].Default)
	}
	return r
}

func (t *Type) lookup(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return -1, &FieldError{Type: t.name, Field: name, Err: ErrUnknownField}
	}
	return i, nil
}

func (t *Type) String() string {
	return t.name
}
