package container

import (
	"iter"
	"reflect"
)

// Record is an instance of a Type: one mutable slot per declared field.
//
// Records form trees: a record may own nested records and maps of records,
// but a record must not contain itself. Records are not safe for concurrent
// mutation.
type Record struct {
	typ    *Type
	values []any
}

func (r *Record) Type() *Type {
	return r.typ
}

// Get returns the current value of the named field.
func (r *Record) Get(name string) (any, error) {
	i, err := r.typ.lookup(name)
	if err != nil {
		return nil, err
	}
	return r.values[i], nil
}

// Set overwrites the named field. Assigning a value which contains r
// fails with ErrSelfContainment.
func (r *Record) Set(name string, v any) error {
	i, err := r.typ.lookup(name)
	if err != nil {
		return err
	}
	if err := containment(v, r, 0); err != nil {
		return &FieldError{Type: r.typ.name, Field: name, Err: err}
	}
	r.values[i] = v
	return nil
}

// Record returns the nested record held by the named field.
func (r *Record) Record(name string) (*Record, error) {
	v, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	sub, ok := v.(*Record)
	if !ok {
		return nil, &FieldError{Type: r.typ.name, Field: name, Err: ErrFieldKind, Message: kindOf(v) + " is not a record"}
	}
	return sub, nil
}

// Map returns the map held by the named field.
func (r *Record) Map(name string) (*Map, error) {
	v, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	m, ok := v.(*Map)
	if !ok {
		return nil, &FieldError{Type: r.typ.name, Field: name, Err: ErrFieldKind, Message: kindOf(v) + " is not a map"}
	}
	return m, nil
}

// All iterates field names and current values in declaration order.
func (r *Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i := range r.typ.fields {
			if !yield(r.typ.fields[i].Name, r.values[i]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := &Record{
		typ:    r.typ,
		values: make([]any, len(r.values)),
	}
	for i, v := range r.values {
		c.values[i] = cloneValue(v)
	}
	return c
}

// DeepCopy implements deepcopy.Interface.
func (r *Record) DeepCopy() any {
	return r.Clone()
}

// Equal reports whether a and b have the same type and structurally equal
// values.
func Equal(a, b *Record) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.typ != b.typ {
		return false
	}
	for i := range a.values {
		if !valueEqual(a.values[i], b.values[i]) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch x := a.(type) {
	case *Record:
		y, ok := b.(*Record)
		return ok && Equal(x, y)
	case *Map:
		y, ok := b.(*Map)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i := range x.Len() {
			xk, xv := x.At(i)
			yk, yv := y.At(i)
			if xk != yk || !valueEqual(xv, yv) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// containment fails with ErrSelfContainment when v is or holds target, and
// with ErrMaxDepth when v nests records deeper than MaxDepth.
func containment(v any, target *Record, depth int) error {
	if depth > MaxDepth {
		return ErrMaxDepth
	}
	switch x := v.(type) {
	case *Record:
		if x == nil {
			return nil
		}
		if x == target {
			return ErrSelfContainment
		}
		for _, sub := range x.values {
			if err := containment(sub, target, depth+1); err != nil {
				return err
			}
		}
	case *Map:
		for _, sub := range x.All() {
			if err := containment(sub, target, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case *Record:
		return "record"
	case *Map:
		return "map"
	}
	return reflect.TypeOf(v).String()
}
