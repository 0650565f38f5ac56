package container

// Field declares a named slot of a record type. Default is a template: each
// record receives its own deep copy of it on creation and on Reset.
type Field struct {
	Name        string
	Default     any
	Description string
	Unit        string
}

type FieldOption func(*Field)

// WithUnit attaches a physical unit to the field, shown when rendering.
func WithUnit(u string) FieldOption {
	return func(f *Field) { f.Unit = u }
}

// Declare creates a Field.
func Declare(name string, def any, description string, opts ...FieldOption) Field {
	f := Field{
		Name:        name,
		Default:     def,
		Description: description,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func (f Field) clone() Field {
	f.Default = cloneValue(f.Default)
	return f
}
