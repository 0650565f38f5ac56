package container

import (
	"github.com/signadot/recordkit/debug"
)

// Reset restores every field to a fresh copy of its declared default.
//
// A field holding a record of the same type as its record default is reset
// in place, slot by slot from that default. Every record held by a field
// whose current value and default are both maps is reset in place to the
// defaults of its own type; such maps keep their keys and order. Reset is
// idempotent.
func (r *Record) Reset() {
	r.resetTo(r.typ.defaults(), map[*Record]bool{})
}

// resetTo restores r from defaults, one template per field. Templates are
// copied, never assigned.
func (r *Record) resetTo(defaults []any, seen map[*Record]bool) {
	if seen[r] {
		return
	}
	seen[r] = true
	if debug.Reset() {
		debug.Logf("reset %s\n", r.typ.name)
	}
	for i, def := range defaults {
		switch cur := r.values[i].(type) {
		case *Record:
			if d, ok := def.(*Record); ok && d != nil && cur != nil && cur.typ == d.typ {
				cur.resetTo(d.values, seen)
				continue
			}
		case *Map:
			if _, ok := def.(*Map); ok && cur != nil {
				for _, v := range cur.All() {
					if sub, ok := v.(*Record); ok && sub != nil {
						sub.resetTo(sub.typ.defaults(), seen)
					}
				}
				continue
			}
		}
		r.values[i] = cloneValue(def)
	}
}

func (t *Type) defaults() []any {
	res := make([]any, len(t.fields))
	for i := range t.fields {
		res[i] = t.fields[i].Default
	}
	return res
}
