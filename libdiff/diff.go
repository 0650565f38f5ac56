package libdiff

import (
	"fmt"
	"reflect"

	"github.com/signadot/recordkit/container"
)

type Op int

const (
	Added Op = iota
	Removed
	Modified
)

func (o Op) String() string {
	switch o {
	case Added:
		return "+"
	case Removed:
		return "-"
	case Modified:
		return "~"
	default:
		return fmt.Sprintf("<op %d>", int(o))
	}
}

// Change is the difference at one flattened key. From is unset for Added
// and To for Removed.
type Change struct {
	Key  string
	Op   Op
	From any
	To   any
}

func (c Change) String() string {
	switch c.Op {
	case Added:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Key, container.FormatValue(c.To))
	case Removed:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Key, container.FormatValue(c.From))
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op, c.Key, container.FormatValue(c.From), container.FormatValue(c.To))
	}
}

// Diff lists the differences between the flattened exports of a and b:
// keys of a in order, then keys only in b in order. Records of different
// types are compared the same way.
func Diff(a, b *container.Record, opts ...container.ExportOption) ([]Change, error) {
	opts = append([]container.ExportOption{container.Recursive(true), container.Flatten(true)}, opts...)
	fa, err := a.AsMapping(opts...)
	if err != nil {
		return nil, err
	}
	fb, err := b.AsMapping(opts...)
	if err != nil {
		return nil, err
	}
	var res []Change
	for k, av := range fa.All() {
		bv, ok := fb.Lookup(k)
		switch {
		case !ok:
			res = append(res, Change{Key: k, Op: Removed, From: av})
		case !reflect.DeepEqual(av, bv):
			res = append(res, Change{Key: k, Op: Modified, From: av, To: bv})
		}
	}
	for k, bv := range fb.All() {
		if !fa.Has(k) {
			res = append(res, Change{Key: k, Op: Added, To: bv})
		}
	}
	return res, nil
}
