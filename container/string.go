package container

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Token classifies the parts of a rendered record for painting.
type Token int

const (
	TypeToken Token = iota
	FieldToken
	KeyToken
	ValueToken
	UnitToken
)

// Paint decorates one rendered token, for instance with terminal colors.
type Paint func(Token, string) string

const indentUnit = "  "

// String renders r with one line per declared field; nested records and
// maps are indented beneath their field. It is meant for debugging, not
// as a serialization format.
func (r *Record) String() string {
	buf := bytes.NewBuffer(nil)
	if err := r.Render(buf, nil); err != nil {
		return fmt.Sprintf("%s<error: %v>", r.typ.name, err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Render writes the String form of r to w, passing each token through
// paint when paint is not nil.
func (r *Record) Render(w io.Writer, paint Paint) error {
	rs := &renderState{w: w, paint: paint}
	rs.record(r, 0)
	return rs.err
}

type renderState struct {
	w     io.Writer
	paint Paint
	stack []*Record
	err   error
}

func (rs *renderState) tok(t Token, s string) string {
	if rs.paint == nil {
		return s
	}
	return rs.paint(t, s)
}

func (rs *renderState) printf(format string, args ...any) {
	if rs.err != nil {
		return
	}
	_, rs.err = fmt.Fprintf(rs.w, format, args...)
}

// record writes the header line remainder and the fields of r below it.
func (rs *renderState) record(r *Record, depth int) {
	rs.printf("%s:\n", rs.tok(TypeToken, r.typ.name))
	for _, p := range rs.stack {
		if p == r {
			rs.printf("%s<cycle>\n", strings.Repeat(indentUnit, depth+1))
			return
		}
	}
	if len(rs.stack) >= MaxDepth {
		rs.printf("%s<too deep>\n", strings.Repeat(indentUnit, depth+1))
		return
	}
	rs.stack = append(rs.stack, r)
	defer func() { rs.stack = rs.stack[:len(rs.stack)-1] }()

	indent := strings.Repeat(indentUnit, depth+1)
	for i := range r.typ.fields {
		f := &r.typ.fields[i]
		rs.printf("%s%s: ", indent, rs.tok(FieldToken, f.Name))
		rs.value(r.values[i], depth+1)
		if f.Unit != "" {
			rs.printf(" %s", rs.tok(UnitToken, "["+f.Unit+"]"))
		}
		rs.printf("\n")
	}
}

// value writes v without its trailing newline.
func (rs *renderState) value(v any, depth int) {
	switch x := v.(type) {
	case *Record:
		if x == nil {
			rs.printf("%s", rs.tok(ValueToken, "null"))
			return
		}
		buf := bytes.NewBuffer(nil)
		sub := &renderState{w: buf, paint: rs.paint, stack: rs.stack}
		sub.record(x, depth)
		if sub.err != nil {
			rs.err = sub.err
			return
		}
		rs.printf("%s", strings.TrimSuffix(buf.String(), "\n"))
	case *Map:
		rs.printf("%s", rs.tok(TypeToken, fmt.Sprintf("map[%d]", x.Len())))
		if x.Len() == 0 {
			return
		}
		rs.printf(":")
		indent := strings.Repeat(indentUnit, depth+1)
		for k, mv := range x.All() {
			rs.printf("\n%s%s: ", indent, rs.tok(KeyToken, fmt.Sprint(k)))
			rs.value(mv, depth+1)
		}
	default:
		rs.printf("%s", rs.tok(ValueToken, FormatValue(v)))
	}
}

// FormatValue renders a leaf value the way String does.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
