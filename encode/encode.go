package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/recordkit/container"
	"github.com/signadot/recordkit/format"
	"github.com/signadot/recordkit/omap"
)

type EncState struct {
	indent     int
	format     format.Format
	export     bool
	exportOpts []container.ExportOption
	paint      container.Paint
}

func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if rec, ok := v.(*container.Record); ok && rec != nil {
		switch {
		case es.export:
			m, err := rec.AsMapping(es.exportOpts...)
			if err != nil {
				return err
			}
			v = m
		case es.format.IsText():
			if err := rec.Render(w, es.paint); err != nil {
				return err
			}
			return nil
		default:
			m, err := rec.AsMapping(container.Recursive(true))
			if err != nil {
				return err
			}
			v = m
		}
	}
	switch es.format {
	case format.TextFormat:
		return encodeText(v, w, es)
	case format.YAMLFormat:
		d, err := yaml.MarshalWithOptions(toYAML(v), yaml.Indent(es.indent))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
		d, err := json.MarshalIndent(v, "", strings.Repeat(" ", es.indent))
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

type entry struct {
	key   any
	value any
	tok   container.Token
}

// entries lists the entries of an ordered mapping.
func entries(v any) ([]entry, bool) {
	var res []entry
	switch m := v.(type) {
	case *omap.Map[string, any]:
		for k, v := range m.All() {
			res = append(res, entry{k, v, container.FieldToken})
		}
	case *omap.Map[any, any]:
		for k, v := range m.All() {
			res = append(res, entry{k, v, container.KeyToken})
		}
	default:
		return nil, false
	}
	return res, true
}

// toYAML converts ordered mappings to yaml.MapSlice so goccy keeps their
// order.
func toYAML(v any) any {
	ents, ok := entries(v)
	if !ok {
		return v
	}
	ms := make(yaml.MapSlice, 0, len(ents))
	for _, e := range ents {
		ms = append(ms, yaml.MapItem{Key: e.key, Value: toYAML(e.value)})
	}
	return ms
}

func encodeText(v any, w io.Writer, es *EncState) error {
	ents, ok := entries(v)
	if !ok {
		_, err := fmt.Fprintln(w, tok(es, container.ValueToken, container.FormatValue(v)))
		return err
	}
	return writeEntries(w, es, ents, 0)
}

func writeEntries(w io.Writer, es *EncState, ents []entry, depth int) error {
	indent := strings.Repeat(" ", es.indent*depth)
	for _, e := range ents {
		key := tok(es, e.tok, fmt.Sprint(e.key))
		sub, ok := entries(e.value)
		if !ok {
			val := tok(es, container.ValueToken, container.FormatValue(e.value))
			if _, err := fmt.Fprintf(w, "%s%s: %s\n", indent, key, val); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s:\n", indent, key); err != nil {
			return err
		}
		if err := writeEntries(w, es, sub, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func tok(es *EncState, t container.Token, s string) string {
	if es.paint == nil {
		return s
	}
	return es.paint(t, s)
}
