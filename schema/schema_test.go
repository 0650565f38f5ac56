package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/recordkit/container"
)

const notebookDoc = `
types:
- name: SubContainer
  fields:
  - {name: junk, default: nothing, description: Some junk}
- name: TelContainer
  fields:
  - {name: tel_id, default: -1, description: telescope ID number}
  - {name: image, zeros: 4, unit: p.e., description: camera pixel data}
- name: EventContainer
  fields:
  - {name: event_id, default: -1, description: event id number}
  - {name: tels_with_data, default: [], description: list of telescopes with data}
  - {name: sub, record: SubContainer, description: stuff}
  - {name: tel, map: TelContainer, description: telescopes}
  - {name: weights, default: [1, 2.5]}
  - name: note
`

func TestParse(t *testing.T) {
	reg, err := Parse([]byte(notebookDoc))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"SubContainer", "TelContainer", "EventContainer"}, reg.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	ev, err := reg.Type("EventContainer")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"event_id", "tels_with_data", "sub", "tel", "weights", "note"}, ev.FieldNames()); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	rec := ev.New()
	flat, err := rec.AsMapping(container.Recursive(true), container.Flatten(true))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"event_id":       int64(-1),
		"tels_with_data": []any{},
		"sub_junk":       "nothing",
		"weights":        []float64{1, 2.5},
		"note":           nil,
	}
	if diff := cmp.Diff(want, flat.ToMap()); diff != "" {
		t.Errorf("defaults (-want +got):\n%s", diff)
	}
	f, _ := ev.Field("tel")
	if f.Description != "telescopes" {
		t.Errorf("tel description = %q", f.Description)
	}
	elem, ok := reg.Elem("EventContainer", "tel")
	if !ok || elem.Name() != "TelContainer" {
		t.Errorf("Elem(EventContainer, tel) = %v, %v", elem, ok)
	}
	tel, _ := reg.Type("TelContainer")
	img, _ := tel.Field("image")
	if img.Unit != "p.e." {
		t.Errorf("image unit = %q", img.Unit)
	}
	if diff := cmp.Diff(make([]float64, 4), img.Default); diff != "" {
		t.Errorf("image default (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"forward record", "types:\n- name: A\n  fields:\n  - {name: b, record: B}\n", ErrUnknownType},
		{"unknown map elem", "types:\n- name: A\n  fields:\n  - {name: b, map: B}\n", ErrUnknownType},
		{"duplicate type", "types:\n- name: A\n- name: A\n", ErrDuplicate},
		{"conflicting", "types:\n- name: A\n  fields:\n  - {name: b, default: 1, zeros: 2}\n", ErrSchema},
		{"bad attribute", "types:\n- name: A\n  fields:\n  - {name: b, dflt: 1}\n", ErrSchema},
		{"negative zeros", "types:\n- name: A\n  fields:\n  - {name: b, zeros: -2}\n", ErrSchema},
		{"nameless field", "types:\n- name: A\n  fields:\n  - {default: 1}\n", ErrSchema},
		{"duplicate field", "types:\n- name: A\n  fields:\n  - {name: b}\n  - {name: b}\n", ErrSchema},
		{"not yaml", "types: [", ErrSchema},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	reg, err := Parse([]byte(notebookDoc))
	if err != nil {
		t.Fatal(err)
	}
	data := `
event_id: 100
tels_with_data: [42, 5]
sub: {junk: gold}
tel:
  42: {tel_id: 42, image: [1, 2, 3, 4]}
  5: {tel_id: 5}
`
	ev, err := reg.Decode("EventContainer", []byte(data))
	if err != nil {
		t.Fatal(err)
	}
	flat, err := ev.AsMapping(container.Recursive(true), container.Flatten(true))
	if err != nil {
		t.Fatal(err)
	}
	wantKeys := []string{
		"event_id", "tels_with_data", "sub_junk",
		"tel_42_tel_id", "tel_42_image",
		"tel_5_tel_id", "tel_5_image",
		"weights", "note",
	}
	if diff := cmp.Diff(wantKeys, flat.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	want := map[string]any{
		"event_id":       int64(100),
		"tels_with_data": []float64{42, 5},
		"sub_junk":       "gold",
		"tel_42_tel_id":  int64(42),
		"tel_42_image":   []float64{1, 2, 3, 4},
		"tel_5_tel_id":   int64(5),
		"tel_5_image":    []float64{0, 0, 0, 0},
		"weights":        []float64{1, 2.5},
		"note":           nil,
	}
	if diff := cmp.Diff(want, flat.ToMap()); diff != "" {
		t.Errorf("decoded (-want +got):\n%s", diff)
	}
	tels, _ := ev.Map("tel")
	if diff := cmp.Diff([]any{int64(42), int64(5)}, tels.Keys()); diff != "" {
		t.Errorf("tel keys (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	reg, err := Parse([]byte(notebookDoc))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Decode("Nope", nil); !errors.Is(err, ErrUnknownType) {
		t.Errorf("unknown type error = %v", err)
	}
	if _, err := reg.Decode("EventContainer", []byte("bogus: 1\n")); !errors.Is(err, container.ErrUnknownField) {
		t.Errorf("unknown field error = %v", err)
	}
	if _, err := reg.Decode("EventContainer", []byte("tel:\n  1: {colour: red}\n")); !errors.Is(err, container.ErrUnknownField) {
		t.Errorf("unknown nested field error = %v", err)
	}
	if _, err := reg.Decode("EventContainer", []byte("- 1\n")); !errors.Is(err, ErrSchema) {
		t.Errorf("list document error = %v", err)
	}
	rec, err := reg.Decode("EventContainer", []byte(""))
	if err != nil {
		t.Fatalf("empty document: %v", err)
	}
	if v, _ := rec.Get("event_id"); v != int64(-1) {
		t.Errorf("event_id = %v after empty document", v)
	}
}

func TestAddGoType(t *testing.T) {
	tel := container.MustType("Tel", container.Declare("id", 0, ""))
	ev := container.MustType("Ev", container.Declare("tels", container.NewMap(), ""))
	reg := NewRegistry()
	if err := reg.Add(tel, nil); err != nil {
		t.Fatal(err)
	}
	if err := reg.Add(ev, map[string]*container.Type{"tels": tel}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Add(ev, nil); !errors.Is(err, ErrDuplicate) {
		t.Errorf("second Add error = %v", err)
	}
	bad := container.MustType("Bad")
	if err := reg.Add(bad, map[string]*container.Type{"x": tel}); !errors.Is(err, container.ErrUnknownField) {
		t.Errorf("Add with unknown map field error = %v", err)
	}
	rec, err := reg.Decode("Ev", []byte("tels: {7: {id: 7}}"))
	if err != nil {
		t.Fatal(err)
	}
	tels, _ := rec.Map("tels")
	v, err := tels.Get(int64(7))
	if err != nil {
		t.Fatal(err)
	}
	if id, _ := v.(*container.Record).Get("id"); id != 7 {
		t.Errorf("id = %#v, want int 7", id)
	}
}

func TestDecodeIntoFailureLeavesRecord(t *testing.T) {
	reg, err := Parse([]byte(notebookDoc))
	if err != nil {
		t.Fatal(err)
	}
	rec, err := reg.Decode("EventContainer", []byte("event_id: 3\ntel:\n  5: {tel_id: 5}\n"))
	if err != nil {
		t.Fatal(err)
	}
	before := rec.Clone()
	data := "event_id: 9\nsub: {junk: gold}\ntel:\n  6: {tel_id: 6}\nbogus: 1\n"
	if err := reg.DecodeInto(rec, []byte(data)); !errors.Is(err, container.ErrUnknownField) {
		t.Fatalf("DecodeInto error = %v", err)
	}
	if !container.Equal(before, rec) {
		t.Errorf("failed decode changed the record:\n%s", rec)
	}
	if err := reg.DecodeInto(rec, []byte("event_id: 9\n")); err != nil {
		t.Fatal(err)
	}
	if v, _ := rec.Get("event_id"); v != int64(9) {
		t.Errorf("event_id = %v, want 9", v)
	}
}
