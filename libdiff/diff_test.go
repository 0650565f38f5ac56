package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/recordkit/container"
)

var (
	telType = container.MustType("Tel",
		container.Declare("tel_id", -1, ""),
		container.Declare("image", []float64{0, 0}, ""))
	eventType = container.MustType("Event",
		container.Declare("event_id", -1, ""),
		container.Declare("tel", container.NewMap(), ""))
)

func event(t *testing.T, id int, tels ...int) *container.Record {
	t.Helper()
	rec := eventType.New()
	if err := rec.Set("event_id", id); err != nil {
		t.Fatal(err)
	}
	m, err := rec.Map("tel")
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range tels {
		tr := telType.New()
		if err := tr.Set("tel_id", id); err != nil {
			t.Fatal(err)
		}
		m.Set(id, tr)
	}
	return rec
}

func TestDiff(t *testing.T) {
	a := event(t, 1, 5, 6)
	b := event(t, 2, 6, 7)
	m, _ := b.Map("tel")
	v, _ := m.Get(6)
	if err := v.(*container.Record).Set("image", []float64{1, 2}); err != nil {
		t.Fatal(err)
	}
	got, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := []Change{
		{Key: "event_id", Op: Modified, From: 1, To: 2},
		{Key: "tel_5_tel_id", Op: Removed, From: 5},
		{Key: "tel_5_image", Op: Removed, From: []float64{0, 0}},
		{Key: "tel_6_image", Op: Modified, From: []float64{0, 0}, To: []float64{1, 2}},
		{Key: "tel_7_tel_id", Op: Added, To: 7},
		{Key: "tel_7_image", Op: Added, To: []float64{0, 0}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	var lines []string
	for _, c := range got[:4] {
		lines = append(lines, c.String())
	}
	wantLines := []string{
		"~ event_id: 1 -> 2",
		"- tel_5_tel_id: 5",
		"- tel_5_image: [0 0]",
		"~ tel_6_image: [0 0] -> [1 2]",
	}
	if diff := cmp.Diff(wantLines, lines); diff != "" {
		t.Errorf("strings (-want +got):\n%s", diff)
	}
}

func TestDiffEqual(t *testing.T) {
	got, err := Diff(event(t, 1, 5), event(t, 1, 5))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v", got)
	}
	if s := Text(event(t, 1, 5), event(t, 1, 5)); s != "" {
		t.Errorf("Text = %q", s)
	}
}

func TestDiffSeparator(t *testing.T) {
	got, err := Diff(event(t, 1), event(t, 1, 3), container.Separator("."))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Key != "tel.3.tel_id" || got[0].Op != Added {
		t.Errorf("got %v", got)
	}
}

func TestDiffString(t *testing.T) {
	got := DiffString("a\nb\nc\n", "a\nx\nc\n")
	want := " a\n-b\n+x\n c\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestText(t *testing.T) {
	got := Text(event(t, 1), event(t, 2))
	want := ` Event:
-  event_id: 1
+  event_id: 2
   tel: map[0]
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
