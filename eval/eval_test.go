package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/recordkit/container"
)

func event(t *testing.T, id int, tels ...int) *container.Record {
	t.Helper()
	sub := container.MustType("Sub", container.Declare("junk", "nothing", ""))
	tel := container.MustType("Tel",
		container.Declare("tel_id", -1, ""),
		container.Declare("image", []float64{0, 0}, ""))
	ev := container.MustType("Event",
		container.Declare("event_id", -1, ""),
		container.Declare("sub", sub.New(), ""),
		container.Declare("tel", container.NewMap(), ""))
	rec := ev.New()
	if err := rec.Set("event_id", id); err != nil {
		t.Fatal(err)
	}
	m, err := rec.Map("tel")
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range tels {
		tr := tel.New()
		if err := tr.Set("tel_id", id); err != nil {
			t.Fatal(err)
		}
		m.Set(id, tr)
	}
	return rec
}

func TestRun(t *testing.T) {
	rec := event(t, 100, 5, 7)
	tests := []struct {
		src  string
		want any
	}{
		{`event_id`, 100},
		{`event_id * 2`, 200},
		{`sub.junk`, "nothing"},
		{`len(tel)`, 2},
		{`tel[7].tel_id`, 7},
		{`tel[5].image`, []float64{0, 0}},
		{`typename()`, "Event"},
		{`flat()["tel_5_tel_id"]`, 5},
		{`"tel_7_image" in flat()`, true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			got, err := p.Run(rec)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunDoesNotMutate(t *testing.T) {
	rec := event(t, 1, 5)
	before := rec.String()
	if _, err := Eval(`tel[5].tel_id`, rec); err != nil {
		t.Fatal(err)
	}
	if after := rec.String(); after != before {
		t.Errorf("record changed:\n%s", after)
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("RECORDKIT_EVAL_TEST", "x")
	got, err := Eval(`getenv("RECORDKIT_EVAL_TEST") + sub.junk`, event(t, 1))
	if err != nil {
		t.Fatal(err)
	}
	if got != "xnothing" {
		t.Errorf("got %v", got)
	}
}

func TestShadowing(t *testing.T) {
	typ := container.MustType("T", container.Declare("flat", "field", ""))
	got, err := Eval(`flat`, typ.New())
	if err != nil {
		t.Fatal(err)
	}
	if got != "field" {
		t.Errorf("got %v, want field value", got)
	}
}

func TestBool(t *testing.T) {
	p, err := Compile(`event_id`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Bool(event(t, 1)); err == nil {
		t.Error("expected error for non-bool result")
	}
	if _, err := Compile(`event_id +`); err == nil {
		t.Error("expected compile error")
	}
}

func TestFilter(t *testing.T) {
	recs := []*container.Record{
		event(t, 1),
		event(t, 2, 5),
		event(t, 3, 5, 7),
	}
	got, err := Filter(`len(tel) > 0 && event_id != 3`, recs)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != recs[1] {
		t.Errorf("Filter = %v", got)
	}
	if _, err := Filter(`sub`, recs); err == nil {
		t.Error("expected error for non-bool filter")
	}
}
