package container

import (
	"bytes"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	nb := newNotebook(2)
	ev := nb.withTels(t, 5)
	if err := ev.Set("event_id", 100); err != nil {
		t.Fatal(err)
	}
	if err := ev.Set("tels_with_data", []int{5}); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"EventContainer:",
		"  event_id: 100",
		"  tels_with_data: [5]",
		"  sub: SubContainer:",
		"    junk: nothing",
		"  tel: map[1]:",
		"    5: TelContainer:",
		"      tel_id: 5",
		"      image: [0 0] [p.e.]",
	}, "\n")
	if got := ev.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}

	empty := nb.event.New().String()
	if !strings.Contains(empty, "  tel: map[0]\n") {
		t.Errorf("empty map rendering:\n%s", empty)
	}
}

func TestRenderPaint(t *testing.T) {
	sub := MustType("Sub", Declare("junk", "nothing", ""))
	buf := bytes.NewBuffer(nil)
	paint := func(tok Token, s string) string {
		switch tok {
		case TypeToken:
			return "<" + s + ">"
		case FieldToken:
			return "." + s
		case ValueToken:
			return "'" + s + "'"
		}
		return s
	}
	if err := sub.New().Render(buf, paint); err != nil {
		t.Fatal(err)
	}
	want := "<Sub>:\n  .junk: 'nothing'\n"
	if buf.String() != want {
		t.Errorf("Render = %q, want %q", buf.String(), want)
	}
}
