package container

import (
	"testing"

	"github.com/signadot/recordkit/omap"
)

type notebook struct {
	sub, tel, event *Type
}

func newNotebook(imageLen int) *notebook {
	nb := &notebook{}
	nb.sub = MustType("SubContainer",
		Declare("junk", "nothing", "Some junk"))
	nb.tel = MustType("TelContainer",
		Declare("tel_id", -1, "telescope ID number"),
		Declare("image", make([]float64, imageLen), "camera pixel data", WithUnit("p.e.")))
	nb.event = MustType("EventContainer",
		Declare("event_id", -1, "event id number"),
		Declare("tels_with_data", []int{}, "list of telescopes with data"),
		Declare("sub", nb.sub.New(), "stuff"),
		Declare("tel", NewMap(), "telescopes"))
	return nb
}

// withTels adds one TelContainer per id, with tel_id set to the id.
func (nb *notebook) withTels(t *testing.T, ids ...int) *Record {
	t.Helper()
	ev := nb.event.New()
	tels, err := ev.Map("tel")
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range ids {
		rec := nb.tel.New()
		if err := rec.Set("tel_id", id); err != nil {
			t.Fatal(err)
		}
		tels.Set(id, rec)
	}
	return ev
}

func mustGet(t *testing.T, r *Record, name string) any {
	t.Helper()
	v, err := r.Get(name)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

// plain converts ordered exports to Go maps for comparison.
func plain(v any) any {
	switch x := v.(type) {
	case *omap.Map[string, any]:
		res := make(map[string]any, x.Len())
		for k, v := range x.All() {
			res[k] = plain(v)
		}
		return res
	case *omap.Map[any, any]:
		res := make(map[any]any, x.Len())
		for k, v := range x.All() {
			res[k] = plain(v)
		}
		return res
	}
	return v
}
