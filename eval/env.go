package eval

import (
	"github.com/signadot/recordkit/container"
	"github.com/signadot/recordkit/omap"
)

// Env holds the variables of an evaluation.
type Env map[string]any

// NewEnv exports rec recursively into plain Go maps.
func NewEnv(rec *container.Record) (Env, error) {
	m, err := rec.AsMapping(container.Recursive(true))
	if err != nil {
		return nil, err
	}
	env := Env(plain(m).(map[string]any))
	if _, ok := env["flat"]; !ok {
		env["flat"] = func() (map[string]any, error) {
			f, err := rec.AsMapping(container.Recursive(true), container.Flatten(true))
			if err != nil {
				return nil, err
			}
			return f.ToMap(), nil
		}
	}
	if _, ok := env["typename"]; !ok {
		name := rec.Type().Name()
		env["typename"] = func() string { return name }
	}
	return env, nil
}

func plain(v any) any {
	switch m := v.(type) {
	case *omap.Map[string, any]:
		res := make(map[string]any, m.Len())
		for k, v := range m.All() {
			res[k] = plain(v)
		}
		return res
	case *omap.Map[any, any]:
		res := make(map[any]any, m.Len())
		for k, v := range m.All() {
			res[k] = plain(v)
		}
		return res
	}
	return v
}
