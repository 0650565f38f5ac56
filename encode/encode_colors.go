package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/recordkit/container"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[container.Token]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[container.Token]func(string, ...any) string{
			container.TypeToken:  color.RGB(74, 92, 138).SprintfFunc(),
			container.FieldToken: color.RGB(128, 168, 196).SprintfFunc(),
			container.KeyToken:   color.RGB(196, 96, 16).SprintfFunc(),
			container.ValueToken: color.RGB(8, 196, 16).SprintfFunc(),
			container.UnitToken:  color.BlueString,
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// Color paints s as a token of kind t. It is a container.Paint.
func (c *Colors) Color(t container.Token, s string) string {
	return c.Get(t)(s)
}

func (c *Colors) Get(t container.Token) func(string, ...any) string {
	f := c.Map[t]
	if f == nil {
		return c.Default
	}
	return f
}
