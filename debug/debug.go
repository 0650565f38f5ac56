package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Reset  bool
	Export bool
	Update bool
	Patch  bool
	Eval   bool
	Schema bool
}

var d *debug

func init() {
	load()
}

func load() {
	d = &debug{}
	all := boolEnv("RECORDKIT_DEBUG")
	d.Reset = all || boolEnv("RECORDKIT_DEBUG_RESET")
	d.Export = all || boolEnv("RECORDKIT_DEBUG_EXPORT")
	d.Update = all || boolEnv("RECORDKIT_DEBUG_UPDATE")
	d.Patch = all || boolEnv("RECORDKIT_DEBUG_PATCH")
	d.Eval = all || boolEnv("RECORDKIT_DEBUG_EVAL")
	d.Schema = all || boolEnv("RECORDKIT_DEBUG_SCHEMA")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Reset() bool {
	return d.Reset
}
func Export() bool {
	return d.Export
}
func Update() bool {
	return d.Update
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func Schema() bool {
	return d.Schema
}
