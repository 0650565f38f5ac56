package debug

import (
	"bytes"
	"testing"
)

func TestEnvToggles(t *testing.T) {
	t.Setenv("RECORDKIT_DEBUG_RESET", "true")
	t.Setenv("RECORDKIT_DEBUG_EXPORT", "nope")
	load()
	defer load()

	if !Reset() {
		t.Error("Reset() = false with RECORDKIT_DEBUG_RESET=true")
	}
	if Export() {
		t.Error("Export() = true with unparsable value")
	}
	if Patch() {
		t.Error("Patch() = true when unset")
	}
}

func TestAllToggle(t *testing.T) {
	t.Setenv("RECORDKIT_DEBUG", "1")
	load()
	defer load()
	if !(Reset() && Export() && Update() && Patch() && Eval() && Schema()) {
		t.Error("RECORDKIT_DEBUG=1 should enable every toggle")
	}
}

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prev := SetOutput(buf)
	defer SetOutput(prev)

	Logf("reset %s %v\n", "ev", map[string]any{"a": 1})
	want := "reset ev {\n   |  \"a\": 1\n   |}\n"
	if buf.String() != want {
		t.Errorf("Logf wrote %q, want %q", buf.String(), want)
	}
}
