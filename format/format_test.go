package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"text", TextFormat},
		{"t", TextFormat},
		{"yaml", YAMLFormat},
		{"y", YAMLFormat},
		{"json", JSONFormat},
		{"j", JSONFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if again, _ := ParseFormat(got.String()); again != got {
			t.Errorf("ParseFormat(%q) = %v", got, again)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(toml) error = %v", err)
	}
	if _, err := Format(9).MarshalText(); err == nil {
		t.Error("expected error marshaling Format(9)")
	}
	if !TextFormat.IsText() || JSONFormat.IsText() {
		t.Error("IsText")
	}
}
