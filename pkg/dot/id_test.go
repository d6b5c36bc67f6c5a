package dot

import (
	"testing"

	"github.com/mfelder/dotwalk/pkg/errors"
)

func TestNewIDBare(t *testing.T) {
	for _, name := range []string{"hello", "_x", "N0", "snake_case_123", "A"} {
		id, err := NewID(name)
		if err != nil {
			t.Errorf("NewID(%q) error = %v", name, err)
			continue
		}
		// Bare identifiers render identically to the input.
		if id.String() != name {
			t.Errorf("NewID(%q).String() = %q", name, id.String())
		}
		if id.Name() != name {
			t.Errorf("NewID(%q).Name() = %q", name, id.Name())
		}
	}
}

func TestNewIDQuoted(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"0start", `"0start"`},
		{"Weird { struct : ure } !!!", `"Weird { struct : ure } !!!"`},
		{"two words", `"two words"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak", `"line\nbreak"`},
		{"unicode-π", `"unicode-π"`},
	}
	for _, tt := range tests {
		id, err := NewID(tt.name)
		if err != nil {
			t.Errorf("NewID(%q) error = %v", tt.name, err)
			continue
		}
		if id.String() != tt.want {
			t.Errorf("NewID(%q).String() = %q, want %q", tt.name, id.String(), tt.want)
		}
	}
}

func TestNewIDInvalid(t *testing.T) {
	for _, name := range []string{"", "bell\x07", "nul\x00byte", "del\x7f", "return\rcarriage"} {
		_, err := NewID(name)
		if err == nil {
			t.Errorf("NewID(%q) should fail", name)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidID) {
			t.Errorf("NewID(%q) error code = %v, want INVALID_ID", name, errors.GetCode(err))
		}
	}
}

func TestNewIDf(t *testing.T) {
	id, err := NewIDf("N%d", 42)
	if err != nil {
		t.Fatalf("NewIDf() error = %v", err)
	}
	if id.String() != "N42" {
		t.Errorf("NewIDf() = %q, want N42", id.String())
	}
}

func TestMustIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustID(\"\") should panic")
		}
	}()
	MustID("")
}

func TestIDIsZero(t *testing.T) {
	if !(ID{}).IsZero() {
		t.Error("zero ID should report IsZero")
	}
	if MustID("x").IsZero() {
		t.Error("constructed ID should not report IsZero")
	}
}
