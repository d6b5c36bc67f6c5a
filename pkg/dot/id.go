package dot

import (
	"fmt"
	"strings"

	"github.com/mfelder/dotwalk/pkg/errors"
)

// ID is a validated Graphviz identifier.
//
// An ID is constructed with [NewID] and is guaranteed to be emittable without
// further checks: names matching the bare DOT identifier grammar
// ([A-Za-z_][A-Za-z0-9_]*) are emitted verbatim, anything else is emitted as
// a double-quoted string with escaping applied once at construction time.
type ID struct {
	name string // the raw name as given by the caller
	dot  string // DOT-ready form, bare or quoted
}

// NewID validates name and returns it as an ID.
//
// The name must be non-empty. Names made up of ASCII letters, digits and
// underscores (not starting with a digit) are kept bare. Every other name is
// accepted in quoted form as long as it contains no control characters other
// than newline and tab; quote, backslash and newline are escaped per the
// package escaping table. Carriage returns are rejected like any other
// control character (the escaping table's \r case serves label text, not
// identifiers). Unrepresentable names return an INVALID_ID error.
func NewID(name string) (ID, error) {
	if name == "" {
		return ID{}, errors.New(errors.ErrCodeInvalidID, "empty identifier")
	}
	if isBareID(name) {
		return ID{name: name, dot: name}, nil
	}
	for _, r := range name {
		if (r < 0x20 && r != '\n' && r != '\t') || r == 0x7f {
			return ID{}, errors.New(errors.ErrCodeInvalidID, "identifier %q contains control character %q", name, r)
		}
	}
	return ID{name: name, dot: `"` + escapeString(name) + `"`}, nil
}

// NewIDf validates the formatted name, printf-style.
// Shorthand for NewID(fmt.Sprintf(format, args...)).
func NewIDf(format string, args ...any) (ID, error) {
	return NewID(fmt.Sprintf(format, args...))
}

// MustID returns the ID for name and panics if name is not representable.
// Intended for identifiers known valid at compile time.
func MustID(name string) ID {
	id, err := NewID(name)
	if err != nil {
		panic(err)
	}
	return id
}

// Name returns the raw name the ID was constructed from.
func (id ID) Name() string {
	return id.name
}

// String returns the DOT-ready form: the bare name when it satisfies the
// identifier grammar, a quoted string otherwise.
func (id ID) String() string {
	return id.dot
}

// IsZero reports whether the ID is the zero value (never produced by NewID).
func (id ID) IsZero() bool {
	return id.dot == ""
}

// isBareID reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func isBareID(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return s != ""
}

// escapeString applies the fixed escaping table for quoted DOT strings:
// backslash, double quote, newline, carriage return and tab.
func escapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
