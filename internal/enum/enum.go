// Package enum implements closed-name enumeration lookup.
//
// Every enumerated parameter (edge mode, blend mode, swizzle selector, ...) is
// a small integer type with a fixed name table. Names coming from a host are
// normalised before lookup: surrounding space is trimmed, letters are
// upper-cased and '-' or ' ' become '_'. An unknown name is an error, never a
// silent default.
package enum

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownName is returned when a name is not part of an enumeration.
var ErrUnknownName = errors.New("enum: unknown name")

var upper = cases.Upper(language.Und)

// Normalize canonicalises a host-supplied enumeration name.
func Normalize(name string) string {
	name = upper.String(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return '_'
		}
		return r
	}, name)
}

// Parse looks name up in names, where names[i] is the canonical name of
// the value T(i). kind is used in the error message only.
func Parse[T ~uint8](kind string, names []string, name string) (T, error) {
	key := Normalize(name)
	for i, n := range names {
		if n == key {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, kind, name)
}

// Name returns names[v], or "Unknown" when v is out of range.
func Name[T ~uint8](names []string, v T) string {
	if int(v) >= len(names) {
		return "Unknown"
	}
	return names[v]
}

// Valid reports whether v indexes names.
func Valid[T ~uint8](names []string, v T) bool {
	return int(v) < len(names)
}
