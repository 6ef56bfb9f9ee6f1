// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidIdent is the sentinel error wrapped by InvalidIdentError.
var ErrInvalidIdent = errors.New("invalid identifier")

type (
	// Ident is a validated package identifier. The first character is an
	// identifier-start codepoint or '_', every following character is an
	// identifier-continuation codepoint, '_', or '-'. The zero value is the
	// empty identifier and never validates; instances are obtained through
	// ParseIdent or by decoding a manifest.
	Ident struct {
		value string
	}

	// InvalidIdentError is returned when a string does not satisfy the
	// identifier grammar.
	InvalidIdentError struct {
		Value string
	}
)

// Error implements the error interface.
func (e *InvalidIdentError) Error() string {
	return fmt.Sprintf("invalid identifier %q: contains invalid character", e.Value)
}

// Unwrap returns ErrInvalidIdent so callers can use errors.Is for
// programmatic detection.
func (e *InvalidIdentError) Unwrap() error { return ErrInvalidIdent }

// isIdentStart reports whether r may start an identifier. The classes match
// Unicode XID_Start plus '_'.
func isIdentStart(r rune) bool {
	if r == '_' {
		return true
	}
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start) &&
		!unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

// isIdentContinue reports whether r may continue an identifier. The classes
// match Unicode XID_Continue plus '_' and '-'.
func isIdentContinue(r rune) bool {
	if r == '_' || r == '-' {
		return true
	}
	return unicode.In(r,
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue,
	) && !unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

func validateIdent(s string) error {
	first := true
	for _, r := range s {
		if first {
			if !isIdentStart(r) {
				return &InvalidIdentError{Value: s}
			}
			first = false
			continue
		}
		if !isIdentContinue(r) {
			return &InvalidIdentError{Value: s}
		}
	}
	if first {
		// empty string
		return &InvalidIdentError{Value: s}
	}
	return nil
}

// ParseIdent validates s as a package identifier.
func ParseIdent(s string) (Ident, error) {
	if err := validateIdent(s); err != nil {
		return Ident{}, err
	}
	return Ident{value: s}, nil
}

// String returns the identifier text.
func (i Ident) String() string { return i.value }

// MarshalText implements encoding.TextMarshaler.
func (i Ident) MarshalText() ([]byte, error) { return []byte(i.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler, re-validating the text.
func (i *Ident) UnmarshalText(text []byte) error {
	parsed, err := ParseIdent(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
