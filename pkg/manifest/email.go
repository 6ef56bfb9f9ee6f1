// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
	"net/mail"
)

// ErrInvalidEmail is the sentinel error wrapped by InvalidEmailError.
var ErrInvalidEmail = errors.New("invalid email address")

type (
	// EmailAddress is a validated RFC 5322 address without a display name.
	// Validation is delegated to net/mail; the stored text is the input
	// verbatim, not a normalized form. Instances are obtained through
	// ParseEmail or by parsing an author string.
	EmailAddress struct {
		value string
	}

	// InvalidEmailError is returned when a string is not a bare RFC 5322
	// address. Err carries the underlying parser diagnostic, if any.
	InvalidEmailError struct {
		Value string
		Err   error
	}
)

// Error implements the error interface.
func (e *InvalidEmailError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid email address %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid email address %q", e.Value)
}

// Unwrap returns ErrInvalidEmail so callers can use errors.Is for
// programmatic detection.
func (e *InvalidEmailError) Unwrap() error { return ErrInvalidEmail }

// ParseEmail validates s as a bare email address (an addr-spec, no display
// name and no angle brackets).
func ParseEmail(s string) (EmailAddress, error) {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return EmailAddress{}, &InvalidEmailError{Value: s, Err: err}
	}
	// net/mail also accepts "Name <addr>" forms; only the bare address is a
	// valid contact.
	if addr.Name != "" || addr.Address != s {
		return EmailAddress{}, &InvalidEmailError{Value: s}
	}
	return EmailAddress{value: s}, nil
}

// String returns the address text.
func (e EmailAddress) String() string { return e.value }

// MarshalText implements encoding.TextMarshaler.
func (e EmailAddress) MarshalText() ([]byte, error) { return []byte(e.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler, re-validating the text.
func (e *EmailAddress) UnmarshalText(text []byte) error {
	parsed, err := ParseEmail(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
