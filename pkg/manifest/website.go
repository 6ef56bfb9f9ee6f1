// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
)

// ErrInvalidWebsite is the sentinel error wrapped by InvalidWebsiteByteError.
var ErrInvalidWebsite = errors.New("invalid website")

// websiteAllowedPunct is the punctuation allowed in a website besides ASCII
// alphanumerics. This is a character-class gate, not a URL parser.
const websiteAllowedPunct = "-_.~:/?#[]@!$&'()*+,;="

type (
	// Website is a validated website string: every byte is ASCII
	// alphanumeric or one of a fixed punctuation allow-list. Instances are
	// obtained through ParseWebsite or by decoding a manifest.
	Website struct {
		value string
	}

	// InvalidWebsiteByteError is returned when a website string contains a
	// byte outside the allowed character class.
	InvalidWebsiteByteError struct {
		Value string
		Byte  byte
	}
)

// Error implements the error interface.
func (e *InvalidWebsiteByteError) Error() string {
	return fmt.Sprintf("invalid website %q: contains invalid byte %q", e.Value, e.Byte)
}

// Unwrap returns ErrInvalidWebsite so callers can use errors.Is for
// programmatic detection.
func (e *InvalidWebsiteByteError) Unwrap() error { return ErrInvalidWebsite }

func isWebsiteByte(b byte) bool {
	if b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' {
		return true
	}
	for i := 0; i < len(websiteAllowedPunct); i++ {
		if websiteAllowedPunct[i] == b {
			return true
		}
	}
	return false
}

func validateWebsite(s string) error {
	for i := 0; i < len(s); i++ {
		if !isWebsiteByte(s[i]) {
			return &InvalidWebsiteByteError{Value: s, Byte: s[i]}
		}
	}
	return nil
}

// ParseWebsite validates s as a website string.
func ParseWebsite(s string) (Website, error) {
	if err := validateWebsite(s); err != nil {
		return Website{}, err
	}
	return Website{value: s}, nil
}

// String returns the website text.
func (w Website) String() string { return w.value }

// MarshalText implements encoding.TextMarshaler.
func (w Website) MarshalText() ([]byte, error) { return []byte(w.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler, re-validating the text.
func (w *Website) UnmarshalText(text []byte) error {
	parsed, err := ParseWebsite(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
