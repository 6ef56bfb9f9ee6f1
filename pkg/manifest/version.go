// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidVersion is the sentinel error wrapped by InvalidVersionError.
var ErrInvalidVersion = errors.New("invalid version")

type (
	// Version is a full semantic version of the form major.minor.patch.
	// Text decoding is strict: partial versions such as "0.1" and a
	// leading 'v' are rejected rather than coerced.
	Version struct {
		semver.Version
	}

	// InvalidVersionError is returned when a string is not a full
	// semantic version.
	InvalidVersionError struct {
		Value string
		Err   error
	}
)

// Error implements the error interface.
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %q: %v", e.Value, e.Err)
}

// Unwrap returns ErrInvalidVersion so callers can use errors.Is for
// programmatic detection.
func (e *InvalidVersionError) Unwrap() error { return ErrInvalidVersion }

// ParseVersion validates s as a full semantic version.
func ParseVersion(s string) (Version, error) {
	parsed, err := semver.StrictNewVersion(s)
	if err != nil {
		return Version{}, &InvalidVersionError{Value: s, Err: err}
	}
	return Version{Version: *parsed}, nil
}

// MustVersion is like ParseVersion but panics on error. Use only for
// version literals known to be valid.
func MustVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. It shadows the
// lenient decoding of the embedded semver type with the strict grammar.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
