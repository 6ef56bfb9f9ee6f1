// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/github/go-spdx/v2/spdxexp"
)

// ErrInvalidLicense is the sentinel error wrapped by every license
// validation error.
var ErrInvalidLicense = errors.New("invalid license")

var (
	// ErrLicenseReferencer is returned when an expression contains a bare
	// LicenseRef/DocumentRef referencer instead of a concrete license id.
	ErrLicenseReferencer = fmt.Errorf("%w: must not contain referencer", ErrInvalidLicense)
	// ErrLicenseNotOSIApproved is returned when an expression references a
	// license that is not OSI-approved.
	ErrLicenseNotOSIApproved = fmt.Errorf("%w: must be OSI-approved", ErrInvalidLicense)
)

type (
	// License is a validated SPDX license expression. Beyond being
	// syntactically well-formed, every requirement of the expression
	// resolves to a concrete, OSI-approved license id. Instances are
	// obtained through ParseLicense or by decoding a manifest.
	License struct {
		expr string
		ids  []string
	}

	// LicenseExpressionError is returned when an expression cannot be
	// parsed as SPDX at all. Err carries the parser diagnostic.
	LicenseExpressionError struct {
		Value string
		Err   error
	}

	// LicenseReferencerError is returned for expressions containing a
	// referencer requirement.
	LicenseReferencerError struct {
		ID string
	}

	// LicenseNotOSIApprovedError is returned for expressions referencing a
	// license that is not OSI-approved.
	LicenseNotOSIApprovedError struct {
		ID string
	}
)

// Error implements the error interface.
func (e *LicenseExpressionError) Error() string {
	return fmt.Sprintf("invalid license expression %q: %v", e.Value, e.Err)
}

// Unwrap returns ErrInvalidLicense so callers can use errors.Is for
// programmatic detection.
func (e *LicenseExpressionError) Unwrap() error { return ErrInvalidLicense }

// Error implements the error interface.
func (e *LicenseReferencerError) Error() string {
	return fmt.Sprintf("license expression must not contain referencer, got %q", e.ID)
}

// Unwrap returns ErrLicenseReferencer.
func (e *LicenseReferencerError) Unwrap() error { return ErrLicenseReferencer }

// Error implements the error interface.
func (e *LicenseNotOSIApprovedError) Error() string {
	return fmt.Sprintf("license %q is not OSI-approved", e.ID)
}

// Unwrap returns ErrLicenseNotOSIApproved.
func (e *LicenseNotOSIApprovedError) Unwrap() error { return ErrLicenseNotOSIApproved }

func isReferencer(id string) bool {
	return strings.HasPrefix(id, "LicenseRef-") || strings.HasPrefix(id, "DocumentRef-")
}

// ParseLicense validates s as an SPDX license expression in which every
// requirement is a concrete, OSI-approved license id. Expression parsing is
// delegated to spdxexp; the policy checks run over all extracted ids in the
// library's enumeration order, and the first failing id determines the
// error.
func ParseLicense(s string) (License, error) {
	ids, err := spdxexp.ExtractLicenses(s)
	if err != nil {
		return License{}, &LicenseExpressionError{Value: s, Err: err}
	}

	for _, id := range ids {
		if isReferencer(id) {
			return License{}, &LicenseReferencerError{ID: id}
		}
		if !osiApproved[strings.TrimSuffix(id, "+")] {
			return License{}, &LicenseNotOSIApprovedError{ID: id}
		}
	}

	return License{expr: s, ids: ids}, nil
}

// String returns the expression text as given.
func (l License) String() string { return l.expr }

// Licenses returns the concrete license ids referenced by the expression,
// in the order they were extracted.
func (l License) Licenses() []string {
	ids := make([]string, len(l.ids))
	copy(ids, l.ids)
	return ids
}

// MarshalText implements encoding.TextMarshaler.
func (l License) MarshalText() ([]byte, error) { return []byte(l.expr), nil }

// UnmarshalText implements encoding.TextUnmarshaler, re-validating the text.
func (l *License) UnmarshalText(text []byte) error {
	parsed, err := ParseLicense(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
