// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"testing"
)

func TestParseVersion_Valid(t *testing.T) {
	t.Parallel()

	valid := []string{
		"0.1.0",
		"1.2.3",
		"1.0.0-beta.1",
		"1.0.0+build.5",
	}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			t.Parallel()
			v, err := ParseVersion(s)
			if err != nil {
				t.Fatalf("ParseVersion(%q) error: %v", s, err)
			}
			if v.String() != s {
				t.Errorf("String() = %q, want %q", v.String(), s)
			}
		})
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	t.Parallel()

	// Partial versions and a leading 'v' must be rejected, never coerced.
	invalid := []string{
		"",
		"0.1",
		"1",
		"v1.0.0",
		"1.0.0.0",
	}
	for _, s := range invalid {
		t.Run(s, func(t *testing.T) {
			t.Parallel()
			_, err := ParseVersion(s)
			if err == nil {
				t.Fatalf("ParseVersion(%q) succeeded, want error", s)
			}
			if !errors.Is(err, ErrInvalidVersion) {
				t.Errorf("error should wrap ErrInvalidVersion, got: %v", err)
			}
			var verErr *InvalidVersionError
			if !errors.As(err, &verErr) {
				t.Errorf("error should be *InvalidVersionError, got: %T", err)
			} else if verErr.Value != s {
				t.Errorf("Value = %q, want %q", verErr.Value, s)
			}
		})
	}
}

func TestVersion_TextRoundTrip(t *testing.T) {
	t.Parallel()

	v := MustVersion("0.11.1")
	text, err := v.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error: %v", err)
	}

	var again Version
	if err := again.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error: %v", err)
	}
	if again.String() != v.String() {
		t.Errorf("round-trip changed value: %q != %q", again.String(), v.String())
	}
}

func TestVersion_UnmarshalTextStrict(t *testing.T) {
	t.Parallel()

	var v Version
	err := v.UnmarshalText([]byte("0.1"))
	if !errors.Is(err, ErrInvalidVersion) {
		t.Fatalf("want ErrInvalidVersion, got %v", err)
	}
}
