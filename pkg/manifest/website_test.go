// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"testing"
)

func TestParseWebsite(t *testing.T) {
	t.Parallel()

	valid := []string{
		"https://mha.ug",
		"https://github.com/tingerrr/hydra",
		"http://example.com/a?b=c#d",
		"gemini://example.org",
	}
	for _, s := range valid {
		t.Run("valid/"+s, func(t *testing.T) {
			t.Parallel()
			w, err := ParseWebsite(s)
			if err != nil {
				t.Fatalf("ParseWebsite(%q) error: %v", s, err)
			}
			if w.String() != s {
				t.Errorf("String() = %q, want %q (no normalization)", w.String(), s)
			}
		})
	}

	invalid := []struct {
		input string
		b     byte
	}{
		{"http://mha ug", ' '},
		{"http://mh\"a.ug", '"'},
		{"https://mä.ug", 0xc3},
	}
	for _, tt := range invalid {
		t.Run("invalid/"+tt.input, func(t *testing.T) {
			t.Parallel()
			_, err := ParseWebsite(tt.input)
			if !errors.Is(err, ErrInvalidWebsite) {
				t.Fatalf("ParseWebsite(%q) = %v, want ErrInvalidWebsite", tt.input, err)
			}
			var byteErr *InvalidWebsiteByteError
			if !errors.As(err, &byteErr) {
				t.Fatalf("error should be *InvalidWebsiteByteError, got %T", err)
			}
			if byteErr.Byte != tt.b {
				t.Errorf("Byte = %#x, want %#x", byteErr.Byte, tt.b)
			}
		})
	}
}
