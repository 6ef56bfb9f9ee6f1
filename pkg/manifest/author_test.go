// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"testing"
)

func TestParseAuthor_Valid(t *testing.T) {
	t.Parallel()

	t.Run("name only", func(t *testing.T) {
		t.Parallel()
		a, err := ParseAuthor("Martin")
		if err != nil {
			t.Fatal(err)
		}
		if a.Name != "Martin" || a.Contact != nil {
			t.Errorf("got %+v, want name Martin without contact", a)
		}
	})

	t.Run("github handle", func(t *testing.T) {
		t.Parallel()
		a, err := ParseAuthor("Martin <@reknih>")
		if err != nil {
			t.Fatal(err)
		}
		h, ok := a.Contact.(GitHubHandle)
		if !ok {
			t.Fatalf("contact is %T, want GitHubHandle", a.Contact)
		}
		if h.String() != "reknih" {
			t.Errorf("handle = %q, want %q (leading '@' stripped)", h.String(), "reknih")
		}
	})

	t.Run("website", func(t *testing.T) {
		t.Parallel()
		a, err := ParseAuthor("Martin <https://mha.ug>")
		if err != nil {
			t.Fatal(err)
		}
		w, ok := a.Contact.(Website)
		if !ok {
			t.Fatalf("contact is %T, want Website", a.Contact)
		}
		if w.String() != "https://mha.ug" {
			t.Errorf("website = %q", w.String())
		}
	})

	t.Run("email", func(t *testing.T) {
		t.Parallel()
		a, err := ParseAuthor("Martin <martin.haug@typst.app>")
		if err != nil {
			t.Fatal(err)
		}
		e, ok := a.Contact.(EmailAddress)
		if !ok {
			t.Fatalf("contact is %T, want EmailAddress", a.Contact)
		}
		if e.String() != "martin.haug@typst.app" {
			t.Errorf("email = %q", e.String())
		}
	})

	t.Run("name is trimmed", func(t *testing.T) {
		t.Parallel()
		a, err := ParseAuthor("  Martin   <@reknih>")
		if err != nil {
			t.Fatal(err)
		}
		if a.Name != "Martin" {
			t.Errorf("Name = %q, want %q", a.Name, "Martin")
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		a, err := ParseAuthor("<@reknih>")
		if err != nil {
			t.Fatal(err)
		}
		if a.Name != "" {
			t.Errorf("Name = %q, want empty", a.Name)
		}
	})
}

func TestParseAuthor_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty contact", "Martin <>", ErrEmptyContact},
		{"empty contact unclosed", "Martin <", ErrEmptyContact},
		{"unclosed contact", "Martin <martin@typst.app", ErrUnclosedContact},
		{"bad handle", "Martin <@ martin>", ErrInvalidHandle},
		{"bad website", "Martin <https://mä.ug>", ErrInvalidWebsite},
		{"bad email", "Martin <martin@>", ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseAuthor(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ParseAuthor(%q) = %v, want %v", tt.input, err, tt.want)
			}
			if !errors.Is(err, ErrInvalidAuthor) {
				t.Errorf("error should wrap ErrInvalidAuthor, got %v", err)
			}
		})
	}
}

func TestParseAuthor_ContactErrorsAreDistinguishable(t *testing.T) {
	t.Parallel()

	// Callers must be able to tell a bad handle from a bad email; the
	// sub-grammar error survives the author wrapping.
	_, err := ParseAuthor("Martin <@ martin>")
	var charErr *InvalidHandleCharError
	if !errors.As(err, &charErr) {
		t.Fatalf("want *InvalidHandleCharError through the author error, got %v", err)
	}
	if charErr.Char != ' ' {
		t.Errorf("Char = %q, want ' '", charErr.Char)
	}
}

func TestAuthor_StringRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Martin",
		"Martin <@reknih>",
		"Martin <https://mha.ug>",
		"Martin <martin.haug@typst.app>",
		"<@reknih>",
	}
	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			t.Parallel()
			a, err := ParseAuthor(s)
			if err != nil {
				t.Fatal(err)
			}
			if a.String() != s {
				t.Errorf("String() = %q, want %q", a.String(), s)
			}
			again, err := ParseAuthor(a.String())
			if err != nil {
				t.Fatalf("re-parsing own text failed: %v", err)
			}
			if again != a {
				t.Errorf("round-trip changed value: %+v != %+v", again, a)
			}
		})
	}
}
