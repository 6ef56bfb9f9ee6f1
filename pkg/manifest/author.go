// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAuthor is the sentinel error wrapped by every author parsing
// error, including wrapped contact grammar errors.
var ErrInvalidAuthor = errors.New("invalid author")

var (
	// ErrEmptyContact is returned when an author string contains no text
	// between '<' and '>'.
	ErrEmptyContact = fmt.Errorf("%w: no contact between '<' and '>'", ErrInvalidAuthor)
	// ErrUnclosedContact is returned when the '>' closing a contact is
	// missing.
	ErrUnclosedContact = fmt.Errorf("%w: missing '>'", ErrInvalidAuthor)
)

// Contact is the closed set of author contact forms: GitHubHandle, Website,
// or EmailAddress.
type Contact interface {
	fmt.Stringer
	isContact()
}

func (GitHubHandle) isContact() {}
func (Website) isContact()      {}
func (EmailAddress) isContact() {}

// Author is a package author: a name and an optional contact. A nil Contact
// means no contact was given.
type Author struct {
	Name    string
	Contact Contact
}

// ParseAuthor parses an author line of the form "Name <contact>". The name
// is the trimmed text before the first '<' and may be empty. The contact,
// if present, is classified by prefix: "@" means a GitHub handle (with the
// '@' stripped), "http" means a website, anything else an email address.
// Contact grammar failures surface the sub-grammar's specific error.
func ParseAuthor(s string) (Author, error) {
	name, rest, found := strings.Cut(s, "<")
	name = strings.TrimSpace(name)
	if !found {
		return Author{Name: name}, nil
	}

	body, _, closed := strings.Cut(rest, ">")
	if body == "" {
		return Author{}, ErrEmptyContact
	}
	if !closed {
		return Author{}, ErrUnclosedContact
	}

	var (
		contact Contact
		err     error
	)
	switch {
	case strings.HasPrefix(body, "@"):
		contact, err = ParseGitHubHandle(strings.TrimPrefix(body, "@"))
	case strings.HasPrefix(body, "http"):
		contact, err = ParseWebsite(body)
	default:
		contact, err = ParseEmail(body)
	}
	if err != nil {
		return Author{}, fmt.Errorf("%w: %w", ErrInvalidAuthor, err)
	}

	return Author{Name: name, Contact: contact}, nil
}

// String formats the author as "Name <contact>", restoring the '@' prefix
// for GitHub handles. Parsing the result yields an equal Author.
func (a Author) String() string {
	if a.Contact == nil {
		return a.Name
	}

	contact := a.Contact.String()
	if _, ok := a.Contact.(GitHubHandle); ok {
		contact = "@" + contact
	}

	if a.Name == "" {
		return "<" + contact + ">"
	}
	return a.Name + " <" + contact + ">"
}

// MarshalText implements encoding.TextMarshaler.
func (a Author) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Author) UnmarshalText(text []byte) error {
	parsed, err := ParseAuthor(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
