// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHandle is the sentinel error wrapped by every GitHub handle
// validation error.
var ErrInvalidHandle = errors.New("invalid github handle")

// Rule-specific handle errors. Each wraps ErrInvalidHandle. Length is
// checked before the hyphen-position rules, which are checked before the
// character scan, so a string breaking several rules reports one
// deterministic error.
var (
	// ErrHandleTooLong is returned for handles longer than 39 characters.
	ErrHandleTooLong = fmt.Errorf("%w: longer than 39 characters", ErrInvalidHandle)
	// ErrHandleLeadingHyphen is returned for handles starting with '-'.
	ErrHandleLeadingHyphen = fmt.Errorf("%w: starts with '-'", ErrInvalidHandle)
	// ErrHandleTrailingHyphen is returned for handles ending with '-'.
	ErrHandleTrailingHyphen = fmt.Errorf("%w: ends with '-'", ErrInvalidHandle)
	// ErrHandleConsecutiveHyphens is returned for handles containing "--".
	ErrHandleConsecutiveHyphens = fmt.Errorf("%w: contains consecutive hyphens", ErrInvalidHandle)
)

type (
	// GitHubHandle is a validated GitHub user or organization handle: at
	// most 39 characters, ASCII alphanumerics separated by single hyphens,
	// neither starting nor ending with a hyphen. Instances are obtained
	// through ParseGitHubHandle or by parsing an author string.
	GitHubHandle struct {
		value string
	}

	// InvalidHandleCharError is returned when a handle contains a character
	// that is neither ASCII alphanumeric nor '-'.
	InvalidHandleCharError struct {
		Char rune
	}
)

// Error implements the error interface.
func (e *InvalidHandleCharError) Error() string {
	return fmt.Sprintf("invalid github handle: contains invalid character %q", e.Char)
}

// Unwrap returns ErrInvalidHandle so callers can use errors.Is for
// programmatic detection.
func (e *InvalidHandleCharError) Unwrap() error { return ErrInvalidHandle }

func isHandleAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

func validateGitHubHandle(s string) error {
	if len(s) > 39 {
		return ErrHandleTooLong
	}
	if strings.HasPrefix(s, "-") {
		return ErrHandleLeadingHyphen
	}
	if strings.HasSuffix(s, "-") {
		return ErrHandleTrailingHyphen
	}

	prevHyphen := false
	for _, r := range s {
		switch {
		case isHandleAlnum(r):
			prevHyphen = false
		case r == '-':
			if prevHyphen {
				return ErrHandleConsecutiveHyphens
			}
			prevHyphen = true
		default:
			return &InvalidHandleCharError{Char: r}
		}
	}

	return nil
}

// ParseGitHubHandle validates s as a GitHub handle.
func ParseGitHubHandle(s string) (GitHubHandle, error) {
	if err := validateGitHubHandle(s); err != nil {
		return GitHubHandle{}, err
	}
	return GitHubHandle{value: s}, nil
}

// String returns the handle text, without a leading '@'.
func (h GitHubHandle) String() string { return h.value }

// MarshalText implements encoding.TextMarshaler.
func (h GitHubHandle) MarshalText() ([]byte, error) { return []byte(h.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler, re-validating the text.
func (h *GitHubHandle) UnmarshalText(text []byte) error {
	parsed, err := ParseGitHubHandle(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
