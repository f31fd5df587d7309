// Package validate holds the display-name rules shared by the server
// handlers and the client façade. Both sides must apply identical rules
// so a name accepted locally is accepted by the server.
package validate

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxDisplayNameLength is measured in runes after normalization and
// stripping.
const MaxDisplayNameLength = 100

var (
	// ErrEmptyName rejects names that are empty after trimming.
	ErrEmptyName = errors.New("display name must not be empty")
	// ErrNoValidCharacters rejects names left empty once control and
	// zero-width characters are stripped.
	ErrNoValidCharacters = errors.New("display name must contain valid characters")
	// ErrTooLong rejects names longer than MaxDisplayNameLength.
	ErrTooLong = errors.New("display name must be 100 characters or fewer")
)

// IsValidationError reports whether err is one of the display-name
// rejection reasons.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrNoValidCharacters) ||
		errors.Is(err, ErrTooLong)
}

// strippedRune matches the Cc/Cf ranges removed from display names:
// C0/C1 controls, soft hyphen, Arabic letter mark, Mongolian vowel
// separator, zero-width and bidi controls, word joiner and invisible
// operators, BOM, and interlinear annotation marks.
func strippedRune(r rune) bool {
	switch {
	case r <= 0x001F:
	case r >= 0x007F && r <= 0x009F:
	case r == 0x00AD:
	case r == 0x061C:
	case r == 0x180E:
	case r >= 0x200B && r <= 0x200F:
	case r >= 0x202A && r <= 0x202E:
	case r >= 0x2060 && r <= 0x206F:
	case r == 0xFEFF:
	case r >= 0xFFF9 && r <= 0xFFFB:
	default:
		return false
	}
	return true
}

// DisplayName trims, NFC-normalizes, and strips control characters from
// a user-supplied display name, returning the storable value or the
// reason it cannot be stored. Deterministic and side-effect free.
func DisplayName(input string) (string, error) {
	name := strings.TrimSpace(input)
	name = norm.NFC.String(name)
	if name == "" {
		return "", ErrEmptyName
	}

	cleaned := strings.Map(func(r rune) rune {
		if strippedRune(r) {
			return -1
		}
		return r
	}, name)
	if cleaned == "" {
		return "", ErrNoValidCharacters
	}
	if utf8.RuneCountInString(cleaned) > MaxDisplayNameLength {
		return "", ErrTooLong
	}

	return cleaned, nil
}
