package domain

import "regexp"

// MaxCodeLength bounds every short code, generated or custom.
const MaxCodeLength = 10

var shortCodeRegex = regexp.MustCompile(`^[0-9a-zA-Z]+$`)

// ShortCode is a value object for a URL short code. It is immutable and
// validated on creation: non-empty, at most MaxCodeLength characters, and
// composed only of the base62 alphabet.
type ShortCode struct {
	value string
}

// NewShortCode creates a ShortCode from a string, validating the format.
func NewShortCode(code string) (ShortCode, error) {
	if err := validateShortCode(code); err != nil {
		return ShortCode{}, err
	}
	return ShortCode{value: code}, nil
}

// String returns the string representation of the ShortCode.
func (s ShortCode) String() string {
	return s.value
}

// IsEmpty returns true if the ShortCode is empty.
func (s ShortCode) IsEmpty() bool {
	return s.value == ""
}

// Equals compares two ShortCodes for equality.
func (s ShortCode) Equals(other ShortCode) bool {
	return s.value == other.value
}

func validateShortCode(code string) error {
	if code == "" || len(code) > MaxCodeLength {
		return ErrInvalidCode
	}
	if !shortCodeRegex.MatchString(code) {
		return ErrInvalidCode
	}
	return nil
}
