package password

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MinLength is the minimum number of characters (code points) a password must have.
	MinLength = 8

	// SpecialCharacters lists every character that satisfies the special character rule.
	SpecialCharacters = "`~!@#$%^&*()_+-={}|[]\\;:'\"<>?,./"
)

// Status is the outcome of checking a password against the policy.
type Status uint8

// Statuses in priority order. The zero value is reserved so an unset Status is never
// mistaken for a real outcome.
const (
	statusUnknown Status = iota
	TooShort
	NoLowercase
	NoUppercase
	NoDigit
	NoSpecialChar
	Valid
)

var statusNames = [...]string{
	statusUnknown: "Unknown",
	TooShort:      "TooShort",
	NoLowercase:   "NoLowercase",
	NoUppercase:   "NoUppercase",
	NoDigit:       "NoDigit",
	NoSpecialChar: "NoSpecialChar",
	Valid:         "Valid",
}

// Statuses returns every status in the order they are evaluated.
func Statuses() []Status {
	return []Status{TooShort, NoLowercase, NoUppercase, NoDigit, NoSpecialChar, Valid}
}

// IsValid reports whether the password satisfied every rule.
func (s Status) IsValid() bool {
	return s == Valid
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// MarshalText renders the status by name.
func (s Status) MarshalText() ([]byte, error) {
	if s == statusUnknown || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("invalid password status %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText parses a status name produced by MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStatus returns the status with the given name. Matching is case-insensitive.
func ParseStatus(name string) (Status, error) {
	for _, s := range Statuses() {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return statusUnknown, fmt.Errorf("unknown password status %q", name)
}

// FieldValidator classifies a single user-supplied field.
type FieldValidator[T any] interface {
	Validate(input string) T
}

// Validator is the FieldValidator for passwords.
type Validator struct{}

var _ FieldValidator[Status] = Validator{}

func (Validator) Validate(input string) Status {
	return Validate(input)
}

// IsSpecial reports whether r is one of SpecialCharacters.
func IsSpecial(r rune) bool {
	return r < utf8.RuneSelf && strings.ContainsRune(SpecialCharacters, r)
}

// Validate checks input against the password policy and returns the first rule it
// breaks. Length is checked first and short-circuits the rest; the character classes
// are then reported in the order lowercase, uppercase, digit, special.
func Validate(input string) Status {
	if utf8.RuneCountInString(input) < MinLength {
		return TooShort
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range input {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case IsSpecial(r):
			hasSpecial = true
		}
		if hasLower && hasUpper && hasDigit && hasSpecial {
			break
		}
	}

	switch {
	case !hasLower:
		return NoLowercase
	case !hasUpper:
		return NoUppercase
	case !hasDigit:
		return NoDigit
	case !hasSpecial:
		return NoSpecialChar
	}
	return Valid
}
