package salesform

import (
	"fmt"
	"regexp"
	"strings"
)

// Character set rules declared once; the pure helpers and the rule
// constructors both consult these, so the local checks and the endpoint
// contract cannot drift apart.
var (
	integerRegex       = regexp.MustCompile(`^-?[0-9]+$`)
	latinThaiNameRegex = regexp.MustCompile(`^[a-zA-Z\s\p{Thai}]+$`)
	latinNameRegex     = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// IsInteger reports whether value, after trimming surrounding whitespace, is
// a valid integer literal: an optional leading minus sign followed by one or
// more decimal digits. Empty strings, decimals, and alphabetic text are not
// integers.
func IsInteger(value string) bool {
	return integerRegex.MatchString(strings.TrimSpace(value))
}

// NamePolicy selects which character set a person's name may use. The legacy
// pages shipped two divergent rule sets; callers must pick one explicitly so
// the choice is visible at the call site.
type NamePolicy int

const (
	// PolicyLatinThai accepts Latin letters, Thai script, and whitespace.
	// This is the canonical policy: it is the more permissive of the two
	// legacy variants and supports the bilingual entry form.
	PolicyLatinThai NamePolicy = iota

	// PolicyLatin accepts Latin letters and whitespace only.
	PolicyLatin
)

// DefaultNamePolicy is used by callers that have no locale preference.
const DefaultNamePolicy = PolicyLatinThai

func (p NamePolicy) regex() *regexp.Regexp {
	if p == PolicyLatin {
		return latinNameRegex
	}
	return latinThaiNameRegex
}

func (p NamePolicy) charsetMessage() string {
	if p == PolicyLatin {
		return "Name may contain only English letters and spaces"
	}
	return "Name may contain only English or Thai letters and spaces"
}

// ValidateName checks a person's name against the given policy. It returns
// an empty string when the name is valid, a fixed "empty" message when the
// trimmed name is empty, and a fixed charset message when any character of
// the untrimmed input falls outside the policy's set.
func ValidateName(name string, policy NamePolicy) string {
	if strings.TrimSpace(name) == "" {
		return "Please enter a name"
	}
	if !policy.regex().MatchString(name) {
		return policy.charsetMessage()
	}
	return ""
}

// ValidateNumericField checks the raw text of one numeric field. fieldLabel
// is the display label used in the returned message. An empty string means
// the field is valid.
func ValidateNumericField(value, fieldLabel string) string {
	if strings.TrimSpace(value) == "" {
		return requiredMessage(fieldLabel)
	}
	if !IsInteger(value) {
		return integerMessage(fieldLabel)
	}
	return ""
}

func requiredMessage(label string) string {
	return "Please enter " + label
}

func integerMessage(label string) string {
	return label + " must be a whole number"
}

func rangeMessage(label string, b Bounds) string {
	return fmt.Sprintf("%s must be between %d and %d", label, b.Min, b.Max)
}
