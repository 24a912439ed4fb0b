package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchesRegex validates against a precompiled pattern. Empty and
// whitespace-only values never match; gate with When for optional fields.
func MatchesRegex(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}
