package salesform

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/salesdesk/pkg/validator"
)

// Rule constructors adapt the generic validator constructors to the sales
// form contract: domain wording, translation keys, and one message per field
// at a time. Later rules for a field are gated with When so they pass
// vacuously while an earlier one fails, matching the pure helpers.

// NameRules validates a person's name under the given policy.
func NameRules(field, value string, policy NamePolicy) []validator.Rule {
	trimmed := strings.TrimSpace(value)

	return []validator.Rule{
		validator.RequiredString(field, value).WithError(validator.ValidationError{
			Field:          field,
			Message:        "Please enter a name",
			TranslationKey: "salesform.name_required",
			TranslationValues: map[string]any{
				"field": field,
			},
		}),
		validator.MatchesRegex(field, value, policy.regex(), "name").
			When(trimmed != "").
			WithError(validator.ValidationError{
				Field:          field,
				Message:        policy.charsetMessage(),
				TranslationKey: charsetTranslationKey(policy),
				TranslationValues: map[string]any{
					"field": field,
				},
			}),
	}
}

func charsetTranslationKey(policy NamePolicy) string {
	if policy == PolicyLatin {
		return "salesform.name_charset_latin"
	}
	return "salesform.name_charset"
}

// CountRules validates the raw text of one numeric sales field against its
// bounds: the field must be present, an integer literal, and in range.
func CountRules(field, label, value string, bounds Bounds) []validator.Rule {
	trimmed := strings.TrimSpace(value)
	isInt := IsInteger(value)

	n := 0
	if isInt {
		// A literal too large for int stays 0 and fails the bounds check.
		if parsed, err := strconv.Atoi(trimmed); err == nil {
			n = parsed
		}
	}

	return []validator.Rule{
		validator.RequiredString(field, value).WithError(validator.ValidationError{
			Field:          field,
			Message:        requiredMessage(label),
			TranslationKey: "salesform.required",
			TranslationValues: map[string]any{
				"field": label,
			},
		}),
		validator.MatchesRegex(field, trimmed, integerRegex, "integer").
			When(trimmed != "").
			WithError(validator.ValidationError{
				Field:          field,
				Message:        integerMessage(label),
				TranslationKey: "salesform.integer",
				TranslationValues: map[string]any{
					"field": label,
				},
			}),
		validator.BetweenNum(field, n, bounds.Min, bounds.Max).
			When(isInt).
			WithError(validator.ValidationError{
				Field:          field,
				Message:        rangeMessage(label, bounds),
				TranslationKey: "salesform.range",
				TranslationValues: map[string]any{
					"field": label,
					"min":   bounds.Min,
					"max":   bounds.Max,
				},
			}),
	}
}
