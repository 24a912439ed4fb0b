// Package salesform validates the four inputs of a sales entry form: an
// employee name and the locks, stocks, and barrels counts.
//
// The package has two layers over a single declaration of the field rules:
//
//   - Pure helpers (IsInteger, ValidateName, ValidateNumericField,
//     ValidateInputRanges) that return plain message strings. An empty string
//     or nil slice signals a valid input. These mirror the checks a browser
//     client runs before submitting, so both sides agree on what is valid.
//   - Rule constructors (NameRules, CountRules) that wrap the same checks in
//     validator.Rule values with translation keys, for aggregation with
//     validator.Apply in HTTP handlers.
//
// The inclusive per-field bounds (locks 1–70, stocks 1–80, barrels 1–90)
// live in LockBounds, StockBounds, and BarrelBounds. They are exported so no
// caller ever re-declares the numbers.
//
// Name validation requires an explicit NamePolicy. The legacy entry pages
// disagreed on whether Thai script is allowed in names; PolicyLatinThai is
// the canonical choice and PolicyLatin remains for the English-only form.
//
// All functions are pure: no I/O, no shared state, safe for concurrent use,
// and every failure is an ordinary return value.
package salesform
