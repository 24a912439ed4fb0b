// Package validator provides a composable set of generic, type-safe validation
// helpers and rule-building utilities for strings and numbers.
//
// The package promotes declarative validation by letting you build small Rule
// values that encapsulate a boolean Check function together with rich,
// translation-friendly error metadata. Rules are evaluated with the Apply
// helper which aggregates any failures into a ValidationErrors slice that
// satisfies the error interface, making it convenient to bubble up multiple
// field-specific problems in a single error return.
//
// # Architecture
//
// Each source file groups a family of rules for a specific domain
// (`string_rules.go`, `numeric_rules.go`, `pattern_rules.go`). Every exported
// validation function simply constructs and returns a Rule instance; there is
// no hidden global state, therefore the package is completely stateless,
// allocation-light, and goroutine-safe.
//
// Core building blocks:
//   - Rule              – lightweight struct containing Check func and error meta
//   - ValidationError   – describes a single failure and supports i18n keys
//   - ValidationErrors  – slice type that implements the error interface
//   - Numeric interface – generic constraint used by numeric helpers
//
// Rules compose through two combinators: WithError swaps in domain-specific
// wording and translation keys, and When gates a rule on a precondition so
// chained rules for one field report a single message at a time.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("name", name),
//	    validator.BetweenNum("locks", locks, 1, 70),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages or translate them
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements the error interface, so you can use
// `errors.As` to detect validation problems while preserving rich details.
// Individual field errors can be inspected with the helper methods Has, Get,
// GetErrors, Messages, and Fields. Apply preserves rule order, which callers
// rely on when rendering flat error lists.
package validator
