// Package validate provides a generic, type-safe validation engine for struct
// values. Rules are registered per field on a Validator and evaluated against
// an instance, producing a Result that aggregates every failure with a
// rendered message, a stable error code, and the placeholder parameters used
// to build the message.
//
// # Architecture
//
// Each source file groups a family of rules for a specific concern
// (`comparison_rules.go`, `range_rules.go`, `string_rules.go`, etc.). Every
// exported rule constructor returns a small struct implementing the Rule
// interface; rule values are immutable after construction, therefore a fully
// configured Validator is stateless and safe for concurrent use.
//
// Core building blocks:
//   - Validator[T]      – holds the field rules registered for a struct type
//   - Rule[P]           – a single check over a property value
//   - PropertyRules     – per-field configuration handle (conditions, naming)
//   - FieldError(s)     – failure value(s) implementing the error interface
//
// # Usage
//
//	v := validate.New[Person]()
//	validate.RuleFor(v, "ID", func(p Person) int { return p.ID },
//		validate.InclusiveBetween(1, 10),
//	)
//	validate.RuleFor(v, "Surname", func(p Person) string { return p.Surname },
//		validate.NotEmpty(),
//		validate.NotEqual("Foo"),
//	)
//
//	res := v.Validate(person)
//	if !res.IsValid() {
//		for _, e := range res.Errors() {
//			// e.Field, e.Message, e.Code, e.Params
//		}
//	}
//
// # Messages
//
// Default messages are looked up by error code in a locale.Catalog and
// contain `{Placeholder}` tokens such as {PropertyName}, {ComparisonValue},
// {From} and {To}. Individual rules can override their template with
// WithMessage; overrides go through the same placeholder substitution.
// Placeholder values are formatted for the validator's language via
// golang.org/x/text.
//
// # Error Handling
//
// Validation failures are ordinary values, not errors in the control-flow
// sense: Result.Err returns a FieldErrors value implementing `error` for
// callers that want to bubble failures up, and AsFieldErrors recovers the
// structured form with errors.As. The single exception is rule
// misconfiguration (an inverted range bound), which panics at rule
// construction.
//
// # Concurrency
//
// Register all rules before the first Validate call. After that the Validator
// performs no mutation and may be shared freely across goroutines. The
// process-wide display-name resolver is guarded by a lock and may be swapped
// at runtime with SetDisplayNameResolver.
package validate
