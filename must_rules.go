package validate

// MustRule wraps an arbitrary predicate over the property value.
type MustRule[P any] struct {
	ruleBase
	fn func(P) bool
}

// Must builds a rule from a predicate. A failing predicate renders the
// generic "condition was not met" message unless overridden with WithMessage.
func Must[P any](fn func(P) bool) *MustRule[P] {
	return &MustRule[P]{fn: fn}
}

// WithMessage overrides the default message template for this rule.
func (r *MustRule[P]) WithMessage(template string) *MustRule[P] {
	r.message = template
	return r
}

func (r *MustRule[P]) Code() string { return "validation.must" }

func (r *MustRule[P]) Validate(ctx *Context, value P) bool {
	return r.fn(value)
}
