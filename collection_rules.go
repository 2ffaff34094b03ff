package validate

type countKind int

const (
	countMin countKind = iota
	countMax
	countExact
)

// CountRule checks the number of elements of a slice field. The element type
// must be named explicitly at the call site, e.g. MinItems[Order](1).
type CountRule[E any] struct {
	ruleBase
	n    int
	kind countKind
}

// MinItems builds a rule requiring at least n elements.
func MinItems[E any](n int) *CountRule[E] {
	return &CountRule[E]{n: n, kind: countMin}
}

// MaxItems builds a rule allowing at most n elements.
func MaxItems[E any](n int) *CountRule[E] {
	return &CountRule[E]{n: n, kind: countMax}
}

// ExactItems builds a rule requiring exactly n elements.
func ExactItems[E any](n int) *CountRule[E] {
	return &CountRule[E]{n: n, kind: countExact}
}

// WithMessage overrides the default message template for this rule.
func (r *CountRule[E]) WithMessage(template string) *CountRule[E] {
	r.message = template
	return r
}

func (r *CountRule[E]) Code() string {
	switch r.kind {
	case countMin:
		return "validation.min_items"
	case countMax:
		return "validation.max_items"
	default:
		return "validation.exact_items"
	}
}

func (r *CountRule[E]) Validate(ctx *Context, value []E) bool {
	n := len(value)
	switch r.kind {
	case countMin:
		ctx.SetParam("Min", r.n)
		return n >= r.n
	case countMax:
		ctx.SetParam("Max", r.n)
		return n <= r.n
	default:
		ctx.SetParam("Count", r.n)
		return n == r.n
	}
}
