package validate

import (
	"cmp"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparer reports whether two values should be treated as equal. It replaces
// the == comparison of the equality rules.
type Comparer[P any] func(a, b P) bool

// CaseInsensitive compares strings with simple Unicode case folding.
func CaseInsensitive(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Collating returns a comparer using locale-aware collation with case
// differences ignored, for languages where simple folding is wrong (e.g. the
// Turkish dotless i).
func Collating(tag language.Tag) Comparer[string] {
	c := collate.New(tag, collate.IgnoreCase)
	return func(a, b string) bool {
		return c.CompareString(a, b) == 0
	}
}

// EqualRule checks equality against a fixed value.
type EqualRule[P comparable] struct {
	ruleBase
	want P
	cmp  Comparer[P]
}

// Equal builds a rule that passes when the value equals want.
func Equal[P comparable](want P) *EqualRule[P] {
	return &EqualRule[P]{want: want}
}

// Using replaces the == comparison with a custom comparer.
func (r *EqualRule[P]) Using(cmp Comparer[P]) *EqualRule[P] {
	r.cmp = cmp
	return r
}

// WithMessage overrides the default message template for this rule.
func (r *EqualRule[P]) WithMessage(template string) *EqualRule[P] {
	r.message = template
	return r
}

func (r *EqualRule[P]) Code() string { return "validation.equal" }

func (r *EqualRule[P]) Validate(ctx *Context, value P) bool {
	ctx.SetParam("ComparisonValue", r.want)
	if r.cmp != nil {
		return r.cmp(value, r.want)
	}
	return value == r.want
}

// NotEqualRule checks inequality against a fixed value.
type NotEqualRule[P comparable] struct {
	ruleBase
	want P
	cmp  Comparer[P]
}

// NotEqual builds a rule that passes when the value differs from want.
func NotEqual[P comparable](want P) *NotEqualRule[P] {
	return &NotEqualRule[P]{want: want}
}

// Using replaces the == comparison with a custom comparer.
func (r *NotEqualRule[P]) Using(cmp Comparer[P]) *NotEqualRule[P] {
	r.cmp = cmp
	return r
}

// WithMessage overrides the default message template for this rule.
func (r *NotEqualRule[P]) WithMessage(template string) *NotEqualRule[P] {
	r.message = template
	return r
}

func (r *NotEqualRule[P]) Code() string { return "validation.not_equal" }

func (r *NotEqualRule[P]) Validate(ctx *Context, value P) bool {
	ctx.SetParam("ComparisonValue", r.want)
	if r.cmp != nil {
		return !r.cmp(value, r.want)
	}
	return value != r.want
}

// EqualFieldRule checks equality against another field of the same struct.
type EqualFieldRule[T any, P comparable] struct {
	ruleBase
	field string
	get   func(T) P
	cmp   Comparer[P]
}

// EqualField builds a rule that passes when the value equals another field of
// the root struct. The referenced field's display name is exposed to message
// templates as {ComparisonProperty} and its value as {ComparisonValue}.
func EqualField[T any, P comparable](field string, get func(T) P) *EqualFieldRule[T, P] {
	return &EqualFieldRule[T, P]{field: field, get: get}
}

// Using replaces the == comparison with a custom comparer.
func (r *EqualFieldRule[T, P]) Using(cmp Comparer[P]) *EqualFieldRule[T, P] {
	r.cmp = cmp
	return r
}

// WithMessage overrides the default message template for this rule.
func (r *EqualFieldRule[T, P]) WithMessage(template string) *EqualFieldRule[T, P] {
	r.message = template
	return r
}

func (r *EqualFieldRule[T, P]) Code() string { return "validation.equal" }

func (r *EqualFieldRule[T, P]) Validate(ctx *Context, value P) bool {
	root, ok := ctx.Root.(T)
	if !ok {
		return false
	}

	other := r.get(root)
	ctx.SetParam("ComparisonValue", other)
	ctx.SetParam("ComparisonProperty", DisplayName(r.field))
	if r.cmp != nil {
		return r.cmp(value, other)
	}
	return value == other
}

// NotEqualFieldRule checks inequality against another field of the same
// struct.
type NotEqualFieldRule[T any, P comparable] struct {
	ruleBase
	field string
	get   func(T) P
	cmp   Comparer[P]
}

// NotEqualField builds a rule that passes when the value differs from another
// field of the root struct. See EqualField for the placeholders it sets.
func NotEqualField[T any, P comparable](field string, get func(T) P) *NotEqualFieldRule[T, P] {
	return &NotEqualFieldRule[T, P]{field: field, get: get}
}

// Using replaces the == comparison with a custom comparer.
func (r *NotEqualFieldRule[T, P]) Using(cmp Comparer[P]) *NotEqualFieldRule[T, P] {
	r.cmp = cmp
	return r
}

// WithMessage overrides the default message template for this rule.
func (r *NotEqualFieldRule[T, P]) WithMessage(template string) *NotEqualFieldRule[T, P] {
	r.message = template
	return r
}

func (r *NotEqualFieldRule[T, P]) Code() string { return "validation.not_equal" }

func (r *NotEqualFieldRule[T, P]) Validate(ctx *Context, value P) bool {
	root, ok := ctx.Root.(T)
	if !ok {
		return false
	}

	other := r.get(root)
	ctx.SetParam("ComparisonValue", other)
	ctx.SetParam("ComparisonProperty", DisplayName(r.field))
	if r.cmp != nil {
		return !r.cmp(value, other)
	}
	return value != other
}

type orderedOp int

const (
	opGreaterThan orderedOp = iota
	opGreaterThanOrEqual
	opLessThan
	opLessThanOrEqual
)

// OrderRule checks an ordering relation against a fixed value.
type OrderRule[P cmp.Ordered] struct {
	ruleBase
	want P
	op   orderedOp
}

// GreaterThan builds a rule that passes when the value is strictly greater
// than want.
func GreaterThan[P cmp.Ordered](want P) *OrderRule[P] {
	return &OrderRule[P]{want: want, op: opGreaterThan}
}

// GreaterThanOrEqual builds a rule that passes when the value is at least
// want.
func GreaterThanOrEqual[P cmp.Ordered](want P) *OrderRule[P] {
	return &OrderRule[P]{want: want, op: opGreaterThanOrEqual}
}

// LessThan builds a rule that passes when the value is strictly less than
// want.
func LessThan[P cmp.Ordered](want P) *OrderRule[P] {
	return &OrderRule[P]{want: want, op: opLessThan}
}

// LessThanOrEqual builds a rule that passes when the value is at most want.
func LessThanOrEqual[P cmp.Ordered](want P) *OrderRule[P] {
	return &OrderRule[P]{want: want, op: opLessThanOrEqual}
}

// WithMessage overrides the default message template for this rule.
func (r *OrderRule[P]) WithMessage(template string) *OrderRule[P] {
	r.message = template
	return r
}

func (r *OrderRule[P]) Code() string {
	switch r.op {
	case opGreaterThan:
		return "validation.greater_than"
	case opGreaterThanOrEqual:
		return "validation.greater_than_or_equal"
	case opLessThan:
		return "validation.less_than"
	default:
		return "validation.less_than_or_equal"
	}
}

func (r *OrderRule[P]) Validate(ctx *Context, value P) bool {
	ctx.SetParam("ComparisonValue", r.want)
	switch r.op {
	case opGreaterThan:
		return value > r.want
	case opGreaterThanOrEqual:
		return value >= r.want
	case opLessThan:
		return value < r.want
	default:
		return value <= r.want
	}
}
