package validate

import (
	"cmp"
	"fmt"
)

// BetweenRule checks range membership. From and To are the bounds captured at
// construction and are exported so callers can introspect a configured rule.
type BetweenRule[P cmp.Ordered] struct {
	ruleBase
	From, To  P
	exclusive bool
}

// InclusiveBetween builds a rule that passes when the value lies within
// [from, to], boundaries included. It panics with ErrInvalidRange when
// from > to: inverted bounds fail at rule construction, not at validation
// time.
func InclusiveBetween[P cmp.Ordered](from, to P) *BetweenRule[P] {
	if from > to {
		panic(fmt.Errorf("%w: InclusiveBetween(%v, %v)", ErrInvalidRange, from, to))
	}
	return &BetweenRule[P]{From: from, To: to}
}

// ExclusiveBetween builds a rule that passes when the value lies strictly
// between from and to. It panics with ErrInvalidRange when from > to.
func ExclusiveBetween[P cmp.Ordered](from, to P) *BetweenRule[P] {
	if from > to {
		panic(fmt.Errorf("%w: ExclusiveBetween(%v, %v)", ErrInvalidRange, from, to))
	}
	return &BetweenRule[P]{From: from, To: to, exclusive: true}
}

// WithMessage overrides the default message template for this rule.
func (r *BetweenRule[P]) WithMessage(template string) *BetweenRule[P] {
	r.message = template
	return r
}

func (r *BetweenRule[P]) Code() string {
	if r.exclusive {
		return "validation.exclusive_between"
	}
	return "validation.inclusive_between"
}

func (r *BetweenRule[P]) Validate(ctx *Context, value P) bool {
	ctx.SetParam("From", r.From)
	ctx.SetParam("To", r.To)
	if r.exclusive {
		return value > r.From && value < r.To
	}
	return value >= r.From && value <= r.To
}
