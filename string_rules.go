package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// NotEmptyRule checks that a string contains non-whitespace content.
type NotEmptyRule struct {
	ruleBase
}

// NotEmpty builds a rule that fails for empty or whitespace-only strings.
func NotEmpty() *NotEmptyRule {
	return &NotEmptyRule{}
}

// WithMessage overrides the default message template for this rule.
func (r *NotEmptyRule) WithMessage(template string) *NotEmptyRule {
	r.message = template
	return r
}

func (r *NotEmptyRule) Code() string { return "validation.not_empty" }

func (r *NotEmptyRule) Validate(ctx *Context, value string) bool {
	return strings.TrimSpace(value) != ""
}

type lengthKind int

const (
	lengthBetween lengthKind = iota
	lengthMin
	lengthMax
)

// LengthRule checks the character count of a string. Lengths are counted in
// runes, not bytes.
type LengthRule struct {
	ruleBase
	min, max int
	kind     lengthKind
}

// Length builds a rule that passes when the character count lies within
// [min, max]. It panics with ErrInvalidRange when min > max.
func Length(min, max int) *LengthRule {
	if min > max {
		panic(fmt.Errorf("%w: Length(%d, %d)", ErrInvalidRange, min, max))
	}
	return &LengthRule{min: min, max: max, kind: lengthBetween}
}

// MinLength builds a rule requiring at least min characters.
func MinLength(min int) *LengthRule {
	return &LengthRule{min: min, kind: lengthMin}
}

// MaxLength builds a rule allowing at most max characters.
func MaxLength(max int) *LengthRule {
	return &LengthRule{max: max, kind: lengthMax}
}

// WithMessage overrides the default message template for this rule.
func (r *LengthRule) WithMessage(template string) *LengthRule {
	r.message = template
	return r
}

func (r *LengthRule) Code() string {
	switch r.kind {
	case lengthMin:
		return "validation.min_length"
	case lengthMax:
		return "validation.max_length"
	default:
		return "validation.length"
	}
}

func (r *LengthRule) Validate(ctx *Context, value string) bool {
	n := utf8.RuneCountInString(value)
	ctx.SetParam("MinLength", r.min)
	ctx.SetParam("MaxLength", r.max)
	ctx.SetParam("TotalLength", n)

	switch r.kind {
	case lengthMin:
		return n >= r.min
	case lengthMax:
		return n <= r.max
	default:
		return n >= r.min && n <= r.max
	}
}

// MatchRule checks a string against a regular expression compiled once at
// construction.
type MatchRule struct {
	ruleBase
	re *regexp.Regexp
}

// Matches builds a rule that passes when the value matches pattern. The
// pattern is compiled with regexp.MustCompile, so an invalid pattern panics
// at rule construction.
func Matches(pattern string) *MatchRule {
	return &MatchRule{re: regexp.MustCompile(pattern)}
}

// WithMessage overrides the default message template for this rule.
func (r *MatchRule) WithMessage(template string) *MatchRule {
	r.message = template
	return r
}

func (r *MatchRule) Code() string { return "validation.matches" }

func (r *MatchRule) Validate(ctx *Context, value string) bool {
	ctx.SetParam("Pattern", r.re.String())
	return r.re.MatchString(value)
}

// EmailRule checks that a string is a usable email address.
type EmailRule struct {
	ruleBase
}

// Email builds a rule accepting RFC 5322 addresses that are also practical
// for web use: a single non-empty local part and a dotted domain.
func Email() *EmailRule {
	return &EmailRule{}
}

// WithMessage overrides the default message template for this rule.
func (r *EmailRule) WithMessage(template string) *EmailRule {
	r.message = template
	return r
}

func (r *EmailRule) Code() string { return "validation.email" }

func (r *EmailRule) Validate(ctx *Context, value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	// mail.ParseAddress accepts forms like "Name <a@b.c>"; require the bare
	// address and a dotted domain.
	if addr.Address != value {
		return false
	}
	at := strings.LastIndex(value, "@")
	if at <= 0 {
		return false
	}
	domain := value[at+1:]
	return strings.Contains(domain, ".") &&
		!strings.HasPrefix(domain, ".") &&
		!strings.HasSuffix(domain, ".")
}

// UUIDRule checks that a string is a canonical UUID.
type UUIDRule struct {
	ruleBase
}

// UUID builds a rule accepting canonical 36-character UUID strings.
func UUID() *UUIDRule {
	return &UUIDRule{}
}

// WithMessage overrides the default message template for this rule.
func (r *UUIDRule) WithMessage(template string) *UUIDRule {
	r.message = template
	return r
}

func (r *UUIDRule) Code() string { return "validation.uuid" }

func (r *UUIDRule) Validate(ctx *Context, value string) bool {
	// Fast rejection: check length and hyphen positions before parsing.
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}

	_, err := uuid.Parse(value)
	return err == nil
}
