package validate

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fluentgo/validate/locale"
)

// Rule checks a single property value. Implementations set message
// placeholders on the context and report whether the value passed.
// Constructors in this package return concrete rule types so that
// configuration methods (WithMessage, Using) keep their fluent shape; custom
// rules only need to satisfy this interface.
type Rule[P any] interface {
	Validate(ctx *Context, value P) bool
	Code() string
}

// Context carries per-check state handed to a rule: the field under
// validation, the root struct being validated, and the placeholder
// parameters collected for message rendering.
type Context struct {
	Field       string
	DisplayName string
	Root        any

	printer *message.Printer
	params  map[string]any
}

// SetParam records a placeholder value for message rendering. Rules call this
// for the metadata their templates reference, e.g. {ComparisonValue}.
func (c *Context) SetParam(key string, value any) {
	if c.params == nil {
		c.params = make(map[string]any)
	}
	c.params[key] = value
}

// Format renders a value the way it would appear in a message, using the
// validator's language.
func (c *Context) Format(v any) string {
	return formatValue(v, c.printer)
}

// CascadeMode controls whether the remaining rules of a property run after a
// failure.
type CascadeMode int

const (
	// Continue evaluates every rule and reports all failures.
	Continue CascadeMode = iota
	// StopOnFirstFailure stops evaluating a property after its first failure.
	StopOnFirstFailure
)

type executor[T any] interface {
	run(root T, res *Result, cfg runConfig)
}

type runConfig struct {
	lang    language.Tag
	catalog *locale.Catalog
	printer *message.Printer
}

// Validator evaluates the field rules registered for values of T.
// Register rules up front with RuleFor and RuleForEach; Validate performs no
// mutation and is safe for concurrent use.
type Validator[T any] struct {
	lang    language.Tag
	catalog *locale.Catalog
	printer *message.Printer
	rules   []executor[T]
}

type options struct {
	lang    language.Tag
	catalog *locale.Catalog
}

// Option configures a Validator at construction.
type Option func(*options)

// WithLanguage sets the language used to look up default message templates
// and to format placeholder values.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// WithCatalog replaces the message catalog used for default templates.
func WithCatalog(c *locale.Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// New creates an empty Validator for T. Without options it renders messages
// in English from the built-in catalog.
func New[T any](opts ...Option) *Validator[T] {
	o := options{
		lang:    language.English,
		catalog: locale.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Validator[T]{
		lang:    o.lang,
		catalog: o.catalog,
		printer: message.NewPrinter(o.lang),
	}
}

// Validate evaluates every registered rule against value and returns the
// aggregated result.
func (v *Validator[T]) Validate(value T) Result {
	cfg := runConfig{lang: v.lang, catalog: v.catalog, printer: v.printer}

	var res Result
	for _, r := range v.rules {
		r.run(value, &res, cfg)
	}
	return res
}

// PropertyRules is the configuration handle for the rules registered against
// a single field.
type PropertyRules[T, P any] struct {
	field   string
	get     func(T) P
	rules   []Rule[P]
	cond    func(T) bool
	name    string
	cascade CascadeMode
	child   *Validator[P]
}

// RuleFor registers rules for a single field of T. The field name feeds the
// {PropertyName} placeholder through the display-name resolver and becomes
// the Field of any resulting FieldError.
func RuleFor[T, P any](v *Validator[T], field string, get func(T) P, rules ...Rule[P]) *PropertyRules[T, P] {
	pr := &PropertyRules[T, P]{field: field, get: get, rules: rules}
	v.rules = append(v.rules, pr)
	return pr
}

// When makes the field's rules conditional on the root value.
func (pr *PropertyRules[T, P]) When(cond func(T) bool) *PropertyRules[T, P] {
	pr.cond = cond
	return pr
}

// WithName overrides the display name used for {PropertyName}, bypassing the
// process-wide resolver.
func (pr *PropertyRules[T, P]) WithName(name string) *PropertyRules[T, P] {
	pr.name = name
	return pr
}

// Cascade sets whether remaining rules run after a failure on this field.
func (pr *PropertyRules[T, P]) Cascade(mode CascadeMode) *PropertyRules[T, P] {
	pr.cascade = mode
	return pr
}

// SetValidator validates the field's value with a nested validator. Failures
// are reported with dotted paths such as "Address.Line1". The child validator
// keeps its own language and catalog.
func (pr *PropertyRules[T, P]) SetValidator(child *Validator[P]) *PropertyRules[T, P] {
	pr.child = child
	return pr
}

func (pr *PropertyRules[T, P]) run(root T, res *Result, cfg runConfig) {
	if pr.cond != nil && !pr.cond(root) {
		return
	}

	value := pr.get(root)
	display := pr.name
	if display == "" {
		display = DisplayName(pr.field)
	}

	runRules(pr.rules, root, pr.field, display, pr.cascade, value, res, cfg)

	if pr.child != nil {
		sub := pr.child.Validate(value)
		for _, e := range sub.Errors() {
			e.Field = pr.field + "." + e.Field
			res.add(e)
		}
	}
}

// EachRules is the configuration handle for rules evaluated per element of a
// slice field.
type EachRules[T, E any] struct {
	field   string
	get     func(T) []E
	rules   []Rule[E]
	cond    func(T) bool
	name    string
	cascade CascadeMode
	child   *Validator[E]
}

// RuleForEach registers rules evaluated against every element of a slice
// field. Failures carry indexed field paths such as "Orders[2]".
func RuleForEach[T, E any](v *Validator[T], field string, get func(T) []E, rules ...Rule[E]) *EachRules[T, E] {
	er := &EachRules[T, E]{field: field, get: get, rules: rules}
	v.rules = append(v.rules, er)
	return er
}

// When makes the element rules conditional on the root value.
func (er *EachRules[T, E]) When(cond func(T) bool) *EachRules[T, E] {
	er.cond = cond
	return er
}

// WithName overrides the display name used for {PropertyName}.
func (er *EachRules[T, E]) WithName(name string) *EachRules[T, E] {
	er.name = name
	return er
}

// Cascade sets whether remaining rules run after a failure on an element.
// The mode applies per element; later elements are always evaluated.
func (er *EachRules[T, E]) Cascade(mode CascadeMode) *EachRules[T, E] {
	er.cascade = mode
	return er
}

// SetValidator validates every element with a nested validator, reporting
// failures under indexed dotted paths such as "Orders[2].Quantity".
func (er *EachRules[T, E]) SetValidator(child *Validator[E]) *EachRules[T, E] {
	er.child = child
	return er
}

func (er *EachRules[T, E]) run(root T, res *Result, cfg runConfig) {
	if er.cond != nil && !er.cond(root) {
		return
	}

	display := er.name
	if display == "" {
		display = DisplayName(er.field)
	}

	for i, elem := range er.get(root) {
		field := fmt.Sprintf("%s[%d]", er.field, i)
		runRules(er.rules, root, field, display, er.cascade, elem, res, cfg)

		if er.child != nil {
			sub := er.child.Validate(elem)
			for _, e := range sub.Errors() {
				e.Field = field + "." + e.Field
				res.add(e)
			}
		}
	}
}

// fallbackTemplate renders when neither the rule nor the catalog provides a
// template for the rule's code.
const fallbackTemplate = "'{PropertyName}' is not valid."

func runRules[P any](rules []Rule[P], root any, field, display string, cascade CascadeMode, value P, res *Result, cfg runConfig) {
	for _, rule := range rules {
		ctx := &Context{
			Field:       field,
			DisplayName: display,
			Root:        root,
			printer:     cfg.printer,
		}
		ctx.SetParam("PropertyName", display)
		ctx.SetParam("PropertyValue", value)

		if rule.Validate(ctx, value) {
			continue
		}

		tpl := ""
		if m, ok := rule.(interface{ messageTemplate() string }); ok {
			tpl = m.messageTemplate()
		}
		if tpl == "" {
			tpl = cfg.catalog.Template(cfg.lang, rule.Code())
		}
		if tpl == "" {
			tpl = fallbackTemplate
		}

		res.add(FieldError{
			Field:   field,
			Message: renderTemplate(tpl, ctx.params, cfg.printer),
			Code:    rule.Code(),
			Params:  ctx.params,
			Value:   value,
		})

		if cascade == StopOnFirstFailure {
			return
		}
	}
}

// ruleBase carries the per-rule message override shared by every concrete
// rule type through embedding.
type ruleBase struct {
	message string
}

func (b ruleBase) messageTemplate() string {
	return b.message
}
