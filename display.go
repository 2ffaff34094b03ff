package validate

import (
	"strings"
	"sync"
	"unicode"
)

var (
	displayMu       sync.RWMutex
	displayResolver = SplitPascalCase
)

// SetDisplayNameResolver swaps the process-wide resolver used to turn raw
// field names into the {PropertyName} shown in messages. It returns a restore
// function so callers can scope the swap:
//
//	restore := validate.SetDisplayNameResolver(upper)
//	defer restore()
func SetDisplayNameResolver(fn func(field string) string) (restore func()) {
	displayMu.Lock()
	prev := displayResolver
	displayResolver = fn
	displayMu.Unlock()

	return func() {
		displayMu.Lock()
		displayResolver = prev
		displayMu.Unlock()
	}
}

// DisplayName resolves a raw field name through the current resolver.
func DisplayName(field string) string {
	displayMu.RLock()
	fn := displayResolver
	displayMu.RUnlock()
	return fn(field)
}

// SplitPascalCase is the default display-name resolver. It inserts spaces at
// word boundaries of Pascal- and camel-cased names, keeping acronyms intact:
// "PostalCode" becomes "Postal Code", "HTTPStatus" becomes "HTTP Status".
func SplitPascalCase(field string) string {
	runes := []rune(field)
	if len(runes) < 2 {
		return field
	}

	var b strings.Builder
	b.Grow(len(field) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
