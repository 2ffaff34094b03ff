package validate

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"
)

// renderTemplate substitutes {Placeholder} tokens in tpl with formatted
// parameter values. Placeholders without a matching parameter are left
// untouched so that partially populated templates stay inspectable.
func renderTemplate(tpl string, params map[string]any, p *message.Printer) string {
	var b strings.Builder
	for i := 0; i < len(tpl); {
		open := strings.IndexByte(tpl[i:], '{')
		if open < 0 {
			b.WriteString(tpl[i:])
			break
		}
		open += i

		end := strings.IndexByte(tpl[open:], '}')
		if end < 0 {
			b.WriteString(tpl[i:])
			break
		}
		end += open

		if v, ok := params[tpl[open+1:end]]; ok {
			b.WriteString(tpl[i:open])
			b.WriteString(formatValue(v, p))
		} else {
			b.WriteString(tpl[i : end+1])
		}
		i = end + 1
	}
	return b.String()
}

// formatValue renders a placeholder value. Strings pass through untouched;
// everything else goes through the locale-aware printer so numbers pick up
// the validator's language conventions.
func formatValue(v any, p *message.Printer) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		if p == nil {
			return fmt.Sprint(val)
		}
		return p.Sprint(val)
	}
}
