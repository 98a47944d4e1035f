// Package mathtag builds delimited math markup for the page-side renderer:
// $…$ for inline expressions and $$…$$ for display blocks.
package mathtag

import (
	"fmt"
	"html/template"
)

// Inline wraps a TeX expression in single-dollar delimiters. Arguments are
// interpolated with fmt verbs, so Inline(`E_%d`, 2) yields "$E_2$".
func Inline(expr string, args ...any) string {
	return "$" + interpolate(expr, args) + "$"
}

// Block wraps a TeX expression in double-dollar delimiters.
func Block(expr string, args ...any) string {
	return "$$" + interpolate(expr, args) + "$$"
}

// InlineHTML is Inline wrapped in a span, escaped for direct use in page
// templates.
func InlineHTML(expr string, args ...any) template.HTML {
	return template.HTML("<span>" + template.HTMLEscapeString(Inline(expr, args...)) + "</span>")
}

// BlockHTML is Block wrapped in a div.
func BlockHTML(expr string, args ...any) template.HTML {
	return template.HTML("<div>" + template.HTMLEscapeString(Block(expr, args...)) + "</div>")
}

func interpolate(expr string, args []any) string {
	if len(args) == 0 {
		return expr
	}
	return fmt.Sprintf(expr, args...)
}
