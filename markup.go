package mdlite

import "github.com/alnah/go-mdlite/internal/pipeline"

// ToHTML converts source text to HTML fragments joined by newlines.
//
// Recognized constructs are headers (#), horizontal rules (---), fenced
// code blocks (```lang), paragraphs and inline code spans (`code`).
// Only code content is escaped. The conversion never fails.
func ToHTML(text string) string {
	return pipeline.ToHTML(text)
}

// EscapeText escapes &, <, >, ' and " for inclusion in HTML.
func EscapeText(s string) string {
	return pipeline.EscapeText(s)
}
