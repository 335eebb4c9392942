package pipeline

import "regexp"

// inlineCodePattern matches a `code` span: one or more non-backtick
// characters between single backticks, leftmost first.
var inlineCodePattern = regexp.MustCompile("`[^`]+`")

// renderInlineCode replaces every inline code span in line with a <code>
// element. Span content is escaped; text outside spans is left as is.
func renderInlineCode(line string) string {
	return inlineCodePattern.ReplaceAllStringFunc(line, func(span string) string {
		return "<code>" + EscapeText(span[1:len(span)-1]) + "</code>"
	})
}
