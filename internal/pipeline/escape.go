package pipeline

import "strings"

// textEscaper replaces the five HTML-sensitive characters.
// strings.Replacer works in a single pass, so the ampersands it
// introduces are never escaped a second time.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&#39;",
	`"`, "&quot;",
)

// EscapeText escapes &, <, >, ' and " for safe inclusion in HTML text.
// Used for code block lines and inline code spans only.
func EscapeText(content string) string {
	return textEscaper.Replace(content)
}
