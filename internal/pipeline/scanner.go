package pipeline

import (
	"context"
	"strconv"
	"strings"
	"unicode"
)

// Markers recognized at the start of a line.
const (
	horizontalRule = "---"
	fenceMarker    = "```"
	headerMarker   = '#'
)

// defaultCodeLanguage is used for fenced blocks opened without a language tag.
const defaultCodeLanguage = "plaintext"

// HTMLConverter abstracts source text to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// LineConverter converts the fixed lightweight markup syntax to HTML
// fragments with a single line-oriented scan. It holds no state between
// calls and is safe for concurrent use.
type LineConverter struct{}

// ToHTML converts content to HTML fragments joined by newlines.
// The scan itself cannot fail; the only error is a canceled context.
func (c *LineConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return ToHTML(content), nil
}

// ToHTML converts content to HTML fragments joined by newlines.
//
// Each line is classified in priority order: fence marker, code block
// interior, horizontal rule, header, paragraph text, blank line.
// Empty input yields an empty string.
func ToHTML(content string) string {
	s := &scanState{}
	for _, line := range strings.Split(content, "\n") {
		s.scanLine(strings.TrimRightFunc(line, unicode.IsSpace))
	}
	s.flushParagraph()
	s.flushCodeBlock()
	return strings.Join(s.output, "\n")
}

// scanState is the working state of a single conversion.
// At most one of inParagraph and inCodeBlock is set, and accumulator
// holds text only while one of them is.
type scanState struct {
	inParagraph  bool
	inCodeBlock  bool
	codeLanguage string
	accumulator  []string
	output       []string
}

// scanLine classifies one line (trailing whitespace already removed)
// and updates the state accordingly.
func (s *scanState) scanLine(line string) {
	if strings.HasPrefix(line, fenceMarker) {
		s.toggleCodeBlock(line)
		return
	}

	if s.inCodeBlock {
		s.accumulator = append(s.accumulator, EscapeText(line)+"\n")
		return
	}

	if line == horizontalRule {
		s.flushParagraph()
		s.output = append(s.output, "<hr>")
		return
	}

	if level, text, ok := parseHeader(line); ok {
		s.flushParagraph()
		tag := "h" + strconv.Itoa(level)
		s.output = append(s.output, "<"+tag+">"+text+"</"+tag+">")
		return
	}

	if line == "" {
		s.flushParagraph()
		return
	}

	s.inParagraph = true
	s.accumulator = append(s.accumulator, renderInlineCode(line)+" ")
}

// toggleCodeBlock closes the open code block, or opens a new one after
// flushing any open paragraph.
func (s *scanState) toggleCodeBlock(line string) {
	if s.inCodeBlock {
		s.flushCodeBlock()
		return
	}
	s.flushParagraph()
	s.inCodeBlock = true
	s.codeLanguage = parseFenceLanguage(line)
}

// flushParagraph renders the open paragraph, if any, and resets it.
func (s *scanState) flushParagraph() {
	if !s.inParagraph {
		return
	}
	text := strings.TrimRightFunc(strings.Join(s.accumulator, ""), unicode.IsSpace)
	s.output = append(s.output, "<p>"+text+"</p>")
	s.accumulator = s.accumulator[:0]
	s.inParagraph = false
}

// flushCodeBlock renders the open code block, if any, and resets it.
func (s *scanState) flushCodeBlock() {
	if !s.inCodeBlock {
		return
	}
	language := s.codeLanguage
	if language == "" {
		language = defaultCodeLanguage
	}
	s.output = append(s.output,
		`<pre><code class="language-`+language+`">`+strings.Join(s.accumulator, "")+"</code></pre>")
	s.accumulator = s.accumulator[:0]
	s.inCodeBlock = false
	s.codeLanguage = ""
}

// parseHeader reports whether line is a header and returns its level
// and text. The text is the remainder after the # run and any whitespace
// following it.
func parseHeader(line string) (level int, text string, ok bool) {
	for level < len(line) && line[level] == headerMarker {
		level++
	}
	if level == 0 {
		return 0, "", false
	}
	return level, strings.TrimLeftFunc(line[level:], unicode.IsSpace), true
}

// parseFenceLanguage returns the word characters directly after the
// opening fence, or "" when there are none.
func parseFenceLanguage(line string) string {
	rest := line[len(fenceMarker):]
	end := strings.IndexFunc(rest, func(r rune) bool { return !isWordRune(r) })
	if end == -1 {
		return rest
	}
	return rest[:end]
}

// isWordRune reports whether r is a letter, digit or underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
