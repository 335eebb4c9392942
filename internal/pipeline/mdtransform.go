package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// byteOrderMark is stripped from the start of source text.
const byteOrderMark = "\uFEFF"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// SourcePreprocessor defines the contract for source text preprocessing.
type SourcePreprocessor interface {
	Preprocess(ctx context.Context, content string) string
}

// TextPreprocessor prepares raw file content for the line scanner.
type TextPreprocessor struct{}

// Preprocess strips a leading byte order mark and normalizes line endings.
// Nothing else is touched: code block content must reach the scanner verbatim.
func (p *TextPreprocessor) Preprocess(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
