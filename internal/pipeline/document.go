package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"unicode"
)

// Sentinel errors for document rendering.
var (
	ErrTemplateParse     = errors.New("document template parsing failed")
	ErrTemplateRender    = errors.New("document template rendering failed")
	ErrTemplateNoContent = errors.New("document template has no {{.Content}} insertion point")
)

// DefaultTitle is used when no title can be resolved.
const DefaultTitle = "Document"

// contentProbe stands in for the converted body when checking that a
// template actually inserts it. U+E002 is in the Private Use Area and
// cannot come from template text by accident.
const contentProbe = "\uE002"

// DocumentData holds the values available to a document template.
type DocumentData struct {
	Title   string
	Content template.HTML // Converter output, inserted without escaping
}

// DocumentRenderer defines the contract for wrapping converted HTML in a document.
type DocumentRenderer interface {
	Render(ctx context.Context, data *DocumentData) (string, error)
}

// TemplateRenderer renders converted HTML into an html/template document.
type TemplateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer parses tmplContent and checks that it inserts {{.Content}}.
func NewTemplateRenderer(tmplContent string) (*TemplateRenderer, error) {
	if strings.TrimSpace(tmplContent) == "" {
		return nil, ErrTemplateNoContent
	}

	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	r := &TemplateRenderer{tmpl: tmpl}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// validate executes the template once with a probe body and reports
// ErrTemplateNoContent if the probe does not appear in the output.
func (r *TemplateRenderer) validate() error {
	var buf bytes.Buffer
	probe := &DocumentData{Title: DefaultTitle, Content: template.HTML(contentProbe)} // #nosec G203 -- constant probe
	if err := r.tmpl.Execute(&buf, probe); err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	if !strings.Contains(buf.String(), contentProbe) {
		return ErrTemplateNoContent
	}
	return nil
}

// Render executes the template with data.
// A nil data renders an empty document with the default title.
func (r *TemplateRenderer) Render(ctx context.Context, data *DocumentData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if data == nil {
		data = &DocumentData{Title: DefaultTitle}
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// FirstHeading returns the text of the first level-1 header in content,
// ignoring lines inside fenced code blocks. Returns "" if there is none.
func FirstHeading(content string) string {
	inCodeBlock := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if strings.HasPrefix(line, fenceMarker) {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			continue
		}
		if level, text, ok := parseHeader(line); ok && level == 1 && text != "" {
			return text
		}
	}
	return ""
}
