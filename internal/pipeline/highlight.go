package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"
)

// ErrHighlightStyle indicates an unknown highlighting style name.
var ErrHighlightStyle = errors.New("unknown highlight style")

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// codeBlockPattern matches a code block fragment as emitted by ToHTML.
// Emitted blocks occupy whole lines and hold escaped text, while paragraph
// and header fragments start with <p> or <h. Raw markup written inside a
// paragraph or header therefore never matches.
var codeBlockPattern = regexp.MustCompile(`(?ms)^<pre><code class="language-([^"]*)">(.*?)</code></pre>$`)

// CodeHighlighter defines the contract for code block highlighting.
type CodeHighlighter interface {
	Highlight(ctx context.Context, body string) string
	CSS() string
}

// ChromaHighlighter re-renders fenced code blocks with chroma token classes.
// Blocks whose language has no chroma lexer are left unchanged.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
	css       string
}

// NewChromaHighlighter creates a highlighter for the named chroma style.
// An empty name selects DefaultHighlightStyle.
func NewChromaHighlighter(styleName string) (*ChromaHighlighter, error) {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrHighlightStyle, styleName)
	}

	formatter := chromahtml.New(
		chromahtml.WithClasses(true), // CSS classes, stylesheet emitted once per document
		chromahtml.PreventSurroundingPre(true),
	)

	var css bytes.Buffer
	if err := formatter.WriteCSS(&css, style); err != nil {
		return nil, fmt.Errorf("generating %s highlight CSS: %w", styleName, err)
	}

	return &ChromaHighlighter{style: style, formatter: formatter, css: css.String()}, nil
}

// CSS returns the stylesheet for the highlighter's token classes.
func (h *ChromaHighlighter) CSS() string {
	return h.css
}

// Highlight replaces each code block in body with its highlighted form.
// Returns body unchanged if the context is canceled.
func (h *ChromaHighlighter) Highlight(ctx context.Context, body string) string {
	if ctx.Err() != nil {
		return body
	}

	return codeBlockPattern.ReplaceAllStringFunc(body, func(block string) string {
		m := codeBlockPattern.FindStringSubmatch(block)
		highlighted, ok := h.highlightCode(m[1], html.UnescapeString(m[2]))
		if !ok {
			return block
		}
		return `<pre class="chroma"><code class="language-` + m[1] + `">` + highlighted + "</code></pre>"
	})
}

// highlightCode tokenizes code with the lexer for language.
// ok is false for plaintext, when there is no lexer, or when chroma fails,
// so the caller can keep the original escaped block.
func (h *ChromaHighlighter) highlightCode(language, code string) (string, bool) {
	if language == defaultCodeLanguage {
		return "", false
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", false
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", false
	}
	return buf.String(), true
}

// HighlightStyleNames returns the names of the registered chroma styles, sorted.
func HighlightStyleNames() []string {
	return styles.Names()
}
