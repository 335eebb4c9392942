package mdlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alnah/go-mdlite/internal/pipeline"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

type mockHTMLConverter struct {
	output string
	err    error
}

func (m *mockHTMLConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.output, nil
}

type mockRenderer struct {
	data *pipeline.DocumentData
	err  error
}

func (m *mockRenderer) Render(ctx context.Context, data *pipeline.DocumentData) (string, error) {
	m.data = data
	if m.err != nil {
		return "", m.err
	}
	return "<head></head>" + string(data.Content), nil
}

type panicHighlighter struct{}

func (panicHighlighter) Highlight(ctx context.Context, body string) string { panic("boom") }
func (panicHighlighter) CSS() string                                       { return "" }

// Internal options for injecting mocks.
func withHTMLConverter(h pipeline.HTMLConverter) Option {
	return func(c *Converter) { c.htmlConverter = h }
}

func withRenderer(r pipeline.DocumentRenderer) Option {
	return func(c *Converter) { c.renderer = r }
}

func withHighlighter(h pipeline.CodeHighlighter) Option {
	return func(c *Converter) { c.highlighter = h }
}

func newTestConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()

	conv, err := NewConverter(opts...)
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	return conv
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// ---------------------------------------------------------------------------
// NewConverter
// ---------------------------------------------------------------------------

func TestNewConverter_Defaults(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)

	if conv.cfg.resolvedStyle == "" {
		t.Error("default converter has no style")
	}
	if conv.highlighter != nil {
		t.Error("highlighting enabled by default")
	}
	if conv.renderer == nil {
		t.Error("renderer not initialized")
	}
}

func TestNewConverter_Style(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cssPath := writeTestFile(t, dir, "print.css", "p { margin: 0 }")

	tests := []struct {
		name    string
		style   string
		want    string
		wantErr error
	}{
		{name: "no style", style: "", want: ""},
		{name: "raw CSS", style: "body { color: red }", want: "body { color: red }"},
		{name: "file path", style: cssPath, want: "p { margin: 0 }"},
		{name: "missing file", style: filepath.Join(dir, "missing.css"), wantErr: ErrStyleNotFound},
		{name: "unknown name", style: "nonexistent", wantErr: ErrStyleNotFound},
		{name: "invalid name", style: "bad.name", wantErr: ErrInvalidAssetPath},
	}

	for _, tt := range tests {
		tt := tt // capture range variable (pre-Go 1.22 loop semantics)
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(WithStyle(tt.style))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewConverter() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewConverter() error = %v", err)
			}
			if conv.cfg.resolvedStyle != tt.want {
				t.Errorf("resolvedStyle = %q, want %q", conv.cfg.resolvedStyle, tt.want)
			}
		})
	}

	t.Run("builtin name", func(t *testing.T) {
		t.Parallel()

		conv := newTestConverter(t, WithStyle("minimal"))
		if !strings.Contains(conv.cfg.resolvedStyle, "Georgia") {
			t.Errorf("resolvedStyle = %q, want minimal style", conv.cfg.resolvedStyle)
		}
	})
}

func TestNewConverter_Template(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	goodPath := writeTestFile(t, dir, "page.html", "<article>{{.Content}}</article>")
	noContentPath := writeTestFile(t, dir, "empty.html", "<article>{{.Title}}</article>")
	brokenPath := writeTestFile(t, dir, "broken.html", "{{.Content")

	tests := []struct {
		name     string
		template string
		wantErr  error
	}{
		{name: "default"},
		{name: "fragment", template: FragmentTemplate},
		{name: "file path", template: goodPath},
		{name: "unknown name", template: "nonexistent", wantErr: ErrTemplateNotFound},
		{name: "missing file", template: filepath.Join(dir, "missing.html"), wantErr: ErrTemplateNotFound},
		{name: "no content insertion", template: noContentPath, wantErr: ErrInvalidTemplate},
		{name: "parse error", template: brokenPath, wantErr: ErrInvalidTemplate},
	}

	for _, tt := range tests {
		tt := tt // capture range variable (pre-Go 1.22 loop semantics)
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewConverter(WithTemplate(tt.template))
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("NewConverter() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewConverter() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("missing insertion point keeps cause", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter(WithTemplate(noContentPath))
		if !errors.Is(err, pipeline.ErrTemplateNoContent) {
			t.Errorf("NewConverter() error = %v, want ErrTemplateNoContent in chain", err)
		}
	})
}

func TestNewConverter_AssetPath(t *testing.T) {
	t.Parallel()

	t.Run("custom assets with fallback", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeTestFile(t, dir, "styles/brand.css", "h1 { color: teal }")
		writeTestFile(t, dir, "templates/brand.html", "<section>{{.Content}}</section>")

		conv := newTestConverter(t, WithAssetPath(dir), WithStyle("brand"), WithTemplate("brand"))
		result, err := conv.Convert(context.Background(), Input{Text: "# Hi"})
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		html := string(result.HTML)
		if !strings.Contains(html, "<section><h1>Hi</h1></section>") {
			t.Errorf("HTML = %q, want custom template", html)
		}
		if !strings.Contains(html, "h1 { color: teal }") {
			t.Errorf("HTML = %q, want custom style", html)
		}

		// Built-in names still resolve.
		newTestConverter(t, WithAssetPath(dir), WithStyle("minimal"))
	})

	t.Run("invalid directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter(WithAssetPath(filepath.Join(t.TempDir(), "missing")))
		if !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("NewConverter() error = %v, want ErrInvalidAssetPath", err)
		}
	})
}

type mapLoader map[string]string

func (m mapLoader) LoadStyle(name string) (string, error) {
	if css, ok := m["style:"+name]; ok {
		return css, nil
	}
	return "", ErrStyleNotFound
}

func (m mapLoader) LoadTemplate(name string) (string, error) {
	if tmpl, ok := m["template:"+name]; ok {
		return tmpl, nil
	}
	return "", ErrTemplateNotFound
}

func TestNewConverter_AssetLoader(t *testing.T) {
	t.Parallel()

	loader := mapLoader{
		"style:default":    "p { color: navy }",
		"template:default": "<div>{{.Content}}</div>",
	}
	conv := newTestConverter(t, WithAssetLoader(loader))

	result, err := conv.Convert(context.Background(), Input{Text: "text"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	want := "<style>\np { color: navy }\n</style>\n<div><p>text</p></div>"
	if string(result.HTML) != want {
		t.Errorf("HTML = %q, want %q", result.HTML, want)
	}

	if _, err := NewConverter(WithAssetLoader(loader), WithStyle("other")); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("NewConverter() error = %v, want ErrStyleNotFound", err)
	}
}

func TestNewConverter_Highlighting(t *testing.T) {
	t.Parallel()

	t.Run("known style", func(t *testing.T) {
		t.Parallel()

		conv := newTestConverter(t, WithHighlighting("monokai"))
		if conv.highlighter == nil {
			t.Fatal("highlighter not initialized")
		}
	})

	t.Run("empty style selects default", func(t *testing.T) {
		t.Parallel()

		conv := newTestConverter(t, WithHighlighting(""))
		if conv.highlighter == nil {
			t.Fatal("highlighter not initialized")
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter(WithHighlighting("no-such-style"))
		if !errors.Is(err, ErrHighlightStyle) {
			t.Errorf("NewConverter() error = %v, want ErrHighlightStyle", err)
		}
	})
}

// ---------------------------------------------------------------------------
// Convert
// ---------------------------------------------------------------------------

func TestConvert_FragmentTemplateMatchesCore(t *testing.T) {
	t.Parallel()

	text := "# Title\n\nSome `a<b` text\n\n---\n```go\nx := \"y\"\n```"
	conv := newTestConverter(t, WithTemplate(FragmentTemplate), WithStyle(""))

	result, err := conv.Convert(context.Background(), Input{Text: text})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.Body != ToHTML(text) {
		t.Errorf("Body = %q, want %q", result.Body, ToHTML(text))
	}
	if string(result.HTML) != ToHTML(text)+"\n" {
		t.Errorf("HTML = %q, want core output plus newline", result.HTML)
	}
}

func TestConvert_DefaultDocument(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)
	result, err := conv.Convert(context.Background(), Input{
		Text: "# Report <draft>\n\nBody",
		CSS:  "p { color: red }",
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	html := string(result.HTML)
	checks := []string{
		"<!DOCTYPE html>",
		"<title>Report &lt;draft&gt;</title>",
		"<h1>Report <draft></h1>",
		"<p>Body</p>",
		"p { color: red }",
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q:\n%s", want, html)
		}
	}

	styleIdx := strings.Index(html, "<style>")
	headIdx := strings.Index(html, "</head>")
	if styleIdx == -1 || styleIdx > headIdx {
		t.Errorf("style block not inside head:\n%s", html)
	}
	if strings.Index(html, "max-width: 48rem") > strings.Index(html, "p { color: red }") {
		t.Error("user CSS must follow the converter style")
	}
}

func TestConvert_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input Input
		want  string
	}{
		{
			name:  "explicit title wins",
			input: Input{Text: "# Header", Title: "Explicit", SourceName: "file.txt"},
			want:  "Explicit",
		},
		{
			name:  "first level-1 header",
			input: Input{Text: "## Sub\n# Main\n# Second", SourceName: "file.txt"},
			want:  "Main",
		},
		{
			name:  "header inside fence ignored",
			input: Input{Text: "```\n# not a title\n```", SourceName: "docs/guide.md"},
			want:  "guide",
		},
		{
			name:  "source name without extension",
			input: Input{Text: "plain", SourceName: "notes.txt"},
			want:  "notes",
		},
		{
			name:  "fallback",
			input: Input{Text: "plain"},
			want:  pipeline.DefaultTitle,
		},
		{
			name:  "blank explicit title ignored",
			input: Input{Text: "# From Header", Title: "   "},
			want:  "From Header",
		},
	}

	conv := newTestConverter(t)

	for _, tt := range tests {
		tt := tt // capture range variable (pre-Go 1.22 loop semantics)
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := conv.Convert(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if result.Title != tt.want {
				t.Errorf("Title = %q, want %q", result.Title, tt.want)
			}
		})
	}
}

func TestConvert_PreprocessesSource(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, WithTemplate(FragmentTemplate), WithStyle(""))
	result, err := conv.Convert(context.Background(), Input{Text: "\uFEFF# A\r\n\r\ntext\r\n"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.Body != "<h1>A</h1>\n<p>text</p>" {
		t.Errorf("Body = %q", result.Body)
	}
}

func TestConvert_EmptyText(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, WithTemplate(FragmentTemplate), WithStyle(""))
	result, err := conv.Convert(context.Background(), Input{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.Body != "" {
		t.Errorf("Body = %q, want empty", result.Body)
	}
}

func TestConvert_Highlighting(t *testing.T) {
	t.Parallel()

	text := "```go\nfunc main() {}\n```\n```\nplain <text>\n```"
	conv := newTestConverter(t, WithTemplate(FragmentTemplate), WithStyle(""), WithHighlighting("github"))

	result, err := conv.Convert(context.Background(), Input{Text: text})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.Contains(result.Body, `<pre class="chroma"><code class="language-go">`) {
		t.Errorf("go block not highlighted: %q", result.Body)
	}
	if !strings.Contains(result.Body, `<pre><code class="language-plaintext">plain &lt;text&gt;`+"\n</code></pre>") {
		t.Errorf("plaintext block changed: %q", result.Body)
	}
	if !strings.Contains(string(result.HTML), ".chroma") {
		t.Error("highlight CSS not injected")
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	t.Run("converter error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		conv := newTestConverter(t, withHTMLConverter(&mockHTMLConverter{err: boom}))
		_, err := conv.Convert(context.Background(), Input{Text: "x"})
		if !errors.Is(err, boom) {
			t.Errorf("Convert() error = %v, want wrapped boom", err)
		}
	})

	t.Run("render error", func(t *testing.T) {
		t.Parallel()

		conv := newTestConverter(t, withRenderer(&mockRenderer{err: errors.New("bad")}))
		_, err := conv.Convert(context.Background(), Input{Text: "x"})
		if !errors.Is(err, ErrRender) {
			t.Errorf("Convert() error = %v, want ErrRender", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		conv := newTestConverter(t)
		_, err := conv.Convert(ctx, Input{Text: "x"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Convert() error = %v, want context.Canceled", err)
		}
	})

	t.Run("panic recovered", func(t *testing.T) {
		t.Parallel()

		conv := newTestConverter(t, withHighlighter(panicHighlighter{}))
		_, err := conv.Convert(context.Background(), Input{Text: "x"})
		if err == nil || !strings.Contains(err.Error(), "internal error: boom") {
			t.Errorf("Convert() error = %v, want internal error", err)
		}
	})
}

func TestConvert_PassesDataToRenderer(t *testing.T) {
	t.Parallel()

	renderer := &mockRenderer{}
	conv := newTestConverter(t,
		withHTMLConverter(&mockHTMLConverter{output: "<p>mock</p>"}),
		withRenderer(renderer),
		WithStyle(""),
	)

	result, err := conv.Convert(context.Background(), Input{Text: "ignored", Title: "T"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if renderer.data.Title != "T" || string(renderer.data.Content) != "<p>mock</p>" {
		t.Errorf("renderer data = %+v", renderer.data)
	}
	if string(result.HTML) != "<head></head><p>mock</p>" {
		t.Errorf("HTML = %q", result.HTML)
	}
}

func TestConvert_ConcurrentUse(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, WithHighlighting(""))
	text := "# Doc\n\n```go\nx := 1\n```"

	want, err := conv.Convert(context.Background(), Input{Text: text})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := conv.Convert(context.Background(), Input{Text: text})
			if err != nil {
				errs <- err
				return
			}
			if string(got.HTML) != string(want.HTML) {
				errs <- errors.New("output differs between goroutines")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func TestJoinCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, extra, want string
	}{
		{"", "", ""},
		{"a", "", "a"},
		{"", "b", "b"},
		{"a", "b", "a\nb"},
	}
	for _, tt := range tests {
		if got := joinCSS(tt.base, tt.extra); got != tt.want {
			t.Errorf("joinCSS(%q, %q) = %q, want %q", tt.base, tt.extra, got, tt.want)
		}
	}
}

func TestConvertAssetError(t *testing.T) {
	t.Parallel()

	if convertAssetError(nil) != nil {
		t.Error("convertAssetError(nil) != nil")
	}

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}

	_, err = loader.LoadStyle("missing")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error = %q, want original message", err)
	}

	_, err = loader.LoadTemplate("missing")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
	}

	if _, err := NewAssetLoader(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("NewAssetLoader() error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestBuiltinAssets(t *testing.T) {
	t.Parallel()

	if got := BuiltinStyles(); strings.Join(got, ",") != "default,minimal" {
		t.Errorf("BuiltinStyles() = %v", got)
	}
	if got := BuiltinTemplates(); strings.Join(got, ",") != "default,fragment" {
		t.Errorf("BuiltinTemplates() = %v", got)
	}
}
