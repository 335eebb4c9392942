package mdlite

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdlite/internal/assets"
	"github.com/alnah/go-mdlite/internal/fileutil"
	"github.com/alnah/go-mdlite/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.SourcePreprocessor = (*pipeline.TextPreprocessor)(nil)
	_ pipeline.HTMLConverter      = (*pipeline.LineConverter)(nil)
	_ pipeline.CodeHighlighter    = (*pipeline.ChromaHighlighter)(nil)
	_ pipeline.DocumentRenderer   = (*pipeline.TemplateRenderer)(nil)
	_ pipeline.CSSInjector        = (*pipeline.CSSInjection)(nil)
)

// Converter orchestrates the text-to-HTML conversion pipeline.
// It is immutable after NewConverter returns and safe for concurrent use.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.SourcePreprocessor
	htmlConverter     pipeline.HTMLConverter
	highlighter       pipeline.CodeHighlighter // nil when highlighting is off
	renderer          pipeline.DocumentRenderer
	cssInjector       pipeline.CSSInjector
}

// NewConverter creates a Converter using the embedded default template and
// style. Use options to customize behavior (e.g., WithStyle, WithTemplate).
// Returns error if asset loading, template parsing or style lookup fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{styleInput: DefaultStyle},
		assetLoader:   assets.NewEmbeddedLoader(),
		preprocessor:  &pipeline.TextPreprocessor{},
		htmlConverter: &pipeline.LineConverter{},
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, convertAssetError(err)
		}
		c.assetLoader = resolver
	}

	// A public AssetLoader has the same method set as the internal one.
	if c.publicAssetLoader != nil {
		c.assetLoader = c.publicAssetLoader
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if c.renderer == nil {
		if err := c.resolveTemplate(); err != nil {
			return nil, err
		}
	}

	if c.cfg.highlight && c.highlighter == nil {
		h, err := pipeline.NewChromaHighlighter(c.cfg.highlightStyle)
		if err != nil {
			if errors.Is(err, pipeline.ErrHighlightStyle) {
				return nil, fmt.Errorf("%w: %q", ErrHighlightStyle, c.cfg.highlightStyle)
			}
			return nil, err
		}
		c.highlighter = h
	}

	return c, nil
}

// Convert runs the full pipeline: preprocessing, conversion, optional
// highlighting, template rendering and CSS injection.
// Empty text is valid and renders an empty body.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := c.preprocessor.Preprocess(ctx, input.Text)

	body, err := c.htmlConverter.ToHTML(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if c.highlighter != nil {
		body = c.highlighter.Highlight(ctx, body)
	}

	title := resolveTitle(input, text)
	doc, err := c.renderer.Render(ctx, &pipeline.DocumentData{
		Title:   title,
		Content: template.HTML(body), // #nosec G203 -- converter output, code contexts escaped
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	// Order matters: converter style first (base), highlight classes next,
	// user CSS last (can override).
	css := c.cfg.resolvedStyle
	if c.highlighter != nil {
		css = joinCSS(css, c.highlighter.CSS())
	}
	css = joinCSS(css, input.CSS)
	if css != "" {
		doc = c.cssInjector.InjectCSS(ctx, doc, css)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &ConvertResult{
		Body:  body,
		HTML:  []byte(doc),
		Title: title,
	}, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// Called during NewConverter after options are applied and the asset loader is configured.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrStyleNotFound, input)
			}
			return fmt.Errorf("%w: style file %q: %v", ErrAssetRead, input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	c.cfg.resolvedStyle = css
	return nil
}

// resolveTemplate loads the template by path or name and parses it.
func (c *Converter) resolveTemplate() error {
	input := c.cfg.templateInput
	if input == "" {
		input = DefaultTemplate
	}

	var content string
	if fileutil.IsFilePath(input) {
		data, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrTemplateNotFound, input)
			}
			return fmt.Errorf("%w: template file %q: %v", ErrAssetRead, input, err)
		}
		content = string(data)
	} else {
		var err error
		content, err = c.assetLoader.LoadTemplate(input)
		if err != nil {
			return fmt.Errorf("loading template %q: %w", input, convertAssetError(err))
		}
	}

	renderer, err := pipeline.NewTemplateRenderer(content)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidTemplate, input, err)
	}
	c.renderer = renderer
	return nil
}

// resolveTitle picks the document title: explicit title, then the first
// level-1 header, then the source file name, then DefaultTitle.
func resolveTitle(input Input, text string) string {
	if title := strings.TrimSpace(input.Title); title != "" {
		return title
	}
	if heading := pipeline.FirstHeading(text); heading != "" {
		return heading
	}
	if input.SourceName != "" {
		base := filepath.Base(input.SourceName)
		if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" && name != "." {
			return name
		}
	}
	return pipeline.DefaultTitle
}

// joinCSS concatenates non-empty stylesheets with a newline.
func joinCSS(base, extra string) string {
	switch {
	case extra == "":
		return base
	case base == "":
		return extra
	default:
		return base + "\n" + extra
	}
}
