package mdlite

// Input holds the content and per-conversion settings for Convert.
type Input struct {
	Text       string // Source text in the lightweight markup syntax
	Title      string // Document title; empty = first level-1 header, then SourceName
	CSS        string // Extra CSS applied after the converter style
	SourceName string // Source file name, used for the title fallback
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	Body  string // Converted fragments, highlighted when enabled
	HTML  []byte // Body rendered into the document template, with CSS
	Title string // Title passed to the template
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the option values resolved by NewConverter.
type converterConfig struct {
	templateInput  string // Name or path; empty = DefaultTemplate
	styleInput     string // Name, path or CSS; empty = no style
	assetPath      string
	highlightStyle string
	highlight      bool
	resolvedStyle  string
}

// WithTemplate sets the document template by name or file path.
// A value containing a path separator is read from disk; any other value is
// loaded from the asset loader. An empty value selects DefaultTemplate.
func WithTemplate(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.templateInput = nameOrPath
	}
}

// WithStyle sets the document CSS by name, file path, or CSS content.
// An empty value disables the converter style.
func WithStyle(nameOrPathOrCSS string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPathOrCSS
	}
}

// WithAssetPath loads styles and templates from dir, falling back to the
// embedded assets for names dir does not provide.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithHighlighting enables syntax highlighting of fenced code blocks using
// the named chroma style. An empty style selects "github".
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}
