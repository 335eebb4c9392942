// Package mdlite converts a small, fixed lightweight markup syntax to HTML.
//
// # Quick Start
//
// Convert text to HTML fragments with the pure core function:
//
//	html := mdlite.ToHTML("# Hello\n\nSome `code` here.")
//	// <h1>Hello</h1>
//	// <p>Some <code>code</code> here.</p>
//
// Or render a complete document with a template and stylesheet:
//
//	conv, err := mdlite.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mdlite.Input{
//	    Text:       source,
//	    SourceName: "notes.txt",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("notes.html", result.HTML, 0644)
//
// # Syntax
//
// Each line is classified on its own, in this order:
//
//  1. A line starting with ``` opens or closes a fenced code block. The word
//     characters right after the backticks name the language.
//  2. Inside a code block every line is literal code, escaped.
//  3. A line equal to --- is a horizontal rule.
//  4. A line starting with # is a header; the number of # is the level.
//  5. Any other non-empty line is paragraph text; `spans` become inline code.
//  6. A blank line ends the current paragraph.
//
// Header and paragraph text is emitted as is. Only code content is escaped.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := mdlite.NewConverter(
//	    mdlite.WithTemplate("fragment"),
//	    mdlite.WithStyle("minimal"),
//	    mdlite.WithAssetPath("/path/to/custom/assets"),
//	    mdlite.WithHighlighting("monokai"),
//	)
//
// Templates are html/template documents that insert {{.Content}} and may use
// {{.Title}}. The title is Input.Title, else the first level-1 header, else
// the source file name.
//
// # Custom Assets
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom.html
//
// Names missing from the directory fall back to the embedded assets.
package mdlite
