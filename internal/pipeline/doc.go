// Package pipeline implements the text-to-HTML conversion pipeline.
//
// The stages are:
//   - Source preprocessing (byte order mark, line endings)
//   - Line scanning: headers, horizontal rules, fenced code blocks,
//     paragraphs and inline code to HTML fragments
//   - Optional code block highlighting via chroma
//   - Rendering the fragments into an html/template document
//   - CSS injection into the rendered document
//
// The line scanner (ToHTML) is pure: it never fails and keeps no state
// between calls. Everything after it is I/O-free string processing as
// well; file handling lives in internal/assets and the CLI.
package pipeline
