package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdlite/internal/config"
	"github.com/alnah/go-mdlite/internal/fileutil"
)

// DefaultOutputPath is the output written for the default source file.
const DefaultOutputPath = "output.html"

// ErrInvalidExtension indicates an input file that is not a text source.
var ErrInvalidExtension = errors.New("file must have .txt, .md or .markdown extension")

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all source files to convert.
// A file input must have a source extension; a directory is walked
// recursively and non-source files are skipped. A directory input needs an
// output directory, since every file would otherwise share one .html path.
func discoverFiles(inputPath, output string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if info.IsDir() && isHTMLFile(output) {
		return nil, fmt.Errorf("%w: output %q is a single file but input %q is a directory; pass an output directory",
			ErrUsage, output, inputPath)
	}

	if !info.IsDir() {
		if !fileutil.IsSourceFile(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath := resolveOutputPath(inputPath, output, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	sources := make(map[string]string) // output path -> first input mapped to it
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsSourceFile(path) {
			return nil
		}
		outPath := resolveOutputPath(path, output, inputPath)
		if prev, ok := sources[outPath]; ok {
			return fmt.Errorf("%w: %s and %s both convert to %s", ErrUsage, prev, path, outPath)
		}
		sources[outPath] = path
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// resolveOutputPath determines the HTML output path for a source file.
// An output ending in .html is a file; any other non-empty output is a
// directory mirroring the layout under baseInputDir.
func resolveOutputPath(inputPath, output, baseInputDir string) string {
	base := filepath.Base(fileutil.HTMLPath(inputPath))

	if output == "" {
		if filepath.Base(inputPath) == config.DefaultInputPath && baseInputDir == "" {
			return filepath.Join(filepath.Dir(inputPath), DefaultOutputPath)
		}
		return fileutil.HTMLPath(inputPath)
	}

	if isHTMLFile(output) {
		return output
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(output, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(output, base)
}

// isHTMLFile reports whether output names a single .html file.
func isHTMLFile(output string) bool {
	return strings.EqualFold(filepath.Ext(output), fileutil.HTMLExtension)
}
