package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	mdlite "github.com/alnah/go-mdlite"
	"github.com/alnah/go-mdlite/internal/fileutil"
	"github.com/alnah/go-mdlite/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput     = errors.New("no input files found")
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write HTML file")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input mdlite.Input) (*mdlite.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*mdlite.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	HTML       []byte // Rendered document, kept for --print
	Err        error
	Duration   time.Duration
}

// batchParams groups values shared by every file of a batch.
type batchParams struct {
	title   string
	workers int
	keep    bool // Keep rendered HTML in results
}

// convertBatch processes files concurrently with a bounded number of
// goroutines. The converter is shared: it holds no per-call state.
// Results keep the order of files.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, params batchParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(params.workers, 1), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = ConversionResult{
						InputPath:  files[idx].InputPath,
						OutputPath: files[idx].OutputPath,
						Err:        err,
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params batchParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadInput, err))
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory()))
	}

	convResult, err := conv.Convert(ctx, mdlite.Input{
		Text:       string(content),
		Title:      params.title,
		SourceName: f.InputPath,
	})
	if err != nil {
		return fail(err)
	}

	// #nosec G306 -- HTML files are meant to be readable
	if err := fileutil.WriteFileAtomic(f.OutputPath, convResult.HTML, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}

	if params.keep {
		result.HTML = convResult.HTML
	}
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results. With printDocs set, each rendered
// document goes to stdout and progress lines go to stderr.
func printResults(results []ConversionResult, quiet, verbose, printDocs bool, env *Environment) int {
	summary := countResults(results)

	progress := env.Stdout
	if printDocs {
		progress = env.Stderr
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if printDocs {
			_, _ = env.Stdout.Write(r.HTML)
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(progress, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(progress, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(progress, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
