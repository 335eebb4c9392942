package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	mdlite "github.com/alnah/go-mdlite"
	"github.com/alnah/go-mdlite/internal/config"
	"github.com/alnah/go-mdlite/internal/hints"
	"github.com/alnah/go-mdlite/internal/pipeline"
)

// highlightHintCount bounds the style names suggested for an unknown
// highlight style.
const highlightHintCount = 6

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(positionalArgs) > 1 {
		return fmt.Errorf("%w: expected at most one input, got %d", ErrUsage, len(positionalArgs))
	}

	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath := cfg.Input.Path
	if len(positionalArgs) == 1 {
		inputPath = positionalArgs[0]
	}
	if inputPath == "" {
		return fmt.Errorf("%w: pass a file or directory, or set input.path", ErrUsage)
	}

	output := cfg.Output.Path
	if flags.output != "" {
		output = flags.output
	}

	files, err := discoverFiles(inputPath, output)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("discovering files: %w%s", err, hints.ForInputNotFound(inputPath))
		}
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoInput, inputPath)
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return withConverterHint(err)
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers, len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d file(s) with %d worker(s)\n", len(files), workers)
	}

	results := convertBatch(ctx, conv, files, batchParams{
		title:   cfg.Document.Title,
		workers: workers,
		keep:    flags.print,
	})

	// A single failing file reports its own error and exit code.
	if len(results) == 1 && results[0].Err != nil {
		return fmt.Errorf("%s: %w", results[0].InputPath, results[0].Err)
	}

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, flags.print, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// loadConfig loads the config named by flag, then MDLITE_CONFIG, falling
// back to defaults, and applies environment overrides.
func loadConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.assets.template != "" {
		cfg.Template = flags.assets.template
	}
	if flags.assets.style != "" {
		cfg.Style = flags.assets.style
	}
	if flags.assets.noStyle {
		cfg.Style = ""
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.highlight != "" {
		cfg.Highlight.Enabled = true
		cfg.Highlight.Style = flags.highlight
	}
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
}

// newConverter builds the converter shared by all batch workers.
func newConverter(cfg *config.Config) (*mdlite.Converter, error) {
	opts := []mdlite.Option{
		mdlite.WithTemplate(cfg.Template),
		mdlite.WithStyle(cfg.Style),
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, mdlite.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Highlight.Enabled {
		opts = append(opts, mdlite.WithHighlighting(cfg.Highlight.Style))
	}
	return mdlite.NewConverter(opts...)
}

// withConverterHint appends an actionable hint to converter setup errors.
func withConverterHint(err error) error {
	var hint string
	switch {
	case errors.Is(err, mdlite.ErrStyleNotFound):
		hint = hints.ForStyleNotFound(mdlite.BuiltinStyles())
	case errors.Is(err, mdlite.ErrTemplateNotFound):
		hint = hints.ForTemplateNotFound(mdlite.BuiltinTemplates())
	case errors.Is(err, pipeline.ErrTemplateNoContent):
		hint = hints.ForTemplateNoContent()
	case errors.Is(err, mdlite.ErrHighlightStyle):
		names := pipeline.HighlightStyleNames()
		hint = hints.ForHighlightStyle(names[:min(len(names), highlightHintCount)])
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
