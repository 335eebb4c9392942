package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdlite/internal/fileutil"
	"github.com/alnah/go-mdlite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrMissingField    = errors.New("required field is empty")
)

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxTitleLength     = 200
	MaxStyleNameLength = 50
)

// Default values applied before a config file is decoded.
const (
	DefaultInputPath      = "source.txt"
	DefaultTemplate       = "default"
	DefaultStyle          = "default"
	DefaultHighlightStyle = "github"
)

// configDirName is the directory searched under os.UserConfigDir.
const configDirName = "go-mdlite"

// Config holds all configuration for document generation.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Template  string          `yaml:"template"` // Name or path to an .html template
	Style     string          `yaml:"style"`    // Name or path to a .css file (empty = no CSS)
	Highlight HighlightConfig `yaml:"highlight"`
	Document  DocumentConfig  `yaml:"document"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// InputConfig defines the input source.
type InputConfig struct {
	Path string `yaml:"path"` // File or directory
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	Path string `yaml:"path"` // Empty = derived from input
}

// HighlightConfig defines code block highlighting.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // Chroma style name
}

// DocumentConfig defines document metadata.
type DocumentConfig struct {
	Title string `yaml:"title"` // Empty = first level-1 header, then file name
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks field lengths. Called by LoadConfig, but available for
// callers that construct a Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.path", c.Input.Path, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"template", c.Template, MaxPathLength},
		{"style", c.Style, MaxPathLength},
		{"highlight.style", c.Highlight.Style, MaxStyleNameLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Highlight.Enabled && strings.TrimSpace(c.Highlight.Style) == "" {
		return fmt.Errorf("%w: highlight.style (required when highlight is enabled)", ErrMissingField)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:     InputConfig{Path: DefaultInputPath},
		Template:  DefaultTemplate,
		Style:     DefaultStyle,
		Highlight: HighlightConfig{Enabled: false, Style: DefaultHighlightStyle},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Dump renders cfg as YAML.
func Dump(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// SearchPaths returns the locations tried for a config name, in order:
// the current directory, then the user config directory (.yaml before .yml).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
