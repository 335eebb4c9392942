package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FilesystemLoader serves an asset tree on disk laid out as
// {root}/styles/{name}.css and {root}/templates/{name}.html. Every path it
// reads, after symlinks are followed, stays below root.
type FilesystemLoader struct {
	root string // absolute, symlinks resolved
}

// NewFilesystemLoader opens dir as an asset tree. It fails with
// ErrInvalidBasePath unless dir is a readable directory.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	root, err := realPath(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidBasePath, root)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, root)
	}
	if _, err := os.ReadDir(root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	return &FilesystemLoader{root: root}, nil
}

func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	return f.read(styleKind, name)
}

func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	return f.read(templateKind, name)
}

func (f *FilesystemLoader) read(kind assetKind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	file, err := f.contain(filepath.Join(f.root, filepath.FromSlash(kind.slashPath(name))))
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(file) // #nosec G304 -- contained under root
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", kind.missing(name)
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(data), nil
}

// contain returns file with symlinks resolved, or ErrPathTraversal when the
// result is not below root. A missing file is checked as written and left
// for the read to report.
func (f *FilesystemLoader) contain(file string) (string, error) {
	resolved, err := realPath(file)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPathTraversal, err)
	}
	rel, err := filepath.Rel(f.root, resolved)
	if err != nil || rel == "." || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %s", ErrPathTraversal, file)
	}
	return resolved, nil
}

// realPath makes path absolute and follows its symlinks when it exists.
func realPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

var _ AssetLoader = (*FilesystemLoader)(nil)
