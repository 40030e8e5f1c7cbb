package fs

import (
	"path"
	"path/filepath"
	"strings"
)

// IncludeResolver maps include directives to logical paths and logical paths to
// files on disk. Logical paths are slash separated and relative to Root.
type IncludeResolver struct {
	Root string
}

// NewIncludeResolver creates a resolver rooted at root.
func NewIncludeResolver(root string) *IncludeResolver {
	return &IncludeResolver{Root: root}
}

// Resolve returns the logical path named by an include token found in includer.
// Tokens are relative to the including file; a leading slash makes them relative
// to the root instead.
func (r *IncludeResolver) Resolve(include, includer string) string {
	include = filepath.ToSlash(include)
	if strings.HasPrefix(include, "/") {
		return path.Clean(strings.TrimLeft(include, "/"))
	}
	return path.Join(path.Dir(includer), include)
}

// Logical converts a user supplied path to its logical form. Paths outside the
// root keep their absolute form.
func (r *IncludeResolver) Logical(p string) string {
	if !filepath.IsAbs(p) {
		return path.Clean(filepath.ToSlash(p))
	}
	root, err := filepath.Abs(r.Root)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(p))
	}
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(filepath.Clean(p))
	}
	return filepath.ToSlash(rel)
}

// Physical returns the on-disk path of a logical path.
func (r *IncludeResolver) Physical(logical string) string {
	p := filepath.FromSlash(logical)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(r.Root, p)
}
