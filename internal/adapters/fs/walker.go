package fs

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/zerr"
)

// ImagePattern matches the image files picked up from an input directory.
const ImagePattern = "*.{exr,hdr}"

// Walker discovers image inputs.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Images lists the image files named by input. A file is returned as is; a
// directory yields its direct children matching ImagePattern in lexical order.
func (w *Walker) Images(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", input)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(input), ImagePattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list images"), "path", input)
	}
	sort.Strings(matches)

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(input, filepath.FromSlash(m)))
	}
	return paths, nil
}
