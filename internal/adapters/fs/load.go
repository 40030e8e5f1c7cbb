// Package fs provides file system adapters: watched file artifacts, include
// path resolution and image discovery.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/engine/artifact"
	"go.trai.ch/zerr"
)

var _ artifact.Worker[Contents] = Load{}

// Contents is the output of a Load: the raw bytes of a file and their digest.
type Contents struct {
	Data   []byte
	Digest uint64
}

// Load is a cache descriptor that reads a file and invalidates itself when the
// file is written. Two Loads are the same cache entry iff their paths are equal,
// so construct them with NewLoad.
type Load struct {
	Path string
}

// NewLoad returns a Load for the canonical form of path.
func NewLoad(path string) (Load, error) {
	canonical, err := Canonicalize(path)
	if err != nil {
		return Load{}, err
	}
	return Load{Path: canonical}, nil
}

// Run registers the watch before reading so that a write between the two is
// never lost.
func (l Load) Run(rc *artifact.RunContext) (Contents, error) {
	if err := rc.WatchPath(l.Path); err != nil {
		return Contents{}, err
	}
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return Contents{}, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", l.Path)
	}
	return Contents{Data: data, Digest: xxhash.Sum64(data)}, nil
}

func (l Load) String() string {
	return "load(" + l.Path + ")"
}

// Canonicalize returns the absolute, symlink-free form of path. A file that does
// not exist yet is resolved through its parent directory, so it can still be
// watched and picked up once created.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPathResolveFailed.Error()), "path", path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, iofs.ErrNotExist) {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPathResolveFailed.Error()), "path", path)
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPathResolveFailed.Error()), "path", path)
	}
	return filepath.Join(dir, filepath.Base(abs)), nil
}

// FirstMissing returns the canonical form of the shallowest missing component
// of path, whose parent directory exists. Creating it is the first step towards
// path existing, so watching it catches a missing directory being created.
func FirstMissing(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	for p := abs; ; {
		parent := filepath.Dir(p)
		if parent == p {
			return "", false
		}
		if _, err := os.Stat(parent); err == nil {
			if _, err := os.Lstat(p); err == nil {
				return "", false
			}
			c, err := Canonicalize(p)
			return c, err == nil
		}
		p = parent
	}
}
