// Package preprocess expands include directives in shader sources into an
// ordered list of source chunks that remember where each line came from.
package preprocess

import (
	"errors"
	iofs "io/fs"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hdrview/internal/adapters/fs"
	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/engine/artifact"
	"go.trai.ch/zerr"
)

var _ artifact.Worker[*Result] = Shader{}

var includeRe = regexp.MustCompile(`^[ \t]*#include[ \t]+"([^"]*)"`)

// Shader is a cache descriptor for the preprocessed form of the shader at the
// logical path Path under Root.
type Shader struct {
	Root string
	Path string
}

// Result is the output of a Shader.
type Result struct {
	// Name is the file stem of the entry shader.
	Name string
	// Chunks lists the expanded source in depth-first textual order.
	Chunks []domain.SourceChunk
	// Digest identifies the expanded text together with its provenance.
	Digest uint64
}

// Source returns the concatenated text of all chunks.
func (r *Result) Source() string {
	return domain.JoinSources(r.Chunks)
}

// Run loads the entry file and every file it includes through the cache, so
// writing any of them invalidates the result.
func (s Shader) Run(rc *artifact.RunContext) (*Result, error) {
	x := &expander{
		rc:       rc,
		resolver: fs.NewIncludeResolver(s.Root),
	}
	if err := x.expand(s.Path, "", ""); err != nil {
		return nil, zerr.With(err, "shader", s.Path)
	}
	return &Result{
		Name:   stem(s.Path),
		Chunks: x.chunks,
		Digest: digest(x.chunks),
	}, nil
}

func (s Shader) String() string {
	return "preprocess(" + s.Path + ")"
}

type expander struct {
	rc       *artifact.RunContext
	resolver *fs.IncludeResolver
	stack    []frame
	chunks   []domain.SourceChunk
}

// frame is one file on the include stack. Cycles are detected on the
// canonical path so that aliases of one file are recognised.
type frame struct {
	logical   string
	canonical string
}

func (x *expander) expand(logical, includer, token string) error {
	physical := x.resolver.Physical(logical)
	load, err := fs.NewLoad(physical)
	if err != nil {
		if missing, ok := fs.FirstMissing(physical); ok {
			if werr := x.rc.WatchPath(missing); werr != nil {
				return werr
			}
		}
		return x.loadError(err, includer, token)
	}
	if slices.ContainsFunc(x.stack, func(f frame) bool { return f.canonical == load.Path }) {
		return zerr.With(domain.ErrIncludeCycle, "chain", x.chain(logical))
	}

	contents, err := artifact.Require[fs.Contents](x.rc, load)
	if err != nil {
		return x.loadError(err, includer, token)
	}
	if !utf8.Valid(contents.Data) {
		return zerr.With(domain.ErrInvalidSourceEncoding, "path", logical)
	}

	x.stack = append(x.stack, frame{logical: logical, canonical: load.Path})
	defer func() { x.stack = x.stack[:len(x.stack)-1] }()

	var buf strings.Builder
	start, n := 0, 0
	for line := range strings.Lines(string(contents.Data)) {
		n++
		m := includeRe.FindStringSubmatch(line)
		if m == nil {
			buf.WriteString(line)
			continue
		}
		x.flush(logical, start, &buf)
		if err := x.expand(x.resolver.Resolve(m[1], logical), logical, m[1]); err != nil {
			return err
		}
		start = n
	}
	x.flush(logical, start, &buf)
	return nil
}

func (x *expander) loadError(err error, includer, token string) error {
	if includer == "" {
		return err
	}
	if errors.Is(err, iofs.ErrNotExist) {
		err = zerr.Wrap(err, domain.ErrIncludeNotFound.Error())
	}
	return zerr.With(zerr.With(err, "include", token), "includer", includer)
}

func (x *expander) chain(logical string) string {
	names := make([]string, 0, len(x.stack)+1)
	for _, f := range x.stack {
		names = append(names, f.logical)
	}
	return strings.Join(append(names, logical), " -> ")
}

func (x *expander) flush(logical string, offset int, buf *strings.Builder) {
	if buf.Len() == 0 {
		return
	}
	src := buf.String()
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	x.chunks = append(x.chunks, domain.NewSourceChunk(logical, offset, src))
	buf.Reset()
}

func stem(p string) string {
	base := path.Base(p)
	if s := strings.TrimSuffix(base, path.Ext(base)); s != "" {
		return s
	}
	return "unknown"
}

func digest(chunks []domain.SourceChunk) uint64 {
	h := xxhash.New()
	for _, c := range chunks {
		_, _ = h.WriteString(c.File.String())
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(strconv.Itoa(c.LineOffset))
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(c.Source)
		_, _ = h.WriteString("\x00")
	}
	return h.Sum64()
}
