// Package registry keeps the compiled program of every registered shader up to
// date with its sources on disk.
package registry

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/hdrview/internal/adapters/fs"
	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports"
	"go.trai.ch/hdrview/internal/engine/artifact"
	"go.trai.ch/hdrview/internal/engine/compiler"
	"go.trai.ch/hdrview/internal/engine/preprocess"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Status is the compilation state of a registered shader.
type Status int

const (
	// StatusUnregistered means the key is not known to the registry.
	StatusUnregistered Status = iota
	// StatusRegistered means no compilation has been attempted yet.
	StatusRegistered
	// StatusCompiled means the latest sources compiled and linked.
	StatusCompiled
	// StatusFailed means the latest sources did not build. A previous program
	// may still be in use.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRegistered:
		return "registered"
	case StatusCompiled:
		return "compiled"
	case StatusFailed:
		return "failed"
	default:
		return "unregistered"
	}
}

const postambleFile = "<postamble>"

type shader struct {
	key        domain.ShaderKey
	stage      domain.Stage
	source     *artifact.Handle[*preprocess.Result]
	onCompiled func(domain.ProgramHandle)

	program domain.ProgramHandle
	// digest of the last sources handed to the compiler, valid when attempted.
	digest     uint64
	attempted  bool
	prepErr    error
	compileErr error
}

func (s *shader) status() Status {
	switch {
	case s.prepErr != nil || s.compileErr != nil:
		return StatusFailed
	case s.program != 0:
		return StatusCompiled
	default:
		return StatusRegistered
	}
}

// Registry maps logical shader paths to their current programs.
//
// Only CompileAll touches the driver, so the registry must be used from the
// goroutine that owns the GPU. Preprocessing runs on worker goroutines.
type Registry struct {
	cache     *artifact.Cache
	resolver  *fs.IncludeResolver
	driver    ports.ShaderDriver
	compiler  *compiler.Compiler
	logger    ports.Logger
	telemetry ports.Telemetry
	postamble string

	vertex  domain.ShaderHandle
	order   []domain.ShaderKey
	shaders map[domain.ShaderKey]*shader
}

// Option configures a Registry.
type Option func(*Registry)

// WithTelemetry records every compilation as a vertex of t.
func WithTelemetry(t ports.Telemetry) Option {
	return func(r *Registry) {
		r.telemetry = t
	}
}

// WithPostamble appends text after the sources of every fragment shader.
func WithPostamble(text string) Option {
	return func(r *Registry) {
		r.postamble = text
	}
}

// New creates a registry whose shaders live under root.
func New(cache *artifact.Cache, root string, driver ports.ShaderDriver, logger ports.Logger, opts ...Option) *Registry {
	r := &Registry{
		cache:    cache,
		resolver: fs.NewIncludeResolver(root),
		driver:   driver,
		compiler: compiler.New(driver),
		logger:   logger,
		shaders:  make(map[domain.ShaderKey]*shader),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers a fragment shader drawn with the shared fullscreen vertex
// stage. Adding a path twice returns the existing key.
func (r *Registry) Add(path string) domain.ShaderKey {
	return r.add(path, domain.StageFragment, nil)
}

// AddCompute registers a compute shader. onCompiled is called with the new
// program after every successful build.
func (r *Registry) AddCompute(path string, onCompiled func(domain.ProgramHandle)) domain.ShaderKey {
	return r.add(path, domain.StageCompute, onCompiled)
}

func (r *Registry) add(path string, stage domain.Stage, onCompiled func(domain.ProgramHandle)) domain.ShaderKey {
	logical := r.resolver.Logical(path)
	key := domain.NewShaderKey(logical)
	if _, ok := r.shaders[key]; ok {
		return key
	}

	desc := preprocess.Shader{Root: r.resolver.Root, Path: logical}
	r.shaders[key] = &shader{
		key:        key,
		stage:      stage,
		source:     artifact.NewHandle[*preprocess.Result](r.cache, desc),
		onCompiled: onCompiled,
	}
	r.order = append(r.order, key)
	return key
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []domain.ShaderKey {
	return slices.Clone(r.order)
}

// Program returns the current program of key. It stays valid until the next
// successful build of key or until key is removed.
func (r *Registry) Program(key domain.ShaderKey) (domain.ProgramHandle, bool) {
	s, ok := r.shaders[key]
	if !ok || s.program == 0 {
		return 0, false
	}
	return s.program, true
}

// Status returns the compilation state of key.
func (r *Registry) Status(key domain.ShaderKey) Status {
	s, ok := r.shaders[key]
	if !ok {
		return StatusUnregistered
	}
	return s.status()
}

// Err returns the error of the latest build of key, or nil.
func (r *Registry) Err(key domain.ShaderKey) error {
	s, ok := r.shaders[key]
	if !ok {
		return zerr.With(domain.ErrUnknownShader, "shader", key.String())
	}
	if s.prepErr != nil {
		return s.prepErr
	}
	return s.compileErr
}

// Remove unregisters key and deletes its program.
func (r *Registry) Remove(key domain.ShaderKey) {
	s, ok := r.shaders[key]
	if !ok {
		return
	}
	r.drop(s)
	delete(r.shaders, key)
	r.order = slices.DeleteFunc(r.order, func(k domain.ShaderKey) bool { return k == key })
}

// Close deletes every program and the shared vertex stage.
func (r *Registry) Close() {
	for _, s := range r.shaders {
		r.drop(s)
	}
	clear(r.shaders)
	r.order = nil
	if r.vertex != 0 {
		r.driver.DeleteShader(r.vertex)
		r.vertex = 0
	}
}

func (r *Registry) drop(s *shader) {
	s.source.Release()
	if s.program != 0 {
		r.driver.DeleteProgram(s.program)
		s.program = 0
	}
}

type preprocessed struct {
	result *preprocess.Result
	err    error
}

// CompileAll rebuilds every shader whose sources changed since the last call
// and reports whether any program was replaced. With nothing changed it costs
// one validity check per shader.
func (r *Registry) CompileAll(ctx context.Context) bool {
	var dirty []*shader
	for _, key := range r.order {
		if s := r.shaders[key]; !s.source.IsUpToDate() {
			dirty = append(dirty, s)
		}
	}
	if len(dirty) == 0 {
		return false
	}

	out := make([]preprocessed, len(dirty))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range dirty {
		g.Go(func() error {
			res, err := s.source.Eval(ctx)
			out[i] = preprocessed{result: res, err: err}
			return nil
		})
	}
	_ = g.Wait()

	changed := false
	for i, s := range dirty {
		if r.rebuild(ctx, s, out[i]) {
			changed = true
		}
	}
	return changed
}

func (r *Registry) rebuild(ctx context.Context, s *shader, in preprocessed) bool {
	if in.err != nil {
		s.prepErr = in.err
		r.logger.Error(in.err)
		return false
	}
	s.prepErr = nil

	name := "compile " + s.key.String()
	_, v := r.record(ctx, name)
	if s.attempted && s.digest == in.result.Digest {
		v.Cached()
		return false
	}
	s.attempted = true
	s.digest = in.result.Digest

	program, err := r.build(s, in.result)
	v.Complete(err)
	if err != nil {
		s.compileErr = zerr.With(err, "shader", s.key.String())
		_, _ = fmt.Fprintln(v.Stderr(), err)
		r.logger.Error(s.compileErr)
		return false
	}

	if s.program != 0 {
		r.driver.DeleteProgram(s.program)
	}
	s.program = program
	s.compileErr = nil
	r.logger.Info(fmt.Sprintf("compiled %s (%s)", s.key, s.stage))
	if s.onCompiled != nil {
		s.onCompiled(program)
	}
	return true
}

func (r *Registry) build(s *shader, res *preprocess.Result) (domain.ProgramHandle, error) {
	if s.stage == domain.StageCompute {
		return r.compiler.Build(domain.StageCompute, res.Chunks)
	}

	vs, err := r.vertexStage()
	if err != nil {
		return 0, err
	}
	chunks := res.Chunks
	if r.postamble != "" {
		text := r.postamble
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		chunks = append(slices.Clone(chunks), domain.NewSourceChunk(postambleFile, 0, text))
	}
	return r.compiler.Build(domain.StageFragment, chunks, vs)
}

// vertexStage compiles the driver's fullscreen vertex stage on first use.
func (r *Registry) vertexStage() (domain.ShaderHandle, error) {
	if r.vertex != 0 {
		return r.vertex, nil
	}
	src := r.driver.Dialect().FullscreenVertex
	vs, err := r.compiler.CompileStage(domain.StageVertex, []domain.SourceChunk{
		domain.NewSourceChunk("<fullscreen>", 0, src),
	})
	if err != nil {
		return 0, err
	}
	r.vertex = vs
	return vs, nil
}

func (r *Registry) record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	if r.telemetry == nil {
		return ctx, nopVertex{}
	}
	return r.telemetry.Record(ctx, name)
}
