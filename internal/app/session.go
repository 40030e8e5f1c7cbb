package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports"
	"go.trai.ch/hdrview/internal/engine/artifact"
	"go.trai.ch/hdrview/internal/engine/images"
	"go.trai.ch/hdrview/internal/engine/lut"
	"go.trai.ch/hdrview/internal/engine/registry"
)

// session holds the per-run state built from one set of settings. All of it
// belongs to the goroutine that drives the frame loop.
type session struct {
	device Device
	logger ports.Logger

	watcher  ports.PathWatcher
	cache    *artifact.Cache
	registry *registry.Registry
	luts     *lut.Library
	images   *images.Pool

	selected domain.ShaderKey
	ev       float32
	redraw   bool
}

// open builds the cache and registry for settings. With watch set, file
// edits invalidate cached sources through a watcher.
func (a *App) open(settings *domain.Settings, watch bool) (*session, error) {
	policy, err := artifact.ParseEvictionPolicy(settings.Eviction)
	if err != nil {
		return nil, err
	}
	cacheOpts := []artifact.Option{artifact.WithEvictionPolicy(policy)}

	s := &session{device: a.device, logger: a.logger, ev: settings.EV, redraw: true}
	if watch {
		w, err := a.watchers(settings.Debounce)
		if err != nil {
			return nil, err
		}
		s.watcher = w
		cacheOpts = append(cacheOpts, artifact.WithPathWatcher(w))
	}
	s.cache = artifact.New(cacheOpts...)

	regOpts := []registry.Option{registry.WithPostamble(settings.Postamble)}
	if a.telemetry != nil {
		regOpts = append(regOpts, registry.WithTelemetry(a.telemetry))
	}
	s.registry = registry.New(s.cache, settings.AssetRoot, a.device, a.logger, regOpts...)
	s.luts = lut.New(s.registry, a.device, a.device, a.logger)
	return s, nil
}

func (s *session) addLUTs(descs []domain.LutDesc) error {
	for _, d := range descs {
		if err := s.luts.Add(d); err != nil {
			return err
		}
	}
	return nil
}

// run drives the frame loop until ctx is done or frames frames were shown.
// A frames value of zero means no limit.
func (s *session) run(ctx context.Context, interval time.Duration, frames int) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 1; ; n++ {
		s.frame(ctx)
		if frames > 0 && n >= frames {
			return nil
		}
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *session) frame(ctx context.Context) {
	if s.registry.CompileAll(ctx) {
		s.redraw = true
	}
	if !s.redraw {
		return
	}
	s.redraw = false
	s.draw()
}

func (s *session) draw() {
	program, ok := s.registry.Program(s.selected)
	if !ok {
		s.device.Clear(domain.ColorNoShader)
		return
	}
	texture, ok := s.images.Texture(s.images.Current())
	if !ok {
		s.device.Clear(domain.ColorNoTexture)
		return
	}

	d := domain.Draw{
		Program:  program,
		Samplers: make(map[int32]domain.TextureHandle),
		Uniforms: make(map[int32]float32),
	}
	if loc := s.device.UniformLocation(program, TextureUniform); loc >= 0 {
		d.Samplers[loc] = texture
	}
	if loc := s.device.UniformLocation(program, EVUniform); loc >= 0 {
		d.Uniforms[loc] = s.ev
	}
	for _, name := range s.luts.Names() {
		tex, ok := s.luts.Texture(name)
		if !ok {
			continue
		}
		if loc := s.device.UniformLocation(program, name); loc >= 0 {
			d.Samplers[loc] = tex
		}
	}
	if err := s.device.DrawFullscreen(d); err != nil {
		s.logger.Error(err)
	}
}

func (s *session) Close() error {
	s.luts.Close()
	s.registry.Close()
	if s.images != nil {
		s.images.Close()
	}
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
