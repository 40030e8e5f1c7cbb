package app

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/hdrview/internal/engine/images"
)

// ViewOptions overrides settings for one viewer run.
type ViewOptions struct {
	// Input is an image file or directory. Empty keeps the configured input.
	Input string
	// Shader selects the display shader, relative to the asset root. It is
	// registered if the configuration does not list it.
	Shader string
	// EV overrides the configured exposure when non-nil.
	EV *float32
	// Frames stops the viewer after that many frames. Zero runs until the
	// context is cancelled.
	Frames int
	// ConfigPath names a configuration file to use instead of hdrview.yaml.
	ConfigPath string
	// JSONLogs switches logging to JSON.
	JSONLogs bool
}

// View shows the input images through the selected shader, recompiling
// shaders as their sources change on disk.
func (a *App) View(ctx context.Context, opts ViewOptions) error {
	settings, err := a.settings(opts.ConfigPath, opts.JSONLogs)
	if err != nil {
		return err
	}
	if opts.Input != "" {
		settings.Images = opts.Input
	}
	if opts.EV != nil {
		settings.EV = *opts.EV
	}
	shaders := settings.Shaders
	if opts.Shader != "" && !slices.Contains(shaders, opts.Shader) {
		shaders = append(slices.Clone(shaders), opts.Shader)
	}

	paths, err := a.images.Images(settings.Images)
	if err != nil {
		return err
	}
	pool, err := images.New(paths, a.decoder, a.device, a.logger)
	if err != nil {
		return err
	}

	s, err := a.open(settings, true)
	if err != nil {
		pool.Close()
		return err
	}
	s.images = pool
	defer func() {
		if err := s.Close(); err != nil {
			a.logger.Error(err)
		}
	}()

	if err := s.addLUTs(settings.LUTs); err != nil {
		return err
	}
	for _, path := range shaders {
		key := s.registry.Add(path)
		if s.selected.Path.IsZero() || path == opts.Shader {
			s.selected = key
		}
	}

	a.logger.Info(fmt.Sprintf("viewing %s with %s", pool.Name(pool.Current()), s.selected))
	return s.run(ctx, settings.FrameInterval, opts.Frames)
}
