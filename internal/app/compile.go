package app

import (
	"context"
	"fmt"

	"go.trai.ch/hdrview/internal/core/domain"
)

// CompileOptions configures a one-shot compilation.
type CompileOptions struct {
	// ConfigPath names a configuration file to use instead of hdrview.yaml.
	ConfigPath string
	// JSONLogs switches logging to JSON.
	JSONLogs bool
}

// Compile preprocesses and compiles shaders once and logs their remapped
// diagnostics. Without shaders it compiles every configured display and LUT
// shader. It returns domain.ErrShaderCompileAll if any shader failed.
func (a *App) Compile(ctx context.Context, shaders []string, opts CompileOptions) error {
	settings, err := a.settings(opts.ConfigPath, opts.JSONLogs)
	if err != nil {
		return err
	}

	s, err := a.open(settings, false)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			a.logger.Error(err)
		}
	}()

	if len(shaders) == 0 {
		shaders = settings.Shaders
		if err := s.addLUTs(settings.LUTs); err != nil {
			return err
		}
	}
	for _, path := range shaders {
		s.registry.Add(path)
	}
	s.registry.CompileAll(ctx)

	keys := s.registry.Keys()
	failed := 0
	for _, key := range keys {
		if s.registry.Err(key) != nil {
			failed++
		}
	}
	if failed > 0 {
		a.logger.Warn(fmt.Sprintf("%d of %d shaders failed to compile", failed, len(keys)))
		return domain.ErrShaderCompileAll
	}
	return nil
}
