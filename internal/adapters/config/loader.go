// Package config loads viewer settings from hdrview.yaml.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a loader for domain.DefaultConfigFile.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{Filename: domain.DefaultConfigFile, logger: logger}
}

// Load reads the configuration file in dir. Without one, defaults rooted at
// dir are returned.
func (l *FileConfigLoader) Load(dir string) (*domain.Settings, error) {
	path := filepath.Join(dir, l.Filename)
	settings, err := LoadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		root, absErr := filepath.Abs(dir)
		if absErr != nil {
			return nil, zerr.With(zerr.Wrap(absErr, domain.ErrPathResolveFailed.Error()), "path", dir)
		}
		if l.logger != nil {
			l.logger.Info("no " + l.Filename + " found, using defaults")
		}
		settings := domain.DefaultSettings(root)
		settings.Images = filepath.Join(root, settings.Images)
		return settings, nil
	}
	return settings, err
}

// LoadFile reads the configuration file at path. Relative paths in it are
// resolved against the file's directory.
func (l *FileConfigLoader) LoadFile(path string) (*domain.Settings, error) {
	return LoadFile(path)
}

// LoadFile reads the configuration file at path.
func LoadFile(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathResolveFailed.Error()), "path", path)
	}
	settings, err := file.toSettings(dir)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return settings, nil
}

func (f *File) toSettings(dir string) (*domain.Settings, error) {
	s := domain.DefaultSettings(dir)

	if f.AssetRoot != "" {
		s.AssetRoot = resolve(dir, f.AssetRoot)
	}
	if f.Images != "" {
		s.Images = resolve(dir, f.Images)
	} else {
		s.Images = resolve(dir, s.Images)
	}
	if len(f.Shaders) > 0 {
		s.Shaders = f.Shaders
	}
	s.Postamble = f.Postamble
	if f.Watch.Debounce > 0 {
		s.Debounce = f.Watch.Debounce
	}
	if f.FrameInterval > 0 {
		s.FrameInterval = f.FrameInterval
	}
	if f.EV != nil {
		s.EV = *f.EV
	}

	switch f.Cache.Eviction {
	case "":
	case "retain", "refcount":
		s.Eviction = f.Cache.Eviction
	default:
		return nil, zerr.With(domain.ErrConfigParseFailed, "cache.eviction", f.Cache.Eviction)
	}

	switch f.Log.Format {
	case "", "pretty":
	case "json":
		s.JSONLogs = true
	default:
		return nil, zerr.With(domain.ErrConfigParseFailed, "log.format", f.Log.Format)
	}

	for _, lut := range f.LUTs {
		if lut.Name == "" || lut.Shader == "" || lut.Width == 0 {
			return nil, zerr.With(domain.ErrConfigParseFailed, "lut", lut.Name)
		}
		s.LUTs = append(s.LUTs, domain.LutDesc{Name: lut.Name, Width: lut.Width, ShaderPath: lut.Shader})
	}
	return s, nil
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
