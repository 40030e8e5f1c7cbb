// Package app implements the hdrview application layer.
package app

import (
	"time"

	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports"
)

// Uniform names bound by the viewer when a display shader declares them.
const (
	TextureUniform = "input_texture"
	EVUniform      = "input_ev"
)

// Device is the GPU the viewer compiles and draws with.
type Device interface {
	ports.ShaderDriver
	ports.RenderDevice
}

// ImageLister expands an image input into the image files it names.
type ImageLister interface {
	Images(input string) ([]string, error)
}

// WatcherFactory creates a path watcher with the given debounce window.
type WatcherFactory func(window time.Duration) (ports.PathWatcher, error)

// App represents the main application logic.
type App struct {
	loader    ports.ConfigLoader
	logger    ports.Logger
	watchers  WatcherFactory
	images    ImageLister
	decoder   ports.ImageDecoder
	device    Device
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	watchers WatcherFactory,
	images ImageLister,
	decoder ports.ImageDecoder,
	device Device,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:    loader,
		logger:    logger,
		watchers:  watchers,
		images:    images,
		decoder:   decoder,
		device:    device,
		telemetry: telemetry,
	}
}

// settings loads the configuration at configPath, or hdrview.yaml in the
// working directory when configPath is empty.
func (a *App) settings(configPath string, jsonLogs bool) (*domain.Settings, error) {
	var (
		s   *domain.Settings
		err error
	)
	if configPath != "" {
		s, err = a.loader.LoadFile(configPath)
	} else {
		s, err = a.loader.Load(".")
	}
	if err != nil {
		return nil, err
	}
	if jsonLogs {
		s.JSONLogs = true
	}
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok && s.JSONLogs {
		l.SetJSON(true)
	}
	return s, nil
}
