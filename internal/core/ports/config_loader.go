package ports

import "go.trai.ch/hdrview/internal/core/domain"

// ConfigLoader defines the interface for loading viewer settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file in dir. A missing file yields defaults.
	Load(dir string) (*domain.Settings, error)
	// LoadFile reads the configuration file at path, which must exist.
	LoadFile(path string) (*domain.Settings, error)
}
