package ports

import "go.trai.ch/hdrview/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=decoder.go -destination=mocks/mock_decoder.go -package=mocks

// ImageDecoder decodes an image file into linear RGB floats.
type ImageDecoder interface {
	// Decode reads and decodes the image at path.
	Decode(path string) (*domain.ImageRGB32F, error)
}
