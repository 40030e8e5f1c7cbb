// Package images keeps the viewer's input images and decodes them on demand.
package images

import (
	"path/filepath"

	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports"
	"go.trai.ch/zerr"
)

type loadState uint8

const (
	notLoaded loadState = iota
	failedToLoad
	loaded
)

type image struct {
	path    string
	state   loadState
	texture domain.TextureHandle
}

// Pool is an ordered list of images with a current selection. Images are
// decoded and uploaded the first time their texture is requested. A failed
// load is logged once and not retried.
//
// Pool uploads textures, so it must be used from the goroutine that owns the GPU.
type Pool struct {
	decoder ports.ImageDecoder
	device  ports.RenderDevice
	logger  ports.Logger

	images  []*image
	current int
}

// New creates a pool over paths.
func New(paths []string, decoder ports.ImageDecoder, device ports.RenderDevice, logger ports.Logger) (*Pool, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoImages
	}
	p := &Pool{decoder: decoder, device: device, logger: logger}
	for _, path := range paths {
		p.images = append(p.images, &image{path: path})
	}
	return p, nil
}

// Len returns the number of images.
func (p *Pool) Len() int {
	return len(p.images)
}

// Current returns the index of the selected image.
func (p *Pool) Current() int {
	return p.current
}

// Name returns the file name of image i.
func (p *Pool) Name(i int) string {
	return filepath.Base(p.images[i].path)
}

// Next selects the following image, wrapping around. Next and Prev are the
// hooks for interactive image switching; the headless viewer has no key input
// and never calls them.
func (p *Pool) Next() {
	p.current = (p.current + 1) % len(p.images)
}

// Prev selects the preceding image, wrapping around.
func (p *Pool) Prev() {
	p.current = (p.current + len(p.images) - 1) % len(p.images)
}

// Texture returns the texture of image i, loading it if needed. It reports
// false when the image could not be loaded.
func (p *Pool) Texture(i int) (domain.TextureHandle, bool) {
	img := p.images[i]
	if img.state == notLoaded {
		img.state = failedToLoad
		if tex, err := p.load(img.path); err != nil {
			p.logger.Error(err)
		} else {
			img.texture = tex
			img.state = loaded
		}
	}
	return img.texture, img.state == loaded
}

func (p *Pool) load(path string) (domain.TextureHandle, error) {
	decoded, err := p.decoder.Decode(path)
	if err != nil {
		return 0, err
	}
	tex, err := p.device.CreateTexture2D(decoded)
	if err != nil {
		return 0, zerr.With(err, "path", path)
	}
	return tex, nil
}

// Close deletes every uploaded texture.
func (p *Pool) Close() {
	for _, img := range p.images {
		if img.state == loaded {
			p.device.DeleteTexture(img.texture)
		}
		img.state = notLoaded
		img.texture = 0
	}
}
