// Package lut maintains one-dimensional lookup tables generated on the GPU by
// compute shaders. A table is regenerated whenever its shader recompiles.
package lut

import (
	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports"
	"go.trai.ch/hdrview/internal/engine/registry"
	"go.trai.ch/zerr"
)

// OutputUniform is the storage texture a LUT shader writes to.
const OutputUniform = "output_image"

type table struct {
	desc    domain.LutDesc
	texture domain.TextureHandle
	key     domain.ShaderKey
}

// Library owns the LUT textures and registers their shaders with a registry.
type Library struct {
	registry *registry.Registry
	driver   ports.ShaderDriver
	device   ports.RenderDevice
	logger   ports.Logger
	tables   []*table
}

// New creates an empty library.
func New(reg *registry.Registry, driver ports.ShaderDriver, device ports.RenderDevice, logger ports.Logger) *Library {
	return &Library{registry: reg, driver: driver, device: device, logger: logger}
}

// Add allocates the texture for desc and registers its compute shader. The
// table is filled the first time the shader compiles.
func (l *Library) Add(desc domain.LutDesc) error {
	tex, err := l.device.CreateTexture1D(desc.Width)
	if err != nil {
		return zerr.With(err, "lut", desc.Name)
	}
	t := &table{desc: desc, texture: tex}
	t.key = l.registry.AddCompute(desc.ShaderPath, func(program domain.ProgramHandle) {
		l.compute(t, program)
	})
	l.tables = append(l.tables, t)
	return nil
}

// Texture returns the texture of the table called name.
func (l *Library) Texture(name string) (domain.TextureHandle, bool) {
	for _, t := range l.tables {
		if t.desc.Name == name {
			return t.texture, true
		}
	}
	return 0, false
}

// Names returns the table names in registration order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.tables))
	for _, t := range l.tables {
		names = append(names, t.desc.Name)
	}
	return names
}

func (l *Library) compute(t *table, program domain.ProgramHandle) {
	if l.driver.UniformLocation(program, OutputUniform) == -1 {
		l.logger.Warn("lut " + t.desc.Name + ": shader has no " + OutputUniform)
		return
	}
	size := l.driver.WorkGroupSize(program)
	groups := [3]uint32{divUp(t.desc.Width, max(size[0], 1)), 1, 1}
	if err := l.device.Dispatch(program, t.texture, groups); err != nil {
		l.logger.Error(zerr.With(err, "lut", t.desc.Name))
		return
	}
	l.logger.Info("computed lut " + t.desc.Name)
}

// Close deletes the LUT textures. Their shaders are owned by the registry.
func (l *Library) Close() {
	for _, t := range l.tables {
		l.device.DeleteTexture(t.texture)
	}
	l.tables = nil
}

func divUp(a, b uint32) uint32 {
	return (a + b - 1) / b
}
