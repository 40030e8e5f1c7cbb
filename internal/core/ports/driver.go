package ports

import "go.trai.ch/hdrview/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=driver.go -destination=mocks/mock_driver.go -package=mocks

// ShaderDriver is the shader half of the GPU API surface.
// Implementations are not safe for concurrent use; all calls come from the
// goroutine that owns the GPU.
type ShaderDriver interface {
	// Dialect reports the source conventions of the driver.
	Dialect() domain.Dialect
	// CreateShader allocates an empty shader object for stage.
	CreateShader(stage domain.Stage) (domain.ShaderHandle, error)
	// ShaderSource replaces the source strings of shader.
	ShaderSource(shader domain.ShaderHandle, sources []string)
	// CompileShader compiles shader and reports success.
	CompileShader(shader domain.ShaderHandle) bool
	// ShaderInfoLog returns the diagnostics of the last compilation.
	ShaderInfoLog(shader domain.ShaderHandle) string
	// DeleteShader frees shader.
	DeleteShader(shader domain.ShaderHandle)
	// CreateProgram allocates an empty program object.
	CreateProgram() (domain.ProgramHandle, error)
	// AttachShader attaches shader to program.
	AttachShader(program domain.ProgramHandle, shader domain.ShaderHandle)
	// LinkProgram links program and reports success.
	LinkProgram(program domain.ProgramHandle) bool
	// ProgramInfoLog returns the diagnostics of the last link.
	ProgramInfoLog(program domain.ProgramHandle) string
	// DeleteProgram frees program.
	DeleteProgram(program domain.ProgramHandle)
	// UniformLocation returns the location of a uniform, or -1 if absent.
	UniformLocation(program domain.ProgramHandle, name string) int32
	// WorkGroupSize returns the local size of a linked compute program.
	WorkGroupSize(program domain.ProgramHandle) [3]uint32
}

// RenderDevice is the drawing half of the GPU API surface.
type RenderDevice interface {
	// CreateTexture2D uploads img as an RGB float texture.
	CreateTexture2D(img *domain.ImageRGB32F) (domain.TextureHandle, error)
	// CreateTexture1D allocates a writable one-dimensional RGBA float texture.
	CreateTexture1D(width uint32) (domain.TextureHandle, error)
	// DeleteTexture frees texture.
	DeleteTexture(texture domain.TextureHandle)
	// Clear fills the framebuffer with c.
	Clear(c domain.Color)
	// DrawFullscreen draws one fullscreen triangle.
	DrawFullscreen(draw domain.Draw) error
	// Dispatch runs a compute program with output bound as an image.
	Dispatch(program domain.ProgramHandle, output domain.TextureHandle, groups [3]uint32) error
}
