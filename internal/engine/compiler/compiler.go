// Package compiler turns preprocessed source chunks into driver programs and
// maps driver diagnostics back onto the files the chunks came from.
package compiler

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports"
	"go.trai.ch/zerr"
)

// Compiler compiles and links shaders through a driver. Like the driver it
// must only be used from the goroutine that owns the GPU.
type Compiler struct {
	driver ports.ShaderDriver
}

// New creates a compiler for driver.
func New(driver ports.ShaderDriver) *Compiler {
	return &Compiler{driver: driver}
}

// Sources returns the source strings submitted for chunks: the dialect
// preamble as string 0, then one string per chunk.
func Sources(dialect domain.Dialect, chunks []domain.SourceChunk) []string {
	out := make([]string, 0, len(chunks)+1)
	out = append(out, dialect.Preamble)
	for i, c := range chunks {
		if dialect.LineMarkers {
			out = append(out, fmt.Sprintf("#line 1 %d\n", i+1)+c.Source)
			continue
		}
		out = append(out, c.Source)
	}
	return out
}

// CompileStage compiles chunks as one shader of the given stage. On failure the
// shader object is deleted and the error carries the remapped driver log.
func (c *Compiler) CompileStage(stage domain.Stage, chunks []domain.SourceChunk) (domain.ShaderHandle, error) {
	shader, err := c.driver.CreateShader(stage)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "stage", stage.String())
	}

	c.driver.ShaderSource(shader, Sources(c.driver.Dialect(), chunks))
	if c.driver.CompileShader(shader) {
		return shader, nil
	}

	log := RemapDiagnostics(c.driver.ShaderInfoLog(shader), chunks)
	c.driver.DeleteShader(shader)
	return 0, zerr.With(zerr.Wrap(zerr.New(strings.TrimSpace(log)), domain.ErrCompileFailed.Error()), "stage", stage.String())
}

// Link links shaders into a program. On failure the program is deleted and the
// error carries the raw link log. The shaders are left to the caller.
func (c *Compiler) Link(shaders ...domain.ShaderHandle) (domain.ProgramHandle, error) {
	program, err := c.driver.CreateProgram()
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrLinkFailed.Error())
	}
	for _, s := range shaders {
		c.driver.AttachShader(program, s)
	}
	if c.driver.LinkProgram(program) {
		return program, nil
	}

	log := strings.TrimSpace(c.driver.ProgramInfoLog(program))
	c.driver.DeleteProgram(program)
	if log == "" {
		return 0, domain.ErrLinkFailed
	}
	return 0, zerr.Wrap(zerr.New(log), domain.ErrLinkFailed.Error())
}

// Build compiles chunks as stage and links the result together with shared,
// already compiled shaders. The stage's own shader object is released
// afterwards whatever the outcome.
func (c *Compiler) Build(stage domain.Stage, chunks []domain.SourceChunk, shared ...domain.ShaderHandle) (domain.ProgramHandle, error) {
	shader, err := c.CompileStage(stage, chunks)
	if err != nil {
		return 0, err
	}
	defer c.driver.DeleteShader(shader)

	return c.Link(append(slices.Clone(shared), shader)...)
}
