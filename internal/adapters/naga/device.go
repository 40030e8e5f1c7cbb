// Package naga implements a headless GPU device. Shaders are WGSL compiled to
// SPIR-V with the pure Go naga compiler; draws and dispatches are validated
// against the compiled programs and counted instead of rasterised.
package naga

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"
	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ShaderDriver = (*Device)(nil)
	_ ports.RenderDevice = (*Device)(nil)
)

type shaderObject struct {
	stage   domain.Stage
	sources []string
	module  *ir.Module
	binary  []byte
	log     string
}

type programObject struct {
	attached  []domain.ShaderHandle
	stages    map[domain.Stage][]byte
	uniforms  map[string]int32
	workgroup [3]uint32
	linked    bool
	log       string
}

type textureObject struct {
	width, height int
}

// Stats counts the work submitted to the device.
type Stats struct {
	Frames     int
	Draws      int
	Clears     int
	Dispatches int
	LastClear  domain.Color
	LastDraw   domain.Draw
}

// Device is a headless implementation of the shader driver and render device.
// It is not safe for concurrent use.
type Device struct {
	next     uint32
	shaders  map[domain.ShaderHandle]*shaderObject
	programs map[domain.ProgramHandle]*programObject
	textures map[domain.TextureHandle]*textureObject
	stats    Stats
}

// New creates an empty device.
func New() *Device {
	return &Device{
		shaders:  make(map[domain.ShaderHandle]*shaderObject),
		programs: make(map[domain.ProgramHandle]*programObject),
		textures: make(map[domain.TextureHandle]*textureObject),
	}
}

func (d *Device) id() uint32 {
	d.next++
	return d.next
}

// Dialect implements ports.ShaderDriver.
func (d *Device) Dialect() domain.Dialect {
	return Dialect
}

// CreateShader implements ports.ShaderDriver.
func (d *Device) CreateShader(stage domain.Stage) (domain.ShaderHandle, error) {
	h := domain.ShaderHandle(d.id())
	d.shaders[h] = &shaderObject{stage: stage}
	return h, nil
}

// ShaderSource implements ports.ShaderDriver.
func (d *Device) ShaderSource(shader domain.ShaderHandle, sources []string) {
	if s, ok := d.shaders[shader]; ok {
		s.sources = sources
	}
}

// CompileShader parses, lowers, validates and generates SPIR-V for the shader.
// The shader must declare an entry point for its stage.
func (d *Device) CompileShader(shader domain.ShaderHandle) bool {
	s, ok := d.shaders[shader]
	if !ok {
		return false
	}
	s.module, s.binary, s.log = nil, nil, ""

	sm, src := newSourceMap(s.sources)
	module, err := lower(src)
	if err != nil {
		s.log = sm.infoLog(err)
		return false
	}
	if _, ok := entryPoint(module, s.stage); !ok {
		s.log = fmt.Sprintf("ERROR: no %s entry point\n", s.stage)
		return false
	}
	binary, err := naga.GenerateSPIRV(module, spirv.Options{Version: spirv.Version1_3})
	if err != nil {
		s.log = sm.infoLog(err)
		return false
	}
	s.module, s.binary = module, binary
	return true
}

func lower(src string) (*ir.Module, error) {
	ast, err := naga.Parse(src)
	if err != nil {
		return nil, err
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return nil, err
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return nil, err
	}
	if len(verrs) > 0 {
		msgs := make([]string, 0, len(verrs))
		for i := range verrs {
			msgs = append(msgs, verrs[i].Error())
		}
		return nil, errors.New("validation failed: " + strings.Join(msgs, "; "))
	}
	return module, nil
}

func entryPoint(module *ir.Module, stage domain.Stage) (ir.EntryPoint, bool) {
	want := map[domain.Stage]ir.ShaderStage{
		domain.StageVertex:   ir.StageVertex,
		domain.StageFragment: ir.StageFragment,
		domain.StageCompute:  ir.StageCompute,
	}[stage]
	for _, ep := range module.EntryPoints {
		if ep.Stage == want {
			return ep, true
		}
	}
	return ir.EntryPoint{}, false
}

// ShaderInfoLog implements ports.ShaderDriver.
func (d *Device) ShaderInfoLog(shader domain.ShaderHandle) string {
	if s, ok := d.shaders[shader]; ok {
		return s.log
	}
	return ""
}

// DeleteShader implements ports.ShaderDriver. Programs keep what they linked.
func (d *Device) DeleteShader(shader domain.ShaderHandle) {
	delete(d.shaders, shader)
}

// CreateProgram implements ports.ShaderDriver.
func (d *Device) CreateProgram() (domain.ProgramHandle, error) {
	h := domain.ProgramHandle(d.id())
	d.programs[h] = &programObject{}
	return h, nil
}

// AttachShader implements ports.ShaderDriver.
func (d *Device) AttachShader(program domain.ProgramHandle, shader domain.ShaderHandle) {
	if p, ok := d.programs[program]; ok {
		p.attached = append(p.attached, shader)
	}
}

// LinkProgram accepts either a vertex and a fragment stage or a single compute
// stage. Resources are assigned locations from their group and binding; a
// name bound differently by two stages fails the link.
func (d *Device) LinkProgram(program domain.ProgramHandle) bool {
	p, ok := d.programs[program]
	if !ok {
		return false
	}
	p.linked, p.log = false, ""
	p.stages = make(map[domain.Stage][]byte)
	p.uniforms = make(map[string]int32)

	modules := make(map[domain.Stage]*ir.Module)
	for _, h := range p.attached {
		s, ok := d.shaders[h]
		if !ok || s.module == nil {
			p.log = fmt.Sprintf("shader %d is not compiled", h)
			return false
		}
		if _, dup := modules[s.stage]; dup {
			p.log = fmt.Sprintf("more than one %s stage attached", s.stage)
			return false
		}
		modules[s.stage] = s.module
		p.stages[s.stage] = s.binary
	}

	_, hasVS := modules[domain.StageVertex]
	_, hasFS := modules[domain.StageFragment]
	_, hasCS := modules[domain.StageCompute]
	switch {
	case hasCS && len(modules) == 1:
		ep, _ := entryPoint(modules[domain.StageCompute], domain.StageCompute)
		p.workgroup = ep.Workgroup
	case hasVS && hasFS && len(modules) == 2:
	default:
		p.log = "program needs a vertex and a fragment stage, or a single compute stage"
		return false
	}

	stages := make([]domain.Stage, 0, len(modules))
	for st := range modules {
		stages = append(stages, st)
	}
	sort.Slice(stages, func(i, j int) bool { return stages[i] < stages[j] })
	for _, st := range stages {
		for _, g := range modules[st].GlobalVariables {
			if g.Binding == nil || g.Name == "" {
				continue
			}
			loc := int32(g.Binding.Group<<8 | g.Binding.Binding)
			if prev, seen := p.uniforms[g.Name]; seen && prev != loc {
				p.log = fmt.Sprintf("%s is bound to different locations by different stages", g.Name)
				return false
			}
			p.uniforms[g.Name] = loc
		}
	}

	p.linked = true
	return true
}

// ProgramInfoLog implements ports.ShaderDriver.
func (d *Device) ProgramInfoLog(program domain.ProgramHandle) string {
	if p, ok := d.programs[program]; ok {
		return p.log
	}
	return ""
}

// DeleteProgram implements ports.ShaderDriver.
func (d *Device) DeleteProgram(program domain.ProgramHandle) {
	delete(d.programs, program)
}

// UniformLocation returns group<<8 | binding of the named resource, or -1.
func (d *Device) UniformLocation(program domain.ProgramHandle, name string) int32 {
	p, ok := d.programs[program]
	if !ok || !p.linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

// WorkGroupSize implements ports.ShaderDriver.
func (d *Device) WorkGroupSize(program domain.ProgramHandle) [3]uint32 {
	if p, ok := d.programs[program]; ok {
		return p.workgroup
	}
	return [3]uint32{}
}

// BinarySize returns the total SPIR-V size of a linked program in bytes.
func (d *Device) BinarySize(program domain.ProgramHandle) int {
	p, ok := d.programs[program]
	if !ok {
		return 0
	}
	n := 0
	for _, b := range p.stages {
		n += len(b)
	}
	return n
}

// CreateTexture2D implements ports.RenderDevice.
func (d *Device) CreateTexture2D(img *domain.ImageRGB32F) (domain.TextureHandle, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Data) != img.Width*img.Height*3 {
		return 0, zerr.Wrap(domain.ErrInvalidHandle, "texture data does not match its size")
	}
	h := domain.TextureHandle(d.id())
	d.textures[h] = &textureObject{width: img.Width, height: img.Height}
	return h, nil
}

// CreateTexture1D implements ports.RenderDevice.
func (d *Device) CreateTexture1D(width uint32) (domain.TextureHandle, error) {
	if width == 0 {
		return 0, zerr.Wrap(domain.ErrInvalidHandle, "texture width must be positive")
	}
	h := domain.TextureHandle(d.id())
	d.textures[h] = &textureObject{width: int(width), height: 1}
	return h, nil
}

// DeleteTexture implements ports.RenderDevice.
func (d *Device) DeleteTexture(texture domain.TextureHandle) {
	delete(d.textures, texture)
}

// Clear ends a frame that shows only c.
func (d *Device) Clear(c domain.Color) {
	d.stats.Clears++
	d.stats.Frames++
	d.stats.LastClear = c
}

// DrawFullscreen ends a frame drawn with a linked vertex and fragment program.
func (d *Device) DrawFullscreen(draw domain.Draw) error {
	p, ok := d.programs[draw.Program]
	if !ok || !p.linked || p.stages[domain.StageFragment] == nil {
		return zerr.With(domain.ErrInvalidHandle, "program", uint32(draw.Program))
	}
	for _, tex := range draw.Samplers {
		if _, ok := d.textures[tex]; !ok {
			return zerr.With(domain.ErrInvalidHandle, "texture", uint32(tex))
		}
	}
	d.stats.Draws++
	d.stats.Frames++
	d.stats.LastDraw = draw
	return nil
}

// Dispatch implements ports.RenderDevice.
func (d *Device) Dispatch(program domain.ProgramHandle, output domain.TextureHandle, groups [3]uint32) error {
	p, ok := d.programs[program]
	if !ok || !p.linked || p.stages[domain.StageCompute] == nil {
		return zerr.With(domain.ErrInvalidHandle, "program", uint32(program))
	}
	if _, ok := d.textures[output]; !ok {
		return zerr.With(domain.ErrInvalidHandle, "texture", uint32(output))
	}
	if groups[0] == 0 || groups[1] == 0 || groups[2] == 0 {
		return zerr.With(domain.ErrInvalidHandle, "groups", fmt.Sprint(groups))
	}
	d.stats.Dispatches++
	return nil
}

// Stats returns the work counters.
func (d *Device) Stats() Stats {
	return d.stats
}
