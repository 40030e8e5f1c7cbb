package domain

// Stage is a programmable pipeline stage.
type Stage uint8

const (
	// StageVertex is the vertex stage.
	StageVertex Stage = iota
	// StageFragment is the fragment stage.
	StageFragment
	// StageCompute is the compute stage.
	StageCompute
)

// String returns the lower-case stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// ShaderHandle names a driver-owned shader object. Zero is never a valid handle.
type ShaderHandle uint32

// ProgramHandle names a driver-owned linked program. Zero is never a valid handle.
type ProgramHandle uint32

// TextureHandle names a driver-owned texture. Zero is never a valid handle.
type TextureHandle uint32

// ShaderKey identifies a shader registered with the registry by its logical path.
type ShaderKey struct {
	Path InternedString
}

// NewShaderKey creates a key for the logical path p.
func NewShaderKey(p string) ShaderKey {
	return ShaderKey{Path: NewInternedString(p)}
}

// String returns the logical path.
func (k ShaderKey) String() string {
	return k.Path.String()
}

// Dialect describes the source conventions a driver expects.
type Dialect struct {
	// Name is a short identifier such as "glsl430" or "wgsl".
	Name string
	// Preamble is submitted as source string 0 ahead of every user chunk.
	Preamble string
	// LineMarkers enables "#line 1 <n>" directives in front of each chunk.
	LineMarkers bool
	// FullscreenVertex is a vertex stage drawing one triangle covering the viewport.
	FullscreenVertex string
}

// Draw is one fullscreen pass. Samplers and Uniforms are keyed by the
// locations the driver reported for the program.
type Draw struct {
	Program  ProgramHandle
	Samplers map[int32]TextureHandle
	Uniforms map[int32]float32
}
