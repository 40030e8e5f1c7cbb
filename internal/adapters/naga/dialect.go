package naga

import "go.trai.ch/hdrview/internal/core/domain"

// fullscreenVertex draws one triangle covering the viewport and passes uv on
// location 0. V is flipped since images are stored top row first.
const fullscreenVertex = `struct FullscreenOutput {
    @location(0) uv: vec2<f32>,
    @builtin(position) position: vec4<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) index: u32) -> FullscreenOutput {
    let uv = vec2<f32>(f32(index & 1u), f32(index >> 1u)) * 2.0;
    let position = vec4<f32>(uv * vec2<f32>(2.0, -2.0) + vec2<f32>(-1.0, 1.0), 0.0, 1.0);
    return FullscreenOutput(uv, position);
}
`

// Dialect is the WGSL source convention of the device. WGSL has no line
// directive, so line numbers are recovered from source string boundaries.
var Dialect = domain.Dialect{
	Name:             "wgsl",
	Preamble:         "",
	LineMarkers:      false,
	FullscreenVertex: fullscreenVertex,
}
