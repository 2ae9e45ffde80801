// present_shaders.go - Embedded GPU shader sources for the presentation pass

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/FamiPresent
License: GPLv3 or later
*/

/*
present_shaders.go - Embedded GPU shader sources for the presentation pass

WGSL sources for hosts presenting through a wgpu-style API, one program per
pipeline. Both share the same procedural-quad vertex idea as the software
path; the fragment stages mirror ShadeFragment and ConsoleTexture.Sample.

For Vulkan hosts the same programs exist as GLSL (in comments) compiled to
SPIR-V. To regenerate:

	glslc -fshader-stage=vertex vertex.glsl -o vertex.spv
	glslc -fshader-stage=fragment fragment.glsl -o fragment.spv
*/

package main

// DirectShaderWGSL is the direct pipeline: raw index buffer, palette and
// resolution bound directly, colors resolved per fragment.
const DirectShaderWGSL = `
const CONSOLE_WIDTH: u32 = 256u;
const CONSOLE_HEIGHT: u32 = 240u;

@group(0) @binding(0) var<storage, read> pixels: array<u32, 61440>;
@group(0) @binding(1) var<uniform> resolution: vec2<u32>;
@group(0) @binding(2) var<uniform> palette: array<vec4<f32>, 64>;

const corners = array<vec2<f32>, 4>(
    vec2<f32>(-1.0, -1.0),
    vec2<f32>(-1.0, 1.0),
    vec2<f32>(1.0, -1.0),
    vec2<f32>(1.0, 1.0),
);

const indices = array<u32, 6>(0u, 1u, 2u, 1u, 3u, 2u);

@vertex
fn vertex_main(@builtin(vertex_index) index: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(corners[indices[index]], 0.0, 1.0);
}

@fragment
fn fragment_main(@builtin(position) position: vec4<f32>) -> @location(0) vec4<f32> {
    let x = u32(position.x / f32(resolution.x) * f32(CONSOLE_WIDTH));
    let y = u32(position.y / f32(resolution.y) * f32(CONSOLE_HEIGHT));
    if (x >= CONSOLE_WIDTH || y >= CONSOLE_HEIGHT) {
        return vec4<f32>(0.0, 0.0, 0.0, 1.0);
    }
    return palette[pixels[y * CONSOLE_WIDTH + x]];
}
`

// TexturedShaderWGSL is the texture pipeline: a pre-resolved RGBA texture
// sampled with the host-configured sampler. The V flip in the vertex table
// matches texturedQuad and is applied exactly once.
const TexturedShaderWGSL = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
};

@group(0) @binding(0) var console_texture: texture_2d<f32>;
@group(0) @binding(1) var console_sampler: sampler;

const positions = array<vec2<f32>, 6>(
    vec2<f32>(-1.0, -1.0),
    vec2<f32>(-1.0, 1.0),
    vec2<f32>(1.0, -1.0),
    vec2<f32>(-1.0, 1.0),
    vec2<f32>(1.0, 1.0),
    vec2<f32>(1.0, -1.0),
);

const uvs = array<vec2<f32>, 6>(
    vec2<f32>(0.0, 1.0),
    vec2<f32>(0.0, 0.0),
    vec2<f32>(1.0, 1.0),
    vec2<f32>(0.0, 0.0),
    vec2<f32>(1.0, 0.0),
    vec2<f32>(1.0, 1.0),
);

@vertex
fn vertex_main(@builtin(vertex_index) index: u32) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(positions[index], 0.0, 1.0);
    out.uv = uvs[index];
    return out;
}

@fragment
fn fragment_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(console_texture, console_sampler, in.uv);
}
`

// ShaderEntryVertex and ShaderEntryFragment are the entry point names shared
// by both WGSL programs.
const (
	ShaderEntryVertex   = "vertex_main"
	ShaderEntryFragment = "fragment_main"
)

// Textured vertex shader GLSL source (for reference)
//
// #version 450
//
// layout(location = 0) out vec2 fragUV;
//
// const vec2 positions[6] = vec2[](
//     vec2(-1.0, -1.0), vec2(-1.0, 1.0), vec2(1.0, -1.0),
//     vec2(-1.0, 1.0), vec2(1.0, 1.0), vec2(1.0, -1.0)
// );
// const vec2 uvs[6] = vec2[](
//     vec2(0.0, 1.0), vec2(0.0, 0.0), vec2(1.0, 1.0),
//     vec2(0.0, 0.0), vec2(1.0, 0.0), vec2(1.0, 1.0)
// );
//
// void main() {
//     gl_Position = vec4(positions[gl_VertexIndex], 0.0, 1.0);
//     fragUV = uvs[gl_VertexIndex];
// }

// Textured fragment shader GLSL source (for reference)
//
// #version 450
//
// layout(location = 0) in vec2 fragUV;
// layout(location = 0) out vec4 outColor;
//
// layout(binding = 0) uniform texture2D consoleTexture;
// layout(binding = 1) uniform sampler consoleSampler;
//
// void main() {
//     outColor = texture(sampler2D(consoleTexture, consoleSampler), fragUV);
// }

// PresentVertexShaderSPV contains the compiled SPIR-V textured vertex shader
// Placeholder - actual SPIR-V would be compiled from GLSL above
var PresentVertexShaderSPV = []uint32{
	// SPIR-V magic number
	0x07230203,
	// Version 1.0
	0x00010000,
	// Generator magic
	0x00000000,
	// Bound
	0x00000000,
	// Schema
	0x00000000,
	// Note: This is a minimal placeholder. Real SPIR-V would be much larger.
	// When a Vulkan host is wired up, compile the GLSL above with:
	// glslc -fshader-stage=vertex -o vertex.spv vertex.glsl
}

// PresentFragmentShaderSPV contains the compiled SPIR-V textured fragment shader
// Placeholder - actual SPIR-V would be compiled from GLSL above
var PresentFragmentShaderSPV = []uint32{
	// SPIR-V magic number
	0x07230203,
	// Version 1.0
	0x00010000,
	// Generator magic
	0x00000000,
	// Bound
	0x00000000,
	// Schema
	0x00000000,
	// Note: This is a minimal placeholder. Real SPIR-V would be much larger.
	// When a Vulkan host is wired up, compile the GLSL above with:
	// glslc -fshader-stage=fragment -o fragment.spv fragment.glsl
}

// DirectBindingLayout describes the direct pipeline's bind group: all three
// bindings are read-only and refreshed by the host exactly once per
// presented frame.
var DirectBindingLayout = []map[string]interface{}{
	{
		"binding":    0,
		"visibility": "fragment",
		"type":       "storage-buffer-read-only",
		"elements":   ConsolePixels,
	},
	{
		"binding":    1,
		"visibility": "fragment",
		"type":       "uniform-buffer",
		"elements":   2,
	},
	{
		"binding":    2,
		"visibility": "fragment",
		"type":       "uniform-buffer",
		"elements":   PaletteSize,
	},
}

// TexturedBindingLayout describes the texture pipeline's bind group.
var TexturedBindingLayout = []map[string]interface{}{
	{
		"binding":    0,
		"visibility": "fragment",
		"type":       "sampled-texture-2d",
	},
	{
		"binding":    1,
		"visibility": "fragment",
		"type":       "sampler",
	},
}
