// present_shaders_test.go - Embedded shader source sanity tests

package main

import (
	"strings"
	"testing"
)

func TestShaderEntryPointsPresent(t *testing.T) {
	for _, src := range []string{DirectShaderWGSL, TexturedShaderWGSL} {
		if !strings.Contains(src, "fn "+ShaderEntryVertex) {
			t.Error("vertex entry point missing from shader source")
		}
		if !strings.Contains(src, "fn "+ShaderEntryFragment) {
			t.Error("fragment entry point missing from shader source")
		}
	}
}

func TestDirectShaderMirrorsFragmentFunction(t *testing.T) {
	// The GPU form of the direct pipeline must carry the same constants and
	// fallback as the software form: console dimensions, the index walk
	// y*256+x, and the opaque black out-of-range return.
	for _, want := range []string{
		"256u",
		"240u",
		"y * CONSOLE_WIDTH + x",
		"vec4<f32>(0.0, 0.0, 0.0, 1.0)",
		"array<u32, 61440>",
		"array<vec4<f32>, 64>",
	} {
		if !strings.Contains(DirectShaderWGSL, want) {
			t.Errorf("direct shader missing %q", want)
		}
	}
}

func TestTexturedShaderVertexTableMatchesQuad(t *testing.T) {
	// The WGSL vertex table is a literal copy of texturedQuad; spot check
	// that each UV pair appears and that no vertex buffer binding exists.
	if strings.Contains(TexturedShaderWGSL, "@location(0) position") {
		t.Error("textured shader should generate positions procedurally, not bind a vertex buffer")
	}
	for _, want := range []string{"array<vec2<f32>, 6>", "textureSample"} {
		if !strings.Contains(TexturedShaderWGSL, want) {
			t.Errorf("textured shader missing %q", want)
		}
	}
}

func TestSPIRVMagicNumber(t *testing.T) {
	for name, spv := range map[string][]uint32{
		"vertex":   PresentVertexShaderSPV,
		"fragment": PresentFragmentShaderSPV,
	} {
		if len(spv) < 5 {
			t.Fatalf("%s SPIR-V shorter than a module header", name)
		}
		if spv[0] != 0x07230203 {
			t.Errorf("%s SPIR-V magic = %#x, want 0x07230203", name, spv[0])
		}
	}
}

func TestBindingLayoutShapes(t *testing.T) {
	if len(DirectBindingLayout) != 3 {
		t.Errorf("direct pipeline has %d bindings, want 3", len(DirectBindingLayout))
	}
	if len(TexturedBindingLayout) != 2 {
		t.Errorf("texture pipeline has %d bindings, want 2", len(TexturedBindingLayout))
	}
	if n := DirectBindingLayout[0]["elements"]; n != ConsolePixels {
		t.Errorf("index buffer binding holds %v elements, want %d", n, ConsolePixels)
	}
	if n := DirectBindingLayout[2]["elements"]; n != PaletteSize {
		t.Errorf("palette binding holds %v elements, want %d", n, PaletteSize)
	}
}
