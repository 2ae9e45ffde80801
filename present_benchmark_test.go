// present_benchmark_test.go - Benchmarks for presentation hot paths

package main

import (
	"testing"
)

func benchmarkFrame() *IndexBuffer {
	var buf IndexBuffer
	for y := uint32(0); y < ConsoleHeight; y++ {
		for x := uint32(0); x < ConsoleWidth; x++ {
			buf.Set(x, y, (x^y)&0x3F)
		}
	}
	return &buf
}

// BenchmarkDirectPipeline1080p benchmarks the direct pipeline at a common
// fullscreen size. This is the per-frame cost at 60 Hz on a CPU host.
func BenchmarkDirectPipeline1080p(b *testing.B) {
	p := NewDirectPipeline(benchmarkFrame(), DefaultPalette())
	p.SetResolution(Resolution{1920, 1080})
	dst := make([]byte, 1920*1080*4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.RenderFrame(dst); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDirectPipelineNative benchmarks the 1:1 case, the floor for any
// optimization work on the mapping loop.
func BenchmarkDirectPipelineNative(b *testing.B) {
	p := NewDirectPipeline(benchmarkFrame(), DefaultPalette())
	p.SetResolution(Resolution{ConsoleWidth, ConsoleHeight})
	dst := make([]byte, ConsolePixels*4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.RenderFrame(dst); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTexturePipelineNearest1080p benchmarks the texture pipeline with
// the default sampler, including the upstream index-to-RGBA resolve.
func BenchmarkTexturePipelineNearest1080p(b *testing.B) {
	buf := benchmarkFrame()
	pal := DefaultPalette()
	tex, _ := NewConsoleTexture(ConsoleWidth, ConsoleHeight)
	resolved := make([]byte, ConsolePixels*4)

	p := NewTexturePipeline(tex, SamplerConfig{Filter: FilterNearest})
	p.SetResolution(Resolution{1920, 1080})
	dst := make([]byte, 1920*1080*4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.ResolveRGBA(pal, resolved)
		if err := tex.WritePixels(resolved); err != nil {
			b.Fatal(err)
		}
		if err := p.RenderFrame(dst); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTexturePipelineLinear1080p measures what the linear filter adds
// over nearest.
func BenchmarkTexturePipelineLinear1080p(b *testing.B) {
	buf := benchmarkFrame()
	pal := DefaultPalette()
	tex, _ := NewConsoleTexture(ConsoleWidth, ConsoleHeight)
	resolved := make([]byte, ConsolePixels*4)
	buf.ResolveRGBA(pal, resolved)
	if err := tex.WritePixels(resolved); err != nil {
		b.Fatal(err)
	}

	p := NewTexturePipeline(tex, SamplerConfig{Filter: FilterLinear})
	p.SetResolution(Resolution{1920, 1080})
	dst := make([]byte, 1920*1080*4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.RenderFrame(dst); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkResolveRGBA measures the texture pipeline's upstream resolve on
// its own: one palette lookup per console pixel.
func BenchmarkResolveRGBA(b *testing.B) {
	buf := benchmarkFrame()
	pal := DefaultPalette()
	dst := make([]byte, ConsolePixels*4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.ResolveRGBA(pal, dst)
	}
}
