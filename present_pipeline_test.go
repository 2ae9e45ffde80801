// present_pipeline_test.go - Software pipeline execution tests

package main

import "testing"

func testPalette() *Palette {
	var colors [PaletteSize]ColorRGBA
	for i := range colors {
		colors[i] = ColorRGBA{
			R: float32(i) / 63,
			G: float32(63-i) / 63,
			B: float32(i%8) / 7,
			A: 1,
		}
	}
	colors[5] = ColorRGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}
	return NewPalette(colors)
}

func pixelAt(dst []byte, width, x, y int) [4]byte {
	i := (y*width + x) * 4
	return [4]byte{dst[i], dst[i+1], dst[i+2], dst[i+3]}
}

func TestDirectPipelineErrors(t *testing.T) {
	var buf IndexBuffer
	p := NewDirectPipeline(&buf, testPalette())

	if err := p.RenderFrame(make([]byte, 16)); err == nil {
		t.Error("render without a bound resolution should fail")
	}
	p.SetResolution(Resolution{100, 100})
	if err := p.RenderFrame(make([]byte, 16)); err == nil {
		t.Error("render into a mis-sized framebuffer should fail")
	}
	if err := p.RenderFrame(make([]byte, 100*100*4)); err != nil {
		t.Errorf("render: %v", err)
	}
}

// The packed inner loop and ShadeFragment express the same fragment
// function; render a frame both ways and compare every pixel.
func TestDirectPipelineMatchesShadeFragment(t *testing.T) {
	var buf IndexBuffer
	for y := uint32(0); y < ConsoleHeight; y++ {
		for x := uint32(0); x < ConsoleWidth; x++ {
			buf.Set(x, y, (x+y*3)&0x3F)
		}
	}
	pal := testPalette()
	res := Resolution{317, 211} // awkward non-integer downscale

	p := NewDirectPipeline(&buf, pal)
	p.SetResolution(res)
	dst := make([]byte, int(res.Width)*int(res.Height)*4)
	if err := p.RenderFrame(dst); err != nil {
		t.Fatal(err)
	}

	for fy := uint32(0); fy < res.Height; fy++ {
		for fx := uint32(0); fx < res.Width; fx++ {
			c := ShadeFragment(fx, fy, res, &buf, pal)
			want := [4]byte{
				byte(c.R*255 + 0.5),
				byte(c.G*255 + 0.5),
				byte(c.B*255 + 0.5),
				byte(c.A*255 + 0.5),
			}
			got := pixelAt(dst, int(res.Width), int(fx), int(fy))
			if got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", fx, fy, got, want)
			}
		}
	}
}

// One console pixel at 2x becomes exactly a 2x2 output block.
func TestDirectPipelineIntegerScaleBlock(t *testing.T) {
	var buf IndexBuffer
	buf.Set(10, 10, 5)
	pal := testPalette()
	res := Resolution{512, 480}

	p := NewDirectPipeline(&buf, pal)
	p.SetResolution(res)
	dst := make([]byte, int(res.Width)*int(res.Height)*4)
	if err := p.RenderFrame(dst); err != nil {
		t.Fatal(err)
	}

	want := pal.PackedEntry(5) // (51,102,153,255)
	for _, xy := range [][2]int{{20, 20}, {21, 20}, {20, 21}, {21, 21}} {
		if got := pixelAt(dst, 512, xy[0], xy[1]); got != want {
			t.Errorf("pixel (%d,%d) = %v, want %v", xy[0], xy[1], got, want)
		}
	}
	// Neighbors outside the block belong to other console pixels.
	other := pal.PackedEntry(0)
	if got := pixelAt(dst, 512, 22, 20); got != other {
		t.Errorf("pixel (22,20) = %v, want %v", got, other)
	}
	if got := pixelAt(dst, 512, 19, 21); got != other {
		t.Errorf("pixel (19,21) = %v, want %v", got, other)
	}
}

// A resize racing a draw leaves the surface wider than the bound
// resolution; overshooting fragments come out opaque black, never clamped.
func TestDirectPipelineResizeRaceFallback(t *testing.T) {
	var buf IndexBuffer
	buf.Fill(0x20)
	pal := testPalette()

	p := NewDirectPipeline(&buf, pal)
	p.SetResolution(Resolution{100, 100})
	const surfaceW, surfaceH = 200, 100
	dst := make([]byte, surfaceW*surfaceH*4)
	p.RenderSurface(dst, surfaceW, surfaceH)

	black := [4]byte{0, 0, 0, 0xFF}
	if got := pixelAt(dst, surfaceW, 150, 50); got != black {
		t.Errorf("out-of-range pixel = %v, want opaque black", got)
	}
	if got := pixelAt(dst, surfaceW, 199, 99); got != black {
		t.Errorf("far corner pixel = %v, want opaque black", got)
	}
	want := pal.PackedEntry(0x20)
	if got := pixelAt(dst, surfaceW, 50, 50); got != want {
		t.Errorf("in-range pixel = %v, want %v", got, want)
	}
}

func TestTexturePipelineErrors(t *testing.T) {
	tex, _ := NewConsoleTexture(ConsoleWidth, ConsoleHeight)
	p := NewTexturePipeline(tex, SamplerConfig{Filter: FilterNearest})
	if err := p.RenderFrame(make([]byte, 16)); err == nil {
		t.Error("render without a bound resolution should fail")
	}
	p.SetResolution(Resolution{64, 64})
	if err := p.RenderFrame(make([]byte, 16)); err == nil {
		t.Error("render into a mis-sized framebuffer should fail")
	}
}

// At integer scales the texture pipeline with nearest filtering and the
// direct pipeline resolve identically.
func TestPipelinesAgreeAtIntegerScale(t *testing.T) {
	var buf IndexBuffer
	for y := uint32(0); y < ConsoleHeight; y++ {
		for x := uint32(0); x < ConsoleWidth; x++ {
			buf.Set(x, y, (x*7+y)&0x3F)
		}
	}
	pal := testPalette()
	res := Resolution{512, 480}

	direct := NewDirectPipeline(&buf, pal)
	direct.SetResolution(res)
	directOut := make([]byte, int(res.Width)*int(res.Height)*4)
	if err := direct.RenderFrame(directOut); err != nil {
		t.Fatal(err)
	}

	tex, _ := NewConsoleTexture(ConsoleWidth, ConsoleHeight)
	resolved := make([]byte, ConsolePixels*4)
	buf.ResolveRGBA(pal, resolved)
	if err := tex.WritePixels(resolved); err != nil {
		t.Fatal(err)
	}
	textured := NewTexturePipeline(tex, SamplerConfig{Filter: FilterNearest})
	textured.SetResolution(res)
	texturedOut := make([]byte, int(res.Width)*int(res.Height)*4)
	if err := textured.RenderFrame(texturedOut); err != nil {
		t.Fatal(err)
	}

	for i := range directOut {
		if directOut[i] != texturedOut[i] {
			x := (i / 4) % int(res.Width)
			y := (i / 4) / int(res.Width)
			t.Fatalf("pipelines disagree at pixel (%d,%d) byte %d: direct %d, texture %d",
				x, y, i%4, directOut[i], texturedOut[i])
		}
	}
}

// Texture row 0 is the console's top row; after the quad's baked-in V flip
// it must land at the top of the output, not the bottom.
func TestTexturePipelineOrientation(t *testing.T) {
	var buf IndexBuffer
	for x := uint32(0); x < ConsoleWidth; x++ {
		buf.Set(x, 0, 0x30) // top row bright
	}
	pal := DefaultPalette()

	tex, _ := NewConsoleTexture(ConsoleWidth, ConsoleHeight)
	resolved := make([]byte, ConsolePixels*4)
	buf.ResolveRGBA(pal, resolved)
	tex.WritePixels(resolved)

	p := NewTexturePipeline(tex, SamplerConfig{Filter: FilterNearest})
	p.SetResolution(Resolution{ConsoleWidth, ConsoleHeight})
	dst := make([]byte, ConsolePixels*4)
	if err := p.RenderFrame(dst); err != nil {
		t.Fatal(err)
	}

	top := pixelAt(dst, ConsoleWidth, 128, 0)
	bottom := pixelAt(dst, ConsoleWidth, 128, ConsoleHeight-1)
	bright := pal.PackedEntry(0x30)
	dark := pal.PackedEntry(0)
	if top != bright {
		t.Errorf("top row pixel = %v, want %v (frame flipped?)", top, bright)
	}
	if bottom != dark {
		t.Errorf("bottom row pixel = %v, want %v", bottom, dark)
	}
}

// Linear filtering across a hard edge must blend only near the edge; block
// interiors stay at the source color.
func TestTexturePipelineLinearEdgeBlend(t *testing.T) {
	var buf IndexBuffer
	for y := uint32(0); y < ConsoleHeight; y++ {
		for x := uint32(128); x < ConsoleWidth; x++ {
			buf.Set(x, y, 0x30)
		}
	}
	pal := DefaultPalette()

	tex, _ := NewConsoleTexture(ConsoleWidth, ConsoleHeight)
	resolved := make([]byte, ConsolePixels*4)
	buf.ResolveRGBA(pal, resolved)
	tex.WritePixels(resolved)

	res := Resolution{1024, 960}
	p := NewTexturePipeline(tex, SamplerConfig{Filter: FilterLinear})
	p.SetResolution(res)
	dst := make([]byte, int(res.Width)*int(res.Height)*4)
	if err := p.RenderFrame(dst); err != nil {
		t.Fatal(err)
	}

	left := pixelAt(dst, 1024, 100, 480)
	right := pixelAt(dst, 1024, 900, 480)
	if left != pal.PackedEntry(0) {
		t.Errorf("deep left pixel = %v, want unblended dark", left)
	}
	if right != pal.PackedEntry(0x30) {
		t.Errorf("deep right pixel = %v, want unblended bright", right)
	}
	// Directly over the edge the blend must sit strictly between the two.
	mid := pixelAt(dst, 1024, 511, 480)
	lo, hi := pal.PackedEntry(0)[0], pal.PackedEntry(0x30)[0]
	if mid[0] <= lo || mid[0] >= hi {
		t.Errorf("edge pixel red = %d, want strictly between %d and %d", mid[0], lo, hi)
	}
}
