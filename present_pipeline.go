// present_pipeline.go - Software execution of the two presentation pipelines

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
present_pipeline.go - Software execution of the two presentation pipelines

The shading stages in present_quad.go / present_map.go / present_texture.go
describe what the GPU runs. This file runs the same semantics on the CPU:
one full-surface draw per frame, fragment function evaluated once per output
pixel, no state shared between pixel evaluations. The two pipelines are two
distinct types selected when the host configures its render target; there is
no dispatch inside the per-pixel loop.
*/

package main

import "fmt"

// DirectPipeline resolves every output pixel straight from the raw index
// buffer and palette: map to a console pixel, bounds-guard, palette lookup.
type DirectPipeline struct {
	buffer     *IndexBuffer
	palette    *Palette
	resolution Resolution
}

// NewDirectPipeline binds the pipeline to its read-only inputs. The host
// refreshes buffer contents and resolution between draws, never during one.
func NewDirectPipeline(buffer *IndexBuffer, palette *Palette) *DirectPipeline {
	return &DirectPipeline{buffer: buffer, palette: palette}
}

// SetResolution updates the output surface size binding. Must not be called
// while RenderFrame runs; the presenter serializes the two.
func (p *DirectPipeline) SetResolution(res Resolution) {
	p.resolution = res
}

// Resolution returns the current output surface size binding.
func (p *DirectPipeline) Resolution() Resolution {
	return p.resolution
}

// RenderFrame executes one full-surface draw into dst, packed RGBA8 at the
// bound resolution.
func (p *DirectPipeline) RenderFrame(dst []byte) error {
	res := p.resolution
	if res.Width == 0 || res.Height == 0 {
		return &VideoError{Operation: "render", Details: "resolution not set"}
	}
	if want := int(res.Width) * int(res.Height) * 4; len(dst) != want {
		return &VideoError{
			Operation: "render",
			Details:   fmt.Sprintf("framebuffer length %d, want %d", len(dst), want),
		}
	}
	p.RenderSurface(dst, int(res.Width), int(res.Height))
	return nil
}

// RenderSurface draws onto a surface of the given pixel size while mapping
// through the bound resolution value. The two normally agree; when a resize
// races a draw they briefly do not, and fragments that map off the console
// grid come out opaque black rather than clamped, wrapped or undefined.
// dst must hold surfaceW*surfaceH*4 bytes. The fragment loop bounds come
// from the vertex stage. The inner loop is the packed-byte form of
// ShadeFragment; the two are kept equivalent by test.
func (p *DirectPipeline) RenderSurface(dst []byte, surfaceW, surfaceH int) {
	x0, y0, x1, y1 := quadPixelBounds(surfaceW, surfaceH)
	w := uint64(p.resolution.Width)
	h := uint64(p.resolution.Height)
	for fy := y0; fy < y1; fy++ {
		cy := uint64(fy) * ConsoleHeight / h
		rowIn := cy < ConsoleHeight
		var row []uint32
		if rowIn {
			row = p.buffer[cy*ConsoleWidth : (cy+1)*ConsoleWidth]
		}
		di := (fy*surfaceW + x0) * 4
		for fx := x0; fx < x1; fx++ {
			cx := uint64(fx) * ConsoleWidth / w
			if !rowIn || cx >= ConsoleWidth {
				dst[di+0] = 0
				dst[di+1] = 0
				dst[di+2] = 0
				dst[di+3] = 0xFF
			} else {
				c := p.palette.PackedEntry(row[cx])
				dst[di+0] = c[0]
				dst[di+1] = c[1]
				dst[di+2] = c[2]
				dst[di+3] = c[3]
			}
			di += 4
		}
	}
}

// TexturePipeline resolves every output pixel by sampling a pre-resolved
// RGBA texture with an externally configured sampler. UVs come from the
// textured quad's vertex attributes, interpolated at pixel centers.
type TexturePipeline struct {
	texture    *ConsoleTexture
	sampler    SamplerConfig
	resolution Resolution
}

// NewTexturePipeline binds the pipeline to its texture and sampler state.
func NewTexturePipeline(texture *ConsoleTexture, sampler SamplerConfig) *TexturePipeline {
	return &TexturePipeline{texture: texture, sampler: sampler}
}

// SetResolution updates the output surface size binding.
func (p *TexturePipeline) SetResolution(res Resolution) {
	p.resolution = res
}

// Resolution returns the current output surface size binding.
func (p *TexturePipeline) Resolution() Resolution {
	return p.resolution
}

// RenderFrame executes one full-surface draw into dst, packed RGBA8 at the
// bound resolution.
func (p *TexturePipeline) RenderFrame(dst []byte) error {
	res := p.resolution
	if res.Width == 0 || res.Height == 0 {
		return &VideoError{Operation: "render", Details: "resolution not set"}
	}
	if want := int(res.Width) * int(res.Height) * 4; len(dst) != want {
		return &VideoError{
			Operation: "render",
			Details:   fmt.Sprintf("framebuffer length %d, want %d", len(dst), want),
		}
	}

	x0, y0, x1, y1 := quadPixelBounds(int(res.Width), int(res.Height))
	// The rasterizer interpolates the quad's UV attributes linearly across
	// the surface; sampling at pixel centers reproduces that here. The V
	// flip is already baked into the vertex data, so output row 0 (top)
	// reads texture row 0 (top).
	du := 1 / float32(res.Width)
	dv := 1 / float32(res.Height)
	for fy := y0; fy < y1; fy++ {
		v := (float32(fy) + 0.5) * dv
		di := (fy*int(res.Width) + x0) * 4
		for fx := x0; fx < x1; fx++ {
			u := (float32(fx) + 0.5) * du
			c := p.texture.Sample(u, v, p.sampler)
			dst[di+0] = byte(c.R*255 + 0.5)
			dst[di+1] = byte(c.G*255 + 0.5)
			dst[di+2] = byte(c.B*255 + 0.5)
			dst[di+3] = byte(c.A*255 + 0.5)
			di += 4
		}
	}
	return nil
}
