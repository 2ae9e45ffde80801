// present_texture.go - RGBA texture and sampler for the texture pipeline

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

package main

import "fmt"

// FilterMode selects the sampler's filtering. Chosen once by the host when
// it configures a render target, never switched per pixel.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

func (m FilterMode) String() string {
	if m == FilterLinear {
		return "linear"
	}
	return "nearest"
}

// SamplerConfig is the externally supplied sampler state for the texture
// pipeline.
type SamplerConfig struct {
	Filter FilterMode
}

// ConsoleTexture is a pre-resolved RGBA image. The texture pipeline
// delegates index-to-color resolution to whoever produced it (normally
// IndexBuffer.ResolveRGBA) and only ever samples resolved colors.
type ConsoleTexture struct {
	width  int
	height int
	pixels []byte // RGBA8, row-major
}

// NewConsoleTexture allocates a texture of the given size.
func NewConsoleTexture(width, height int) (*ConsoleTexture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture size %dx%d invalid", width, height)
	}
	return &ConsoleTexture{
		width:  width,
		height: height,
		pixels: make([]byte, width*height*4),
	}, nil
}

// WritePixels replaces the texture contents with packed RGBA8 data.
func (t *ConsoleTexture) WritePixels(data []byte) error {
	if len(data) != len(t.pixels) {
		return fmt.Errorf("texture data length %d, want %d", len(data), len(t.pixels))
	}
	copy(t.pixels, data)
	return nil
}

// Size returns the texture dimensions in texels.
func (t *ConsoleTexture) Size() (width, height int) {
	return t.width, t.height
}

// texelAt returns the color of one texel. x,y are pre-clamped by callers.
func (t *ConsoleTexture) texelAt(x, y int) ColorRGBA {
	i := (y*t.width + x) * 4
	return ColorRGBA{
		R: float32(t.pixels[i+0]) / 255,
		G: float32(t.pixels[i+1]) / 255,
		B: float32(t.pixels[i+2]) / 255,
		A: float32(t.pixels[i+3]) / 255,
	}
}

// Sample reads the texture at normalized coordinates u,v in [0,1] with the
// configured filter. Coordinates are clamped to the texel grid at the
// edges, matching a clamp-to-edge sampler.
func (t *ConsoleTexture) Sample(u, v float32, cfg SamplerConfig) ColorRGBA {
	if cfg.Filter == FilterLinear {
		return t.sampleLinear(u, v)
	}
	return t.sampleNearest(u, v)
}

func (t *ConsoleTexture) sampleNearest(u, v float32) ColorRGBA {
	x := clampi(int(u*float32(t.width)), 0, t.width-1)
	y := clampi(int(v*float32(t.height)), 0, t.height-1)
	return t.texelAt(x, y)
}

func (t *ConsoleTexture) sampleLinear(u, v float32) ColorRGBA {
	// Texel centers sit at (i+0.5)/size; interpolate between the two
	// nearest centers on each axis.
	fx := u*float32(t.width) - 0.5
	fy := v*float32(t.height) - 0.5
	x0 := floori(fx)
	y0 := floori(fy)
	wx := fx - float32(x0)
	wy := fy - float32(y0)

	x0c := clampi(x0, 0, t.width-1)
	x1c := clampi(x0+1, 0, t.width-1)
	y0c := clampi(y0, 0, t.height-1)
	y1c := clampi(y0+1, 0, t.height-1)

	c00 := t.texelAt(x0c, y0c)
	c10 := t.texelAt(x1c, y0c)
	c01 := t.texelAt(x0c, y1c)
	c11 := t.texelAt(x1c, y1c)

	top := lerpColor(c00, c10, wx)
	bottom := lerpColor(c01, c11, wx)
	return lerpColor(top, bottom, wy)
}

func lerpColor(a, b ColorRGBA, w float32) ColorRGBA {
	return ColorRGBA{
		R: a.R + (b.R-a.R)*w,
		G: a.G + (b.G-a.G)*w,
		B: a.B + (b.B-a.B)*w,
		A: a.A + (b.A-a.A)*w,
	}
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floori(v float32) int {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}
