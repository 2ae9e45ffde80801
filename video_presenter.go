// video_presenter.go - Frame presenter driving a video backend

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
video_presenter.go - Frame presenter driving a video backend

FramePresenter sits between a frame producer (an emulated PPU, or the demo
host's pattern generators) and a VideoOutput backend. It owns the console
index buffer and palette, selects one of the two presentation pipelines at
configuration time, renders each frame at the current output resolution and
hands the finished RGBA surface to the backend.

The resolution binding only ever changes between presented frames: backends
report resizes through ResizeNotifier, whose handler fires outside any draw,
and Present serializes rendering against that handler with the same mutex.
*/

package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"sync"
	"sync/atomic"
)

// PipelineMode selects which presentation pipeline renders frames. The
// choice is made once, at configuration; Present contains no per-pixel
// dispatch between the two.
type PipelineMode int

const (
	PipelineDirect PipelineMode = iota
	PipelineTexture
)

func (m PipelineMode) String() string {
	switch m {
	case PipelineDirect:
		return "direct"
	case PipelineTexture:
		return "texture"
	}
	return fmt.Sprintf("PipelineMode(%d)", int(m))
}

// FramePresenter converts console frames to RGBA and presents them.
type FramePresenter struct {
	mutex  sync.RWMutex
	output VideoOutput

	buffer  IndexBuffer
	palette *Palette

	mode     PipelineMode
	direct   *DirectPipeline
	textured *TexturePipeline

	texture       *ConsoleTexture
	texturePixels []byte

	resolution Resolution
	surface    []byte

	started    bool
	frameCount uint64
}

// NewFramePresenter wires a presenter to its backend. The sampler config
// only affects the texture pipeline; the direct pipeline never filters.
func NewFramePresenter(output VideoOutput, palette *Palette, mode PipelineMode, sampler SamplerConfig) *FramePresenter {
	texture, _ := NewConsoleTexture(ConsoleWidth, ConsoleHeight)
	fp := &FramePresenter{
		output:        output,
		palette:       palette,
		mode:          mode,
		texture:       texture,
		texturePixels: make([]byte, ConsolePixels*4),
	}
	fp.direct = NewDirectPipeline(&fp.buffer, palette)
	fp.textured = NewTexturePipeline(fp.texture, sampler)

	if rn, ok := output.(ResizeNotifier); ok {
		rn.SetResizeHandler(fp.setResolution)
	}
	return fp
}

// Start configures and starts the backend, then binds the initial output
// resolution from the backend's view of its surface.
func (fp *FramePresenter) Start(config DisplayConfig) error {
	if err := fp.output.SetDisplayConfig(config); err != nil {
		return err
	}
	if err := fp.output.Start(); err != nil {
		return err
	}

	actual := fp.output.GetDisplayConfig()
	width, height := actual.Width, actual.Height
	if width < 1 || height < 1 {
		width = ConsoleWidth * ClampScale(config.Scale)
		height = ConsoleHeight * ClampScale(config.Scale)
	}
	fp.setResolution(width, height)

	fp.mutex.Lock()
	fp.started = true
	fp.mutex.Unlock()
	return nil
}

// Stop stops the backend. The presenter keeps its frame state so a
// subsequent Start resumes where it left off.
func (fp *FramePresenter) Stop() error {
	fp.mutex.Lock()
	fp.started = false
	fp.mutex.Unlock()
	return fp.output.Stop()
}

func (fp *FramePresenter) Close() error {
	fp.mutex.Lock()
	fp.started = false
	fp.mutex.Unlock()
	return fp.output.Close()
}

func (fp *FramePresenter) Mode() PipelineMode {
	fp.mutex.RLock()
	defer fp.mutex.RUnlock()
	return fp.mode
}

// setResolution rebinds the output surface size on both pipelines. Runs
// between frames only; Present holds the same lock for a whole draw.
func (fp *FramePresenter) setResolution(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	fp.mutex.Lock()
	fp.resolution = Resolution{Width: uint32(width), Height: uint32(height)}
	fp.direct.SetResolution(fp.resolution)
	fp.textured.SetResolution(fp.resolution)
	if want := width * height * 4; len(fp.surface) != want {
		fp.surface = make([]byte, want)
	}
	fp.mutex.Unlock()
}

// Resolution returns the currently bound output surface size.
func (fp *FramePresenter) Resolution() Resolution {
	fp.mutex.RLock()
	defer fp.mutex.RUnlock()
	return fp.resolution
}

// WriteFrame replaces the console frame with a full 256x240 buffer of
// palette indices. Indices are masked to the palette range on write, the
// same guarantee IndexBuffer.Set gives piecewise producers.
func (fp *FramePresenter) WriteFrame(indices []uint32) error {
	if len(indices) != ConsolePixels {
		return &VideoError{
			Operation: "frame write",
			Details:   fmt.Sprintf("index buffer length %d, want %d", len(indices), ConsolePixels),
		}
	}
	fp.mutex.Lock()
	for i, index := range indices {
		fp.buffer[i] = index & (PaletteSize - 1)
	}
	fp.mutex.Unlock()
	return nil
}

// Buffer exposes the presenter's index buffer for in-place producers. The
// caller must not write while Present runs; drive both from one goroutine
// or write through WriteFrame instead.
func (fp *FramePresenter) Buffer() *IndexBuffer {
	return &fp.buffer
}

// SetPalette swaps the active palette.
func (fp *FramePresenter) SetPalette(palette *Palette) {
	fp.mutex.Lock()
	fp.palette = palette
	fp.direct = NewDirectPipeline(&fp.buffer, palette)
	fp.direct.SetResolution(fp.resolution)
	fp.mutex.Unlock()
}

// Present renders the current console frame through the configured pipeline
// and hands the RGBA surface to the backend. A resize landing between this
// frame and the next simply takes effect on the next call.
func (fp *FramePresenter) Present() error {
	fp.mutex.Lock()

	if fp.resolution.Width == 0 || fp.resolution.Height == 0 {
		fp.mutex.Unlock()
		return &VideoError{Operation: "present", Details: "no output resolution bound"}
	}

	var err error
	switch fp.mode {
	case PipelineTexture:
		fp.buffer.ResolveRGBA(fp.palette, fp.texturePixels)
		if err = fp.texture.WritePixels(fp.texturePixels); err == nil {
			err = fp.textured.RenderFrame(fp.surface)
		}
	default:
		err = fp.direct.RenderFrame(fp.surface)
	}
	if err != nil {
		fp.mutex.Unlock()
		return err
	}

	frame := fp.surface
	fp.mutex.Unlock()

	if err := fp.output.UpdateFrame(frame); err != nil {
		return err
	}
	atomic.AddUint64(&fp.frameCount, 1)
	return nil
}

// GetFrameCount returns how many frames this presenter has presented.
func (fp *FramePresenter) GetFrameCount() uint64 {
	return atomic.LoadUint64(&fp.frameCount)
}

// SavePNG writes the current console frame, rendered at the bound output
// resolution through the configured pipeline, to path.
func (fp *FramePresenter) SavePNG(path string) error {
	fp.mutex.Lock()

	res := fp.resolution
	if res.Width == 0 || res.Height == 0 {
		fp.mutex.Unlock()
		return &VideoError{Operation: "snapshot", Details: "no output resolution bound"}
	}
	img := image.NewRGBA(image.Rect(0, 0, int(res.Width), int(res.Height)))
	var err error
	switch fp.mode {
	case PipelineTexture:
		fp.buffer.ResolveRGBA(fp.palette, fp.texturePixels)
		if err = fp.texture.WritePixels(fp.texturePixels); err == nil {
			err = fp.textured.RenderFrame(img.Pix)
		}
	default:
		err = fp.direct.RenderFrame(img.Pix)
	}
	fp.mutex.Unlock()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &VideoError{Operation: "snapshot", Details: "create " + path, Err: err}
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return &VideoError{Operation: "snapshot", Details: "encode " + path, Err: err}
	}
	return nil
}
