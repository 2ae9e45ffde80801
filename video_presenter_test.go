// video_presenter_test.go - Frame presenter tests against a fake backend

package main

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeOutput is an in-memory VideoOutput for presenter tests. It records
// the last presented frame and can simulate a surface resize.
type fakeOutput struct {
	started   bool
	config    DisplayConfig
	lastFrame []byte
	frames    uint64
	resize    func(width, height int)
}

func (f *fakeOutput) Start() error    { f.started = true; return nil }
func (f *fakeOutput) Stop() error     { f.started = false; return nil }
func (f *fakeOutput) Close() error    { f.started = false; return nil }
func (f *fakeOutput) IsStarted() bool { return f.started }

func (f *fakeOutput) SetDisplayConfig(config DisplayConfig) error {
	scale := ClampScale(config.Scale)
	f.config = config
	f.config.Width = config.Width * scale
	f.config.Height = config.Height * scale
	return nil
}

func (f *fakeOutput) GetDisplayConfig() DisplayConfig { return f.config }

func (f *fakeOutput) UpdateFrame(buffer []byte) error {
	f.lastFrame = append(f.lastFrame[:0], buffer...)
	f.frames++
	return nil
}

func (f *fakeOutput) WaitForVSync() error   { return nil }
func (f *fakeOutput) GetFrameCount() uint64 { return f.frames }
func (f *fakeOutput) GetRefreshRate() int   { return 60 }

func (f *fakeOutput) SetResizeHandler(fn func(width, height int)) { f.resize = fn }

func startPresenter(t *testing.T, mode PipelineMode) (*FramePresenter, *fakeOutput) {
	t.Helper()
	out := &fakeOutput{}
	fp := NewFramePresenter(out, DefaultPalette(), mode, SamplerConfig{Filter: FilterNearest})
	config := DisplayConfig{
		Width:       ConsoleWidth,
		Height:      ConsoleHeight,
		Scale:       2,
		RefreshRate: 60,
		PixelFormat: PixelFormatRGBA,
	}
	if err := fp.Start(config); err != nil {
		t.Fatal(err)
	}
	return fp, out
}

func TestPresenterBindsInitialResolution(t *testing.T) {
	fp, _ := startPresenter(t, PipelineDirect)
	res := fp.Resolution()
	if res.Width != ConsoleWidth*2 || res.Height != ConsoleHeight*2 {
		t.Errorf("bound resolution %dx%d, want %dx%d",
			res.Width, res.Height, ConsoleWidth*2, ConsoleHeight*2)
	}
}

func TestPresenterPresentsFrames(t *testing.T) {
	for _, mode := range []PipelineMode{PipelineDirect, PipelineTexture} {
		fp, out := startPresenter(t, mode)
		fp.Buffer().Fill(0x30)

		if err := fp.Present(); err != nil {
			t.Fatalf("%v: %v", mode, err)
		}
		if fp.GetFrameCount() != 1 {
			t.Errorf("%v: presenter frame count = %d, want 1", mode, fp.GetFrameCount())
		}
		res := fp.Resolution()
		if len(out.lastFrame) != int(res.Width)*int(res.Height)*4 {
			t.Fatalf("%v: presented frame is %d bytes, want %d",
				mode, len(out.lastFrame), int(res.Width)*int(res.Height)*4)
		}
		want := DefaultPalette().PackedEntry(0x30)
		got := [4]byte{out.lastFrame[0], out.lastFrame[1], out.lastFrame[2], out.lastFrame[3]}
		if got != want {
			t.Errorf("%v: first presented pixel = %v, want %v", mode, got, want)
		}
	}
}

func TestPresenterWriteFrame(t *testing.T) {
	fp, out := startPresenter(t, PipelineDirect)

	indices := make([]uint32, ConsolePixels)
	for i := range indices {
		indices[i] = 0x21 | 0x40 // out-of-domain bit must be masked on write
	}
	if err := fp.WriteFrame(indices); err != nil {
		t.Fatal(err)
	}
	if err := fp.Present(); err != nil {
		t.Fatal(err)
	}
	want := DefaultPalette().PackedEntry(0x21)
	got := [4]byte{out.lastFrame[0], out.lastFrame[1], out.lastFrame[2], out.lastFrame[3]}
	if got != want {
		t.Errorf("presented pixel = %v, want masked entry 0x21 = %v", got, want)
	}

	if err := fp.WriteFrame(indices[:10]); err == nil {
		t.Error("short index slice should be rejected")
	}
}

func TestPresenterFollowsResize(t *testing.T) {
	fp, out := startPresenter(t, PipelineDirect)
	fp.Buffer().Fill(0x16)

	out.resize(1920, 1080)
	if res := fp.Resolution(); res.Width != 1920 || res.Height != 1080 {
		t.Fatalf("resolution after resize = %dx%d, want 1920x1080", res.Width, res.Height)
	}
	if err := fp.Present(); err != nil {
		t.Fatal(err)
	}
	if len(out.lastFrame) != 1920*1080*4 {
		t.Errorf("presented frame is %d bytes, want %d", len(out.lastFrame), 1920*1080*4)
	}
}

func TestPresenterSetPalette(t *testing.T) {
	fp, out := startPresenter(t, PipelineDirect)
	fp.Buffer().Fill(0)

	var colors [PaletteSize]ColorRGBA
	colors[0] = ColorRGBA{R: 1, G: 0, B: 1, A: 1}
	fp.SetPalette(NewPalette(colors))

	if err := fp.Present(); err != nil {
		t.Fatal(err)
	}
	got := [4]byte{out.lastFrame[0], out.lastFrame[1], out.lastFrame[2], out.lastFrame[3]}
	if got != [4]byte{255, 0, 255, 255} {
		t.Errorf("presented pixel = %v, want magenta from the swapped palette", got)
	}
}

func TestPresenterSavePNG(t *testing.T) {
	fp, _ := startPresenter(t, PipelineDirect)
	fp.Buffer().Fill(0x2A)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := fp.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("snapshot PNG is empty")
	}
}

func TestPresenterRequiresResolution(t *testing.T) {
	out := &fakeOutput{}
	fp := NewFramePresenter(out, DefaultPalette(), PipelineDirect, SamplerConfig{})
	if err := fp.Present(); err == nil {
		t.Error("present before Start should fail with no bound resolution")
	}
}
