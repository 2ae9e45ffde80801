//go:build !headless

// video_backend_ebiten.go - Ebiten video backend for FamiPresent

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

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

// EbitenOutput is the windowed backend. The window's inner size is the
// output surface: every time it changes, the resize handler reports the new
// size so the presenter can rebind its resolution value before the next
// frame is rendered.
type EbitenOutput struct {
	running     bool
	window      *ebiten.Image
	width       int // expected frame dimensions, in window pixels
	height      int
	frameW      int // dimensions of the frame currently held in frameBuffer
	frameH      int
	format      PixelFormat
	fullscreen  bool
	scale       int
	windowedW   int
	windowedH   int
	frameBuffer []byte
	bufferMutex sync.RWMutex
	frameCount  uint64
	refreshRate int
	vsyncChan   chan struct{}
	done        chan struct{}

	layoutW atomic.Int64
	layoutH atomic.Int64

	resizeHandler func(width, height int)

	clipboardOnce sync.Once
	clipboardOK   bool
	showStatusBar bool
	statusLine    string
}

func NewEbitenOutput() (VideoOutput, error) {
	eo := &EbitenOutput{
		width:         ConsoleWidth,
		height:        ConsoleHeight,
		frameW:        ConsoleWidth,
		frameH:        ConsoleHeight,
		format:        PixelFormatRGBA,
		scale:         1,
		windowedW:     ConsoleWidth,
		windowedH:     ConsoleHeight,
		frameBuffer:   make([]byte, ConsolePixels*4),
		refreshRate:   60,
		vsyncChan:     make(chan struct{}, 1),
		done:          make(chan struct{}),
		showStatusBar: true,
	}
	eo.layoutW.Store(ConsoleWidth)
	eo.layoutH.Store(ConsoleHeight)
	return eo, nil
}

func (eo *EbitenOutput) Start() error {
	if eo.running {
		return nil
	}
	eo.bufferMutex.Lock()
	eo.done = make(chan struct{})
	eo.bufferMutex.Unlock()
	eo.running = true
	ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
	ebiten.SetWindowTitle("Fami Present (c) 2024 - 2026 Zayn Otley")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)
	if eo.fullscreen {
		ebiten.SetFullscreen(true)
	}

	go func() {
		defer func() {
			eo.running = false
			eo.bufferMutex.RLock()
			done := eo.done
			eo.bufferMutex.RUnlock()
			select {
			case <-done:
			default:
				close(done)
			}
		}()
		if err := ebiten.RunGame(eo); err != nil {
			fmt.Printf("Ebiten error: %v\n", err)
		}
	}()

	// Wait for first Draw call to ensure Ebiten is ready
	<-eo.vsyncChan
	return nil
}

func (eo *EbitenOutput) Stop() error {
	eo.running = false
	return nil
}

func (eo *EbitenOutput) Close() error {
	return eo.Stop()
}

func (eo *EbitenOutput) Done() <-chan struct{} {
	eo.bufferMutex.RLock()
	done := eo.done
	eo.bufferMutex.RUnlock()
	return done
}

func (eo *EbitenOutput) IsStarted() bool {
	return eo.running
}

// UpdateFrame accepts one fully rendered RGBA frame at the backend's
// current surface size. A frame of any other size is rejected; that only
// happens when a resize races the renderer, and the presenter re-renders
// at the corrected size on the next frame anyway.
func (eo *EbitenOutput) UpdateFrame(data []byte) error {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()
	if len(data) != eo.width*eo.height*4 {
		return &VideoError{
			Operation: "frame update",
			Details:   fmt.Sprintf("frame length %d, want %dx%dx4", len(data), eo.width, eo.height),
		}
	}
	if len(eo.frameBuffer) != len(data) {
		eo.frameBuffer = make([]byte, len(data))
	}
	copy(eo.frameBuffer, data)
	eo.frameW = eo.width
	eo.frameH = eo.height
	return nil
}

func (eo *EbitenOutput) SetDisplayConfig(config DisplayConfig) error {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()

	width := config.Width
	height := config.Height
	if width <= 0 {
		width = ConsoleWidth
	}
	if height <= 0 {
		height = ConsoleHeight
	}
	eo.format = config.PixelFormat
	eo.scale = ClampScale(config.Scale)
	eo.windowedW = width * eo.scale
	eo.windowedH = height * eo.scale
	eo.width = eo.windowedW
	eo.height = eo.windowedH
	eo.layoutW.Store(int64(eo.windowedW))
	eo.layoutH.Store(int64(eo.windowedH))
	if config.RefreshRate > 0 {
		eo.refreshRate = config.RefreshRate
	}
	eo.fullscreen = config.Fullscreen
	if eo.running {
		ebiten.SetFullscreen(eo.fullscreen)
		if !eo.fullscreen {
			ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
		}
	}
	if eo.window != nil {
		eo.window.Dispose()
		eo.window = nil
	}
	return nil
}

func (eo *EbitenOutput) GetDisplayConfig() DisplayConfig {
	eo.bufferMutex.RLock()
	defer eo.bufferMutex.RUnlock()
	return DisplayConfig{
		Width:       eo.width,
		Height:      eo.height,
		Scale:       eo.scale,
		PixelFormat: eo.format,
		RefreshRate: eo.refreshRate,
		VSync:       true,
		Fullscreen:  eo.fullscreen,
	}
}

func (eo *EbitenOutput) WaitForVSync() error {
	<-eo.vsyncChan
	return nil
}

func (eo *EbitenOutput) GetFrameCount() uint64 {
	return eo.frameCount
}

func (eo *EbitenOutput) GetRefreshRate() int {
	return eo.refreshRate
}

func (eo *EbitenOutput) SetResizeHandler(fn func(width, height int)) {
	eo.bufferMutex.Lock()
	eo.resizeHandler = fn
	eo.bufferMutex.Unlock()
}

// SetStatusLine replaces the text shown in the status bar.
func (eo *EbitenOutput) SetStatusLine(s string) {
	eo.bufferMutex.Lock()
	eo.statusLine = s
	eo.bufferMutex.Unlock()
}

func (eo *EbitenOutput) GetSnapshot() (FrameSnapshot, error) {
	eo.bufferMutex.RLock()
	defer eo.bufferMutex.RUnlock()

	snapshot := FrameSnapshot{
		Buffer:    make([]byte, len(eo.frameBuffer)),
		Width:     eo.frameW,
		Height:    eo.frameH,
		Format:    eo.format,
		Timestamp: time.Now(),
	}
	copy(snapshot.Buffer, eo.frameBuffer)
	return snapshot, nil
}

func (eo *EbitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if !eo.running {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		eo.bufferMutex.Lock()
		eo.fullscreen = !eo.fullscreen
		ebiten.SetFullscreen(eo.fullscreen)
		if !eo.fullscreen {
			ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
		}
		eo.bufferMutex.Unlock()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		eo.bufferMutex.Lock()
		eo.showStatusBar = !eo.showStatusBar
		eo.bufferMutex.Unlock()
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		eo.handleClipboardCopy()
	}

	eo.reportResize()
	return nil
}

// reportResize tells the presenter about a changed surface size. Runs in
// Update, between frames, so a draw never sees the resolution move under it.
func (eo *EbitenOutput) reportResize() {
	w := int(eo.layoutW.Load())
	h := int(eo.layoutH.Load())

	eo.bufferMutex.Lock()
	changed := w != eo.width || h != eo.height
	if changed {
		eo.width = w
		eo.height = h
	}
	handler := eo.resizeHandler
	eo.bufferMutex.Unlock()

	if changed && handler != nil {
		handler(w, h)
	}
}

// handleClipboardCopy pushes the current frame to the system clipboard as a
// PNG image.
func (eo *EbitenOutput) handleClipboardCopy() {
	eo.clipboardOnce.Do(func() {
		eo.clipboardOK = clipboard.Init() == nil
	})
	if !eo.clipboardOK {
		return
	}

	snap, err := eo.GetSnapshot()
	if err != nil || snap.Width == 0 || snap.Height == 0 {
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, snap.Width, snap.Height))
	copy(img.Pix, snap.Buffer)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	eo.bufferMutex.Lock()
	frameW, frameH := eo.frameW, eo.frameH
	if eo.window == nil || eo.window.Bounds().Dx() != frameW || eo.window.Bounds().Dy() != frameH {
		if eo.window != nil {
			eo.window.Dispose()
		}
		eo.window = ebiten.NewImage(frameW, frameH)
	}
	eo.window.WritePixels(eo.frameBuffer)
	showStatusBar := eo.showStatusBar
	statusLine := eo.statusLine
	eo.bufferMutex.Unlock()

	// Normally the frame already matches the screen 1:1. For the one frame
	// after a resize it is stale-sized; stretch it so the window never
	// shows garbage while the presenter catches up.
	opts := &ebiten.DrawImageOptions{}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	if sw != frameW || sh != frameH {
		opts.GeoM.Scale(float64(sw)/float64(frameW), float64(sh)/float64(frameH))
	}
	screen.DrawImage(eo.window, opts)

	if showStatusBar {
		eo.drawStatusBar(screen, statusLine)
	}

	eo.frameCount++
	select {
	case eo.vsyncChan <- struct{}{}:
	default:
	}
}

func (eo *EbitenOutput) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	eo.layoutW.Store(int64(outsideWidth))
	eo.layoutH.Store(int64(outsideHeight))
	return outsideWidth, outsideHeight
}

func (eo *EbitenOutput) drawStatusBar(screen *ebiten.Image, statusLine string) {
	barHeight := 18
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	if barHeight >= sh {
		return
	}
	y := sh - barHeight
	ebitenutil.DrawRect(screen, 0, float64(y), float64(sw), float64(barHeight), color.RGBA{0, 0, 0, 180})

	face := basicfont.Face7x13
	if statusLine == "" {
		statusLine = fmt.Sprintf("%dx%d", sw, sh)
	}
	left := fmt.Sprintf("%s  %0.1f fps", statusLine, ebiten.CurrentFPS())
	text.Draw(screen, left, face, 6, y+13, color.RGBA{190, 190, 190, 255})

	legend := "F11 Fullscreen  F12 Status Bar  Ctrl+Shift+C Copy Frame"
	legendW := text.BoundString(face, legend).Dx()
	legendX := sw - legendW - 6
	if legendX < 6 {
		legendX = 6
	}
	text.Draw(screen, legend, face, legendX, y+13, color.RGBA{160, 160, 160, 255})
}
