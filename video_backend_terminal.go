// video_backend_terminal.go - ANSI truecolor terminal preview backend

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
video_backend_terminal.go - ANSI truecolor terminal preview backend

Presents frames into the controlling terminal using half-block characters:
each character cell shows two vertically stacked pixels, foreground color on
top, background color below. Useful for eyeballing output over SSH where no
window system exists. The terminal's cell grid is the output surface, so the
presenter renders the direct pipeline at terminal resolution and the usual
mapping semantics apply unchanged.
*/

package main

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/term"
)

const terminalStatusRows = 1

// TerminalOutput implements VideoOutput on a raw-mode terminal.
type TerminalOutput struct {
	mu          sync.Mutex
	started     bool
	fd          int
	oldState    *term.State
	out         *bufio.Writer
	cols        int
	rows        int // pixel rows = 2 * character rows
	frame       []byte
	frameW      int
	frameH      int
	frameCount  uint64
	refreshRate int
	format      PixelFormat
	resize      func(width, height int)
	statusLine  string
	stopCh      chan struct{}
	done        chan struct{}
	stopOnce    sync.Once
}

func NewTerminalOutput() (VideoOutput, error) {
	return &TerminalOutput{
		refreshRate: 30,
		format:      PixelFormatRGBA,
		out:         bufio.NewWriterSize(os.Stdout, 1<<20),
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
	}, nil
}

// Start puts the terminal in raw mode, hides the cursor and begins watching
// stdin for 'q' / Ctrl-C. The surface size is the terminal size, minus one
// row for the status line, with two pixels per character cell vertically.
func (to *TerminalOutput) Start() error {
	to.mu.Lock()
	defer to.mu.Unlock()
	if to.started {
		return nil
	}

	to.fd = int(os.Stdin.Fd())
	if !term.IsTerminal(to.fd) {
		return &VideoError{Operation: "terminal start", Details: "stdin is not a terminal"}
	}
	cols, rows, err := term.GetSize(to.fd)
	if err != nil {
		return &VideoError{Operation: "terminal start", Details: "size query", Err: err}
	}
	oldState, err := term.MakeRaw(to.fd)
	if err != nil {
		return &VideoError{Operation: "terminal start", Details: "raw mode", Err: err}
	}
	to.oldState = oldState
	to.cols = cols
	to.rows = (rows - terminalStatusRows) * 2
	if to.cols < 1 {
		to.cols = 1
	}
	if to.rows < 2 {
		to.rows = 2
	}
	to.started = true

	// Hide cursor, clear screen.
	fmt.Fprint(to.out, "\x1b[?25l\x1b[2J")
	to.out.Flush()

	go to.watchInput()
	return nil
}

// watchInput polls stdin for a quit key. Raw mode turns Ctrl-C into a plain
// byte, so both 'q' and 0x03 stop the backend.
func (to *TerminalOutput) watchInput() {
	defer close(to.done)
	if err := syscall.SetNonblock(to.fd, true); err != nil {
		return
	}
	defer syscall.SetNonblock(to.fd, false)

	buf := make([]byte, 1)
	for {
		select {
		case <-to.stopCh:
			return
		default:
		}
		n, err := syscall.Read(to.fd, buf)
		if n > 0 && (buf[0] == 'q' || buf[0] == 0x03) {
			to.Stop()
			return
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK || n == 0 {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
	}
}

func (to *TerminalOutput) Stop() error {
	to.stopOnce.Do(func() {
		close(to.stopCh)
	})

	to.mu.Lock()
	defer to.mu.Unlock()
	if !to.started {
		return nil
	}
	to.started = false

	// Reset colors, show cursor, drop below the frame.
	fmt.Fprint(to.out, "\x1b[0m\x1b[?25h\r\n")
	to.out.Flush()
	if to.oldState != nil {
		_ = term.Restore(to.fd, to.oldState)
		to.oldState = nil
	}
	return nil
}

func (to *TerminalOutput) Close() error {
	return to.Stop()
}

func (to *TerminalOutput) Done() <-chan struct{} {
	return to.done
}

func (to *TerminalOutput) IsStarted() bool {
	to.mu.Lock()
	defer to.mu.Unlock()
	return to.started
}

func (to *TerminalOutput) SetDisplayConfig(config DisplayConfig) error {
	to.mu.Lock()
	defer to.mu.Unlock()
	if config.RefreshRate > 0 {
		to.refreshRate = config.RefreshRate
	}
	to.format = config.PixelFormat
	return nil
}

func (to *TerminalOutput) GetDisplayConfig() DisplayConfig {
	to.mu.Lock()
	defer to.mu.Unlock()
	return DisplayConfig{
		Width:       to.cols,
		Height:      to.rows,
		Scale:       1,
		PixelFormat: to.format,
		RefreshRate: to.refreshRate,
	}
}

// SurfaceSize returns the current output surface in pixels: terminal
// columns by twice the usable rows.
func (to *TerminalOutput) SurfaceSize() (width, height int) {
	to.mu.Lock()
	defer to.mu.Unlock()
	return to.cols, to.rows
}

func (to *TerminalOutput) SetResizeHandler(fn func(width, height int)) {
	to.mu.Lock()
	to.resize = fn
	to.mu.Unlock()
}

// SetStatusLine replaces the text shown below the frame.
func (to *TerminalOutput) SetStatusLine(s string) {
	to.mu.Lock()
	to.statusLine = s
	to.mu.Unlock()
}

// pollSize re-reads the terminal size and reports a change to the resize
// handler. Called between frames from UpdateFrame, never during a draw.
func (to *TerminalOutput) pollSize() {
	cols, rows, err := term.GetSize(to.fd)
	if err != nil {
		return
	}
	pixelRows := (rows - terminalStatusRows) * 2
	if pixelRows < 2 {
		pixelRows = 2
	}
	if cols < 1 {
		cols = 1
	}

	to.mu.Lock()
	changed := cols != to.cols || pixelRows != to.rows
	if changed {
		to.cols = cols
		to.rows = pixelRows
		fmt.Fprint(to.out, "\x1b[2J")
	}
	handler := to.resize
	to.mu.Unlock()

	if changed && handler != nil {
		handler(cols, pixelRows)
	}
}

// UpdateFrame renders one RGBA frame into the terminal. The frame must be
// sized to the current surface; anything else is a transient resize race
// and is rejected for the presenter to retry at the corrected size.
func (to *TerminalOutput) UpdateFrame(buffer []byte) error {
	to.mu.Lock()
	if !to.started {
		to.mu.Unlock()
		return &VideoError{Operation: "frame update", Details: "terminal backend not started"}
	}
	cols, rows := to.cols, to.rows
	if len(buffer) != cols*rows*4 {
		to.mu.Unlock()
		return &VideoError{
			Operation: "frame update",
			Details:   fmt.Sprintf("frame length %d, want %dx%dx4", len(buffer), cols, rows),
		}
	}
	if len(to.frame) != len(buffer) {
		to.frame = make([]byte, len(buffer))
	}
	copy(to.frame, buffer)
	to.frameW = cols
	to.frameH = rows
	to.renderLocked()
	atomic.AddUint64(&to.frameCount, 1)
	to.mu.Unlock()

	to.pollSize()
	return nil
}

// renderLocked writes the frame as half-block cells: the top pixel of each
// cell pair is the foreground of '▀', the bottom pixel its background.
func (to *TerminalOutput) renderLocked() {
	out := to.out
	fmt.Fprint(out, "\x1b[H")
	for cy := 0; cy < to.frameH/2; cy++ {
		top := cy * 2 * to.frameW * 4
		bottom := (cy*2 + 1) * to.frameW * 4
		for x := 0; x < to.frameW; x++ {
			t := to.frame[top+x*4 : top+x*4+3]
			b := to.frame[bottom+x*4 : bottom+x*4+3]
			fmt.Fprintf(out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				t[0], t[1], t[2], b[0], b[1], b[2])
		}
		fmt.Fprint(out, "\x1b[0m\r\n")
	}
	status := to.statusLine
	if status == "" {
		status = fmt.Sprintf("%dx%d", to.frameW, to.frameH)
	}
	fmt.Fprintf(out, "\x1b[0m\x1b[K%s  [q quits]\r", status)
	out.Flush()
}

func (to *TerminalOutput) WaitForVSync() error {
	return nil
}

func (to *TerminalOutput) GetFrameCount() uint64 {
	return atomic.LoadUint64(&to.frameCount)
}

func (to *TerminalOutput) GetRefreshRate() int {
	to.mu.Lock()
	defer to.mu.Unlock()
	return to.refreshRate
}

func (to *TerminalOutput) GetSnapshot() (FrameSnapshot, error) {
	to.mu.Lock()
	defer to.mu.Unlock()
	snap := FrameSnapshot{
		Buffer:    make([]byte, len(to.frame)),
		Width:     to.frameW,
		Height:    to.frameH,
		Format:    to.format,
		Timestamp: time.Now(),
	}
	copy(snap.Buffer, to.frame)
	return snap, nil
}
