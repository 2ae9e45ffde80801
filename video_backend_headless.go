//go:build headless

// video_backend_headless.go - Headless video backend stub for CI builds

package main

import (
	"sync"
	"sync/atomic"
	"time"
)

// HeadlessVideoOutput stands in for the windowed backend when building with
// the headless tag. It keeps the last presented frame so higher layers can
// still snapshot.
type HeadlessVideoOutput struct {
	mu          sync.Mutex
	started     bool
	config      DisplayConfig
	frameCount  uint64
	refreshRate int
	lastFrame   []byte
	resize      func(width, height int)
}

func NewEbitenOutput() (VideoOutput, error) {
	return &HeadlessVideoOutput{refreshRate: 60}, nil
}

func (h *HeadlessVideoOutput) Start() error {
	h.started = true
	return nil
}

func (h *HeadlessVideoOutput) Stop() error {
	h.started = false
	return nil
}

func (h *HeadlessVideoOutput) Close() error {
	h.started = false
	return nil
}

func (h *HeadlessVideoOutput) IsStarted() bool {
	return h.started
}

func (h *HeadlessVideoOutput) SetDisplayConfig(config DisplayConfig) error {
	h.mu.Lock()
	h.config = config
	h.mu.Unlock()
	return nil
}

func (h *HeadlessVideoOutput) GetDisplayConfig() DisplayConfig {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.config
}

func (h *HeadlessVideoOutput) UpdateFrame(buffer []byte) error {
	h.mu.Lock()
	if len(h.lastFrame) != len(buffer) {
		h.lastFrame = make([]byte, len(buffer))
	}
	copy(h.lastFrame, buffer)
	h.mu.Unlock()
	atomic.AddUint64(&h.frameCount, 1)
	return nil
}

func (h *HeadlessVideoOutput) WaitForVSync() error {
	return nil
}

func (h *HeadlessVideoOutput) GetFrameCount() uint64 {
	return atomic.LoadUint64(&h.frameCount)
}

func (h *HeadlessVideoOutput) GetRefreshRate() int {
	if h.refreshRate == 0 {
		return 60
	}
	return h.refreshRate
}

func (h *HeadlessVideoOutput) SetResizeHandler(fn func(width, height int)) {
	h.mu.Lock()
	h.resize = fn
	h.mu.Unlock()
}

func (h *HeadlessVideoOutput) GetSnapshot() (FrameSnapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	snap := FrameSnapshot{
		Buffer:    make([]byte, len(h.lastFrame)),
		Width:     h.config.Width,
		Height:    h.config.Height,
		Format:    h.config.PixelFormat,
		Timestamp: time.Now(),
	}
	copy(snap.Buffer, h.lastFrame)
	return snap, nil
}
