// main.go - Main entry point for the FamiPresent demo host

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
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████\033[0m\n\033[38;2;255;50;147m▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀\033[0m\n\033[38;2;255;80;147m▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███\033[0m\n\033[38;2;255;110;147m░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄\033[0m\n\033[38;2;255;140;147m░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒\033[0m\n\033[38;2;255;170;147m░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░\033[0m\n\033[38;2;255;200;147m ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░\033[0m\n\033[38;2;255;230;147m ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░\033[0m\n\033[38;2;255;255;147m ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░\033[0m")
	fmt.Println("\nGPU-style presentation of 256x240 palette-indexed console frames.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/FamiPresent")
	fmt.Println("Buy me a coffee: https://ko-fi.com/intuition/tip")
	fmt.Println("License: GPLv3 or later")
}

func patternNames() string {
	names := make([]string, 0, len(builtinPatterns))
	for name := range builtinPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func main() {
	var (
		backendName  string
		pipelineName string
		filterName   string
		scale        int
		fullscreen   bool
		palettePath  string
		patternName  string
		frameLimit   uint64
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&backendName, "backend", "ebiten", "Video backend: ebiten or terminal")
	flagSet.StringVar(&pipelineName, "pipeline", "direct", "Presentation pipeline: direct or texture")
	flagSet.StringVar(&filterName, "filter", "nearest", "Texture pipeline filter: nearest or linear")
	flagSet.IntVar(&scale, "scale", 3, "Initial window scale factor (1-8)")
	flagSet.BoolVar(&fullscreen, "fullscreen", false, "Start fullscreen")
	flagSet.StringVar(&palettePath, "pal", "", "Load a 64-entry .pal palette file")
	flagSet.StringVar(&patternName, "pattern", "bars", "Built-in pattern: "+patternNames())
	flagSet.Uint64Var(&frameLimit, "frames", 0, "Stop after N frames (0 runs until quit)")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./famipresent [-backend ebiten|terminal] [-pipeline direct|texture] [-filter nearest|linear] [-scale N] [-pal file.pal] [-pattern " + patternNames() + "] [script.lua]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		flagSet.Usage()
		os.Exit(1)
	}

	backend := VIDEO_BACKEND_EBITEN
	switch backendName {
	case "ebiten":
	case "terminal":
		backend = VIDEO_BACKEND_TERMINAL
	default:
		fmt.Printf("Unknown backend: %s\n", backendName)
		flagSet.Usage()
		os.Exit(1)
	}
	if backend == VIDEO_BACKEND_EBITEN {
		boilerPlate()
	}

	mode := PipelineDirect
	switch pipelineName {
	case "direct":
	case "texture":
		mode = PipelineTexture
	default:
		fmt.Printf("Unknown pipeline: %s\n", pipelineName)
		flagSet.Usage()
		os.Exit(1)
	}

	sampler := SamplerConfig{Filter: FilterNearest}
	switch filterName {
	case "nearest":
	case "linear":
		sampler.Filter = FilterLinear
	default:
		fmt.Printf("Unknown filter: %s\n", filterName)
		flagSet.Usage()
		os.Exit(1)
	}

	palette := DefaultPalette()
	if palettePath != "" {
		loaded, err := LoadPaletteFile(palettePath)
		if err != nil {
			fmt.Printf("Error loading palette: %v\n", err)
			os.Exit(1)
		}
		palette = loaded
	}

	output, err := NewVideoOutput(backend)
	if err != nil {
		fmt.Printf("Failed to initialize video: %v\n", err)
		os.Exit(1)
	}

	presenter := NewFramePresenter(output, palette, mode, sampler)

	// Frame source: a Lua script if one was given, a built-in pattern
	// otherwise. Both paint the presenter's index buffer in place.
	var renderFrame func(n uint64) error
	if script := flagSet.Arg(0); script != "" {
		ps, err := LoadPatternScript(script, presenter.Buffer())
		if err != nil {
			fmt.Printf("Error loading script: %v\n", err)
			os.Exit(1)
		}
		defer ps.Close()
		renderFrame = ps.RenderFrame
	} else {
		pattern, ok := builtinPatterns[patternName]
		if !ok {
			fmt.Printf("Unknown pattern: %s\n", patternName)
			flagSet.Usage()
			os.Exit(1)
		}
		renderFrame = func(n uint64) error {
			pattern(presenter.Buffer(), n)
			return nil
		}
	}

	config := DisplayConfig{
		Width:       ConsoleWidth,
		Height:      ConsoleHeight,
		Scale:       ClampScale(scale),
		RefreshRate: 60,
		PixelFormat: PixelFormatRGBA,
		VSync:       true,
		Fullscreen:  fullscreen,
	}
	if err := presenter.Start(config); err != nil {
		fmt.Printf("Failed to start presenter: %v\n", err)
		os.Exit(1)
	}
	defer presenter.Close()

	if sl, ok := output.(interface{ SetStatusLine(string) }); ok {
		status := presenter.Mode().String() + " pipeline"
		if presenter.Mode() == PipelineTexture {
			status += ", " + sampler.Filter.String() + " filter"
		}
		sl.SetStatusLine(status)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var backendDone <-chan struct{}
	if dn, ok := output.(interface{ Done() <-chan struct{} }); ok {
		backendDone = dn.Done()
	}

	ticker := time.NewTicker(time.Second / time.Duration(config.RefreshRate))
	defer ticker.Stop()

	var frame uint64
	for {
		select {
		case <-sigCh:
			return
		case <-backendDone:
			return
		case <-ticker.C:
		}

		if err := renderFrame(frame); err != nil {
			fmt.Printf("Frame source error: %v\n", err)
			return
		}
		if err := presenter.Present(); err != nil {
			// A resize racing the draw invalidates one frame; present it
			// again next tick at the corrected resolution.
			var verr *VideoError
			if errors.As(err, &verr) && verr.Operation == "frame update" {
				continue
			}
			fmt.Printf("Present error: %v\n", err)
			return
		}
		frame++

		if frameLimit > 0 && frame >= frameLimit {
			return
		}
	}
}
