// pattern_script.go - Lua-scripted frame sources for the demo host

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
pattern_script.go - Lua-scripted frame sources for the demo host

The demo host has no PPU behind it, so frames come from scripts. A pattern
script is a Lua file defining a global frame(n) function; the host calls it
once per tick with the frame number and the script paints the console buffer
through a small API:

    plot(x, y, index)  -- set one pixel to a palette index
    fill(index)        -- flood the whole buffer
    width, height      -- console dimensions (256, 240)

Indices wrap into the palette range on write, same as every other producer
path into the index buffer.
*/

package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// PatternScript runs one Lua pattern script against an index buffer. Not
// safe for concurrent use; the demo host drives it from its frame loop.
type PatternScript struct {
	state   *lua.LState
	frameFn *lua.LFunction
	buffer  *IndexBuffer
}

// LoadPatternScript compiles and runs the script file, then captures its
// frame(n) function for per-tick calls.
func LoadPatternScript(path string, buffer *IndexBuffer) (*PatternScript, error) {
	ps := &PatternScript{
		state:  lua.NewState(),
		buffer: buffer,
	}
	ps.register()

	if err := ps.state.DoFile(path); err != nil {
		ps.state.Close()
		return nil, fmt.Errorf("pattern script %s: %w", path, err)
	}

	fn, ok := ps.state.GetGlobal("frame").(*lua.LFunction)
	if !ok {
		ps.state.Close()
		return nil, fmt.Errorf("pattern script %s: no frame(n) function defined", path)
	}
	ps.frameFn = fn
	return ps, nil
}

// LoadPatternString is LoadPatternScript for inline source. Used by tests
// and the built-in fallback.
func LoadPatternString(source string, buffer *IndexBuffer) (*PatternScript, error) {
	ps := &PatternScript{
		state:  lua.NewState(),
		buffer: buffer,
	}
	ps.register()

	if err := ps.state.DoString(source); err != nil {
		ps.state.Close()
		return nil, fmt.Errorf("pattern script: %w", err)
	}

	fn, ok := ps.state.GetGlobal("frame").(*lua.LFunction)
	if !ok {
		ps.state.Close()
		return nil, fmt.Errorf("pattern script: no frame(n) function defined")
	}
	ps.frameFn = fn
	return ps, nil
}

func (ps *PatternScript) register() {
	L := ps.state
	L.SetGlobal("width", lua.LNumber(ConsoleWidth))
	L.SetGlobal("height", lua.LNumber(ConsoleHeight))
	L.SetGlobal("colors", lua.LNumber(PaletteSize))

	L.SetGlobal("plot", L.NewFunction(func(L *lua.LState) int {
		x := L.CheckInt(1)
		y := L.CheckInt(2)
		index := L.CheckInt(3)
		if x >= 0 && y >= 0 {
			ps.buffer.Set(uint32(x), uint32(y), uint32(index))
		}
		return 0
	}))

	L.SetGlobal("fill", L.NewFunction(func(L *lua.LState) int {
		ps.buffer.Fill(uint32(L.CheckInt(1)))
		return 0
	}))
}

// RenderFrame calls the script's frame(n) function for one tick.
func (ps *PatternScript) RenderFrame(n uint64) error {
	err := ps.state.CallByParam(lua.P{
		Fn:      ps.frameFn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(n))
	if err != nil {
		return fmt.Errorf("pattern script frame %d: %w", n, err)
	}
	return nil
}

// Close releases the Lua state.
func (ps *PatternScript) Close() {
	ps.state.Close()
}
