// present_map.go - Output-to-console coordinate mapping and palette resolve

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

// Console output dimensions. Every emulated frame is a fixed 256x240 grid of
// palette indices regardless of the output surface size.
const (
	ConsoleWidth  = 256
	ConsoleHeight = 240
	ConsolePixels = ConsoleWidth * ConsoleHeight
)

// ColorRGBA is a color in the shading stage's representation, components in
// [0,1]. Conversion to byte form happens only at the framebuffer edge.
type ColorRGBA struct {
	R, G, B, A float32
}

// FallbackColor is substituted for any fragment whose mapped console
// coordinate falls outside the console grid. Always opaque black, never
// transparent: every output pixel gets a deterministic fully-opaque color
// even during transient resolution/surface mismatches.
var FallbackColor = ColorRGBA{R: 0, G: 0, B: 0, A: 1}

// Resolution is the output surface size in pixels. The host updates it when
// the surface is resized; it is read-only for the duration of one draw. Both
// components must be positive before a draw is issued.
type Resolution struct {
	Width  uint32
	Height uint32
}

// ConsoleCoord is a console pixel position derived from an output fragment.
// It may lie outside the console grid; InBounds decides.
type ConsoleCoord struct {
	X uint32
	Y uint32
}

// MapToConsole maps an output-surface fragment position to a console pixel
// by independent proportional scaling on each axis:
//
//	nes_x = floor(frag_x / width  * 256)
//	nes_y = floor(frag_y / height * 240)
//
// Truncation is intentional nearest-neighbor-toward-origin sampling: whole
// console pixels map to contiguous output blocks without boundary jitter.
// The up-to-one-pixel leftward/upward bias is part of the contract; do not
// replace with rounding. The result is not range checked here; a mismatched
// resolution yields an out-of-range coordinate for the caller to handle.
func MapToConsole(fragX, fragY uint32, res Resolution) ConsoleCoord {
	// Integer multiply-then-divide computes the same floor as the float
	// expression, exactly, for any surface size a window system can produce.
	return ConsoleCoord{
		X: uint32(uint64(fragX) * ConsoleWidth / uint64(res.Width)),
		Y: uint32(uint64(fragY) * ConsoleHeight / uint64(res.Height)),
	}
}

// InBounds reports whether the coordinate lies on the console grid. Out of
// range coordinates are neither clamped nor wrapped; the caller substitutes
// FallbackColor instead of reading the index buffer.
func (c ConsoleCoord) InBounds() bool {
	return c.X < ConsoleWidth && c.Y < ConsoleHeight
}

// ResolveColor looks up the palette color for an in-bounds console pixel:
// linear index y*256+x into the index buffer, then the palette entry it
// names. The color is returned unchanged; no tone mapping, gamma or
// blending. Caller must have checked InBounds.
func ResolveColor(buf *IndexBuffer, pal *Palette, c ConsoleCoord) ColorRGBA {
	return pal.Entry(buf.At(c))
}

// ShadeFragment is the direct pipeline's complete fragment function: map the
// fragment to a console pixel, guard the range, resolve through the palette.
// One invocation per covered output pixel; pure, no shared mutable state.
func ShadeFragment(fragX, fragY uint32, res Resolution, buf *IndexBuffer, pal *Palette) ColorRGBA {
	c := MapToConsole(fragX, fragY, res)
	if !c.InBounds() {
		return FallbackColor
	}
	return ResolveColor(buf, pal, c)
}
