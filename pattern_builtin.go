// pattern_builtin.go - Built-in demo patterns

package main

// PatternFunc paints one console frame. Frame number drives animation.
type PatternFunc func(buffer *IndexBuffer, frame uint64)

// builtinPatterns are the demo host's frame sources when no Lua script is
// given. Indices are hardware palette entries; Set masks them anyway.
var builtinPatterns = map[string]PatternFunc{
	"bars":     patternBars,
	"gradient": patternGradient,
	"checker":  patternChecker,
}

// barColors picks one saturated hardware color per bar, brightest row of
// the 2C02 palette plus white and black at the ends.
var barColors = [8]uint32{0x30, 0x21, 0x2C, 0x2A, 0x28, 0x26, 0x24, 0x0F}

// patternBars draws eight vertical color bars scrolling one pixel per frame.
func patternBars(buffer *IndexBuffer, frame uint64) {
	for y := uint32(0); y < ConsoleHeight; y++ {
		for x := uint32(0); x < ConsoleWidth; x++ {
			bar := ((x + uint32(frame)) % ConsoleWidth) * 8 / ConsoleWidth
			buffer.Set(x, y, barColors[bar])
		}
	}
}

// patternGradient sweeps the whole palette left to right, rotating with
// the frame number so every entry passes every column.
func patternGradient(buffer *IndexBuffer, frame uint64) {
	for y := uint32(0); y < ConsoleHeight; y++ {
		for x := uint32(0); x < ConsoleWidth; x++ {
			buffer.Set(x, y, x*PaletteSize/ConsoleWidth+uint32(frame/8))
		}
	}
}

// patternChecker draws an 8x8 checkerboard that inverts every 32 frames.
// Handy for spotting mapping errors: every cell edge must stay razor sharp
// under the direct pipeline at any output size.
func patternChecker(buffer *IndexBuffer, frame uint64) {
	phase := uint32(frame/32) & 1
	for y := uint32(0); y < ConsoleHeight; y++ {
		for x := uint32(0); x < ConsoleWidth; x++ {
			if (x/8+y/8+phase)&1 == 0 {
				buffer.Set(x, y, 0x30)
			} else {
				buffer.Set(x, y, 0x0F)
			}
		}
	}
}
