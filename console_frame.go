// console_frame.go - Console index buffer (one emulated frame)

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

// IndexBuffer is one emulated frame: a row-major 256x240 grid of palette
// indices, row length 256. Exactly what the direct pipeline's storage
// binding holds. The frame producer writes it between draws; during a draw
// it is read-only.
type IndexBuffer [ConsolePixels]uint32

// Set writes the palette index for console pixel (x,y). Writes outside the
// grid are ignored. The stored value is masked to the 6-bit palette domain
// here, on the producer side, so the read path never sees an index >= 64.
func (b *IndexBuffer) Set(x, y uint32, index uint32) {
	if x >= ConsoleWidth || y >= ConsoleHeight {
		return
	}
	b[y*ConsoleWidth+x] = index & 0x3F
}

// At returns the palette index stored for an in-bounds console coordinate.
// No range check; callers go through InBounds first.
func (b *IndexBuffer) At(c ConsoleCoord) uint32 {
	return b[c.Y*ConsoleWidth+c.X]
}

// Fill sets every pixel of the frame to the same palette index.
func (b *IndexBuffer) Fill(index uint32) {
	index &= 0x3F
	for i := range b {
		b[i] = index
	}
}

// ResolveRGBA rasterizes the indexed frame into packed RGBA8 bytes, 4 bytes
// per pixel, row-major. This is the upstream step that feeds the texture
// pipeline: index to color resolution happens here, once per console pixel,
// and the sampler only ever sees resolved colors. dst must hold
// ConsolePixels*4 bytes.
func (b *IndexBuffer) ResolveRGBA(pal *Palette, dst []byte) {
	for i, index := range b {
		c := pal.PackedEntry(index)
		dst[i*4+0] = c[0]
		dst[i*4+1] = c[1]
		dst[i*4+2] = c[2]
		dst[i*4+3] = c[3]
	}
}
