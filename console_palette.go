// console_palette.go - Fixed 64-color console hardware palette

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
	"bufio"
	"fmt"
	"io"
	"os"
)

// PaletteSize is the fixed number of displayable colors. Palette indices are
// 6 bits; every index in the frame buffer names one of these entries.
const PaletteSize = 64

// Palette is the console's fixed color table. Set once at initialization
// and immutable during rendering, so both the float form the shading stage
// uses and the packed byte form the framebuffer edge uses are precomputed.
type Palette struct {
	colors [PaletteSize]ColorRGBA
	packed [PaletteSize][4]byte
}

// NewPalette builds a palette from 64 RGBA colors with components in [0,1].
func NewPalette(colors [PaletteSize]ColorRGBA) *Palette {
	p := &Palette{colors: colors}
	for i, c := range colors {
		p.packed[i] = [4]byte{
			byte(c.R*255 + 0.5),
			byte(c.G*255 + 0.5),
			byte(c.B*255 + 0.5),
			byte(c.A*255 + 0.5),
		}
	}
	return p
}

// Entry returns the color for a palette index. The index domain is [0,64);
// the producer side masks indices to 6 bits, and the mask here keeps the
// lookup total for anything that slips past that trust boundary.
func (p *Palette) Entry(index uint32) ColorRGBA {
	return p.colors[index&0x3F]
}

// PackedEntry returns the RGBA8 form of a palette entry.
func (p *Palette) PackedEntry(index uint32) [4]byte {
	return p.packed[index&0x3F]
}

// hardwareColors is the console's stock palette as packed 0xRRGGBB values,
// the usual 2C02 reference measurement. Alpha is always opaque.
var hardwareColors = [PaletteSize]uint32{
	0x666666, 0x002A88, 0x1412A7, 0x3B00A4, 0x5C007E, 0x6E0040, 0x6C0600, 0x561D00,
	0x333500, 0x0B4800, 0x005200, 0x004F08, 0x00404D, 0x000000, 0x000000, 0x000000,
	0xADADAD, 0x155FD9, 0x4240FF, 0x7527FE, 0xA01ACC, 0xB71E7B, 0xB53120, 0x994E00,
	0x6B6D00, 0x388700, 0x0C9300, 0x008F32, 0x007C8D, 0x000000, 0x000000, 0x000000,
	0xFFFEFF, 0x64B0FF, 0x9290FF, 0xC676FF, 0xF36AFF, 0xFE6ECC, 0xFE8170, 0xEA9E22,
	0xBCBE00, 0x88D800, 0x5CE430, 0x45E082, 0x48CDDE, 0x4F4F4F, 0x000000, 0x000000,
	0xFFFEFF, 0xC0DFFF, 0xD3D2FF, 0xE8C8FF, 0xFBC2FF, 0xFEC4EA, 0xFECCC5, 0xF7D8A5,
	0xE4E594, 0xCFEF96, 0xBDF4AB, 0xB3F3CC, 0xB5EBF2, 0xB8B8B8, 0x000000, 0x000000,
}

// DefaultPalette returns the built-in hardware palette.
func DefaultPalette() *Palette {
	var colors [PaletteSize]ColorRGBA
	for i, rgb := range hardwareColors {
		colors[i] = ColorRGBA{
			R: float32((rgb>>16)&0xFF) / 255,
			G: float32((rgb>>8)&0xFF) / 255,
			B: float32(rgb&0xFF) / 255,
			A: 1,
		}
	}
	return NewPalette(colors)
}

// LoadPaletteFile reads a 64-entry palette from a .pal file: 64 consecutive
// RGB byte triples, 192 bytes total. Extra trailing bytes (emphasis tables)
// are ignored.
func LoadPaletteFile(path string) (*Palette, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("palette file %s: %w", path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	var colors [PaletteSize]ColorRGBA
	rgb := make([]byte, 3)
	for i := 0; i < PaletteSize; i++ {
		if _, err := io.ReadFull(reader, rgb); err != nil {
			return nil, fmt.Errorf("palette file %s: entry %d: %w", path, i, err)
		}
		colors[i] = ColorRGBA{
			R: float32(rgb[0]) / 255,
			G: float32(rgb[1]) / 255,
			B: float32(rgb[2]) / 255,
			A: 1,
		}
	}
	return NewPalette(colors), nil
}
