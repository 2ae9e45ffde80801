// console_palette_test.go - Palette and index buffer tests

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaletteRange(t *testing.T) {
	pal := DefaultPalette()
	for i := uint32(0); i < PaletteSize; i++ {
		c := pal.Entry(i)
		for _, v := range []float32{c.R, c.G, c.B, c.A} {
			if v < 0 || v > 1 {
				t.Fatalf("entry %d has component %v outside [0,1]", i, v)
			}
		}
		if c.A != 1 {
			t.Errorf("entry %d alpha = %v, want 1", i, c.A)
		}
	}
}

func TestPaletteEntryMasksIndex(t *testing.T) {
	pal := DefaultPalette()
	if pal.Entry(64) != pal.Entry(0) {
		t.Error("index 64 should wrap to entry 0")
	}
	if pal.Entry(0x7F) != pal.Entry(0x3F) {
		t.Error("index 0x7F should wrap to entry 0x3F")
	}
}

func TestPackedEntryMatchesFloat(t *testing.T) {
	pal := DefaultPalette()
	for i := uint32(0); i < PaletteSize; i++ {
		c := pal.Entry(i)
		p := pal.PackedEntry(i)
		want := [4]byte{
			byte(c.R*255 + 0.5),
			byte(c.G*255 + 0.5),
			byte(c.B*255 + 0.5),
			byte(c.A*255 + 0.5),
		}
		if p != want {
			t.Errorf("entry %d packed = %v, want %v", i, p, want)
		}
	}
}

func TestLoadPaletteFile(t *testing.T) {
	data := make([]byte, PaletteSize*3)
	for i := 0; i < PaletteSize; i++ {
		data[i*3+0] = byte(i * 4)
		data[i*3+1] = byte(255 - i)
		data[i*3+2] = byte(i)
	}
	path := filepath.Join(t.TempDir(), "test.pal")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	pal, err := LoadPaletteFile(path)
	if err != nil {
		t.Fatalf("LoadPaletteFile: %v", err)
	}
	for i := uint32(0); i < PaletteSize; i++ {
		got := pal.PackedEntry(i)
		want := [4]byte{data[i*3], data[i*3+1], data[i*3+2], 255}
		if got != want {
			t.Errorf("entry %d = %v, want %v", i, got, want)
		}
	}
}

func TestLoadPaletteFileTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.pal")
	if err := os.WriteFile(path, make([]byte, 100), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPaletteFile(path); err == nil {
		t.Error("truncated palette file should fail to load")
	}
}

func TestIndexBufferSetMasks(t *testing.T) {
	var buf IndexBuffer
	buf.Set(10, 10, 0xFF)
	if got := buf.At(ConsoleCoord{10, 10}); got != 0x3F {
		t.Errorf("stored index = %#x, want masked 0x3F", got)
	}
}

func TestIndexBufferSetIgnoresOutOfRange(t *testing.T) {
	var buf IndexBuffer
	buf.Set(ConsoleWidth, 0, 5)
	buf.Set(0, ConsoleHeight, 5)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("out-of-range Set wrote to linear index %d", i)
		}
	}
}

func TestIndexBufferResolveRGBA(t *testing.T) {
	var buf IndexBuffer
	buf.Fill(0x16)
	buf.Set(3, 2, 0x30)
	pal := DefaultPalette()

	dst := make([]byte, ConsolePixels*4)
	buf.ResolveRGBA(pal, dst)

	i := (2*ConsoleWidth + 3) * 4
	want := pal.PackedEntry(0x30)
	got := [4]byte{dst[i], dst[i+1], dst[i+2], dst[i+3]}
	if got != want {
		t.Errorf("resolved pixel (3,2) = %v, want %v", got, want)
	}
	j := (5*ConsoleWidth + 5) * 4
	wantFill := pal.PackedEntry(0x16)
	gotFill := [4]byte{dst[j], dst[j+1], dst[j+2], dst[j+3]}
	if gotFill != wantFill {
		t.Errorf("filled pixel (5,5) = %v, want %v", gotFill, wantFill)
	}
}
