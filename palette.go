package epdither

import (
	"image/color"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteSize is the entry count of a classic indexed palette. Quantization
// always consumes a palette padded to exactly this length.
const PaletteSize = 256

// Palette is an ordered list of colors an image is restricted to after
// quantization. Only a small prefix is semantically meaningful; Padded fills
// the remaining slots with black.
type Palette []color.RGBA

// Padded returns the palette extended to exactly PaletteSize entries with
// black filler. Entries past PaletteSize are dropped.
func (p Palette) Padded() Palette {
	out := make(Palette, PaletteSize)
	n := min(len(p), PaletteSize)
	copy(out, p[:n])
	for i := n; i < PaletteSize; i++ {
		out[i] = color.RGBA{0, 0, 0, 255}
	}
	return out
}

// Bytes serializes the padded palette as a flat channel-interleaved RGB
// buffer of PaletteSize*3 bytes.
func (p Palette) Bytes() []byte {
	buf := make([]byte, 0, PaletteSize*3)
	for _, c := range p.Padded() {
		buf = append(buf, c.R, c.G, c.B)
	}
	return buf
}

// Colors returns the padded palette as the color.Color slice the quantizer
// consumes.
func (p Palette) Colors() []color.Color {
	padded := p.Padded()
	out := make([]color.Color, len(padded))
	for i, c := range padded {
		out[i] = c
	}
	return out
}

var (
	// Generic 5-color e-paper palette.
	basicPalette = Palette{
		{0, 0, 0, 255},       // black
		{255, 255, 255, 255}, // white
		{0, 255, 0, 255},     // green
		{0, 0, 255, 255},     // blue
		{255, 0, 0, 255},     // red
	}
	// Warm 7-color palette for peach-toned panels.
	warmPalette = Palette{
		{255, 218, 185, 255}, // peach
		{255, 160, 122, 255}, // light salmon
		{250, 128, 114, 255}, // salmon
		{255, 127, 80, 255},  // coral
		{255, 99, 71, 255},   // tomato
		{255, 165, 0, 255},   // orange
		{255, 69, 0, 255},    // orange red
	}
)

// FixedPalette returns a copy of one of the curated display palettes:
// the generic 5-color set, or the warm 7-color set when warm is true.
func FixedPalette(warm bool) Palette {
	if warm {
		return slices.Clone(warmPalette)
	}
	return slices.Clone(basicPalette)
}

// warmShift applies the fixed warmth enhancement to a palette color: hue
// rotated 18 degrees (0.05 of a turn) toward red/orange, saturation boosted
// 1.2x and lightness 1.1x, both clamped to 1. The constants are an
// intentional aesthetic bias for e-paper panels, not tunables.
func warmShift(c colorful.Color) colorful.Color {
	h, s, l := c.Hsl()
	h = math.Mod(h+18.0, 360.0)
	s = math.Min(s*1.2, 1.0)
	l = math.Min(l*1.1, 1.0)
	return colorful.Hsl(h, s, l).Clamped()
}
