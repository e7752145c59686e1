package epdither

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func rgbDistance(a, b color.RGBA) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func TestSelectDiverseMinDistance(t *testing.T) {
	cands := []colorful.Color{
		{R: 1, G: 0, B: 0},
		{R: 0.98, G: 0.02, B: 0.02}, // near-duplicate of red, must be dropped
		{R: 0, G: 0, B: 1},
		{R: 0, G: 1, B: 0},
		{R: 0.02, G: 0.98, B: 0}, // near-duplicate of green
		{R: 0.5, G: 0.5, B: 0.5},
	}
	got := selectDiverse(cands, 4, 30)
	if len(got) != 4 {
		t.Fatalf("accepted %d colors, want 4", len(got))
	}
	if got[0] != cands[0] {
		t.Error("first candidate must always be accepted")
	}
	for i := range got {
		for j := i + 1; j < len(got); j++ {
			ri, gi, bi := got[i].RGB255()
			rj, gj, bj := got[j].RGB255()
			d := rgbDistance(color.RGBA{ri, gi, bi, 255}, color.RGBA{rj, gj, bj, 255})
			if d <= 30 {
				t.Errorf("colors %d and %d are %.1f apart, want > 30", i, j, d)
			}
		}
	}
}

func TestSelectDiverseStopsAtLimit(t *testing.T) {
	var cands []colorful.Color
	for i := 0; i < 16; i++ {
		cands = append(cands, colorful.Color{R: float64(i) / 15, G: 0, B: 1 - float64(i)/15})
	}
	if got := selectDiverse(cands, 3, 30); len(got) != 3 {
		t.Fatalf("accepted %d colors, want 3", len(got))
	}
}

func TestExtractPaletteQuadrants(t *testing.T) {
	img := quadImage(64, 64, [4]color.Color{
		color.NRGBA{0, 0, 0, 255},
		color.NRGBA{255, 255, 255, 255},
		color.NRGBA{220, 30, 30, 255},
		color.NRGBA{30, 30, 220, 255},
	})
	pal, err := ExtractPalette(img, 4, 30, PaletteMethodKMeans)
	if err != nil {
		t.Fatalf("ExtractPalette: %v", err)
	}
	if len(pal) == 0 || len(pal) > 4 {
		t.Fatalf("palette has %d colors, want 1..4", len(pal))
	}
}

func TestExtractPaletteSolidColor(t *testing.T) {
	// A solid image has a single distinct color; the cluster request clamps
	// instead of erroring so the batch can proceed.
	img := solidImage(64, 64, color.NRGBA{255, 0, 0, 255})
	pal, err := ExtractPalette(img, 5, 30, PaletteMethodKMeans)
	if err != nil {
		t.Fatalf("ExtractPalette: %v", err)
	}
	if len(pal) == 0 || len(pal) > 5 {
		t.Fatalf("palette has %d colors, want 1..5", len(pal))
	}
	for _, c := range pal {
		if c.R <= c.B || c.R < 200 {
			t.Errorf("expected a warm-shifted red, got %v", c)
		}
	}
}

func TestExtractPaletteDominantMethod(t *testing.T) {
	img := quadImage(64, 64, [4]color.Color{
		color.NRGBA{200, 40, 40, 255},
		color.NRGBA{40, 200, 40, 255},
		color.NRGBA{40, 40, 200, 255},
		color.NRGBA{230, 230, 230, 255},
	})
	pal, err := ExtractPalette(img, 4, 30, PaletteMethodDominantColor)
	if err != nil {
		t.Fatalf("ExtractPalette: %v", err)
	}
	if len(pal) == 0 || len(pal) > 4 {
		t.Fatalf("palette has %d colors, want 1..4", len(pal))
	}
}

func TestExtractPaletteErrors(t *testing.T) {
	if _, err := ExtractPalette(solidImage(8, 8, color.White), 0, 30, PaletteMethodKMeans); err == nil {
		t.Error("want error for non-positive palette size")
	}

	transparent := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	if _, err := ExtractPalette(transparent, 4, 30, PaletteMethodKMeans); !errors.Is(err, ErrNoPixels) {
		t.Errorf("want ErrNoPixels for fully transparent image, got %v", err)
	}
}

func TestParsePaletteMethod(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want PaletteMethod
		ok   bool
	}{
		{"kmeans", PaletteMethodKMeans, true},
		{"dominant", PaletteMethodDominantColor, true},
		{"median-cut", 0, false},
	} {
		got, err := ParsePaletteMethod(tc.in)
		if tc.ok != (err == nil) || (tc.ok && got != tc.want) {
			t.Errorf("ParsePaletteMethod(%q) = %v, %v", tc.in, got, err)
		}
	}
}
