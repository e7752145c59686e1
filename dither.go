package epdither

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/makeworld-the-better-one/dither/v2"
)

// DiffusionMatrix looks up an error-diffusion matrix by name. The empty
// name means Floyd-Steinberg.
func DiffusionMatrix(name string) (dither.ErrorDiffusionMatrix, error) {
	switch name {
	case "", "floyd-steinberg":
		return dither.FloydSteinberg, nil
	case "atkinson":
		return dither.Atkinson, nil
	case "jarvis":
		return dither.JarvisJudiceNinke, nil
	case "stucki":
		return dither.Stucki, nil
	case "burkes":
		return dither.Burkes, nil
	case "sierra":
		return dither.Sierra, nil
	case "sierra-lite":
		return dither.SierraLite, nil
	default:
		return nil, fmt.Errorf("unknown dither matrix: %q", name)
	}
}

// Quantize maps every pixel of img onto its nearest palette entry,
// diffusing the quantization error across neighboring pixels. The ditherer
// consumes the full padded 256-entry palette, the classic indexed contract.
// The output shares the input's pixel dimensions.
func Quantize(img image.Image, pal Palette, matrix dither.ErrorDiffusionMatrix, serpentine bool) *image.Paletted {
	d := dither.NewDitherer(pal.Colors())
	d.Matrix = matrix
	d.Serpentine = serpentine
	return d.DitherPaletted(img)
}

// ToRGB flattens a paletted image back to a full RGB representation. The
// pixel values are still limited to the palette's color set.
func ToRGB(img *image.Paletted) *image.NRGBA {
	return imaging.Clone(img)
}
