// Package epdither converts images into color-quantized, dithered bitmaps
// suitable for low-color e-paper displays: a small palette is derived from
// the image (or taken from a fixed set), the image is fitted to the panel
// canvas, and every pixel is mapped onto the palette with error-diffusion
// dithering.
package epdither

import (
	"fmt"
	"image"
	"image/color"
)

// Options controls the full fit -> palette -> quantize pipeline.
type Options struct {
	// NumColors is the dynamic palette size.
	NumColors int
	// MinDistance is the minimum RGB distance between accepted colors.
	MinDistance float64
	// Method picks the dynamic palette strategy.
	Method PaletteMethod
	// Fixed uses a curated display palette instead of clustering.
	Fixed bool
	// Warm selects the warm fixed palette. Only meaningful with Fixed.
	Warm bool
	// Policy selects the canvas fitting behavior.
	Policy Policy
	// Direction overrides the canvas orientation. DirectionAuto matches
	// the source's own orientation.
	Direction Direction
	// CanvasWidth/CanvasHeight override the default panel dimensions.
	// Zero means derive from the orientation.
	CanvasWidth  int
	CanvasHeight int
	// Background fills canvas space not covered by the source.
	Background color.Color
	// Dither names the error-diffusion matrix.
	Dither string
	// Serpentine scans alternate rows right-to-left while diffusing.
	Serpentine bool
}

func DefaultOptions() Options {
	return Options{
		NumColors:   7,
		MinDistance: DefaultMinDistance,
		Method:      PaletteMethodKMeans,
		Policy:      PolicyNone,
		Direction:   DirectionAuto,
		Background:  color.White,
		Dither:      "floyd-steinberg",
	}
}

// Result holds the output of one pipeline run.
type Result struct {
	// Image is the quantized output, carrying the padded palette.
	Image *image.Paletted
	// Palette is the meaningful (unpadded) color set used.
	Palette Palette
	// Orientation classifies the working image for output routing.
	Orientation Orientation
}

// Process runs one decoded image through the pipeline: canvas fitting,
// palette generation and error-diffusion quantization. The palette is
// generated from the fitted image.
func Process(img image.Image, opts Options) (*Result, error) {
	matrix, err := DiffusionMatrix(opts.Dither)
	if err != nil {
		return nil, err
	}
	if opts.NumColors <= 0 {
		opts.NumColors = DefaultOptions().NumColors
	}

	working := img
	if opts.Policy != PolicyNone {
		w, h := opts.CanvasWidth, opts.CanvasHeight
		if w <= 0 || h <= 0 {
			b := img.Bounds()
			orient := Orient(b.Dx(), b.Dy())
			switch opts.Direction {
			case DirectionLandscape:
				orient = Landscape
			case DirectionPortrait:
				orient = Portrait
			}
			w, h = orient.CanvasSize()
		}
		working = Fit(img, w, h, opts.Policy, opts.Background)
	}

	var pal Palette
	if opts.Fixed {
		pal = FixedPalette(opts.Warm)
	} else {
		pal, err = ExtractPalette(working, opts.NumColors, opts.MinDistance, opts.Method)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
	}

	b := working.Bounds()
	return &Result{
		Image:       Quantize(working, pal, matrix, opts.Serpentine),
		Palette:     pal,
		Orientation: Orient(b.Dx(), b.Dy()),
	}, nil
}
