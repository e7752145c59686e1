package epdither

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Default canvas dimensions for common 7.5" e-paper panels.
const (
	CanvasLong  = 800
	CanvasShort = 480
)

// Policy selects how a source image is fitted to the target canvas.
type Policy int

const (
	// PolicyNone keeps the source dimensions; no canvas is applied.
	PolicyNone Policy = iota
	// PolicyScale cover-resizes the source and pastes it centered.
	PolicyScale
	// PolicyCut pastes the unscaled source centered, cropping overflow and
	// padding deficits with the background color.
	PolicyCut
)

func (p Policy) String() string {
	switch p {
	case PolicyScale:
		return "scale"
	case PolicyCut:
		return "cut"
	default:
		return "none"
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "none":
		return PolicyNone, nil
	case "scale":
		return PolicyScale, nil
	case "cut":
		return PolicyCut, nil
	default:
		return 0, fmt.Errorf("unknown canvas policy: %q", s)
	}
}

// Fit produces an image of exactly width x height with the source content
// center-aligned and any added space filled with the background color.
//
// PolicyScale resizes uniformly by the cover ratio max(tw/w, th/h) before
// pasting, so the content meets or exceeds the canvas on both axes and the
// paste silently clips the overflow. PolicyCut skips resampling entirely:
// axes longer than the canvas are center-cropped, shorter ones padded.
func Fit(img image.Image, width, height int, policy Policy, background color.Color) *image.NRGBA {
	if background == nil {
		background = color.White
	}
	canvas := imaging.New(width, height, background)

	if policy == PolicyScale {
		b := img.Bounds()
		ratio := math.Max(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
		img = imaging.Resize(img,
			int(math.Round(float64(b.Dx())*ratio)),
			int(math.Round(float64(b.Dy())*ratio)),
			imaging.Lanczos)
	}
	return imaging.PasteCenter(canvas, img)
}
