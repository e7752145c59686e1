package epdither

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/floats"
)

type PaletteMethod int

const (
	PaletteMethodKMeans PaletteMethod = iota
	PaletteMethodDominantColor
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodDominantColor:
		return "dominant"
	default:
		return "kmeans"
	}
}

func ParsePaletteMethod(s string) (PaletteMethod, error) {
	switch s {
	case "kmeans":
		return PaletteMethodKMeans, nil
	case "dominant":
		return PaletteMethodDominantColor, nil
	default:
		return 0, fmt.Errorf("unknown palette method: %q", s)
	}
}

// DefaultMinDistance is the minimum RGB Euclidean distance between two
// accepted palette colors.
const DefaultMinDistance = 30.0

// ErrNoPixels reports an image with no opaque pixels to sample.
var ErrNoPixels = errors.New("image has no opaque pixels")

// maxSamples bounds the clustering observation count on large images.
const maxSamples = 12000

// ExtractPalette derives up to numColors warm-shifted dominant colors from
// the image. Candidates are accepted in dominance order only if their RGB
// distance to every already-accepted color exceeds minDistance, so the
// result carries no near-duplicate entries.
func ExtractPalette(img image.Image, numColors int, minDistance float64, method PaletteMethod) (Palette, error) {
	if numColors <= 0 {
		return nil, fmt.Errorf("palette size must be positive, got %d", numColors)
	}
	if minDistance <= 0 {
		minDistance = DefaultMinDistance
	}

	var cands []colorful.Color
	var err error
	switch method {
	case PaletteMethodDominantColor:
		cands, err = dominantCandidates(img, numColors)
	default:
		cands, err = kmeansCandidates(img, numColors)
	}
	if err != nil {
		return nil, err
	}

	pal := make(Palette, 0, numColors)
	for _, c := range selectDiverse(cands, numColors, minDistance) {
		r, g, b := warmShift(c).RGB255()
		pal = append(pal, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return pal, nil
}

// kmeansCandidates clusters a subsample of the image's RGB pixels and
// returns the centroids, most populous cluster first. It over-requests
// 2*numColors clusters so that colors later discarded by the distance
// filter leave enough candidates behind; the request is clamped to the
// distinct sample count so a near-solid image still clusters instead of
// failing.
func kmeansCandidates(img image.Image, numColors int) ([]colorful.Color, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, ErrNoPixels
	}

	// Subsample to keep kmeans tractable on large images.
	step := 1
	if w*h > maxSamples {
		step = int(math.Sqrt(float64(w*h)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(w*h, maxSamples))
	distinct := make(map[[3]uint8]struct{})
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
			distinct[[3]uint8{uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8)}] = struct{}{}
		}
	}
	if len(dataset) == 0 {
		return nil, ErrNoPixels
	}

	workK := min(numColors*2, len(distinct))
	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil {
		return nil, fmt.Errorf("kmeans over %d samples: %w", len(dataset), err)
	}
	if len(cc) == 0 {
		return nil, fmt.Errorf("kmeans over %d samples: no clusters", len(dataset))
	}

	// Dominant colors first.
	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	out := make([]colorful.Color, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		out = append(out, colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped())
	}
	return out, nil
}

// dominantCandidates returns weighted dominant colors, strongest first.
func dominantCandidates(img image.Image, numColors int) ([]colorful.Color, error) {
	found := dominantcolor.FindWeight(img, max(24, numColors*8))
	out := make([]colorful.Color, 0, len(found))
	for _, c := range found {
		col, ok := colorful.MakeColor(c.RGBA)
		if !ok {
			continue
		}
		out = append(out, col.Clamped())
	}
	if len(out) == 0 {
		return nil, ErrNoPixels
	}
	return out, nil
}

// selectDiverse greedily accepts candidates in order, skipping any whose
// RGB Euclidean distance (0-255 scale) to an already-accepted color does
// not exceed minDistance, and stops once numColors are accepted.
func selectDiverse(cands []colorful.Color, numColors int, minDistance float64) []colorful.Color {
	accepted := make([]colorful.Color, 0, numColors)
	vecs := make([][3]float64, 0, numColors)
	for _, c := range cands {
		r, g, b := c.RGB255()
		v := [3]float64{float64(r), float64(g), float64(b)}
		tooClose := false
		for i := range vecs {
			if floats.Distance(v[:], vecs[i][:], 2) <= minDistance {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		accepted = append(accepted, c)
		vecs = append(vecs, v)
		if len(accepted) >= numColors {
			break
		}
	}
	return accepted
}
