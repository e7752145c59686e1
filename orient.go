package epdither

import "fmt"

// Orientation classifies an image as landscape or portrait. It routes the
// output folder and, absent an explicit direction, picks the canvas shape.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// Orient returns Landscape iff width > height; ties resolve to Portrait.
func Orient(width, height int) Orientation {
	if width > height {
		return Landscape
	}
	return Portrait
}

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Dir returns the output subfolder for the orientation, suffixed with
// "-warm" in the fixed-warm-palette variant.
func (o Orientation) Dir(warm bool) string {
	name := "dithered-" + o.String()
	if warm {
		name += "-warm"
	}
	return name
}

// CanvasSize returns the default target dimensions for the orientation.
func (o Orientation) CanvasSize() (width, height int) {
	if o == Landscape {
		return CanvasLong, CanvasShort
	}
	return CanvasShort, CanvasLong
}

// Direction overrides the canvas orientation chosen per image.
type Direction int

const (
	DirectionAuto Direction = iota
	DirectionLandscape
	DirectionPortrait
)

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "auto":
		return DirectionAuto, nil
	case "landscape":
		return DirectionLandscape, nil
	case "portrait":
		return DirectionPortrait, nil
	default:
		return 0, fmt.Errorf("unknown direction: %q", s)
	}
}
