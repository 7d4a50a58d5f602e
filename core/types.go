package core

import (
	"orbit-viewer/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// RGB is an opaque vertex colour.
type RGB struct {
	R, G, B float32
}

var (
	RGBRed     = RGB{1, 0, 0}
	RGBGreen   = RGB{0, 1, 0}
	RGBBlue    = RGB{0, 0, 1}
	RGBYellow  = RGB{1, 1, 0}
	RGBCyan    = RGB{0, 1, 1}
	RGBMagenta = RGB{1, 0, 1}
)

// Vertex is uploaded as-is: six tightly packed float32, position first.
type Vertex struct {
	Position math.Vec3
	Color    RGB
}

const (
	VertexFloats      = 6
	VertexStride      = VertexFloats * 4
	VertexColorOffset = 3 * 4
)

// Viewport is the drawable size in pixels.
type Viewport struct {
	Width, Height int
}

// Aspect returns width/height. A non-positive side counts as 1 so a
// minimised window never produces a zero or infinite aspect ratio.
func (v Viewport) Aspect() float32 {
	w, h := v.Width, v.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return float32(w) / float32(h)
}
