// Package mask rasterizes selected rectangles into a single-channel binary mask.
package mask

import (
	"image"

	"github.com/soocke/pixel-eraser-go/domain/selection"
)

const (
	Background uint8 = 0
	Foreground uint8 = 255
)

// Build returns a mask with the given bounds where every pixel covered by one
// of rects is Foreground. Rectangles are normalized and clamped to bounds;
// overlapping rectangles simply fill the same pixels again.
func Build(bounds image.Rectangle, rects []selection.Rect) *image.Gray {
	m := image.NewGray(bounds)
	for _, r := range rects {
		Fill(m, r)
	}
	return m
}

// Fill paints r into m and returns the area actually filled after clamping.
func Fill(m *image.Gray, r selection.Rect) image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	area := Clamp(r, m.Bounds())
	if area.Empty() {
		return area
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		start := m.PixOffset(area.Min.X, y)
		row := m.Pix[start : start+area.Dx()]
		for i := range row {
			row[i] = Foreground
		}
	}
	return area
}

// Clamp returns the half-open area of r inside bounds. The result is empty
// when r lies entirely outside.
func Clamp(r selection.Rect, bounds image.Rectangle) image.Rectangle {
	return r.Bounds().Intersect(bounds)
}

// Count returns the number of foreground pixels.
func Count(m *image.Gray) int {
	if m == nil {
		return 0
	}
	b := m.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		start := m.PixOffset(b.Min.X, y)
		for _, v := range m.Pix[start : start+b.Dx()] {
			if v == Foreground {
				n++
			}
		}
	}
	return n
}
