package images

import (
	"image"
	"image/color"
	"image/draw"
)

// StrokeRect draws the outline of r onto dst with the given line width.
// The stroke grows inwards from r and is clipped to dst.
func StrokeRect(dst draw.Image, r image.Rectangle, c color.Color, width int) {
	if dst == nil {
		return
	}
	r = r.Canon()
	if r.Empty() {
		return
	}
	if width < 1 {
		width = 1
	}
	if 2*width >= r.Dx() || 2*width >= r.Dy() {
		fillRect(dst, r, c)
		return
	}
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y+width, r.Min.X+width, r.Max.Y-width), c)
	fillRect(dst, image.Rect(r.Max.X-width, r.Min.Y+width, r.Max.X, r.Max.Y-width), c)
}

// Marker draws a small filled square centred on p, used for a pending corner.
func Marker(dst draw.Image, p image.Point, c color.Color, size int) {
	if size < 1 {
		size = 1
	}
	half := size / 2
	fillRect(dst, image.Rect(p.X-half, p.Y-half, p.X-half+size, p.Y-half+size), c)
}

func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
