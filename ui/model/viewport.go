package model

import (
	"image"
	"math"
)

// Viewport maps between source image coordinates and the (possibly scaled
// down) preview shown in the window. The zero value shows images unscaled.
type Viewport struct {
	maxW, maxH int
	bounds     image.Rectangle // source image bounds
	display    image.Point     // preview size
	scale      float64         // display / source, never above 1
}

// NewViewport returns a viewport that fits images into maxW x maxH.
// Non-positive limits disable scaling along that axis.
func NewViewport(maxW, maxH int) *Viewport {
	return &Viewport{maxW: maxW, maxH: maxH, scale: 1}
}

// Fit records the source bounds and returns the preview size. Images are only
// ever scaled down, preserving aspect ratio.
func (v *Viewport) Fit(bounds image.Rectangle) image.Point {
	if v == nil {
		return bounds.Size()
	}
	v.bounds = bounds
	w, h := bounds.Dx(), bounds.Dy()
	scale := 1.0
	if v.maxW > 0 && w > v.maxW {
		scale = math.Min(scale, float64(v.maxW)/float64(w))
	}
	if v.maxH > 0 && h > v.maxH {
		scale = math.Min(scale, float64(v.maxH)/float64(h))
	}
	v.scale = scale
	dw := int(float64(w)*scale + 0.5)
	dh := int(float64(h)*scale + 0.5)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	v.display = image.Pt(dw, dh)
	return v.display
}

// Scale returns the display/source ratio.
func (v *Viewport) Scale() float64 {
	if v == nil || v.scale == 0 {
		return 1
	}
	return v.scale
}

// DisplaySize returns the size computed by the last Fit.
func (v *Viewport) DisplaySize() image.Point {
	if v == nil {
		return image.Point{}
	}
	return v.display
}

// ToImage converts a click in preview coordinates to source image coordinates.
// It reports false for clicks outside the displayed image.
func (v *Viewport) ToImage(x, y int) (image.Point, bool) {
	if v == nil || x < 0 || y < 0 || x >= v.display.X || y >= v.display.Y {
		return image.Point{}, false
	}
	s := v.Scale()
	ix := int(float64(x) / s)
	iy := int(float64(y) / s)
	// rounding at the far edge must not step outside the source
	if ix >= v.bounds.Dx() {
		ix = v.bounds.Dx() - 1
	}
	if iy >= v.bounds.Dy() {
		iy = v.bounds.Dy() - 1
	}
	return image.Pt(v.bounds.Min.X+ix, v.bounds.Min.Y+iy), true
}

// ToDisplay converts a half-open source rectangle to preview coordinates.
func (v *Viewport) ToDisplay(r image.Rectangle) image.Rectangle {
	if v == nil {
		return r
	}
	s := v.Scale()
	r = r.Sub(v.bounds.Min)
	return image.Rect(
		int(math.Floor(float64(r.Min.X)*s)),
		int(math.Floor(float64(r.Min.Y)*s)),
		int(math.Ceil(float64(r.Max.X)*s)),
		int(math.Ceil(float64(r.Max.Y)*s)),
	)
}

// PointToDisplay converts a source point to preview coordinates.
func (v *Viewport) PointToDisplay(p image.Point) image.Point {
	if v == nil {
		return p
	}
	s := v.Scale()
	p = p.Sub(v.bounds.Min)
	return image.Pt(int(float64(p.X)*s), int(float64(p.Y)*s))
}
