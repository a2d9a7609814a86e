// Package opencv implements inpaint.Inpainter on top of OpenCV via gocv.
package opencv

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"gocv.io/x/gocv"

	"github.com/soocke/pixel-eraser-go/domain/inpaint"
)

// Inpainter calls cv::inpaint. The zero value is usable.
type Inpainter struct {
	logger *slog.Logger
}

// New returns an OpenCV backed inpainter.
func New(logger *slog.Logger) *Inpainter { return &Inpainter{logger: logger} }

var _ inpaint.Inpainter = (*Inpainter)(nil)

// Inpaint converts img to a BGR Mat and mask to an 8-bit single channel Mat,
// runs the selected algorithm and converts the result back.
func (in *Inpainter) Inpaint(ctx context.Context, img image.Image, mask *image.Gray, p inpaint.Params) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if img == nil || mask == nil {
		return nil, fmt.Errorf("inpaint: nil image or mask")
	}
	src, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer src.Close()

	m, err := gocv.ImageGrayToMatGray(compactGray(mask))
	if err != nil {
		return nil, fmt.Errorf("convert mask: %w", err)
	}
	defer m.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	start := time.Now()
	gocv.Inpaint(src, m, &dst, float32(p.Radius), algorithm(p.Method))
	if dst.Empty() {
		return nil, inpaint.ErrEmptyResult
	}
	if in != nil && in.logger != nil {
		in.logger.Debug("inpaint finished",
			"method", p.Method.String(),
			"radius", p.Radius,
			"cols", dst.Cols(),
			"rows", dst.Rows(),
			"elapsed", time.Since(start))
	}
	out, err := dst.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert result: %w", err)
	}
	return out, nil
}

func algorithm(m inpaint.Method) gocv.InpaintMethods {
	if m == inpaint.NS {
		return gocv.NS
	}
	return gocv.Telea
}

// compactGray returns a mask whose Pix is tightly packed from the origin, as
// required when handing the buffer to a Mat.
func compactGray(m *image.Gray) *image.Gray {
	b := m.Bounds()
	if b.Min == (image.Point{}) && m.Stride == b.Dx() {
		return m
	}
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		start := m.PixOffset(b.Min.X, b.Min.Y+y)
		copy(out.Pix[y*out.Stride:(y+1)*out.Stride], m.Pix[start:start+b.Dx()])
	}
	return out
}
