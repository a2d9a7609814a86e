// Package erase wires loading, masking, inpainting and writing into the
// linear run load -> select -> mask -> inpaint -> display -> write.
package erase

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/pixel-eraser-go/domain/capture"
	"github.com/soocke/pixel-eraser-go/domain/imageio"
	"github.com/soocke/pixel-eraser-go/domain/inpaint"
	"github.com/soocke/pixel-eraser-go/domain/mask"
	"github.com/soocke/pixel-eraser-go/domain/selection"
)

// MaskBuilder rasterizes rects into a binary mask covering bounds.
type MaskBuilder func(bounds image.Rectangle, rects []selection.Rect) (*image.Gray, error)

// Pipeline turns a selection into an inpainted image.
type Pipeline struct {
	inpainter inpaint.Inpainter
	params    inpaint.Params
	buildMask MaskBuilder
	logger    *slog.Logger
}

// NewPipeline returns a pipeline that calls in with params for every Process.
// Masks are built with mask.Build until UseMaskBuilder replaces it.
func NewPipeline(in inpaint.Inpainter, params inpaint.Params, logger *slog.Logger) *Pipeline {
	return &Pipeline{inpainter: in, params: params, buildMask: buildMask, logger: logger}
}

// UseMaskBuilder swaps the mask rasterizer. A nil b restores mask.Build.
func (p *Pipeline) UseMaskBuilder(b MaskBuilder) {
	if b == nil {
		b = buildMask
	}
	p.buildMask = b
}

func buildMask(bounds image.Rectangle, rects []selection.Rect) (*image.Gray, error) {
	return mask.Build(bounds, rects), nil
}

// Params returns the inpaint parameters used by Process.
func (p *Pipeline) Params() inpaint.Params { return p.params }

// Process builds the mask for rects and inpaints img with it.
func (p *Pipeline) Process(ctx context.Context, img image.Image, rects []selection.Rect) (image.Image, error) {
	if img == nil {
		return nil, Wrap(StageMask, imageio.ErrImageNotFound)
	}
	m, err := p.buildMask(img.Bounds(), rects)
	if err != nil {
		return nil, Wrap(StageMask, err)
	}
	if m == nil || m.Bounds() != img.Bounds() {
		return nil, Wrap(StageMask, ErrSizeMismatch)
	}
	if p.logger != nil {
		p.logger.Info("mask built", "rects", len(rects), "pixels", mask.Count(m))
	}
	start := time.Now()
	out, err := p.inpainter.Inpaint(ctx, img, m, p.params)
	if err != nil {
		return nil, Wrap(StageInpaint, err)
	}
	if out == nil {
		return nil, Wrap(StageInpaint, inpaint.ErrEmptyResult)
	}
	if out.Bounds().Size() != img.Bounds().Size() {
		return nil, Wrap(StageInpaint, ErrSizeMismatch)
	}
	if p.logger != nil {
		p.logger.Info("object removed",
			"method", p.params.Method.String(),
			"radius", p.params.Radius,
			"elapsed", time.Since(start))
	}
	return out, nil
}

// LoadSource reads the input image from path, or grabs the screen when path
// is capture.ScreenInput.
func LoadSource(path string) (image.Image, error) {
	if capture.IsScreen(path) {
		img, err := capture.Grab()
		if err != nil {
			return nil, Wrap(StageLoad, err)
		}
		return img, nil
	}
	img, err := imageio.Load(path)
	if err != nil {
		return nil, Wrap(StageLoad, err)
	}
	return img, nil
}

// Write stores the result at path, overwriting any previous output.
func Write(path string, img image.Image, quality int) error {
	return Wrap(StageWrite, imageio.Save(path, img, quality))
}
