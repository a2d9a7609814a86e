package presenter

import (
	"context"
	"image"
	"image/color"
	"log/slog"

	"github.com/soocke/pixel-eraser-go/domain/erase"
	"github.com/soocke/pixel-eraser-go/domain/selection"
	"github.com/soocke/pixel-eraser-go/ui/images"
	"github.com/soocke/pixel-eraser-go/ui/model"
)

const (
	strokeWidth = 2
	markerSize  = 5
	resultTitle = "Result (object removed)"
)

// SelectionView is the subset of window operations the selection flow needs.
type SelectionView interface {
	ShowImage(img image.Image)
	SetTitle(title string)
	SetStatus(text string)
	Close()
}

// Processor turns the confirmed rectangles into the inpainted image.
type Processor interface {
	Process(ctx context.Context, img image.Image, rects []selection.Rect) (image.Image, error)
}

type phase int

const (
	phaseSelecting phase = iota
	phaseResult
	phaseClosed
)

// SelectionPresenter translates window events into selector calls, redraws
// the rectangle overlays and runs the processor once the selection is done.
// All methods are called on the Tk event thread.
type SelectionPresenter struct {
	ctx     context.Context
	logger  *slog.Logger
	sel     *selection.Selector
	vp      *model.Viewport
	proc    Processor
	view    SelectionView
	overlay color.Color

	source image.Image
	base   *image.RGBA // scaled source without overlays
	result image.Image
	err    error
	phase  phase
}

func NewSelectionPresenter(ctx context.Context, sel *selection.Selector, vp *model.Viewport, proc Processor, view SelectionView, overlay color.Color, logger *slog.Logger) *SelectionPresenter {
	if ctx == nil {
		ctx = context.Background()
	}
	if overlay == nil {
		overlay = color.RGBA{R: 255, A: 255}
	}
	return &SelectionPresenter{ctx: ctx, sel: sel, vp: vp, proc: proc, view: view, overlay: overlay, logger: logger}
}

// Start shows img and begins accepting clicks.
func (p *SelectionPresenter) Start(img image.Image) {
	if p == nil || p.view == nil || img == nil {
		return
	}
	p.source = img
	size := p.vp.Fit(img.Bounds())
	p.base = images.Resize(img, size)
	if p.logger != nil {
		p.logger.Debug("preview prepared", "width", size.X, "height", size.Y, "scale", p.vp.Scale())
	}
	p.view.SetTitle(SelectionTitle(p.sel.Mode()))
	p.redraw()
}

// OnClick handles a left button press at preview coordinates.
func (p *SelectionPresenter) OnClick(x, y int) {
	if p == nil || p.phase != phaseSelecting {
		return
	}
	pt, ok := p.vp.ToImage(x, y)
	if !ok {
		if p.logger != nil {
			p.logger.Debug("click outside image ignored", "x", x, "y", y)
		}
		return
	}
	if _, err := p.sel.AddPoint(pt); err != nil {
		return
	}
	p.redraw()
	if p.sel.State() == selection.StateDone {
		p.finish(true)
	}
}

// OnConfirm handles the Enter key. In multi mode it ends the selection; on
// the result screen it closes the window.
func (p *SelectionPresenter) OnConfirm() {
	if p == nil {
		return
	}
	switch p.phase {
	case phaseSelecting:
		if p.sel.Confirm() {
			p.finish(true)
		}
	case phaseResult:
		p.close()
	}
}

// OnCancel handles the Escape key: the run ends without output, also when
// the result is already on screen.
func (p *SelectionPresenter) OnCancel() {
	if p == nil {
		return
	}
	switch p.phase {
	case phaseSelecting:
		p.sel.Abort()
		p.err = erase.Wrap(erase.StageSelect, selection.ErrCanceled)
	case phaseResult:
		p.result = nil
		p.err = erase.Wrap(erase.StageSelect, selection.ErrCanceled)
	}
	p.close()
}

// OnClose handles the window manager close request. A multi selection
// proceeds with the rectangles completed so far; a single selection without
// two points fails.
func (p *SelectionPresenter) OnClose() {
	if p == nil {
		return
	}
	if p.phase == phaseSelecting {
		if p.sel.Confirm() {
			p.finish(false)
		} else {
			p.sel.Abort()
			if _, err := p.sel.Result(); err != nil {
				p.err = erase.Wrap(erase.StageSelect, err)
			}
		}
	}
	p.close()
}

// Outcome returns the inpainted image or the error that ended the run.
func (p *SelectionPresenter) Outcome() (image.Image, error) {
	if p == nil {
		return nil, nil
	}
	if p.err == nil && p.result == nil {
		_, err := p.sel.Result()
		if err == nil {
			err = selection.ErrCanceled
		}
		return nil, erase.Wrap(erase.StageSelect, err)
	}
	return p.result, p.err
}

func (p *SelectionPresenter) finish(show bool) {
	rects, err := p.sel.Result()
	if err != nil {
		p.err = erase.Wrap(erase.StageSelect, err)
		p.close()
		return
	}
	if show {
		p.view.SetStatus("Removing selected area...")
	}
	out, err := p.proc.Process(p.ctx, p.source, rects)
	if err != nil {
		p.err = err
		if p.logger != nil {
			p.logger.Error("erase failed", "error", err)
		}
		p.close()
		return
	}
	p.result = out
	p.phase = phaseResult
	if !show {
		return
	}
	p.view.SetTitle(resultTitle)
	p.view.SetStatus(resultTitle + ". Press Enter or close the window to save, Esc to discard.")
	p.view.ShowImage(images.Resize(out, p.vp.DisplaySize()))
}

// redraw paints completed rectangles and the pending corner onto a fresh copy
// of the preview.
func (p *SelectionPresenter) redraw() {
	if p.base == nil {
		return
	}
	frame := images.Resize(p.base, p.base.Bounds().Size())
	for _, r := range p.sel.Rects() {
		images.StrokeRect(frame, p.vp.ToDisplay(r.Bounds()), p.overlay, strokeWidth)
	}
	if pt, ok := p.sel.Pending(); ok {
		images.Marker(frame, p.vp.PointToDisplay(pt), p.overlay, markerSize)
	}
	p.view.ShowImage(frame)
}

func (p *SelectionPresenter) close() {
	if p.phase == phaseClosed {
		return
	}
	p.phase = phaseClosed
	p.view.Close()
}

// SelectionTitle is the window title shown while selecting.
func SelectionTitle(mode selection.Mode) string {
	if mode == selection.ModeMulti {
		return "Select rectangles (click corner pairs), Enter to finish"
	}
	return "Click top-left and bottom-right corners"
}
