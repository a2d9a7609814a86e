package presenter

import (
	"fmt"

	"github.com/soocke/pixel-eraser-go/domain/selection"
)

// SelectionSource provides the selector state the status line reflects.
type SelectionSource interface {
	Mode() selection.Mode
	State() selection.State
	Rects() []selection.Rect
}

// StatusView sets the status label in the view.
type StatusView interface{ SetStatus(string) }

// StatusPresenter receives selector transitions and updates the status line.
type StatusPresenter struct {
	src    SelectionSource
	view   StatusView
	latest string // last text pushed to the view
}

func NewStatusPresenter(src SelectionSource, view StatusView) *StatusPresenter {
	return &StatusPresenter{src: src, view: view}
}

// OnState is registered as a selector listener.
func (p *StatusPresenter) OnState(prev, next selection.State) {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	p.set(StatusText(p.src.Mode(), next, len(p.src.Rects())))
}

// Refresh pushes the text for the current selector state.
func (p *StatusPresenter) Refresh() {
	if p == nil || p.src == nil {
		return
	}
	p.OnState(p.src.State(), p.src.State())
}

func (p *StatusPresenter) set(text string) {
	if text == "" || text == p.latest {
		return
	}
	p.latest = text
	p.view.SetStatus(text)
}

// StatusText describes what the user should do next.
func StatusText(mode selection.Mode, state selection.State, rects int) string {
	switch state {
	case selection.StateSelecting:
		if mode == selection.ModeMulti {
			return fmt.Sprintf("Click two corners per rectangle (%d selected). Enter to remove, Esc to cancel.", rects)
		}
		return "Click the top-left corner, then the bottom-right corner. Esc to cancel."
	case selection.StateAwaitingCorner:
		return "Click the opposite corner."
	case selection.StateDone:
		if mode == selection.ModeMulti {
			return fmt.Sprintf("Selection confirmed: %d rectangle(s).", rects)
		}
		return "Selection complete."
	case selection.StateAborted:
		return "Selection aborted."
	}
	return ""
}
