package selection

import (
	"image"
	"log/slog"
)

// Selector accumulates click points into rectangles and tracks when the
// selection is finished. It is not safe for concurrent use; all calls are
// expected from the UI event thread.
type Selector struct {
	mode      Mode
	state     State
	logger    *slog.Logger
	points    []image.Point
	rects     []Rect
	listeners []Listener
}

// NewSelector returns a selector in the selecting state.
func NewSelector(mode Mode, logger *slog.Logger) *Selector {
	return &Selector{mode: mode, state: StateSelecting, logger: logger}
}

func (s *Selector) Mode() Mode   { return s.mode }
func (s *Selector) State() State { return s.state }

// AddListener registers fn for subsequent transitions.
func (s *Selector) AddListener(fn Listener) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// AddPoint records a click. When the point completes a pair the resulting
// rectangle is returned. In single mode the second point finishes the selection.
func (s *Selector) AddPoint(p image.Point) (*Rect, error) {
	if s.state.Terminal() {
		return nil, ErrFinished
	}
	s.points = append(s.points, p)
	n := len(s.points)
	if s.logger != nil {
		s.logger.Info("point recorded", "n", n, "x", p.X, "y", p.Y)
	}
	if n%2 != 0 {
		s.transition(StateAwaitingCorner)
		return nil, nil
	}
	r := Rect{P1: s.points[n-2], P2: s.points[n-1]}
	s.rects = append(s.rects, r)
	if s.logger != nil {
		s.logger.Debug("rectangle completed", "rect", r.String(), "count", len(s.rects))
	}
	if s.mode == ModeSingle {
		s.transition(StateDone)
	} else {
		s.transition(StateSelecting)
	}
	return &r, nil
}

// Confirm ends a multi-object selection. A dangling unpaired point is dropped.
// It reports whether the selection is finished; single mode only finishes through clicks.
func (s *Selector) Confirm() bool {
	if s.state.Terminal() {
		return s.state == StateDone
	}
	if s.mode != ModeMulti {
		return false
	}
	if len(s.points)%2 != 0 {
		s.points = s.points[:len(s.points)-1]
	}
	s.transition(StateDone)
	return true
}

// Abort ends the selection without confirmation, e.g. when the window closes.
func (s *Selector) Abort() {
	if s.state.Terminal() {
		return
	}
	s.transition(StateAborted)
}

// Result returns the selected rectangles. Single mode requires exactly one
// rectangle and fails with ErrPointCount otherwise.
func (s *Selector) Result() ([]Rect, error) {
	if s.mode == ModeSingle {
		if len(s.points) != 2 || len(s.rects) != 1 {
			return nil, ErrPointCount
		}
	}
	return s.Rects(), nil
}

// Points returns a copy of the recorded points.
func (s *Selector) Points() []image.Point {
	out := make([]image.Point, len(s.points))
	copy(out, s.points)
	return out
}

// Rects returns a copy of the completed rectangles.
func (s *Selector) Rects() []Rect {
	out := make([]Rect, len(s.rects))
	copy(out, s.rects)
	return out
}

// Pending returns the unpaired first corner, if any.
func (s *Selector) Pending() (image.Point, bool) {
	if len(s.points)%2 == 0 {
		return image.Point{}, false
	}
	return s.points[len(s.points)-1], true
}

func (s *Selector) transition(next State) {
	prev := s.state
	if prev == next {
		return
	}
	s.state = next
	if s.logger != nil {
		s.logger.Debug("selection state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range s.listeners {
		l(prev, next)
	}
}
