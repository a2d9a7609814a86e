package selection

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

var (
	// ErrPointCount is returned when a single-object selection ends without two points.
	ErrPointCount = errors.New("select the rectangle by clicking exactly two points")
	// ErrFinished is returned when points arrive after the selection has ended.
	ErrFinished = errors.New("selection already finished")
	// ErrCanceled is returned when the user cancels the selection.
	ErrCanceled = errors.New("selection canceled")
)

// Mode selects how click points are turned into rectangles.
type Mode int

const (
	// ModeSingle finishes automatically after one rectangle (two points).
	ModeSingle Mode = iota
	// ModeMulti pairs points into any number of rectangles until confirmed.
	ModeMulti
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// ParseMode maps "single" or "multi" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "one":
		return ModeSingle, nil
	case "multi", "some", "many":
		return ModeMulti, nil
	}
	return ModeSingle, fmt.Errorf("unknown selection mode %q", s)
}

// State enumerates the phases of an interactive selection.
type State int

const (
	StateSelecting State = iota
	StateAwaitingCorner
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateAwaitingCorner:
		return "awaiting-corner"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further points are accepted.
func (s State) Terminal() bool { return s == StateDone || s == StateAborted }

// Listener is called on each state transition.
type Listener func(prev, next State)

// Rect is a pair of corner points as clicked. Both corners are inclusive.
type Rect struct {
	P1, P2 image.Point
}

// Normalize returns the rectangle with P1 top-left and P2 bottom-right.
func (r Rect) Normalize() Rect {
	x1, x2 := r.P1.X, r.P2.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := r.P1.Y, r.P2.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rect{P1: image.Pt(x1, y1), P2: image.Pt(x2, y2)}
}

// Bounds converts the inclusive corners into a half-open image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	n := r.Normalize()
	return image.Rect(n.P1.X, n.P1.Y, n.P2.X+1, n.P2.Y+1)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.P1.X, r.P1.Y, r.P2.X, r.P2.Y)
}
