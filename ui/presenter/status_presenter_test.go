package presenter

import (
	"image"
	"strings"
	"testing"

	"github.com/soocke/pixel-eraser-go/domain/selection"
)

type statusRecorder struct{ texts []string }

func (r *statusRecorder) SetStatus(s string) { r.texts = append(r.texts, s) }

func TestStatusPresenter_FollowsSelector(t *testing.T) {
	sel := selection.NewSelector(selection.ModeMulti, nil)
	rec := &statusRecorder{}
	sp := NewStatusPresenter(sel, rec)
	sel.AddListener(sp.OnState)
	sp.Refresh()
	if len(rec.texts) != 1 || !strings.Contains(rec.texts[0], "0 selected") {
		t.Fatalf("unexpected initial status %v", rec.texts)
	}
	_, _ = sel.AddPoint(image.Pt(1, 1))
	if rec.texts[len(rec.texts)-1] != "Click the opposite corner." {
		t.Fatalf("expected corner hint, got %q", rec.texts[len(rec.texts)-1])
	}
	_, _ = sel.AddPoint(image.Pt(4, 4))
	if !strings.Contains(rec.texts[len(rec.texts)-1], "1 selected") {
		t.Fatalf("expected count update, got %q", rec.texts[len(rec.texts)-1])
	}
	sel.Confirm()
	if !strings.Contains(rec.texts[len(rec.texts)-1], "1 rectangle") {
		t.Fatalf("expected confirmation text, got %q", rec.texts[len(rec.texts)-1])
	}
}

func TestStatusPresenter_SkipsDuplicates(t *testing.T) {
	sel := selection.NewSelector(selection.ModeSingle, nil)
	rec := &statusRecorder{}
	sp := NewStatusPresenter(sel, rec)
	sp.Refresh()
	sp.Refresh()
	if len(rec.texts) != 1 {
		t.Fatalf("duplicate status should not be pushed, got %d", len(rec.texts))
	}
}

func TestStatusText_Aborted(t *testing.T) {
	if StatusText(selection.ModeSingle, selection.StateAborted, 0) != "Selection aborted." {
		t.Fatalf("unexpected aborted text")
	}
}
