package mask

import (
	"image"
	"testing"

	"github.com/soocke/pixel-eraser-go/domain/selection"
)

func rect(x1, y1, x2, y2 int) selection.Rect {
	return selection.Rect{P1: image.Pt(x1, y1), P2: image.Pt(x2, y2)}
}

func checkRegion(t *testing.T, m *image.Gray, inside image.Rectangle) {
	t.Helper()
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			want := Background
			if image.Pt(x, y).In(inside) {
				want = Foreground
			}
			if got := m.GrayAt(x, y).Y; got != want {
				t.Fatalf("pixel (%d,%d): got %d want %d", x, y, got, want)
			}
		}
	}
}

func TestBuild_InteriorForegroundExteriorBackground(t *testing.T) {
	m := Build(image.Rect(0, 0, 20, 15), []selection.Rect{rect(3, 4, 8, 10)})
	if m.Bounds() != image.Rect(0, 0, 20, 15) {
		t.Fatalf("mask bounds %v do not match image", m.Bounds())
	}
	// corners are inclusive
	checkRegion(t, m, image.Rect(3, 4, 9, 11))
	if n := Count(m); n != 6*7 {
		t.Fatalf("expected 42 foreground pixels, got %d", n)
	}
}

func TestBuild_ReversedCornersMatchNormalized(t *testing.T) {
	b := image.Rect(0, 0, 16, 16)
	normal := Build(b, []selection.Rect{rect(2, 3, 9, 11)})
	reversed := Build(b, []selection.Rect{rect(9, 11, 2, 3)})
	mixed := Build(b, []selection.Rect{rect(9, 3, 2, 11)})
	for i := range normal.Pix {
		if normal.Pix[i] != reversed.Pix[i] || normal.Pix[i] != mixed.Pix[i] {
			t.Fatalf("corner order changed mask at index %d", i)
		}
	}
}

func TestBuild_MultipleRectanglesAccumulate(t *testing.T) {
	m := Build(image.Rect(0, 0, 30, 30), []selection.Rect{
		rect(0, 0, 4, 4),
		rect(2, 2, 6, 6),
		rect(20, 20, 25, 22),
	})
	// 5x5 + 5x5 - 3x3 overlap + 6x3
	if n := Count(m); n != 25+25-9+18 {
		t.Fatalf("unexpected foreground count %d", n)
	}
	if m.GrayAt(10, 10).Y != Background {
		t.Fatalf("pixel between rects should stay background")
	}
}

func TestBuild_FillIsIdempotent(t *testing.T) {
	b := image.Rect(0, 0, 10, 10)
	once := Build(b, []selection.Rect{rect(1, 1, 5, 5)})
	twice := Build(b, []selection.Rect{rect(1, 1, 5, 5), rect(5, 5, 1, 1)})
	if Count(once) != Count(twice) {
		t.Fatalf("refilling changed the mask: %d vs %d", Count(once), Count(twice))
	}
}

func TestBuild_ClampsOutOfBounds(t *testing.T) {
	m := Build(image.Rect(0, 0, 10, 10), []selection.Rect{rect(-5, -5, 2, 2), rect(50, 50, 60, 60)})
	checkRegion(t, m, image.Rect(0, 0, 3, 3))
}

func TestBuild_NoRectsIsEmptyMask(t *testing.T) {
	m := Build(image.Rect(0, 0, 8, 8), nil)
	if Count(m) != 0 {
		t.Fatalf("expected empty mask")
	}
}

func TestBuild_OffsetBounds(t *testing.T) {
	b := image.Rect(10, 10, 20, 20)
	m := Build(b, []selection.Rect{rect(12, 12, 13, 14)})
	checkRegion(t, m, image.Rect(12, 12, 14, 15))
}
