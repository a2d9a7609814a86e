package opencv

import (
	"context"
	"image"
	"image/color"
	"testing"

	"gocv.io/x/gocv"

	"github.com/soocke/pixel-eraser-go/domain/inpaint"
)

// flatWithBlob returns a uniform grey image with a black square in the middle.
func flatWithBlob(w, h int, blob image.Rectangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{R: 128, G: 128, B: 128, A: 255}
			if image.Pt(x, y).In(blob) {
				c = color.RGBA{A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestInpainter_FillsMaskedBlob(t *testing.T) {
	blob := image.Rect(12, 12, 20, 20)
	img := flatWithBlob(32, 32, blob)
	m := image.NewGray(img.Bounds())
	for y := blob.Min.Y; y < blob.Max.Y; y++ {
		for x := blob.Min.X; x < blob.Max.X; x++ {
			m.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	for _, method := range []inpaint.Method{inpaint.Telea, inpaint.NS} {
		out, err := New(nil).Inpaint(context.Background(), img, m, inpaint.Params{Radius: 3, Method: method})
		if err != nil {
			t.Fatalf("%s: inpaint: %v", method, err)
		}
		if out.Bounds().Dx() != 32 || out.Bounds().Dy() != 32 {
			t.Fatalf("%s: output size %v differs from input", method, out.Bounds())
		}
		r, g, b, _ := out.At(16, 16).RGBA()
		for _, v := range []uint32{r >> 8, g >> 8, b >> 8} {
			if v < 100 || v > 156 {
				t.Fatalf("%s: centre pixel not reconstructed, got (%d,%d,%d)", method, r>>8, g>>8, b>>8)
			}
		}
	}
}

func TestInpainter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	img := flatWithBlob(8, 8, image.Rectangle{})
	if _, err := New(nil).Inpaint(ctx, img, image.NewGray(img.Bounds()), inpaint.DefaultParams()); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestAlgorithmMapping(t *testing.T) {
	if algorithm(inpaint.Telea) != gocv.Telea || algorithm(inpaint.NS) != gocv.NS {
		t.Fatalf("method mapping broken")
	}
}

func TestCompactGray_RebasesSubImage(t *testing.T) {
	full := image.NewGray(image.Rect(0, 0, 10, 10))
	full.SetGray(5, 5, color.Gray{Y: 255})
	sub := full.SubImage(image.Rect(4, 4, 8, 8)).(*image.Gray)
	c := compactGray(sub)
	if c.Bounds() != image.Rect(0, 0, 4, 4) || c.Stride != 4 {
		t.Fatalf("unexpected compact layout %v stride=%d", c.Bounds(), c.Stride)
	}
	if c.GrayAt(1, 1).Y != 255 {
		t.Fatalf("pixel not carried over")
	}
}
