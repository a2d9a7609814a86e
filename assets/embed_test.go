package assets

import (
	"bytes"
	"image/png"
	"testing"
)

func TestIconPNG_Decodes(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(IconPNG))
	if err != nil {
		t.Fatalf("decode icon: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("expected 32x32 icon, got %dx%d", b.Dx(), b.Dy())
	}
}
