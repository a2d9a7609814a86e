package opencv

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/soocke/pixel-eraser-go/domain/mask"
	"github.com/soocke/pixel-eraser-go/domain/selection"
)

// BuildMask fills rects with cv::rectangle into an 8-bit mask with the given
// bounds. The pixels are identical to mask.Build.
func BuildMask(bounds image.Rectangle, rects []selection.Rect) (*image.Gray, error) {
	if bounds.Empty() {
		return image.NewGray(bounds), nil
	}
	m := gocv.NewMatWithSize(bounds.Dy(), bounds.Dx(), gocv.MatTypeCV8U)
	defer m.Close()
	m.SetTo(gocv.NewScalar(0, 0, 0, 0))

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for _, r := range rects {
		area := mask.Clamp(r, bounds)
		if area.Empty() {
			continue
		}
		gocv.Rectangle(&m, area.Sub(bounds.Min), white, -1)
	}

	img, err := m.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert mask: %w", err)
	}
	g, ok := img.(*image.Gray)
	if !ok {
		return nil, fmt.Errorf("convert mask: unexpected image type %T", img)
	}
	g.Rect = g.Rect.Add(bounds.Min)
	return g, nil
}
