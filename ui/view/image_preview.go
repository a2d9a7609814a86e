package view

import (
	"image"

	"github.com/soocke/pixel-eraser-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ImagePreview shows the working image and reports clicks in preview pixel
// coordinates. It owns a single LabelWidget whose photo is replaced on update.
type ImagePreview interface {
	Show(img image.Image)
	OnClick(fn func(x, y int))
}

type imagePreview struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image instance, deleted on replacement
	onClick   func(x, y int)
}

// NewImagePreview creates the preview label and grids it at row.
// The label has no border or padding so event coordinates equal image pixels.
func NewImagePreview(row int) ImagePreview {
	placeholder := image.NewRGBA(image.Rect(0, 0, 200, 120))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(0), Padx(0), Pady(0), Anchor("nw"), Cursor("crosshair"))
	Grid(label, Row(row), Column(0), Columnspan(3), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	v := &imagePreview{label: label, prevPhoto: photo}
	Bind(label, "<ButtonPress-1>", Command(func(e *Event) {
		if v.onClick != nil {
			v.onClick(e.X, e.Y)
		}
	}))
	return v
}

func (v *imagePreview) OnClick(fn func(x, y int)) { v.onClick = fn }

func (v *imagePreview) Show(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}
