package view

import (
	"image"
	"log/slog"

	"github.com/soocke/pixel-eraser-go/assets"
	"github.com/soocke/pixel-eraser-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the callbacks wired to window events.
type Handlers struct {
	Click   func(x, y int)
	Confirm func()
	Cancel  func()
	Close   func()
}

// RootView composes the single application window: status line, image
// preview and the confirm/cancel buttons.
type RootView struct {
	logger *slog.Logger

	Preview     ImagePreview
	StatusLabel *TLabelWidget
	closed      bool
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout and binds handlers.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	theme.InitStyles()
	App.IconPhoto(NewPhoto(Data(assets.IconPNG)))
	WmProtocol(App, "WM_DELETE_WINDOW", h.Close)

	rv.StatusLabel = TLabel(Txt(""), Style(theme.StyleStatusLabel), Anchor("w"))
	Grid(rv.StatusLabel, Row(0), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	rv.Preview = NewImagePreview(1)
	rv.Preview.OnClick(h.Click)

	confirm := TButton(Txt("Confirm [Enter]"), Style(theme.StylePrimaryButton), Command(h.Confirm))
	Grid(confirm, Row(2), Column(1), Sticky("e"), Padx("0.2m"), Pady("0.3m"))
	cancel := TButton(Txt("Cancel [Esc]"), Style(theme.StyleDangerButton), Command(h.Cancel))
	Grid(cancel, Row(2), Column(2), Sticky("e"), Padx("0.2m"), Pady("0.3m"))
	GridColumnConfigure(App, 0, Weight(1))

	Bind(App, "<Return>", Command(h.Confirm))
	Bind(App, "<KP_Enter>", Command(h.Confirm))
	Bind(App, "<Escape>", Command(h.Cancel))
}

// ShowImage replaces the preview image.
func (rv *RootView) ShowImage(img image.Image) {
	if rv != nil && rv.Preview != nil && !rv.closed {
		rv.Preview.Show(img)
	}
}

// SetTitle updates the window title.
func (rv *RootView) SetTitle(title string) {
	if rv != nil && !rv.closed {
		App.WmTitle(title)
	}
}

// SetStatus updates the status line text.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil && !rv.closed {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// Close destroys the window, which ends Run.
func (rv *RootView) Close() {
	if rv == nil || rv.closed {
		return
	}
	rv.closed = true
	Destroy(App)
}

// Run blocks in the Tk event loop until the window is destroyed.
func (rv *RootView) Run() { App.Wait() }
