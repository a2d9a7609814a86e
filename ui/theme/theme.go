package theme

// Centralized theming and styling initialization for the eraser window.
// Provides palette constants and InitStyles to activate a base theme and
// configure semantic widget styles.

import (
	"image/color"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg      = "#f7f9fb" // app background
	ColorSurface = "#ffffff" // status bar
	ColorPrimary = "#2563eb" // confirm button
	ColorDanger  = "#dc2626" // cancel button, selection overlay
	ColorText    = "#1e293b"
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStatusLabel   = "status.TLabel"
)

// Overlay is the color of selection rectangles drawn over the preview.
func Overlay() color.RGBA { return color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff} }

// InitStyles activates the base theme and configures the semantic styles.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))

	StyleConfigure(StylePrimaryButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(ColorDanger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStatusLabel,
		Foreground(ColorText),
		Background(ColorSurface),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
