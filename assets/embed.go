package assets

import _ "embed"

// IconPNG contains the raw PNG bytes of the window icon.
//
//go:embed icon.png
var IconPNG []byte
