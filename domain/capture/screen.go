package capture

import (
	"image"
	"strings"

	"github.com/vova616/screenshot"
)

// ScreenInput is the input path that selects a live screen capture instead of a file.
const ScreenInput = "screen"

// IsScreen reports whether path asks for a screen capture.
func IsScreen(path string) bool {
	return strings.EqualFold(strings.TrimSpace(path), ScreenInput)
}

// Grab returns a screen capture of the primary monitor.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	return img, nil
}
