// Package inpaint defines the contract for the external inpainting primitive.
package inpaint

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
)

// DefaultRadius is the neighbourhood radius used when none is configured.
const DefaultRadius = 3.0

// ErrEmptyResult is returned when the library produced no output image.
var ErrEmptyResult = errors.New("inpaint produced an empty image")

// Method selects one of the two inpainting algorithms.
type Method int

const (
	// Telea is the fast marching method by Alexandru Telea.
	Telea Method = iota
	// NS is the Navier-Stokes based method.
	NS
)

func (m Method) String() string {
	switch m {
	case Telea:
		return "telea"
	case NS:
		return "ns"
	default:
		return "unknown"
	}
}

// ParseMethod maps "telea" or "ns" (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "telea", "":
		return Telea, nil
	case "ns", "navier-stokes":
		return NS, nil
	}
	return Telea, fmt.Errorf("unknown inpaint method %q", s)
}

// Params are passed through to the library unchanged.
type Params struct {
	Radius float64
	Method Method
}

// DefaultParams returns radius 3 with the Telea method.
func DefaultParams() Params { return Params{Radius: DefaultRadius, Method: Telea} }

// Inpainter reconstructs the masked pixels of img. Mask pixels with value 255
// mark the region to fill; the returned image has the same size as img.
type Inpainter interface {
	Inpaint(ctx context.Context, img image.Image, mask *image.Gray, p Params) (image.Image, error)
}

// Func adapts a plain function to the Inpainter interface.
type Func func(ctx context.Context, img image.Image, mask *image.Gray, p Params) (image.Image, error)

func (f Func) Inpaint(ctx context.Context, img image.Image, mask *image.Gray, p Params) (image.Image, error) {
	return f(ctx, img, mask, p)
}
