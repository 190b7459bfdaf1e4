package identicon

import (
	"fmt"
	"image/color"
)

// Color is the flat fill color of an icon, taken from the leading digest bytes.
type Color struct {
	R, G, B uint8
}

// PickColor extracts (R, G, B) from the first three digest bytes, in order.
// A digest shorter than 3 bytes violates the digest-source contract and is
// reported as an error; no other validation happens here.
func PickColor(digest []byte) (Color, error) {
	if len(digest) < 3 {
		return Color{}, fmt.Errorf("digest has %d bytes, need at least 3", len(digest))
	}
	return Color{R: digest[0], G: digest[1], B: digest[2]}, nil
}

// NRGBA returns the opaque stdlib form used by the rasterizer.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
