// Package render rasterizes a pixel map onto a fixed-color canvas and encodes
// the result as PNG.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// background is the explicit canvas fill. The legacy rasterizer left its
// canvas at an effectively black default; filling explicitly keeps the output
// independent of the imaging library's zero value.
var background = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// Draw allocates a width x height canvas and fills each rectangle with the
// flat fill color. Rectangles are expected to be disjoint, so draw order does
// not affect the raster.
func Draw(width, height int, fill color.NRGBA, rects []image.Rectangle) *image.NRGBA {
	canvas := imaging.New(width, height, background)
	src := image.NewUniform(fill)
	for _, r := range rects {
		draw.Draw(canvas, r, src, image.Point{}, draw.Src)
	}
	return canvas
}

// EncodePNG encodes the raster as a lossless PNG byte stream. Encoding is
// deterministic for a given raster, so identical seeds yield identical bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}
