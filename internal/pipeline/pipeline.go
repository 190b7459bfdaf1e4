package pipeline

import (
	"fmt"
	"image"

	"github.com/hayk94/identicon/internal/identicon"
	"github.com/hayk94/identicon/internal/render"
)

// Result holds the output of a pipeline run: the encoded image plus the
// derived fields collaborators may want to report or inspect.
type Result struct {
	Data     []byte            // encoded PNG
	Color    identicon.Color   // fill color
	Grid     identicon.Grid    // painted cells only, in grid order
	PixelMap []image.Rectangle // one rectangle per painted cell, same order
	Width    int
	Height   int
}

// Run executes the full identicon pipeline:
// digest → color → grid → filter → pixel map → raster.
// It is deterministic: the same seed always yields byte-identical Data.
func Run(seed string) (*Result, error) {
	// 1. Hash the seed into its 16-byte digest
	digest := identicon.Sum(seed)

	// 2. Select the fill color from the leading digest bytes
	fill, err := identicon.PickColor(digest)
	if err != nil {
		return nil, fmt.Errorf("pick color: %w", err)
	}

	// 3-4. Build the mirrored grid, keep the even-valued cells
	painted := identicon.BuildGrid(digest).Painted()

	// 5. Map surviving cells to canvas rectangles
	rects := identicon.MapPixels(painted)

	// 6. Rasterize and encode
	img := render.Draw(identicon.CanvasSize, identicon.CanvasSize, fill.NRGBA(), rects)
	data, err := render.EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:     data,
		Color:    fill,
		Grid:     painted,
		PixelMap: rects,
		Width:    identicon.CanvasSize,
		Height:   identicon.CanvasSize,
	}, nil
}
