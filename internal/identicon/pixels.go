package identicon

import "image"

// Icon geometry. These are design constants, not knobs: 5 mirrored columns of
// 50px cells tile the 250x250 canvas exactly.
const (
	chunkLen = 3

	// GridCols is the number of columns (and rows) in the cell grid.
	GridCols = 5
	// GridCells is the total cell count of the grid.
	GridCells = GridCols * GridCols
	// CellSize is the edge length of one cell in pixels.
	CellSize = 50
	// CanvasSize is the edge length of the output image in pixels.
	CanvasSize = GridCols * CellSize
)

// MapPixels converts cells into canvas rectangles, one per cell, in the same
// order. Rectangle bounds follow the stdlib convention (Max is exclusive), so
// adjacent cells are disjoint and a full grid tiles the canvas with no seams.
func MapPixels(grid Grid) []image.Rectangle {
	rects := make([]image.Rectangle, 0, len(grid))
	for _, c := range grid {
		x := (c.Index % GridCols) * CellSize
		y := (c.Index / GridCols) * CellSize
		rects = append(rects, image.Rect(x, y, x+CellSize, y+CellSize))
	}
	return rects
}
