package identicon

// Cell is one logical grid position: a digest-derived byte value plus its
// stable row-major index (0-24).
type Cell struct {
	Value uint8
	Index int
}

// Grid is a flattened row-major 5x5 matrix of cells. Each row is horizontally
// palindromic, which is what makes the output read as one icon rather than noise.
type Grid []Cell

// BuildGrid expands a digest into the mirrored grid. The digest is split into
// consecutive 3-byte chunks (a trailing partial chunk is dropped, not padded);
// each chunk [a b c] becomes the row [a b c b a]. A digest shorter than one
// chunk yields an empty grid, which is degenerate but valid.
func BuildGrid(digest []byte) Grid {
	rows := len(digest) / chunkLen
	grid := make(Grid, 0, rows*GridCols)
	for r := 0; r < rows; r++ {
		chunk := digest[r*chunkLen : (r+1)*chunkLen]
		row := [GridCols]uint8{chunk[0], chunk[1], chunk[2], chunk[1], chunk[0]}
		for _, v := range row {
			grid = append(grid, Cell{Value: v, Index: len(grid)})
		}
	}
	return grid
}

// Painted returns the cells that will be drawn: those with even values, in
// their original order. Parity gives roughly 50% coverage spread
// pseudo-randomly across the grid.
func (g Grid) Painted() Grid {
	painted := make(Grid, 0, len(g))
	for _, c := range g {
		if c.Value%2 == 0 {
			painted = append(painted, c)
		}
	}
	return painted
}
