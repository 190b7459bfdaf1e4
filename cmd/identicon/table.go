package main

import (
	"fmt"

	"github.com/hayk94/identicon/internal/identicon"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderGridTable draws the 5x5 cell grid, marking painted cells.
func renderGridTable(painted identicon.Grid) string {
	marks := make(map[int]bool, len(painted))
	for _, c := range painted {
		marks[c.Index] = true
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := table.Row{""}
	for col := 0; col < identicon.GridCols; col++ {
		header = append(header, fmt.Sprintf("c%d", col))
	}
	tw.AppendHeader(header)

	for row := 0; row < identicon.GridCols; row++ {
		r := table.Row{fmt.Sprintf("r%d", row)}
		for col := 0; col < identicon.GridCols; col++ {
			if marks[row*identicon.GridCols+col] {
				r = append(r, "██")
			} else {
				r = append(r, "")
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, identicon.GridCols+1)
	for i := 0; i <= identicon.GridCols; i++ {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignCenter,
			AlignHeader: text.AlignCenter,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
