package main

import (
	"encoding/hex"
	"fmt"

	"github.com/hayk94/identicon/internal/identicon"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [seed]",
	Short: "Show the derived color and cell grid without writing an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	seed := args[0]

	digest := identicon.Sum(seed)
	fill, err := identicon.PickColor(digest)
	if err != nil {
		return fmt.Errorf("picking color: %w", err)
	}
	painted := identicon.BuildGrid(digest).Painted()

	fmt.Printf("Seed:    %q\n", seed)
	fmt.Printf("Digest:  %s\n", hex.EncodeToString(digest))
	fmt.Printf("Color:   %s\n", fill)
	fmt.Printf("Painted: %d of %d cells\n", len(painted), identicon.GridCells)
	fmt.Println(renderGridTable(painted))

	return nil
}
