package main

import (
	"fmt"
	"os"

	"github.com/hayk94/identicon/internal/identicon"
	"github.com/hayk94/identicon/internal/pipeline"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [seed]",
	Short: "Generate a PNG identicon for a seed string",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "Output PNG file (default <seed>.png)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	seed := args[0]
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = seed + ".png"
	}

	result, err := pipeline.Run(seed)
	if err != nil {
		return fmt.Errorf("generating icon: %w", err)
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Generated %dx%d icon for %q\n", result.Width, result.Height, seed)
	fmt.Printf("Color:   %s\n", result.Color)
	fmt.Printf("Painted: %d of %d cells\n", len(result.Grid), identicon.GridCells)
	fmt.Printf("Output:  %s (%d bytes)\n", outputPath, len(result.Data))

	return nil
}
