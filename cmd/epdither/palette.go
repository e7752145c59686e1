package main

import (
	"fmt"

	"github.com/mkaraca/epdither"
	"github.com/mkaraca/epdither/utils"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette <image>",
	Short: "Extract a palette from an image and save it as a swatch strip",
	Args:  cobra.ExactArgs(1),
	RunE:  runPalette,
}

func init() {
	paletteCmd.Flags().Int("num-colors", 7, "Number of colors to extract")
	paletteCmd.Flags().Float64("min-distance", epdither.DefaultMinDistance, "Minimum RGB distance between palette colors")
	paletteCmd.Flags().String("method", "kmeans", "Palette method (kmeans, dominant)")
	paletteCmd.Flags().StringP("output", "o", "palette.png", "Swatch output path")
	paletteCmd.Flags().Int("tile-size", 64, "Swatch tile size in pixels")
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	numColors, _ := cmd.Flags().GetInt("num-colors")
	minDistance, _ := cmd.Flags().GetFloat64("min-distance")
	methodName, _ := cmd.Flags().GetString("method")
	output, _ := cmd.Flags().GetString("output")
	tileSize, _ := cmd.Flags().GetInt("tile-size")

	method, err := epdither.ParsePaletteMethod(methodName)
	if err != nil {
		return err
	}

	img, err := utils.ReadImage(args[0])
	if err != nil {
		return err
	}

	pal, err := epdither.ExtractPalette(img, numColors, minDistance, method)
	if err != nil {
		return fmt.Errorf("extracting palette: %w", err)
	}

	if err := utils.SavePalette(pal, tileSize, output); err != nil {
		return fmt.Errorf("writing swatch: %w", err)
	}
	fmt.Printf("Extracted %d colors to %s\n", len(pal), output)
	return nil
}
