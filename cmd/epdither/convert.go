package main

import (
	"fmt"
	"log/slog"

	"github.com/mkaraca/epdither"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <folder>",
	Short: "Convert every image in a folder into landscape/portrait output subfolders",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().Int("num-colors", 7, "Number of colors in the dynamic palette")
	convertCmd.Flags().Float64("min-distance", epdither.DefaultMinDistance, "Minimum RGB distance between palette colors")
	convertCmd.Flags().String("method", "kmeans", "Dynamic palette method (kmeans, dominant)")
	convertCmd.Flags().Bool("fixed", false, "Use the fixed display palette instead of clustering")
	convertCmd.Flags().Bool("warm", false, "Use the warm fixed palette (implies --fixed)")
	convertCmd.Flags().String("policy", "auto", "Canvas policy (auto, none, scale, cut)")
	convertCmd.Flags().String("direction", "auto", "Canvas orientation (auto, landscape, portrait)")
	convertCmd.Flags().String("dither", "floyd-steinberg", "Error-diffusion matrix")
	convertCmd.Flags().Bool("serpentine", false, "Scan alternate rows right-to-left while diffusing")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	results, err := epdither.ProcessFolder(args[0], opts, slog.Default())
	if err != nil {
		return err
	}

	converted := 0
	for _, r := range results {
		if r.Err == nil {
			converted++
		}
	}
	fmt.Printf("Processed %d files: %d converted, %d failed\n",
		len(results), converted, len(results)-converted)
	return nil
}

func optionsFromFlags(cmd *cobra.Command) (epdither.Options, error) {
	opts := epdither.DefaultOptions()
	opts.NumColors, _ = cmd.Flags().GetInt("num-colors")
	opts.MinDistance, _ = cmd.Flags().GetFloat64("min-distance")
	opts.Fixed, _ = cmd.Flags().GetBool("fixed")
	opts.Warm, _ = cmd.Flags().GetBool("warm")
	opts.Dither, _ = cmd.Flags().GetString("dither")
	opts.Serpentine, _ = cmd.Flags().GetBool("serpentine")
	if opts.Warm {
		opts.Fixed = true
	}

	method, _ := cmd.Flags().GetString("method")
	var err error
	if opts.Method, err = epdither.ParsePaletteMethod(method); err != nil {
		return opts, err
	}

	// auto: fixed-palette runs fit to the panel, dynamic runs keep the
	// source dimensions.
	policy, _ := cmd.Flags().GetString("policy")
	if policy == "auto" {
		opts.Policy = epdither.PolicyNone
		if opts.Fixed {
			opts.Policy = epdither.PolicyScale
		}
	} else if opts.Policy, err = epdither.ParsePolicy(policy); err != nil {
		return opts, err
	}

	direction, _ := cmd.Flags().GetString("direction")
	if opts.Direction, err = epdither.ParseDirection(direction); err != nil {
		return opts, err
	}

	if _, err = epdither.DiffusionMatrix(opts.Dither); err != nil {
		return opts, err
	}
	return opts, nil
}
