package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ironsheep/picturelab/internal/imaging"
	"github.com/ironsheep/picturelab/internal/picture"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply pixel operations to a picture and save the result",
	Long: "Apply pixel operations in order. Available operations: " +
		strings.Join(picture.OperationNames(), ", ") +
		". edge_detection takes an optional distance as edge_detection:<n>.",
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringP("input", "i", "", "Input picture file")
	applyCmd.Flags().StringP("output", "o", "", "Output picture file (.png, .jpg, .jpeg, .bmp)")
	applyCmd.Flags().StringArray("op", nil, "Operation to apply (repeatable, applied in order)")
	applyCmd.Flags().Int("quality", imaging.DefaultJPEGQuality, "JPEG quality (1-100)")
	applyCmd.MarkFlagRequired("input")
	applyCmd.MarkFlagRequired("output")
	applyCmd.MarkFlagRequired("op")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	ops, _ := cmd.Flags().GetStringArray("op")
	quality, _ := cmd.Flags().GetInt("quality")

	if quality < 1 || quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", quality)
	}

	store := imaging.NewFileStore()
	store.JPEGQuality = quality
	store.Debug = debug

	p, err := store.Load(inputPath)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}
	if err := p.Apply(ops...); err != nil {
		return fmt.Errorf("applying operations: %w", err)
	}
	if err := store.Save(p, outputPath); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if debug {
		log.Printf("apply: %s %v -> %s", p, ops, outputPath)
	}
	fmt.Printf("%s -> %s (%dx%d)\n", inputPath, outputPath, p.Width(), p.Height())
	return nil
}
