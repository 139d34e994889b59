package main

import (
	"fmt"

	"github.com/ironsheep/picturelab/internal/imaging"
	"github.com/ironsheep/picturelab/internal/picture"
	"github.com/spf13/cobra"
)

var collageCmd = &cobra.Command{
	Use:   "collage",
	Short: "Compose twelve transformed variants of a picture into a collage",
	RunE:  runCollage,
}

func init() {
	collageCmd.Flags().String("base", "", "Base picture file")
	collageCmd.Flags().StringP("output", "o", "", "Output collage file (.png, .jpg, .jpeg, .bmp)")
	collageCmd.Flags().Bool("fit", false, "Shrink the base picture to fit one collage cell")
	collageCmd.Flags().Int("quality", imaging.DefaultJPEGQuality, "JPEG quality (1-100)")
	collageCmd.MarkFlagRequired("base")
	collageCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(collageCmd)
}

func runCollage(cmd *cobra.Command, args []string) error {
	basePath, _ := cmd.Flags().GetString("base")
	outputPath, _ := cmd.Flags().GetString("output")
	fit, _ := cmd.Flags().GetBool("fit")
	quality, _ := cmd.Flags().GetInt("quality")

	if quality < 1 || quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", quality)
	}

	store := imaging.NewFileStore()
	store.JPEGQuality = quality
	store.Debug = debug

	canvas, err := picture.Collage(store, basePath, picture.CollageOptions{Fit: fit, Debug: debug})
	if err != nil {
		return err
	}
	if err := store.Save(canvas, outputPath); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Collage written to %s (%dx%d)\n", outputPath, canvas.Width(), canvas.Height())
	return nil
}
