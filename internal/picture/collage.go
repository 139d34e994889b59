package picture

import (
	"fmt"
	"log"

	"github.com/disintegration/imaging"
)

// Loader supplies pictures by path.
type Loader interface {
	Load(path string) (*Picture, error)
}

// Collage canvas geometry: three rows of four cells.
const (
	CollageWidth      = 1620
	CollageHeight     = 1700
	CollageCellWidth  = 405
	CollageCellHeight = 600

	// collageFitHeight keeps the bottom row, which only has 500 rows of
	// canvas left, inside the canvas when tiles are fitted.
	collageFitHeight = 500
)

// CollageOptions controls Collage.
type CollageOptions struct {
	// Fit shrinks the base picture to fit a single cell before any tile is
	// derived from it. Without it, oversized tiles are clipped by their
	// neighbors and the canvas edge.
	Fit bool

	// Debug logs one line per placed tile.
	Debug bool
}

// collageTile derives a picture from an earlier tile (or the base, when from
// is -1) and places it at (row, col).
type collageTile struct {
	from     int
	ops      []string
	row, col int
}

var collageLayout = []collageTile{
	{from: -1, row: 0, col: 0},
	{from: -1, ops: []string{"negate"}, row: 0, col: 405},
	{from: 1, ops: []string{"mirror_horizontal_top_to_bottom"}, row: 0, col: 810},
	{from: 2, ops: []string{"grayscale"}, row: 0, col: 1215},
	{from: -1, ops: []string{"grayscale", "mirror_vertical"}, row: 600, col: 0},
	{from: 4, ops: []string{"mirror_horizontal_top_to_bottom"}, row: 600, col: 405},
	{from: -1, ops: []string{"zero_blue"}, row: 600, col: 810},
	{from: 6, ops: []string{"negate"}, row: 600, col: 1215},
	{from: -1, ops: []string{"keep_only_blue"}, row: 1200, col: 0},
	{from: 8, ops: []string{"grayscale"}, row: 1200, col: 405},
	{from: 9, ops: []string{"zero_blue"}, row: 1200, col: 810},
	{from: -1, ops: []string{"edge_detection:15"}, row: 1200, col: 1215},
}

// Collage loads basePath and composes twelve variants of it onto a white
// CollageWidth x CollageHeight canvas. The returned canvas is not saved.
func Collage(loader Loader, basePath string, opts CollageOptions) (*Picture, error) {
	base, err := loader.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load collage base: %w", err)
	}
	if opts.Fit {
		name := base.Name()
		base = FromImage(imaging.Fit(base.Image(), CollageCellWidth, collageFitHeight, imaging.Lanczos))
		base.SetName(name)
	}

	canvas := New(CollageWidth, CollageHeight)
	tiles := make([]*Picture, len(collageLayout))
	for i, t := range collageLayout {
		src := base
		if t.from >= 0 {
			src = tiles[t.from]
		}
		tile := src.Clone()
		if err := tile.Apply(t.ops...); err != nil {
			return nil, fmt.Errorf("collage tile %d: %w", i, err)
		}
		if err := canvas.Copy(tile, t.row, t.col); err != nil {
			return nil, fmt.Errorf("collage tile %d: %w", i, err)
		}
		tiles[i] = tile
		if opts.Debug {
			log.Printf("collage: tile %d %v at (%d,%d)", i, t.ops, t.row, t.col)
		}
	}
	return canvas, nil
}
