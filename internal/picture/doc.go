// Package picture implements whole-image pixel transformations over an
// in-memory raster.
//
// A Picture is a row-major grid of RGB pixels with the origin at the top-left
// corner. Unlike the imaging package, coordinates here are given as
// (row, col): row selects the scanline (0 = top) and col the position within
// it (0 = leftmost).
//
// # Pixels
//
// Pixel values are views into the owning Picture's storage. Setting a channel
// through a Pixel is immediately visible through the Picture and every other
// Pixel addressing the same location. Channel setters clamp to [0,255].
//
// # Operations
//
// Channel operations (ZeroBlue, KeepOnlyBlue, Negate, Grayscale), mirrors
// and EdgeDetection rewrite the picture in place. Rows are independent in all
// of them and are processed in parallel; the call returns once every row is
// done.
//
// Copy, CropAndCopy and CropAndCopyRegion blit pixels from another Picture.
// Copy clips silently to both pictures. The crop variants validate the whole
// region up front and fail with ErrOutOfBounds or ErrDimensionMismatch
// without writing anything. CropAndCopy ends each row's columns at
// endSourceRow; CropAndCopyRegion ends them at endSourceCol.
//
// # Thread Safety
//
// A Picture must not be mutated concurrently. Distinct pictures may be
// transformed from different goroutines.
package picture
