// Package imaging is the file-facing side of picturelab: it loads pictures
// from disk, saves them back, and renders them for transport.
//
// # Formats
//
// Load accepts PNG, JPEG, GIF, BMP, TIFF and WebP. Save picks the encoder
// from the file extension and supports PNG, JPEG and BMP.
//
// # Coordinate System
//
// Functions taking pixel positions use the picture package's (row, col)
// convention: row 0 is the top scanline, col 0 the leftmost column.
//
// # Thread Safety
//
// FileStore is safe for concurrent use. Pictures returned by Load are
// independent copies and belong to the caller.
//
// # Error Handling
//
// Load failures wrap ErrDecode, Save failures wrap ErrIO. Both keep the
// underlying error in the chain so callers can also match on fs errors such
// as os.ErrNotExist.
package imaging
