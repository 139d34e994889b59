package picture

import "fmt"

// Copy writes from into p with from's top-left pixel at (startRow, startCol).
//
// The copy is clipped: it stops at whichever of the two pictures ends first,
// so a start position past p's bounds writes nothing and is not an error.
// Negative start positions are rejected with ErrOutOfBounds.
func (p *Picture) Copy(from *Picture, startRow, startCol int) error {
	if startRow < 0 || startCol < 0 {
		return fmt.Errorf("copy to (%d,%d): %w", startRow, startCol,
			outOfBounds(startRow, startCol, p.Height(), p.Width()))
	}

	rows := min(from.Height(), p.Height()-startRow)
	cols := min(from.Width(), p.Width()-startCol)
	if rows <= 0 || cols <= 0 {
		return nil
	}

	if from == p {
		from = p.Clone()
	}
	for r := 0; r < rows; r++ {
		src := from.row(r)[:cols*4]
		dst := p.row(startRow + r)[startCol*4:]
		copy(dst, src)
	}
	return nil
}

// CropAndCopy copies source rows [startSourceRow,endSourceRow] into p with
// the first copied pixel at (startDestRow, startDestCol). Within each row it
// copies columns startSourceCol through endSourceRow inclusive; endSourceCol
// is accepted but does not bound the copy. Use CropAndCopyRegion to copy a
// rectangle bounded by both column arguments.
//
// Validation and error reporting are those of CropAndCopyRegion applied to
// the columns actually copied.
//
// TODO: confirm whether the column range should end at endSourceCol and, if
// so, fold this into CropAndCopyRegion.
func (p *Picture) CropAndCopy(source *Picture, startSourceRow, endSourceRow,
	startSourceCol, endSourceCol, startDestRow, startDestCol int) error {
	return p.CropAndCopyRegion(source, startSourceRow, endSourceRow,
		startSourceCol, endSourceRow, startDestRow, startDestCol)
}

// CropAndCopyRegion copies the inclusive region rows
// [startSourceRow,endSourceRow], columns [startSourceCol,endSourceCol] of
// source into p with the region's top-left pixel at (startDestRow,
// startDestCol).
//
// The region must lie within source (ErrOutOfBounds), the destination origin
// must be non-negative (ErrOutOfBounds) and the region must fit in p from that
// origin (ErrDimensionMismatch). Nothing is written unless all checks pass.
// An inverted range selects no pixels and copies nothing.
func (p *Picture) CropAndCopyRegion(source *Picture, startSourceRow, endSourceRow,
	startSourceCol, endSourceCol, startDestRow, startDestCol int) error {
	if startSourceRow > endSourceRow || startSourceCol > endSourceCol {
		return nil
	}
	if !source.Contains(startSourceRow, startSourceCol) {
		return fmt.Errorf("crop source start: %w",
			outOfBounds(startSourceRow, startSourceCol, source.Height(), source.Width()))
	}
	if !source.Contains(endSourceRow, endSourceCol) {
		return fmt.Errorf("crop source end: %w",
			outOfBounds(endSourceRow, endSourceCol, source.Height(), source.Width()))
	}
	if startDestRow < 0 || startDestCol < 0 {
		return fmt.Errorf("crop destination: %w",
			outOfBounds(startDestRow, startDestCol, p.Height(), p.Width()))
	}

	rows := endSourceRow - startSourceRow + 1
	cols := endSourceCol - startSourceCol + 1
	if startDestRow+rows > p.Height() || startDestCol+cols > p.Width() {
		return fmt.Errorf("%w: %dx%d region at (%d,%d) in %dx%d picture", ErrDimensionMismatch,
			rows, cols, startDestRow, startDestCol, p.Height(), p.Width())
	}

	// source and p may be the same picture with overlapping regions; go
	// through a scratch copy so every read sees the original pixels.
	if source == p {
		source = p.Clone()
	}
	for r := 0; r < rows; r++ {
		src := source.row(startSourceRow + r)[startSourceCol*4 : (startSourceCol+cols)*4]
		dst := p.row(startDestRow + r)[startDestCol*4:]
		copy(dst, src)
	}
	return nil
}
