package picture

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"
)

// forEachRow runs fn for every row index, spreading rows over GOMAXPROCS
// workers. It returns once all rows are done.
func (p *Picture) forEachRow(fn func(row int)) {
	parallel.Line(p.Height(), func(start, end int) {
		for row := start; row < end; row++ {
			fn(row)
		}
	})
}

// forEachRange runs fn over the channel bytes of each row.
func (p *Picture) forEachRange(fn func(s []uint8)) {
	p.forEachRow(func(row int) {
		fn(p.row(row))
	})
}

// ZeroBlue sets the blue channel of every pixel to 0.
func (p *Picture) ZeroBlue() {
	p.forEachRange(func(s []uint8) {
		for i := 0; i < len(s); i += 4 {
			s[i+2] = 0
		}
	})
}

// KeepOnlyBlue sets the red and green channels of every pixel to 0.
func (p *Picture) KeepOnlyBlue() {
	p.forEachRange(func(s []uint8) {
		for i := 0; i < len(s); i += 4 {
			s[i] = 0
			s[i+1] = 0
		}
	})
}

// Negate replaces every channel c with 255-c.
func (p *Picture) Negate() {
	p.forEachRange(func(s []uint8) {
		for i := 0; i < len(s); i += 4 {
			s[i] = 255 - s[i]
			s[i+1] = 255 - s[i+1]
			s[i+2] = 255 - s[i+2]
		}
	})
}

// Grayscale sets every channel to the truncated mean of the pixel's three
// channels.
func (p *Picture) Grayscale() {
	p.forEachRange(func(s []uint8) {
		for i := 0; i < len(s); i += 4 {
			avg := uint8((int(s[i]) + int(s[i+1]) + int(s[i+2])) / 3)
			s[i], s[i+1], s[i+2] = avg, avg, avg
		}
	})
}

// MirrorVertical copies the left half of each row onto the right half,
// reflected around the vertical center line. For odd widths the middle
// column is left as is.
func (p *Picture) MirrorVertical() {
	w := p.Width()
	p.forEachRow(func(row int) {
		for col := 0; col < w/2; col++ {
			p.set(row, w-1-col, p.at(row, col))
		}
	})
}

// MirrorVerticalRightToLeft copies the right half of each row onto the left
// half, reflected around the vertical center line.
//
// Earlier versions of this operation assigned each left pixel its own color
// and so left the picture unchanged; this one performs the mirror the name
// describes.
func (p *Picture) MirrorVerticalRightToLeft() {
	w := p.Width()
	p.forEachRow(func(row int) {
		for col := 0; col < w/2; col++ {
			p.set(row, col, p.at(row, w-1-col))
		}
	})
}

// MirrorHorizontalTopToBottom copies the top half onto the bottom half,
// reflected around the horizontal center line.
func (p *Picture) MirrorHorizontalTopToBottom() {
	h := p.Height()
	parallel.Line(h/2, func(start, end int) {
		for row := start; row < end; row++ {
			copy(p.row(h-1-row), p.row(row))
		}
	})
}

// MirrorHorizontalBottomToTop currently behaves exactly like
// MirrorHorizontalTopToBottom: the top half is copied onto the bottom half.
//
// TODO: confirm whether this should copy the bottom half upward instead.
func (p *Picture) MirrorHorizontalBottomToTop() {
	p.MirrorHorizontalTopToBottom()
}

// Temple mirror geometry for the sample temple photograph.
const (
	templeStartRow  = 27
	templeEndRow    = 97
	templeStartCol  = 13
	templeMirrorCol = 276
)

// MirrorTemple repairs the pediment of the sample temple photograph by
// mirroring its left part around column 276.
func (p *Picture) MirrorTemple() error {
	return p.MirrorRegion(templeStartRow, templeEndRow, templeStartCol, templeMirrorCol)
}

// MirrorRegion reflects rows [startRow,endRow), columns [startCol,mirrorCol)
// around mirrorCol: pixel (row, col) is copied to (row, 2*mirrorCol-col).
// Column mirrorCol itself is not written. The full target area is checked
// before anything is written.
func (p *Picture) MirrorRegion(startRow, endRow, startCol, mirrorCol int) error {
	if startRow >= endRow || startCol >= mirrorCol {
		return nil
	}
	if startRow < 0 || startCol < 0 || endRow > p.Height() {
		return fmt.Errorf("mirror rows [%d,%d) cols [%d,%d): %w",
			startRow, endRow, startCol, mirrorCol, outOfBounds(startRow, startCol, p.Height(), p.Width()))
	}
	if far := 2*mirrorCol - startCol; far >= p.Width() {
		return fmt.Errorf("mirror around column %d: %w", mirrorCol, outOfBounds(startRow, far, p.Height(), p.Width()))
	}

	parallel.Line(endRow-startRow, func(start, end int) {
		for row := startRow + start; row < startRow+end; row++ {
			for col := startCol; col < mirrorCol; col++ {
				p.set(row, 2*mirrorCol-col, p.at(row, col))
			}
		}
	})
	return nil
}

// maxDistance bounds the RGB distance between any two colors (sqrt(3)*255).
const maxDistance = 442

// EdgeDetection marks horizontal color changes. Each pixel that has a right
// neighbor becomes black when its distance to that neighbor exceeds edgeDist
// and white otherwise. The last column of every row keeps its color.
//
// Each comparison uses the neighbor's original color, since a row is
// rewritten left to right.
func (p *Picture) EdgeDetection(edgeDist int) {
	w := p.Width()
	isEdge := func(a, b Color) bool {
		switch {
		case edgeDist < 0:
			return true
		case edgeDist >= maxDistance:
			return false
		}
		return a.distanceSq(b) > edgeDist*edgeDist
	}

	p.forEachRow(func(row int) {
		for col := 0; col < w-1; col++ {
			if isEdge(p.at(row, col), p.at(row, col+1)) {
				p.set(row, col, Black)
			} else {
				p.set(row, col, White)
			}
		}
	})
}
