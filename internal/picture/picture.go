package picture

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Picture is a mutable RGB raster addressed by (row, col).
//
// The backing store is an *image.NRGBA whose alpha channel is kept at 255.
// Pixel (row, col) occupies Pix[row*Stride+col*4 : row*Stride+col*4+3].
type Picture struct {
	img  *image.NRGBA
	name string
}

// New creates a white picture of the given size.
//
// Non-positive dimensions produce an empty picture.
func New(width, height int) *Picture {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Picture{img: imaging.New(width, height, color.White)}
}

// FromImage copies img into a new Picture. The picture does not share
// storage with img. Transparent source pixels keep their color channels;
// alpha is forced to opaque.
func FromImage(img image.Image) *Picture {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 255
	}
	return &Picture{img: dst}
}

// Clone returns an independent copy of p, including its name.
func (p *Picture) Clone() *Picture {
	return &Picture{img: imaging.Clone(p.img), name: p.name}
}

// Width returns the number of columns.
func (p *Picture) Width() int { return p.img.Rect.Dx() }

// Height returns the number of rows.
func (p *Picture) Height() int { return p.img.Rect.Dy() }

// Name returns the file name the picture was loaded from, if any.
func (p *Picture) Name() string { return p.name }

// SetName records the file name associated with the picture.
func (p *Picture) SetName(name string) { p.name = name }

// Image exposes the backing raster. Writes to it are visible in p.
func (p *Picture) Image() *image.NRGBA { return p.img }

func (p *Picture) String() string {
	return fmt.Sprintf("Picture, filename %s height %d width %d", p.name, p.Height(), p.Width())
}

// Contains reports whether (row, col) addresses a pixel of p.
func (p *Picture) Contains(row, col int) bool {
	return row >= 0 && row < p.Height() && col >= 0 && col < p.Width()
}

// Pixel returns a view of the pixel at (row, col).
func (p *Picture) Pixel(row, col int) (Pixel, error) {
	if !p.Contains(row, col) {
		return Pixel{}, outOfBounds(row, col, p.Height(), p.Width())
	}
	return Pixel{pic: p, row: row, col: col}, nil
}

// Pixels returns the full grid of pixel views, one slice per row.
func (p *Picture) Pixels() [][]Pixel {
	h, w := p.Height(), p.Width()
	grid := make([][]Pixel, h)
	for row := 0; row < h; row++ {
		grid[row] = make([]Pixel, w)
		for col := 0; col < w; col++ {
			grid[row][col] = Pixel{pic: p, row: row, col: col}
		}
	}
	return grid
}

// ColorAt returns the color at (row, col).
func (p *Picture) ColorAt(row, col int) (Color, error) {
	if !p.Contains(row, col) {
		return Color{}, outOfBounds(row, col, p.Height(), p.Width())
	}
	return p.at(row, col), nil
}

// SetColorAt sets the color at (row, col).
func (p *Picture) SetColorAt(row, col int, c Color) error {
	if !p.Contains(row, col) {
		return outOfBounds(row, col, p.Height(), p.Width())
	}
	p.set(row, col, c)
	return nil
}

// offset returns the index of the red channel of (row, col). The caller
// guarantees the coordinate is in range.
func (p *Picture) offset(row, col int) int {
	return row*p.img.Stride + col*4
}

func (p *Picture) at(row, col int) Color {
	i := p.offset(row, col)
	s := p.img.Pix[i : i+3 : i+3]
	return Color{R: s[0], G: s[1], B: s[2]}
}

func (p *Picture) set(row, col int, c Color) {
	i := p.offset(row, col)
	s := p.img.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = c.R, c.G, c.B
}

// row returns the channel bytes of one scanline.
func (p *Picture) row(row int) []uint8 {
	i := row * p.img.Stride
	return p.img.Pix[i : i+p.Width()*4]
}
