package picture

// Pixel is a view of one location in a Picture. The zero value is not usable;
// obtain pixels from Picture.Pixel or Picture.Pixels.
type Pixel struct {
	pic      *Picture
	row, col int
}

// Row returns the pixel's row.
func (px Pixel) Row() int { return px.row }

// Col returns the pixel's column.
func (px Pixel) Col() int { return px.col }

func (px Pixel) channels() []uint8 {
	i := px.pic.offset(px.row, px.col)
	return px.pic.img.Pix[i : i+3 : i+3]
}

func (px Pixel) Red() int   { return int(px.channels()[0]) }
func (px Pixel) Green() int { return int(px.channels()[1]) }
func (px Pixel) Blue() int  { return int(px.channels()[2]) }

// SetRed sets the red channel, clamped to [0,255].
func (px Pixel) SetRed(v int) { px.channels()[0] = clampChannel(v) }

// SetGreen sets the green channel, clamped to [0,255].
func (px Pixel) SetGreen(v int) { px.channels()[1] = clampChannel(v) }

// SetBlue sets the blue channel, clamped to [0,255].
func (px Pixel) SetBlue(v int) { px.channels()[2] = clampChannel(v) }

// Color returns the pixel's current color.
func (px Pixel) Color() Color { return px.pic.at(px.row, px.col) }

// SetColor overwrites all three channels.
func (px Pixel) SetColor(c Color) { px.pic.set(px.row, px.col, c) }

// Distance returns the RGB distance between this pixel's color and c.
func (px Pixel) Distance(c Color) float64 { return px.Color().Distance(c) }
