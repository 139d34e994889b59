package picture

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fromGrid builds a picture from rows of colors.
func fromGrid(t *testing.T, rows [][]Color) *Picture {
	t.Helper()
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	p := New(w, h)
	for r, line := range rows {
		if len(line) != w {
			t.Fatalf("row %d has %d columns, want %d", r, len(line), w)
		}
		for c, col := range line {
			if err := p.SetColorAt(r, c, col); err != nil {
				t.Fatalf("SetColorAt(%d,%d): %v", r, c, err)
			}
		}
	}
	return p
}

// grid returns the colors of p as rows.
func grid(p *Picture) [][]Color {
	out := make([][]Color, p.Height())
	for r := range out {
		out[r] = make([]Color, p.Width())
		for c := range out[r] {
			out[r][c] = p.at(r, c)
		}
	}
	return out
}

// createPatternPicture fills each pixel with a color derived from its
// position so that every pixel is distinct.
func createPatternPicture(width, height int) *Picture {
	p := New(width, height)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			p.set(r, c, RGB(r*37+c*11, r*5+c*91, (r+1)*(c+3)))
		}
	}
	return p
}

func TestNew(t *testing.T) {
	p := New(3, 2)
	if p.Width() != 3 || p.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", p.Width(), p.Height())
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if got := p.at(r, c); got != White {
				t.Errorf("pixel (%d,%d): got %v, want white", r, c, got)
			}
		}
	}
}

func TestNew_NegativeDimensions(t *testing.T) {
	p := New(-1, -5)
	if p.Width() != 0 || p.Height() != 0 {
		t.Errorf("dimensions: got %dx%d, want 0x0", p.Width(), p.Height())
	}
	// Whole-image operations on an empty picture are no-ops.
	p.Negate()
	p.MirrorVertical()
	p.EdgeDetection(10)
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.Set(1, 0, color.RGBA{10, 20, 30, 255})
	src.Set(3, 1, color.RGBA{200, 100, 50, 255})

	p := FromImage(src)
	if p.Width() != 4 || p.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 4x2", p.Width(), p.Height())
	}
	if got := p.at(0, 1); got != (Color{10, 20, 30}) {
		t.Errorf("(0,1): got %v, want {10 20 30}", got)
	}
	if got := p.at(1, 3); got != (Color{200, 100, 50}) {
		t.Errorf("(1,3): got %v, want {200 100 50}", got)
	}

	// The picture must not alias the source.
	p.Negate()
	r, _, _, _ := src.At(1, 0).RGBA()
	if uint8(r>>8) != 10 {
		t.Error("FromImage shares storage with its source")
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.Set(6, 5, color.NRGBA{1, 2, 3, 255})

	p := FromImage(src)
	if p.Width() != 2 || p.Height() != 1 {
		t.Fatalf("dimensions: got %dx%d, want 2x1", p.Width(), p.Height())
	}
	if got := p.at(0, 1); got != (Color{1, 2, 3}) {
		t.Errorf("(0,1): got %v, want {1 2 3}", got)
	}
}

func TestFromImage_ForcesOpaque(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{90, 80, 70, 0})

	p := FromImage(src)
	if a := p.Image().NRGBAAt(0, 0).A; a != 255 {
		t.Errorf("alpha: got %d, want 255", a)
	}
	if got := p.at(0, 0); got != (Color{90, 80, 70}) {
		t.Errorf("color: got %v, want {90 80 70}", got)
	}
}

func TestClone(t *testing.T) {
	p := createPatternPicture(5, 4)
	p.SetName("beach.jpg")
	c := p.Clone()

	if diff := cmp.Diff(grid(p), grid(c)); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}
	if c.Name() != "beach.jpg" {
		t.Errorf("Name: got %q, want beach.jpg", c.Name())
	}

	c.ZeroBlue()
	if p.at(1, 1) == c.at(1, 1) {
		t.Error("mutating the clone changed the original")
	}
}

func TestString(t *testing.T) {
	p := New(640, 480)
	p.SetName("beach.jpg")
	want := "Picture, filename beach.jpg height 480 width 640"
	if got := p.String(); got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}

func TestPixel_OutOfBounds(t *testing.T) {
	p := New(10, 5)

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row too large", 5, 0},
		{"col too large", 0, 10},
		{"both too large", 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.Pixel(tt.row, tt.col); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Pixel: got %v, want ErrOutOfBounds", err)
			}
			if _, err := p.ColorAt(tt.row, tt.col); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("ColorAt: got %v, want ErrOutOfBounds", err)
			}
			if err := p.SetColorAt(tt.row, tt.col, Black); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("SetColorAt: got %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestPixel_ViewAliasing(t *testing.T) {
	p := New(3, 3)
	a, err := p.Pixel(1, 2)
	if err != nil {
		t.Fatalf("Pixel failed: %v", err)
	}
	b := p.Pixels()[1][2]

	a.SetRed(12)
	a.SetGreen(34)
	a.SetBlue(56)

	if b.Red() != 12 || b.Green() != 34 || b.Blue() != 56 {
		t.Errorf("second view: got (%d,%d,%d), want (12,34,56)", b.Red(), b.Green(), b.Blue())
	}
	if got := p.at(1, 2); got != (Color{12, 34, 56}) {
		t.Errorf("picture: got %v, want {12 34 56}", got)
	}
	if a.Row() != 1 || a.Col() != 2 {
		t.Errorf("position: got (%d,%d), want (1,2)", a.Row(), a.Col())
	}
}

func TestPixel_SettersClamp(t *testing.T) {
	p := New(1, 1)
	px, _ := p.Pixel(0, 0)

	px.SetRed(300)
	px.SetGreen(-20)
	px.SetBlue(255)

	if px.Red() != 255 || px.Green() != 0 || px.Blue() != 255 {
		t.Errorf("got (%d,%d,%d), want (255,0,255)", px.Red(), px.Green(), px.Blue())
	}
}

func TestPixels_Shape(t *testing.T) {
	p := New(4, 3)
	rows := p.Pixels()
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(rows))
	}
	for r, line := range rows {
		if len(line) != 4 {
			t.Fatalf("row %d: got %d columns, want 4", r, len(line))
		}
		for c, px := range line {
			if px.Row() != r || px.Col() != c {
				t.Errorf("pixel [%d][%d] addresses (%d,%d)", r, c, px.Row(), px.Col())
			}
		}
	}
}
