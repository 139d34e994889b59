package picture

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	red   = Color{255, 0, 0}
	green = Color{0, 255, 0}
	blue  = Color{0, 0, 255}
)

func TestZeroBlue(t *testing.T) {
	p := fromGrid(t, [][]Color{
		{{10, 20, 30}, {255, 255, 255}},
		{{0, 0, 0}, {1, 2, 3}},
	})
	p.ZeroBlue()

	want := [][]Color{
		{{10, 20, 0}, {255, 255, 0}},
		{{0, 0, 0}, {1, 2, 0}},
	}
	if diff := cmp.Diff(want, grid(p)); diff != "" {
		t.Errorf("ZeroBlue mismatch (-want +got):\n%s", diff)
	}
}

func TestKeepOnlyBlue(t *testing.T) {
	p := fromGrid(t, [][]Color{
		{{10, 20, 30}, {255, 255, 255}},
	})
	p.KeepOnlyBlue()

	want := [][]Color{{{0, 0, 30}, {0, 0, 255}}}
	if diff := cmp.Diff(want, grid(p)); diff != "" {
		t.Errorf("KeepOnlyBlue mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroBlueThenKeepOnlyBlue_IsBlack(t *testing.T) {
	p := createPatternPicture(17, 9)
	p.ZeroBlue()
	p.KeepOnlyBlue()

	for r := 0; r < p.Height(); r++ {
		for c := 0; c < p.Width(); c++ {
			if got := p.at(r, c); got != Black {
				t.Fatalf("pixel (%d,%d): got %v, want black", r, c, got)
			}
		}
	}
}

func TestNegate(t *testing.T) {
	p := fromGrid(t, [][]Color{{{0, 128, 255}, {10, 20, 30}}})
	p.Negate()

	want := [][]Color{{{255, 127, 0}, {245, 235, 225}}}
	if diff := cmp.Diff(want, grid(p)); diff != "" {
		t.Errorf("Negate mismatch (-want +got):\n%s", diff)
	}
}

func TestNegate_Involution(t *testing.T) {
	p := createPatternPicture(31, 23)
	orig := grid(p)

	p.Negate()
	p.Negate()

	if diff := cmp.Diff(orig, grid(p)); diff != "" {
		t.Errorf("negate twice changed the picture (-orig +got):\n%s", diff)
	}
}

func TestGrayscale(t *testing.T) {
	p := fromGrid(t, [][]Color{
		{red, green},
		{blue, White},
	})
	p.Grayscale()

	want := [][]Color{
		{{85, 85, 85}, {85, 85, 85}},
		{{85, 85, 85}, {255, 255, 255}},
	}
	if diff := cmp.Diff(want, grid(p)); diff != "" {
		t.Errorf("Grayscale mismatch (-want +got):\n%s", diff)
	}
}

func TestGrayscale_Truncates(t *testing.T) {
	p := fromGrid(t, [][]Color{{{1, 1, 0}, {2, 2, 1}}})
	p.Grayscale()

	want := [][]Color{{{0, 0, 0}, {1, 1, 1}}}
	if diff := cmp.Diff(want, grid(p)); diff != "" {
		t.Errorf("Grayscale mismatch (-want +got):\n%s", diff)
	}
}

func TestGrayscale_Idempotent(t *testing.T) {
	p := createPatternPicture(19, 11)
	p.Grayscale()
	once := grid(p)
	p.Grayscale()

	if diff := cmp.Diff(once, grid(p)); diff != "" {
		t.Errorf("second grayscale changed the picture (-once +twice):\n%s", diff)
	}
}

func TestMirrorVertical(t *testing.T) {
	tests := []struct {
		name string
		in   [][]Color
		want [][]Color
	}{
		{
			"even width",
			[][]Color{{red, green, blue, White}},
			[][]Color{{red, green, green, red}},
		},
		{
			"odd width keeps middle column",
			[][]Color{{red, green, blue, White, Black}},
			[][]Color{{red, green, blue, green, red}},
		},
		{
			"single column",
			[][]Color{{red}, {green}},
			[][]Color{{red}, {green}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fromGrid(t, tt.in)
			p.MirrorVertical()
			if diff := cmp.Diff(tt.want, grid(p)); diff != "" {
				t.Errorf("MirrorVertical mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMirrorVerticalRightToLeft(t *testing.T) {
	p := fromGrid(t, [][]Color{{red, green, blue, White, Black}})
	p.MirrorVerticalRightToLeft()

	want := [][]Color{{Black, White, blue, White, Black}}
	if diff := cmp.Diff(want, grid(p)); diff != "" {
		t.Errorf("MirrorVerticalRightToLeft mismatch (-want +got):\n%s", diff)
	}
}

func TestMirrorHorizontalTopToBottom(t *testing.T) {
	p := fromGrid(t, [][]Color{
		{red, red},
		{green, green},
		{blue, blue},
		{White, White},
		{Black, Black},
	})
	p.MirrorHorizontalTopToBottom()

	want := [][]Color{
		{red, red},
		{green, green},
		{blue, blue},
		{green, green},
		{red, red},
	}
	if diff := cmp.Diff(want, grid(p)); diff != "" {
		t.Errorf("MirrorHorizontalTopToBottom mismatch (-want +got):\n%s", diff)
	}
}

func TestMirrorHorizontalBottomToTop_MatchesTopToBottom(t *testing.T) {
	a := createPatternPicture(13, 21)
	b := a.Clone()

	a.MirrorHorizontalTopToBottom()
	b.MirrorHorizontalBottomToTop()

	if diff := cmp.Diff(grid(a), grid(b)); diff != "" {
		t.Errorf("bottom-to-top differs from top-to-bottom (-a +b):\n%s", diff)
	}
}

// The mirrors overwrite one half, so a second application finds an already
// symmetric picture and leaves it alone.
func TestMirrors_SecondApplicationIsNoOp(t *testing.T) {
	mirrors := map[string]func(*Picture){
		"vertical":               (*Picture).MirrorVertical,
		"vertical right to left": (*Picture).MirrorVerticalRightToLeft,
		"horizontal":             (*Picture).MirrorHorizontalTopToBottom,
	}

	for name, mirror := range mirrors {
		t.Run(name, func(t *testing.T) {
			p := createPatternPicture(15, 12)
			mirror(p)
			once := grid(p)
			mirror(p)
			if diff := cmp.Diff(once, grid(p)); diff != "" {
				t.Errorf("second mirror changed the picture (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestMirrors_SymmetricInputUnchanged(t *testing.T) {
	p := fromGrid(t, [][]Color{
		{red, green, red},
		{blue, White, blue},
		{red, green, red},
	})
	orig := grid(p)

	p.MirrorVertical()
	p.MirrorHorizontalTopToBottom()

	if diff := cmp.Diff(orig, grid(p)); diff != "" {
		t.Errorf("symmetric picture changed (-orig +got):\n%s", diff)
	}
}

func TestMirrorRegion(t *testing.T) {
	p := fromGrid(t, [][]Color{
		{red, green, blue, Black, Black, Black},
		{red, green, blue, Black, Black, Black},
	})

	// Columns 1..2 reflect around column 3 onto columns 5..4.
	if err := p.MirrorRegion(0, 1, 1, 3); err != nil {
		t.Fatalf("MirrorRegion failed: %v", err)
	}

	want := [][]Color{
		{red, green, blue, Black, blue, green},
		{red, green, blue, Black, Black, Black},
	}
	if diff := cmp.Diff(want, grid(p)); diff != "" {
		t.Errorf("MirrorRegion mismatch (-want +got):\n%s", diff)
	}
}

func TestMirrorRegion_OutOfBounds(t *testing.T) {
	tests := []struct {
		name                                 string
		startRow, endRow, startCol, mirrorCol int
	}{
		{"negative row", -1, 2, 0, 2},
		{"rows past bottom", 0, 5, 0, 2},
		{"negative col", 0, 2, -1, 2},
		{"reflection past right edge", 0, 2, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createPatternPicture(6, 4)
			orig := grid(p)
			err := p.MirrorRegion(tt.startRow, tt.endRow, tt.startCol, tt.mirrorCol)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("got %v, want ErrOutOfBounds", err)
			}
			if diff := cmp.Diff(orig, grid(p)); diff != "" {
				t.Errorf("failed mirror wrote pixels (-orig +got):\n%s", diff)
			}
		})
	}
}

func TestMirrorTemple(t *testing.T) {
	p := createPatternPicture(640, 100)
	if err := p.MirrorTemple(); err != nil {
		t.Fatalf("MirrorTemple failed: %v", err)
	}

	for _, tc := range []struct{ row, col int }{{27, 13}, {96, 275}, {50, 100}} {
		src := p.at(tc.row, tc.col)
		dst := p.at(tc.row, 2*276-tc.col)
		if src != dst {
			t.Errorf("(%d,%d) not mirrored: %v vs %v", tc.row, tc.col, src, dst)
		}
	}

	// Outside the temple rows nothing moves.
	ref := createPatternPicture(640, 100)
	if p.at(26, 539) != ref.at(26, 539) || p.at(97, 539) != ref.at(97, 539) {
		t.Error("MirrorTemple wrote outside rows 27..96")
	}
}

func TestMirrorTemple_TooSmall(t *testing.T) {
	p := createPatternPicture(100, 100)
	if err := p.MirrorTemple(); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("got %v, want ErrOutOfBounds", err)
	}
}

func TestEdgeDetection(t *testing.T) {
	p := fromGrid(t, [][]Color{{Black, White}})
	p.EdgeDetection(10)

	want := [][]Color{{Black, White}}
	if diff := cmp.Diff(want, grid(p)); diff != "" {
		t.Errorf("EdgeDetection mismatch (-want +got):\n%s", diff)
	}
}

func TestEdgeDetection_Threshold(t *testing.T) {
	// Neighbors exactly 10 apart are not edges; strictly greater is.
	base := Color{100, 100, 100}
	exact := Color{106, 108, 100}
	beyond := Color{106, 109, 100}

	tests := []struct {
		name     string
		right    Color
		edgeDist int
		want     Color
	}{
		{"equal distance", exact, 10, White},
		{"larger distance", beyond, 10, Black},
		{"identical colors", base, 0, White},
		{"negative threshold", base, -1, Black},
		{"unreachable threshold", White, 500, White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fromGrid(t, [][]Color{{base, tt.right}})
			p.EdgeDetection(tt.edgeDist)
			if got := p.at(0, 0); got != tt.want {
				t.Errorf("left pixel: got %v, want %v", got, tt.want)
			}
			if got := p.at(0, 1); got != tt.right {
				t.Errorf("last column changed: got %v, want %v", got, tt.right)
			}
		})
	}
}

func TestEdgeDetection_ComparesOriginalNeighbor(t *testing.T) {
	// If (0,1) were rewritten before (0,0) read it, (0,0) would compare
	// against black or white instead of red.
	p := fromGrid(t, [][]Color{{red, red, blue}})
	p.EdgeDetection(10)

	want := [][]Color{{White, Black, blue}}
	if diff := cmp.Diff(want, grid(p)); diff != "" {
		t.Errorf("EdgeDetection mismatch (-want +got):\n%s", diff)
	}
}

func TestEdgeDetection_LastColumnUntouched(t *testing.T) {
	p := createPatternPicture(9, 40)
	ref := grid(p)
	p.EdgeDetection(15)

	for r := 0; r < p.Height(); r++ {
		if got := p.at(r, 8); got != ref[r][8] {
			t.Errorf("row %d last column: got %v, want %v", r, got, ref[r][8])
		}
		for c := 0; c < 8; c++ {
			if got := p.at(r, c); got != Black && got != White {
				t.Fatalf("pixel (%d,%d): got %v, want black or white", r, c, got)
			}
		}
	}
}

// Large enough that parallel.Line splits rows across workers.
func TestTransforms_LargePictureMatchesPerPixel(t *testing.T) {
	p := createPatternPicture(64, 512)
	ref := grid(p)
	p.Negate()

	for r := range ref {
		for c, col := range ref[r] {
			want := Color{255 - col.R, 255 - col.G, 255 - col.B}
			if got := p.at(r, c); got != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", r, c, got, want)
			}
		}
	}
}
