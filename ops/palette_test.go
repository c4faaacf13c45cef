package ops

import (
	"testing"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

func TestApplyPaletteSnapsToNearest(t *testing.T) {
	palette := []color.RGB{color.Black, color.White, color.Red}

	in := pixel.FromData(2, 2, []color.RGB{
		color.NewRGB(0.05, 0.05, 0.05),
		color.NewRGB(0.9, 0.95, 0.9),
		color.NewRGB(0.8, 0.1, 0.05),
		color.Red,
	})

	got := ApplyPalette(in, palette)

	want := []color.RGB{color.Black, color.White, color.Red, color.Red}
	expectPixels(t, got, 2, 2, want)
}

func TestApplyPaletteTakesEntryAlpha(t *testing.T) {
	in := solid(1, 1, color.NewRGBWithAlpha(0.9, 0.9, 0.9, 0.5))

	got := ApplyPalette(in, []color.RGB{color.Black, color.White})

	c := got.At(0, 0)
	if !c.Equal(color.White) {
		t.Errorf("pixel = %v, want opaque white", c)
	}
}

func TestApplyPaletteEmptyPaletteIsIdentity(t *testing.T) {
	in := sample3x2()

	got := ApplyPalette(in, nil)

	expectPixels(t, got, 3, 2, in.Data())
}

func TestApplyPaletteInPlace(t *testing.T) {
	b := solid(2, 2, color.NewRGB(0.1, 0.1, 0.1))

	ApplyPaletteInPlace(b, []color.RGB{color.Black, color.White})

	expectSolid(t, b, color.Black)
}

func TestSymmetricNearestNeighborSolid(t *testing.T) {
	want := color.NewRGB(0.2, 0.4, 0.6)

	for _, withCenter := range []bool{true, false} {
		got := SymmetricNearestNeighbor(solid(6, 6, want), 2, withCenter)
		expectSolid(t, got, want)
	}
}

func TestSymmetricNearestNeighborSmoothsSpeckle(t *testing.T) {
	in := solid(5, 5, color.Black)
	in.Put(2, 2, color.White)

	got := SymmetricNearestNeighbor(in, 1, false)

	if c := got.At(2, 2); !c.Equal(color.Black) {
		t.Errorf("speckle = %v, want %v", c, color.Black)
	}
}

func TestInterlaceShiftsAlternateRows(t *testing.T) {
	in := pixel.Generate(4, 2, func(x, y int) color.RGB {
		return color.NewRGB(float32(x)/3, 0, 0)
	})

	got := Interlace(in, 1)

	// Even rows shift right, odd rows shift left, both edge-clamped.
	wantTop := []float32{0, 0, 1.0 / 3, 2.0 / 3}
	wantBottom := []float32{1.0 / 3, 2.0 / 3, 1, 1}
	for x := 0; x < 4; x++ {
		if v := got.At(x, 0).Red(); v != wantTop[x] {
			t.Errorf("row 0 pixel %d = %v, want %v", x, v, wantTop[x])
		}
		if v := got.At(x, 1).Red(); v != wantBottom[x] {
			t.Errorf("row 1 pixel %d = %v, want %v", x, v, wantBottom[x])
		}
	}
}

func TestInterlaceZeroOffsetIsIdentity(t *testing.T) {
	in := sample3x2()

	got := Interlace(in, 0)

	expectPixels(t, got, 3, 2, in.Data())
}
