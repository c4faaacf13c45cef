package ops

import (
	"testing"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

func TestRotateFullTurnClones(t *testing.T) {
	in := sample3x2()

	for _, degrees := range []float32{0, 360, 720, -360} {
		got := Rotate(in, degrees, color.Black, FilterNearest)
		expectPixels(t, got, 3, 2, in.Data())
	}

	got := Rotate(in, 0, color.Black, FilterNearest)
	got.Put(0, 0, color.Blue)
	if !in.At(0, 0).Equal(color.White) {
		t.Error("rotation result shares data with the input")
	}
}

func TestRotateQuarterTurnMatchesRotate90(t *testing.T) {
	in := pixel.Generate(3, 3, func(x, y int) color.RGB {
		return color.NewRGB(float32(x)/2, float32(y)/2, 0)
	})

	got := Rotate(in, 90, color.Black, FilterNearest)
	want := Rotate90(in)

	expectPixels(t, got, 3, 3, want.Data())
}

func TestRotateFillsBackground(t *testing.T) {
	in := solid(4, 4, color.Red)

	got := Rotate(in, 45, color.Blue, FilterNearest)

	if c := got.At(1, 1); !c.Equal(color.Red) {
		t.Errorf("interior pixel = %v, want %v", c, color.Red)
	}
	if c := got.At(0, 0); !c.Equal(color.Blue) {
		t.Errorf("corner pixel = %v, want background %v", c, color.Blue)
	}
}

func TestRotateKeepsDimensions(t *testing.T) {
	in := solid(7, 3, color.Green)

	for _, filter := range []FilterMode{FilterNearest, FilterBilinear, FilterBicubic, FilterLanczos3} {
		got := Rotate(in, 30, color.Black, filter)
		if got.Width() != 7 || got.Height() != 3 {
			t.Errorf("filter %v: dimensions = %dx%d, want 7x3",
				filter, got.Width(), got.Height())
		}
	}
}
