package ops

import (
	"testing"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

func TestCropClampsToBuffer(t *testing.T) {
	in := solid(100, 200, color.Red)

	got := Crop(in, 50, 50, 100, 200)

	if got.Width() != 50 || got.Height() != 150 {
		t.Fatalf("dimensions = %dx%d, want 50x150", got.Width(), got.Height())
	}
	expectSolid(t, got, color.Red)
}

func TestCropExtractsRegion(t *testing.T) {
	got := Crop(sample3x2(), 1, 0, 2, 1)

	expectPixels(t, got, 2, 1, []color.RGB{color.Black, color.Yellow})
}

func TestCropNegativeOffsetsClampToZero(t *testing.T) {
	got := Crop(sample3x2(), -5, -5, 1, 1)

	expectPixels(t, got, 1, 1, []color.RGB{color.White})
}

func TestCropOutsideYieldsEmpty(t *testing.T) {
	got := Crop(sample3x2(), 10, 10, 5, 5)

	if got.Width() != 0 || got.Height() != 0 {
		t.Fatalf("dimensions = %dx%d, want 0x0", got.Width(), got.Height())
	}
}

func TestCropEmptyBufferClones(t *testing.T) {
	in := pixel.New[color.RGB](0, 0)

	got := Crop(in, 1, 1, 5, 5)

	if got.Width() != 0 || got.Height() != 0 {
		t.Fatalf("dimensions = %dx%d, want 0x0", got.Width(), got.Height())
	}
}
