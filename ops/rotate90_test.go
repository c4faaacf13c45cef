package ops

import (
	"testing"

	"github.com/gopict/pict/color"
)

func TestRotate90(t *testing.T) {
	got := Rotate90(sample3x2())

	expectPixels(t, got, 2, 3, []color.RGB{
		color.Red, color.White,
		color.Green, color.Black,
		color.Blue, color.Yellow,
	})
}

func TestRotate180(t *testing.T) {
	got := Rotate180(sample3x2())

	expectPixels(t, got, 3, 2, []color.RGB{
		color.Blue, color.Green, color.Red,
		color.Yellow, color.Black, color.White,
	})
}

func TestRotate270(t *testing.T) {
	got := Rotate270(sample3x2())

	expectPixels(t, got, 2, 3, []color.RGB{
		color.Yellow, color.Blue,
		color.Black, color.Green,
		color.White, color.Red,
	})
}

func TestRotate90FourTimesIsIdentity(t *testing.T) {
	in := sample3x2()

	got := Rotate90(Rotate90(Rotate90(Rotate90(in))))

	expectPixels(t, got, 3, 2, in.Data())
}

func TestRotate180TwiceIsIdentity(t *testing.T) {
	in := sample3x2()

	got := Rotate180(Rotate180(in))

	expectPixels(t, got, 3, 2, in.Data())
}

func TestRotate90ThenRotate270IsIdentity(t *testing.T) {
	in := sample3x2()

	got := Rotate270(Rotate90(in))

	expectPixels(t, got, 3, 2, in.Data())
}

func TestFlipHorizontal(t *testing.T) {
	got := FlipHorizontal(sample3x2())

	expectPixels(t, got, 3, 2, []color.RGB{
		color.Yellow, color.Black, color.White,
		color.Blue, color.Green, color.Red,
	})
}

func TestFlipVertical(t *testing.T) {
	got := FlipVertical(sample3x2())

	expectPixels(t, got, 3, 2, []color.RGB{
		color.Red, color.Green, color.Blue,
		color.White, color.Black, color.Yellow,
	})
}

func TestFlipTwiceIsIdentity(t *testing.T) {
	in := sample3x2()

	expectPixels(t, FlipHorizontal(FlipHorizontal(in)), 3, 2, in.Data())
	expectPixels(t, FlipVertical(FlipVertical(in)), 3, 2, in.Data())
}
