package ops

import (
	"testing"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

func solid(width, height int, c color.RGB) *pixel.Buffer[color.RGB] {
	return pixel.NewWithColor(width, height, c)
}

// sample3x2 is the orientation test image:
//
//	white black  yellow
//	red   green  blue
func sample3x2() *pixel.Buffer[color.RGB] {
	return pixel.FromData(3, 2, []color.RGB{
		color.White, color.Black, color.Yellow,
		color.Red, color.Green, color.Blue,
	})
}

func expectPixels(t *testing.T, b *pixel.Buffer[color.RGB], width, height int, want []color.RGB) {
	t.Helper()

	if b.Width() != width || b.Height() != height {
		t.Fatalf("dimensions = %dx%d, want %dx%d", b.Width(), b.Height(), width, height)
	}
	for i, c := range b.Data() {
		if !c.Equal(want[i]) {
			t.Errorf("pixel (%d,%d) = %v, want %v", i%width, i/width, c, want[i])
		}
	}
}

func expectSolid(t *testing.T, b *pixel.Buffer[color.RGB], want color.RGB) {
	t.Helper()

	for i, c := range b.Data() {
		if !c.Equal(want) {
			t.Fatalf("pixel (%d,%d) = %v, want %v", i%b.Width(), i/b.Width(), c, want)
		}
	}
}
