package ops

import (
	"testing"

	"github.com/gopict/pict/color"
)

func TestGaussianBlurSolidColor(t *testing.T) {
	want := color.NewRGB(0.2, 0.4, 0.8)
	in := solid(10, 10, want)

	for radius := 1; radius <= 4; radius++ {
		got := GaussianBlur(in, radius, 0)
		if got.Width() != 10 || got.Height() != 10 {
			t.Fatalf("radius %d: dimensions = %dx%d, want 10x10",
				radius, got.Width(), got.Height())
		}
		expectSolid(t, got, want)
	}
}

func TestGaussianBlurSpreadsSpike(t *testing.T) {
	in := solid(5, 5, color.Black)
	in.Put(2, 2, color.White)

	got := GaussianBlur(in, 1, 0)

	center := got.At(2, 2).Red()
	neighbor := got.At(1, 2).Red()
	corner := got.At(0, 0).Red()

	if center <= neighbor {
		t.Errorf("center %v should stay brighter than neighbor %v", center, neighbor)
	}
	if neighbor <= 0 {
		t.Error("blur did not spread into the neighbor")
	}
	if corner != 0 {
		t.Errorf("corner = %v, want 0 outside the kernel reach", corner)
	}
}

func TestUnsharpSolidColorUnchanged(t *testing.T) {
	want := color.NewRGB(0.3, 0.6, 0.9)

	got := Unsharp(solid(8, 8, want), 2, 3.0, 0)

	expectSolid(t, got, want)
}

func TestUnsharpIncreasesEdgeContrast(t *testing.T) {
	in := solid(8, 4, color.NewRGB(0.25, 0.25, 0.25))
	for y := 0; y < 4; y++ {
		for x := 4; x < 8; x++ {
			in.Put(x, y, color.NewRGB(0.75, 0.75, 0.75))
		}
	}

	got := Unsharp(in, 1, 2.0, 0)

	if v := got.At(3, 1).Red(); v >= 0.25 {
		t.Errorf("dark side of the edge = %v, want below 0.25", v)
	}
	if v := got.At(4, 1).Red(); v <= 0.75 {
		t.Errorf("bright side of the edge = %v, want above 0.75", v)
	}
}

func TestDespeckleRemovesIsolatedDarkPixel(t *testing.T) {
	in := solid(5, 5, color.White)
	in.Put(2, 2, color.Black)

	got := Despeckle(in, 0.5, 1)

	if c := got.At(2, 2); !c.Equal(color.White) {
		t.Errorf("speckle = %v, want %v", c, color.White)
	}
	if c := got.At(0, 0); !c.Equal(color.White) {
		t.Errorf("background = %v, want %v", c, color.White)
	}
}

func TestDespeckleKeepsDarkRegions(t *testing.T) {
	in := solid(5, 5, color.White)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			in.Put(x, y, color.Black)
		}
	}

	got := Despeckle(in, 0.5, 1)

	if c := got.At(2, 2); !c.Equal(color.Black) {
		t.Errorf("region center = %v, want %v", c, color.Black)
	}
}
