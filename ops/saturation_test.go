package ops

import (
	"testing"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

func TestParseSaturationMode(t *testing.T) {
	tests := []struct {
		in   string
		want SaturationMode
		ok   bool
	}{
		{"hsl", SaturationHSL, true},
		{"default", SaturationHSL, true},
		{"hsv", SaturationHSV, true},
		{"lch", SaturationLCh, true},
		{"yuv", 0, false},
	}

	for _, tc := range tests {
		got, err := ParseSaturationMode(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("ParseSaturationMode(%q) err = %v", tc.in, err)
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseSaturationMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestOptimizeSaturationKeepsGrayGray(t *testing.T) {
	in := pixel.Generate(6, 6, func(x, y int) color.RGB {
		v := float32(x+y) / 10
		return color.NewRGB(v, v, v)
	})

	for _, mode := range []SaturationMode{SaturationHSL, SaturationHSV} {
		got := OptimizeSaturation(in, 0.5, mode)
		if !pixel.IsGrayscale(got) {
			t.Errorf("mode %v desaturated input gained color", mode)
		}
	}
}

func TestOptimizeSaturationBoostsDullColors(t *testing.T) {
	dull := color.NewRGB(0.5, 0.4, 0.4)
	in := solid(6, 6, dull)

	got := OptimizeSaturation(in, 0.5, SaturationHSL)

	before := dull.ToHSL().Saturation()
	after := got.At(0, 0).ToHSL().Saturation()
	if after <= before {
		t.Errorf("saturation %v -> %v, want an increase", before, after)
	}
}

func TestOptimizeLightnessZeroFactorIsIdentity(t *testing.T) {
	in := sample3x2()

	got := OptimizeLightness(in, 0)

	expectPixels(t, got, 3, 2, in.Data())
}

func TestOptimizeLightnessBrightensDarkImage(t *testing.T) {
	dark := color.NewRGB(0.2, 0.2, 0.2)

	got := OptimizeLightness(solid(6, 6, dark), 1)

	if v := got.At(0, 0).Red(); v <= 0.2 {
		t.Errorf("lightness %v, want above 0.2", v)
	}
}
