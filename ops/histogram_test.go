package ops

import (
	"testing"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// twoTone is half dark gray, half light gray.
func twoTone(dark, light float32) *pixel.Buffer[color.RGB] {
	return pixel.Generate(8, 8, func(x, y int) color.RGB {
		if x < 4 {
			return color.NewRGB(dark, dark, dark)
		}
		return color.NewRGB(light, light, light)
	})
}

func TestStretchContrastExpandsRange(t *testing.T) {
	got := StretchContrast(twoTone(0.25, 0.75), 0)

	if v := got.At(0, 0).Red(); v > 0.01 {
		t.Errorf("dark tone = %v, want near 0", v)
	}
	if v := got.At(7, 0).Red(); v < 0.99 {
		t.Errorf("light tone = %v, want near 1", v)
	}
}

func TestStretchContrastFullRangeClones(t *testing.T) {
	in := twoTone(0, 1)

	got := StretchContrast(in, 0)

	expectPixels(t, got, 8, 8, in.Data())
	got.Put(0, 0, color.Red)
	if !in.At(0, 0).Equal(color.Black) {
		t.Error("result shares data with the input")
	}
}

func TestWhiteBalanceRemovesCast(t *testing.T) {
	in := pixel.Generate(8, 8, func(x, y int) color.RGB {
		if x < 4 {
			return color.NewRGB(0.2, 0.3, 0.4)
		}
		return color.NewRGB(0.6, 0.7, 0.8)
	})

	got := WhiteBalance(in, 0)

	low := got.At(0, 0)
	high := got.At(7, 0)
	for ch := 0; ch < 3; ch++ {
		if v := low.Data[ch]; v < -0.03 || v > 0.03 {
			t.Errorf("low channel %d = %v, want near 0", ch, v)
		}
		if v := high.Data[ch]; v < 0.97 || v > 1.03 {
			t.Errorf("high channel %d = %v, want near 1", ch, v)
		}
	}
}

func TestParseEqualizeMode(t *testing.T) {
	tests := []struct {
		in   string
		want EqualizeMode
		ok   bool
	}{
		{"rgb", EqualizeRGB, true},
		{"srgb", EqualizeSRGB, true},
		{"saturation", EqualizeSaturation, true},
		{"lightness", EqualizeLightness, true},
		{"saturation_lightness", EqualizeSaturationLightness, true},
		{"luma", 0, false},
	}

	for _, tc := range tests {
		got, err := ParseEqualizeMode(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("ParseEqualizeMode(%q) err = %v", tc.in, err)
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseEqualizeMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEqualizeRGBTwoTone(t *testing.T) {
	got := Equalize(twoTone(0.25, 0.75), EqualizeRGB)

	// The cumulative distribution puts the dark half at 0.5 and the
	// light half at 1.
	if c := got.At(0, 0); !c.Equal(color.NewRGB(0.5, 0.5, 0.5)) {
		t.Errorf("dark tone = %v, want mid gray", c)
	}
	if c := got.At(7, 0); !c.Equal(color.White) {
		t.Errorf("light tone = %v, want white", c)
	}
}

func TestEqualizeKeepsAlpha(t *testing.T) {
	in := twoTone(0.25, 0.75)
	in.Put(0, 0, in.At(0, 0).WithAlpha(0.5))

	got := Equalize(in, EqualizeRGB)

	if a := got.At(0, 0).Alpha(); a != 0.5 {
		t.Errorf("alpha = %v, want 0.5", a)
	}
	if a := got.At(7, 7).Alpha(); a != 1 {
		t.Errorf("alpha = %v, want 1", a)
	}
}

func TestParseBalanceMode(t *testing.T) {
	tests := []struct {
		in   string
		want BalanceMode
		ok   bool
	}{
		{"rgb", BalanceRGB, true},
		{"srgb", BalanceSRGB, true},
		{"hsv", BalanceHSV, true},
		{"hsl", BalanceHSL, true},
		{"lch", BalanceLCh, true},
		{"cmyk", 0, false},
	}

	for _, tc := range tests {
		got, err := ParseBalanceMode(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("ParseBalanceMode(%q) err = %v", tc.in, err)
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseBalanceMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBalanceChannelsRGBExpandsRange(t *testing.T) {
	got := BalanceChannels(twoTone(0.2, 0.6), BalanceRGB, 0)

	if v := got.At(0, 0).Red(); v < -0.03 || v > 0.03 {
		t.Errorf("dark tone = %v, want near 0", v)
	}
	if v := got.At(7, 0).Red(); v < 0.95 || v > 1.03 {
		t.Errorf("light tone = %v, want near 1", v)
	}
}

func TestBalanceChannelsNarrowRangeUnchanged(t *testing.T) {
	want := color.NewRGB(0.4, 0.4, 0.4)

	got := BalanceChannels(solid(6, 6, want), BalanceRGB, 0)

	expectSolid(t, got, want)
}
