package ops

import (
	"math/rand/v2"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// newRand returns a random source private to one operation call.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// GaussianNoise mixes standard normal noise into every chromatic channel.
// Alpha selects the mix: 0 keeps the image, 1 replaces it with noise.
func GaussianNoise[C color.Color[C]](b *pixel.Buffer[C], alpha float32) *pixel.Buffer[C] {
	rng := newRand()
	return b.MapColors(func(c C) C {
		return c.MapChannels(func(v float32) float32 {
			noise := float32(rng.NormFloat64())
			return noise*alpha + (1.0-alpha)*v
		})
	})
}

// AddGaussianNoise is GaussianNoise mutating the buffer.
func AddGaussianNoise[C color.Color[C]](b *pixel.Buffer[C], alpha float32) {
	rng := newRand()
	b.Mod(func(c C) C {
		return c.MapChannels(func(v float32) float32 {
			noise := float32(rng.NormFloat64())
			return noise*alpha + (1.0-alpha)*v
		})
	})
}

// RandomNoise mixes uniform noise from [-1, 1] into every chromatic
// channel, weighted by alpha.
func RandomNoise[C color.Color[C]](b *pixel.Buffer[C], alpha float32) *pixel.Buffer[C] {
	rng := newRand()
	return b.MapColors(func(c C) C {
		return c.MapChannels(func(v float32) float32 {
			noise := rng.Float32()*2.0 - 1.0
			return noise*alpha + (1.0-alpha)*v
		})
	})
}

// AddRandomNoise is RandomNoise mutating the buffer.
func AddRandomNoise[C color.Color[C]](b *pixel.Buffer[C], alpha float32) {
	rng := newRand()
	b.Mod(func(c C) C {
		return c.MapChannels(func(v float32) float32 {
			noise := rng.Float32()*2.0 - 1.0
			return noise*alpha + (1.0-alpha)*v
		})
	})
}

func rgbNoisePixel(c color.RGB, threshold float32, rng *rand.Rand) color.RGB {
	if rng.Float32() >= threshold {
		return c
	}
	switch rng.IntN(3) {
	case 0:
		return c.WithRed(1.0)
	case 1:
		return c.WithGreen(1.0)
	default:
		return c.WithBlue(1.0)
	}
}

// RGBNoise saturates one random channel of a pixel with probability
// threshold.
func RGBNoise(b *pixel.Buffer[color.RGB], threshold float32) *pixel.Buffer[color.RGB] {
	rng := newRand()
	return b.MapColors(func(c color.RGB) color.RGB {
		return rgbNoisePixel(c, threshold, rng)
	})
}

// AddRGBNoise is RGBNoise mutating the buffer.
func AddRGBNoise(b *pixel.Buffer[color.RGB], threshold float32) {
	rng := newRand()
	b.Mod(func(c color.RGB) color.RGB {
		return rgbNoisePixel(c, threshold, rng)
	})
}

func saltPepperPixel(c color.RGB, threshold float32, rng *rand.Rand) color.RGB {
	v := rng.Float32()
	switch {
	case v < threshold:
		return color.Black
	case v > 1.0-threshold:
		return color.White
	default:
		return c
	}
}

// SaltPepperNoise replaces pixels with black or white, each with
// probability threshold.
func SaltPepperNoise(b *pixel.Buffer[color.RGB], threshold float32) *pixel.Buffer[color.RGB] {
	rng := newRand()
	return b.MapColors(func(c color.RGB) color.RGB {
		return saltPepperPixel(c, threshold, rng)
	})
}

// AddSaltPepperNoise is SaltPepperNoise mutating the buffer.
func AddSaltPepperNoise(b *pixel.Buffer[color.RGB], threshold float32) {
	rng := newRand()
	b.Mod(func(c color.RGB) color.RGB {
		return saltPepperPixel(c, threshold, rng)
	})
}
