package ops

import (
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// defaultSigma derives the Gaussian sigma from the kernel size so the
// weights taper off near the kernel border.
func defaultSigma(kernelSize int) float32 {
	return float32(kernelSize-1) / 4.0
}

// GaussianBlur blurs the buffer with a Gaussian kernel of the given
// radius. A sigma of zero or less selects the default for the kernel
// size. Radii 1 to 3 use the fixed-size kernels.
func GaussianBlur(b *pixel.Buffer[color.RGB], radius int, sigma float32) *pixel.Buffer[color.RGB] {
	kernelSize := radius*2 + 1
	if sigma <= 0.0 {
		sigma = defaultSigma(kernelSize)
	}

	switch radius {
	case 1:
		return pixel.ApplyKernel3(b, pixel.Gaussian3(sigma))
	case 2:
		return pixel.ApplyKernel5(b, pixel.Gaussian5(sigma))
	case 3:
		return pixel.ApplyKernel7(b, pixel.Gaussian7(sigma))
	default:
		return pixel.ApplyKernel(b, pixel.Gaussian(kernelSize, sigma))
	}
}
