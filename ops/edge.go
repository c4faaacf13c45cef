package ops

import (
	"fmt"
	"math"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// EdgeDetectionMode selects the operator used by DetectEdges.
type EdgeDetectionMode uint8

const (
	EdgeSobel EdgeDetectionMode = iota
	EdgeLaplace
)

// ParseEdgeDetectionMode converts a lowercase name into an
// EdgeDetectionMode.
func ParseEdgeDetectionMode(s string) (EdgeDetectionMode, error) {
	switch s {
	case "sobel", "default":
		return EdgeSobel, nil
	case "laplace":
		return EdgeLaplace, nil
	default:
		return 0, fmt.Errorf("ops: unknown edge detection mode %q", s)
	}
}

// DetectEdges highlights edges with the selected operator. The result is
// fully opaque.
func DetectEdges(b *pixel.Buffer[color.RGB], mode EdgeDetectionMode) *pixel.Buffer[color.RGB] {
	switch mode {
	case EdgeLaplace:
		return detectEdgesLaplace(b)
	default:
		return detectEdgesSobel(b)
	}
}

func detectEdgesSobel(b *pixel.Buffer[color.RGB]) *pixel.Buffer[color.RGB] {
	kx := pixel.Kernel3{
		{1.0, 0.0, -1.0},
		{2.0, 0.0, -2.0},
		{1.0, 0.0, -1.0},
	}
	ky := pixel.Kernel3{
		{1.0, 2.0, 1.0},
		{0.0, 0.0, 0.0},
		{-1.0, -2.0, -1.0},
	}

	b1 := pixel.ApplyKernel3(b, kx)
	b2 := pixel.ApplyKernel3(b, ky)

	return Compose([]*pixel.Buffer[color.RGB]{b1, b2}, color.Black,
		func(_, _ int, colors []color.RGB) color.RGB {
			c1, c2 := colors[0], colors[1]
			var data [4]float32
			for i := 0; i < 3; i++ {
				data[i] = float32(math.Sqrt(float64(c1.Data[i]*c1.Data[i] + c2.Data[i]*c2.Data[i])))
			}
			data[3] = 1.0
			return color.RGB{Data: data}
		})
}

func detectEdgesLaplace(b *pixel.Buffer[color.RGB]) *pixel.Buffer[color.RGB] {
	k := pixel.Kernel3{
		{1.0, 1.0, 1.0},
		{1.0, -8.0, 1.0},
		{1.0, 1.0, 1.0},
	}
	out := pixel.ApplyKernel3(b, k)
	out.Mod(func(c color.RGB) color.RGB {
		return c.WithAlpha(1.0)
	})
	return out
}
