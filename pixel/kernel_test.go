package pixel

import (
	"testing"

	"github.com/gopict/pict/color"
)

func kernelSum(k Kernel) float32 {
	var sum float32
	for y := 0; y < k.Height(); y++ {
		for x := 0; x < k.Width(); x++ {
			sum += k.Get(x, y)
		}
	}
	return sum
}

func TestGaussianNormalization(t *testing.T) {
	for _, size := range []int{3, 5, 7, 9, 15, 31} {
		for _, sigma := range []float32{0.5, 1.0, 2.0, 5.0} {
			sum := kernelSum(Gaussian(size, sigma))
			if sum < 1.0-1e-4 || sum > 1.0+1e-4 {
				t.Errorf("Gaussian(%d, %v) sums to %v", size, sigma, sum)
			}
		}
	}
}

func TestFixedGaussianMatchesDynamic(t *testing.T) {
	dyn := Gaussian(5, 1.5)
	fixed := Gaussian5(1.5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if dyn.Get(x, y) != fixed[y][x] {
				t.Fatalf("weight mismatch at %d,%d: %v vs %v", x, y, dyn.Get(x, y), fixed[y][x])
			}
		}
	}
}

func TestSobelKernels(t *testing.T) {
	kx := SobelX()
	wantX := []float32{-1, 0, 1, -2, 0, 2, -1, 0, 1}
	for i, v := range wantX {
		if kx.Get(i%3, i/3) != v {
			t.Errorf("SobelX[%d] = %v, want %v", i, kx.Get(i%3, i/3), v)
		}
	}

	ky := SobelY()
	wantY := []float32{1, 2, 1, 0, 0, 0, -1, -2, -1}
	for i, v := range wantY {
		if ky.Get(i%3, i/3) != v {
			t.Errorf("SobelY[%d] = %v, want %v", i, ky.Get(i%3, i/3), v)
		}
	}

	if sum := kernelSum(Laplace()); sum != 0 {
		t.Errorf("Laplace sums to %v", sum)
	}
}

func TestNewKernelLengthCheck(t *testing.T) {
	mustPanic(t, "kernel length mismatch", func() {
		NewKernel(make([]float32, 8), 3, 3)
	})
}

func TestApplyKernelSolidColor(t *testing.T) {
	// A normalized kernel over a solid buffer must reproduce the color,
	// including at the clamped edges.
	c := color.NewRGB(0.2, 0.6, 0.9)
	b := NewWithColor(6, 6, c)

	for _, tc := range []struct {
		name string
		out  *Buffer[color.RGB]
	}{
		{"dynamic", ApplyKernel(b, Gaussian(9, 2.0))},
		{"fixed3", ApplyKernel3(b, Gaussian3(0.5))},
		{"fixed5", ApplyKernel5(b, Gaussian5(1.0))},
		{"fixed7", ApplyKernel7(b, Gaussian7(1.5))},
	} {
		for i, got := range tc.out.Data() {
			if !got.Equal(c) {
				t.Errorf("%s: pixel %d = %v, want %v", tc.name, i, got, c)
				break
			}
		}
	}
}

func TestKernelValueEdgeDetection(t *testing.T) {
	// Sobel-X over a solid buffer is zero everywhere; a vertical edge
	// produces a nonzero response at the boundary.
	solid := NewWithColor(5, 5, color.NewRGB(0.5, 0.5, 0.5))
	v := KernelValueAt(solid, 2, 2, SobelX())
	if v.Data[0] != 0 || v.Data[1] != 0 || v.Data[2] != 0 {
		t.Errorf("SobelX on solid buffer = %v", v)
	}

	edge := Generate(6, 6, func(x, y int) color.RGB {
		if x < 3 {
			return color.Black
		}
		return color.White
	})
	v = KernelValueAt(edge, 2, 3, SobelX())
	if v.Data[0] <= 0 {
		t.Errorf("SobelX at edge = %v, expected positive response", v)
	}
}
