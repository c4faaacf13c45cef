package pixel

import (
	"fmt"
	"math"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/internal/parallel"
)

// Kernel is a dynamically sized convolution matrix, row-major.
type Kernel struct {
	data   []float32
	width  int
	height int
}

// NewKernel creates a kernel from row-major weights. It panics if the
// length does not match width*height.
func NewKernel(data []float32, width, height int) Kernel {
	if len(data) != width*height {
		panic(fmt.Sprintf("pixel: kernel data has wrong length: %dx%d=%d, got %d",
			width, height, width*height, len(data)))
	}
	return Kernel{data: data, width: width, height: height}
}

// Width returns the kernel width.
func (k Kernel) Width() int { return k.width }

// Height returns the kernel height.
func (k Kernel) Height() int { return k.height }

// Get returns the weight at (x, y).
func (k Kernel) Get(x, y int) float32 { return k.data[x+y*k.width] }

// OffsetX returns the horizontal center offset.
func (k Kernel) OffsetX() int { return k.width / 2 }

// OffsetY returns the vertical center offset.
func (k Kernel) OffsetY() int { return k.height / 2 }

func gaussianWeights(size int, sigma float32) []float32 {
	data := make([]float32, size*size)

	offset := size / 2
	s := 2.0 * float64(sigma) * float64(sigma)

	sum := 0.0
	for x := -offset; x < size-offset; x++ {
		for y := -offset; y < size-offset; y++ {
			r2 := float64(x*x + y*y)
			v := math.Exp(-r2/s) / (math.Pi * s)

			data[(x+offset)+(y+offset)*size] = float32(v)
			sum += v
		}
	}

	// Renormalize so the discretized weights sum to exactly one.
	for i := range data {
		data[i] /= float32(sum)
	}

	return data
}

// Gaussian creates a normalized size x size Gaussian kernel.
func Gaussian(size int, sigma float32) Kernel {
	return NewKernel(gaussianWeights(size, sigma), size, size)
}

// SobelX returns the horizontal Sobel edge kernel.
func SobelX() Kernel {
	return Kernel{
		data:   []float32{-1, 0, 1, -2, 0, 2, -1, 0, 1},
		width:  3,
		height: 3,
	}
}

// SobelY returns the vertical Sobel edge kernel.
func SobelY() Kernel {
	return Kernel{
		data:   []float32{1, 2, 1, 0, 0, 0, -1, -2, -1},
		width:  3,
		height: 3,
	}
}

// Laplace returns the 8-connected Laplace edge kernel.
func Laplace() Kernel {
	return Kernel{
		data:   []float32{1, 1, 1, 1, -8, 1, 1, 1, 1},
		width:  3,
		height: 3,
	}
}

// Fixed-size kernels for the most common radii. These exist so small
// blurs avoid the dynamic indexing of Kernel.
type (
	Kernel3 [3][3]float32
	Kernel5 [5][5]float32
	Kernel7 [7][7]float32
)

func fixedGaussian(size int, sigma float32, put func(x, y int, v float32)) {
	w := gaussianWeights(size, sigma)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			put(x, y, w[x+y*size])
		}
	}
}

// Gaussian3 creates a normalized 3x3 Gaussian kernel.
func Gaussian3(sigma float32) Kernel3 {
	var k Kernel3
	fixedGaussian(3, sigma, func(x, y int, v float32) { k[y][x] = v })
	return k
}

// Gaussian5 creates a normalized 5x5 Gaussian kernel.
func Gaussian5(sigma float32) Kernel5 {
	var k Kernel5
	fixedGaussian(5, sigma, func(x, y int, v float32) { k[y][x] = v })
	return k
}

// Gaussian7 creates a normalized 7x7 Gaussian kernel.
func Gaussian7(sigma float32) Kernel7 {
	var k Kernel7
	fixedGaussian(7, sigma, func(x, y int, v float32) { k[y][x] = v })
	return k
}

// KernelValueAt convolves the kernel with the clamped neighborhood of
// (x, y), weighting all four channels including alpha.
func KernelValueAt(b *Buffer[color.RGB], x, y int, k Kernel) color.RGB {
	offX := k.OffsetX()
	offY := k.OffsetY()

	var data [4]float32
	for ky := 0; ky < k.height; ky++ {
		for kx := 0; kx < k.width; kx++ {
			w := k.data[kx+ky*k.width]
			c := b.AtClamped(x+kx-offX, y+ky-offY)
			data[0] += c.Data[0] * w
			data[1] += c.Data[1] * w
			data[2] += c.Data[2] * w
			data[3] += c.Data[3] * w
		}
	}

	return color.RGB{Data: data}
}

// mapRowsRGB fills a new buffer by evaluating fn per pixel, splitting the
// rows across workers.
func mapRowsRGB(b *Buffer[color.RGB], fn func(x, y int) color.RGB) *Buffer[color.RGB] {
	out := make([]color.RGB, len(b.data))
	parallel.Rows(b.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := out[y*b.width : (y+1)*b.width]
			for x := 0; x < b.width; x++ {
				row[x] = fn(x, y)
			}
		}
	})
	return &Buffer[color.RGB]{width: b.width, height: b.height, data: out}
}

// ApplyKernel convolves the whole buffer with a dynamically sized kernel,
// producing a new buffer.
func ApplyKernel(b *Buffer[color.RGB], k Kernel) *Buffer[color.RGB] {
	return mapRowsRGB(b, func(x, y int) color.RGB {
		return KernelValueAt(b, x, y, k)
	})
}

func convolveWindow[W any](w *W, get func(*W, int, int) color.RGB, kget func(int, int) float32, n int) color.RGB {
	var data [4]float32
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			kv := kget(x, y)
			c := get(w, x, y)
			data[0] += c.Data[0] * kv
			data[1] += c.Data[1] * kv
			data[2] += c.Data[2] * kv
			data[3] += c.Data[3] * kv
		}
	}
	return color.RGB{Data: data}
}

// ApplyKernel3 convolves the buffer with a fixed 3x3 kernel using the
// contiguous window fast path.
func ApplyKernel3(b *Buffer[color.RGB], k Kernel3) *Buffer[color.RGB] {
	return mapRowsRGB(b, func(x, y int) color.RGB {
		w := b.Window3(x, y)
		return convolveWindow(&w,
			func(w *[3][3]color.RGB, x, y int) color.RGB { return w[y][x] },
			func(x, y int) float32 { return k[y][x] }, 3)
	})
}

// ApplyKernel5 convolves the buffer with a fixed 5x5 kernel.
func ApplyKernel5(b *Buffer[color.RGB], k Kernel5) *Buffer[color.RGB] {
	return mapRowsRGB(b, func(x, y int) color.RGB {
		w := b.Window5(x, y)
		return convolveWindow(&w,
			func(w *[5][5]color.RGB, x, y int) color.RGB { return w[y][x] },
			func(x, y int) float32 { return k[y][x] }, 5)
	})
}

// ApplyKernel7 convolves the buffer with a fixed 7x7 kernel.
func ApplyKernel7(b *Buffer[color.RGB], k Kernel7) *Buffer[color.RGB] {
	return mapRowsRGB(b, func(x, y int) color.RGB {
		w := b.Window7(x, y)
		return convolveWindow(&w,
			func(w *[7][7]color.RGB, x, y int) color.RGB { return w[y][x] },
			func(x, y int) float32 { return k[y][x] }, 7)
	})
}
