// Package pict is an image-processing engine built around a typed pixel
// buffer in linear RGB.
//
// # Overview
//
// Decoded images live in a pixel buffer whose channel values are linear
// light intensities, so arithmetic on pixels is physically meaningful.
// A family of color types (sRGB, HSL, HSV, YUV, XYZ, Lab, LCh) converts
// through that pivot, and a library of operations covers color
// adjustments, convolution filters, geometric resampling, compositing,
// and noise.
//
// # Quick Start
//
//	img, err := pict.Open("input.jpg")
//	if err != nil {
//	    ...
//	}
//
//	out := img.Resize(800, 600, ops.FilterAuto).GaussianBlur(2, 0)
//
//	if err := out.Save("output.png"); err != nil {
//	    ...
//	}
//
// # Packages
//
//   - pict: the Image facade tying buffers, operations and codecs together
//   - color: the color-space family and per-color adjustments
//   - pixel: the generic pixel buffer and convolution kernels
//   - ops: buffer-level operations, functional by default
//   - codec: encoding and decoding at the byte boundary
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down.
// Rotation angles are in degrees, clockwise positive.
package pict

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
