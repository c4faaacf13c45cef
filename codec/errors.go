package codec

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned when neither the file extension nor the
// byte signature identifies a supported format.
var ErrUnknownFormat = errors.New("codec: unknown image format")

// InvalidDimensionsError is returned by decoders when the declared image
// dimensions violate the pixel buffer size invariant. It is reported
// before any pixel allocation happens.
type InvalidDimensionsError struct {
	Width  int
	Height int
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("codec: unsupported buffer size for image: %dx%d", e.Width, e.Height)
}

// UnsupportedDimensionsError is returned by encoders when the buffer
// dimensions exceed what the target format can represent.
type UnsupportedDimensionsError struct {
	Format string
	Width  int
	Height int
}

func (e *UnsupportedDimensionsError) Error() string {
	return fmt.Sprintf("codec: image dimensions not supported by format %s: %dx%d",
		e.Format, e.Width, e.Height)
}

// DecodingError wraps a failure inside a format decoder.
type DecodingError struct {
	Format string
	Err    error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("codec: decoding %s: %v", e.Format, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// EncodingError wraps a failure inside a format encoder.
type EncodingError struct {
	Format string
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("codec: encoding %s: %v", e.Format, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
