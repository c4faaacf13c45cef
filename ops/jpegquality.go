package ops

import (
	"bytes"

	"github.com/gopict/pict/codec"
	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// JPEGQuality simulates lossy storage by encoding the buffer as JPEG at
// the given quality and decoding it back. JPEG has no alpha channel;
// with preserveAlpha the original alpha values are copied into the
// result, otherwise everything comes back opaque.
func JPEGQuality(b *pixel.Buffer[color.RGB], quality int, preserveAlpha bool) (*pixel.Buffer[color.RGB], error) {
	var buf bytes.Buffer
	if err := codec.EncodeJPEG(&buf, b, codec.JPEGOptions{Quality: quality}); err != nil {
		return nil, err
	}

	decoded, err := codec.DecodeBytes(buf.Bytes())
	if err != nil {
		return nil, err
	}

	out := decoded.Buffer
	if preserveAlpha {
		in := b.Data()
		outData := out.Data()
		for i := range outData {
			outData[i].Data[3] = in[i].Data[3]
		}
	}

	return out, nil
}
