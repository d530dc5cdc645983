// Package stream implements the base pixel-stream codec: the tagged-chunk
// byte format described as the "Quite OK Image" stream. It knows nothing
// about the optional Huffman entropy layer; it produces body bytes as a
// plain slice and consumes them through the ByteSource interface, so the
// Huffman layer can be spliced in underneath without this package changing.
package stream

import (
	"errors"
	"fmt"

	"github.com/qoicodec/qoi/internal/pixelio"
)

const (
	// HeaderSize is the fixed length, in bytes, of the stream header.
	HeaderSize = 14
	// TerminatorSize is the fixed length, in bytes, of the stream terminator.
	TerminatorSize = 8
	// maxPixelBound bounds width*height so that header.height < 400_000_000/width
	// cannot overflow downstream size computations.
	maxPixelBound = 400_000_000

	magic0, magic1, magic2, magic3 = 'q', 'o', 'i', 'f'

	// HuffmanFlag is the colorspace high bit that marks a Huffman-wrapped
	// stream. The base stream.Header never sets it; qoi.Encode sets it on
	// the header of a Huffman-wrapped stream and qoi.Decode clears it.
	HuffmanFlag = 0x80
)

// Terminator is the fixed 8-byte sequence that closes every base stream.
var Terminator = [TerminatorSize]byte{0, 0, 0, 0, 0, 0, 0, 1}

var (
	// ErrInvalidDescriptor covers bad width/height/channels/colorspace or a
	// pixel count that would overflow the size bound.
	ErrInvalidDescriptor = errors.New("qoi: invalid descriptor")
	// ErrShortInput covers input too short to hold a header and terminator.
	ErrShortInput = errors.New("qoi: input too short")
	// ErrBadMagic covers a header whose magic bytes aren't "qoif".
	ErrBadMagic = errors.New("qoi: bad magic")
	// ErrCorrupt covers any other structural inconsistency found while
	// decoding (bad terminator, truncated chunk, corrupt Huffman codebook).
	ErrCorrupt = errors.New("qoi: corrupt stream")
)

// Header holds the fixed 14-byte stream header fields.
type Header struct {
	Width, Height uint32
	Channels      uint8
	Colorspace    uint8 // bit 0 = srgb(0)/linear(1); bit 7 = huffman mode
}

// Validate checks the invariants from the data model: channels in {3,4},
// colorspace's low bit only (callers strip the huffman flag before calling),
// nonzero dimensions, and the height < 400_000_000/width work bound.
func (h Header) Validate() error {
	if h.Width == 0 || h.Height == 0 {
		return fmt.Errorf("%w: zero dimension", ErrInvalidDescriptor)
	}
	if h.Channels != 3 && h.Channels != 4 {
		return fmt.Errorf("%w: channels %d not in {3,4}", ErrInvalidDescriptor, h.Channels)
	}
	if h.Colorspace > 1 {
		return fmt.Errorf("%w: colorspace %d > 1", ErrInvalidDescriptor, h.Colorspace)
	}
	if uint64(h.Height) >= maxPixelBound/uint64(h.Width) {
		return fmt.Errorf("%w: dimensions %dx%d exceed the work bound", ErrInvalidDescriptor, h.Width, h.Height)
	}
	return nil
}

// EncodeHeader writes the 14-byte header for h into a fresh slice.
func EncodeHeader(h Header) []byte {
	buf := make([]byte, HeaderSize)
	buf[0], buf[1], buf[2], buf[3] = magic0, magic1, magic2, magic3
	pixelio.PutUint32(buf[4:8], h.Width)
	pixelio.PutUint32(buf[8:12], h.Height)
	buf[12] = h.Channels
	buf[13] = h.Colorspace
	return buf
}

// ParseHeader reads the 14-byte header from the front of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize+TerminatorSize {
		return Header{}, ErrShortInput
	}
	if data[0] != magic0 || data[1] != magic1 || data[2] != magic2 || data[3] != magic3 {
		return Header{}, ErrBadMagic
	}
	h := Header{
		Width:      pixelio.GetUint32(data[4:8]),
		Height:     pixelio.GetUint32(data[8:12]),
		Channels:   data[12],
		Colorspace: data[13],
	}
	return h, nil
}
