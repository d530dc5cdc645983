package qoi

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/qoicodec/qoi/internal/bitio"
	"github.com/qoicodec/qoi/internal/huffman"
	"github.com/qoicodec/qoi/internal/stream"
)

func init() {
	image.RegisterFormat("qoi", "qoif", DecodeImage, DecodeConfig)
}

// Errors returned by Encode and Decode, wrapped with additional context via
// fmt.Errorf's %w. Decode reports input too short for a header and
// terminator, or a bad magic number, with errors of their own instead.
var (
	ErrInvalidDescriptor = stream.ErrInvalidDescriptor
	ErrCorrupt           = stream.ErrCorrupt
)

// Descriptor holds an image's dimensions and pixel format, as carried in
// the stream header.
type Descriptor struct {
	Width, Height uint32
	Channels      uint8 // 3 (RGB) or 4 (RGBA)
	Colorspace    uint8 // bit 0 only: srgb(0)/linear(1); purely informative
}

// Validate reports whether d satisfies the invariants required to encode
// or decode: nonzero dimensions, Channels in {3,4}, Colorspace <= 1, and a
// pixel count bounded to keep downstream size computations from
// overflowing.
func (d Descriptor) Validate() error {
	return stream.Header{
		Width: d.Width, Height: d.Height, Channels: d.Channels, Colorspace: d.Colorspace,
	}.Validate()
}

// Options controls decoding.
type Options struct {
	// Channels requests the output pixel layout: 3 (RGB), 4 (RGBA), or 0
	// to match the stream's own Channels field.
	Channels int
}

// Encode turns pixels (desc.Width*desc.Height pixels, desc.Channels bytes
// each, row-major) into a self-delimiting byte stream. It always runs the
// base pixel-stream encoder, then attempts the Huffman entropy layer;
// whichever the builder doesn't abandon is returned.
func Encode(pixels []byte, desc Descriptor) ([]byte, error) {
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("qoi: encode: %w", err)
	}
	want := int(desc.Width) * int(desc.Height) * int(desc.Channels)
	if len(pixels) != want {
		return nil, fmt.Errorf("qoi: encode: %w: got %d pixel bytes, want %d", ErrInvalidDescriptor, len(pixels), want)
	}

	body := stream.EncodeBody(pixels, int(desc.Width), int(desc.Height), int(desc.Channels))

	baseHeader := stream.Header{
		Width: desc.Width, Height: desc.Height, Channels: desc.Channels, Colorspace: desc.Colorspace,
	}
	plain := append(stream.EncodeHeader(baseHeader), body...)

	histo := histogramOf(body)
	plan := huffman.BuildPlan(histo, len(plain))
	if plan.Abandon {
		return plain, nil
	}

	huffHeader := baseHeader
	huffHeader.Colorspace |= stream.HuffmanFlag
	out := stream.EncodeHeader(huffHeader)
	out = append(out, huffman.EncodeCodebook(plan.Table)...)
	for len(out)%4 != 0 {
		out = append(out, 0)
	}

	w := bitio.NewWriter(len(body))
	for _, b := range body {
		e := plan.Table[b]
		w.WriteCode(e.Bits, e.Len)
	}
	out = append(out, w.Finish()...)

	return out, nil
}

// Decode parses a byte stream produced by Encode and returns the decoded
// pixels (in opts.Channels per pixel, or the stream's own channel count
// when opts.Channels is 0) along with the stream's descriptor.
func Decode(data []byte, opts Options) ([]byte, Descriptor, error) {
	h, err := stream.ParseHeader(data)
	if err != nil {
		return nil, Descriptor{}, fmt.Errorf("qoi: decode: %w", err)
	}

	huffMode := h.Colorspace&stream.HuffmanFlag != 0
	h.Colorspace &^= stream.HuffmanFlag
	if err := h.Validate(); err != nil {
		return nil, Descriptor{}, fmt.Errorf("qoi: decode: %w", err)
	}

	channels := opts.Channels
	if channels == 0 {
		channels = int(h.Channels)
	}
	if channels != 3 && channels != 4 {
		return nil, Descriptor{}, fmt.Errorf("qoi: decode: %w: requested channels %d not in {3,4}", ErrInvalidDescriptor, channels)
	}

	var src stream.ByteSource
	if huffMode {
		table, consumed, ok := huffman.DecodeCodebook(data[stream.HeaderSize:])
		if !ok {
			return nil, Descriptor{}, fmt.Errorf("qoi: decode: %w: truncated codebook", ErrCorrupt)
		}
		offset := stream.HeaderSize + consumed
		for offset%4 != 0 {
			offset++
		}
		if offset > len(data) {
			return nil, Descriptor{}, fmt.Errorf("qoi: decode: %w: truncated packed body", ErrCorrupt)
		}
		src = huffman.NewSource(table, data[offset:])
	} else {
		src = stream.NewSliceSource(data[stream.HeaderSize:])
	}

	pixels, err := stream.DecodePixels(src, int(h.Width), int(h.Height), channels)
	if err != nil {
		return nil, Descriptor{}, fmt.Errorf("qoi: decode: %w", err)
	}

	desc := Descriptor{Width: h.Width, Height: h.Height, Channels: uint8(channels), Colorspace: h.Colorspace}
	return pixels, desc, nil
}

func histogramOf(body []byte) [256]uint32 {
	var h [256]uint32
	for _, b := range body {
		h[b]++
	}
	return h
}

// DecodeConfig returns the color model and dimensions of a qoi image
// without decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, fmt.Errorf("qoi: reading data: %w", err)
	}
	h, err := stream.ParseHeader(data)
	if err != nil {
		return image.Config{}, fmt.Errorf("qoi: parsing header: %w", err)
	}
	return image.Config{ColorModel: color.RGBAModel, Width: int(h.Width), Height: int(h.Height)}, nil
}

// DecodeImage reads a whole qoi stream from r and returns it as an *Image,
// the image.Image-returning entry point image.RegisterFormat and
// image.Decode expect. The in-memory Decode above is the codec's own API
// (bytes in, pixels out); DecodeImage is a thin adapter over it for
// callers that want a standard image.Image.
func DecodeImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("qoi: reading data: %w", err)
	}
	pixels, desc, err := Decode(data, Options{Channels: 4})
	if err != nil {
		return nil, err
	}
	return &Image{Pix: pixels, Desc: desc}, nil
}
