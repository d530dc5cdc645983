// Package qoi implements a lossless RGB/RGBA raster codec: the "Quite OK
// Image" chunked pixel-stream format, with an optional canonical-Huffman
// entropy layer bit-packed on top for further size reduction on images
// whose symbol distribution is skewed.
//
// The package supports:
//   - A stateful pixel-stream encoder/decoder over six chunk kinds (RUN,
//     INDEX, DIFF, LUMA, RGB, RGBA) backed by a 64-entry running color cache
//   - An optional per-image canonical Huffman entropy pass, chosen
//     automatically by the encoder: it is used unless a code would exceed
//     32 bits or, for plain streams over 10 KiB, its projected size is over
//     97% of the plain stream (on smaller streams it is used even when it
//     makes the output larger)
//   - Registration with the standard library's image package, so
//     image.Decode and image.DecodeConfig transparently read qoi streams
//
// Basic usage for encoding and decoding raw pixel buffers:
//
//	data, err := qoi.Encode(pixels, qoi.Descriptor{Width: w, Height: h, Channels: 4})
//	pixels, desc, err := qoi.Decode(data, qoi.Options{Channels: 4})
//
// Basic usage via the standard image package:
//
//	img, err := qoi.DecodeImage(reader)
package qoi
