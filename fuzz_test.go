package qoi_test

import (
	"testing"

	"github.com/qoicodec/qoi"
)

// addMinimalSeeds adds a handful of small, validly-encoded streams to the
// fuzz corpus: a run-heavy image, a noisy one (likely to exercise the
// Huffman layer), and a single pixel.
func addMinimalSeeds(f *testing.F) {
	f.Helper()
	seeds := []struct {
		pixels []byte
		w, h   int
	}{
		{[]byte{10, 20, 30, 40}, 1, 1},
		{solidRun(70, 1, 2, 3, 255), 70, 1},
		{noise(300, 7), 300, 1},
	}
	for _, s := range seeds {
		data, err := qoi.Encode(s.pixels, qoi.Descriptor{Width: uint32(s.w), Height: uint32(s.h), Channels: 4})
		if err != nil {
			continue
		}
		f.Add(data)
	}
}

// FuzzDecode is the primary defense target: no input, however malformed,
// may panic the decoder (the only contract Decode makes on bad input is
// returning an error).
func FuzzDecode(f *testing.F) {
	addMinimalSeeds(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		qoi.Decode(data, qoi.Options{Channels: 4}) //nolint:errcheck
	})
}

// FuzzDecodeDefaultChannels exercises the "match header channels" path
// (Options.Channels == 0) against arbitrary input.
func FuzzDecodeDefaultChannels(f *testing.F) {
	addMinimalSeeds(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		qoi.Decode(data, qoi.Options{}) //nolint:errcheck
	})
}

// FuzzEncodeRoundTrip builds a small pixel buffer out of fuzzer bytes and
// checks that whatever Encode produces decodes back to the same pixels —
// the universal round-trip invariant (spec §8, property 1), now exercised
// against arbitrary pixel content rather than hand-picked fixtures.
func FuzzEncodeRoundTrip(f *testing.F) {
	f.Add(make([]byte, 64))
	f.Add(solidRun(16, 1, 2, 3, 255))
	f.Add(noise(16, 99))

	f.Fuzz(func(t *testing.T, raw []byte) {
		if len(raw) < 4 {
			t.Skip()
		}
		n := len(raw) / 4
		pixels := raw[:n*4]
		desc := qoi.Descriptor{Width: uint32(n), Height: 1, Channels: 4}

		encoded, err := qoi.Encode(pixels, desc)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		got, _, err := qoi.Decode(encoded, qoi.Options{Channels: 4})
		if err != nil {
			t.Fatalf("Decode of our own Encode output failed: %v", err)
		}
		if len(got) != len(pixels) {
			t.Fatalf("length mismatch: got %d, want %d", len(got), len(pixels))
		}
		for i := range pixels {
			if got[i] != pixels[i] {
				t.Fatalf("byte %d: got %d, want %d", i, got[i], pixels[i])
			}
		}
	})
}
