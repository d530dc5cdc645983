package qoi_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/qoicodec/qoi"
)

// buildBMPFixture renders a small gradient as a BMP stream through an
// independent codec (golang.org/x/image/bmp), the same way a caller
// integrating this package would receive pixels from some other decoder.
func buildBMPFixture(t *testing.T) (image.Image, []byte) {
	t.Helper()
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 32), G: uint8(y * 32), B: uint8((x + y) * 16), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}
	decoded, err := bmp.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}
	return decoded, buf.Bytes()
}

// TestInteropWithBMP round-trips an image decoded by an independent codec
// (golang.org/x/image/bmp) through this package's Encode/Decode and checks
// the pixels survive pixel-exact, demonstrating that the in-memory API
// composes with the wider image ecosystem without any qoi-specific
// knowledge on the caller's part.
func TestInteropWithBMP(t *testing.T) {
	decoded, _ := buildBMPFixture(t)
	bounds := decoded.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	pixels := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := decoded.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*w + x) * 4
			pixels[i+0] = uint8(r >> 8)
			pixels[i+1] = uint8(g >> 8)
			pixels[i+2] = uint8(b >> 8)
			pixels[i+3] = uint8(a >> 8)
		}
	}

	encoded, err := qoi.Encode(pixels, qoi.Descriptor{Width: uint32(w), Height: uint32(h), Channels: 4})
	if err != nil {
		t.Fatalf("qoi.Encode: %v", err)
	}
	got, _, err := qoi.Decode(encoded, qoi.Options{Channels: 4})
	if err != nil {
		t.Fatalf("qoi.Decode: %v", err)
	}
	if !bytes.Equal(got, pixels) {
		t.Error("pixels decoded via qoi do not match pixels decoded via bmp")
	}
}

// TestDecodeImageRegistersWithImagePackage exercises the image.RegisterFormat
// wiring in qoi.go: image.Decode must recognize a qoi stream produced
// by Encode without the caller importing this package's Decode directly.
func TestDecodeImageRegistersWithImagePackage(t *testing.T) {
	pixels := []byte{
		10, 20, 30, 255,
		40, 50, 60, 255,
		70, 80, 90, 255,
		100, 110, 120, 255,
	}
	desc := qoi.Descriptor{Width: 2, Height: 2, Channels: 4}
	encoded, err := qoi.Encode(pixels, desc)
	if err != nil {
		t.Fatalf("qoi.Encode: %v", err)
	}

	img, format, err := image.Decode(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("image.Decode: %v", err)
	}
	if format != "qoi" {
		t.Errorf("format = %q, want %q", format, "qoi")
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds = %v, want (0,0)-(2,2)", got)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("image.DecodeConfig: %v", err)
	}
	if cfg.Width != 2 || cfg.Height != 2 {
		t.Errorf("DecodeConfig = %dx%d, want 2x2", cfg.Width, cfg.Height)
	}
}
