package qoi

import (
	"image"
	"image/color"
)

// Image is a decoded qoi stream exposed as a standard image.Image (and
// draw.Image). Pix is always 4 bytes per pixel (RGBA, row-major), the same
// layout image.RGBA uses, regardless of the source stream's channel count.
type Image struct {
	Pix  []byte
	Desc Descriptor
}

// ColorModel implements image.Image.
func (im *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(im.Desc.Width), int(im.Desc.Height))
}

// At implements image.Image.
func (im *Image) At(x, y int) color.Color {
	return im.RGBAAt(x, y)
}

// RGBAAt returns the pixel at (x, y) without the color.Color boxing At
// incurs.
func (im *Image) RGBAAt(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= int(im.Desc.Width) || y >= int(im.Desc.Height) {
		return color.RGBA{}
	}
	i := (y*int(im.Desc.Width) + x) * 4
	return color.RGBA{R: im.Pix[i], G: im.Pix[i+1], B: im.Pix[i+2], A: im.Pix[i+3]}
}

// Set implements draw.Image.
func (im *Image) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= int(im.Desc.Width) || y >= int(im.Desc.Height) {
		return
	}
	r, g, b, a := c.RGBA()
	i := (y*int(im.Desc.Width) + x) * 4
	im.Pix[i] = uint8(r >> 8)
	im.Pix[i+1] = uint8(g >> 8)
	im.Pix[i+2] = uint8(b >> 8)
	im.Pix[i+3] = uint8(a >> 8)
}

// EncodeImage re-encodes im as a qoi stream, always at 4 channels.
func EncodeImage(im *Image) ([]byte, error) {
	desc := im.Desc
	desc.Channels = 4
	return Encode(im.Pix, desc)
}
