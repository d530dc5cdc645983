package stream

import "github.com/qoicodec/qoi/internal/pixelio"

// DecodePixels runs the §4.D chunk-parsing loop against src, producing
// w*h pixels in outChannels-per-pixel packed form (outChannels must already
// be resolved to 3 or 4; "0 means same as header" is the caller's job).
func DecodePixels(src ByteSource, w, h, outChannels int) ([]byte, error) {
	n := w * h
	out := make([]byte, n*outChannels)

	prev := pixelio.Opaque
	var cache pixelio.Cache
	run := 0

	for i := 0; i < n; i++ {
		var px pixelio.Pixel

		if run > 0 {
			run--
			px = prev
		} else {
			b1, ok := src.Next()
			if !ok {
				return nil, ErrCorrupt
			}
			switch {
			case b1 == tagRGB:
				r, ok1 := src.Next()
				g, ok2 := src.Next()
				b, ok3 := src.Next()
				if !ok1 || !ok2 || !ok3 {
					return nil, ErrCorrupt
				}
				px = pixelio.Pixel{R: r, G: g, B: b, A: prev.A}

			case b1 == tagRGBA:
				r, ok1 := src.Next()
				g, ok2 := src.Next()
				b, ok3 := src.Next()
				a, ok4 := src.Next()
				if !ok1 || !ok2 || !ok3 || !ok4 {
					return nil, ErrCorrupt
				}
				px = pixelio.Pixel{R: r, G: g, B: b, A: a}

			case b1&tagMask == tagIndex:
				px = cache.Get(b1 & 0x3F)

			case b1&tagMask == tagDiff:
				dr := int(b1>>4&3) - 2
				dg := int(b1>>2&3) - 2
				db := int(b1&3) - 2
				px = pixelio.Pixel{
					R: prev.R + uint8(dr),
					G: prev.G + uint8(dg),
					B: prev.B + uint8(db),
					A: prev.A,
				}

			case b1&tagMask == tagLuma:
				b2, ok := src.Next()
				if !ok {
					return nil, ErrCorrupt
				}
				vg := int(b1&0x3F) - 32
				vgr := int(b2>>4&0xF) - 8
				vgb := int(b2&0xF) - 8
				px = pixelio.Pixel{
					R: prev.R + uint8(vg+vgr),
					G: prev.G + uint8(vg),
					B: prev.B + uint8(vg+vgb),
					A: prev.A,
				}

			default: // b1&tagMask == tagRun
				run = int(b1 & 0x3F)
				px = prev
			}
			cache.Put(px)
		}

		writePixel(out, i, outChannels, px)
		prev = px
	}

	for i := 0; i < TerminatorSize; i++ {
		b, ok := src.Next()
		if !ok || b != Terminator[i] {
			return nil, ErrCorrupt
		}
	}

	return out, nil
}

func writePixel(out []byte, i, channels int, px pixelio.Pixel) {
	off := i * channels
	out[off], out[off+1], out[off+2] = px.R, px.G, px.B
	if channels == 4 {
		out[off+3] = px.A
	}
}
