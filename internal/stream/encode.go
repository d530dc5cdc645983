package stream

import "github.com/qoicodec/qoi/internal/pixelio"

func inBiasRange(v int8, lo, hi int8) bool {
	return v >= lo && v <= hi
}

// EncodeBody turns a packed pixel buffer (3 or 4 bytes per pixel, row-major)
// into the chunk region of a base stream followed by the fixed terminator.
// It does not write the 14-byte header; callers prepend EncodeHeader's
// output themselves. pixels must hold exactly w*h*channels bytes.
func EncodeBody(pixels []byte, w, h, channels int) []byte {
	n := w * h
	out := make([]byte, 0, n*(channels+1)+TerminatorSize)

	prev := pixelio.Opaque
	var cache pixelio.Cache
	run := 0

	flushRun := func() {
		if run > 0 {
			out = append(out, tagRun|byte(run-1))
			run = 0
		}
	}

	for i := 0; i < n; i++ {
		off := i * channels
		a := prev.A
		if channels == 4 {
			a = pixels[off+3]
		}
		px := pixelio.Pixel{R: pixels[off], G: pixels[off+1], B: pixels[off+2], A: a}

		if px == prev {
			run++
			if run == runMax || i == n-1 {
				flushRun()
			}
			prev = px
			continue
		}

		flushRun()

		idx := pixelio.Hash(px)
		if cache.Get(idx) == px {
			out = append(out, tagIndex|idx)
			prev = px
			continue
		}

		cache.Put(px)
		if px.A == prev.A {
			vr := diffDelta(prev.R, px.R)
			vg := diffDelta(prev.G, px.G)
			vb := diffDelta(prev.B, px.B)
			if inBiasRange(vr, -2, 1) && inBiasRange(vg, -2, 1) && inBiasRange(vb, -2, 1) {
				out = append(out, tagDiff|byte(vr+2)<<4|byte(vg+2)<<2|byte(vb+2))
			} else {
				vgr := vr - vg
				vgb := vb - vg
				if inBiasRange(vg, -32, 31) && inBiasRange(vgr, -8, 7) && inBiasRange(vgb, -8, 7) {
					out = append(out, tagLuma|byte(vg+32))
					out = append(out, byte(vgr+8)<<4|byte(vgb+8))
				} else {
					out = append(out, tagRGB, px.R, px.G, px.B)
				}
			}
		} else {
			out = append(out, tagRGBA, px.R, px.G, px.B, px.A)
		}
		prev = px
	}

	out = append(out, Terminator[:]...)
	return out
}
