package stream

// Chunk tag bytes and masks. RGB/RGBA use the full 8-bit tag; the
// remaining four chunk kinds are distinguished by their top two bits.
// Decoders must test the full-byte tags before the 2-bit ones, since
// 0xFE and 0xFF both have their top two bits set (which would otherwise
// alias the RUN tag, tagRun).
const (
	tagRGB  = 0xFE
	tagRGBA = 0xFF

	tagMask  = 0xC0
	tagIndex = 0x00
	tagDiff  = 0x40
	tagLuma  = 0x80
	tagRun   = 0xC0

	// runMax is the largest run length a single RUN chunk can carry; the
	// chunk stores length minus one (lengths 63 and 64 would collide with
	// the RGB/RGBA tag bytes).
	runMax = 62
)

// diffDelta computes the wraparound u8 delta cur-prev and returns its
// signed interpretation (range -128..127).
func diffDelta(prev, cur uint8) int8 {
	return int8(cur - prev)
}
