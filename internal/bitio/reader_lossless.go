package bitio

import "encoding/binary"

// Reader is a cursor over the little-endian 32-bit word stream Writer
// produces, exposing a 64-bit prefetch window a Huffman decoder reads its
// table index and overflow bits from.
//
// It is the mirror of the VP8L lossless bit reader's 64-bit sliding window
// (word-granular fill, little-endian byte order), narrowed from arbitrary
// nBits field reads to whole-window reads plus an explicit Advance, since a
// canonical Huffman decode consumes a variable, data-dependent number of
// bits per symbol rather than a fixed field width known to the caller in
// advance.
type Reader struct {
	words []uint32
	bits  int // absolute bit position within the conceptual word stream
}

// NewReader wraps data (a whole number of little-endian 32-bit words).
func NewReader(data []byte) *Reader {
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return &Reader{words: words}
}

// Window returns the 64 bits starting at the current bit cursor, or as many
// as remain (zero-padded) if fewer than 64 bits are left — which only
// happens if the stream is missing its trailing guard word.
func (br *Reader) Window() uint64 {
	w := br.bits / 32
	k := uint(br.bits % 32)
	var lo, hi uint64
	if w < len(br.words) {
		lo = uint64(br.words[w])
	}
	if w+1 < len(br.words) {
		hi = uint64(br.words[w+1])
	}
	return (lo | hi<<32) >> k
}

// Advance moves the bit cursor forward by n bits.
func (br *Reader) Advance(n int) { br.bits += n }

// Exhausted reports whether the cursor has moved into the trailing guard
// word (or past the end of the word array). Writer never puts code bits in
// the guard word, so reaching it means the packed body was truncated.
func (br *Reader) Exhausted() bool {
	return br.bits > (len(br.words)-1)*32
}
