package huffman

import "github.com/qoicodec/qoi/internal/pixelio"

// codebookEntrySize returns the serialized width, in bytes, of a code's
// Bits field for the given code length: len==0 or len<=16 packs into 16
// bits, 17..24 into 24, and 25..32 into 32. A zero length still reserves
// the 16-bit width (it carries no bits, but the layout must stay regular
// so the decoder can walk the table without first knowing which symbols
// are used).
func codebookEntrySize(length uint8) int {
	switch {
	case length <= 16:
		return 2
	case length <= 24:
		return 3
	default:
		return 4
	}
}

// EncodeCodebook serializes table as 256 {len byte, bits field} entries in
// symbol order.
func EncodeCodebook(table [256]CodeEntry) []byte {
	out := make([]byte, 0, 256*3)
	for sym := 0; sym < 256; sym++ {
		e := table[sym]
		out = append(out, e.Len)
		switch codebookEntrySize(e.Len) {
		case 2:
			buf := make([]byte, 2)
			pixelio.PutUint16(buf, uint16(e.Bits))
			out = append(out, buf...)
		case 3:
			buf := make([]byte, 3)
			pixelio.PutUint24(buf, e.Bits)
			out = append(out, buf...)
		default:
			buf := make([]byte, 4)
			pixelio.PutUint32(buf, e.Bits)
			out = append(out, buf...)
		}
	}
	return out
}

// DecodeCodebook parses 256 codebook entries from the front of data and
// returns the code table along with the number of bytes consumed.
func DecodeCodebook(data []byte) (table [256]CodeEntry, consumed int, ok bool) {
	pos := 0
	for sym := 0; sym < 256; sym++ {
		if pos >= len(data) {
			return table, 0, false
		}
		length := data[pos]
		pos++
		width := codebookEntrySize(length)
		if pos+width > len(data) {
			return table, 0, false
		}
		var bits uint32
		switch width {
		case 2:
			bits = uint32(pixelio.GetUint16(data[pos:]))
		case 3:
			bits = pixelio.GetUint24(data[pos:])
		default:
			bits = pixelio.GetUint32(data[pos:])
		}
		pos += width
		table[sym] = CodeEntry{Bits: bits, Len: length}
	}
	return table, pos, true
}
