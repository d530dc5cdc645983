package huffman

import "github.com/qoicodec/qoi/internal/bitio"

// Source decodes one entropy symbol per Next call, acting as a drop-in
// replacement for stream.SliceSource: the base decoder's chunk-parsing
// loop doesn't know or care that its bytes are coming from a Huffman
// unpack rather than a flat slice.
type Source struct {
	table *DecodeTable
	r     *bitio.Reader
	err   error
}

// NewSource builds the hybrid decode table from codes and wraps packed
// (the word-aligned bytes immediately following the codebook) in a Source.
func NewSource(codes [256]CodeEntry, packed []byte) *Source {
	return &Source{table: BuildDecodeTable(codes), r: bitio.NewReader(packed)}
}

// Next implements stream.ByteSource.
func (s *Source) Next() (byte, bool) {
	if s.err != nil {
		return 0, false
	}
	if s.r.Exhausted() {
		s.err = errOverflow
		return 0, false
	}
	symbol, consumed, err := s.table.Decode1(s.r.Window())
	if err != nil {
		s.err = err
		return 0, false
	}
	s.r.Advance(consumed)
	return symbol, true
}

// Err returns the first decode error encountered, if any.
func (s *Source) Err() error {
	return s.err
}
