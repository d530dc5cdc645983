package huffman

// tableWidth is the number of low bits the primary lookup table is keyed
// by. Codes no longer than this decode in one table lookup; longer codes
// overflow into the decision tree arena.
const tableWidth = 11
const tableSize = 1 << tableWidth

// decNode is an internal decision-tree node (or leaf) used for codes
// longer than tableWidth bits. Unallocated children are -1.
type decNode struct {
	leaf        bool
	symbol      uint8
	len         uint8
	left, right int32
}

// tableEntry is one of the 2048 primary-table slots: either a terminal
// symbol/length pair, or a pointer into the overflow tree arena.
type tableEntry struct {
	terminal bool
	hasTree  bool
	symbol   uint8
	len      uint8
	treeIdx  int32
}

// DecodeTable is the hybrid lookup structure built from a codebook: a
// direct 2^11-entry table for short codes, backed by a decision-tree arena
// for codes longer than 11 bits.
type DecodeTable struct {
	slots [tableSize]tableEntry
	tree  []decNode
}

// BuildDecodeTable constructs the hybrid decode structure from a code
// table (as produced by Tree.Codes or parsed via DecodeCodebook).
func BuildDecodeTable(codes [256]CodeEntry) *DecodeTable {
	dt := &DecodeTable{}

	for sym := 0; sym < 256; sym++ {
		e := codes[sym]
		if e.Len == 0 {
			continue
		}
		if e.Len <= tableWidth {
			step := uint32(1) << e.Len
			for pattern := e.Bits; pattern < tableSize; pattern += step {
				dt.slots[pattern] = tableEntry{terminal: true, symbol: uint8(sym), len: e.Len}
			}
			continue
		}

		low := e.Bits & (tableSize - 1)
		slot := &dt.slots[low]
		if !slot.hasTree {
			slot.hasTree = true
			slot.treeIdx = dt.newNode()
		}
		cur := slot.treeIdx
		for depth := uint8(tableWidth); depth < e.Len; depth++ {
			bit := (e.Bits >> depth) & 1
			last := depth == e.Len-1
			if bit == 0 {
				if dt.tree[cur].left < 0 {
					if last {
						dt.tree[cur].left = dt.newLeaf(uint8(sym), e.Len)
					} else {
						dt.tree[cur].left = dt.newNode()
					}
				}
				cur = dt.tree[cur].left
			} else {
				if dt.tree[cur].right < 0 {
					if last {
						dt.tree[cur].right = dt.newLeaf(uint8(sym), e.Len)
					} else {
						dt.tree[cur].right = dt.newNode()
					}
				}
				cur = dt.tree[cur].right
			}
		}
	}

	return dt
}

func (dt *DecodeTable) newNode() int32 {
	dt.tree = append(dt.tree, decNode{left: -1, right: -1})
	return int32(len(dt.tree) - 1)
}

func (dt *DecodeTable) newLeaf(symbol uint8, length uint8) int32 {
	dt.tree = append(dt.tree, decNode{leaf: true, symbol: symbol, len: length, left: -1, right: -1})
	return int32(len(dt.tree) - 1)
}

// errOverflow is returned by Decode1 when a tree walk reaches an
// unallocated child, meaning the packed bits don't match any code in the
// table — a corrupt or truncated stream.
var errOverflow = errNode("huffman: decision tree walk hit an unallocated child")

type errNode string

func (e errNode) Error() string { return string(e) }

// Decode1 reads one symbol from window (the reader's current 64-bit
// prefetch) and reports how many bits it consumed.
func (dt *DecodeTable) Decode1(window uint64) (symbol uint8, consumed int, err error) {
	idx := uint32(window) & (tableSize - 1)
	slot := dt.slots[idx]
	if slot.terminal {
		return slot.symbol, int(slot.len), nil
	}
	if !slot.hasTree {
		return 0, 0, errOverflow
	}

	cur := slot.treeIdx
	depth := tableWidth
	for {
		n := &dt.tree[cur]
		if n.leaf {
			return n.symbol, int(n.len), nil
		}
		bit := (window >> uint(depth)) & 1
		var next int32
		if bit == 0 {
			next = n.left
		} else {
			next = n.right
		}
		if next < 0 {
			return 0, 0, errOverflow
		}
		cur = next
		depth++
		if depth > 63 {
			return 0, 0, errOverflow
		}
	}
}
