// Package huffman implements the per-image canonical Huffman entropy layer
// that sits on top of the base pixel-stream codec: a histogram-driven tree
// builder, a codebook-emitting bit-packer, and a hybrid table/tree decoder.
package huffman

import "container/heap"

// MaxCodeLen is the longest code word this layer will accept; a tree
// whose construction produces a longer code causes the caller to abandon
// Huffman mode for the image (see BuildPlan).
const MaxCodeLen = 32

// arenaCap bounds the flat tree arena: 256 leaves plus up to 255 internal
// merge nodes plus one spare slot.
const arenaCap = 512

// node is either a leaf (left == right == -1) carrying a byte symbol, or
// an internal merge node pointing at two children. count is the frequency
// sum used only during construction; it is meaningless once coding is done.
type node struct {
	count       uint32
	left, right int32
	symbol      uint8
}

func (n *node) isLeaf() bool { return n.left < 0 && n.right < 0 }

// Tree is the flat arena built by Build, plus the index of its root.
type Tree struct {
	nodes []node
	root  int32
}

// nodeHeap is a binary min-heap over arena indices, compared by node count.
// Ties favor the lower index (equivalently: earlier-inserted, left child
// before right), which is an arbitrary but stable tie-break — Huffman
// optimality doesn't depend on which of two equal-count nodes merges first.
type nodeHeap struct {
	arena   []node
	indices []int32
}

func (h *nodeHeap) Len() int { return len(h.indices) }
func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.indices[i], h.indices[j]
	if h.arena[a].count != h.arena[b].count {
		return h.arena[a].count < h.arena[b].count
	}
	return a < b
}
func (h *nodeHeap) Swap(i, j int) { h.indices[i], h.indices[j] = h.indices[j], h.indices[i] }
func (h *nodeHeap) Push(x any)    { h.indices = append(h.indices, x.(int32)) }
func (h *nodeHeap) Pop() any {
	old := h.indices
	n := len(old)
	v := old[n-1]
	h.indices = old[:n-1]
	return v
}

// Build constructs a Huffman tree from a 256-entry byte histogram. Every
// symbol becomes a leaf, including symbols with a zero count: merging
// zero-weight leaves first (the heap's min-frequency ordering takes care
// of this automatically) pushes them to the deepest levels of the tree and
// correspondingly shortens the codes actually used by the data, often to
// just one or two bits when only a handful of symbols occur. This mirrors
// the reference encoder, which always seeds all 256 leaves rather than
// special-casing sparse histograms.
func Build(histogram [256]uint32) *Tree {
	arena := make([]node, 256, arenaCap)
	indices := make([]int32, 256)
	for sym := 0; sym < 256; sym++ {
		arena[sym] = node{count: histogram[sym], left: -1, right: -1, symbol: uint8(sym)}
		indices[sym] = int32(sym)
	}

	t := &Tree{root: -1}
	h := &nodeHeap{arena: arena, indices: indices}
	heap.Init(h)
	for h.Len() > 1 {
		a := heap.Pop(h).(int32)
		b := heap.Pop(h).(int32)
		parent := int32(len(h.arena))
		h.arena = append(h.arena, node{
			count: h.arena[a].count + h.arena[b].count,
			left:  a,
			right: b,
		})
		heap.Push(h, parent)
	}

	t.nodes = h.arena
	t.root = h.indices[0]
	return t
}

// CodeEntry is a symbol's assigned prefix code: the low Len bits of Bits,
// LSB-first, are the code word read from the root downward (a left branch
// appends a 0 bit, a right branch a 1 bit, at the current depth).
type CodeEntry struct {
	Bits uint32
	Len  uint8
}

// Codes walks t depth-first and returns the code table indexed by symbol,
// plus the longest code length assigned to any symbol. Every symbol gets
// an entry, including symbols that never occur in the image — their codes
// just end up among the longest in the tree and are never emitted.
func (t *Tree) Codes() (table [256]CodeEntry, maxLen int) {
	if t.root < 0 {
		return table, 0
	}
	if t.nodes[t.root].isLeaf() {
		table[t.nodes[t.root].symbol] = CodeEntry{Bits: 0, Len: 0}
		return table, 0
	}
	t.walk(t.root, 0, 0, &table, &maxLen)
	return table, maxLen
}

func (t *Tree) walk(idx int32, bits uint32, depth int, table *[256]CodeEntry, maxLen *int) {
	n := &t.nodes[idx]
	if n.isLeaf() {
		table[n.symbol] = CodeEntry{Bits: bits, Len: uint8(depth)}
		if depth > *maxLen {
			*maxLen = depth
		}
		return
	}
	t.walk(n.left, bits, depth+1, table, maxLen)
	t.walk(n.right, bits|uint32(1)<<uint(depth), depth+1, table, maxLen)
}
