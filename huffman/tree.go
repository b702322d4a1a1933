package huffman

import "container/heap"

// node is one entry in the tree arena. Leaves have left == right == -1;
// internal nodes always have both set (the tree invariant: a node is a
// leaf iff it has no children).
type node struct {
	freq  uint32
	value byte // meaningful only at leaves; 0 for internal nodes
	left  int32
	right int32
}

func (n node) isLeaf() bool { return n.left < 0 && n.right < 0 }

// nodeHeap is a min-priority queue of arena indices, ordered by
// frequency. Ties are broken by byte value: the node with the larger byte
// value is popped first, encoded here explicitly rather than left to
// whatever order container/heap would otherwise produce.
type nodeHeap struct {
	nodes *[]node
	idx   []int32
}

func (h nodeHeap) Len() int { return len(h.idx) }

func (h nodeHeap) Less(i, j int) bool {
	a, b := (*h.nodes)[h.idx[i]], (*h.nodes)[h.idx[j]]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.value > b.value
}

func (h nodeHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }

func (h *nodeHeap) Push(x any) { h.idx = append(h.idx, x.(int32)) }

func (h *nodeHeap) Pop() any {
	old := h.idx
	n := len(old)
	item := old[n-1]
	h.idx = old[:n-1]
	return item
}

// buildTree builds a Huffman tree from a frequency table and returns the
// arena plus the index of the root. freq must have at least one non-zero
// entry.
func buildTree(freq [256]uint32) ([]node, int32) {
	nodes := make([]node, 0, 511)
	h := &nodeHeap{nodes: &nodes}

	for b := 0; b < 256; b++ {
		if freq[b] == 0 {
			continue
		}
		nodes = append(nodes, node{freq: freq[b], value: byte(b), left: -1, right: -1})
		h.idx = append(h.idx, int32(len(nodes)-1))
	}
	heap.Init(h)

	for h.Len() > 1 {
		// The first node popped becomes the right child, the second
		// becomes the left child.
		right := heap.Pop(h).(int32)
		left := heap.Pop(h).(int32)

		merged := node{
			freq:  nodes[left].freq + nodes[right].freq,
			left:  left,
			right: right,
		}
		nodes = append(nodes, merged)
		h.nodes = &nodes
		heap.Push(h, int32(len(nodes)-1))
	}

	root := heap.Pop(h).(int32)
	return nodes, root
}

// generateCodes walks the tree depth-first, assigning "0" on a left
// descent and "1" on a right descent. The degenerate single-leaf tree is
// assigned the one-bit code "0".
func generateCodes(nodes []node, root int32) [256]string {
	var codes [256]string
	if nodes[root].isLeaf() {
		codes[nodes[root].value] = "0"
		return codes
	}

	var walk func(idx int32, prefix string)
	walk = func(idx int32, prefix string) {
		n := nodes[idx]
		if n.isLeaf() {
			codes[n.value] = prefix
			return
		}
		walk(n.left, prefix+"0")
		walk(n.right, prefix+"1")
	}
	walk(root, "")
	return codes
}
