package huffman

import (
	"container/heap"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// BuildTree builds an optimal Huffman code tree for the given frequencies.
// Symbols with a count of zero are ignored.
//
// The result depends only on the contents of freqs, never on map iteration
// order: when two subtrees have the same weight, the one whose smallest
// Symbol is smaller is merged first and becomes the left child.
//
// Weights stored in the tree saturate at math.MaxUint64, but merge order
// uses the exact sums, so the tree stays optimal for any counts.
//
// If freqs holds exactly one symbol, the tree is a single leaf.  If it holds
// none, BuildTree returns EmptyInputError.
//
func BuildTree(freqs FrequencyTable) (*Tree, error) {
	symbols := make(bySymbol, 0, len(freqs))
	for symbol, count := range freqs {
		if count == 0 {
			continue
		}
		if !symbol.IsValid() {
			return nil, InvalidSymbolError{Symbol: symbol}
		}
		symbols = append(symbols, symbol)
	}
	if len(symbols) == 0 {
		return nil, EmptyInputError{}
	}
	sort.Sort(symbols)

	// A strict binary tree with n leaves has 2n-1 nodes.
	t := &Tree{nodes: make([]node, 0, 2*len(symbols)-1)}

	// Step 1: build a minheap of leaves.

	h := weightHeap{list: make([]heapItem, 0, len(symbols))}
	for _, symbol := range symbols {
		weight := freqs[symbol]
		id := t.addLeaf(symbol, weight)
		h.list = append(h.list, heapItem{id: id, weight: weight, min: symbol})
	}
	h.Init()

	// Step 2: repeatedly pop the two lightest subtrees and push back their
	// union.  The smallest symbol of the union is the smaller of the two
	// smallest symbols, which keeps heap ordering strict: subtrees in the
	// heap are disjoint, so no two items share a min.

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)

		least := a.min
		if b.min < least {
			least = b.min
		}

		over, weight := addWeights(a.over, a.weight, b.over, b.weight)
		nodeWeight := weight
		if over != 0 {
			nodeWeight = ^uint64(0)
		}
		id := t.addInternal(nodeWeight, a.id, b.id)
		heap.Push(&h, heapItem{id: id, over: over, weight: weight, min: least})
	}

	root := heap.Pop(&h).(heapItem)
	t.root = root.id

	assert.Assertf(len(t.nodes) == 2*len(symbols)-1, "built %d nodes for %d symbols", len(t.nodes), len(symbols))
	return t, nil
}

// type heapItem + type weightHeap {{{

// heapItem orders subtrees by their exact weight, over:weight as a 128-bit
// sum.  Node weights saturate, heap keys do not.
type heapItem struct {
	id     NodeID
	over   uint64
	weight uint64
	min    Symbol
}

type weightHeap struct {
	list []heapItem
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.over != b.over {
		return a.over < b.over
	}
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.min < b.min
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
