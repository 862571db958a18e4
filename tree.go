package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// NodeID identifies a node within a Tree.
type NodeID int32

// NoNode is the NodeID of a missing child.
const NoNode = NodeID(-1)

// Tree is a binary Huffman code tree.  Leaves carry a Symbol; internal nodes
// carry only the sum of their children's weights.
//
// Nodes live in a single slice and refer to their children by NodeID, so a
// Tree never holds pointers between nodes.  A Tree is immutable once built
// and may be shared freely.
//
// Only BuildTree and DeserializeTree produce usable Trees.  The zero value
// has no root, and methods that walk it panic.
type Tree struct {
	nodes []node
	root  NodeID
}

type node struct {
	// symbol is InvalidSymbol for internal nodes.
	symbol Symbol
	weight uint64
	left   NodeID
	right  NodeID
}

func (n node) isLeaf() bool {
	return n.symbol != InvalidSymbol
}

func (t *Tree) addLeaf(symbol Symbol, weight uint64) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{symbol: symbol, weight: weight, left: NoNode, right: NoNode})
	return id
}

func (t *Tree) addInternal(weight uint64, left NodeID, right NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{symbol: InvalidSymbol, weight: weight, left: left, right: right})
	return id
}

func (t *Tree) node(id NodeID) node {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "NodeID %d out of range [0, %d)", id, len(t.nodes))
	return t.nodes[id]
}

// Root returns the root node of the tree.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the total number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. the number of distinct symbols.
func (t *Tree) NumLeaves() int {
	// A strict binary tree with n leaves has n-1 internal nodes.
	return (len(t.nodes) + 1) / 2
}

// IsLeaf returns true iff id is a leaf node.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.node(id).isLeaf()
}

// Symbol returns the symbol of a leaf node, or InvalidSymbol for an internal
// node.
func (t *Tree) Symbol(id NodeID) Symbol {
	return t.node(id).symbol
}

// Weight returns the weight of a node.
func (t *Tree) Weight(id NodeID) uint64 {
	return t.node(id).weight
}

// Left returns the left (bit 0) child of a node, or NoNode for a leaf.
func (t *Tree) Left(id NodeID) NodeID {
	return t.node(id).left
}

// Right returns the right (bit 1) child of a node, or NoNode for a leaf.
func (t *Tree) Right(id NodeID) NodeID {
	return t.node(id).right
}

// Symbols returns the symbols of all leaves in ascending order.
func (t *Tree) Symbols() []Symbol {
	out := make(bySymbol, 0, t.NumLeaves())
	for _, n := range t.nodes {
		if n.isLeaf() {
			out = append(out, n.symbol)
		}
	}
	sort.Sort(out)
	return out
}

// Equal returns true iff both trees have the same shape and the same symbols
// at the same positions.  Weights are not compared.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}

	type pair struct {
		a NodeID
		b NodeID
	}

	stack := []pair{{t.root, other.root}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		a, b := t.node(top.a), other.node(top.b)
		if a.isLeaf() || b.isLeaf() {
			if a.symbol != b.symbol {
				return false
			}
			continue
		}
		stack = append(stack, pair{a.right, b.right}, pair{a.left, b.left})
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.  Each line is one node in depth-first order, indented by its depth;
// internal nodes are shown as "*".
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")

	type stackItem struct {
		id    NodeID
		depth int
	}

	stack := []stackItem{{t.root, 1}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.node(top.id)
		buf.WriteString(strings.Repeat("\t", top.depth))
		if n.isLeaf() {
			fmt.Fprintf(&buf, "%v (%d)\n", n.symbol, n.weight)
			continue
		}
		fmt.Fprintf(&buf, "* (%d)\n", n.weight)
		stack = append(stack, stackItem{n.right, top.depth + 1}, stackItem{n.left, top.depth + 1})
	}

	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
