package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol in a Tree to its code.  The codes form a prefix
// code: no code is a prefix of another.
type CodeTable map[Symbol]Bits

// GenerateCodes derives the code for each leaf of t from its root-to-leaf
// path, where descending to the left child appends a 0 bit and descending to
// the right child appends a 1 bit.
//
// A tree consisting of a single leaf has no path to speak of, so its only
// symbol is assigned the one-bit code "0".
//
func GenerateCodes(t *Tree) CodeTable {
	codes := make(CodeTable, t.NumLeaves())

	if t.IsLeaf(t.root) {
		codes[t.Symbol(t.root)] = makeBits([]byte{0})
		return codes
	}

	// Walk the tree with an explicit stack.  The stack depth is the length
	// of the current path, and path[i] is the bit taken out of stack[i].
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		id NodeID
		x  byte
	}

	depthHint := log2uint32(uint32(t.NumLeaves()))
	stack := make([]stackItem, 0, depthHint)
	path := make([]byte, 0, depthHint)

	processChild := func(child NodeID) {
		assert.Assertf(child != NoNode, "internal node without two children")
		if t.IsLeaf(child) {
			codes[t.Symbol(child)] = makeBits(path)
			return
		}
		stack = append(stack, stackItem{id: child})
		path = append(path, 0)
	}

	stack = append(stack, stackItem{id: t.root})
	path = append(path, 0)
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			path[len(path)-1] = 0
			processChild(t.Left(top.id))
		case 1:
			path[len(path)-1] = 1
			processChild(t.Right(top.id))
		case 2:
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
		}
	}

	return codes
}

// Cost returns the total number of bits needed to encode an input with the
// given frequencies, i.e. the sum of count × code length over all symbols.
// Symbols without a code are not counted.
func (codes CodeTable) Cost(freqs FrequencyTable) uint64 {
	var sum uint64
	for symbol, count := range freqs {
		if code, found := codes[symbol]; found {
			sum += count * uint64(code.Len())
		}
	}
	return sum
}

// MinSize is the bit length of the shortest code.
func (codes CodeTable) MinSize() int {
	var out int
	for _, code := range codes {
		if out == 0 || code.Len() < out {
			out = code.Len()
		}
	}
	return out
}

// MaxSize is the bit length of the longest code.
func (codes CodeTable) MaxSize() int {
	var out int
	for _, code := range codes {
		if code.Len() > out {
			out = code.Len()
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (codes CodeTable) Dump(w io.Writer) (int64, error) {
	symbols := make(bySymbol, 0, len(codes))
	for symbol := range codes {
		symbols = append(symbols, symbol)
	}
	sort.Sort(symbols)

	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", codes.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", codes.MaxSize())
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
