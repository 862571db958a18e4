package huffman

import (
	"bytes"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Decode reconstructs the Symbol sequence that was encoded into stream using
// the codes of t.
//
// Decoding walks t from the root, taking the left child on a 0 bit and the
// right child on a 1 bit.  Each time a leaf is reached, its Symbol is emitted
// and the walk restarts at the root.
//
// If stream ends in the middle of a code, Decode returns TruncatedStreamError.
// If t is a single leaf, its one-bit code is "0" and a 1 bit is reported as
// CorruptStreamError.
//
func Decode(stream Bits, t *Tree) ([]Symbol, error) {
	r := bitio.NewReader(bytes.NewReader(stream.buf))

	if t.IsLeaf(t.root) {
		symbol := t.Symbol(t.root)
		out := make([]Symbol, 0, stream.size)
		for offset := 0; offset < stream.size; offset++ {
			if r.TryReadBool() {
				return nil, CorruptStreamError{
					Offset: offset,
					Reason: "expected bit 0 for single-symbol tree",
				}
			}
			out = append(out, symbol)
		}
		assert.Assertf(r.TryError == nil, "bitio.Reader: %v", r.TryError)
		return out, nil
	}

	out := make([]Symbol, 0)
	current := t.root
	var depth int
	for offset := 0; offset < stream.size; offset++ {
		var next NodeID
		if r.TryReadBool() {
			next = t.Right(current)
		} else {
			next = t.Left(current)
		}
		if next == NoNode {
			return nil, CorruptStreamError{
				Offset: offset,
				Reason: "missing child in tree",
			}
		}

		depth++
		if t.IsLeaf(next) {
			out = append(out, t.Symbol(next))
			current = t.root
			depth = 0
		} else {
			current = next
		}
	}
	assert.Assertf(r.TryError == nil, "bitio.Reader: %v", r.TryError)

	if current != t.root {
		return nil, TruncatedStreamError{Size: stream.size, Pending: depth}
	}
	return out, nil
}
