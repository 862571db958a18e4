package huffman

import (
	"bytes"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Encode replaces each Symbol of input with its code and returns the
// concatenation of those codes, in input order.
//
// codes is normally built from the same input, in which case every Symbol is
// covered.  If a Symbol has no code, Encode returns UnknownSymbolError.
//
func Encode(input []Symbol, codes CodeTable) (Bits, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	var size int
	for index, symbol := range input {
		code, found := codes[symbol]
		if !found {
			return Bits{}, UnknownSymbolError{Symbol: symbol, Index: index}
		}
		writeCode(w, code)
		size += code.Len()
	}

	// Writes to a bytes.Buffer cannot fail.
	err := w.Close()
	if err == nil {
		err = w.TryError
	}
	assert.Assertf(err == nil, "bitio.Writer: %v", err)

	return bitsFromPacked(buf.Bytes(), size), nil
}

func writeCode(w *bitio.Writer, code Bits) {
	full := code.size >> 3
	for _, b := range code.buf[:full] {
		w.TryWriteByte(b)
	}
	if rest := uint8(code.size & 7); rest != 0 {
		w.TryWriteBits(uint64(code.buf[full]>>(8-rest)), rest)
	}
}
