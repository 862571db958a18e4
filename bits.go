package huffman

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Bits represents a finite sequence of bits.  It is used both for the code
// of a single Symbol and for an entire encoded stream.
//
// Bits are packed most significant bit first: bit 0 of the sequence is the
// high bit of the first byte.  Unused low bits of the final byte are zero.
// The zero value is the empty sequence.  A Bits value is never modified once
// it has been returned to the caller.
type Bits struct {
	buf  []byte
	size int
}

// ParseBits parses the text form of a bit sequence, i.e. a string consisting
// solely of the characters '0' and '1'.  Any other character is reported as a
// CorruptStreamError.
func ParseBits(text string) (Bits, error) {
	var b Bits
	b.buf = make([]byte, 0, (len(text)+7)/8)
	for i := 0; i < len(text); i++ {
		switch ch := text[i]; ch {
		case '0':
			b.appendBit(0)
		case '1':
			b.appendBit(1)
		default:
			return Bits{}, CorruptStreamError{
				Offset: i,
				Reason: fmt.Sprintf("invalid bit value %q", ch),
			}
		}
	}
	return b, nil
}

// makeBits packs a sequence of 0/1 values.
func makeBits(path []byte) Bits {
	var b Bits
	b.buf = make([]byte, 0, (len(path)+7)/8)
	for _, bit := range path {
		b.appendBit(bit)
	}
	return b
}

// bitsFromPacked wraps an already packed buffer holding size bits.
func bitsFromPacked(buf []byte, size int) Bits {
	assert.Assertf(size >= 0 && (size+7)/8 == len(buf), "size %d does not match len(buf) %d", size, len(buf))
	return Bits{buf: buf, size: size}
}

func (b *Bits) appendBit(bit byte) {
	if b.size&7 == 0 {
		b.buf = append(b.buf, 0)
	}
	if bit != 0 {
		b.buf[b.size>>3] |= 0x80 >> (b.size & 7)
	}
	b.size++
}

// Len returns the number of bits in the sequence.
func (b Bits) Len() int {
	return b.size
}

// At returns the i'th bit of the sequence, either 0 or 1.
func (b Bits) At(i int) byte {
	assert.Assertf(i >= 0 && i < b.size, "index %d out of range [0, %d)", i, b.size)
	return (b.buf[i>>3] >> (7 - (i & 7))) & 1
}

// Bytes returns a copy of the packed representation.  The final byte is
// padded with zero bits; use Len to know how many bits are significant.
func (b Bits) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

// Equal returns true iff both sequences hold the same bits.
func (b Bits) Equal(other Bits) bool {
	return b.size == other.size && bytes.Equal(b.buf, other.buf)
}

// HasPrefix returns true iff prefix is a (not necessarily proper) prefix of
// this sequence.
func (b Bits) HasPrefix(prefix Bits) bool {
	if prefix.size > b.size {
		return false
	}
	full := prefix.size >> 3
	if !bytes.Equal(b.buf[:full], prefix.buf[:full]) {
		return false
	}
	for i := full << 3; i < prefix.size; i++ {
		if b.At(i) != prefix.At(i) {
			return false
		}
	}
	return true
}

// Text returns the sequence as a string of '0' and '1' characters.
func (b Bits) Text() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for i := 0; i < b.size; i++ {
		sb.WriteByte('0' + b.At(i))
	}
	return sb.String()
}

// String returns the string representation of this bit sequence.
func (b Bits) String() string {
	return strconv.Quote(b.Text())
}

var _ fmt.Stringer = Bits{}
