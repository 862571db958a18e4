package huffman

import (
	"fmt"
)

// EmptyInputError is returned by BuildTree when the FrequencyTable holds no
// symbols with a non-zero count.
type EmptyInputError struct{}

// Error fulfills the error interface.
func (EmptyInputError) Error() string {
	return "cannot build Huffman tree: no symbols in input"
}

// InvalidSymbolError is returned by BuildTree when the FrequencyTable holds a
// Symbol that is not a Unicode scalar value.
type InvalidSymbolError struct {
	Symbol Symbol
}

// Error fulfills the error interface.
func (err InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %d", int32(err.Symbol))
}

// UnknownSymbolError is returned by Encode when the input holds a Symbol that
// has no entry in the CodeTable.
type UnknownSymbolError struct {
	Symbol Symbol

	// Index is the position of Symbol within the input.
	Index int
}

// Error fulfills the error interface.
func (err UnknownSymbolError) Error() string {
	return fmt.Sprintf("symbol %v at index %d has no Huffman code", err.Symbol, err.Index)
}

// TruncatedStreamError is returned by Decode when the encoded stream ends in
// the middle of a code.
type TruncatedStreamError struct {
	// Size is the total number of bits in the stream.
	Size int

	// Pending is the number of bits of the incomplete final code.
	Pending int
}

// Error fulfills the error interface.
func (err TruncatedStreamError) Error() string {
	return fmt.Sprintf("truncated Huffman stream: %d bits end with %d bits of an incomplete code", err.Size, err.Pending)
}

// CorruptStreamError is returned when an encoded stream holds a bit that
// cannot be valid at its position.
type CorruptStreamError struct {
	// Offset is the index of the offending bit.
	Offset int

	Reason string
}

// Error fulfills the error interface.
func (err CorruptStreamError) Error() string {
	return fmt.Sprintf("corrupt Huffman stream at bit %d: %s", err.Offset, err.Reason)
}

// MalformedTreeError is returned by DeserializeTree when its input does not
// describe a valid tree.
type MalformedTreeError struct {
	// Offset is the byte offset at which parsing failed.
	Offset int

	Reason string
}

// Error fulfills the error interface.
func (err MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed Huffman tree at byte %d: %s", err.Offset, err.Reason)
}

var (
	_ error = EmptyInputError{}
	_ error = InvalidSymbolError{}
	_ error = UnknownSymbolError{}
	_ error = TruncatedStreamError{}
	_ error = CorruptStreamError{}
	_ error = MalformedTreeError{}
)
