// Package huffman implements deterministic Huffman coding of in-memory symbol
// streams.
//
// The pipeline is CountFrequencies → BuildTree → GenerateCodes → Encode, and
// Decode reverses Encode given the same Tree.  SerializeTree and
// DeserializeTree convert a Tree to and from a small JSON document so that it
// can be stored next to the encoded data.
//
// Trees are reproducible: ties between subtrees of equal weight are broken
// by the smallest Symbol in each subtree, so the same FrequencyTable always
// yields the same codes.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
