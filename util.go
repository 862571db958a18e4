package huffman

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// addWeights returns the 128-bit sum of ahi:alo and bhi:blo.
func addWeights(ahi, alo, bhi, blo uint64) (hi, lo uint64) {
	lo, carry := mathbits.Add64(alo, blo, 0)
	hi, _ = mathbits.Add64(ahi, bhi, carry)
	return hi, lo
}
