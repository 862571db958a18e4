package huffman

import (
	"sort"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Symbol represents a symbol in the input alphabet: either a byte or a
// Unicode code point, depending on how the caller splits its input.
//
// Symbols are ordered by their integer value.  Only Unicode scalar values are
// valid; see IsValid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is a Unicode scalar value, i.e. it is
// in the range [0, MaxSymbol] and is not a surrogate half.
func (s Symbol) IsValid() bool {
	return utf8.ValidRune(rune(s))
}

// String returns a quoted representation of this Symbol.
func (s Symbol) String() string {
	if !s.IsValid() {
		return "Symbol(" + strconv.FormatInt(int64(s), 10) + ")"
	}
	return strconv.QuoteRune(rune(s))
}

// SymbolsFromBytes returns one Symbol per byte of data.
func SymbolsFromBytes(data []byte) []Symbol {
	out := make([]Symbol, len(data))
	for i, b := range data {
		out[i] = Symbol(b)
	}
	return out
}

// SymbolsFromString returns one Symbol per rune of str.  Invalid UTF-8
// sequences become utf8.RuneError, as with a range loop.
func SymbolsFromString(str string) []Symbol {
	out := make([]Symbol, 0, utf8.RuneCountInString(str))
	for _, ch := range str {
		out = append(out, Symbol(ch))
	}
	return out
}

// BytesFromSymbols is the inverse of SymbolsFromBytes.  It returns false if
// any symbol is outside the byte range.
func BytesFromSymbols(symbols []Symbol) ([]byte, bool) {
	out := make([]byte, len(symbols))
	for i, s := range symbols {
		if s < 0 || s > 0xff {
			return nil, false
		}
		out[i] = byte(s)
	}
	return out, true
}

// StringFromSymbols is the inverse of SymbolsFromString.
func StringFromSymbols(symbols []Symbol) string {
	buf := make([]byte, 0, len(symbols))
	for _, s := range symbols {
		buf = utf8.AppendRune(buf, rune(s))
	}
	return string(buf)
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
