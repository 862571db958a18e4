package main

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/chronos-tachyon/huffman/v2"
)

// unit selects how file contents are split into symbols.
type unit int

const (
	unitRune unit = iota
	unitByte
)

func (u unit) String() string {
	switch u {
	case unitRune:
		return "rune"
	case unitByte:
		return "byte"
	default:
		return "unit(" + strconv.Itoa(int(u)) + ")"
	}
}

func (u *unit) Set(s string) error {
	switch s {
	case "rune":
		*u = unitRune
	case "byte":
		*u = unitByte
	default:
		return fmt.Errorf("unknown unit %q: expected 'rune' or 'byte'", s)
	}
	return nil
}

var errNotUTF8 = errors.New("input is not valid UTF-8; use -unit byte")

// Split converts file contents into symbols.
func (u unit) Split(data []byte) ([]huffman.Symbol, error) {
	if u == unitByte {
		return huffman.SymbolsFromBytes(data), nil
	}
	if !utf8.Valid(data) {
		return nil, errNotUTF8
	}
	return huffman.SymbolsFromString(string(data)), nil
}

// Join converts decoded symbols back into file contents.
func (u unit) Join(symbols []huffman.Symbol) ([]byte, error) {
	if u == unitByte {
		data, ok := huffman.BytesFromSymbols(symbols)
		if !ok {
			return nil, errors.New("decoded symbols do not fit in bytes; use -unit rune")
		}
		return data, nil
	}
	return []byte(huffman.StringFromSymbols(symbols)), nil
}

// Format renders a symbol for display.
func (u unit) Format(symbol huffman.Symbol) string {
	if u == unitByte && symbol >= utf8.RuneSelf {
		return fmt.Sprintf("0x%02x", int32(symbol))
	}
	return strconv.QuoteRune(rune(symbol))
}
