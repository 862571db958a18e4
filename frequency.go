package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// FrequencyTable maps each Symbol to the number of times it occurs.
type FrequencyTable map[Symbol]uint64

// CountFrequencies counts the occurrences of each Symbol in input.  An empty
// input yields an empty (but non-nil) table.
func CountFrequencies(input []Symbol) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, symbol := range input {
		freqs[symbol]++
	}
	return freqs
}

// Total returns the sum of all counts, i.e. the length of the counted input.
func (freqs FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range freqs {
		sum += count
	}
	return sum
}

// SymbolCount is one row of FrequencyTable.Sorted.
type SymbolCount struct {
	Symbol Symbol
	Count  uint64
}

// Sorted lists the table's entries from most to least frequent.  Symbols
// with equal counts are listed in ascending order.
func (freqs FrequencyTable) Sorted() []SymbolCount {
	out := make(byCount, 0, len(freqs))
	for symbol, count := range freqs {
		out = append(out, SymbolCount{symbol, count})
	}
	sort.Sort(out)
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.  Entries are listed in Symbol order.
func (freqs FrequencyTable) Dump(w io.Writer) (int64, error) {
	symbols := make(bySymbol, 0, len(freqs))
	for symbol := range freqs {
		symbols = append(symbols, symbol)
	}
	sort.Sort(symbols)

	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\t%v: %d\n", symbol, freqs[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCount {{{

type byCount []SymbolCount

func (list byCount) Len() int {
	return len(list)
}

func (list byCount) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCount) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Symbol < b.Symbol
}

var _ sort.Interface = byCount(nil)

// }}}
