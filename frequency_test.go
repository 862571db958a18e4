package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountFrequencies(t *testing.T) {
	t.Parallel()

	freqs := CountFrequencies(SymbolsFromString("aabbbc"))
	assert.Equal(t, FrequencyTable{'a': 2, 'b': 3, 'c': 1}, freqs)
	assert.Equal(t, uint64(6), freqs.Total())

	assert.Equal(t, []SymbolCount{
		{'b', 3},
		{'a', 2},
		{'c', 1},
	}, freqs.Sorted())

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\t'a': 2\n",
		"\t'b': 3\n",
		"\t'c': 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = freqs.Dump(&buf)
	assert.Equal(t, expectDump, buf.String())
}

func TestCountFrequencies_Empty(t *testing.T) {
	t.Parallel()

	freqs := CountFrequencies(nil)
	assert.NotNil(t, freqs)
	assert.Empty(t, freqs)
	assert.Equal(t, uint64(0), freqs.Total())
	assert.Empty(t, freqs.Sorted())
}

func TestFrequencyTable_SortedTies(t *testing.T) {
	t.Parallel()

	freqs := FrequencyTable{'z': 2, 'a': 2, 'm': 5, 'b': 1}
	assert.Equal(t, []SymbolCount{
		{'m', 5},
		{'a', 2},
		{'z', 2},
		{'b', 1},
	}, freqs.Sorted())
}

func TestSymbols(t *testing.T) {
	t.Parallel()

	t.Run("bytes", func(t *testing.T) {
		data := []byte{0x00, 'a', 0xff}
		symbols := SymbolsFromBytes(data)
		assert.Equal(t, []Symbol{0, 'a', 0xff}, symbols)

		back, ok := BytesFromSymbols(symbols)
		assert.True(t, ok)
		assert.Equal(t, data, back)

		_, ok = BytesFromSymbols([]Symbol{'世'})
		assert.False(t, ok)
	})

	t.Run("string", func(t *testing.T) {
		str := "héllo, 世界"
		symbols := SymbolsFromString(str)
		assert.Len(t, symbols, 9)
		assert.Equal(t, str, StringFromSymbols(symbols))
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, Symbol(0).IsValid())
		assert.True(t, MaxSymbol.IsValid())
		assert.False(t, (MaxSymbol + 1).IsValid())
		assert.False(t, InvalidSymbol.IsValid())
		assert.False(t, Symbol(0xd800).IsValid())

		assert.Equal(t, "'a'", Symbol('a').String())
		assert.Equal(t, "Symbol(-1)", InvalidSymbol.String())
	})
}
