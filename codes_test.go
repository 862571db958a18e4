package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGenerateCodes(t *testing.T) {
	t.Parallel()

	tree, err := BuildTree(FrequencyTable{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45})
	require.NoError(t, err)
	codes := GenerateCodes(tree)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode('a') = \"1100\"\n",
		"\tEncode('b') = \"1101\"\n",
		"\tEncode('c') = \"100\"\n",
		"\tEncode('d') = \"101\"\n",
		"\tEncode('e') = \"111\"\n",
		"\tEncode('f') = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = codes.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestGenerateCodes_Scenario(t *testing.T) {
	t.Parallel()

	freqs := CountFrequencies(SymbolsFromString("aabbbc"))
	tree, err := BuildTree(freqs)
	require.NoError(t, err)
	codes := GenerateCodes(tree)

	assert.Equal(t, 1, codes['b'].Len())
	assert.Equal(t, 2, codes['a'].Len())
	assert.Equal(t, 2, codes['c'].Len())
	assert.Equal(t, uint64(9), codes.Cost(freqs))
}

func TestGenerateCodes_SingleLeaf(t *testing.T) {
	t.Parallel()

	tree, err := BuildTree(FrequencyTable{'a': 4})
	require.NoError(t, err)

	codes := GenerateCodes(tree)
	require.Len(t, codes, 1)
	assert.Equal(t, "0", codes['a'].Text())
	assert.Equal(t, 1, codes.MinSize())
	assert.Equal(t, 1, codes.MaxSize())
}

func TestGenerateCodes_PrefixFree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := symbolsGen(1).Draw(t, "input")
		tree, err := BuildTree(CountFrequencies(input))
		require.NoError(t, err)

		codes := GenerateCodes(tree)
		assert.Equal(t, tree.NumLeaves(), len(codes))
		for a, codeA := range codes {
			assert.NotZero(t, codeA.Len(), "empty code for %v", a)
			for b, codeB := range codes {
				if a == b {
					continue
				}
				assert.False(t, codeA.HasPrefix(codeB),
					"code %v for %v has prefix %v for %v", codeA, a, codeB, b)
			}
		}
	})
}
