package huffman

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSerializeTree(t *testing.T) {
	t.Parallel()

	tree, err := BuildTree(CountFrequencies(SymbolsFromString("aabbbc")))
	require.NoError(t, err)

	expect := `{"freq":6,"left":{"freq":3,"left":{"ch":"c","freq":1},"right":{"ch":"a","freq":2}},"right":{"ch":"b","freq":3}}`
	assert.Equal(t, expect, string(SerializeTree(tree)))
}

func TestSerializeTree_SingleLeaf(t *testing.T) {
	t.Parallel()

	tree, err := BuildTree(FrequencyTable{'a': 4})
	require.NoError(t, err)
	assert.Equal(t, `{"ch":"a","freq":4}`, string(SerializeTree(tree)))
}

func TestSerializeTree_Escapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		symbol Symbol
		quoted string
	}{
		{'"', `"\""`},
		{'\\', `"\\"`},
		{'\n', `"\n"`},
		{'\r', `"\r"`},
		{'\t', `"\t"`},
		{0, `"\u0000"`},
		{0x1f, `"\u001f"`},
		{'/', `"/"`},
		{0xe9, `"é"`},
		{'😀', `"😀"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.quoted, func(t *testing.T) {
			tree, err := BuildTree(FrequencyTable{tt.symbol: 1})
			require.NoError(t, err)

			data := SerializeTree(tree)
			assert.Equal(t, `{"ch":`+tt.quoted+`,"freq":1}`, string(data))
			assert.True(t, json.Valid(data), "not valid JSON: %s", data)

			back, err := DeserializeTree(data)
			require.NoError(t, err)
			assert.Equal(t, tt.symbol, back.Symbol(back.Root()))
		})
	}
}

func TestDeserializeTree(t *testing.T) {
	t.Parallel()

	tree := makeTestTree(t)

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\t* (7)\n",
		"\t\t* (4)\n",
		"\t\t\t'a' (2)\n",
		"\t\t\t* (2)\n",
		"\t\t\t\t'b' (1)\n",
		"\t\t\t\t'c' (1)\n",
		"\t\t'd' (3)\n",
		"}\n",
	}, "")
	assert.Equal(t, expectDump, dumpTree(tree))
	assert.Equal(t, 4, tree.NumLeaves())
}

func TestDeserializeTree_Whitespace(t *testing.T) {
	t.Parallel()

	data := "{ \"freq\" : 2 ,\n\t\"left\" : { \"ch\" : \"\\u0061\" , \"freq\" : 1 } ,\n\t\"right\" : {\"ch\":\"b\",\"freq\":1}\n}\n"
	tree, err := DeserializeTree([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, `{"freq":2,"left":{"ch":"a","freq":1},"right":{"ch":"b","freq":1}}`, string(SerializeTree(tree)))
}

func TestDeserializeTree_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		offset int
	}{
		{"empty", ``, 0},
		{"not an object", `[]`, 0},
		{"truncated", `{"ch":"a","freq":1`, 18},
		{"missing weight", `{"ch":"a","freq":}`, 17},
		{"bad weight", `{"ch":"a","freq":x1}`, 17},
		{"weight overflow", `{"ch":"a","freq":99999999999999999999}`, 17},
		{"two characters", `{"ch":"ab","freq":1}`, 6},
		{"no characters", `{"ch":"","freq":1}`, 6},
		{"unterminated symbol", `{"ch":"a`, 8},
		{"bad escape", `{"ch":"\q","freq":1}`, 6},
		{"unknown field", `{"sym":"a","freq":1}`, 1},
		{"leaf with children", `{"ch":"a","freq":1,"left":{"ch":"b","freq":1}}`, 18},
		{"internal with symbol", `{"freq":2,"ch":"a"}`, 10},
		{"missing right", `{"freq":1,"left":{"ch":"a","freq":1}}`, 36},
		{"swapped children", `{"freq":2,"right":{"ch":"a","freq":1},"left":{"ch":"b","freq":1}}`, 10},
		{"duplicate symbol", `{"freq":2,"left":{"ch":"a","freq":1},"right":{"ch":"a","freq":1}}`, 51},
		{"trailing data", `{"ch":"a","freq":1}x`, 19},
		{"two trees", `{"ch":"a","freq":1}{"ch":"b","freq":1}`, 19},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := DeserializeTree([]byte(tt.data))
			require.Error(t, err, "got tree %v", tree)

			var malformed MalformedTreeError
			require.True(t, errors.As(err, &malformed), "got %T: %v", err, err)
			assert.Equal(t, tt.offset, malformed.Offset, "error: %v", err)
		})
	}
}

func TestDeserializeTree_TooDeep(t *testing.T) {
	t.Parallel()

	data := strings.Repeat(`{"freq":1,"left":`, MaxTreeDepth+1)
	_, err := DeserializeTree([]byte(data))

	var malformed MalformedTreeError
	require.True(t, errors.As(err, &malformed), "got %T: %v", err, err)
	assert.Contains(t, malformed.Reason, "nested deeper")
}

func TestTree_JSON(t *testing.T) {
	t.Parallel()

	type document struct {
		Name string `json:"name"`
		Tree *Tree  `json:"tree"`
	}

	tree, err := BuildTree(CountFrequencies(SymbolsFromString("abracadabra")))
	require.NoError(t, err)

	raw, err := json.Marshal(document{Name: "abracadabra", Tree: tree})
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "abracadabra", doc.Name)
	require.NotNil(t, doc.Tree)
	assert.True(t, tree.Equal(doc.Tree))
}

func TestSerializeTree_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := symbolsGen(1).Draw(t, "input")
		tree, err := BuildTree(CountFrequencies(input))
		require.NoError(t, err)

		back, err := DeserializeTree(SerializeTree(tree))
		require.NoError(t, err)
		assert.True(t, tree.Equal(back))
		assert.Equal(t, tree.Weight(tree.Root()), back.Weight(back.Root()))

		// A deserialized tree decodes what the original encoded.
		stream, err := Encode(input, GenerateCodes(tree))
		require.NoError(t, err)
		output, err := Decode(stream, back)
		require.NoError(t, err)
		assert.Equal(t, input, output)
	})
}
