package huffman

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// MaxTreeDepth is the deepest nesting DeserializeTree will accept.
const MaxTreeDepth = 1 << 16

// SerializeTree returns a self-delimiting textual encoding of t:
//
//	node            := '{' leaf_fields | internal_fields '}'
//	leaf_fields     := '"ch":' quoted_symbol ',' weight_field
//	internal_fields := weight_field ',' '"left":' node ',' '"right":' node
//	weight_field    := '"freq":' decimal_digits
//
// where quoted_symbol is a JSON string holding exactly one character.  The
// result is valid JSON.
//
func SerializeTree(t *Tree) []byte {
	return t.appendNode(make([]byte, 0, 24*len(t.nodes)), t.root)
}

func (t *Tree) appendNode(buf []byte, id NodeID) []byte {
	n := t.node(id)
	buf = append(buf, '{')
	if n.isLeaf() {
		buf = append(buf, `"ch":`...)
		buf = appendQuotedSymbol(buf, n.symbol)
		buf = append(buf, `,"freq":`...)
		buf = strconv.AppendUint(buf, n.weight, 10)
	} else {
		buf = append(buf, `"freq":`...)
		buf = strconv.AppendUint(buf, n.weight, 10)
		buf = append(buf, `,"left":`...)
		buf = t.appendNode(buf, n.left)
		buf = append(buf, `,"right":`...)
		buf = t.appendNode(buf, n.right)
	}
	return append(buf, '}')
}

const hexDigits = "0123456789abcdef"

func appendQuotedSymbol(buf []byte, symbol Symbol) []byte {
	buf = append(buf, '"')
	switch ch := rune(symbol); {
	case ch == '"' || ch == '\\':
		buf = append(buf, '\\', byte(ch))
	case ch == '\n':
		buf = append(buf, '\\', 'n')
	case ch == '\r':
		buf = append(buf, '\\', 'r')
	case ch == '\t':
		buf = append(buf, '\\', 't')
	case ch < 0x20:
		buf = append(buf, '\\', 'u', '0', '0', hexDigits[ch>>4], hexDigits[ch&0xf])
	default:
		buf = utf8.AppendRune(buf, ch)
	}
	return append(buf, '"')
}

// DeserializeTree parses the output of SerializeTree.  Whitespace between
// tokens is permitted.  Any deviation from the grammar, a leaf symbol that
// appears twice, or nesting deeper than MaxTreeDepth is reported as
// MalformedTreeError.
func DeserializeTree(data []byte) (*Tree, error) {
	p := treeParser{
		data: data,
		tree: &Tree{},
		seen: make(map[Symbol]struct{}),
	}

	root, err := p.parseNode(1)
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.pos != len(p.data) {
		return nil, p.fail("unexpected data after tree")
	}

	p.tree.root = root
	return p.tree, nil
}

// MarshalJSON fulfills json.Marshaler.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return SerializeTree(t), nil
}

// UnmarshalJSON fulfills json.Unmarshaler.
func (t *Tree) UnmarshalJSON(raw []byte) error {
	parsed, err := DeserializeTree(raw)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

var (
	_ json.Marshaler   = (*Tree)(nil)
	_ json.Unmarshaler = (*Tree)(nil)
)

// type treeParser {{{

// treeParser is a recursive-descent parser with one method per production.
type treeParser struct {
	data []byte
	pos  int
	tree *Tree
	seen map[Symbol]struct{}
}

func (p *treeParser) fail(format string, args ...interface{}) error {
	return MalformedTreeError{Offset: p.pos, Reason: fmt.Sprintf(format, args...)}
}

func (p *treeParser) skipSpace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *treeParser) expect(ch byte) error {
	p.skipSpace()
	if p.pos >= len(p.data) {
		return p.fail("unexpected end of input, expected %q", ch)
	}
	if got := p.data[p.pos]; got != ch {
		return p.fail("unexpected %q, expected %q", got, ch)
	}
	p.pos++
	return nil
}

// parseKey parses a field name and the ':' that follows it.
func (p *treeParser) parseKey() (string, error) {
	if err := p.expect('"'); err != nil {
		return "", err
	}
	start := p.pos
	for p.pos < len(p.data) && p.data[p.pos] != '"' {
		p.pos++
	}
	if p.pos >= len(p.data) {
		return "", p.fail("unterminated field name")
	}
	key := string(p.data[start:p.pos])
	p.pos++
	if err := p.expect(':'); err != nil {
		return "", err
	}
	return key, nil
}

func (p *treeParser) expectKey(want string) error {
	start := p.pos
	key, err := p.parseKey()
	if err != nil {
		return err
	}
	if key != want {
		p.pos = start
		p.skipSpace()
		return p.fail("unexpected field %q, expected %q", key, want)
	}
	return nil
}

// parseNode implements: node := '{' leaf_fields | internal_fields '}'
func (p *treeParser) parseNode(depth int) (NodeID, error) {
	if depth > MaxTreeDepth {
		return NoNode, p.fail("tree nested deeper than %d levels", MaxTreeDepth)
	}
	if err := p.expect('{'); err != nil {
		return NoNode, err
	}

	p.skipSpace()
	start := p.pos
	key, err := p.parseKey()
	if err != nil {
		return NoNode, err
	}

	var id NodeID
	switch key {
	case "ch":
		id, err = p.parseLeafFields()
	case "freq":
		id, err = p.parseInternalFields(depth)
	default:
		p.pos = start
		err = p.fail("unexpected field %q, expected \"ch\" or \"freq\"", key)
	}
	if err != nil {
		return NoNode, err
	}

	if err := p.expect('}'); err != nil {
		return NoNode, err
	}
	return id, nil
}

// parseLeafFields implements: leaf_fields := '"ch":' quoted_symbol ',' weight_field
// The "ch" key has already been consumed.
func (p *treeParser) parseLeafFields() (NodeID, error) {
	symbol, err := p.parseQuotedSymbol()
	if err != nil {
		return NoNode, err
	}
	if err := p.expect(','); err != nil {
		return NoNode, err
	}
	if err := p.expectKey("freq"); err != nil {
		return NoNode, err
	}
	weight, err := p.parseWeight()
	if err != nil {
		return NoNode, err
	}
	return p.tree.addLeaf(symbol, weight), nil
}

// parseInternalFields implements:
// internal_fields := weight_field ',' '"left":' node ',' '"right":' node
// The "freq" key has already been consumed.
func (p *treeParser) parseInternalFields(depth int) (NodeID, error) {
	weight, err := p.parseWeight()
	if err != nil {
		return NoNode, err
	}
	if err := p.expect(','); err != nil {
		return NoNode, err
	}
	if err := p.expectKey("left"); err != nil {
		return NoNode, err
	}
	left, err := p.parseNode(depth + 1)
	if err != nil {
		return NoNode, err
	}
	if err := p.expect(','); err != nil {
		return NoNode, err
	}
	if err := p.expectKey("right"); err != nil {
		return NoNode, err
	}
	right, err := p.parseNode(depth + 1)
	if err != nil {
		return NoNode, err
	}
	return p.tree.addInternal(weight, left, right), nil
}

// parseQuotedSymbol parses a JSON string holding exactly one Unicode scalar
// value.
func (p *treeParser) parseQuotedSymbol() (Symbol, error) {
	p.skipSpace()
	start := p.pos
	if err := p.expect('"'); err != nil {
		return InvalidSymbol, err
	}
	for {
		if p.pos >= len(p.data) {
			return InvalidSymbol, p.fail("unterminated symbol")
		}
		ch := p.data[p.pos]
		p.pos++
		if ch == '"' {
			break
		}
		if ch == '\\' {
			p.pos++
		}
	}

	raw := p.data[start:p.pos]
	var str string
	if !utf8.Valid(raw) {
		p.pos = start
		return InvalidSymbol, p.fail("symbol is not valid UTF-8")
	}
	if err := json.Unmarshal(raw, &str); err != nil {
		p.pos = start
		return InvalidSymbol, p.fail("invalid symbol %s: %v", raw, err)
	}

	ch, size := utf8.DecodeRuneInString(str)
	if size == 0 || size != len(str) {
		p.pos = start
		return InvalidSymbol, p.fail("symbol %s must hold exactly one character", raw)
	}

	symbol := Symbol(ch)
	if _, dupe := p.seen[symbol]; dupe {
		p.pos = start
		return InvalidSymbol, p.fail("duplicate symbol %v", symbol)
	}
	p.seen[symbol] = struct{}{}
	return symbol, nil
}

// parseWeight implements: decimal_digits.  The "freq" key has already been
// consumed.
func (p *treeParser) parseWeight() (uint64, error) {
	p.skipSpace()
	start := p.pos
	var weight uint64
	for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
		digit := uint64(p.data[p.pos] - '0')
		if weight > (^uint64(0)-digit)/10 {
			p.pos = start
			return 0, p.fail("weight overflows uint64")
		}
		weight = weight*10 + digit
		p.pos++
	}
	if p.pos == start {
		if p.pos >= len(p.data) {
			return 0, p.fail("unexpected end of input, expected weight")
		}
		return 0, p.fail("unexpected %q, expected weight", p.data[p.pos])
	}
	return weight, nil
}

// }}}
