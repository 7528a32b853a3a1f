package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind enumerates node kinds of a document tree.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Node is a read-only handle into a parsed document. Mappings keep the key
// order of the source document. Line and Column are 1-based and zero when the
// source format does not report positions.
type Node struct {
	kind   Kind
	value  string // scalar text; "true"/"false" for bools
	keys   []string
	fields map[string]*Node
	items  []*Node
	line   int
	column int
}

// TypeError reports a coercion that the node cannot satisfy.
type TypeError struct {
	Want   Kind
	Got    Kind
	Value  string
	Line   int
	Column int
}

func (e *TypeError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("expected %s, got %s %q", e.Want, e.Got, e.Value)
	}
	return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
}

// Kind returns the node kind. A nil node reports KindNull.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.kind
}

func (n *Node) Line() int {
	if n == nil {
		return 0
	}
	return n.line
}

func (n *Node) Column() int {
	if n == nil {
		return 0
	}
	return n.column
}

// IsMapping reports whether the node is a mapping.
func (n *Node) IsMapping() bool { return n.Kind() == KindMapping }

// IsSequence reports whether the node is a sequence.
func (n *Node) IsSequence() bool { return n.Kind() == KindSequence }

// Keys returns mapping keys in document order. Non-mappings have no keys.
func (n *Node) Keys() []string {
	if n.Kind() != KindMapping {
		return nil
	}
	return append([]string(nil), n.keys...)
}

// Get looks up a mapping key.
func (n *Node) Get(key string) (*Node, bool) {
	if n.Kind() != KindMapping {
		return nil, false
	}
	c, ok := n.fields[key]
	return c, ok
}

// Has reports whether a mapping carries key.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Items returns sequence elements. Non-sequences have no items.
func (n *Node) Items() []*Node {
	if n.Kind() != KindSequence {
		return nil
	}
	return append([]*Node(nil), n.items...)
}

// Len returns the number of mapping entries or sequence elements.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindMapping:
		return len(n.keys)
	case KindSequence:
		return len(n.items)
	default:
		return 0
	}
}

func (n *Node) typeError(want Kind) *TypeError {
	e := &TypeError{Want: want, Got: n.Kind(), Line: n.Line(), Column: n.Column()}
	if n != nil && n.kind != KindMapping && n.kind != KindSequence {
		e.Value = n.value
	}
	return e
}

// AsString returns the text of any scalar. Mappings, sequences and nulls fail.
func (n *Node) AsString() (string, error) {
	switch n.Kind() {
	case KindString, KindNumber, KindBool:
		return n.value, nil
	default:
		return "", n.typeError(KindString)
	}
}

// AsFloat converts numbers, and strings that spell a number, to float64.
func (n *Node) AsFloat() (float64, error) {
	switch n.Kind() {
	case KindNumber, KindString:
		f, err := parseNumber(n.value)
		if err != nil {
			return 0, n.typeError(KindNumber)
		}
		return f, nil
	default:
		return 0, n.typeError(KindNumber)
	}
}

// AsBool converts booleans, and the strings "true"/"false", to bool.
func (n *Node) AsBool() (bool, error) {
	switch n.Kind() {
	case KindBool, KindString:
		switch strings.ToLower(n.value) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, n.typeError(KindBool)
}

// Interface converts the subtree into plain Go values: map[string]any,
// []any, string, float64, bool and nil.
func (n *Node) Interface() any {
	switch n.Kind() {
	case KindMapping:
		m := make(map[string]any, len(n.keys))
		for _, k := range n.keys {
			m[k] = n.fields[k].Interface()
		}
		return m
	case KindSequence:
		arr := make([]any, len(n.items))
		for i, c := range n.items {
			arr[i] = c.Interface()
		}
		return arr
	case KindNumber:
		if f, err := parseNumber(n.value); err == nil {
			return f
		}
		return n.value
	case KindBool:
		return n.value == "true"
	case KindString:
		return n.value
	default:
		return nil
	}
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	// YAML spellings of infinity and not-a-number
	switch strings.ToLower(s) {
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	case ".nan":
		return math.NaN(), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	// YAML 1.1 style integers: 0x1F, 0o17, 1_000
	i, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, err
	}
	return float64(i), nil
}

// ---- construction helpers shared by the builders ----

func newScalar(k Kind, v string, line, col int) *Node {
	return &Node{kind: k, value: v, line: line, column: col}
}

func newMapping(line, col int) *Node {
	return &Node{kind: KindMapping, fields: map[string]*Node{}, line: line, column: col}
}

func newSequence(line, col int) *Node {
	return &Node{kind: KindSequence, line: line, column: col}
}

// set appends a key; the caller rejects duplicates beforehand.
func (n *Node) set(key string, v *Node) {
	n.keys = append(n.keys, key)
	n.fields[key] = v
}

func (n *Node) push(v *Node) { n.items = append(n.items, v) }
