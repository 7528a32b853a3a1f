package document

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DuplicateKeyError reports a duplicate key found in a mapping with both the
// first occurrence position and the duplicate occurrence position. JSON input
// carries no positions.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("duplicate key %q", e.Key)
	}
	return fmt.Sprintf("duplicate key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// FromYAML decodes the first YAML document of r. An empty stream yields a
// null node. Duplicate mapping keys are rejected.
func FromYAML(r io.Reader) (*Node, error) {
	dec := yaml.NewDecoder(r)
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return newScalar(KindNull, "", 0, 0), nil
		}
		return nil, err
	}
	return fromYAMLNode(&root, 0)
}

// maxAliasDepth bounds alias expansion so a self-referencing anchor terminates.
const maxAliasDepth = 64

func fromYAMLNode(n *yaml.Node, aliasDepth int) (*Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return newScalar(KindNull, "", n.Line, n.Column), nil
		}
		return fromYAMLNode(n.Content[0], aliasDepth)
	case yaml.AliasNode:
		if n.Alias == nil || aliasDepth >= maxAliasDepth {
			return nil, fmt.Errorf("unresolvable alias %q at %d:%d", n.Value, n.Line, n.Column)
		}
		return fromYAMLNode(n.Alias, aliasDepth+1)
	case yaml.MappingNode:
		m := newMapping(n.Line, n.Column)
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			key := k.Value
			if pos, dup := first[key]; dup {
				return nil, &DuplicateKeyError{Key: key, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[key] = [2]int{k.Line, k.Column}
			v, err := fromYAMLNode(n.Content[i+1], aliasDepth)
			if err != nil {
				return nil, err
			}
			m.set(key, v)
		}
		return m, nil
	case yaml.SequenceNode:
		s := newSequence(n.Line, n.Column)
		for _, c := range n.Content {
			v, err := fromYAMLNode(c, aliasDepth)
			if err != nil {
				return nil, err
			}
			s.push(v)
		}
		return s, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return newScalar(KindNull, "", n.Line, n.Column), nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return newScalar(KindString, n.Value, n.Line, n.Column), nil
			}
			if b {
				return newScalar(KindBool, "true", n.Line, n.Column), nil
			}
			return newScalar(KindBool, "false", n.Line, n.Column), nil
		case "!!int", "!!float":
			return newScalar(KindNumber, n.Value, n.Line, n.Column), nil
		default:
			return newScalar(KindString, n.Value, n.Line, n.Column), nil
		}
	default:
		return newScalar(KindNull, "", n.Line, n.Column), nil
	}
}
