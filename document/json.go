package document

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// ErrEmptyDocument is returned when a JSON stream holds no value.
var ErrEmptyDocument = errors.New("document: empty JSON document")

// ErrTrailingData is returned when anything but whitespace follows the
// top-level JSON value.
var ErrTrailingData = errors.New("document: data after top-level JSON value")

type frame struct {
	node         *Node
	expectingKey bool
	pendingKey   string
	seen         map[string]struct{}
}

// FromJSON decodes a single JSON value from r through the go-json token
// stream so that object key order survives. Numbers keep their source text.
// Duplicate object keys are rejected.
func FromJSON(r io.Reader) (*Node, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()

	var stack []*frame
	var root *Node

	// attach places a completed value into the enclosing container or makes
	// it the root.
	attach := func(v *Node) {
		if len(stack) == 0 {
			root = v
			return
		}
		top := stack[len(stack)-1]
		if top.node.kind == KindSequence {
			top.node.push(v)
			return
		}
		top.node.set(top.pendingKey, v)
		top.expectingKey = true
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(stack) > 0 {
					return nil, io.ErrUnexpectedEOF
				}
				if root == nil {
					return nil, ErrEmptyDocument
				}
				return root, nil
			}
			return nil, err
		}

		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				stack = append(stack, &frame{node: newMapping(0, 0), expectingKey: true, seen: map[string]struct{}{}})
			case '[':
				stack = append(stack, &frame{node: newSequence(0, 0)})
			case '}', ']':
				if len(stack) == 0 {
					return nil, fmt.Errorf("document: unexpected %q", rune(v))
				}
				done := stack[len(stack)-1].node
				stack = stack[:len(stack)-1]
				attach(done)
			}
		case string:
			if n := len(stack); n > 0 {
				top := stack[n-1]
				if top.node.kind == KindMapping && top.expectingKey {
					if _, dup := top.seen[v]; dup {
						return nil, &DuplicateKeyError{Key: v}
					}
					top.seen[v] = struct{}{}
					top.pendingKey = v
					top.expectingKey = false
					continue
				}
			}
			attach(newScalar(KindString, v, 0, 0))
		case j.Number:
			attach(newScalar(KindNumber, string(v), 0, 0))
		case float64:
			attach(newScalar(KindNumber, strconv.FormatFloat(v, 'g', -1, 64), 0, 0))
		case bool:
			s := "false"
			if v {
				s = "true"
			}
			attach(newScalar(KindBool, s, 0, 0))
		case nil:
			attach(newScalar(KindNull, "", 0, 0))
		}

		if len(stack) == 0 && root != nil {
			if _, err := dec.Token(); !errors.Is(err, io.EOF) {
				return nil, ErrTrailingData
			}
			return root, nil
		}
	}
}
