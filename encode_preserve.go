package mechconf

import (
	"bytes"
	"fmt"
	"strings"

	j "github.com/goccy/go-json"

	"github.com/reoring/mechconf/document"
)

// unknownPrefix marks pass-through metadata keys that the parser preserves
// without interpreting.
const unknownPrefix = "__"

// IsPassthroughKey reports whether key uses the pass-through metadata prefix.
func IsPassthroughKey(key string) bool { return strings.HasPrefix(key, unknownPrefix) }

// UnknownProperties collects pass-through keys of a mapping in document order.
// Scalars keep their source text and are stored JSON-quoted, so 1.0e-30 is
// kept as "1.0e-30". Sequences and mappings are stored as compact JSON.
func UnknownProperties(n *document.Node) Properties {
	var p Properties
	for _, k := range n.Keys() {
		if !IsPassthroughKey(k) {
			continue
		}
		v, _ := n.Get(k)
		p.Set(k, renderOpaque(v))
	}
	return p
}

func renderOpaque(n *document.Node) string {
	var src any = n.Interface()
	if s, err := n.AsString(); err == nil {
		src = s
	}
	b, err := j.Marshal(src)
	if err != nil {
		// only reachable for values go-json cannot encode (NaN, ±Inf)
		return fmt.Sprint(src)
	}
	return string(b)
}

// marshalOrdered writes a JSON object whose members follow keys.
func marshalOrdered(keys []string, values map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := j.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := j.Marshal(values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
