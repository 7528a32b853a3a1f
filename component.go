package mechconf

import (
	"github.com/reoring/mechconf/document"
)

var componentSchema = Schema{Required: []string{keySpeciesName}, Optional: []string{keyCoefficient}}

// componentRef keeps the source node of a parsed component so later
// cross-reference issues point at it.
type componentRef struct {
	ReactionComponent
	node *document.Node
	path PathRef
}

func plain(refs []componentRef) []ReactionComponent {
	if len(refs) == 0 {
		return nil
	}
	out := make([]ReactionComponent, len(refs))
	for i, c := range refs {
		out[i] = c.ReactionComponent
	}
	return out
}

// components reads the component sequence at key. Malformed elements are
// reported and skipped.
func (r *Reader) components(key string) []componentRef {
	v, ok := r.n.Get(key)
	if !ok {
		return nil
	}
	p := r.p.Field(key)
	if !v.IsSequence() {
		r.Add(p.Issue(v, InvalidType, "%s: expected a sequence, got %s", key, v.Kind()))
		return nil
	}
	var out []componentRef
	for i, item := range v.Items() {
		if c, ok := r.componentAt(item, p.Index(i)); ok {
			out = append(out, c)
		}
	}
	return out
}

// component reads a single component mapping at key.
func (r *Reader) component(key string) (componentRef, bool) {
	v, ok := r.n.Get(key)
	if !ok {
		return componentRef{}, false
	}
	return r.componentAt(v, r.p.Field(key))
}

func (r *Reader) componentAt(n *document.Node, p PathRef) (componentRef, bool) {
	cr := NewReader(n, p, componentSchema)
	name, _ := cr.String(keySpeciesName)
	coef := cr.OptionalFloat(keyCoefficient, 1)
	if coef < 0 {
		v, _ := n.Get(keyCoefficient)
		cr.Add(p.Field(keyCoefficient).Issue(v, InvalidType, "coefficient must be non-negative, got %g", coef))
	}
	r.Add(cr.Issues()...)
	if cr.Failed() {
		return componentRef{}, false
	}
	return componentRef{
		ReactionComponent: ReactionComponent{Species: name, Coefficient: coef, Unknown: UnknownProperties(n)},
		node:              n,
		path:              p,
	}, true
}

// arity enforces the component count of the sequence at key: at least one
// element and no more than limit.
func (r *Reader) arity(key string, limit int) {
	v, ok := r.n.Get(key)
	if !ok || !v.IsSequence() {
		return
	}
	p := r.p.Field(key)
	switch {
	case v.Len() == 0:
		r.Add(p.Issue(v, RequiredKeyNotFound, "%s: at least one component is required", key))
	case v.Len() > limit:
		r.Add(p.Issue(v, TooManyReactionComponents, "%s: at most %d component(s) allowed, got %d", key, limit, v.Len()))
	}
}
