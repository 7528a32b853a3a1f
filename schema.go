package mechconf

import (
	"slices"

	"github.com/reoring/mechconf/document"
)

// Schema declares the keys a record may carry. Keys with the pass-through
// prefix are always allowed.
type Schema struct {
	Required []string
	Optional []string
}

func (s Schema) allows(key string) bool {
	return slices.Contains(s.Required, key) || slices.Contains(s.Optional, key) || IsPassthroughKey(key)
}

// ValidateSchema checks the keys of n against required and optional. Every
// present key outside both sets produces an InvalidKey issue, in document
// order; every absent required key produces a RequiredKeyNotFound issue, in
// the order given. A non-mapping node produces a single InvalidType issue.
func ValidateSchema(n *document.Node, p PathRef, required, optional []string) Issues {
	return Schema{Required: required, Optional: optional}.Validate(n, p)
}

// Validate implements ValidateSchema for s.
func (s Schema) Validate(n *document.Node, p PathRef) Issues {
	if !n.IsMapping() {
		return Issues{p.Issue(n, InvalidType, "expected a mapping, got %s", n.Kind())}
	}
	var iss Issues
	for _, k := range n.Keys() {
		if s.allows(k) {
			continue
		}
		v, _ := n.Get(k)
		iss = AppendIssues(iss, p.Field(k).Issue(v, InvalidKey, "invalid key %q", k))
	}
	for _, k := range s.Required {
		if !n.Has(k) {
			iss = AppendIssues(iss, p.Field(k).Issue(n, RequiredKeyNotFound, "required key %q not found", k))
		}
	}
	return iss
}

// ---- typed reads that record issues instead of returning errors ----

// Reader reads fields of one record and accumulates the issues found. Absent
// keys are not reported by the typed reads; the schema check owns that.
type Reader struct {
	n   *document.Node
	p   PathRef
	iss Issues
}

// NewReader validates n against s and returns a Reader primed with the
// resulting issues.
func NewReader(n *document.Node, p PathRef, s Schema) *Reader {
	return &Reader{n: n, p: p, iss: s.Validate(n, p)}
}

func (r *Reader) Node() *document.Node { return r.n }
func (r *Reader) Path() PathRef        { return r.p }
func (r *Reader) Issues() Issues       { return r.iss }

// Add records more issues.
func (r *Reader) Add(more ...Issue) { r.iss = AppendIssues(r.iss, more...) }

// Failed reports whether any issue was recorded.
func (r *Reader) Failed() bool { return len(r.iss) > 0 }

func (r *Reader) typeIssue(key string, v *document.Node, err error) {
	r.Add(Issue{
		Status:  InvalidType,
		Path:    r.p.Field(key).Pointer(),
		Message: key + ": " + err.Error(),
		Line:    v.Line(),
		Column:  v.Column(),
		Cause:   err,
	})
}

// String returns the scalar at key as text and whether a usable value was
// present.
func (r *Reader) String(key string) (string, bool) {
	v, ok := r.n.Get(key)
	if !ok {
		return "", false
	}
	s, err := v.AsString()
	if err != nil {
		r.typeIssue(key, v, err)
		return "", false
	}
	return s, true
}

func (r *Reader) OptionalString(key, def string) string {
	if s, ok := r.String(key); ok {
		return s
	}
	return def
}

func (r *Reader) Float(key string) (float64, bool) {
	v, ok := r.n.Get(key)
	if !ok {
		return 0, false
	}
	f, err := v.AsFloat()
	if err != nil {
		r.typeIssue(key, v, err)
		return 0, false
	}
	return f, true
}

func (r *Reader) OptionalFloat(key string, def float64) float64 {
	if f, ok := r.Float(key); ok {
		return f
	}
	return def
}

func (r *Reader) OptionalBool(key string, def bool) bool {
	v, ok := r.n.Get(key)
	if !ok {
		return def
	}
	b, err := v.AsBool()
	if err != nil {
		r.typeIssue(key, v, err)
		return def
	}
	return b
}

// Exclusive records MutuallyExclusiveOption when both keys are present and
// reports whether the pair is acceptable.
func (r *Reader) Exclusive(a, b string) bool {
	if r.n.Has(a) && r.n.Has(b) {
		v, _ := r.n.Get(b)
		r.Add(r.p.Field(b).Issue(v, MutuallyExclusiveOption, "%q and %q are mutually exclusive", a, b))
		return false
	}
	return true
}

// ArrheniusC reads the C parameter, accepting Ea (activation energy, J) as an
// alternative spelling converted with C = -Ea / k_B.
func (r *Reader) ArrheniusC(cKey, eaKey string) float64 {
	if !r.Exclusive(cKey, eaKey) {
		return 0
	}
	if ea, ok := r.Float(eaKey); ok {
		return -ea / BoltzmannConstant
	}
	return r.OptionalFloat(cKey, 0)
}
