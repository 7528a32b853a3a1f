package mechconf

import (
	"log/slog"
)

// Options bundles parsing options for the strict format.
type Options struct {
	// FailFast stops after the first stage (species, phases, reactions)
	// that produced issues. The default collects everything.
	FailFast bool
	// Logger receives debug records per parse stage. Nil means slog.Default().
	Logger *slog.Logger
}

func normalizeOpts(opts []Options) Options {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	return opt
}

// Properties is an insertion-ordered string map holding pass-through
// metadata. The zero value is ready to use.
type Properties struct {
	keys   []string
	values map[string]string
}

// Set stores v under k. Re-setting a key keeps its original position.
func (p *Properties) Set(k, v string) {
	if p.values == nil {
		p.values = map[string]string{}
	}
	if _, ok := p.values[k]; !ok {
		p.keys = append(p.keys, k)
	}
	p.values[k] = v
}

func (p Properties) Get(k string) (string, bool) {
	v, ok := p.values[k]
	return v, ok
}

// Keys returns keys in insertion order.
func (p Properties) Keys() []string { return append([]string(nil), p.keys...) }

func (p Properties) Len() int { return len(p.keys) }

// Map copies the entries into a plain map.
func (p Properties) Map() map[string]string {
	out := make(map[string]string, len(p.keys))
	for _, k := range p.keys {
		out[k] = p.values[k]
	}
	return out
}

// MarshalJSON emits entries in insertion order.
func (p Properties) MarshalJSON() ([]byte, error) {
	return marshalOrdered(p.keys, p.values)
}
