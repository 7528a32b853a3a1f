// Package document turns YAML or JSON bytes into a read-only, order-preserving
// tree of *Node values.
//
// The tree is the only view mechanism parsers get of their input: typed reads
// (AsString, AsFloat, AsBool) return *TypeError instead of panicking, and
// mapping keys are reported in the order the author wrote them so diagnostics
// and pass-through metadata stay reproducible.
//
//	n, err := document.Load("mechanism.yaml")
//	species, ok := n.Get("species")
package document
