// Package mechconf parses chemical mechanism configurations into a typed
// Mechanism.
//
// A strict-format document (major version 1, YAML or JSON) declares species,
// phases and reactions. Parsing validates each record against its key schema,
// dispatches reactions on their type tag and checks every species and phase
// reference. Problems are reported as Issues: a JSON Pointer, a Status code
// and a message, with the source line and column when the input is YAML.
//
// Parsing collects everything it finds by default. The Mechanism in the
// Result carries whatever parsed cleanly, so callers can inspect partial
// output while fixing a document.
//
// Typical usage:
//
//	res := mechconf.Parse("mechanism.yaml")
//	if !res.OK() {
//		for _, it := range res.Errors {
//			fmt.Println(it)
//		}
//	}
//
// Keys prefixed with "__" are carried through untouched on the owning record
// (see UnknownProperties). The legacy multi-file format lives in the legacy
// subpackage.
package mechconf
