package mechconf

import (
	"strings"

	"github.com/reoring/mechconf/document"
)

var phaseSchema = Schema{Required: []string{keyName, keySpecies}}

// parsePhases reads the phases sequence against the declared species. A
// phase naming an unknown species is still recorded with its known members.
// Repeated names are checked across every entry, as for species.
func parsePhases(n *document.Node, p PathRef, species []Species) ([]Phase, Issues) {
	var iss Issues
	if !n.IsSequence() {
		return nil, Issues{p.Issue(n, InvalidType, "expected a sequence, got %s", n.Kind())}
	}
	known := make(map[string]struct{}, len(species))
	for _, s := range species {
		known[s.Name] = struct{}{}
	}
	out := make([]Phase, 0, n.Len())
	for i, item := range n.Items() {
		ph, ok, more := parseOnePhase(item, p.Index(i), known)
		iss = AppendIssues(iss, more...)
		if ok {
			out = append(out, ph)
		}
	}
	if dups := duplicates(entryNames(n)); len(dups) > 0 {
		iss = AppendIssues(iss, p.Issue(n, DuplicatePhasesDetected, "duplicate phases: %s", strings.Join(dups, ", ")))
	}
	return out, iss
}

func parseOnePhase(n *document.Node, p PathRef, known map[string]struct{}) (Phase, bool, Issues) {
	r := NewReader(n, p, phaseSchema)
	ph := Phase{
		Name:    r.OptionalString(keyName, ""),
		Unknown: UnknownProperties(n),
	}
	if r.Failed() {
		return Phase{}, false, r.Issues()
	}
	list, _ := n.Get(keySpecies)
	lp := p.Field(keySpecies)
	if !list.IsSequence() {
		r.Add(lp.Issue(list, InvalidType, "%s: expected a sequence, got %s", keySpecies, list.Kind()))
		return Phase{}, false, r.Issues()
	}
	// unknown members are reported but do not drop the phase
	var missing Issues
	for i, item := range list.Items() {
		name, err := item.AsString()
		if err != nil {
			r.Add(lp.Index(i).Issue(item, InvalidType, "%s[%d]: %v", keySpecies, i, err))
			continue
		}
		if _, ok := known[name]; !ok {
			missing = AppendIssues(missing, lp.Index(i).Issue(item, PhaseRequiresUnknownSpecies, "unknown species %q", name))
			continue
		}
		ph.Species = append(ph.Species, name)
	}
	if r.Failed() {
		return Phase{}, false, AppendIssues(r.Issues(), missing...)
	}
	return ph, true, missing
}
