package mechconf

import (
	"strings"

	"github.com/reoring/mechconf/document"
)

// numericSpeciesProps are the species keys stored in Species.Properties.
var numericSpeciesProps = []string{
	PropMolecularWeight,
	PropHenrysLawConstant,
	PropHenrysLawExponential,
	PropDiffusionCoefficient,
	PropNStar,
	PropDensity,
	PropConstantConcentration,
	PropConstantMixingRatio,
}

var speciesSchema = Schema{
	Required: []string{keyName},
	Optional: append([]string{keyTracerType, keyIsThirdBody}, numericSpeciesProps...),
}

// parseSpecies reads the species sequence. Records with issues are skipped.
// Every entry with a readable name takes part in the repeat check, valid or
// not.
func parseSpecies(n *document.Node, p PathRef) ([]Species, Issues) {
	var iss Issues
	if !n.IsSequence() {
		return nil, Issues{p.Issue(n, InvalidType, "expected a sequence, got %s", n.Kind())}
	}
	out := make([]Species, 0, n.Len())
	for i, item := range n.Items() {
		s, more := parseOneSpecies(item, p.Index(i))
		if len(more) > 0 {
			iss = AppendIssues(iss, more...)
			continue
		}
		out = append(out, s)
	}
	if dups := duplicates(entryNames(n)); len(dups) > 0 {
		iss = AppendIssues(iss, p.Issue(n, DuplicateSpeciesDetected, "duplicate species: %s", strings.Join(dups, ", ")))
	}
	return out, iss
}

func parseOneSpecies(n *document.Node, p PathRef) (Species, Issues) {
	r := NewReader(n, p, speciesSchema)
	s := Species{
		Name:        r.OptionalString(keyName, ""),
		TracerType:  r.OptionalString(keyTracerType, ""),
		IsThirdBody: r.OptionalBool(keyIsThirdBody, false),
		Unknown:     UnknownProperties(n),
	}
	for _, k := range numericSpeciesProps {
		f, ok := r.Float(k)
		if !ok {
			continue
		}
		if s.Properties == nil {
			s.Properties = map[string]float64{}
		}
		s.Properties[k] = f
	}
	return s, r.Issues()
}

// entryNames collects the name of every mapping in seq whose name key is
// readable as a string.
func entryNames(seq *document.Node) []string {
	var names []string
	for _, item := range seq.Items() {
		v, ok := item.Get(keyName)
		if !ok {
			continue
		}
		if name, err := v.AsString(); err == nil {
			names = append(names, name)
		}
	}
	return names
}

// duplicates returns every name that occurs more than once, in order of
// first repetition.
func duplicates(names []string) []string {
	seen := make(map[string]int, len(names))
	var out []string
	for _, name := range names {
		seen[name]++
		if seen[name] == 2 {
			out = append(out, name)
		}
	}
	return out
}
