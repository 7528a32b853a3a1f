package mechconf

import (
	"slices"

	"github.com/reoring/mechconf/document"
)

// reactionParser builds one reaction variant from a node. A non-empty Issues
// result means the reaction is discarded.
type reactionParser func(n *document.Node, p PathRef, c *catalog) (Reaction, Issues)

// registry maps the strict-format type tag to its parser. The set is closed.
var registry = map[ReactionType]reactionParser{
	TypeArrhenius:                 parseArrhenius,
	TypeCondensedPhaseArrhenius:   parseCondensedPhaseArrhenius,
	TypeTroe:                      parseTroe,
	TypeTernaryChemicalActivation: parseTernaryChemicalActivation,
	TypeBranched:                  parseBranched,
	TypeTunneling:                 parseTunneling,
	TypeSurface:                   parseSurface,
	TypePhotolysis:                parsePhotolysis,
	TypeCondensedPhasePhotolysis:  parseCondensedPhasePhotolysis,
	TypeEmission:                  parseEmission,
	TypeFirstOrderLoss:            parseFirstOrderLoss,
	TypeHenrysLaw:                 parseHenrysLaw,
	TypeWetDeposition:             parseWetDeposition,
	TypeAqueousEquilibrium:        parseAqueousEquilibrium,
	TypeSimpolPhaseTransfer:       parseSimpolPhaseTransfer,
	TypeUserDefined:               parseUserDefined,
}

// ReactionTypes lists the recognised type tags in sorted order.
func ReactionTypes() []ReactionType {
	out := make([]ReactionType, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// parseReaction reads the type tag of n and dispatches. Unknown and missing
// tags are reported like any other issue.
func parseReaction(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	if !n.IsMapping() {
		return nil, Issues{p.Issue(n, InvalidType, "expected a mapping, got %s", n.Kind())}
	}
	tn, ok := n.Get(keyType)
	if !ok {
		return nil, Issues{p.Field(keyType).Issue(n, RequiredKeyNotFound, "required key %q not found", keyType)}
	}
	tag, err := tn.AsString()
	if err != nil {
		return nil, Issues{p.Field(keyType).Issue(tn, InvalidType, "%s: %v", keyType, err)}
	}
	parse, ok := registry[ReactionType(tag)]
	if !ok {
		return nil, Issues{p.Field(keyType).Issue(tn, ObjectTypeNotFound, "unknown reaction type %q", tag)}
	}
	return parse(n, p, c)
}

// parseReactions parses every element of the reactions sequence. Reactions
// with issues are left out of the result.
func parseReactions(n *document.Node, p PathRef, c *catalog) (Reactions, Issues) {
	var out Reactions
	var iss Issues
	if !n.IsSequence() {
		return out, Issues{p.Issue(n, InvalidType, "expected a sequence, got %s", n.Kind())}
	}
	for i, item := range n.Items() {
		rx, i2 := parseReaction(item, p.Index(i), c)
		if len(i2) > 0 {
			iss = AppendIssues(iss, i2...)
			continue
		}
		out.Add(rx)
	}
	return out, iss
}
