package legacy

import (
	"github.com/reoring/mechconf"
	"github.com/reoring/mechconf/document"
)

// Legacy record keys.
const (
	keyType          = "type"
	keyName          = "name"
	keyMusicaName    = "MUSICA name"
	keyReactions     = "reactions"
	keyReactants     = "reactants"
	keyProducts      = "products"
	keySpecies       = "species"
	keyValue         = "value"
	keyQty           = "qty"
	keyYield         = "yield"
	keyScalingFactor = "scaling factor"

	keyTracerType      = "tracer type"
	keyAbsoluteTol     = "absolute tolerance"
	keyDiffusionCoeff  = "diffusion coefficient [m2 s-1]"
	keyMolecularWeight = "molecular weight [kg mol-1]"

	keyGasPhaseReactant    = "gas-phase reactant"
	keyGasPhaseProducts    = "gas-phase products"
	keyReactionProbability = "reaction probability"
	keyNitrateProducts     = "nitrate products"
	keyAlkoxyProducts      = "alkoxy products"

	keyA, keyB, keyC, keyD, keyE, keyEa = "A", "B", "C", "D", "E", "Ea"

	keyK0A, keyK0B, keyK0C       = "k0_A", "k0_B", "k0_C"
	keyKinfA, keyKinfB, keyKinfC = "kinf_A", "kinf_B", "kinf_C"
	keyFc, keyN                  = "Fc", "N"

	keyX, keyY, keyA0, keyBranchN = "X", "Y", "a0", "n"
)

// GasPhase is the single phase every legacy species belongs to.
const GasPhase = "GAS"

// thirdBody is the tracer type marking a third-body species.
const thirdBody = "THIRD_BODY"

var (
	speciesSchema = mechconf.Schema{
		Required: []string{keyName, keyType},
		Optional: []string{keyTracerType, keyAbsoluteTol, keyDiffusionCoeff, keyMolecularWeight},
	}
	toleranceSchema = mechconf.Schema{Required: []string{keyValue, keyType}}
	mechanismSchema = mechconf.Schema{Required: []string{keyName, keyReactions, keyType}}

	arrheniusSchema = mechconf.Schema{
		Required: []string{keyReactants, keyProducts, keyType},
		Optional: []string{keyA, keyB, keyC, keyD, keyE, keyEa, keyMusicaName},
	}
	troeSchema = mechconf.Schema{
		Required: []string{keyReactants, keyProducts, keyType},
		Optional: []string{keyK0A, keyK0B, keyK0C, keyKinfA, keyKinfB, keyKinfC, keyFc, keyN, keyMusicaName},
	}
	branchedSchema = mechconf.Schema{
		Required: []string{keyReactants, keyNitrateProducts, keyAlkoxyProducts, keyX, keyY, keyA0, keyBranchN, keyType},
		Optional: []string{keyMusicaName},
	}
	tunnelingSchema = mechconf.Schema{
		Required: []string{keyReactants, keyProducts, keyType},
		Optional: []string{keyA, keyB, keyC, keyMusicaName},
	}
	surfaceSchema = mechconf.Schema{
		Required: []string{keyGasPhaseReactant, keyGasPhaseProducts, keyMusicaName, keyType},
		Optional: []string{keyReactionProbability},
	}
	scaledSchema = mechconf.Schema{
		Required: []string{keyReactants, keyProducts, keyMusicaName, keyType},
		Optional: []string{keyScalingFactor},
	}
	singleSpeciesSchema = mechconf.Schema{
		Required: []string{keySpecies, keyMusicaName, keyType},
		Optional: []string{keyScalingFactor},
	}
	qtySchema   = mechconf.Schema{Optional: []string{keyQty}}
	yieldSchema = mechconf.Schema{Optional: []string{keyYield}}
)

// speciesProps maps legacy numeric species keys to Species.Properties keys.
var speciesProps = [][2]string{
	{keyAbsoluteTol, mechconf.PropAbsoluteTolerance},
	{keyDiffusionCoeff, mechconf.PropDiffusionCoefficient},
	{keyMolecularWeight, mechconf.PropMolecularWeight},
}

// state is the mechanism under construction while one Parse call runs.
type state struct {
	m       *mechconf.Mechanism
	species map[string]struct{}
}

func newState() *state {
	return &state{m: &mechconf.Mechanism{}, species: map[string]struct{}{}}
}

func (s *state) known(name string) bool {
	_, ok := s.species[name]
	return ok
}

func parseChemSpec(s *state, n *document.Node, p mechconf.PathRef) mechconf.Issues {
	r := mechconf.NewReader(n, p, speciesSchema)
	sp := mechconf.Species{
		Name:       r.OptionalString(keyName, ""),
		TracerType: r.OptionalString(keyTracerType, ""),
		Unknown:    mechconf.UnknownProperties(n),
	}
	sp.IsThirdBody = sp.TracerType == thirdBody
	for _, kp := range speciesProps {
		if f, ok := r.Float(kp[0]); ok {
			if sp.Properties == nil {
				sp.Properties = map[string]float64{}
			}
			sp.Properties[kp[1]] = f
		}
	}
	if r.Failed() {
		return r.Issues()
	}
	if s.known(sp.Name) {
		v, _ := n.Get(keyName)
		return mechconf.Issues{p.Field(keyName).Issue(v, mechconf.DuplicateSpeciesDetected, "duplicate species %q", sp.Name)}
	}
	s.species[sp.Name] = struct{}{}
	s.m.Species = append(s.m.Species, sp)
	return nil
}

func parseRelativeTolerance(s *state, n *document.Node, p mechconf.PathRef) mechconf.Issues {
	r := mechconf.NewReader(n, p, toleranceSchema)
	v, _ := r.Float(keyValue)
	if r.Failed() {
		return r.Issues()
	}
	s.m.RelativeTolerance = v
	return nil
}

// components reads a legacy component map, {species: {amountKey: n}}, in
// document order. Every species must already be declared.
func (s *state) components(r *mechconf.Reader, key, amountKey string) []mechconf.ReactionComponent {
	v, ok := r.Node().Get(key)
	if !ok {
		return nil
	}
	p := r.Path().Field(key)
	if !v.IsMapping() {
		r.Add(p.Issue(v, mechconf.InvalidType, "%s: expected a mapping, got %s", key, v.Kind()))
		return nil
	}
	schema := qtySchema
	if amountKey == keyYield {
		schema = yieldSchema
	}
	var out []mechconf.ReactionComponent
	for _, name := range v.Keys() {
		item, _ := v.Get(name)
		cp := p.Field(name)
		if !s.known(name) {
			r.Add(cp.Issue(item, mechconf.ReactionRequiresUnknownSpecies, "unknown species %q", name))
		}
		c := mechconf.ReactionComponent{Species: name, Coefficient: 1}
		if item.Kind() != document.KindNull {
			cr := mechconf.NewReader(item, cp, schema)
			c.Coefficient = cr.OptionalFloat(amountKey, 1)
			c.Unknown = mechconf.UnknownProperties(item)
			r.Add(cr.Issues()...)
		}
		out = append(out, c)
	}
	return out
}

// speciesRef reads a single species name at key and checks it is declared.
func (s *state) speciesRef(r *mechconf.Reader, key string) mechconf.ReactionComponent {
	name, ok := r.String(key)
	if !ok {
		return mechconf.ReactionComponent{}
	}
	if !s.known(name) {
		v, _ := r.Node().Get(key)
		r.Add(r.Path().Field(key).Issue(v, mechconf.ReactionRequiresUnknownSpecies, "unknown species %q", name))
	}
	return mechconf.ReactionComponent{Species: name, Coefficient: 1}
}

func parseArrhenius(s *state, n *document.Node, p mechconf.PathRef) mechconf.Issues {
	r := mechconf.NewReader(n, p, arrheniusSchema)
	rx := mechconf.Arrhenius{
		Name:      r.OptionalString(keyMusicaName, ""),
		GasPhase:  GasPhase,
		Reactants: s.components(r, keyReactants, keyQty),
		Products:  s.components(r, keyProducts, keyYield),
		A:         r.OptionalFloat(keyA, 1),
		B:         r.OptionalFloat(keyB, 0),
		C:         r.ArrheniusC(keyC, keyEa),
		D:         r.OptionalFloat(keyD, 300),
		E:         r.OptionalFloat(keyE, 0),
		Unknown:   mechconf.UnknownProperties(n),
	}
	return s.add(r, rx)
}

func readTroe(s *state, n *document.Node, p mechconf.PathRef) (*mechconf.Reader, mechconf.Troe) {
	r := mechconf.NewReader(n, p, troeSchema)
	return r, mechconf.Troe{
		Name:      r.OptionalString(keyMusicaName, ""),
		GasPhase:  GasPhase,
		Reactants: s.components(r, keyReactants, keyQty),
		Products:  s.components(r, keyProducts, keyYield),
		K0A:       r.OptionalFloat(keyK0A, 1),
		K0B:       r.OptionalFloat(keyK0B, 0),
		K0C:       r.OptionalFloat(keyK0C, 0),
		KinfA:     r.OptionalFloat(keyKinfA, 1),
		KinfB:     r.OptionalFloat(keyKinfB, 0),
		KinfC:     r.OptionalFloat(keyKinfC, 0),
		Fc:        r.OptionalFloat(keyFc, 0.6),
		N:         r.OptionalFloat(keyN, 1),
		Unknown:   mechconf.UnknownProperties(n),
	}
}

func parseTroe(s *state, n *document.Node, p mechconf.PathRef) mechconf.Issues {
	r, rx := readTroe(s, n, p)
	return s.add(r, rx)
}

func parseTernaryChemicalActivation(s *state, n *document.Node, p mechconf.PathRef) mechconf.Issues {
	r, t := readTroe(s, n, p)
	return s.add(r, mechconf.TernaryChemicalActivation(t))
}

func parseBranched(s *state, n *document.Node, p mechconf.PathRef) mechconf.Issues {
	r := mechconf.NewReader(n, p, branchedSchema)
	rx := mechconf.Branched{
		Name:            r.OptionalString(keyMusicaName, ""),
		GasPhase:        GasPhase,
		Reactants:       s.components(r, keyReactants, keyQty),
		NitrateProducts: s.components(r, keyNitrateProducts, keyYield),
		AlkoxyProducts:  s.components(r, keyAlkoxyProducts, keyYield),
		X:               r.OptionalFloat(keyX, 1),
		Y:               r.OptionalFloat(keyY, 0),
		A0:              r.OptionalFloat(keyA0, 1),
		N:               r.OptionalFloat(keyBranchN, 0),
		Unknown:         mechconf.UnknownProperties(n),
	}
	return s.add(r, rx)
}

func parseTunneling(s *state, n *document.Node, p mechconf.PathRef) mechconf.Issues {
	r := mechconf.NewReader(n, p, tunnelingSchema)
	rx := mechconf.Tunneling{
		Name:      r.OptionalString(keyMusicaName, ""),
		GasPhase:  GasPhase,
		Reactants: s.components(r, keyReactants, keyQty),
		Products:  s.components(r, keyProducts, keyYield),
		A:         r.OptionalFloat(keyA, 1),
		B:         r.OptionalFloat(keyB, 0),
		C:         r.OptionalFloat(keyC, 0),
		Unknown:   mechconf.UnknownProperties(n),
	}
	return s.add(r, rx)
}

func parseSurface(s *state, n *document.Node, p mechconf.PathRef) mechconf.Issues {
	r := mechconf.NewReader(n, p, surfaceSchema)
	rx := mechconf.Surface{
		Name:                r.OptionalString(keyMusicaName, ""),
		GasPhase:            GasPhase,
		GasPhaseSpecies:     s.speciesRef(r, keyGasPhaseReactant),
		GasPhaseProducts:    s.components(r, keyGasPhaseProducts, keyYield),
		ReactionProbability: r.OptionalFloat(keyReactionProbability, 1),
		Unknown:             mechconf.UnknownProperties(n),
	}
	return s.add(r, rx)
}

func parsePhotolysis(s *state, n *document.Node, p mechconf.PathRef) mechconf.Issues {
	r := mechconf.NewReader(n, p, scaledSchema)
	rx := mechconf.Photolysis{
		Name:          r.OptionalString(keyMusicaName, ""),
		GasPhase:      GasPhase,
		Reactants:     s.components(r, keyReactants, keyQty),
		Products:      s.components(r, keyProducts, keyYield),
		ScalingFactor: r.OptionalFloat(keyScalingFactor, 1),
		Unknown:       mechconf.UnknownProperties(n),
	}
	if len(rx.Reactants) > 1 {
		v, _ := n.Get(keyReactants)
		r.Add(p.Field(keyReactants).Issue(v, mechconf.TooManyReactionComponents,
			"photolysis takes one reactant, got %d", len(rx.Reactants)))
	}
	return s.add(r, rx)
}

func parseEmission(s *state, n *document.Node, p mechconf.PathRef) mechconf.Issues {
	r := mechconf.NewReader(n, p, singleSpeciesSchema)
	rx := mechconf.Emission{
		Name:          r.OptionalString(keyMusicaName, ""),
		GasPhase:      GasPhase,
		Products:      []mechconf.ReactionComponent{s.speciesRef(r, keySpecies)},
		ScalingFactor: r.OptionalFloat(keyScalingFactor, 1),
		Unknown:       mechconf.UnknownProperties(n),
	}
	return s.add(r, rx)
}

func parseFirstOrderLoss(s *state, n *document.Node, p mechconf.PathRef) mechconf.Issues {
	r := mechconf.NewReader(n, p, singleSpeciesSchema)
	rx := mechconf.FirstOrderLoss{
		Name:          r.OptionalString(keyMusicaName, ""),
		GasPhase:      GasPhase,
		Reactants:     []mechconf.ReactionComponent{s.speciesRef(r, keySpecies)},
		ScalingFactor: r.OptionalFloat(keyScalingFactor, 1),
		Unknown:       mechconf.UnknownProperties(n),
	}
	return s.add(r, rx)
}

func parseUserDefined(s *state, n *document.Node, p mechconf.PathRef) mechconf.Issues {
	r := mechconf.NewReader(n, p, scaledSchema)
	rx := mechconf.UserDefined{
		Name:          r.OptionalString(keyMusicaName, ""),
		GasPhase:      GasPhase,
		Reactants:     s.components(r, keyReactants, keyQty),
		Products:      s.components(r, keyProducts, keyYield),
		ScalingFactor: r.OptionalFloat(keyScalingFactor, 1),
		Unknown:       mechconf.UnknownProperties(n),
	}
	return s.add(r, rx)
}

// add records rx unless r collected issues.
func (s *state) add(r *mechconf.Reader, rx mechconf.Reaction) mechconf.Issues {
	if r.Failed() {
		return r.Issues()
	}
	s.m.Reactions.Add(rx)
	return nil
}

// gasPhase lists every declared species in declaration order.
func (s *state) gasPhase() mechconf.Phase {
	names := make([]string, 0, len(s.m.Species))
	for _, sp := range s.m.Species {
		names = append(names, sp.Name)
	}
	return mechconf.Phase{Name: GasPhase, Species: names}
}
