package mechconf

import (
	"github.com/reoring/mechconf/document"
)

var (
	condensedArrheniusSchema = Schema{
		Required: []string{keyType, keyReactants, keyProducts, keyAerosolPhase, keyAerosolPhaseWater},
		Optional: []string{keyName, keyA, keyB, keyC, keyD, keyE, keyEa},
	}
	condensedPhotolysisSchema = Schema{
		Required: []string{keyType, keyReactants, keyProducts, keyAerosolPhase, keyAerosolPhaseWater},
		Optional: []string{keyName, keyScalingFactor},
	}
	surfaceSchema = Schema{
		Required: []string{keyType, keyGasPhaseSpecies, keyGasPhaseProducts, keyGasPhase, keyAerosolPhase},
		Optional: []string{keyName, keyReactionProbability},
	}
	henrysLawSchema = Schema{
		Required: []string{keyType, keyGasPhase, keyGasPhaseSpecies, keyAerosolPhase, keyAerosolPhaseSpecies, keyAerosolPhaseWater},
		Optional: []string{keyName},
	}
	wetDepositionSchema = Schema{
		Required: []string{keyType, keyAerosolPhase},
		Optional: []string{keyName, keyScalingFactor},
	}
	aqueousEquilibriumSchema = Schema{
		Required: []string{keyType, keyReactants, keyProducts, keyAerosolPhase, keyAerosolPhaseWater, keyKReverse},
		Optional: []string{keyName, keyA, keyC},
	}
	simpolSchema = Schema{
		Required: []string{keyType, keyGasPhase, keyGasPhaseSpecies, keyAerosolPhase, keyAerosolPhaseSpecies, keyB},
		Optional: []string{keyName},
	}
)

// simpolParams is the number of SIMPOL.1 vapour pressure parameters.
const simpolParams = 4

func single(ref componentRef, ok bool) []componentRef {
	if !ok {
		return nil
	}
	return []componentRef{ref}
}

func parseCondensedPhaseArrhenius(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, condensedArrheniusSchema)
	reactants := r.components(keyReactants)
	products := r.components(keyProducts)
	aerosol, resolved := r.phase(c, keyAerosolPhase)
	water := r.aerosolWater(c, aerosol, resolved, keyAerosolPhaseWater)
	r.requireSpecies(c, reactants, products)
	r.requireMembers(c, aerosol, resolved, reactants, products)
	rx := CondensedPhaseArrhenius{
		Name:              r.OptionalString(keyName, ""),
		AerosolPhase:      aerosol.Name,
		AerosolPhaseWater: water,
		Reactants:         plain(reactants),
		Products:          plain(products),
		A:                 r.OptionalFloat(keyA, 1),
		B:                 r.OptionalFloat(keyB, 0),
		C:                 r.ArrheniusC(keyC, keyEa),
		D:                 r.OptionalFloat(keyD, 300),
		E:                 r.OptionalFloat(keyE, 0),
		Unknown:           UnknownProperties(n),
	}
	return rx, r.Issues()
}

func parseCondensedPhasePhotolysis(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, condensedPhotolysisSchema)
	reactants := r.components(keyReactants)
	products := r.components(keyProducts)
	r.arity(keyReactants, 1)
	aerosol, resolved := r.phase(c, keyAerosolPhase)
	water := r.aerosolWater(c, aerosol, resolved, keyAerosolPhaseWater)
	r.requireSpecies(c, reactants, products)
	r.requireMembers(c, aerosol, resolved, reactants, products)
	rx := CondensedPhasePhotolysis{
		Name:              r.OptionalString(keyName, ""),
		AerosolPhase:      aerosol.Name,
		AerosolPhaseWater: water,
		Reactants:         plain(reactants),
		Products:          plain(products),
		ScalingFactor:     r.OptionalFloat(keyScalingFactor, 1),
		Unknown:           UnknownProperties(n),
	}
	return rx, r.Issues()
}

func parseSurface(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, surfaceSchema)
	species, ok := r.component(keyGasPhaseSpecies)
	products := r.components(keyGasPhaseProducts)
	gas, _ := r.phase(c, keyGasPhase)
	aerosol, _ := r.phase(c, keyAerosolPhase)
	r.requireSpecies(c, single(species, ok), products)
	rx := Surface{
		Name:                r.OptionalString(keyName, ""),
		GasPhase:            gas.Name,
		AerosolPhase:        aerosol.Name,
		GasPhaseSpecies:     species.ReactionComponent,
		GasPhaseProducts:    plain(products),
		ReactionProbability: r.OptionalFloat(keyReactionProbability, 1),
		Unknown:             UnknownProperties(n),
	}
	return rx, r.Issues()
}

func parseHenrysLaw(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, henrysLawSchema)
	gasSpecies, gok := r.component(keyGasPhaseSpecies)
	aerosolSpecies, aok := r.component(keyAerosolPhaseSpecies)
	gas, _ := r.phase(c, keyGasPhase)
	aerosol, resolved := r.phase(c, keyAerosolPhase)
	water := r.aerosolWater(c, aerosol, resolved, keyAerosolPhaseWater)
	r.requireSpecies(c, single(gasSpecies, gok), single(aerosolSpecies, aok))
	r.requireMembers(c, aerosol, resolved, single(aerosolSpecies, aok))
	rx := HenrysLaw{
		Name:                r.OptionalString(keyName, ""),
		GasPhase:            gas.Name,
		GasPhaseSpecies:     gasSpecies.ReactionComponent,
		AerosolPhase:        aerosol.Name,
		AerosolPhaseSpecies: aerosolSpecies.ReactionComponent,
		AerosolPhaseWater:   water,
		Unknown:             UnknownProperties(n),
	}
	return rx, r.Issues()
}

func parseWetDeposition(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, wetDepositionSchema)
	aerosol, _ := r.phase(c, keyAerosolPhase)
	rx := WetDeposition{
		Name:          r.OptionalString(keyName, ""),
		AerosolPhase:  aerosol.Name,
		ScalingFactor: r.OptionalFloat(keyScalingFactor, 1),
		Unknown:       UnknownProperties(n),
	}
	return rx, r.Issues()
}

func parseAqueousEquilibrium(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, aqueousEquilibriumSchema)
	reactants := r.components(keyReactants)
	products := r.components(keyProducts)
	aerosol, resolved := r.phase(c, keyAerosolPhase)
	water := r.aerosolWater(c, aerosol, resolved, keyAerosolPhaseWater)
	r.requireSpecies(c, reactants, products)
	r.requireMembers(c, aerosol, resolved, reactants, products)
	kr, _ := r.Float(keyKReverse)
	rx := AqueousEquilibrium{
		Name:              r.OptionalString(keyName, ""),
		AerosolPhase:      aerosol.Name,
		AerosolPhaseWater: water,
		Reactants:         plain(reactants),
		Products:          plain(products),
		A:                 r.OptionalFloat(keyA, 1),
		C:                 r.OptionalFloat(keyC, 0),
		KReverse:          kr,
		Unknown:           UnknownProperties(n),
	}
	return rx, r.Issues()
}

func parseSimpolPhaseTransfer(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, simpolSchema)
	gasSpecies, gok := r.component(keyGasPhaseSpecies)
	aerosolSpecies, aok := r.component(keyAerosolPhaseSpecies)
	gas, _ := r.phase(c, keyGasPhase)
	aerosol, resolved := r.phase(c, keyAerosolPhase)
	r.requireSpecies(c, single(gasSpecies, gok), single(aerosolSpecies, aok))
	r.requireMembers(c, aerosol, resolved, single(aerosolSpecies, aok))
	rx := SimpolPhaseTransfer{
		Name:                r.OptionalString(keyName, ""),
		GasPhase:            gas.Name,
		GasPhaseSpecies:     gasSpecies.ReactionComponent,
		AerosolPhase:        aerosol.Name,
		AerosolPhaseSpecies: aerosolSpecies.ReactionComponent,
		B:                   r.simpolB(),
		Unknown:             UnknownProperties(n),
	}
	return rx, r.Issues()
}

// simpolB reads B as a sequence of exactly four numbers.
func (r *Reader) simpolB() [simpolParams]float64 {
	var out [simpolParams]float64
	v, ok := r.n.Get(keyB)
	if !ok {
		return out
	}
	p := r.p.Field(keyB)
	if !v.IsSequence() || v.Len() != simpolParams {
		r.Add(p.Issue(v, InvalidType, "%s: expected a sequence of %d numbers", keyB, simpolParams))
		return out
	}
	for i, item := range v.Items() {
		f, err := item.AsFloat()
		if err != nil {
			r.Add(p.Index(i).Issue(item, InvalidType, "%s[%d]: %v", keyB, i, err))
			continue
		}
		out[i] = f
	}
	return out
}
