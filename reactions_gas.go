package mechconf

import (
	"github.com/reoring/mechconf/document"
)

var (
	arrheniusSchema = Schema{
		Required: []string{keyType, keyReactants, keyProducts, keyGasPhase},
		Optional: []string{keyName, keyA, keyB, keyC, keyD, keyE, keyEa},
	}
	troeSchema = Schema{
		Required: []string{keyType, keyReactants, keyProducts, keyGasPhase},
		Optional: []string{keyName, keyK0A, keyK0B, keyK0C, keyKinfA, keyKinfB, keyKinfC, keyFc, keyN},
	}
	branchedSchema = Schema{
		Required: []string{keyType, keyReactants, keyNitrateProducts, keyAlkoxyProducts, keyGasPhase},
		Optional: []string{keyName, keyX, keyY, keyA0, keyBranchN},
	}
	tunnelingSchema = Schema{
		Required: []string{keyType, keyReactants, keyProducts, keyGasPhase},
		Optional: []string{keyName, keyA, keyB, keyC},
	}
	scaledGasSchema = Schema{
		Required: []string{keyType, keyReactants, keyProducts, keyGasPhase},
		Optional: []string{keyName, keyScalingFactor},
	}
	emissionSchema = Schema{
		Required: []string{keyType, keyProducts, keyGasPhase},
		Optional: []string{keyName, keyScalingFactor},
	}
	firstOrderLossSchema = Schema{
		Required: []string{keyType, keyReactants, keyGasPhase},
		Optional: []string{keyName, keyScalingFactor},
	}
)

func parseArrhenius(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, arrheniusSchema)
	reactants := r.components(keyReactants)
	products := r.components(keyProducts)
	gas, _ := r.phase(c, keyGasPhase)
	r.requireSpecies(c, reactants, products)
	rx := Arrhenius{
		Name:      r.OptionalString(keyName, ""),
		GasPhase:  gas.Name,
		Reactants: plain(reactants),
		Products:  plain(products),
		A:         r.OptionalFloat(keyA, 1),
		B:         r.OptionalFloat(keyB, 0),
		C:         r.ArrheniusC(keyC, keyEa),
		D:         r.OptionalFloat(keyD, 300),
		E:         r.OptionalFloat(keyE, 0),
		Unknown:   UnknownProperties(n),
	}
	return rx, r.Issues()
}

// troeParams reads the fall-off parameter set shared by Troe and ternary
// chemical activation reactions.
type troeParams struct {
	reactants, products []componentRef
	gas                 Phase
	k0A, k0B, k0C       float64
	kinfA, kinfB, kinfC float64
	fc, n               float64
}

func readTroe(r *Reader, c *catalog) troeParams {
	t := troeParams{
		reactants: r.components(keyReactants),
		products:  r.components(keyProducts),
		k0A:       r.OptionalFloat(keyK0A, 1),
		k0B:       r.OptionalFloat(keyK0B, 0),
		k0C:       r.OptionalFloat(keyK0C, 0),
		kinfA:     r.OptionalFloat(keyKinfA, 1),
		kinfB:     r.OptionalFloat(keyKinfB, 0),
		kinfC:     r.OptionalFloat(keyKinfC, 0),
		fc:        r.OptionalFloat(keyFc, 0.6),
		n:         r.OptionalFloat(keyN, 1),
	}
	t.gas, _ = r.phase(c, keyGasPhase)
	r.requireSpecies(c, t.reactants, t.products)
	return t
}

func parseTroe(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, troeSchema)
	t := readTroe(r, c)
	rx := Troe{
		Name:      r.OptionalString(keyName, ""),
		GasPhase:  t.gas.Name,
		Reactants: plain(t.reactants),
		Products:  plain(t.products),
		K0A:       t.k0A,
		K0B:       t.k0B,
		K0C:       t.k0C,
		KinfA:     t.kinfA,
		KinfB:     t.kinfB,
		KinfC:     t.kinfC,
		Fc:        t.fc,
		N:         t.n,
		Unknown:   UnknownProperties(n),
	}
	return rx, r.Issues()
}

func parseTernaryChemicalActivation(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, troeSchema)
	t := readTroe(r, c)
	rx := TernaryChemicalActivation{
		Name:      r.OptionalString(keyName, ""),
		GasPhase:  t.gas.Name,
		Reactants: plain(t.reactants),
		Products:  plain(t.products),
		K0A:       t.k0A,
		K0B:       t.k0B,
		K0C:       t.k0C,
		KinfA:     t.kinfA,
		KinfB:     t.kinfB,
		KinfC:     t.kinfC,
		Fc:        t.fc,
		N:         t.n,
		Unknown:   UnknownProperties(n),
	}
	return rx, r.Issues()
}

func parseBranched(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, branchedSchema)
	reactants := r.components(keyReactants)
	nitrate := r.components(keyNitrateProducts)
	alkoxy := r.components(keyAlkoxyProducts)
	gas, _ := r.phase(c, keyGasPhase)
	r.requireSpecies(c, reactants, nitrate, alkoxy)
	rx := Branched{
		Name:            r.OptionalString(keyName, ""),
		GasPhase:        gas.Name,
		Reactants:       plain(reactants),
		NitrateProducts: plain(nitrate),
		AlkoxyProducts:  plain(alkoxy),
		X:               r.OptionalFloat(keyX, 1),
		Y:               r.OptionalFloat(keyY, 0),
		A0:              r.OptionalFloat(keyA0, 1),
		N:               r.OptionalFloat(keyBranchN, 0),
		Unknown:         UnknownProperties(n),
	}
	return rx, r.Issues()
}

func parseTunneling(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, tunnelingSchema)
	reactants := r.components(keyReactants)
	products := r.components(keyProducts)
	gas, _ := r.phase(c, keyGasPhase)
	r.requireSpecies(c, reactants, products)
	rx := Tunneling{
		Name:      r.OptionalString(keyName, ""),
		GasPhase:  gas.Name,
		Reactants: plain(reactants),
		Products:  plain(products),
		A:         r.OptionalFloat(keyA, 1),
		B:         r.OptionalFloat(keyB, 0),
		C:         r.OptionalFloat(keyC, 0),
		Unknown:   UnknownProperties(n),
	}
	return rx, r.Issues()
}

func parsePhotolysis(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, scaledGasSchema)
	reactants := r.components(keyReactants)
	products := r.components(keyProducts)
	r.arity(keyReactants, 1)
	gas, _ := r.phase(c, keyGasPhase)
	r.requireSpecies(c, reactants, products)
	rx := Photolysis{
		Name:          r.OptionalString(keyName, ""),
		GasPhase:      gas.Name,
		Reactants:     plain(reactants),
		Products:      plain(products),
		ScalingFactor: r.OptionalFloat(keyScalingFactor, 1),
		Unknown:       UnknownProperties(n),
	}
	return rx, r.Issues()
}

func parseEmission(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, emissionSchema)
	products := r.components(keyProducts)
	r.arity(keyProducts, 1)
	gas, _ := r.phase(c, keyGasPhase)
	r.requireSpecies(c, products)
	rx := Emission{
		Name:          r.OptionalString(keyName, ""),
		GasPhase:      gas.Name,
		Products:      plain(products),
		ScalingFactor: r.OptionalFloat(keyScalingFactor, 1),
		Unknown:       UnknownProperties(n),
	}
	return rx, r.Issues()
}

func parseFirstOrderLoss(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, firstOrderLossSchema)
	reactants := r.components(keyReactants)
	r.arity(keyReactants, 1)
	gas, _ := r.phase(c, keyGasPhase)
	r.requireSpecies(c, reactants)
	rx := FirstOrderLoss{
		Name:          r.OptionalString(keyName, ""),
		GasPhase:      gas.Name,
		Reactants:     plain(reactants),
		ScalingFactor: r.OptionalFloat(keyScalingFactor, 1),
		Unknown:       UnknownProperties(n),
	}
	return rx, r.Issues()
}

func parseUserDefined(n *document.Node, p PathRef, c *catalog) (Reaction, Issues) {
	r := NewReader(n, p, scaledGasSchema)
	reactants := r.components(keyReactants)
	products := r.components(keyProducts)
	gas, _ := r.phase(c, keyGasPhase)
	r.requireSpecies(c, reactants, products)
	rx := UserDefined{
		Name:          r.OptionalString(keyName, ""),
		GasPhase:      gas.Name,
		Reactants:     plain(reactants),
		Products:      plain(products),
		ScalingFactor: r.OptionalFloat(keyScalingFactor, 1),
		Unknown:       UnknownProperties(n),
	}
	return rx, r.Issues()
}
