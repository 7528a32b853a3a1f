package mechconf

import (
	"github.com/reoring/mechconf/jsonschema"
)

// passthroughPattern matches the keys kept in Unknown maps.
const passthroughPattern = "^" + unknownPrefix

// reactionSchemas pairs every strict reaction type with its key schema.
var reactionSchemas = map[ReactionType]Schema{
	TypeArrhenius:                 arrheniusSchema,
	TypeCondensedPhaseArrhenius:   condensedArrheniusSchema,
	TypeTroe:                      troeSchema,
	TypeTernaryChemicalActivation: troeSchema,
	TypeBranched:                  branchedSchema,
	TypeTunneling:                 tunnelingSchema,
	TypeSurface:                   surfaceSchema,
	TypePhotolysis:                scaledGasSchema,
	TypeCondensedPhasePhotolysis:  condensedPhotolysisSchema,
	TypeEmission:                  emissionSchema,
	TypeFirstOrderLoss:            firstOrderLossSchema,
	TypeHenrysLaw:                 henrysLawSchema,
	TypeWetDeposition:             wetDepositionSchema,
	TypeAqueousEquilibrium:        aqueousEquilibriumSchema,
	TypeSimpolPhaseTransfer:       simpolSchema,
	TypeUserDefined:               scaledGasSchema,
}

func componentJSONSchema() *jsonschema.Schema {
	return objectJSONSchema(componentSchema, nil)
}

// valueSchema maps a document key to the JSON type it holds. Keys not listed
// are numeric.
func valueSchema(key string) *jsonschema.Schema {
	switch key {
	case keyName, keyType, keyGasPhase, keyAerosolPhase, keyAerosolPhaseWater,
		keyTracerType, keyVersion, keySpeciesName:
		return jsonschema.String()
	case keyIsThirdBody:
		return jsonschema.Boolean()
	case keyGasPhaseSpecies, keyAerosolPhaseSpecies:
		return componentJSONSchema()
	case keyReactants, keyProducts, keyGasPhaseProducts, keyNitrateProducts, keyAlkoxyProducts:
		return jsonschema.ArrayOf(componentJSONSchema())
	}
	return jsonschema.Number()
}

func objectJSONSchema(s Schema, override map[string]*jsonschema.Schema) *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema, len(s.Required)+len(s.Optional))
	for _, keys := range [][]string{s.Required, s.Optional} {
		for _, k := range keys {
			if o, ok := override[k]; ok {
				props[k] = o
				continue
			}
			props[k] = valueSchema(k)
		}
	}
	return jsonschema.Closed(props, s.Required, passthroughPattern)
}

// ReactionJSONSchema describes one strict reaction variant. ok is false for
// an unknown type.
func ReactionJSONSchema(t ReactionType) (*jsonschema.Schema, bool) {
	s, ok := reactionSchemas[t]
	if !ok {
		return nil, false
	}
	override := map[string]*jsonschema.Schema{keyType: jsonschema.Const(string(t))}
	if t == TypeSimpolPhaseTransfer {
		override[keyB] = jsonschema.Tuple(jsonschema.Number(), simpolParams)
	}
	out := objectJSONSchema(s, override)
	out.Title = string(t)
	return out, true
}

// JSONSchema describes a version 1 mechanism document. The semantic checks
// (version support, cross references, duplicates, component counts) are not
// expressible here and are left to Parse.
func JSONSchema() *jsonschema.Schema {
	types := ReactionTypes()
	variants := make([]*jsonschema.Schema, 0, len(types))
	for _, t := range types {
		rs, _ := ReactionJSONSchema(t)
		variants = append(variants, rs)
	}
	root := objectJSONSchema(mechanismSchema, map[string]*jsonschema.Schema{
		keySpecies:   jsonschema.ArrayOf(objectJSONSchema(speciesSchema, nil)),
		keyPhases:    jsonschema.ArrayOf(objectJSONSchema(phaseSchema, map[string]*jsonschema.Schema{keySpecies: jsonschema.ArrayOf(jsonschema.String())})),
		keyReactions: jsonschema.ArrayOf(&jsonschema.Schema{OneOf: variants}),
	})
	root.SchemaURI = jsonschema.Draft
	root.Title = "mechanism configuration " + SupportedMajorVersion
	return root
}
