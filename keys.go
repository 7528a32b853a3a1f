package mechconf

// Document keys of the strict format.
const (
	keyVersion   = "version"
	keyName      = "name"
	keySpecies   = "species"
	keyPhases    = "phases"
	keyReactions = "reactions"
	keyType      = "type"

	keyTracerType  = "tracer type"
	keyIsThirdBody = "is third body"

	keySpeciesName = "species name"
	keyCoefficient = "coefficient"

	keyReactants           = "reactants"
	keyProducts            = "products"
	keyGasPhase            = "gas phase"
	keyAerosolPhase        = "aerosol phase"
	keyAerosolPhaseWater   = "aerosol-phase water"
	keyGasPhaseSpecies     = "gas-phase species"
	keyGasPhaseProducts    = "gas-phase products"
	keyAerosolPhaseSpecies = "aerosol-phase species"
	keyNitrateProducts     = "nitrate products"
	keyAlkoxyProducts      = "alkoxy products"
	keyScalingFactor       = "scaling factor"
	keyReactionProbability = "reaction probability"
	keyKReverse            = "k_reverse"

	keyA  = "A"
	keyB  = "B"
	keyC  = "C"
	keyD  = "D"
	keyE  = "E"
	keyEa = "Ea"

	keyK0A   = "k0_A"
	keyK0B   = "k0_B"
	keyK0C   = "k0_C"
	keyKinfA = "kinf_A"
	keyKinfB = "kinf_B"
	keyKinfC = "kinf_C"
	keyFc    = "Fc"
	keyN     = "N"

	keyX       = "X"
	keyY       = "Y"
	keyA0      = "a0"
	keyBranchN = "n"
)

// BoltzmannConstant in J K-1, used to convert an activation energy Ea into
// the Arrhenius C parameter (C = -Ea / k_B).
const BoltzmannConstant = 1.380649e-23
