package mechconf

// ReactionType is the discriminator of a reaction variant.
type ReactionType string

const (
	TypeArrhenius                 ReactionType = "ARRHENIUS"
	TypeCondensedPhaseArrhenius   ReactionType = "CONDENSED_PHASE_ARRHENIUS"
	TypeTroe                      ReactionType = "TROE"
	TypeTernaryChemicalActivation ReactionType = "TERNARY_CHEMICAL_ACTIVATION"
	TypeBranched                  ReactionType = "BRANCHED_NO_RO2"
	TypeTunneling                 ReactionType = "TUNNELING"
	TypeSurface                   ReactionType = "SURFACE"
	TypePhotolysis                ReactionType = "PHOTOLYSIS"
	TypeCondensedPhasePhotolysis  ReactionType = "CONDENSED_PHASE_PHOTOLYSIS"
	TypeEmission                  ReactionType = "EMISSION"
	TypeFirstOrderLoss            ReactionType = "FIRST_ORDER_LOSS"
	TypeHenrysLaw                 ReactionType = "HL_PHASE_TRANSFER"
	TypeWetDeposition             ReactionType = "WET_DEPOSITION"
	TypeAqueousEquilibrium        ReactionType = "AQUEOUS_EQUILIBRIUM"
	TypeSimpolPhaseTransfer       ReactionType = "SIMPOL_PHASE_TRANSFER"
	TypeUserDefined               ReactionType = "USER_DEFINED"
)

// Reaction is implemented by every reaction variant. The set is closed.
type Reaction interface {
	Type() ReactionType
	sealed()
}

// Arrhenius: k = A exp(C/T) (T/D)^B (1 + E P).
type Arrhenius struct {
	Name      string
	GasPhase  string
	Reactants []ReactionComponent
	Products  []ReactionComponent
	A, B, C   float64
	D, E      float64
	Unknown   Properties
}

// CondensedPhaseArrhenius is Arrhenius kinetics inside an aerosol phase.
type CondensedPhaseArrhenius struct {
	Name              string
	AerosolPhase      string
	AerosolPhaseWater string
	Reactants         []ReactionComponent
	Products          []ReactionComponent
	A, B, C           float64
	D, E              float64
	Unknown           Properties
}

// Troe fall-off kinetics.
type Troe struct {
	Name                string
	GasPhase            string
	Reactants           []ReactionComponent
	Products            []ReactionComponent
	K0A, K0B, K0C       float64
	KinfA, KinfB, KinfC float64
	Fc, N               float64
	Unknown             Properties
}

// TernaryChemicalActivation shares the Troe parameter set.
type TernaryChemicalActivation struct {
	Name                string
	GasPhase            string
	Reactants           []ReactionComponent
	Products            []ReactionComponent
	K0A, K0B, K0C       float64
	KinfA, KinfB, KinfC float64
	Fc, N               float64
	Unknown             Properties
}

// Branched is the Wennberg NO + RO2 branched reaction.
type Branched struct {
	Name            string
	GasPhase        string
	Reactants       []ReactionComponent
	NitrateProducts []ReactionComponent
	AlkoxyProducts  []ReactionComponent
	X, Y, A0, N     float64
	Unknown         Properties
}

// Tunneling is the Wennberg quantum tunneling rate.
type Tunneling struct {
	Name      string
	GasPhase  string
	Reactants []ReactionComponent
	Products  []ReactionComponent
	A, B, C   float64
	Unknown   Properties
}

// Surface is a gas-phase species reacting on aerosol surfaces.
type Surface struct {
	Name                string
	GasPhase            string
	AerosolPhase        string
	GasPhaseSpecies     ReactionComponent
	GasPhaseProducts    []ReactionComponent
	ReactionProbability float64
	Unknown             Properties
}

type Photolysis struct {
	Name          string
	GasPhase      string
	Reactants     []ReactionComponent
	Products      []ReactionComponent
	ScalingFactor float64
	Unknown       Properties
}

type CondensedPhasePhotolysis struct {
	Name              string
	AerosolPhase      string
	AerosolPhaseWater string
	Reactants         []ReactionComponent
	Products          []ReactionComponent
	ScalingFactor     float64
	Unknown           Properties
}

type Emission struct {
	Name          string
	GasPhase      string
	Products      []ReactionComponent
	ScalingFactor float64
	Unknown       Properties
}

type FirstOrderLoss struct {
	Name          string
	GasPhase      string
	Reactants     []ReactionComponent
	ScalingFactor float64
	Unknown       Properties
}

// HenrysLaw is a Henry's-law gas/aerosol phase transfer.
type HenrysLaw struct {
	Name                string
	GasPhase            string
	GasPhaseSpecies     ReactionComponent
	AerosolPhase        string
	AerosolPhaseSpecies ReactionComponent
	AerosolPhaseWater   string
	Unknown             Properties
}

type WetDeposition struct {
	Name          string
	AerosolPhase  string
	ScalingFactor float64
	Unknown       Properties
}

type AqueousEquilibrium struct {
	Name              string
	AerosolPhase      string
	AerosolPhaseWater string
	Reactants         []ReactionComponent
	Products          []ReactionComponent
	A, C              float64
	KReverse          float64
	Unknown           Properties
}

// SimpolPhaseTransfer carries the four SIMPOL.1 vapour pressure parameters.
type SimpolPhaseTransfer struct {
	Name                string
	GasPhase            string
	GasPhaseSpecies     ReactionComponent
	AerosolPhase        string
	AerosolPhaseSpecies ReactionComponent
	B                   [4]float64
	Unknown             Properties
}

// UserDefined rates are supplied by the host model at run time.
type UserDefined struct {
	Name          string
	GasPhase      string
	Reactants     []ReactionComponent
	Products      []ReactionComponent
	ScalingFactor float64
	Unknown       Properties
}

func (Arrhenius) Type() ReactionType                 { return TypeArrhenius }
func (CondensedPhaseArrhenius) Type() ReactionType   { return TypeCondensedPhaseArrhenius }
func (Troe) Type() ReactionType                      { return TypeTroe }
func (TernaryChemicalActivation) Type() ReactionType { return TypeTernaryChemicalActivation }
func (Branched) Type() ReactionType                  { return TypeBranched }
func (Tunneling) Type() ReactionType                 { return TypeTunneling }
func (Surface) Type() ReactionType                   { return TypeSurface }
func (Photolysis) Type() ReactionType                { return TypePhotolysis }
func (CondensedPhasePhotolysis) Type() ReactionType  { return TypeCondensedPhasePhotolysis }
func (Emission) Type() ReactionType                  { return TypeEmission }
func (FirstOrderLoss) Type() ReactionType            { return TypeFirstOrderLoss }
func (HenrysLaw) Type() ReactionType                 { return TypeHenrysLaw }
func (WetDeposition) Type() ReactionType             { return TypeWetDeposition }
func (AqueousEquilibrium) Type() ReactionType        { return TypeAqueousEquilibrium }
func (SimpolPhaseTransfer) Type() ReactionType       { return TypeSimpolPhaseTransfer }
func (UserDefined) Type() ReactionType               { return TypeUserDefined }

func (Arrhenius) sealed()                 {}
func (CondensedPhaseArrhenius) sealed()   {}
func (Troe) sealed()                      {}
func (TernaryChemicalActivation) sealed() {}
func (Branched) sealed()                  {}
func (Tunneling) sealed()                 {}
func (Surface) sealed()                   {}
func (Photolysis) sealed()                {}
func (CondensedPhasePhotolysis) sealed()  {}
func (Emission) sealed()                  {}
func (FirstOrderLoss) sealed()            {}
func (HenrysLaw) sealed()                 {}
func (WetDeposition) sealed()             {}
func (AqueousEquilibrium) sealed()        {}
func (SimpolPhaseTransfer) sealed()       {}
func (UserDefined) sealed()               {}

// Reactions holds one ordered collection per variant.
type Reactions struct {
	Arrhenius                 []Arrhenius
	CondensedPhaseArrhenius   []CondensedPhaseArrhenius
	Troe                      []Troe
	TernaryChemicalActivation []TernaryChemicalActivation
	Branched                  []Branched
	Tunneling                 []Tunneling
	Surface                   []Surface
	Photolysis                []Photolysis
	CondensedPhasePhotolysis  []CondensedPhasePhotolysis
	Emission                  []Emission
	FirstOrderLoss            []FirstOrderLoss
	HenrysLaw                 []HenrysLaw
	WetDeposition             []WetDeposition
	AqueousEquilibrium        []AqueousEquilibrium
	SimpolPhaseTransfer       []SimpolPhaseTransfer
	UserDefined               []UserDefined
}

// Add appends rx to the collection matching its variant.
func (r *Reactions) Add(rx Reaction) {
	switch v := rx.(type) {
	case Arrhenius:
		r.Arrhenius = append(r.Arrhenius, v)
	case CondensedPhaseArrhenius:
		r.CondensedPhaseArrhenius = append(r.CondensedPhaseArrhenius, v)
	case Troe:
		r.Troe = append(r.Troe, v)
	case TernaryChemicalActivation:
		r.TernaryChemicalActivation = append(r.TernaryChemicalActivation, v)
	case Branched:
		r.Branched = append(r.Branched, v)
	case Tunneling:
		r.Tunneling = append(r.Tunneling, v)
	case Surface:
		r.Surface = append(r.Surface, v)
	case Photolysis:
		r.Photolysis = append(r.Photolysis, v)
	case CondensedPhasePhotolysis:
		r.CondensedPhasePhotolysis = append(r.CondensedPhasePhotolysis, v)
	case Emission:
		r.Emission = append(r.Emission, v)
	case FirstOrderLoss:
		r.FirstOrderLoss = append(r.FirstOrderLoss, v)
	case HenrysLaw:
		r.HenrysLaw = append(r.HenrysLaw, v)
	case WetDeposition:
		r.WetDeposition = append(r.WetDeposition, v)
	case AqueousEquilibrium:
		r.AqueousEquilibrium = append(r.AqueousEquilibrium, v)
	case SimpolPhaseTransfer:
		r.SimpolPhaseTransfer = append(r.SimpolPhaseTransfer, v)
	case UserDefined:
		r.UserDefined = append(r.UserDefined, v)
	}
}

// Len counts reactions across all variants.
func (r Reactions) Len() int {
	return len(r.Arrhenius) + len(r.CondensedPhaseArrhenius) + len(r.Troe) +
		len(r.TernaryChemicalActivation) + len(r.Branched) + len(r.Tunneling) +
		len(r.Surface) + len(r.Photolysis) + len(r.CondensedPhasePhotolysis) +
		len(r.Emission) + len(r.FirstOrderLoss) + len(r.HenrysLaw) +
		len(r.WetDeposition) + len(r.AqueousEquilibrium) + len(r.SimpolPhaseTransfer) +
		len(r.UserDefined)
}
