package mechconf

// Recognised numeric species property keys.
const (
	PropMolecularWeight       = "molecular weight [kg mol-1]"
	PropHenrysLawConstant     = "HLC(298K) [mol m-3 Pa-1]"
	PropHenrysLawExponential  = "HLC exponential factor [K]"
	PropDiffusionCoefficient  = "diffusion coefficient [m2 s-1]"
	PropNStar                 = "N star"
	PropDensity               = "density [kg m-3]"
	PropConstantConcentration = "constant concentration [mol m-3]"
	PropConstantMixingRatio   = "constant mixing ratio [mol mol-1]"
	PropAbsoluteTolerance     = "absolute tolerance"
)

// Species is a named chemical entity.
type Species struct {
	Name        string
	TracerType  string `json:",omitempty"`
	IsThirdBody bool   `json:",omitempty"`
	// Properties holds the recognised numeric properties that were present,
	// keyed by their document label (see the Prop* constants).
	Properties map[string]float64 `json:",omitempty"`
	Unknown    Properties
}

// Property returns a numeric property and whether it was set.
func (s Species) Property(key string) (float64, bool) {
	v, ok := s.Properties[key]
	return v, ok
}

// Phase groups species by name.
type Phase struct {
	Name    string
	Species []string
	Unknown Properties
}

// Contains reports whether the phase lists species name.
func (p Phase) Contains(name string) bool {
	for _, s := range p.Species {
		if s == name {
			return true
		}
	}
	return false
}

// ReactionComponent references a species with a stoichiometric coefficient.
type ReactionComponent struct {
	Species     string
	Coefficient float64
	Unknown     Properties
}

// Mechanism is the complete parsed model. The caller that receives it owns
// it; the parser keeps no reference.
type Mechanism struct {
	Version   string
	Name      string
	Species   []Species
	Phases    []Phase
	Reactions Reactions
	// RelativeTolerance is the solver-wide relative tolerance declared by
	// legacy documents. Zero when not declared.
	RelativeTolerance float64 `json:",omitempty"`
}

// SpeciesByName returns the species named name.
func (m *Mechanism) SpeciesByName(name string) (Species, bool) {
	for _, s := range m.Species {
		if s.Name == name {
			return s, true
		}
	}
	return Species{}, false
}

// PhaseByName returns the phase named name.
func (m *Mechanism) PhaseByName(name string) (Phase, bool) {
	for _, p := range m.Phases {
		if p.Name == name {
			return p, true
		}
	}
	return Phase{}, false
}

// Result pairs the parsed mechanism with every issue found. Mechanism is nil
// when the document could not be read or its top-level shape was wrong.
type Result struct {
	Mechanism *Mechanism
	Errors    Issues
}

// OK reports success: a mechanism was produced and no issue was recorded.
func (r Result) OK() bool { return r.Mechanism != nil && len(r.Errors) == 0 }

func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// Err returns the issues as an error, or nil when there are none.
func (r Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors
}
