package mechconf

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCatalog declares C in the gas phase only, so aerosol membership
// checks can be exercised with it.
func testCatalog() *catalog {
	species := []Species{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "H2O"},
		{Name: "ethanol"}, {Name: "ethanol_aq"},
	}
	phases := []Phase{
		{Name: "gas", Species: []string{"A", "B", "C", "ethanol"}},
		{Name: "aqueous", Species: []string{"A", "B", "H2O", "ethanol_aq"}},
	}
	return newCatalog(species, phases)
}

func parseOne(t *testing.T, src string) (Reaction, Issues) {
	t.Helper()
	return parseReaction(mustYAML(t, src), Root().Field(keyReactions).Index(0), testCatalog())
}

func TestParseReaction_Defaults(t *testing.T) {
	t.Run("arrhenius", func(t *testing.T) {
		rx, iss := parseOne(t, `
type: ARRHENIUS
gas phase: gas
reactants:
  - species name: A
products:
  - species name: B
    coefficient: 1.2
`)
		require.Empty(t, iss)
		a := rx.(Arrhenius)
		assert.Equal(t, 1.0, a.A)
		assert.Equal(t, 0.0, a.B)
		assert.Equal(t, 0.0, a.C)
		assert.Equal(t, 300.0, a.D)
		assert.Equal(t, 0.0, a.E)
		assert.Equal(t, 1.0, a.Reactants[0].Coefficient)
		assert.Equal(t, 1.2, a.Products[0].Coefficient)
		assert.Equal(t, "gas", a.GasPhase)
	})

	t.Run("troe", func(t *testing.T) {
		rx, iss := parseOne(t, "type: TROE\ngas phase: gas\nreactants: [{species name: A}]\nproducts: [{species name: B}]\n")
		require.Empty(t, iss)
		tr := rx.(Troe)
		assert.Equal(t, 1.0, tr.K0A)
		assert.Equal(t, 1.0, tr.KinfA)
		assert.Equal(t, 0.6, tr.Fc)
		assert.Equal(t, 1.0, tr.N)
	})

	t.Run("branched", func(t *testing.T) {
		rx, iss := parseOne(t, `
type: BRANCHED_NO_RO2
gas phase: gas
reactants: [{species name: A}]
nitrate products: [{species name: B}]
alkoxy products: [{species name: C}]
`)
		require.Empty(t, iss)
		b := rx.(Branched)
		assert.Equal(t, 1.0, b.X)
		assert.Equal(t, 0.0, b.Y)
		assert.Equal(t, 1.0, b.A0)
		assert.Equal(t, 0.0, b.N)
	})

	t.Run("condensed phase arrhenius", func(t *testing.T) {
		rx, iss := parseOne(t, `
type: CONDENSED_PHASE_ARRHENIUS
aerosol phase: aqueous
aerosol-phase water: H2O
reactants: [{species name: A}]
products: [{species name: B}]
`)
		require.Empty(t, iss)
		c := rx.(CondensedPhaseArrhenius)
		assert.Equal(t, 1.0, c.A)
		assert.Equal(t, 300.0, c.D)
		assert.Equal(t, "H2O", c.AerosolPhaseWater)
		assert.Equal(t, "aqueous", c.AerosolPhase)
	})

	t.Run("emission", func(t *testing.T) {
		rx, iss := parseOne(t, "type: EMISSION\ngas phase: gas\nproducts: [{species name: B}]\n")
		require.Empty(t, iss)
		assert.Equal(t, 1.0, rx.(Emission).ScalingFactor)
	})

	t.Run("surface", func(t *testing.T) {
		rx, iss := parseOne(t, `
type: SURFACE
gas phase: gas
aerosol phase: aqueous
gas-phase species: {species name: A}
gas-phase products: [{species name: B}, {species name: C}]
`)
		require.Empty(t, iss)
		s := rx.(Surface)
		assert.Equal(t, 1.0, s.ReactionProbability)
		assert.Equal(t, "A", s.GasPhaseSpecies.Species)
		assert.Len(t, s.GasPhaseProducts, 2)
	})

	t.Run("aqueous equilibrium", func(t *testing.T) {
		rx, iss := parseOne(t, `
type: AQUEOUS_EQUILIBRIUM
aerosol phase: aqueous
aerosol-phase water: H2O
reactants: [{species name: A, coefficient: 2}]
products: [{species name: B}]
k_reverse: 0.32
`)
		require.Empty(t, iss)
		aq := rx.(AqueousEquilibrium)
		assert.Equal(t, 1.0, aq.A)
		assert.Equal(t, 0.0, aq.C)
		assert.Equal(t, 0.32, aq.KReverse)
		assert.Equal(t, 2.0, aq.Reactants[0].Coefficient)
	})

	t.Run("simpol", func(t *testing.T) {
		rx, iss := parseOne(t, `
type: SIMPOL_PHASE_TRANSFER
gas phase: gas
gas-phase species: {species name: ethanol}
aerosol phase: aqueous
aerosol-phase species: {species name: ethanol_aq}
B: [-1.97e3, 2.91, 1.96e-3, -4.96e-1]
`)
		require.Empty(t, iss)
		assert.Equal(t, [4]float64{-1.97e3, 2.91, 1.96e-3, -4.96e-1}, rx.(SimpolPhaseTransfer).B)
	})

	t.Run("wet deposition", func(t *testing.T) {
		rx, iss := parseOne(t, "type: WET_DEPOSITION\naerosol phase: aqueous\nname: rain\n")
		require.Empty(t, iss)
		wd := rx.(WetDeposition)
		assert.Equal(t, "rain", wd.Name)
		assert.Equal(t, 1.0, wd.ScalingFactor)
	})
}

func TestParseReaction_Issues(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []Status
		path string
	}{
		{
			name: "first order loss unknown species",
			src:  "type: FIRST_ORDER_LOSS\ngas phase: gas\nreactants: [{species name: D}]\n",
			want: []Status{ReactionRequiresUnknownSpecies},
			path: "/reactions/0/reactants/0/species name",
		},
		{
			name: "first order loss too many reactants",
			src:  "type: FIRST_ORDER_LOSS\ngas phase: gas\nreactants: [{species name: A}, {species name: B}]\n",
			want: []Status{TooManyReactionComponents},
			path: "/reactions/0/reactants",
		},
		{
			name: "emission too many products",
			src:  "type: EMISSION\ngas phase: gas\nproducts: [{species name: A}, {species name: B}]\n",
			want: []Status{TooManyReactionComponents},
			path: "/reactions/0/products",
		},
		{
			name: "photolysis without reactants",
			src:  "type: PHOTOLYSIS\ngas phase: gas\nreactants: []\nproducts: [{species name: B}]\n",
			want: []Status{RequiredKeyNotFound},
			path: "/reactions/0/reactants",
		},
		{
			name: "unknown gas phase",
			src:  "type: ARRHENIUS\ngas phase: air\nreactants: [{species name: A}]\nproducts: [{species name: B}]\n",
			want: []Status{UnknownPhase},
			path: "/reactions/0/gas phase",
		},
		{
			name: "C and Ea together",
			src:  "type: ARRHENIUS\ngas phase: gas\nreactants: [{species name: A}]\nproducts: [{species name: B}]\nC: 10\nEa: 1.0e-20\n",
			want: []Status{MutuallyExclusiveOption},
			path: "/reactions/0/Ea",
		},
		{
			name: "aerosol water not in phase",
			src:  "type: CONDENSED_PHASE_ARRHENIUS\naerosol phase: aqueous\naerosol-phase water: C\nreactants: [{species name: A}]\nproducts: [{species name: B}]\n",
			want: []Status{RequestedAerosolSpeciesNotIncludedInAerosolPhase},
			path: "/reactions/0/aerosol-phase water",
		},
		{
			name: "aerosol water undeclared",
			src:  "type: CONDENSED_PHASE_PHOTOLYSIS\naerosol phase: aqueous\naerosol-phase water: H2O_aq\nreactants: [{species name: A}]\nproducts: [{species name: B}]\n",
			want: []Status{ReactionRequiresUnknownSpecies},
			path: "/reactions/0/aerosol-phase water",
		},
		{
			name: "condensed reactant outside aerosol phase",
			src:  "type: AQUEOUS_EQUILIBRIUM\naerosol phase: aqueous\naerosol-phase water: H2O\nreactants: [{species name: C}]\nproducts: [{species name: B}]\nk_reverse: 1\n",
			want: []Status{RequestedAerosolSpeciesNotIncludedInAerosolPhase},
			path: "/reactions/0/reactants/0/species name",
		},
		{
			name: "aqueous equilibrium missing k_reverse",
			src:  "type: AQUEOUS_EQUILIBRIUM\naerosol phase: aqueous\naerosol-phase water: H2O\nreactants: [{species name: A}]\nproducts: [{species name: B}]\n",
			want: []Status{RequiredKeyNotFound},
			path: "/reactions/0/k_reverse",
		},
		{
			name: "henry's law aerosol species outside phase",
			src:  "type: HL_PHASE_TRANSFER\ngas phase: gas\ngas-phase species: {species name: ethanol}\naerosol phase: aqueous\naerosol-phase species: {species name: ethanol}\naerosol-phase water: H2O\n",
			want: []Status{RequestedAerosolSpeciesNotIncludedInAerosolPhase},
			path: "/reactions/0/aerosol-phase species/species name",
		},
		{
			name: "simpol B of wrong length",
			src:  "type: SIMPOL_PHASE_TRANSFER\ngas phase: gas\ngas-phase species: {species name: ethanol}\naerosol phase: aqueous\naerosol-phase species: {species name: ethanol_aq}\nB: [1, 2, 3]\n",
			want: []Status{InvalidType},
			path: "/reactions/0/B",
		},
		{
			name: "negative coefficient",
			src:  "type: USER_DEFINED\ngas phase: gas\nreactants: [{species name: A, coefficient: -1}]\nproducts: [{species name: B}]\n",
			want: []Status{InvalidType},
			path: "/reactions/0/reactants/0/coefficient",
		},
		{
			name: "invalid key",
			src:  "type: TUNNELING\ngas phase: gas\nreactants: [{species name: A}]\nproducts: [{species name: B}]\nD: 1\n",
			want: []Status{InvalidKey},
			path: "/reactions/0/D",
		},
		{
			name: "component invalid key",
			src:  "type: TUNNELING\ngas phase: gas\nreactants: [{species name: A, qty: 1}]\nproducts: [{species name: B}]\n",
			want: []Status{InvalidKey},
			path: "/reactions/0/reactants/0/qty",
		},
		{
			name: "unknown type",
			src:  "type: FOO\n",
			want: []Status{ObjectTypeNotFound},
			path: "/reactions/0/type",
		},
		{
			name: "missing type",
			src:  "gas phase: gas\n",
			want: []Status{RequiredKeyNotFound},
			path: "/reactions/0/type",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, iss := parseOne(t, tc.src)
			require.Equal(t, tc.want, iss.Statuses(), "%v", iss)
			assert.Equal(t, tc.path, iss[0].Path)
		})
	}
}

func TestParseReaction_CollectsAllIssues(t *testing.T) {
	_, iss := parseOne(t, `
type: CONDENSED_PHASE_ARRHENIUS
aerosol phase: aqueous
aerosol-phase water: C
reactants: [{species name: D}]
products: [{species name: C}]
bogus: 1
`)
	assert.ElementsMatch(t, []Status{
		InvalidKey,
		RequestedAerosolSpeciesNotIncludedInAerosolPhase,
		ReactionRequiresUnknownSpecies,
		RequestedAerosolSpeciesNotIncludedInAerosolPhase,
	}, iss.Statuses())
	assert.Equal(t, InvalidKey, iss.First())
}

func TestParseReactions_SkipsFailedEntries(t *testing.T) {
	n := mustYAML(t, `
- type: EMISSION
  gas phase: gas
  products: [{species name: A}]
- type: EMISSION
  gas phase: gas
  products: [{species name: nope}]
- type: FIRST_ORDER_LOSS
  gas phase: gas
  reactants: [{species name: A}]
  __comment: sink
`)
	rxs, iss := parseReactions(n, Root().Field(keyReactions), testCatalog())
	assert.Equal(t, []Status{ReactionRequiresUnknownSpecies}, iss.Statuses())
	assert.Equal(t, "/reactions/1/products/0/species name", iss[0].Path)
	assert.Equal(t, 2, rxs.Len())
	require.Len(t, rxs.FirstOrderLoss, 1)
	v, _ := rxs.FirstOrderLoss[0].Unknown.Get("__comment")
	assert.Equal(t, `"sink"`, v)
}

func TestReactionTypes_CoversRegistry(t *testing.T) {
	types := ReactionTypes()
	assert.Len(t, types, 16)
	assert.True(t, slices.IsSorted(types))
}
