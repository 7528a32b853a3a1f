package mechconf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecies_Valid(t *testing.T) {
	n := mustYAML(t, `
- name: A
  __absolute tolerance: 1.0e-30
- name: H2O2
  HLC(298K) [mol m-3 Pa-1]: 1.011596348
  HLC exponential factor [K]: 6340
  diffusion coefficient [m2 s-1]: 1.46e-05
  N star: 1.74
  molecular weight [kg mol-1]: 0.0340147
  density [kg m-3]: 1000.0
- name: M
  tracer type: THIRD_BODY
  is third body: true
`)
	species, iss := parseSpecies(n, Root().Field(keySpecies))
	require.Empty(t, iss)
	require.Len(t, species, 3)

	assert.Equal(t, "A", species[0].Name)
	assert.Empty(t, species[0].Properties)
	tol, ok := species[0].Unknown.Get("__absolute tolerance")
	require.True(t, ok)
	assert.Equal(t, `"1.0e-30"`, tol)

	h2o2 := species[1]
	assert.Len(t, h2o2.Properties, 6)
	hlc, ok := h2o2.Property(PropHenrysLawConstant)
	require.True(t, ok)
	assert.Equal(t, 1.011596348, hlc)
	assert.Equal(t, 6340.0, h2o2.Properties[PropHenrysLawExponential])
	assert.Equal(t, 1000.0, h2o2.Properties[PropDensity])

	assert.Equal(t, "THIRD_BODY", species[2].TracerType)
	assert.True(t, species[2].IsThirdBody)
}

func TestParseSpecies_Errors(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		want   []Status
		parsed int
	}{
		{
			name:   "duplicate names",
			src:    "- name: A\n- name: B\n- name: A\n- name: B\n- name: A\n",
			want:   []Status{DuplicateSpeciesDetected},
			parsed: 5,
		},
		{
			name:   "missing name",
			src:    "- name: A\n- density [kg m-3]: 1\n",
			want:   []Status{RequiredKeyNotFound},
			parsed: 1,
		},
		{
			name:   "invalid key",
			src:    "- name: A\n  weight: 1\n",
			want:   []Status{InvalidKey},
			parsed: 0,
		},
		{
			name:   "non numeric property",
			src:    "- name: A\n  N star: lots\n",
			want:   []Status{InvalidType},
			parsed: 0,
		},
		{
			name:   "duplicate of a rejected entry",
			src:    "- name: A\n- name: A\n  bogus: 1\n",
			want:   []Status{InvalidKey, DuplicateSpeciesDetected},
			parsed: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			species, iss := parseSpecies(mustYAML(t, tc.src), Root().Field(keySpecies))
			assert.Equal(t, tc.want, iss.Statuses())
			assert.Len(t, species, tc.parsed)
		})
	}
}

func TestParseSpecies_InfiniteProperty(t *testing.T) {
	species, iss := parseSpecies(mustYAML(t, "- name: A\n  N star: .inf\n"), Root().Field(keySpecies))
	require.Empty(t, iss)
	require.Len(t, species, 1)
	assert.True(t, math.IsInf(species[0].Properties[PropNStar], 1))
}

func TestParseSpecies_DuplicateMessageNamesEachRepeat(t *testing.T) {
	_, iss := parseSpecies(mustYAML(t, "- name: A\n- name: B\n- name: A\n- name: B\n"), Root().Field(keySpecies))
	require.Len(t, iss, 1)
	assert.Equal(t, "/species", iss[0].Path)
	assert.Contains(t, iss[0].Message, "A, B")
}

func TestParsePhases(t *testing.T) {
	species := []Species{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	t.Run("valid", func(t *testing.T) {
		n := mustYAML(t, `
- name: gas
  species: [A, B]
  __other: key
- name: aerosols
  species: [C]
  __other1: key1
  __other2: key2
`)
		phases, iss := parsePhases(n, Root().Field(keyPhases), species)
		require.Empty(t, iss)
		require.Len(t, phases, 2)
		assert.Equal(t, []string{"A", "B"}, phases[0].Species)
		v, _ := phases[0].Unknown.Get("__other")
		assert.Equal(t, `"key"`, v)
		assert.Equal(t, []string{"__other1", "__other2"}, phases[1].Unknown.Keys())
	})

	t.Run("unknown species keeps known members", func(t *testing.T) {
		n := mustYAML(t, "- name: gas\n  species: [A, X, B, Y]\n")
		phases, iss := parsePhases(n, Root().Field(keyPhases), species)
		assert.Equal(t, []Status{PhaseRequiresUnknownSpecies, PhaseRequiresUnknownSpecies}, iss.Statuses())
		assert.Equal(t, "/phases/0/species/1", iss[0].Path)
		require.Len(t, phases, 1)
		assert.Equal(t, []string{"A", "B"}, phases[0].Species)
	})

	t.Run("duplicate", func(t *testing.T) {
		n := mustYAML(t, "- name: gas\n  species: [A]\n- name: gas\n  species: [B]\n")
		_, iss := parsePhases(n, Root().Field(keyPhases), species)
		assert.Equal(t, []Status{DuplicatePhasesDetected}, iss.Statuses())
	})

	t.Run("duplicate of a rejected entry", func(t *testing.T) {
		n := mustYAML(t, "- name: gas\n  species: [A]\n- name: gas\n  species: [B]\n  kind: gas\n")
		phases, iss := parsePhases(n, Root().Field(keyPhases), species)
		assert.Equal(t, []Status{InvalidKey, DuplicatePhasesDetected}, iss.Statuses())
		assert.Len(t, phases, 1)
	})

	t.Run("missing species key", func(t *testing.T) {
		n := mustYAML(t, "- name: gas\n")
		phases, iss := parsePhases(n, Root().Field(keyPhases), species)
		assert.Equal(t, []Status{RequiredKeyNotFound}, iss.Statuses())
		assert.Empty(t, phases)
	})

	t.Run("invalid key", func(t *testing.T) {
		n := mustYAML(t, "- name: gas\n  species: [A]\n  kind: gas\n")
		_, iss := parsePhases(n, Root().Field(keyPhases), species)
		assert.Equal(t, []Status{InvalidKey}, iss.Statuses())
	})

	t.Run("species not a sequence", func(t *testing.T) {
		n := mustYAML(t, "- name: gas\n  species: A\n")
		_, iss := parsePhases(n, Root().Field(keyPhases), species)
		assert.Equal(t, []Status{InvalidType}, iss.Statuses())
	})
}
