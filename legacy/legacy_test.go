package legacy_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/mechconf"
	"github.com/reoring/mechconf/legacy"
)

func TestParse_ValidDirectory(t *testing.T) {
	res, err := legacy.Parse(filepath.Join("testdata", "valid"))
	require.NoError(t, err)
	require.True(t, res.OK(), "%v", res.Errors)
	m := res.Mechanism

	assert.Equal(t, "music box interactive configuration", m.Name)
	assert.Equal(t, 1.0e-4, m.RelativeTolerance)
	require.Len(t, m.Species, 4)
	assert.Equal(t, 1.0e-30, m.Species[0].Properties[mechconf.PropAbsoluteTolerance])
	note, _ := m.Species[0].Unknown.Get("__note")
	assert.Equal(t, `"first"`, note)
	assert.True(t, m.Species[3].IsThirdBody)

	require.Len(t, m.Phases, 1)
	assert.Equal(t, legacy.GasPhase, m.Phases[0].Name)
	assert.Equal(t, []string{"A", "B", "C", "M"}, m.Phases[0].Species)

	rs := m.Reactions
	assert.Equal(t, 10, rs.Len())
	require.Len(t, rs.Arrhenius, 1)
	arr := rs.Arrhenius[0]
	assert.Equal(t, "R1", arr.Name)
	assert.Equal(t, legacy.GasPhase, arr.GasPhase)
	assert.Equal(t, []mechconf.ReactionComponent{{Species: "A", Coefficient: 2}}, arr.Reactants)
	assert.Equal(t, []mechconf.ReactionComponent{
		{Species: "B", Coefficient: 0.5},
		{Species: "C", Coefficient: 1},
	}, arr.Products)
	assert.Equal(t, -340.0, arr.C)
	assert.Equal(t, 300.0, arr.D)

	assert.Equal(t, -2.4, rs.Troe[0].K0B)
	assert.Equal(t, 32.1, rs.TernaryChemicalActivation[0].K0A)
	assert.Equal(t, 9.0, rs.Branched[0].N)
	assert.Equal(t, 1.0e8, rs.Tunneling[0].C)
	assert.Equal(t, "A", rs.Surface[0].GasPhaseSpecies.Species)
	assert.Equal(t, 0.2, rs.Surface[0].ReactionProbability)
	assert.Equal(t, 2.5, rs.Photolysis[0].ScalingFactor)
	assert.Equal(t, "A", rs.Emission[0].Products[0].Species)
	assert.Equal(t, "C", rs.FirstOrderLoss[0].Reactants[0].Species)
	assert.Equal(t, 0.5, rs.FirstOrderLoss[0].ScalingFactor)
	assert.Equal(t, 1.0, rs.UserDefined[0].ScalingFactor)
}

func TestParse_RootFileAndGlobEntries(t *testing.T) {
	res, err := legacy.Parse(filepath.Join("testdata", "glob", "config.json"))
	require.NoError(t, err)
	require.True(t, res.OK(), "%v", res.Errors)
	assert.Len(t, res.Mechanism.Species, 2)
	require.Len(t, res.Mechanism.Reactions.Photolysis, 1)
	assert.Equal(t, "jO3", res.Mechanism.Reactions.Photolysis[0].Name)
}

func TestParse_DiscoveryFailures(t *testing.T) {
	for _, dir := range []string{"does_not_exist", "missing_entry", "empty", "no_list"} {
		t.Run(dir, func(t *testing.T) {
			res, err := legacy.Parse(filepath.Join("testdata", dir))
			require.NoError(t, err)
			assert.Nil(t, res.Mechanism)
			assert.Equal(t, mechconf.FileNotFound, res.Status)
			assert.False(t, res.OK())
		})
	}
}

func TestCampFiles_ReportsEveryMissingEntry(t *testing.T) {
	_, err := legacy.CampFiles(filepath.Join("testdata", "missing_entry"))
	iss, ok := mechconf.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, []mechconf.Status{mechconf.FileNotFound, mechconf.FileNotFound}, iss.Statuses())
	assert.Equal(t, "/camp-files/1", iss[1].Path)
}

func TestCampFiles_ResolvesRelativeToRoot(t *testing.T) {
	files, err := legacy.CampFiles(filepath.Join("testdata", "valid", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("testdata", "valid", "species.json"),
		filepath.Join("testdata", "valid", "reactions.json"),
	}, files)
}

func TestParse_UnknownTypeIsFatal(t *testing.T) {
	res, err := legacy.Parse(filepath.Join("testdata", "unknown_type"))
	var ute *legacy.UnknownTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "AERO_REP_SINGLE_PARTICLE", ute.Type)
	assert.Equal(t, "/camp-data/1", ute.Path)
	assert.Equal(t, filepath.Join("testdata", "unknown_type", "data.yaml"), ute.File)
	assert.Equal(t, 5, ute.Line)

	assert.Equal(t, mechconf.ObjectTypeNotFound, res.Status)
	assert.False(t, res.OK())
	require.Len(t, res.Errors, 1)
	assert.Equal(t, mechconf.ObjectTypeNotFound, res.Errors[0].Status)
	assert.Equal(t, "/camp-data/1", res.Errors[0].Path)
	assert.Contains(t, res.Errors[0].Message, "AERO_REP_SINGLE_PARTICLE")

	require.NotNil(t, res.Mechanism)
	require.Len(t, res.Mechanism.Species, 1)
	assert.Equal(t, "A", res.Mechanism.Species[0].Name)
}

func TestParse_StopsFileAtFirstFailure(t *testing.T) {
	res, err := legacy.Parse(filepath.Join("testdata", "bad_record"))
	require.NoError(t, err)
	assert.Equal(t, mechconf.ReactionRequiresUnknownSpecies, res.Status)
	assert.Equal(t, []mechconf.Status{mechconf.ReactionRequiresUnknownSpecies, mechconf.InvalidKey}, res.Errors.Statuses())
	assert.Equal(t, "/camp-data/1/reactants/Z", res.Errors[0].Path)
	assert.Contains(t, res.Errors[0].Message, "a.yaml")

	require.NotNil(t, res.Mechanism)
	names := make([]string, len(res.Mechanism.Species))
	for i, s := range res.Mechanism.Species {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"A", "C"}, names)
	assert.Equal(t, []string{"A", "C"}, res.Mechanism.Phases[0].Species)
	assert.Zero(t, res.Mechanism.Reactions.Len())
}

func TestTypes(t *testing.T) {
	types := legacy.Types()
	assert.Contains(t, types, "MECHANISM")
	assert.Contains(t, types, "WENNBERG_NO_RO2")
	assert.Len(t, types, 15)
}
