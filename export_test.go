package mechconf

import (
	"testing"

	j "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionSchemas_CoverRegistry(t *testing.T) {
	assert.Len(t, reactionSchemas, len(registry))
	for _, rt := range ReactionTypes() {
		s, ok := ReactionJSONSchema(rt)
		require.True(t, ok, rt)
		assert.Equal(t, []any{string(rt)}, s.Properties[keyType].Enum, rt)
		assert.Contains(t, s.Required, keyType, rt)
	}
	_, ok := ReactionJSONSchema("NOPE")
	assert.False(t, ok)
}

func TestReactionJSONSchema_ValueTypes(t *testing.T) {
	s, _ := ReactionJSONSchema(TypeSimpolPhaseTransfer)
	b := s.Properties[keyB]
	assert.Equal(t, "array", b.Type)
	require.NotNil(t, b.MinItems)
	assert.Equal(t, simpolParams, *b.MinItems)
	assert.Equal(t, "object", s.Properties[keyGasPhaseSpecies].Type)

	s, _ = ReactionJSONSchema(TypeArrhenius)
	assert.Equal(t, "number", s.Properties[keyB].Type)
	assert.Equal(t, "array", s.Properties[keyReactants].Type)
	assert.Equal(t, []string{keySpeciesName}, s.Properties[keyReactants].Items.Required)
	require.NotNil(t, s.AdditionalProperties)
	assert.False(t, *s.AdditionalProperties)
	assert.Contains(t, s.PatternProperties, "^__")
}

func TestJSONSchema_Document(t *testing.T) {
	root := JSONSchema()
	assert.Equal(t, mechanismSchema.Required, root.Required)
	assert.Len(t, root.Properties[keyReactions].Items.OneOf, len(registry))
	assert.Equal(t, "string", root.Properties[keyPhases].Items.Properties[keySpecies].Items.Type)
	assert.Equal(t, "boolean", root.Properties[keySpecies].Items.Properties[keyIsThirdBody].Type)

	b, err := j.Marshal(root)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"$schema":"https://json-schema.org/draft/2020-12/schema"`)
	assert.Contains(t, string(b), `"additionalProperties":false`)
}
