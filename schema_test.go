package mechconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/mechconf/document"
)

func mustYAML(t *testing.T, src string) *document.Node {
	t.Helper()
	n, err := document.Parse([]byte(src), document.FormatYAML)
	require.NoError(t, err)
	return n
}

func TestValidateSchema_CollectsEverythingInOrder(t *testing.T) {
	n := mustYAML(t, "b: 1\nzzz: 2\n__note: x\nyyy: 4\n")
	iss := ValidateSchema(n, Root(), []string{"a", "b", "c"}, []string{"d"})

	assert.Equal(t, []Status{InvalidKey, InvalidKey, RequiredKeyNotFound, RequiredKeyNotFound}, iss.Statuses())
	paths := make([]string, len(iss))
	for i, it := range iss {
		paths[i] = it.Path
	}
	assert.Equal(t, []string{"/zzz", "/yyy", "/a", "/c"}, paths)
	assert.Equal(t, 2, iss[0].Line)
}

func TestValidateSchema_AcceptsValidNode(t *testing.T) {
	n := mustYAML(t, "a: 1\nd: 2\n__x: [1, 2]\n")
	assert.Empty(t, ValidateSchema(n, Root(), []string{"a"}, []string{"d"}))
}

func TestValidateSchema_NonMapping(t *testing.T) {
	n := mustYAML(t, "- a\n- b\n")
	iss := ValidateSchema(n, At("/species/0"), []string{"name"}, nil)
	require.Len(t, iss, 1)
	assert.Equal(t, InvalidType, iss[0].Status)
	assert.Equal(t, "/species/0", iss[0].Path)
}

func TestReader_TypedReads(t *testing.T) {
	n := mustYAML(t, "A: 1.5\nB: \"2e3\"\nC: [1]\nflag: true\n")
	r := &Reader{n: n, p: Root()}

	assert.Equal(t, 1.5, r.OptionalFloat("A", 0))
	assert.Equal(t, 2000.0, r.OptionalFloat("B", 0))
	assert.Equal(t, 7.0, r.OptionalFloat("missing", 7))
	assert.True(t, r.OptionalBool("flag", false))
	assert.False(t, r.Failed())

	assert.Equal(t, 3.0, r.OptionalFloat("C", 3))
	require.Len(t, r.Issues(), 1)
	assert.Equal(t, InvalidType, r.Issues()[0].Status)
	assert.Equal(t, "/C", r.Issues()[0].Path)
}

func TestReader_ArrheniusC(t *testing.T) {
	r := &Reader{n: mustYAML(t, "Ea: 2.0e-23\n"), p: Root()}
	assert.InDelta(t, -2.0e-23/BoltzmannConstant, r.ArrheniusC(keyC, keyEa), 1e-9)
	assert.False(t, r.Failed())

	r = &Reader{n: mustYAML(t, "C: 10\nEa: 2.0e-23\n"), p: Root()}
	r.ArrheniusC(keyC, keyEa)
	assert.Equal(t, []Status{MutuallyExclusiveOption}, r.Issues().Statuses())
}

func TestUnknownProperties_KeepsSourceText(t *testing.T) {
	n := mustYAML(t, "name: A\n__tol: 1.0e-30\n__word: key\n__list: [1, b]\n__map: {x: 1}\n")
	props := UnknownProperties(n)
	assert.Equal(t, []string{"__tol", "__word", "__list", "__map"}, props.Keys())

	v, _ := props.Get("__tol")
	assert.Equal(t, `"1.0e-30"`, v)
	v, _ = props.Get("__word")
	assert.Equal(t, `"key"`, v)
	v, _ = props.Get("__list")
	assert.Equal(t, `[1,"b"]`, v)
	v, _ = props.Get("__map")
	assert.Equal(t, `{"x":1}`, v)
}

func TestPathRef_EscapesPointerSegments(t *testing.T) {
	p := Root().Field("reactions").Index(2).Field("a/b~c")
	assert.Equal(t, "/reactions/2/a~1b~0c", p.Pointer())
	assert.Equal(t, "/", Root().Pointer())
}
