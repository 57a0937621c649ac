package parser

import (
	"testing"

	"github.com/helmcode/problem-summary/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMirrors_Single(t *testing.T) {
	mirrors, err := ParseMirrors([]byte(`{"codeforces": "https://cf.example/123"}`))
	require.NoError(t, err)
	assert.Equal(t, []model.Mirror{{Name: "codeforces", URL: "https://cf.example/123"}}, mirrors)
}

func TestParseMirrors_KeepsDocumentOrder(t *testing.T) {
	data := []byte(`{
	"zeta": "https://z.example",
	"alpha": "https://a.example",
	"mid": "https://m.example"
}`)

	mirrors, err := ParseMirrors(data)
	require.NoError(t, err)
	require.Len(t, mirrors, 3)
	assert.Equal(t, "zeta", mirrors[0].Name)
	assert.Equal(t, "alpha", mirrors[1].Name)
	assert.Equal(t, "mid", mirrors[2].Name)
}

func TestParseMirrors_SkipsNonStringValues(t *testing.T) {
	data := []byte(`{"a": 1, "b": "https://b.example", "c": null, "d": {"x": "y"}, "e": ["f"], "g": true}`)

	mirrors, err := ParseMirrors(data)
	require.NoError(t, err)
	assert.Equal(t, []model.Mirror{{Name: "b", URL: "https://b.example"}}, mirrors)
}

func TestParseMirrors_Empty(t *testing.T) {
	mirrors, err := ParseMirrors([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, mirrors)

	mirrors, err = ParseMirrors([]byte("{}"))
	require.NoError(t, err)
	assert.Empty(t, mirrors)
}

func TestParseMirrors_Malformed(t *testing.T) {
	inputs := map[string]string{
		"array":    `["https://a.example"]`,
		"string":   `"https://a.example"`,
		"broken":   `{"a": "https://a.example"`,
		"trailing": `{"a": "x"} {"b": "y"}`,
		"garbage":  `not json`,
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMirrors([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestParseMirrors_NotMapping(t *testing.T) {
	_, err := ParseMirrors([]byte(`[1, 2]`))
	assert.ErrorIs(t, err, ErrNotMapping)
}
