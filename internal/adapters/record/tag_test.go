package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/fridgy/internal/domain"
)

func TestJSONAdaptedTag_ToModel(t *testing.T) {
	tag, err := NewJSONAdaptedTag("fresh").ToModel()
	require.NoError(t, err)
	assert.Equal(t, domain.MustTag("fresh"), tag)

	_, err = NewJSONAdaptedTag("not fresh").ToModel()
	require.Error(t, err)
	assert.Equal(t, domain.TagConstraints, err.Error())
}

func TestJSONAdaptedTag_JSON(t *testing.T) {
	out, err := json.Marshal([]JSONAdaptedTag{FromTag(domain.MustTag("fresh"))})
	require.NoError(t, err)
	assert.JSONEq(t, `["fresh"]`, string(out))

	var decoded []JSONAdaptedTag
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &decoded))
	assert.Equal(t, []JSONAdaptedTag{NewJSONAdaptedTag("a"), NewJSONAdaptedTag("b")}, decoded)
}

func TestJSONAdaptedTag_NullDecodesToInvalidTag(t *testing.T) {
	var decoded []JSONAdaptedTag
	require.NoError(t, json.Unmarshal([]byte(`[null]`), &decoded))
	require.Len(t, decoded, 1)

	_, err := decoded[0].ToModel()
	assert.True(t, domain.IsValidation(err))
}

func TestJSONAdaptedTag_YAML(t *testing.T) {
	out, err := yaml.Marshal(map[string][]JSONAdaptedTag{"tagged": {NewJSONAdaptedTag("fresh")}})
	require.NoError(t, err)
	assert.Equal(t, "tagged:\n    - fresh\n", string(out))

	var decoded map[string][]JSONAdaptedTag
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, []JSONAdaptedTag{NewJSONAdaptedTag("fresh")}, decoded["tagged"])
}
