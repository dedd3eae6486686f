package plan

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "YAML", "text"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	res := buildYAML(t, gameYAML)

	data, err := Export(res, FormatJSON)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	plans, ok := decoded["plans"].([]any)
	require.True(t, ok)
	require.Len(t, plans, 2)

	game := plans[0].(map[string]any)
	assert.Equal(t, "game_event", game["namespace"])
	assert.Equal(t, "event", game["mode"])

	types := game["types"].([]any)
	first := types[0].(map[string]any)
	assert.Equal(t, "Unit", first["kind"])

	scored := types[2].(map[string]any)
	unwrap := scored["policy"].(map[string]any)["unwrap"].(map[string]any)
	assert.Equal(t, "explicit", unwrap["origin"])
}

func TestExportYAML(t *testing.T) {
	res := buildYAML(t, gameYAML)

	data, err := Export(res, FormatYAML)
	require.NoError(t, err)

	var decoded struct {
		Plans []struct {
			Enum      string `yaml:"enum"`
			Namespace string `yaml:"namespace"`
			Mode      string `yaml:"mode"`
		} `yaml:"plans"`
	}

	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded.Plans, 2)
	assert.Equal(t, "combat_event", decoded.Plans[1].Namespace)
	assert.Equal(t, "entity", decoded.Plans[1].Mode)
}

func TestFormatReport(t *testing.T) {
	res := buildYAML(t, gameYAML+`
  - name: Broken
    mode: entity
    variants: [Unit]
`)

	text := string(must(Export(res, FormatText)))

	assert.Contains(t, text, "=== GameEvent -> package game_event (event) ===")
	assert.Contains(t, text, "PlayerScored [Named] unwrap=Player uint32")
	assert.Contains(t, text, "Hit [Named] target=Entity propagate=event.ChildOf\n")
	assert.Contains(t, text, "Attack [Named] target=Attacker propagate=hier.Owner auto")
	assert.Contains(t, text, "Problems:")
	assert.Contains(t, text, "error: [Broken] Unit: [shape_violation]")
}

func must(data []byte, err error) []byte {
	if err != nil {
		panic(err)
	}

	return data
}
