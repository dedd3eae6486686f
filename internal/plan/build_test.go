package plan

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumevent-generator/internal/decl"
	"enumevent-generator/internal/diagnostic"
	"enumevent-generator/internal/policy"
)

const gameYAML = `
enums:
  - name: GameEvent
    doc: Events of a match.
    variants:
      - GameOver
      - name: Victory
        fields: [string]
      - name: PlayerScored
        doc: A player scored.
        fields:
          player: {type: uint32, markers: [unwrap], tag: 'json:"player"'}
          points: uint32
  - name: CombatEvent
    mode: entity
    directives: [propagate]
    variants:
      - name: Hit
        fields:
          entity: event.Entity
          damage: int
      - name: Attack
        directives: [auto_propagate, "propagate = hier.Owner"]
        fields:
          attacker: {type: event.Entity, markers: [target]}
          entity: event.Entity
`

func buildYAML(t *testing.T, yaml string) *Result {
	t.Helper()

	f, err := decl.Parse([]byte(yaml))
	require.NoError(t, err)

	return BuildFile(f, DefaultConfig())
}

func planByEnum(res *Result, name string) *EnumPlan {
	for _, p := range res.Plans {
		if p.Enum == name {
			return p
		}
	}

	return nil
}

func TestBuildFile(t *testing.T) {
	res := buildYAML(t, gameYAML)
	require.True(t, res.Diagnostics.IsValid(), "errors: %v", res.Diagnostics.Errors)
	require.Len(t, res.Plans, 2)

	game := planByEnum(res, "GameEvent")
	require.NotNil(t, game)
	assert.Equal(t, "game_event", game.Namespace)
	assert.Equal(t, "Events of a match.", game.Doc)
	assert.Equal(t, "enumevent-generator/event", game.RuntimeImport)
	assert.Equal(t, "event", game.RuntimeAlias)
	assert.Empty(t, game.EntityType)
	assert.False(t, game.IsGeneric())
	assert.False(t, game.IsEntity())
	require.Len(t, game.Types, 3, spew.Sdump(game))

	over := game.Types[0]
	assert.Equal(t, "GameOver", over.Name)
	assert.Equal(t, "game_event.GameOver", over.QualifiedName)
	assert.Equal(t, "GameEvent.GameOver", over.EventName)
	assert.Equal(t, "NewGameOver", over.Constructor())
	assert.Equal(t, decl.KindUnit, over.Kind)
	assert.Empty(t, over.Fields)
	assert.Nil(t, over.UnwrapField())

	victory := game.Types[1]
	require.Len(t, victory.Fields, 1)
	assert.Equal(t, Field{GoName: "Field0", Type: "string", Param: "field0"}, victory.Fields[0])
	require.NotNil(t, victory.UnwrapField())
	assert.Equal(t, "Field0", victory.UnwrapField().GoName)

	scored := game.Types[2]
	assert.Equal(t, "A player scored.", scored.Doc)
	assert.Equal(t, `json:"player"`, scored.Fields[0].Tag)
	assert.Equal(t, "player", scored.Fields[0].Param)
	assert.Equal(t, "Player", scored.UnwrapField().GoName)
	assert.Nil(t, scored.TargetField())

	combat := planByEnum(res, "CombatEvent")
	require.NotNil(t, combat)
	assert.True(t, combat.IsEntity())
	assert.Equal(t, "event.Entity", combat.EntityType)

	hit := combat.Types[0]
	assert.Equal(t, "Entity", hit.TargetField().GoName)
	assert.Nil(t, hit.UnwrapField())
	require.NotNil(t, hit.Policy.Propagation)
	assert.True(t, hit.Policy.Propagation.IsDefault())
	assert.False(t, hit.Policy.AutoPropagate())

	attack := combat.Types[1]
	assert.Equal(t, "Attacker", attack.TargetField().GoName)
	assert.Equal(t, &policy.Propagation{Relationship: "hier.Owner", Auto: true, Origin: policy.OriginVariant},
		attack.Policy.Propagation)
}

func TestBuildFile_FailingEnumDoesNotStopSiblings(t *testing.T) {
	res := buildYAML(t, `
enums:
  - name: Broken
    mode: entity
    variants:
      - Unit
  - name: NoTarget
    mode: entity
    variants:
      - name: Lost
        fields:
          who: event.Entity
  - name: Fine
    variants: [Ok]
`)

	require.Len(t, res.Plans, 1)
	assert.Equal(t, "Fine", res.Plans[0].Enum)

	assert.True(t, res.Diagnostics.HasCode(diagnostic.CodeShapeViolation))
	assert.True(t, res.Diagnostics.HasCode(diagnostic.CodeMissingTarget))

	broken := res.Diagnostics.ForEnum("Broken")
	assert.Len(t, broken.Errors, 1)
}

func TestBuild_Generics(t *testing.T) {
	res := buildYAML(t, `
enums:
  - name: Wrapper
    type_params:
      - {name: T, constraint: comparable}
      - {name: U}
    where:
      - {param: T, constraint: fmt.Stringer}
    variants:
      - Empty
      - name: Left
        fields: {item: T}
      - name: Both
        fields: [T, "[]U"]
`)
	require.True(t, res.Diagnostics.IsValid(), "errors: %v", res.Diagnostics.Errors)
	require.Len(t, res.Plans, 1)

	p := res.Plans[0]
	assert.True(t, p.IsGeneric())
	assert.Equal(t, "[T interface{ comparable; fmt.Stringer }, U any]", p.TypeParams)
	assert.Equal(t, "[T, U]", p.TypeArgs)

	assert.Equal(t, "[0]*struct{ _ T; _ U }", p.Types[0].Phantom)
	assert.Equal(t, "[0]*U", p.Types[1].Phantom)
	assert.Empty(t, p.Types[2].Phantom, spew.Sdump(p.Types[2].Usage))
	assert.Equal(t, []string{"T", "U"}, p.Types[2].Usage.Used)
}

func TestBuild_ParamNames(t *testing.T) {
	res := buildYAML(t, `
enums:
  - name: Odd
    type_params: [{name: T}]
    variants:
      - name: Clash
        fields:
          type: string
          Clash: int
          T: T
          range: "[]int"
      - name: Pos
        fields: [int, bool]
`)
	require.True(t, res.Diagnostics.IsValid(), "errors: %v", res.Diagnostics.Errors)

	clash := res.Plans[0].Types[0]
	params := make([]string, len(clash.Fields))

	for i, f := range clash.Fields {
		params[i] = f.Param
	}

	assert.Equal(t, []string{"type_", "Clash_", "T_", "range_"}, params)

	pos := res.Plans[0].Types[1]
	assert.Equal(t, "field0", pos.Fields[0].Param)
	assert.Equal(t, "field1", pos.Fields[1].Param)
}

func TestBuild_ParamNamesStayDistinct(t *testing.T) {
	res := buildYAML(t, `
enums:
  - name: Odd
    variants:
      - name: Suffixed
        fields:
          type: string
          type_: int
          type__: bool
`)
	require.True(t, res.Diagnostics.IsValid(), "errors: %v", res.Diagnostics.Errors)

	fields := res.Plans[0].Types[0].Fields
	require.Len(t, fields, 3)
	assert.Equal(t, "type_", fields[0].Param)
	assert.Equal(t, "type__", fields[1].Param)
	assert.Equal(t, "type___", fields[2].Param)
}

func TestBuild_MethodNamedFields(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		rejected string
	}{
		{
			name: "value without unwrap",
			yaml: `
enums:
  - name: Box
    variants:
      - name: Pair
        fields:
          value: int
          other: int
`,
		},
		{
			name: "propagation names in event mode",
			yaml: `
enums:
  - name: Box
    variants:
      - name: Aimed
        fields:
          eventTarget: int
          traversal: string
`,
		},
		{
			name: "entity enum without propagation",
			yaml: `
enums:
  - name: Life
    mode: entity
    variants:
      - name: Born
        fields:
          entity: event.Entity
          autoPropagate: bool
`,
		},
		{
			name: "sole field is unwrapped",
			yaml: `
enums:
  - name: Box
    type_params: [{name: T}]
    variants:
      - name: Held
        fields:
          value: T
`,
			rejected: "Held.value",
		},
		{
			name: "explicit unwrap",
			yaml: `
enums:
  - name: Box
    variants:
      - name: Pair
        fields:
          setValue: int
          other: {type: int, markers: [unwrap]}
`,
			rejected: "Pair.setValue",
		},
		{
			name: "entity target method",
			yaml: `
enums:
  - name: Life
    mode: entity
    variants:
      - name: Born
        fields:
          entity: event.Entity
          eventTarget: int
`,
			rejected: "Born.eventTarget",
		},
		{
			name: "propagating variant",
			yaml: `
enums:
  - name: Life
    mode: entity
    directives: [propagate]
    variants:
      - name: Born
        fields:
          entity: event.Entity
          traversal: string
`,
			rejected: "Born.traversal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := buildYAML(t, tt.yaml)

			if tt.rejected == "" {
				require.True(t, res.Diagnostics.IsValid(), "errors: %v", res.Diagnostics.Errors)
				require.Len(t, res.Plans, 1)

				return
			}

			assert.Empty(t, res.Plans)
			require.Len(t, res.Diagnostics.Errors, 1, spew.Sdump(res.Diagnostics))
			assert.Equal(t, decl.CodeReservedFieldName, res.Diagnostics.Errors[0].Code)
			assert.Equal(t, tt.rejected, res.Diagnostics.Errors[0].Location)
		})
	}
}

func TestBuild_CustomRuntime(t *testing.T) {
	f, err := decl.Parse([]byte(`
enums:
  - name: CombatEvent
    mode: entity
    variants:
      - name: Hit
        fields:
          entity: ecs.Entity
`))
	require.NoError(t, err)

	res := BuildFile(f, Config{RuntimeImport: "example.com/engine/ecs"})
	require.True(t, res.Diagnostics.IsValid(), "errors: %v", res.Diagnostics.Errors)
	assert.Equal(t, "ecs", res.Plans[0].RuntimeAlias)
	assert.Equal(t, "ecs.Entity", res.Plans[0].EntityType)
	assert.Equal(t, "Entity", res.Plans[0].Types[0].TargetField().GoName)
}

func TestBuildFile_Nil(t *testing.T) {
	res := BuildFile(nil, DefaultConfig())
	assert.Empty(t, res.Plans)
	assert.False(t, res.Diagnostics.IsValid())
}
