package world_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cory-johannsen/castle/internal/game/item"
	"github.com/cory-johannsen/castle/internal/game/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validWorldYAML = `
world:
  name: Crypt
  start_room: gate
  goal: { item: Skull, room: gate }
  rooms:
    - id: gate
      name: Crypt Gate
      exits: { n: tomb }
    - id: tomb
      name: Tomb
      locked: true
      key: Bone Key
      exits: { south: gate }
      items:
        - { name: Skull }
        - { name: Torch, kind: weapon, bonus: 2 }
        - { name: Bread, kind: consumable, heal: 3 }
        - { name: Charm, kind: scripted, script: "function on_used(p) p.heal(1) end" }
      enemies:
        - { name: Ghoul, kind: custom, health: 7, guards: Skull, modifiers: [ { item: Torch, delta: 2 } ] }
        - { name: Bat, kind: vampire }
`

type stubCompiler struct{ compiled []string }

func (s *stubCompiler) Compile(name, _ string) (item.Effect, error) {
	s.compiled = append(s.compiled, name)
	return item.Plain{}, nil
}

func TestLoadBlueprintFromBytes_Valid(t *testing.T) {
	bp, err := world.LoadBlueprintFromBytes([]byte(validWorldYAML))
	require.NoError(t, err)
	assert.Equal(t, "Crypt", bp.Name)
	require.Len(t, bp.Rooms, 2)

	compiler := &stubCompiler{}
	g, err := bp.Build(compiler)
	require.NoError(t, err)
	assert.Equal(t, []string{"Charm"}, compiler.compiled)

	tomb, ok := g.Start.Neighbor(world.North)
	require.True(t, ok)
	assert.True(t, tomb.IsLocked())
	assert.Equal(t, "Bone Key", tomb.Key())
	assert.Len(t, tomb.Items(), 4)

	ghoul := tomb.Enemy("ghoul")
	require.NotNil(t, ghoul)
	assert.Equal(t, 7, ghoul.Health())
	assert.Equal(t, 1, ghoul.Damage(), "zero damage takes the kind default")
	assert.False(t, tomb.Item("Skull").CanPickup())

	bat := tomb.Enemy("Bat")
	require.NotNil(t, bat)
	assert.Equal(t, 12, bat.Health())
	assert.Equal(t, 3, bat.Damage())
}

func TestBuild_WorldsAreIndependent(t *testing.T) {
	bp, err := world.LoadBlueprintFromBytes([]byte(validWorldYAML))
	require.NoError(t, err)
	a, err := bp.Build(&stubCompiler{})
	require.NoError(t, err)
	b, err := bp.Build(&stubCompiler{})
	require.NoError(t, err)

	ta, _ := a.Start.Neighbor(world.North)
	tb, _ := b.Start.Neighbor(world.North)
	ta.Unlock()
	ta.RemoveItemNamed("Torch")
	assert.True(t, tb.IsLocked())
	assert.NotNil(t, tb.Item("Torch"))
	assert.NotSame(t, ta.Item("Skull"), tb.Item("Skull"))
}

func TestBuild_ScriptedWithoutCompiler(t *testing.T) {
	bp, err := world.LoadBlueprintFromBytes([]byte(validWorldYAML))
	require.NoError(t, err)
	_, err = bp.Build(nil)
	assert.ErrorContains(t, err, "script engine")
}

func TestLoadBlueprintFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crypt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validWorldYAML), 0644))
	bp, err := world.LoadBlueprintFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "gate", bp.StartRoom)

	_, err = world.LoadBlueprintFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadBlueprintFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "malformed",
			yaml: ":::",
			want: "parsing world YAML",
		},
		{
			name: "missing name",
			yaml: "world:\n  start_room: a\n  rooms:\n    - { id: a, name: A }\n",
			want: "name",
		},
		{
			name: "unknown start room",
			yaml: "world:\n  name: W\n  start_room: z\n  rooms:\n    - { id: a, name: A }\n",
			want: "start_room \"z\"",
		},
		{
			name: "bad direction",
			yaml: "world:\n  name: W\n  start_room: a\n  rooms:\n    - { id: a, name: A, exits: { up: b } }\n    - { id: b, name: B }\n",
			want: "direction",
		},
		{
			name: "dangling exit",
			yaml: "world:\n  name: W\n  start_room: a\n  rooms:\n    - { id: a, name: A, exits: { east: b } }\n",
			want: "unknown room",
		},
		{
			name: "conflicting exits",
			yaml: "world:\n  name: W\n  start_room: a\n  rooms:\n    - { id: a, name: A, exits: { east: b } }\n    - { id: b, name: B, exits: { west: c } }\n    - { id: c, name: C }\n",
			want: "conflicts",
		},
		{
			name: "two rooms claim the same side",
			yaml: "world:\n  name: W\n  start_room: a\n  rooms:\n    - { id: a, name: A, exits: { north: c } }\n    - { id: b, name: B, exits: { north: c } }\n    - { id: c, name: C }\n",
			want: "room \"b\": exit north to \"c\" conflicts with \"a\"'s north exit to \"c\"",
		},
		{
			name: "duplicate room id",
			yaml: "world:\n  name: W\n  start_room: a\n  rooms:\n    - { id: a, name: A }\n    - { id: a, name: B }\n",
			want: "duplicate id",
		},
		{
			name: "guard missing item",
			yaml: "world:\n  name: W\n  start_room: a\n  rooms:\n    - { id: a, name: A, enemies: [ { name: Rat, guards: Cheese } ] }\n",
			want: "not in the room",
		},
		{
			name: "unknown enemy kind",
			yaml: "world:\n  name: W\n  start_room: a\n  rooms:\n    - { id: a, name: A, enemies: [ { name: Rat, kind: ghost } ] }\n",
			want: "oneof",
		},
		{
			name: "scripted without script",
			yaml: "world:\n  name: W\n  start_room: a\n  rooms:\n    - { id: a, name: A, items: [ { name: Orb, kind: scripted } ] }\n",
			want: "required_if",
		},
		{
			name: "script syntax error",
			yaml: "world:\n  name: W\n  start_room: a\n  rooms:\n    - { id: a, name: A, items: [ { name: Orb, kind: scripted, script: \"function (\" } ] }\n",
			want: "script",
		},
		{
			name: "goal item missing",
			yaml: "world:\n  name: W\n  start_room: a\n  goal: { item: Crown, room: a }\n  rooms:\n    - { id: a, name: A }\n",
			want: "goal item",
		},
		{
			name: "goal half set",
			yaml: "world:\n  name: W\n  start_room: a\n  goal: { item: Crown }\n  rooms:\n    - { id: a, name: A, items: [ { name: Crown } ] }\n",
			want: "required_with",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := world.LoadBlueprintFromBytes([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
