package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/castle/content"
	"github.com/cory-johannsen/castle/internal/game/world"
)

func TestCastle_Layout(t *testing.T) {
	bp, err := content.Castle()
	require.NoError(t, err)
	g, err := bp.Build(nil)
	require.NoError(t, err)

	assert.Equal(t, 9, g.Map.Len())
	assert.Equal(t, "Castle Entrance", g.Start.Name())
	assert.Same(t, g.Start, g.GoalRoom)
	assert.Equal(t, "Golden Chalice", g.GoalItem)

	walk := func(from *world.Room, d world.Direction, want string) *world.Room {
		t.Helper()
		next, ok := from.Neighbor(d)
		require.True(t, ok, "%s has no %s exit", from.Name(), d)
		require.Equal(t, want, next.Name())
		return next
	}
	hall := walk(g.Start, world.East, "Castle Hall")
	walk(hall, world.East, "Armory")
	center := walk(hall, world.South, "Castle Center")
	walk(center, world.South, "Religious Room")
	medical := walk(center, world.West, "Medical Room")
	walk(medical, world.South, "Storage Room")
	magic := walk(center, world.East, "Magic Room")
	boss := walk(magic, world.South, "Boss Room")

	assert.True(t, boss.IsLocked())
	assert.Equal(t, "Copper Key", boss.Key())
	dragon := boss.Enemy("Dragon")
	require.NotNil(t, dragon)
	assert.Equal(t, 12, dragon.Health())
	assert.Equal(t, 4, dragon.Damage())
	assert.False(t, boss.Item("Golden Chalice").CanPickup())
}

func TestCastleYAML_IsACopy(t *testing.T) {
	a := content.CastleYAML()
	require.NotEmpty(t, a)
	a[0] = 'X'
	assert.NotEqual(t, a[0], content.CastleYAML()[0])
}

func TestLoad(t *testing.T) {
	bp, err := content.Load("")
	require.NoError(t, err)
	assert.Equal(t, "Castle", bp.Name)

	_, err = content.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "castle.yaml")
	require.NoError(t, os.WriteFile(path, content.CastleYAML(), 0644))
	bp, err = content.Load(path)
	require.NoError(t, err)
	assert.Len(t, bp.Rooms, 9)
}
