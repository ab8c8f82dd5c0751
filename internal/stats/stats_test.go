package stats

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	return NewStore(fstest.MapFS{
		"stats/moroni.json": {Data: []byte(`{
			"intelligence": 70, "strength": 80, "defense": 60, "agility": 50, "evasion": 40,
			"armor_class": 3, "attack_points": 12, "tactical_points": 10,
			"tactical_points_by_level": [10, 14, 18],
			"soldiers": 400, "max_soldiers_by_level": [400, 520, 680]
		}`)},
		"stats/robber.json": {Data: []byte(`{
			"intelligence": 10, "strength": 30, "defense": 20, "agility": 25, "evasion": 10,
			"armor_class": 1, "attack_points": 4, "tactical_points": 0,
			"soldiers": 120, "max_soldiers": 150, "tactics": ["fire"]
		}`)},
		"stats/broken.json": {Data: []byte(`{"intelligence": "lots"}`)},
	})
}

func TestStoreLoad(t *testing.T) {
	s := testStore()

	st, err := s.Load("moroni")
	require.NoError(t, err)
	assert.Equal(t, 70, st.Intelligence)
	assert.Equal(t, 400, st.Soldiers)
	assert.True(t, st.CanLevelUp())

	intel, err := s.Intelligence("robber")
	require.NoError(t, err)
	assert.Equal(t, 10, intel)

	up, err := s.CanLevelUp("robber")
	require.NoError(t, err)
	assert.False(t, up)
}

func TestStoreErrors(t *testing.T) {
	s := testStore()

	_, err := s.Load("nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Load("broken")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = s.MaxSoldiers("nobody", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLevelTables(t *testing.T) {
	s := testStore()

	tests := []struct {
		id       string
		level    int
		soldiers int
		tp       int
	}{
		{"moroni", 1, 400, 10},
		{"moroni", 3, 680, 18},
		{"moroni", 9, 680, 18},
		{"moroni", 0, 400, 10},
		{"robber", 5, 150, 0},
	}
	for _, tt := range tests {
		soldiers, err := s.MaxSoldiers(tt.id, tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.soldiers, soldiers, "%s level %d", tt.id, tt.level)

		tp, err := s.MaxTacticalPoints(tt.id, tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.tp, tp, "%s level %d", tt.id, tt.level)
	}
}

func TestEnemyStats(t *testing.T) {
	c, err := testStore().EnemyStats("robber")
	require.NoError(t, err)
	assert.Equal(t, Combat{
		Strength: 30, Defense: 20, Intelligence: 10, Agility: 25, Evasion: 10,
		TacticalPoints: 0, AttackPoints: 4, ArmorClass: 1,
		Tactics: []string{"fire"}, Soldiers: 120,
	}, c)
}

func TestEquipBonus(t *testing.T) {
	items, err := LoadItems([]byte(`
bronze sword:
  type: weapon
  stats: {attack_points: 5}
iron shield:
  type: armor
  stats: {armor_class: 2, defense: 3}
herb:
  type: consumable
`))
	require.NoError(t, err)

	assert.Equal(t, 5, items.EquipBonus("attack_points", []string{"bronze sword", "iron shield"}))
	assert.Equal(t, 2, items.EquipBonus("armor_class", []string{"iron shield", "herb", "unknown"}))
	assert.Equal(t, 0, items.EquipBonus("defense", nil))
}
