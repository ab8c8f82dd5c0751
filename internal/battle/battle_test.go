package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotj-game/rotj/internal/render"
)

func scenarioTable(t *testing.T) *Table {
	t.Helper()
	tb, err := NewTable([]Tactic{
		{Name: "C", Slot: 3, MinLevel: 5, MinIntelligence: 10},
		{Name: "A", Slot: 3, MinLevel: 1, MinIntelligence: 0},
		{Name: "B", Slot: 3, MinLevel: 5, MinIntelligence: 0},
	})
	require.NoError(t, err)
	return tb
}

func TestResolveSlotScenario(t *testing.T) {
	tb := scenarioTable(t)

	assert.Equal(t, "C", tb.ResolveSlot(12, 5, 3), "tie on level broken by intelligence")
	assert.Equal(t, "B", tb.ResolveSlot(2, 5, 3))
	assert.Equal(t, "A", tb.ResolveSlot(2, 4, 3))
	assert.Equal(t, "", tb.ResolveSlot(0, 0, 3), "A needs level 1")
	assert.Equal(t, "", tb.ResolveSlot(99, 99, 1), "nothing configured for slot 1")
}

func TestResolveSlotIndependentOfTableOrder(t *testing.T) {
	defs := []Tactic{
		{Name: "z", Slot: 1, MinLevel: 3, MinIntelligence: 20},
		{Name: "y", Slot: 1, MinLevel: 3, MinIntelligence: 20},
		{Name: "x", Slot: 1, MinLevel: 2, MinIntelligence: 50},
	}
	forward, err := NewTable(defs)
	require.NoError(t, err)
	reversed, err := NewTable([]Tactic{defs[2], defs[1], defs[0]})
	require.NoError(t, err)

	assert.Equal(t, "y", forward.ResolveSlot(60, 3, 1))
	assert.Equal(t, forward.ResolveSlot(60, 3, 1), reversed.ResolveSlot(60, 3, 1))
}

func TestResolveSlotPureAndMonotonic(t *testing.T) {
	tb, err := LoadTable([]byte(defaultTacticsYAML))
	require.NoError(t, err)

	for slot := 1; slot <= SlotCount; slot++ {
		for intel := 0; intel <= 100; intel += 10 {
			prev := -1
			for level := 0; level <= 30; level++ {
				got := tb.ResolveSlot(intel, level, slot)
				assert.Equal(t, got, tb.ResolveSlot(intel, level, slot))

				minLevel := -1
				if got != "" {
					def, ok := tb.Lookup(got)
					require.True(t, ok)
					assert.Equal(t, slot, def.Slot)
					assert.LessOrEqual(t, def.MinLevel, level)
					assert.LessOrEqual(t, def.MinIntelligence, intel)
					minLevel = def.MinLevel
				}
				assert.GreaterOrEqual(t, minLevel, prev, "slot %d intel %d level %d", slot, intel, level)
				prev = minLevel
			}
		}
	}
}

func TestResolveAll(t *testing.T) {
	tb, err := LoadTable([]byte(defaultTacticsYAML))
	require.NoError(t, err)

	slots := tb.ResolveAll(40, 10)
	require.Len(t, slots, SlotCount)
	for i, name := range slots {
		if name == "" {
			continue
		}
		def, ok := tb.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, i+1, def.Slot)
	}
	assert.Equal(t, Slots{"heal", "fire", "", "ambush", "", ""}, slots)
	assert.Equal(t, Slots{}, tb.ResolveAll(0, 0))
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name string
		defs []Tactic
		want string
	}{
		{"empty name", []Tactic{{Slot: 1}}, "empty name"},
		{"duplicate", []Tactic{{Name: "a", Slot: 1}, {Name: "a", Slot: 2}}, "defined twice"},
		{"slot zero", []Tactic{{Name: "a", Slot: 0}}, "out of range"},
		{"slot seven", []Tactic{{Name: "a", Slot: 7}}, "out of range"},
		{"negative", []Tactic{{Name: "a", Slot: 1, MinLevel: -1}}, "negative threshold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.defs)
			assert.ErrorContains(t, err, tt.want)
		})
	}

	_, err := LoadTable([]byte("heal: [1, 2"))
	assert.ErrorContains(t, err, "parse tactics")
}

func TestTacticForLevel(t *testing.T) {
	tb, err := LoadTable([]byte(defaultTacticsYAML))
	require.NoError(t, err)

	name, ok := tb.TacticForLevel(8)
	assert.True(t, ok)
	assert.Equal(t, "ambush", name)

	_, ok = tb.TacticForLevel(2)
	assert.False(t, ok)
}

func TestPretty(t *testing.T) {
	assert.Equal(t, "Heal~~~~~~", Pretty("heal"))
	assert.Equal(t, "Fire~Storm", Pretty("fire storm"))
	assert.Equal(t, "~~~~~~~~~~", Pretty(""))
	assert.Equal(t, "Great~Wall~Of", Pretty("great wall of"))

	p := Slots{"heal", "", "", "", "", ""}.Pretty()
	assert.Equal(t, "Heal~~~~~~", p[0])
	assert.Equal(t, "~~~~~~~~~~", p[5])
}

func TestHyphenate(t *testing.T) {
	assert.Equal(t, "Moroni", Hyphenate("Moroni", 8))
	assert.Equal(t, "Teancum", Hyphenate("Teancum", 8))
	assert.Equal(t, "Gadiant-\non", Hyphenate("Gadianton", 8))
	assert.Equal(t, "Amalick\n-iah", Hyphenate("Amalick-iah", 8))
	assert.Equal(t, "Abcdef-\n-ghij", Hyphenate("Abcdef--ghij", 8))
}

func TestPanelDraw(t *testing.T) {
	buf := render.NewCellBuffer(20, 3)
	NewPanel("gadianton", 1200, Ally).Draw(buf, 0, 0)

	enemy := NewPanel("robber", 80, Enemy)
	enemy.SetSoldiers(-5)
	enemy.Draw(buf, 10, 0)

	assert.Equal(t, "Gadiant-    Robber\non\n    1200           0", buf.String())
	assert.Equal(t, uint8(render.ColorLightRed), buf.Get(19, 2).FG)
}

const defaultTacticsYAML = `
heal:
  slot: 1
  min_intelligence: 10
  min_level: 1
cure:
  slot: 1
  min_intelligence: 60
  min_level: 12
fire:
  slot: 2
  min_intelligence: 20
  min_level: 3
fire storm:
  slot: 2
  min_intelligence: 50
  min_level: 15
ambush:
  slot: 4
  min_intelligence: 30
  min_level: 8
rally:
  slot: 6
  min_intelligence: 0
  min_level: 20
`
