// Package battle holds the combat-side rules: the tactic table, resolution of
// a warlord's six tactic slots, and the warlord panel shown in battle.
package battle

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// SlotCount is the number of tactic slots a warlord has.
const SlotCount = 6

// Tactic is one special ability definition.
type Tactic struct {
	Name            string `yaml:"-"`
	Slot            int    `yaml:"slot"`
	MinIntelligence int    `yaml:"min_intelligence"`
	MinLevel        int    `yaml:"min_level"`
	Cost            int    `yaml:"cost"`
	Description     string `yaml:"description"`
}

// Table is the static tactic table. Entries are kept sorted by name so that
// nothing depends on document order.
type Table struct {
	tactics []Tactic
}

// NewTable builds a table from definitions, validating each one.
func NewTable(tactics []Tactic) (*Table, error) {
	seen := make(map[string]bool, len(tactics))
	sorted := make([]Tactic, 0, len(tactics))
	for _, t := range tactics {
		switch {
		case t.Name == "":
			return nil, fmt.Errorf("tactic with empty name")
		case seen[t.Name]:
			return nil, fmt.Errorf("tactic %q defined twice", t.Name)
		case t.Slot < 1 || t.Slot > SlotCount:
			return nil, fmt.Errorf("tactic %q: slot %d out of range 1..%d", t.Name, t.Slot, SlotCount)
		case t.MinIntelligence < 0 || t.MinLevel < 0:
			return nil, fmt.Errorf("tactic %q: negative threshold", t.Name)
		}
		seen[t.Name] = true
		sorted = append(sorted, t)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &Table{tactics: sorted}, nil
}

// LoadTable parses a YAML mapping of tactic name to definition.
func LoadTable(data []byte) (*Table, error) {
	var doc map[string]Tactic
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse tactics: %w", err)
	}
	tactics := make([]Tactic, 0, len(doc))
	for name, t := range doc {
		t.Name = name
		tactics = append(tactics, t)
	}
	return NewTable(tactics)
}

// Lookup returns the definition of name.
func (tb *Table) Lookup(name string) (Tactic, bool) {
	i := sort.Search(len(tb.tactics), func(i int) bool { return tb.tactics[i].Name >= name })
	if i < len(tb.tactics) && tb.tactics[i].Name == name {
		return tb.tactics[i], true
	}
	return Tactic{}, false
}

// Len returns the number of tactics.
func (tb *Table) Len() int { return len(tb.tactics) }

// InSlot returns the tactics configured for slot, sorted by name.
func (tb *Table) InSlot(slot int) []Tactic {
	var out []Tactic
	for _, t := range tb.tactics {
		if t.Slot == slot {
			out = append(out, t)
		}
	}
	return out
}

// TacticForLevel returns the tactic unlocked exactly at level, if any. With
// several candidates the lowest slot wins, then the name.
func (tb *Table) TacticForLevel(level int) (string, bool) {
	found := -1
	for i, t := range tb.tactics {
		if t.MinLevel != level {
			continue
		}
		if found < 0 || t.Slot < tb.tactics[found].Slot {
			found = i
		}
	}
	if found < 0 {
		return "", false
	}
	return tb.tactics[found].Name, true
}
