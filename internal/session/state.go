// Package session holds the persisted game state: the player's company,
// their items and where they stand on the map.
package session

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// MaxItems is how many items one warlord can carry.
const MaxItems = 8

// Warlord is one member of the player's company.
type Warlord struct {
	Name     string   `json:"name"`
	Soldiers int      `json:"soldiers"`
	Level    int      `json:"level"`
	Items    []string `json:"items"`
}

// State is everything written to a save slot.
type State struct {
	Name          string    `json:"name"`
	Level         int       `json:"level"`
	Company       []Warlord `json:"company,omitempty"`
	AcquiredItems []string  `json:"acquired_items,omitempty"`
	Surplus       []string  `json:"surplus,omitempty"`
	Map           string    `json:"current_map,omitempty"`
	Position      [2]int    `json:"position"`
	Facing        string    `json:"facing,omitempty"`
}

// New returns the minimal state of a freshly created slot.
func New(name string) State {
	return State{Name: name}
}

// Started reports whether the player has gone past the opening pages.
func (s State) Started() bool {
	return s.Map != ""
}

// Leader returns the first company member.
func (s State) Leader() (Warlord, bool) {
	if len(s.Company) == 0 {
		return Warlord{}, false
	}
	return s.Company[0], true
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.Company = make([]Warlord, len(s.Company))
	for i, w := range s.Company {
		w.Items = slices.Clone(w.Items)
		c.Company[i] = w
	}
	c.AcquiredItems = slices.Clone(s.AcquiredItems)
	c.Surplus = slices.Clone(s.Surplus)
	return c
}

// ToRecord converts s into the key-value document stored in a save slot.
func (s State) ToRecord() (map[string]any, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	var rec map[string]any
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return rec, nil
}

// FromRecord parses a save slot document. Unknown keys are ignored.
func FromRecord(rec map[string]any) (State, error) {
	var s State
	data, err := json.Marshal(rec)
	if err != nil {
		return s, fmt.Errorf("decode state: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("decode state: %w", err)
	}
	return s, nil
}

// Merge overwrites the top-level keys of s named in updates, leaving the
// rest untouched.
func (s *State) Merge(updates map[string]any) error {
	rec, err := s.ToRecord()
	if err != nil {
		return err
	}
	maps.Copy(rec, updates)
	merged, err := FromRecord(rec)
	if err != nil {
		return fmt.Errorf("merge state: %w", err)
	}
	*s = merged
	return nil
}

// Item is something the player picks up.
type Item struct {
	ID   string // unique pickup id; empty for items that can recur
	Name string
}

// AddToInventory gives item to the first company member who still has room
// and soldiers left. When nobody qualifies the item goes to surplus. The
// returned name is the receiving warlord, or "" for surplus.
func (s *State) AddToInventory(item Item) string {
	if item.ID != "" {
		s.AcquiredItems = append(slices.Clone(s.AcquiredItems), item.ID)
	}
	for i := range s.Company {
		w := &s.Company[i]
		if len(w.Items) >= MaxItems || w.Soldiers == 0 {
			continue
		}
		w.Items = append(slices.Clone(w.Items), item.Name)
		return w.Name
	}
	s.Surplus = append(slices.Clone(s.Surplus), item.Name)
	return ""
}

// Acquired reports whether the pickup with id has been taken.
func (s State) Acquired(id string) bool {
	return slices.Contains(s.AcquiredItems, id)
}
