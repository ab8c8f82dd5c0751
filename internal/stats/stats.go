// Package stats loads per-character combat stats from flat JSON documents,
// one file per character under stats/<id>.json.
package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

var (
	// ErrNotFound is returned when a character has no stats document.
	ErrNotFound = errors.New("stats not found")
	// ErrMalformed is returned when a stats document cannot be parsed.
	ErrMalformed = errors.New("malformed stats")
)

// Stats is one character's stat record.
type Stats struct {
	Intelligence          int      `json:"intelligence"`
	Level                 int      `json:"level,omitempty"`
	Strength              int      `json:"strength"`
	Defense               int      `json:"defense"`
	Agility               int      `json:"agility"`
	Evasion               int      `json:"evasion"`
	ArmorClass            int      `json:"armor_class"`
	AttackPoints          int      `json:"attack_points"`
	TacticalPoints        int      `json:"tactical_points"`
	TacticalPointsByLevel []int    `json:"tactical_points_by_level,omitempty"`
	Soldiers              int      `json:"soldiers"`
	Tactics               []string `json:"tactics,omitempty"`
	MaxSoldiers           int      `json:"max_soldiers,omitempty"`
	MaxSoldiersByLevel    []int    `json:"max_soldiers_by_level,omitempty"`
}

// CanLevelUp reports whether the character grows with level. Characters with
// a fixed soldier count (most enemies) do not.
func (s Stats) CanLevelUp() bool {
	return len(s.MaxSoldiersByLevel) > 0
}

// MaxSoldiersAt returns the soldier cap at level. Levels past the end of the
// table use its last entry.
func (s Stats) MaxSoldiersAt(level int) int {
	if len(s.MaxSoldiersByLevel) == 0 {
		return s.MaxSoldiers
	}
	return byLevel(s.MaxSoldiersByLevel, level)
}

// MaxTacticalPointsAt returns the tactical point cap at level.
func (s Stats) MaxTacticalPointsAt(level int) int {
	if len(s.TacticalPointsByLevel) == 0 {
		return s.TacticalPoints
	}
	return byLevel(s.TacticalPointsByLevel, level)
}

func byLevel(table []int, level int) int {
	i := min(max(level, 1), len(table)) - 1
	return table[i]
}

// Combat returns the battle-relevant subset used for enemies.
func (s Stats) Combat() Combat {
	return Combat{
		Strength:       s.Strength,
		Defense:        s.Defense,
		Intelligence:   s.Intelligence,
		Agility:        s.Agility,
		Evasion:        s.Evasion,
		TacticalPoints: s.TacticalPoints,
		AttackPoints:   s.AttackPoints,
		ArmorClass:     s.ArmorClass,
		Tactics:        s.Tactics,
		Soldiers:       s.Soldiers,
	}
}

// Combat is an immutable snapshot of a battle participant.
type Combat struct {
	Strength       int
	Defense        int
	Intelligence   int
	Agility        int
	Evasion        int
	TacticalPoints int
	AttackPoints   int
	ArmorClass     int
	Tactics        []string
	Soldiers       int
}

// Store reads stats documents. It never writes.
type Store struct {
	fsys fs.FS
}

// NewStore creates a store over fsys, which must contain a stats directory.
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Load returns the stats for id.
func (s *Store) Load(id string) (Stats, error) {
	var st Stats
	data, err := fs.ReadFile(s.fsys, path.Join("stats", id+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return st, fmt.Errorf("load stats %q: %w", id, ErrNotFound)
		}
		return st, fmt.Errorf("load stats %q: %w", id, err)
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("load stats %q: %w: %v", id, ErrMalformed, err)
	}
	return st, nil
}

// Intelligence returns the intelligence stat of id.
func (s *Store) Intelligence(id string) (int, error) {
	st, err := s.Load(id)
	return st.Intelligence, err
}

// CanLevelUp reports whether id grows with level.
func (s *Store) CanLevelUp(id string) (bool, error) {
	st, err := s.Load(id)
	return st.CanLevelUp(), err
}

// MaxSoldiers returns the soldier cap of id at level.
func (s *Store) MaxSoldiers(id string, level int) (int, error) {
	st, err := s.Load(id)
	if err != nil {
		return 0, err
	}
	return st.MaxSoldiersAt(level), nil
}

// MaxTacticalPoints returns the tactical point cap of id at level.
func (s *Store) MaxTacticalPoints(id string, level int) (int, error) {
	st, err := s.Load(id)
	if err != nil {
		return 0, err
	}
	return st.MaxTacticalPointsAt(level), nil
}

// EnemyStats returns the combat snapshot of id.
func (s *Store) EnemyStats(id string) (Combat, error) {
	st, err := s.Load(id)
	if err != nil {
		return Combat{}, err
	}
	return st.Combat(), nil
}
