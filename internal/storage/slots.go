// Package storage keeps the three save slots as JSON documents in a
// single SQLite file, one row per slot.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SlotCount is the number of save slots.
const SlotCount = 3

var (
	// ErrInvalidSlot is returned for slot numbers outside 1..SlotCount.
	ErrInvalidSlot = errors.New("storage: invalid slot")
	// ErrEmptySlot is returned when copying from a slot with no record.
	ErrEmptySlot = errors.New("storage: slot is empty")
)

// Record is one save slot document.
type Record map[string]any

// Store manages the save slot database.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at dbPath, creating parent directories
// and the schema as needed. A leading ~ expands to the home directory.
func Open(dbPath string) (*Store, error) {
	path, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: save directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	store := &Store{db: db}
	if err := errors.Join(db.Ping(), store.migrate()); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: prepare %s: %w", path, err)
	}
	return store, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: home directory: %w", err)
	}
	return filepath.Join(home, rest), nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS save_slots (
			slot INTEGER PRIMARY KEY CHECK (slot BETWEEN 1 AND 3),
			document TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func checkSlot(slot int) error {
	if slot < 1 || slot > SlotCount {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	return nil
}

// Create writes a fresh record for a new game named name.
func (s *Store) Create(slot int, name string) error {
	return s.Save(slot, Record{"name": name, "level": 0})
}

// Save overwrites slot with rec.
func (s *Store) Save(slot int, rec Record) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("storage: cannot encode slot %d: %w", slot, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO save_slots (slot, document, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		slot, string(doc), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %d: %w", slot, err)
	}
	return nil
}

// Load returns the record in slot, or an empty record if there is none.
func (s *Store) Load(slot int) (Record, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	var doc string
	err := s.db.QueryRow("SELECT document FROM save_slots WHERE slot = ?", slot).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load slot %d: %w", slot, err)
	}
	rec := Record{}
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		return nil, fmt.Errorf("storage: slot %d is corrupt: %w", slot, err)
	}
	return rec, nil
}

// LoadAll returns the records of slots 1..SlotCount in order.
func (s *Store) LoadAll() ([SlotCount]Record, error) {
	var all [SlotCount]Record
	for i := range all {
		rec, err := s.Load(i + 1)
		if err != nil {
			return all, err
		}
		all[i] = rec
	}
	return all, nil
}

// Erase deletes the record in slot. Erasing an empty slot is not an error.
func (s *Store) Erase(slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if _, err := s.db.Exec("DELETE FROM save_slots WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot erase slot %d: %w", slot, err)
	}
	return nil
}

// Copy duplicates the record in from into to.
func (s *Store) Copy(from, to int) error {
	if err := checkSlot(to); err != nil {
		return err
	}
	rec, err := s.Load(from)
	if err != nil {
		return err
	}
	if rec.Empty() {
		return fmt.Errorf("%w: %d", ErrEmptySlot, from)
	}
	return s.Save(to, rec)
}

// Empty reports whether the record holds no game.
func (r Record) Empty() bool {
	return len(r) == 0
}

// Name returns the player name stored in r.
func (r Record) Name() string {
	name, _ := r["name"].(string)
	return name
}

// Level returns the level stored in r.
func (r Record) Level() int {
	switch v := r["level"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
