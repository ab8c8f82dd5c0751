// Package screen implements the four top-level views: the title page, the
// save slot menu, the opening pages and the map the party walks on.
package screen

import (
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rotj-game/rotj/internal/battle"
	"github.com/rotj-game/rotj/internal/game"
	"github.com/rotj-game/rotj/internal/render"
	"github.com/rotj-game/rotj/internal/session"
	"github.com/rotj-game/rotj/internal/stats"
	"github.com/rotj-game/rotj/internal/storage"
)

// Director is what views may ask of the orchestrator. *game.Game
// implements it.
type Director interface {
	SetScreenState(state game.ScreenState)
	SetMapView(v game.MapView)
	MapName() string
	State() *session.State
	SetState(s session.State)
	UpdateState(fn func(*session.State))
	Slot() int
	SetSlot(slot int)
	Logger() *slog.Logger
}

// Slots is the save slot store.
type Slots interface {
	Create(slot int, name string) error
	Save(slot int, rec storage.Record) error
	Load(slot int) (storage.Record, error)
	LoadAll() ([storage.SlotCount]storage.Record, error)
	Erase(slot int) error
	Copy(from, to int) error
}

// Deps are the collaborators shared by every view.
type Deps struct {
	Assets  fs.FS // maps/ and stats/
	Stats   *stats.Store
	Items   stats.Items
	Tactics *battle.Table
	Saves   Slots
}

// LoadDeps reads the tactic and item tables from fsys and wires them with
// the stat store and saves.
func LoadDeps(fsys fs.FS, saves Slots) (*Deps, error) {
	data, err := fs.ReadFile(fsys, "tactics.yaml")
	if err != nil {
		return nil, fmt.Errorf("read tactics: %w", err)
	}
	tactics, err := battle.LoadTable(data)
	if err != nil {
		return nil, err
	}
	data, err = fs.ReadFile(fsys, "items.yaml")
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	items, err := stats.LoadItems(data)
	if err != nil {
		return nil, err
	}
	return &Deps{
		Assets:  fsys,
		Stats:   stats.NewStore(fsys),
		Items:   items,
		Tactics: tactics,
		Saves:   saves,
	}, nil
}

// Leader is the warlord every new game starts with.
const Leader = "moroni"

// StartMap is where a new game begins.
const StartMap = "overworld"

// Register creates the views and installs them on g. The map view is
// installed later, when a map is entered.
func Register(g *game.Game, deps *Deps) {
	g.Register(game.StateTitle, NewTitle(g))
	g.Register(game.StateMenu, NewMenu(g, deps))
	g.Register(game.StateBeginning, NewBeginning(g, deps))
}

// save writes the director's state to its slot.
func save(d Director, saves Slots) error {
	st := d.State()
	if st == nil || d.Slot() == 0 {
		return nil
	}
	rec, err := st.ToRecord()
	if err != nil {
		return err
	}
	return saves.Save(d.Slot(), rec)
}

// drawPrompt writes a centered line that blinks with elapsed.
func drawPrompt(buf *render.CellBuffer, y int, text string, elapsed float64) {
	if session.IsHalfSecond(seconds(elapsed)) {
		buf.WriteCentered(y, text, render.ColorWhite, render.ColorBlack)
	}
}

// titleName turns a character id into the name shown in text.
func titleName(id string) string {
	return cases.Title(language.Und).String(id)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
