package screen

import (
	"fmt"

	"github.com/rotj-game/rotj/internal/game"
	"github.com/rotj-game/rotj/internal/input"
	"github.com/rotj-game/rotj/internal/render"
	"github.com/rotj-game/rotj/internal/session"
	"github.com/rotj-game/rotj/internal/storage"
	"github.com/rotj-game/rotj/internal/world"
)

type menuMode uint8

const (
	menuSelect menuMode = iota
	menuErase           // waiting for confirmation
)

// Menu lists the save slots. Confirm starts or continues the selected
// slot, C copies it to the first empty slot, E erases it after a second
// confirm.
type Menu struct {
	d       Director
	deps    *Deps
	records [storage.SlotCount]storage.Record
	stale   bool
	cursor  int
	mode    menuMode
	status  string
	elapsed float64
}

func NewMenu(d Director, deps *Deps) *Menu {
	return &Menu{d: d, deps: deps, stale: true}
}

// Cursor returns the selected slot, 1-based.
func (m *Menu) Cursor() int { return m.cursor + 1 }

// Status returns the last message shown under the slots.
func (m *Menu) Status() string { return m.status }

func (m *Menu) refresh() {
	if !m.stale {
		return
	}
	records, err := m.deps.Saves.LoadAll()
	if err != nil {
		m.d.Logger().Error("load save slots", "error", err)
		m.status = "SAVES UNREADABLE"
		return
	}
	m.records = records
	m.stale = false
}

func (m *Menu) Update(dt float64) {
	m.elapsed += dt
	m.refresh()
}

func (m *Menu) Draw(buf *render.CellBuffer) {
	buf.WriteCentered(1, "SELECT A RECORD", render.ColorYellow, render.ColorBlack)
	for i, rec := range m.records {
		y := 3 + i*4
		fg := uint8(render.ColorLightGray)
		if i == m.cursor {
			fg = render.ColorWhite
			buf.Set(0, y+1, 16, render.ColorYellow, render.ColorBlack) // ►
		}
		buf.Box(1, y, buf.Cols-2, 4, fg, render.ColorBlack)
		if rec.Empty() {
			buf.WriteString(3, y+1, fmt.Sprintf("%d  NEW GAME", i+1), fg, render.ColorBlack)
			continue
		}
		buf.WriteString(3, y+1, fmt.Sprintf("%d  %s", i+1, rec.Name()), fg, render.ColorBlack)
		buf.WriteRight(buf.Cols-3, y+2, fmt.Sprintf("LV %d", rec.Level()), fg, render.ColorBlack)
	}
	switch {
	case m.mode == menuErase:
		drawPrompt(buf, buf.Rows-3, "ERASE? ENTER/X", m.elapsed)
	case m.status != "":
		buf.WriteCentered(buf.Rows-3, m.status, render.ColorLightRed, render.ColorBlack)
	}
	buf.WriteCentered(buf.Rows-1, "C COPY  E ERASE", render.ColorDarkGray, render.ColorBlack)
}

func (m *Menu) HandleInput(pressed input.KeySet) {
	m.refresh()
	if m.mode == menuErase {
		switch {
		case pressed.Confirm():
			m.erase()
			m.mode = menuSelect
		case pressed.Cancel():
			m.mode = menuSelect
		}
		return
	}

	switch {
	case pressed.Has(input.KeyUp):
		m.cursor = (m.cursor + storage.SlotCount - 1) % storage.SlotCount
		m.status = ""
	case pressed.Has(input.KeyDown):
		m.cursor = (m.cursor + 1) % storage.SlotCount
		m.status = ""
	case pressed.Has(input.KeyC):
		m.copy()
	case pressed.Has(input.KeyE):
		if !m.records[m.cursor].Empty() {
			m.mode = menuErase
		}
	case pressed.Cancel():
		m.d.SetScreenState(game.StateTitle)
	case pressed.Confirm():
		m.open()
	}
}

func (m *Menu) copy() {
	if m.records[m.cursor].Empty() {
		return
	}
	to := 0
	for i, rec := range m.records {
		if rec.Empty() {
			to = i + 1
			break
		}
	}
	if to == 0 {
		m.status = "NO EMPTY SLOT"
		return
	}
	if err := m.deps.Saves.Copy(m.Cursor(), to); err != nil {
		m.d.Logger().Error("copy save slot", "from", m.Cursor(), "to", to, "error", err)
		m.status = "COPY FAILED"
		return
	}
	m.d.Logger().Info("save slot copied", "from", m.Cursor(), "to", to)
	m.status = fmt.Sprintf("COPIED TO %d", to)
	m.stale = true
	m.refresh()
}

func (m *Menu) erase() {
	if err := m.deps.Saves.Erase(m.Cursor()); err != nil {
		m.d.Logger().Error("erase save slot", "slot", m.Cursor(), "error", err)
		m.status = "ERASE FAILED"
		return
	}
	m.d.Logger().Info("save slot erased", "slot", m.Cursor())
	m.status = ""
	m.stale = true
	m.refresh()
}

// open starts a new game in an empty slot or resumes a saved one.
func (m *Menu) open() {
	slot := m.Cursor()
	rec := m.records[m.cursor]
	if rec.Empty() {
		name := fmt.Sprintf("JUDGE %d", slot)
		if err := m.deps.Saves.Create(slot, name); err != nil {
			m.d.Logger().Error("create save slot", "slot", slot, "error", err)
			m.status = "CANNOT SAVE"
			return
		}
		m.stale = true
		m.d.SetState(session.New(name))
		m.d.SetSlot(slot)
		m.d.SetScreenState(game.StateBeginning)
		return
	}

	st, err := session.FromRecord(rec)
	if err != nil {
		m.d.Logger().Error("read save slot", "slot", slot, "error", err)
		m.status = "RECORD DAMAGED"
		return
	}
	m.d.SetState(st)
	m.d.SetSlot(slot)
	if !st.Started() {
		m.d.SetScreenState(game.StateBeginning)
		return
	}
	_, err = EnterMap(m.d, m.deps, st.Map, Placement{
		Position:  &st.Position,
		Facing:    world.ParseFacing(st.Facing),
		Followers: FollowUnder,
	})
	if err != nil {
		m.d.Logger().Error("resume map", "map", st.Map, "error", err)
		m.status = "MAP MISSING"
		return
	}
	m.d.SetScreenState(game.StateGame)
}
