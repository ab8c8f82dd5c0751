package screen

import (
	"github.com/rotj-game/rotj/internal/game"
	"github.com/rotj-game/rotj/internal/input"
	"github.com/rotj-game/rotj/internal/render"
	"github.com/rotj-game/rotj/internal/session"
	"github.com/rotj-game/rotj/internal/world"
)

var openingPages = []string{
	"In the land of Zarahemla the judges ruled, and for a time there was peace.",
	"Then the robbers of Gadianton came down from the mountains and the people were afraid.",
	"Captain Moroni gathered an army of the willing. Lead them north, to the tunnels.",
}

const openingDialog = "The tunnels lie north, beyond the river."

// Beginning shows the opening pages of a new game, then puts the party on
// the first map.
type Beginning struct {
	d       Director
	deps    *Deps
	page    int
	elapsed float64
}

func NewBeginning(d Director, deps *Deps) *Beginning {
	return &Beginning{d: d, deps: deps}
}

// Page returns the index of the page shown.
func (b *Beginning) Page() int { return b.page }

func (b *Beginning) Update(dt float64) { b.elapsed += dt }

func (b *Beginning) Draw(buf *render.CellBuffer) {
	buf.Box(0, 0, buf.Cols, buf.Rows, render.ColorBrown, render.ColorBlack)
	log := session.NewMessageLog(buf.Rows-4, buf.Cols-4)
	log.Add(openingPages[b.page], session.Narration)
	for i, msg := range log.Messages {
		buf.WriteString(2, 2+i, msg.Text, render.ColorWhite, render.ColorBlack)
	}
	drawPrompt(buf, buf.Rows-2, "ENTER", b.elapsed)
}

func (b *Beginning) HandleInput(pressed input.KeySet) {
	if !pressed.Confirm() {
		return
	}
	if b.page < len(openingPages)-1 {
		b.page++
		return
	}
	if err := b.start(); err != nil {
		b.d.Logger().Error("start game", "error", err)
		return
	}
	b.page = 0
	b.elapsed = 0
}

// start gives the player their first company and enters the first map.
func (b *Beginning) start() error {
	soldiers, err := b.deps.Stats.MaxSoldiers(Leader, 1)
	if err != nil {
		return err
	}
	b.d.UpdateState(func(s *session.State) {
		s.Level = 1
		s.Company = []session.Warlord{{Name: Leader, Soldiers: soldiers, Level: 1}}
	})
	if _, err := EnterMap(b.d, b.deps, StartMap, Placement{
		Facing:    world.FacingDown,
		Followers: FollowTrail,
		Dialog:    openingDialog,
	}); err != nil {
		return err
	}
	if err := save(b.d, b.deps.Saves); err != nil {
		b.d.Logger().Warn("save new game", "error", err)
	}
	b.d.SetScreenState(game.StateGame)
	return nil
}
