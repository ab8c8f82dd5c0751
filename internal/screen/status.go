package screen

import (
	"fmt"

	"github.com/rotj-game/rotj/internal/battle"
	"github.com/rotj-game/rotj/internal/render"
)

// statusPanel shows the leader's numbers and tactic slots. It is built when
// opened so the slots always reflect the current level and intelligence.
type statusPanel struct {
	panel   *battle.Panel
	level   int
	attack  int
	defense int
	tactics [battle.SlotCount]string
	ground  string
	err     string
}

func newStatusPanel(d Director, deps *Deps, ground string) *statusPanel {
	p := &statusPanel{ground: ground}
	st := d.State()
	if st == nil {
		p.err = "NO RECORD"
		return p
	}
	leader, ok := st.Leader()
	if !ok {
		p.err = "NO COMPANY"
		return p
	}
	p.panel = battle.NewPanel(leader.Name, leader.Soldiers, battle.Ally)
	p.level = leader.Level

	s, err := deps.Stats.Load(leader.Name)
	if err != nil {
		d.Logger().Error("load stats", "warlord", leader.Name, "error", err)
		p.err = "STATS MISSING"
		return p
	}
	p.attack = s.Strength + deps.Items.EquipBonus("strength", leader.Items)
	p.defense = s.Defense + deps.Items.EquipBonus("defense", leader.Items)
	p.tactics = deps.Tactics.ResolveAll(s.Intelligence, leader.Level).Pretty()
	return p
}

func (p *statusPanel) draw(buf *render.CellBuffer) {
	buf.Box(0, 0, buf.Cols, buf.Rows, render.ColorWhite, render.ColorBlack)
	if p.ground != "" {
		buf.WriteString(2, buf.Rows-2, p.ground, render.ColorDarkGray, render.ColorBlack)
	}
	if p.panel != nil {
		p.panel.Draw(buf, 1, 1)
		buf.WriteRight(buf.Cols-2, 1, fmt.Sprintf("LV%d", p.level), render.ColorYellow, render.ColorBlack)
	}
	if p.err != "" {
		buf.WriteCentered(buf.Rows/2, p.err, render.ColorLightRed, render.ColorBlack)
		return
	}
	buf.WriteString(2, 5, fmt.Sprintf("ATK %d", p.attack), render.ColorLightGray, render.ColorBlack)
	buf.WriteString(2, 6, fmt.Sprintf("DEF %d", p.defense), render.ColorLightGray, render.ColorBlack)
	buf.WriteString(2, 8, "TACTICS", render.ColorYellow, render.ColorBlack)
	for i, name := range p.tactics {
		buf.WriteString(2, 9+i, fmt.Sprintf("%d %s", i+1, name), render.ColorWhite, render.ColorBlack)
	}
}
