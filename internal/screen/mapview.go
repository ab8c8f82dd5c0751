package screen

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/rotj-game/rotj/internal/input"
	"github.com/rotj-game/rotj/internal/render"
	"github.com/rotj-game/rotj/internal/session"
	"github.com/rotj-game/rotj/internal/world"
)

// Position is a tile coordinate on the current map.
type Position struct {
	X, Y int
}

// Hero marks the entity the player steers.
type Hero struct{}

// Follower marks a company member walking with the hero.
type Follower struct {
	Name  string
	Index int // place in the marching order, 0 right behind the hero
}

// FollowMode decides where followers stand.
type FollowMode uint8

const (
	FollowTrail FollowMode = iota // one step behind the one ahead
	FollowUnder                   // on the hero's tile
)

// Placement says where and how the party appears on a map.
type Placement struct {
	Position  *[2]int // nil = the map's spawn point
	Facing    world.Facing
	Followers FollowMode
	Dialog    string // shown on arrival when set
}

const (
	heroGlyph     = 2 // ☻
	followerGlyph = 1 // ☺
	chestGlyph    = 15
	bannerSeconds = 2.0
)

// Map is the view of the map the party is on.
type Map struct {
	d    Director
	deps *Deps

	doc     *world.MapDoc
	grid    *world.TileGrid
	terrain world.Terrain

	ecs       *ecs.World
	posMap    *ecs.Map[Position]
	hero      ecs.Entity
	followers []ecs.Entity
	mode      FollowMode
	facing    world.Facing

	dialog     *session.MessageLog
	showDialog bool
	status     *statusPanel
	banner     float64
}

// EnterMap loads the named map, places the party on it and makes it the
// director's map view. The session state records the new location.
func EnterMap(d Director, deps *Deps, name string, p Placement) (*Map, error) {
	doc, err := world.LoadMap(deps.Assets, name)
	if err != nil {
		return nil, err
	}
	m := newMap(d, deps, doc, p)
	d.SetMapView(m)
	m.record()
	return m, nil
}

func newMap(d Director, deps *Deps, doc *world.MapDoc, p Placement) *Map {
	w := ecs.NewWorld(64)
	m := &Map{
		d:       d,
		deps:    deps,
		doc:     doc,
		grid:    doc.ToTileGrid(),
		terrain: doc.TerrainType(),
		ecs:     w,
		posMap:  ecs.NewMap[Position](w),
		mode:    p.Followers,
		facing:  p.Facing,
		dialog:  session.NewMessageLog(6, 18),
		banner:  bannerSeconds,
	}

	x, y := doc.SpawnX(), doc.SpawnY()
	if p.Position != nil && m.grid.InBounds(p.Position[0], p.Position[1]) {
		x, y = p.Position[0], p.Position[1]
	}
	m.hero = ecs.NewMap2[Position, Hero](w).NewEntity(&Position{X: x, Y: y}, &Hero{})

	if st := d.State(); st != nil && len(st.Company) > 1 {
		followerMap := ecs.NewMap2[Position, Follower](w)
		for i, wl := range st.Company[1:] {
			e := followerMap.NewEntity(&Position{X: x, Y: y}, &Follower{Name: wl.Name, Index: i})
			m.followers = append(m.followers, e)
		}
	}

	if p.Dialog != "" {
		m.dialog.Add(p.Dialog, session.Speech)
	}
	if doc.Dialog != "" {
		m.dialog.Add(doc.Dialog, session.Narration)
	}
	m.showDialog = len(m.dialog.Messages) > 0
	return m
}

// MapName returns the map's name.
func (m *Map) MapName() string { return m.doc.Name }

// HeroPos returns the hero's tile.
func (m *Map) HeroPos() (int, int) {
	pos := m.posMap.Get(m.hero)
	return pos.X, pos.Y
}

// FollowerPos returns the tile of the i-th follower.
func (m *Map) FollowerPos(i int) (int, int) {
	pos := m.posMap.Get(m.followers[i])
	return pos.X, pos.Y
}

// Facing returns where the hero looks.
func (m *Map) Facing() world.Facing { return m.facing }

// DialogOpen reports whether a dialog box is waiting to be dismissed.
func (m *Map) DialogOpen() bool { return m.showDialog }

func (m *Map) Update(dt float64) {
	if m.banner > 0 {
		m.banner -= dt
	}
}

func (m *Map) Draw(buf *render.CellBuffer) {
	if m.status != nil {
		m.status.draw(buf)
		return
	}

	hx, hy := m.HeroPos()
	ox := buf.Cols/2 - hx
	oy := buf.Rows/2 - hy
	render.RenderTileGrid(buf, m.grid, m.terrain, ox, oy)

	st := m.d.State()
	for _, c := range m.doc.Chests {
		if st != nil && st.Acquired(c.ID) {
			continue
		}
		buf.Set(c.At[0]+ox, c.At[1]+oy, chestGlyph, render.ColorYellow, render.ColorBlack)
	}

	for i := len(m.followers) - 1; i >= 0; i-- {
		fx, fy := m.FollowerPos(i)
		buf.Set(fx+ox, fy+oy, followerGlyph, render.ColorLightCyan, render.ColorBlack)
	}
	buf.Set(hx+ox, hy+oy, heroGlyph, render.ColorWhite, render.ColorBlack)

	if m.banner > 0 && m.doc.Title != "" {
		buf.Fill(0, 0, buf.Cols, 1, ' ', render.ColorWhite, render.ColorBlack)
		buf.WriteCentered(0, m.doc.Title, render.ColorYellow, render.ColorBlack)
	}

	if m.showDialog {
		top := buf.Rows - 5
		buf.Fill(0, top, buf.Cols, 5, ' ', render.ColorWhite, render.ColorBlack)
		buf.Box(0, top, buf.Cols, 5, render.ColorWhite, render.ColorBlack)
		for i, msg := range m.dialog.Recent(3) {
			buf.WriteString(1, top+1+i, msg.Text, toneColor(msg.Tone), render.ColorBlack)
		}
	}
}

func toneColor(t session.Tone) uint8 {
	switch t {
	case session.Speech:
		return render.ColorYellow
	case session.Notice:
		return render.ColorLightCyan
	case session.Alarm:
		return render.ColorLightRed
	default:
		return render.ColorWhite
	}
}

func (m *Map) HandleInput(pressed input.KeySet) {
	switch {
	case m.showDialog:
		if pressed.Confirm() || pressed.Cancel() {
			m.showDialog = false
			m.dialog.Clear()
		}
	case m.status != nil:
		if pressed.Confirm() || pressed.Cancel() {
			m.status = nil
		}
	case pressed.Has(input.KeyUp):
		m.step(world.FacingUp)
	case pressed.Has(input.KeyDown):
		m.step(world.FacingDown)
	case pressed.Has(input.KeyLeft):
		m.step(world.FacingLeft)
	case pressed.Has(input.KeyRight):
		m.step(world.FacingRight)
	case pressed.Has(input.KeyS):
		m.save()
	case pressed.Confirm():
		hx, hy := m.HeroPos()
		m.status = newStatusPanel(m.d, m.deps, m.grid.Get(hx, hy).Describe())
	}
}

// step turns the hero and moves one tile if the ground allows it. Walking
// onto an exit enters the linked map.
func (m *Map) step(f world.Facing) {
	m.facing = f
	dx, dy := f.Delta()
	hero := m.posMap.Get(m.hero)
	nx, ny := hero.X+dx, hero.Y+dy
	if !m.grid.IsWalkable(nx, ny) {
		return
	}

	prevX, prevY := hero.X, hero.Y
	hero.X, hero.Y = nx, ny
	for _, e := range m.followers {
		pos := m.posMap.Get(e)
		if m.mode == FollowUnder {
			pos.X, pos.Y = nx, ny
			continue
		}
		pos.X, pos.Y, prevX, prevY = prevX, prevY, pos.X, pos.Y
	}
	m.record()

	if c, ok := m.doc.ChestAt(nx, ny); ok {
		m.take(c)
	}
	if exit, ok := m.doc.ExitAt(nx, ny); ok {
		to := exit.To
		if _, err := EnterMap(m.d, m.deps, exit.Map, Placement{
			Position:  &to,
			Facing:    world.ParseFacing(exit.Facing),
			Followers: m.mode,
		}); err != nil {
			m.d.Logger().Error("enter map", "map", exit.Map, "error", err)
			m.say(fmt.Sprintf("The way to %s is blocked.", exit.Map), session.Alarm)
		}
	}
}

// take hands the chest's item to the company unless it was taken before.
func (m *Map) take(c world.ChestDoc) {
	st := m.d.State()
	if st == nil || st.Acquired(c.ID) {
		return
	}
	var holder string
	m.d.UpdateState(func(s *session.State) {
		holder = s.AddToInventory(session.Item{ID: c.ID, Name: c.Item})
	})
	m.d.Logger().Info("item found", "item", c.Item, "holder", holder, "map", m.doc.Name)
	if holder == "" {
		m.say(fmt.Sprintf("The %s goes to the baggage.", c.Item), session.Notice)
		return
	}
	m.say(fmt.Sprintf("%s takes the %s.", titleName(holder), c.Item), session.Notice)
}

// record writes the hero's location into the session state.
func (m *Map) record() {
	x, y := m.HeroPos()
	m.d.UpdateState(func(s *session.State) {
		s.Map = m.doc.Name
		s.Position = [2]int{x, y}
		s.Facing = m.facing.String()
	})
}

func (m *Map) save() {
	if err := save(m.d, m.deps.Saves); err != nil {
		m.d.Logger().Error("save game", "slot", m.d.Slot(), "error", err)
		m.say("The record could not be kept.", session.Alarm)
		return
	}
	m.d.Logger().Info("game saved", "slot", m.d.Slot(), "map", m.doc.Name)
	m.say("Your deeds are recorded.", session.Notice)
}

func (m *Map) say(text string, tone session.Tone) {
	m.dialog.Add(text, tone)
	m.showDialog = true
}
