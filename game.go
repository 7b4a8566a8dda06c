package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/robotButler/battlelines/common"
	"github.com/robotButler/battlelines/config"
	"github.com/robotButler/battlelines/input"
)

const (
	unitSize        = 24
	unitSpeed       = 2.0
	pickRadius      = 28.0
	pingLifeFrames  = 45
	stanceDriftStep = 0.4
)

// Stance is the formation-wide order set by the Advance/Retreat actions.
type Stance int

const (
	StanceHold Stance = iota
	StanceAdvance
	StanceRetreat
)

func (s Stance) String() string {
	switch s {
	case StanceAdvance:
		return "Advancing"
	case StanceRetreat:
		return "Retreating"
	}
	return "Holding"
}

// Unit is one selectable marker on the field.
type Unit struct {
	X, Y             float64
	TargetX, TargetY float64
	Color            color.NRGBA
}

type ping struct {
	x, y float64
	ttl  int
}

// frameDriver is advanced once per frame before the input manager samples;
// the scripted player implements it, live devices need no driver.
type frameDriver interface {
	Advance() error
}

type Game struct {
	frames   int
	settings config.Settings

	mgr     *input.Manager
	driver  frameDriver
	watcher *config.Watcher

	cam  *Camera
	chat *ChatUI

	units    []*Unit
	selected int // index into units, -1 for none
	stance   Stance
	pings    []ping

	statusIdx int
}

var statusItems = []string{"Stance", "Selection", "Camera", "Frames"}

func NewGame(settings config.Settings, poller input.Poller, driver frameDriver) *Game {
	units := []*Unit{
		{X: -150, Y: 0, Color: color.NRGBA{0xd9, 0x4f, 0x4f, 0xff}},
		{X: -50, Y: 0, Color: color.NRGBA{0x4f, 0xd9, 0x6a, 0xff}},
		{X: 50, Y: 0, Color: color.NRGBA{0x4f, 0x9e, 0xd9, 0xff}},
		{X: 150, Y: 0, Color: color.NRGBA{0xd9, 0xc7, 0x4f, 0xff}},
	}
	for _, u := range units {
		u.TargetX, u.TargetY = u.X, u.Y
	}

	return &Game{
		settings: settings,
		mgr:      input.New(poller, input.DefaultBindings()),
		driver:   driver,
		cam:      NewCamera(0, 0, settings.View.MinZoom, settings.View.MaxZoom),
		chat:     NewChatUI(settings.Chat.History),
		units:    units,
		selected: -1,
	}
}

func (g *Game) Update() error {
	g.frames++

	g.applySettingsReload()

	if g.driver != nil {
		if err := g.driver.Advance(); err != nil {
			return err
		}
	}
	g.mgr.Update()

	if g.chat.IsOpen() {
		g.chat.Update()
		if g.mgr.IsActionTriggered(input.ExitGame) {
			g.chat.Close()
		}
		return nil
	}

	if g.mgr.IsActionTriggered(input.ExitGame) {
		return ebiten.Termination
	}
	if g.mgr.IsActionTriggered(input.Chat) {
		g.chat.Open()
		return nil
	}

	g.updateSelection()
	g.updateOrders()
	g.updateView()
	g.updateUnits()
	g.updatePings()

	return nil
}

func (g *Game) applySettingsReload() {
	if g.watcher == nil {
		return
	}
	select {
	case s, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		g.settings = s
		ebiten.SetWindowSize(s.Window.Width, s.Window.Height)
		ebiten.SetWindowTitle(s.Window.Title)
		ebiten.SetFullscreen(s.Window.Fullscreen)
	case err, ok := <-g.watcher.Errors:
		if ok {
			fmt.Printf("[config] reload failed: %v\n", err)
		}
	default:
	}
}

func (g *Game) updateSelection() {
	for i, a := range []input.Action{input.Select1, input.Select2, input.Select3, input.Select4} {
		if g.mgr.IsActionTriggered(a) && i < len(g.units) {
			g.selected = i
		}
	}

	if g.mgr.IsActionTriggered(input.SelectAtCursor) {
		wx, wy := g.cursorWorld()
		g.selected = -1
		best := pickRadius * pickRadius
		for i, u := range g.units {
			if d := common.Dist2(wx, wy, u.X, u.Y); d < best {
				best = d
				g.selected = i
			}
		}
	}
}

func (g *Game) updateOrders() {
	if g.mgr.IsActionTriggered(input.MoveTo) && g.selected >= 0 {
		wx, wy := g.cursorWorld()
		u := g.units[g.selected]
		u.TargetX, u.TargetY = wx, wy
	}

	if g.mgr.IsActionTriggered(input.ActionAt) {
		wx, wy := g.cursorWorld()
		g.pings = append(g.pings, ping{x: wx, y: wy, ttl: pingLifeFrames})
	}

	if g.mgr.IsActionTriggered(input.Advance) {
		g.stance = StanceAdvance
	}
	if g.mgr.IsActionTriggered(input.Retreat) {
		g.stance = StanceRetreat
	}

	n := len(statusItems)
	if g.mgr.IsActionTriggered(input.StatusItemNext) {
		g.statusIdx = (g.statusIdx + 1) % n
	}
	if g.mgr.IsActionTriggered(input.StatusItemPrev) {
		g.statusIdx = (g.statusIdx + n - 1) % n
	}
}

func (g *Game) updateView() {
	speed := g.settings.View.ScrollSpeed
	if g.mgr.IsActionPressed(input.ViewLeft) {
		g.cam.Pan(-speed, 0)
	}
	if g.mgr.IsActionPressed(input.ViewRight) {
		g.cam.Pan(speed, 0)
	}
	if g.mgr.IsActionPressed(input.ViewUp) {
		g.cam.Pan(0, -speed)
	}
	if g.mgr.IsActionPressed(input.ViewDown) {
		g.cam.Pan(0, speed)
	}

	if g.mgr.IsActionTriggered(input.ZoomIn) {
		g.cam.ZoomBy(1 + g.settings.View.ZoomStep)
	}
	if g.mgr.IsActionTriggered(input.ZoomOut) {
		g.cam.ZoomBy(1 / (1 + g.settings.View.ZoomStep))
	}

	// Free pan on middle drag reads the raw pointer delta; there is no
	// named action for continuous motion.
	st := g.mgr.State()
	if st.IsMouseButtonPressed(input.MouseMiddle) {
		dx, dy := st.CursorDelta()
		g.cam.Pan(-float64(dx), -float64(dy))
	}
}

func (g *Game) updateUnits() {
	var drift float64
	switch g.stance {
	case StanceAdvance:
		drift = -stanceDriftStep
	case StanceRetreat:
		drift = stanceDriftStep
	}

	for _, u := range g.units {
		u.TargetY += drift
		dx := u.TargetX - u.X
		dy := u.TargetY - u.Y
		dist := math.Hypot(dx, dy)
		if dist <= unitSpeed {
			u.X, u.Y = u.TargetX, u.TargetY
			continue
		}
		u.X += dx / dist * unitSpeed
		u.Y += dy / dist * unitSpeed
	}
}

func (g *Game) updatePings() {
	alive := g.pings[:0]
	for _, p := range g.pings {
		p.ttl--
		if p.ttl > 0 {
			alive = append(alive, p)
		}
	}
	g.pings = alive
}

func (g *Game) cursorWorld() (float64, float64) {
	sx, sy := g.mgr.State().CursorPosition()
	return g.cam.ScreenToWorld(sx, sy)
}

func (g *Game) statusLine() string {
	switch statusItems[g.statusIdx] {
	case "Stance":
		return fmt.Sprintf("Stance: %s", g.stance)
	case "Selection":
		if g.selected < 0 {
			return "Selection: none"
		}
		return fmt.Sprintf("Selection: %s", g.mgr.ActionName(input.Select1+input.Action(g.selected)))
	case "Camera":
		return fmt.Sprintf("Camera: (%.0f, %.0f) x%.2f", g.cam.X, g.cam.Y, g.cam.Zoom())
	default:
		return fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{0x14, 0x18, 0x1c, 0xff})

	g.drawGrid(screen)

	geo := g.cam.GeoM()
	half := float64(unitSize) / 2 * g.cam.Zoom()
	for i, u := range g.units {
		sx, sy := geo.Apply(u.X, u.Y)
		size := float32(half * 2)
		vector.DrawFilledRect(screen, float32(sx-half), float32(sy-half), size, size, u.Color, false)
		if i == g.selected {
			vector.StrokeRect(screen, float32(sx-half)-3, float32(sy-half)-3, size+6, size+6, 2, color.NRGBA{0xff, 0xff, 0xff, 0xff}, false)
		}
	}

	for _, p := range g.pings {
		sx, sy := geo.Apply(p.x, p.y)
		alpha := uint8(255 * p.ttl / pingLifeFrames)
		r := float32((pingLifeFrames-p.ttl)/2 + 6)
		vector.StrokeCircle(screen, float32(sx), float32(sy), r, 2, color.NRGBA{0xff, 0xaa, 0x33, alpha}, true)
	}

	ebitenutil.DebugPrintAt(screen, g.statusLine(), 8, 8)
	ebitenutil.DebugPrintAt(screen, "1-4/click select  rclick move  mclick ping  F/R stance  Q/E status  T chat  wheel zoom", 8, common.BaseHeight-18)

	g.chat.Draw(screen)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	const step = 100.0
	gridColor := color.NRGBA{0x2a, 0x31, 0x38, 0xff}
	geo := g.cam.GeoM()

	left, top := g.cam.ScreenToWorld(0, 0)
	right, bottom := g.cam.ScreenToWorld(common.BaseWidth, common.BaseHeight)

	for x := math.Floor(left/step) * step; x <= right; x += step {
		sx, _ := geo.Apply(x, 0)
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), common.BaseHeight, 1, gridColor, false)
	}
	for y := math.Floor(top/step) * step; y <= bottom; y += step {
		_, sy := geo.Apply(0, y)
		vector.StrokeLine(screen, 0, float32(sy), common.BaseWidth, float32(sy), 1, gridColor, false)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
