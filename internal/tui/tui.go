// Package tui plays a room in the terminal.
package tui

import (
	"fmt"
	"math"
	"time"

	"MissileCommand/internal/game"

	"github.com/gdamore/tcell/v2"
)

var (
	styleGround    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleRubble    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleSilo      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleAmmo      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePlayer    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleAttacker  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBlast     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemyHit  = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	styleRepairBar = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

type Terminal struct {
	screen        tcell.Screen
	room          *game.Room
	width, height int
	buttons       tcell.ButtonMask
}

// NewTerminal binds an initialized screen to a room.
func NewTerminal(screen tcell.Screen, room *game.Room) *Terminal {
	screen.EnableMouse()
	screen.HideCursor()
	t := &Terminal{screen: screen, room: room}
	t.width, t.height = screen.Size()
	return t
}

// Run plays room in the current terminal until the player quits.
func Run(room *game.Room) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	NewTerminal(screen, room).run()
	return nil
}

func (t *Terminal) run() {
	ticker := time.NewTicker(time.Second / game.SimHz)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	pacer := game.NewPacer(time.Now())
	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				t.room.Step(pacer.Elapsed(time.Now()))
				return
			}
		case now := <-ticker.C:
			t.room.Step(pacer.Elapsed(now))
			t.draw(t.room.Snapshot())
		}
	}
}

// toWorld maps a terminal cell to the centre of the world area it covers.
func (t *Terminal) toWorld(x, y int, worldW, worldH float64) game.Vec2 {
	rows := t.playRows()
	return game.Vec2{
		X: (float64(x) + 0.5) * worldW / float64(max(t.width, 1)),
		Y: (float64(y) + 0.5) * worldH / float64(max(rows, 1)),
	}
}

func (t *Terminal) toCell(p game.Vec2, worldW, worldH float64) (int, int) {
	rows := t.playRows()
	x := int(math.Floor(p.X * float64(t.width) / worldW))
	y := int(math.Floor(p.Y * float64(rows) / worldH))
	return x, y
}

// playRows excludes the status line.
func (t *Terminal) playRows() int {
	return t.height - 1
}

func (t *Terminal) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			t.room.Enqueue(game.Command{Kind: game.CmdQuit})
			return false
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons &^ t.buttons
		t.buttons = buttons
		x, y := ev.Position()
		if y >= t.playRows() {
			return true
		}
		at := t.toWorld(x, y, t.room.Width, t.room.Height)
		if pressed&tcell.Button1 != 0 {
			t.room.Enqueue(game.Command{Kind: game.CmdLaunch, At: at})
		}
		if pressed&tcell.Button2 != 0 {
			t.room.Enqueue(game.Command{Kind: game.CmdRepair, At: at})
		}

	case *tcell.EventResize:
		t.width, t.height = t.screen.Size()
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= t.width || y >= t.playRows() {
		return
	}
	t.screen.SetContent(x, y, r, nil, style)
}

func (t *Terminal) fillRect(rect game.Rect, r rune, style tcell.Style, worldW, worldH float64) {
	x0, y0 := t.toCell(game.Vec2{X: rect.X, Y: rect.Y}, worldW, worldH)
	x1, y1 := t.toCell(game.Vec2{X: rect.X + rect.W, Y: rect.Y + rect.H}, worldW, worldH)
	x1, y1 = max(x1, x0+1), max(y1, y0+1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.set(x, y, r, style)
		}
	}
}

func (t *Terminal) draw(s game.Snapshot) {
	t.screen.Clear()
	w, h := s.Width, s.Height

	t.fillRect(s.Ground, '▀', styleGround, w, h)

	for _, c := range s.Cities {
		for _, b := range c.Buildings {
			if b.Destroyed {
				t.fillRect(b.Rubble, '▄', styleRubble, w, h)
				continue
			}
			shade := int32(b.Color) * 4
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(shade, shade, min(shade+48, 255)))
			t.fillRect(b.Rect, '█', style, w, h)
		}
		if c.Repairing && c.RepairBar.W > 0 {
			t.fillRect(c.RepairBar, '▬', styleRepairBar, w, h)
		}
	}

	for _, silo := range s.Silos {
		t.fillRect(silo.Shaft, '▒', styleSilo, w, h)
		for _, p := range silo.Pellets {
			x, y := t.toCell(p, w, h)
			t.set(x, y, '•', styleAmmo)
		}
	}

	for _, m := range s.Missiles {
		style := styleAttacker
		if m.Player {
			style = stylePlayer
		}
		t.drawTrail(m.Origin, m.Pos, style, w, h)
		x, y := t.toCell(m.Pos, w, h)
		t.set(x, y, '*', style)
	}

	for _, e := range s.Explosions {
		style := styleEnemyHit
		if e.Player {
			style = styleBlast
		}
		center := e.Pos
		t.fillRect(game.Rect{X: center.X - e.Radius, Y: center.Y - e.Radius, W: 2 * e.Radius, H: 2 * e.Radius}, '░', style, w, h)
	}

	t.drawStatus(s)
	t.screen.Show()
}

func (t *Terminal) drawTrail(from, to game.Vec2, style tcell.Style, worldW, worldH float64) {
	x0, y0 := t.toCell(from, worldW, worldH)
	x1, y1 := t.toCell(to, worldW, worldH)
	line := game.NewLineStepper(game.GridPoint{X: x0, Y: y0}, game.GridPoint{X: x1, Y: y1})
	for !line.Done() {
		p := line.Next()
		t.set(p.X, p.Y, '.', style)
	}
}

func (t *Terminal) drawStatus(s game.Snapshot) {
	ammo := 0
	for _, silo := range s.Silos {
		ammo += silo.Ammo
	}
	msg := fmt.Sprintf(" t=%5.1fs ammo %d  launches %d  intercepts %d  lost %d  repairs %d  [LMB launch, RMB repair, q quit]",
		float64(s.Now)/1000, ammo, s.Stats.Launches, s.Stats.Intercepts, s.Stats.BuildingsLost, s.Stats.Repairs)
	if s.GameOver {
		msg = " ALL CITIES DESTROYED " + msg
	}
	y := t.height - 1
	col := 0
	for _, r := range msg {
		if col >= t.width {
			break
		}
		t.screen.SetContent(col, y, r, nil, styleStatus)
		col++
	}
	for ; col < t.width; col++ {
		t.screen.SetContent(col, y, ' ', nil, styleStatus)
	}
}
