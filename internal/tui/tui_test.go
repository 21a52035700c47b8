package tui

import (
	"math/rand"
	"testing"

	"MissileCommand/internal/game"

	"github.com/gdamore/tcell/v2"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen, *game.Room) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	p := game.DefaultParams()
	p.Seed = 5
	p.MaxAttackers = 0
	room := game.NewRoom("tui", p)
	return NewTerminal(screen, room), screen, room
}

func TestCellMappingRoundTrips(t *testing.T) {
	term, _, room := newTestTerminal(t)
	for _, cell := range [][2]int{{0, 0}, {40, 12}, {79, 23}} {
		p := term.toWorld(cell[0], cell[1], room.Width, room.Height)
		x, y := term.toCell(p, room.Width, room.Height)
		if x != cell[0] || y != cell[1] {
			t.Errorf("cell %v mapped to %v and back to (%d,%d)", cell, p, x, y)
		}
	}
}

func TestLeftClickLaunchesOnce(t *testing.T) {
	term, _, room := newTestTerminal(t)

	term.handleInput(tcell.NewEventMouse(40, 5, tcell.Button1, tcell.ModNone))
	// Dragging with the button held does not fire again.
	term.handleInput(tcell.NewEventMouse(41, 5, tcell.Button1, tcell.ModNone))
	term.handleInput(tcell.NewEventMouse(41, 5, tcell.ButtonNone, tcell.ModNone))
	room.Tick()

	if got := room.Snapshot().Stats.Launches; got != 1 {
		t.Fatalf("expected 1 launch, got %d", got)
	}
}

func TestRightClickRepairsDestroyedCity(t *testing.T) {
	term, _, room := newTestTerminal(t)
	city := room.Cities[0]
	rng := rand.New(rand.NewSource(1))
	for !city.Destroyed {
		city.Damage(rng)
	}

	x, y := term.toCell(city.Rect.Center(), room.Width, room.Height)
	term.handleInput(tcell.NewEventMouse(x, y, tcell.Button2, tcell.ModNone))
	room.Tick()

	if !city.Repairing {
		t.Fatal("expected right click to start a repair")
	}
	if got := room.Snapshot().Stats.Launches; got != 0 {
		t.Fatalf("right click must not launch, got %d launches", got)
	}
}

func TestClicksOnStatusLineAreIgnored(t *testing.T) {
	term, _, room := newTestTerminal(t)
	term.handleInput(tcell.NewEventMouse(40, 24, tcell.Button1, tcell.ModNone))
	room.Tick()
	if got := room.Snapshot().Stats.Launches; got != 0 {
		t.Fatalf("expected no launch, got %d", got)
	}
}

func TestQuitKeys(t *testing.T) {
	keys := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, key := range keys {
		term, _, room := newTestTerminal(t)
		if term.handleInput(key) {
			t.Fatalf("expected %v to end the session", key.Name())
		}
		room.Tick()
		if !room.Stopped() {
			t.Fatalf("expected %v to stop the room", key.Name())
		}
	}
	term, _, _ := newTestTerminal(t)
	if !term.handleInput(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Fatal("other keys should keep the session running")
	}
}

func TestDrawRendersGroundAndStatus(t *testing.T) {
	term, screen, room := newTestTerminal(t)
	room.Tick()
	term.draw(room.Snapshot())

	_, gy := term.toCell(game.Vec2{X: 0, Y: room.GroundY + 1}, room.Width, room.Height)
	if r, _, _, _ := screen.GetContent(0, gy); r != '▀' {
		t.Fatalf("expected ground glyph at row %d, got %q", gy, r)
	}

	var status []rune
	for x := 0; x < 10; x++ {
		r, _, _, _ := screen.GetContent(x, 24)
		status = append(status, r)
	}
	if string(status) != " t=  0.0s " {
		t.Fatalf("unexpected status line %q", string(status))
	}
}
