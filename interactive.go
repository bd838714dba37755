package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
)

const (
	tickAdjust = 2 * time.Millisecond
	minTick    = 2 * time.Millisecond
	panStep    = 4
)

// session holds the UI-side state of an interactive run
type session struct {
	g      *game
	tick   time.Duration
	paused bool

	// mouse state from the previous event, for press edges and drags
	buttons          tcell.ButtonMask
	lastCol, lastRow int
	lastCell         model.Coord
}

func newSession(g *game) *session {
	return &session{g: g, tick: max(g.config.FrameRate, minTick)}
}

// runInteractive drives the game on a terminal screen until the user quits
func runInteractive(g *game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runInteractive] creating screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runInteractive] initializing screen")
	}
	defer screen.Fini()
	screen.EnableMouse()

	var (
		s        = newSession(g)
		renderer = model.NewScreenRenderer(screen)
		events   = make(chan tcell.Event, 16)
		quit     = make(chan struct{})
		ticker   = time.NewTicker(s.tick)
	)
	defer ticker.Stop()
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	for {
		g.viewport = renderer.Viewport(g.viewport)
		renderer.Draw(g.cells, g.viewport, s.status())

		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				continue
			}
			before := s.tick
			if !s.handle(ev) {
				return nil
			}
			if s.tick != before {
				ticker.Reset(s.tick)
			}
		case <-ticker.C:
			if !s.paused {
				g.advance()
			}
		}
	}
}

func (s *session) status() string {
	state := "running"
	if s.paused {
		state = "paused"
	}
	return fmt.Sprintf(" gen %d | pop %d | tick %v | %s | origin %s | zoom %dx | space pause, n step, click toggle, right-click glider, wheel zoom, q quit",
		s.g.generation, s.g.cells.Len(), s.tick, state, s.g.viewport.Origin, s.g.viewport.CellScale())
}

// handle applies one input event; it returns false when the user quits
func (s *session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	}
	return true
}

func (s *session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.g.advance()
	case tcell.KeyLeft:
		s.tick = max(s.tick-tickAdjust, minTick)
	case tcell.KeyRight:
		s.tick += tickAdjust
	case tcell.KeyRune:
		return s.handleRune(ev.Rune())
	}
	return true
}

func (s *session) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		s.paused = !s.paused
	case 'n':
		s.g.advance()
	case '-':
		s.tick = max(s.tick-tickAdjust, minTick)
	case '+':
		s.tick += tickAdjust
	case 'h', 'a':
		s.g.viewport = s.g.viewport.Pan(model.Coord{X: -panStep})
	case 'l', 'd':
		s.g.viewport = s.g.viewport.Pan(model.Coord{X: panStep})
	case 'k', 'w':
		s.g.viewport = s.g.viewport.Pan(model.Coord{Y: -panStep})
	case 'j', 's':
		s.g.viewport = s.g.viewport.Pan(model.Coord{Y: panStep})
	case 'g':
		model.SpawnGlider(s.g.viewport.Center(), &s.g.cells)
	case 'c':
		s.g.cells = model.NewCellSet()
		s.g.history.Reset()
	case 'r':
		s.g.reseed()
	}
	return true
}

/*
handleMouse maps clicks onto the live set:
left press toggles a cell, left drag paints cells alive,
right press spawns a glider, middle drag pans the viewport,
the wheel zooms. Clicks outside the drawn grid edit nothing.
*/
func (s *session) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		s.g.viewport = s.g.viewport.Zoom(1)
	case buttons&tcell.WheelDown != 0:
		s.g.viewport = s.g.viewport.Zoom(-1)
	}
	buttons &^= tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

	pressed := buttons &^ s.buttons
	cell := s.g.viewport.CellAt(col, row)
	onGrid := s.g.viewport.Contains(cell)

	switch {
	case pressed&tcell.Button1 != 0 && onGrid:
		s.g.cells.Toggle(cell)
	case buttons&tcell.Button1 != 0 && onGrid && cell != s.lastCell:
		s.g.cells.Insert(cell)
	case pressed&tcell.Button2 != 0 && onGrid:
		model.SpawnGlider(cell, &s.g.cells)
	case buttons&tcell.Button3 != 0 && s.buttons&tcell.Button3 != 0:
		prev := s.g.viewport.CellAt(s.lastCol, s.lastRow)
		s.g.viewport = s.g.viewport.Pan(model.Coord{X: prev.X - cell.X, Y: prev.Y - cell.Y})
		cell = s.g.viewport.CellAt(col, row)
	}

	s.buttons = buttons
	s.lastCol, s.lastRow = col, row
	s.lastCell = cell
}
