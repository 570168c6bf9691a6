package tui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/casterix/gridkit/grid"
	"github.com/casterix/gridkit/scenario"
)

// Run opens a terminal screen for the scenario and processes key events
// until the user quits. It returns any screen setup failure or an error
// from rebuilding the grid after a move.
func Run(sc *scenario.Scenario) error {
	g, err := sc.Grid()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	session := &playSession{
		screen: screen,
		sc:     sc,
		g:      g,
		status: fmt.Sprintf("%s — arrows move %q, esc quits", sc.Name, sc.Actor),
	}
	return session.loop()
}

type playSession struct {
	screen tcell.Screen
	sc     *scenario.Scenario
	g      *grid.Grid
	status string
}

func (p *playSession) loop() error {
	for {
		p.draw()

		switch ev := p.screen.PollEvent().(type) {
		case *tcell.EventResize:
			p.screen.Sync()

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
				return nil
			}

			dir, ok := keyDirection(ev.Key())
			if !ok {
				continue
			}
			if err := p.move(dir); err != nil {
				return err
			}
		}
	}
}

// move applies a single actor move and updates the status line. Only an
// error rebuilding the grid is fatal; out-of-bounds is a normal outcome.
func (p *playSession) move(dir grid.Direction) error {
	out, err := p.g.Move(p.sc.ActorRune(), dir, p.sc.FillRune())
	if errors.Is(err, grid.ErrOutOfBounds) {
		p.status = fmt.Sprintf("can't move %v: out of bounds", dir)
		return nil
	}
	if err != nil {
		return err
	}

	next, err := grid.New(out)
	if err != nil {
		return err
	}
	p.g = next
	pos, _ := p.g.Find(p.sc.ActorRune())
	p.status = fmt.Sprintf("moved %v to (%d,%d)", dir, pos.X, pos.Y)
	return nil
}

func (p *playSession) draw() {
	p.screen.Clear()

	cellStyle := tcell.StyleDefault
	actorStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	actor := p.sc.ActorRune()
	for y := 0; y < p.g.Height(); y++ {
		for x := 0; x < p.g.Width(); x++ {
			ch, err := p.g.At(x, y)
			if err != nil {
				continue
			}
			style := cellStyle
			if ch == actor {
				style = actorStyle
			}
			p.screen.SetContent(x, y, ch, nil, style)
		}
	}

	for i, ch := range p.status {
		p.screen.SetContent(i, p.g.Height()+1, ch, nil, statusStyle)
	}
	p.screen.Show()
}

func keyDirection(key tcell.Key) (grid.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return grid.Up, true
	case tcell.KeyDown:
		return grid.Down, true
	case tcell.KeyLeft:
		return grid.Left, true
	case tcell.KeyRight:
		return grid.Right, true
	}
	return 0, false
}
