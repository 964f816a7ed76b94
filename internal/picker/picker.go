// Package picker is a minimal full-screen tcell list selector: one flat
// list, a cursor, Enter to select, q/Esc/Ctrl-C to cancel. Each keypress is
// handled synchronously and the whole screen is redrawn.
package picker

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var newScreen = tcell.NewScreen

const statusHint = "Up/Down j/k: select  PgUp/PgDn: page  Enter: confirm  q/Esc: quit"

type Options struct {
	// Rows are the display lines, one per selectable item.
	Rows []string
	// Status overrides the default key-hint line when non-empty.
	Status string
}

type listState struct {
	selected int
	scroll   int
}

type action int

const (
	actionNone action = iota
	actionSelect
	actionCancel
)

type quitEvent struct {
	when time.Time
}

func (e *quitEvent) When() time.Time { return e.when }

// Pick runs the selector and returns the index of the chosen row, or -1
// when the user cancels. The list must be non-empty; the caller handles the
// zero-session case before entering the loop.
func Pick(ctx context.Context, opts Options) (int, error) {
	if len(opts.Rows) == 0 {
		return -1, errors.New("picker: empty list")
	}

	screen, err := newScreen()
	if err != nil {
		return -1, err
	}
	if err := screen.Init(); err != nil {
		return -1, err
	}
	defer screen.Fini()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			screen.PostEvent(&quitEvent{when: time.Now()})
		case <-done:
		}
	}()

	state := &listState{}
	for {
		draw(screen, opts, state)
		ev := screen.PollEvent()

		switch tev := ev.(type) {
		case *quitEvent:
			return -1, ctx.Err()
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch handleKey(state, len(opts.Rows), viewHeight(screen), tev) {
			case actionSelect:
				return state.selected, nil
			case actionCancel:
				return -1, nil
			}
		}
	}
}

// handleKey advances the state machine for one keypress. Cursor movement is
// clamped at both list boundaries, not wrapped.
func handleKey(state *listState, nItems int, viewH int, ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyCtrlJ:
		return actionSelect
	case tcell.KeyESC, tcell.KeyCtrlC:
		return actionCancel
	case tcell.KeyUp:
		state.selected = clamp(state.selected-1, 0, nItems-1)
	case tcell.KeyDown:
		state.selected = clamp(state.selected+1, 0, nItems-1)
	case tcell.KeyPgUp:
		state.selected = clamp(state.selected-max(1, viewH), 0, nItems-1)
	case tcell.KeyPgDn:
		state.selected = clamp(state.selected+max(1, viewH), 0, nItems-1)
	case tcell.KeyHome:
		state.selected = 0
	case tcell.KeyEnd:
		state.selected = nItems - 1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return actionCancel
		case 'k', 'K':
			state.selected = clamp(state.selected-1, 0, nItems-1)
		case 'j', 'J':
			state.selected = clamp(state.selected+1, 0, nItems-1)
		case 'g':
			state.selected = 0
		case 'G':
			state.selected = nItems - 1
		default:
			return actionNone
		}
	default:
		return actionNone
	}
	state.ensureVisible(viewH, nItems)
	return actionNone
}

func viewHeight(screen tcell.Screen) int {
	_, h := screen.Size()
	return max(1, h-1) // bottom row is the status bar
}

func draw(screen tcell.Screen, opts Options, state *listState) {
	screen.Clear()
	w, h := screen.Size()
	viewH := max(1, h-1)

	state.clamp(len(opts.Rows))
	state.ensureVisible(viewH, len(opts.Rows))

	for i := 0; i < viewH; i++ {
		idx := state.scroll + i
		if idx >= len(opts.Rows) {
			break
		}
		style := tcell.StyleDefault
		if idx == state.selected {
			style = style.Reverse(true)
		}
		writeText(screen, 0, i, padRight(truncate(opts.Rows[idx], w), w), style)
	}

	status := opts.Status
	if status == "" {
		status = statusHint
	}
	if h > 0 {
		writeText(screen, 0, h-1, padRight(truncate(status, w), w), tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}

func (s *listState) clamp(nItems int) {
	if nItems <= 0 {
		s.selected = 0
		s.scroll = 0
		return
	}
	s.selected = clamp(s.selected, 0, nItems-1)
	s.scroll = clamp(s.scroll, 0, max(0, nItems-1))
}

func (s *listState) ensureVisible(viewH int, nItems int) {
	if nItems <= 0 || viewH <= 0 {
		s.scroll = 0
		return
	}
	maxScroll := max(0, nItems-viewH)
	if s.selected < s.scroll {
		s.scroll = s.selected
	} else if s.selected >= s.scroll+viewH {
		s.scroll = s.selected - viewH + 1
	}
	s.scroll = clamp(s.scroll, 0, maxScroll)
}

func writeText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	offset := 0
	for _, ch := range text {
		width := runewidth.RuneWidth(ch)
		if width == 0 {
			continue
		}
		screen.SetContent(x+offset, y, ch, nil, style)
		offset += width
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	var out []rune
	curWidth := 0
	for _, ch := range s {
		chWidth := runewidth.RuneWidth(ch)
		if chWidth == 0 {
			out = append(out, ch)
			continue
		}
		if curWidth+chWidth > width {
			break
		}
		out = append(out, ch)
		curWidth += chWidth
	}
	return string(out)
}

func padRight(s string, width int) string {
	for runewidth.StringWidth(s) < width {
		s += " "
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
