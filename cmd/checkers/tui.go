package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/0x5844/checkers"
	"github.com/0x5844/checkers/opening"
)

const (
	cellWidth = 3
	boardLeft = 3
	boardTop  = 1
)

// selector holds the cursor and the selected piece for the full screen
// board. It never touches the terminal so it can be driven from tests.
type selector struct {
	g        *checkers.Game
	book     opening.Book
	cursor   checkers.Square
	selected checkers.Square
	status   string
}

func newSelector(g *checkers.Game, book opening.Book) *selector {
	return &selector{g: g, book: book, cursor: checkers.B3, selected: checkers.NoSquare}
}

// moveCursor shifts the cursor by df files and dr ranks, staying on the board.
func (s *selector) moveCursor(df, dr int) {
	f := int(s.cursor.File()) + df
	r := int(s.cursor.Rank()) + dr
	if f < 0 || f >= checkers.NumOfFiles || r < 0 || r >= checkers.NumOfRanks {
		return
	}
	s.cursor = checkers.NewSquare(checkers.File(f), checkers.Rank(r))
}

// activate selects the piece under the cursor or, with a piece already
// selected, plays from the selection to the cursor.
func (s *selector) activate() {
	if s.g.Outcome() != checkers.NoOutcome {
		return
	}
	turn := s.g.Turn()
	if pending, ok := s.g.Pending(); ok {
		s.selected = pending
	} else if s.g.Position().Board().IsSidePiece(turn, s.cursor) {
		s.selected = s.cursor
		s.status = fmt.Sprintf("selected %s", s.selected)
		return
	}
	if s.selected == checkers.NoSquare {
		s.status = fmt.Sprintf("select a %s piece", turn.Name())
		return
	}

	if err := s.g.Move(s.selected, s.cursor); err != nil {
		s.status = err.Error()
		return
	}
	s.status = ""
	s.selected = checkers.NoSquare
	if s.book != nil {
		if o := s.book.Find(s.g.Moves()); o != nil {
			s.status = o.Title()
		}
	}
	if msg, ok := crowned(s.g); ok {
		s.status = msg
	}
	if sq, ok := s.g.Pending(); ok {
		s.selected = sq
		s.status = fmt.Sprintf("jump again from %s", sq)
	}
}

// runTerminal plays the game on a full screen board. Arrow keys move the
// cursor, Enter or Space selects and moves, Esc or q quits.
func runTerminal(g *checkers.Game, book opening.Book) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	s := newSelector(g, book)
	for {
		if err := s.draw(); err != nil {
			return err
		}
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventError:
			return ev.Err
		case termbox.EventKey:
		default:
			continue
		}
		switch {
		case ev.Key == termbox.KeyEsc, ev.Key == termbox.KeyCtrlC, ev.Ch == 'q':
			return nil
		case ev.Key == termbox.KeyArrowUp:
			s.moveCursor(0, 1)
		case ev.Key == termbox.KeyArrowDown:
			s.moveCursor(0, -1)
		case ev.Key == termbox.KeyArrowLeft:
			s.moveCursor(-1, 0)
		case ev.Key == termbox.KeyArrowRight:
			s.moveCursor(1, 0)
		case ev.Key == termbox.KeyEnter, ev.Key == termbox.KeySpace:
			s.activate()
		case ev.Ch == 'r':
			g.Resign(g.Turn())
		}
	}
}

func (s *selector) draw() error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	b := s.g.Position().Board()
	for sq := checkers.A1; sq <= checkers.H8; sq++ {
		x := boardLeft + int(sq.File())*cellWidth
		y := boardTop + 7 - int(sq.Rank())
		bg := termbox.ColorWhite
		if sq.Playable() {
			bg = termbox.ColorGreen
		}
		switch sq {
		case s.selected:
			bg = termbox.ColorYellow
		case s.cursor:
			bg = termbox.ColorCyan
		}
		fg := termbox.ColorBlack | termbox.AttrBold
		p := b.Piece(sq)
		if p.Color() == checkers.Red {
			fg = termbox.ColorRed | termbox.AttrBold
		}
		ch := ' '
		if p != checkers.NoPiece {
			ch = []rune(p.String())[0]
		}
		termbox.SetCell(x, y, ' ', fg, bg)
		termbox.SetCell(x+1, y, ch, fg, bg)
		termbox.SetCell(x+2, y, ' ', fg, bg)
	}
	for i := 0; i < checkers.NumOfRanks; i++ {
		printText(1, boardTop+7-i, checkers.Rank(i).String(), termbox.ColorDefault, termbox.ColorDefault)
		printText(boardLeft+i*cellWidth+1, boardTop+8, checkers.File(i).String(), termbox.ColorDefault, termbox.ColorDefault)
	}

	info := prompt(s.g)
	if s.g.Outcome() != checkers.NoOutcome {
		info = fmt.Sprintf("Game over: %s by %s", s.g.Outcome(), s.g.Method())
	}
	printText(1, boardTop+10, info, termbox.ColorDefault, termbox.ColorDefault)
	printText(1, boardTop+11, s.status, termbox.ColorYellow, termbox.ColorDefault)
	printText(1, boardTop+13, "arrows move, enter selects, r resigns, q quits", termbox.ColorDefault, termbox.ColorDefault)
	return termbox.Flush()
}

// printText writes s starting at x, advancing by each rune's display width.
func printText(x, y int, s string, fg, bg termbox.Attribute) {
	for _, r := range s {
		termbox.SetCell(x, y, r, fg, bg)
		x += runewidth.RuneWidth(r)
	}
}
