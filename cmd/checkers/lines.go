package main

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/0x5844/checkers"
	"github.com/0x5844/checkers/opening"
)

var lastMoveColor = color.RGBA{0xCD, 0xD2, 0x6A, 0xFF}

// runLines plays the game reading one move per line from in. Moves are
// typed as "b3 c4", "b3-c4", "b3xd5" or "11-15". While a jump chain is
// pending a single square continues it. "moves" lists the legal moves,
// "resign" concedes and "q" quits.
func runLines(g *checkers.Game, book opening.Book, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	var lastOpening string
	for g.Outcome() == checkers.NoOutcome {
		fmt.Fprint(out, g.Position().Board().Draw())
		fmt.Fprint(out, prompt(g))
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}

		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "moves":
			fmt.Fprintln(out, formatMoves(g.ValidMoves()))
			continue
		case "resign":
			g.Resign(g.Turn())
			continue
		}

		if err := g.MoveStr(line); err != nil {
			fmt.Fprintf(out, "Invalid move: %v\n", err)
			continue
		}
		if msg, ok := crowned(g); ok {
			fmt.Fprintln(out, msg)
		}
		if book != nil {
			if o := book.Find(g.Moves()); o != nil && o.Title() != lastOpening {
				lastOpening = o.Title()
				fmt.Fprintf(out, "Opening: %s\n", o.Title())
			}
		}
	}

	fmt.Fprint(out, g.Position().Board().Draw())
	fmt.Fprintf(out, "Game over: %s by %s\n", g.Outcome(), g.Method())
	fmt.Fprintln(out, g.String())
	return nil
}

func prompt(g *checkers.Game) string {
	if sq, ok := g.Pending(); ok {
		return fmt.Sprintf("%s, continue jumping from %s: ", g.Turn().Name(), sq)
	}
	return fmt.Sprintf("%s to move: ", g.Turn().Name())
}

// crowned reports the promotion made by the last move, if any.
func crowned(g *checkers.Game) (string, bool) {
	moves := g.Moves()
	if len(moves) == 0 || !moves[len(moves)-1].Promotes() {
		return "", false
	}
	sq := moves[len(moves)-1].S2()
	return fmt.Sprintf("%s man crowned on %s", g.Position().Board().Piece(sq).Color().Name(), sq), true
}

func formatMoves(moves []*checkers.Move) string {
	s := make([]string, len(moves))
	for i, m := range moves {
		s[i] = m.String()
	}
	return strings.Join(s, " ")
}
