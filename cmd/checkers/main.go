// Command checkers plays English draughts for two players at one terminal.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/0x5844/checkers"
	"github.com/0x5844/checkers/image"
	"github.com/0x5844/checkers/opening"
)

func main() {
	// Flags (env fallbacks).
	ui := flag.Bool("tui", getenb("CHECKERS_UI", false), "full screen terminal board instead of line prompts")
	fen := flag.String("fen", getenv("CHECKERS_FEN", ""), "starting position in FEN notation (default: standard opening)")
	svgPath := flag.String("svg", getenv("CHECKERS_SVG", ""), "write the final board as SVG to this file")
	flag.Parse()

	var opts []func(*checkers.Game)
	if *fen != "" {
		opt, err := checkers.FEN(*fen)
		fatalIf(err, "fen")
		opts = append(opts, opt)
	}
	g := checkers.NewGame(opts...)

	var book opening.Book
	if b, err := opening.NewBookBallots(); err != nil {
		log.Printf("opening book unavailable: %v", err)
	} else {
		book = b
	}

	var err error
	if *ui {
		err = runTerminal(g, book)
	} else {
		err = runLines(g, book, os.Stdin, os.Stdout)
	}
	fatalIf(err, "play")

	if *svgPath != "" {
		fatalIf(writeSVG(*svgPath, g), "svg")
		log.Printf("final board written to %s", *svgPath)
	}
}

func writeSVG(path string, g *checkers.Game) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	b := g.Position().Board()
	if moves := g.Moves(); len(moves) > 0 {
		last := moves[len(moves)-1]
		err = image.SVG(f, b, image.MarkSquares(lastMoveColor, last.S1(), last.S2()))
	} else {
		err = image.SVG(f, b)
	}
	if err != nil {
		return err
	}
	return f.Close()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func fatalIf(err error, label string) {
	if err != nil {
		log.Fatalf("%s: %v", label, err)
	}
}
