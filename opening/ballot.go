package opening

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"strings"

	_ "embed"

	"github.com/0x5844/checkers"
)

//go:embed ballots.tsv
var ballotData []byte

const (
	ballotColumnTitle = 0
	ballotColumnPDN   = 1 // Numbered squares, e.g. "11-15 23-19"
	expectedColumns   = 2 // Number of columns expected in the TSV data
)

// BookBallots holds the three move ballot openings of English draughts,
// arranged as a tree of moves from the starting position.
// BookBallots is safe for concurrent use.
type BookBallots struct {
	root *node
}

// node represents a position within the opening tree.
type node struct {
	parent   *node
	children map[string]*node   // Keyed by move string (e.g., "f3-e4")
	opening  *Opening           // Opening defined at this exact position (if any)
	pos      *checkers.Position // The position after the move leading to this node
}

// NewBookBallots creates a BookBallots from the embedded ballot data.
func NewBookBallots() (*BookBallots, error) {
	return newBookBallots(ballotData)
}

func newBookBallots(data []byte) (*BookBallots, error) {
	b := &BookBallots{
		root: &node{
			children: make(map[string]*node),
			pos:      checkers.StartingPosition(),
		},
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read ballot data: %w", err)
	}

	for i, row := range records {
		if i == 0 {
			continue // Skip header row
		}
		if len(row) < expectedColumns {
			log.Printf("warning: skipping ballot record %d due to insufficient columns (%d)", i+1, len(row))
			continue
		}
		title := strings.TrimSpace(row[ballotColumnTitle])
		pdn := strings.TrimSpace(row[ballotColumnPDN])

		game, err := parseGameFromPDN(pdn)
		if err != nil {
			log.Printf("warning: skipping ballot %q due to move error: %v", title, err)
			continue
		}
		moves := game.Moves()
		if len(moves) == 0 {
			continue
		}
		o := &Opening{title: title, pdn: pdn, moves: moves}
		if err := b.insert(o, moves); err != nil {
			return nil, fmt.Errorf("failed to insert opening %q: %w", title, err)
		}
	}

	if len(b.root.children) == 0 {
		return nil, errors.New("failed to load any valid openings from ballot data")
	}
	return b, nil
}

// parseGameFromPDN plays numbered move text such as "11-15 23-19" from
// the starting position. Move numbers like "1." are ignored.
func parseGameFromPDN(pdn string) (*checkers.Game, error) {
	g := checkers.NewGame()
	for _, tok := range strings.Fields(pdn) {
		if strings.HasSuffix(tok, ".") {
			continue
		}
		if err := g.MoveStr(tok); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// insert adds an opening to the tree, replaying each hop to record the
// position it leads to.
func (b *BookBallots) insert(o *Opening, moves []*checkers.Move) error {
	currentNode := b.root
	g := checkers.NewGame()

	for i, move := range moves {
		isValid := false
		for _, validMove := range g.ValidMoves() {
			if validMove.String() == move.String() {
				isValid = true
				break
			}
		}
		if !isValid {
			return fmt.Errorf("move %d (%s) is invalid for opening %q at position %s",
				i+1, move, o.title, g.Position())
		}
		if err := g.Move(move.S1(), move.S2()); err != nil {
			return err
		}

		moveStr := move.String()
		childNode, exists := currentNode.children[moveStr]
		if !exists {
			childNode = &node{
				parent:   currentNode,
				children: make(map[string]*node),
				pos:      g.Position(),
			}
			currentNode.children[moveStr] = childNode
		}
		currentNode = childNode
	}

	if currentNode.opening != nil {
		log.Printf("warning: overwriting opening %q with %q at the same position", currentNode.opening.Title(), o.Title())
	}
	currentNode.opening = o
	return nil
}

// Find implements the Book interface
func (b *BookBallots) Find(moves []*checkers.Move) *Opening {
	for n := b.followPath(b.root, moves); n != nil; n = n.parent {
		if n.opening != nil {
			return n.opening
		}
	}
	return nil
}

// Possible implements the Book interface
func (b *BookBallots) Possible(moves []*checkers.Move) []*Opening {
	n := b.followPath(b.root, moves)
	openings := []*Opening{}
	for _, n := range b.nodeList(n) {
		if n.opening != nil {
			openings = append(openings, n.opening)
		}
	}
	return openings
}

// Position returns the position reached by the longest prefix of moves
// found in the book.
func (b *BookBallots) Position(moves []*checkers.Move) *checkers.Position {
	pos := b.followPath(b.root, moves).pos
	return checkers.NewPosition(pos.Board(), pos.Turn())
}

func (b *BookBallots) followPath(n *node, moves []*checkers.Move) *node {
	if len(moves) == 0 {
		return n
	}
	c, ok := n.children[moves[0].String()]
	if !ok {
		return n
	}
	return b.followPath(c, moves[1:])
}

func (b *BookBallots) nodes(root *node, ch chan *node) {
	ch <- root
	for _, c := range root.children {
		b.nodes(c, ch)
	}
}

func (b *BookBallots) nodeList(root *node) []*node {
	ch := make(chan *node)
	go func() {
		b.nodes(root, ch)
		close(ch)
	}()
	nodes := []*node{}
	for n := range ch {
		nodes = append(nodes, n)
	}
	return nodes
}
