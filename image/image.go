// Package image renders checkers boards as SVG.
package image

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/0x5844/checkers"
)

const (
	sqWidth     = 45
	sqHeight    = 45
	boardWidth  = 8 * sqWidth
	boardHeight = 8 * sqHeight
	pieceRadius = sqWidth*2/5 - 1
	crownRadius = sqWidth / 6
)

var (
	defaultLight = color.RGBA{0xF0, 0xD9, 0xB5, 0xFF}
	defaultDark  = color.RGBA{0x94, 0x6F, 0x51, 0xFF}
	redFill      = color.RGBA{0xC8, 0x1E, 0x1E, 0xFF}
	blackFill    = color.RGBA{0x1E, 0x1E, 0x1E, 0xFF}
	crownFill    = color.RGBA{0xE8, 0xC5, 0x47, 0xFF}
)

// SVG writes the board SVG representation into the writer.
// An error is returned if there is an error writing data.
// SVG also takes options which can customize the image output.
func SVG(w io.Writer, b *checkers.Board, opts ...func(*encoder)) error {
	e := newEncoder(w, opts)
	return e.EncodeSVG(b)
}

// SquareColors is designed to be used as an optional argument
// to the SVG function. It changes the default light and
// dark square colors to the colors given.
func SquareColors(light, dark color.Color) func(*encoder) {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// MarkSquares is designed to be used as an optional argument
// to the SVG function. It marks the given squares with the
// color. A possible usage includes marking squares of the
// previous move.
func MarkSquares(c color.Color, sqs ...checkers.Square) func(*encoder) {
	return func(e *encoder) {
		for _, sq := range sqs {
			e.marks[sq] = c
		}
	}
}

// Perspective is designed to be used as an optional argument
// to the SVG function. It draws the board from the perspective
// of the given color. Red is the default.
func Perspective(c checkers.Color) func(*encoder) {
	return func(e *encoder) {
		e.perspective = c
	}
}

// An encoder encodes checkers boards into images.
type encoder struct {
	w           io.Writer
	light       color.Color
	dark        color.Color
	perspective checkers.Color
	marks       map[checkers.Square]color.Color
}

func newEncoder(w io.Writer, options []func(*encoder)) *encoder {
	e := &encoder{
		w:           w,
		light:       defaultLight,
		dark:        defaultDark,
		perspective: checkers.Red,
		marks:       map[checkers.Square]color.Color{},
	}
	for _, op := range options {
		if op != nil {
			op(e)
		}
	}
	return e
}

// EncodeSVG writes the board SVG representation into
// the encoder's writer. An error is returned if there
// is an error writing data.
func (e *encoder) EncodeSVG(b *checkers.Board) error {
	if b == nil {
		return errors.New("checkers/image: nil board")
	}
	if err := b.Verify(); err != nil {
		return err
	}
	sb := &strings.Builder{}
	canvas := svg.New(sb)
	canvas.Start(boardWidth, boardHeight)
	canvas.Rect(0, 0, boardWidth, boardHeight)

	for sq := checkers.A1; sq <= checkers.H8; sq++ {
		x, y := e.origin(sq)
		fill := e.light
		if sq.Playable() {
			fill = e.dark
		}
		if c, ok := e.marks[sq]; ok {
			fill = c
		}
		canvas.Rect(x, y, sqWidth, sqHeight, "fill: "+colorToHex(fill))
		e.drawLabels(canvas, sq, x, y)

		p := b.Piece(sq)
		if p == checkers.NoPiece {
			continue
		}
		cx, cy := x+sqWidth/2, y+sqHeight/2
		canvas.Circle(cx, cy, pieceRadius, pieceStyle(p.Color()))
		if p.Type() == checkers.King {
			canvas.Circle(cx, cy, crownRadius, "fill: "+colorToHex(crownFill))
		}
	}
	canvas.End()
	_, err := io.WriteString(e.w, sb.String())
	return err
}

// origin returns the top left corner of sq as seen from the encoder's
// perspective.
func (e *encoder) origin(sq checkers.Square) (int, int) {
	col, row := int(sq.File()), 7-int(sq.Rank())
	if e.perspective == checkers.Black {
		col, row = 7-col, 7-row
	}
	return col * sqWidth, row * sqHeight
}

// drawLabels writes the file letter along the bottom edge and the rank
// number along the left edge.
func (e *encoder) drawLabels(canvas *svg.SVG, sq checkers.Square, x, y int) {
	txtColor := colorToHex(e.dark)
	if sq.Playable() {
		txtColor = colorToHex(e.light)
	}
	style := "font-size:11px;fill: " + txtColor
	if y == boardHeight-sqHeight {
		canvas.Text(x+sqWidth-8, y+sqHeight-3, sq.File().String(), style)
	}
	if x == 0 {
		canvas.Text(x+2, y+12, sq.Rank().String(), style)
	}
}

func pieceStyle(c checkers.Color) string {
	fill, stroke := redFill, blackFill
	if c == checkers.Black {
		fill, stroke = blackFill, redFill
	}
	return "fill: " + colorToHex(fill) + "; stroke: " + colorToHex(stroke) + "; stroke-width: 2"
}

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
