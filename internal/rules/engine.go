package rules

import (
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"
)

// ChessEngine implements Engine on top of corentings/chess.
type ChessEngine struct{}

// NewEngine returns the chess rules engine.
func NewEngine() *ChessEngine {
	return &ChessEngine{}
}

// NewGame returns a position at the standard starting setup.
func (e *ChessEngine) NewGame() Position {
	return &position{game: nchess.NewGame()}
}

type position struct {
	game    *nchess.Game
	lastSAN string
}

func (p *position) Apply(m Move) error {
	pos := p.game.Position()

	mv, err := nchess.UCINotation{}.Decode(pos, m.UCI())
	if err != nil {
		return fmt.Errorf("decode move %q: %w", m.UCI(), err)
	}
	if err := p.game.Move(mv, nil); err != nil {
		return fmt.Errorf("apply move %q: %w", m.UCI(), err)
	}

	// Encode against the pre-move position so check/mate suffixes land.
	p.lastSAN = nchess.AlgebraicNotation{}.Encode(pos, mv)
	return nil
}

func (p *position) Turn() Color {
	if p.game.Position().Turn() == nchess.Black {
		return Black
	}
	return White
}

func (p *position) Status() Status {
	switch p.game.Outcome() {
	case nchess.WhiteWon, nchess.BlackWon:
		return Checkmate
	case nchess.Draw:
		return Draw
	}
	if strings.HasSuffix(p.lastSAN, "+") {
		return Check
	}
	return Ongoing
}

func (p *position) FEN() string {
	return p.game.FEN()
}

// Board walks the occupancy map into the rank-8-first grid the clients
// render from.
func (p *position) Board() Board {
	occupied := p.game.Position().Board().SquareMap()

	board := make(Board, 8)
	for rank := 7; rank >= 0; rank-- {
		row := make([]*Square, 8)
		for file := 0; file < 8; file++ {
			sq := nchess.Square(rank*8 + file)
			piece, ok := occupied[sq]
			if !ok {
				continue
			}
			row[file] = &Square{
				Square: sq.String(),
				Type:   pieceLetter(piece.Type()),
				Color:  colorCode(piece.Color()),
			}
		}
		board[7-rank] = row
	}
	return board
}

func pieceLetter(t nchess.PieceType) string {
	switch t {
	case nchess.King:
		return "k"
	case nchess.Queen:
		return "q"
	case nchess.Rook:
		return "r"
	case nchess.Bishop:
		return "b"
	case nchess.Knight:
		return "n"
	default:
		return "p"
	}
}

func colorCode(c nchess.Color) string {
	if c == nchess.Black {
		return "b"
	}
	return "w"
}
