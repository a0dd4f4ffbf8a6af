// Package rules wraps the external chess rules engine behind a small
// adapter. The coordinator never judges move legality itself; it applies
// moves through a Position and trusts the verdicts reported here.
package rules

import "strings"

// Color identifies a side. Exactly two values exist; comparisons are
// direct, never through string prefixes.
type Color int

const (
	White Color = iota
	Black
)

// String returns the long color label used in player payloads.
func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Code returns the one-character turn code used on the wire.
func (c Color) Code() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// Move is a transient move submission. Promotion is empty or a single
// piece letter (q, r, b, n).
type Move struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// UCI renders the move in coordinate notation for the engine.
func (m Move) UCI() string {
	return strings.ToLower(m.From + m.To + m.Promotion)
}

// Status is the engine's verdict on a position.
type Status int

const (
	// Ongoing means the game continues with no special condition.
	Ongoing Status = iota
	// Check means the side to move is in check.
	Check
	// Checkmate ends the game; the side that just moved wins.
	Checkmate
	// Draw ends the game with no winner.
	Draw
)

// String returns the wire label for the status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Square describes one occupied board square in the 8x8 grid encoding.
type Square struct {
	Square string `json:"square"`
	Type   string `json:"type"`
	Color  string `json:"color"`
}

// Board is the 8x8 piece-occupancy grid, rank 8 first, nil for empty
// squares.
type Board [][]*Square

// Position is an opaque game state owned by the engine. Apply leaves the
// position untouched when it rejects a move.
type Position interface {
	Apply(Move) error
	Turn() Color
	Status() Status
	FEN() string
	Board() Board
}

// Engine creates fresh positions.
type Engine interface {
	NewGame() Position
}
