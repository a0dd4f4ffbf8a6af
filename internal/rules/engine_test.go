package rules

import (
	"strings"
	"testing"
)

func apply(t *testing.T, pos Position, moves ...Move) {
	t.Helper()
	for _, m := range moves {
		if err := pos.Apply(m); err != nil {
			t.Fatalf("apply %s: %v", m.UCI(), err)
		}
	}
}

func TestNewGameStartsWithWhite(t *testing.T) {
	pos := NewEngine().NewGame()

	if pos.Turn() != White {
		t.Fatalf("expected white to move, got %v", pos.Turn())
	}
	if pos.Status() != Ongoing {
		t.Fatalf("expected ongoing status, got %v", pos.Status())
	}
	if !strings.HasPrefix(pos.FEN(), "rnbqkbnr/pppppppp/") {
		t.Fatalf("unexpected starting FEN: %s", pos.FEN())
	}
}

func TestApplyFlipsTurn(t *testing.T) {
	pos := NewEngine().NewGame()

	apply(t, pos, Move{From: "e2", To: "e4"})
	if pos.Turn() != Black {
		t.Fatalf("expected black to move after e4")
	}

	apply(t, pos, Move{From: "e7", To: "e5"})
	if pos.Turn() != White {
		t.Fatalf("expected white to move after e5")
	}
}

func TestRejectedMoveLeavesPositionUntouched(t *testing.T) {
	pos := NewEngine().NewGame()
	before := pos.FEN()

	// Pawns do not move sideways.
	if err := pos.Apply(Move{From: "e2", To: "d2"}); err == nil {
		t.Fatal("expected sideways pawn move to be rejected")
	}

	if pos.FEN() != before {
		t.Fatalf("position changed after rejected move: %s != %s", pos.FEN(), before)
	}
	if pos.Turn() != White {
		t.Fatalf("turn changed after rejected move")
	}
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	pos := NewEngine().NewGame()

	apply(t, pos,
		Move{From: "f2", To: "f3"},
		Move{From: "e7", To: "e5"},
		Move{From: "g2", To: "g4"},
		Move{From: "d8", To: "h4"},
	)

	if pos.Status() != Checkmate {
		t.Fatalf("expected checkmate, got %v", pos.Status())
	}
}

func TestStalemateIsDraw(t *testing.T) {
	pos := NewEngine().NewGame()

	// Loyd's ten-move stalemate.
	apply(t, pos,
		Move{From: "e2", To: "e3"},
		Move{From: "a7", To: "a5"},
		Move{From: "d1", To: "h5"},
		Move{From: "a8", To: "a6"},
		Move{From: "h5", To: "a5"},
		Move{From: "h7", To: "h5"},
		Move{From: "a5", To: "c7"},
		Move{From: "a6", To: "h6"},
		Move{From: "h2", To: "h4"},
		Move{From: "f7", To: "f6"},
		Move{From: "c7", To: "d7"},
		Move{From: "e8", To: "f7"},
		Move{From: "d7", To: "b7"},
		Move{From: "d8", To: "d3"},
		Move{From: "b7", To: "b8"},
		Move{From: "d3", To: "h7"},
		Move{From: "b8", To: "c8"},
		Move{From: "f7", To: "g6"},
		Move{From: "c8", To: "e6"},
	)

	if pos.Status() != Draw {
		t.Fatalf("expected draw, got %v", pos.Status())
	}
}

func TestCheckIsReported(t *testing.T) {
	pos := NewEngine().NewGame()

	apply(t, pos,
		Move{From: "e2", To: "e4"},
		Move{From: "f7", To: "f6"},
		Move{From: "d1", To: "h5"},
	)

	if pos.Status() != Check {
		t.Fatalf("expected check, got %v", pos.Status())
	}
	if pos.Turn() != Black {
		t.Fatalf("black should be the side to move while in check")
	}
}

func TestPromotionMove(t *testing.T) {
	pos := NewEngine().NewGame()

	apply(t, pos,
		Move{From: "h2", To: "h4"},
		Move{From: "g7", To: "g5"},
		Move{From: "h4", To: "g5"},
		Move{From: "b8", To: "c6"},
		Move{From: "g5", To: "g6"},
		Move{From: "c6", To: "b8"},
		Move{From: "g6", To: "g7"},
		Move{From: "b8", To: "c6"},
		Move{From: "g7", To: "h8", Promotion: "q"},
	)

	sq := pos.Board()[0][7]
	if sq == nil || sq.Type != "q" || sq.Color != "w" {
		t.Fatalf("expected a promoted white queen on h8, got %+v", sq)
	}
}

func TestBoardGridShape(t *testing.T) {
	pos := NewEngine().NewGame()
	board := pos.Board()

	if len(board) != 8 {
		t.Fatalf("expected 8 ranks, got %d", len(board))
	}
	for _, row := range board {
		if len(row) != 8 {
			t.Fatalf("expected 8 files per rank, got %d", len(row))
		}
	}

	// Rank 8 comes first: black rook on a8, white rook on a1.
	if sq := board[0][0]; sq == nil || sq.Type != "r" || sq.Color != "b" || sq.Square != "a8" {
		t.Fatalf("unexpected a8 square: %+v", board[0][0])
	}
	if sq := board[7][0]; sq == nil || sq.Type != "r" || sq.Color != "w" || sq.Square != "a1" {
		t.Fatalf("unexpected a1 square: %+v", board[7][0])
	}
	if board[4][4] != nil {
		t.Fatalf("expected empty e4 square, got %+v", board[4][4])
	}
}

func TestColorCodes(t *testing.T) {
	if White.Code() != "w" || Black.Code() != "b" {
		t.Fatal("unexpected color codes")
	}
	if White.Other() != Black || Black.Other() != White {
		t.Fatal("unexpected color complement")
	}
	if White.String() != "white" || Black.String() != "black" {
		t.Fatal("unexpected color labels")
	}
}
