package core

import "chesswire/internal/rules"

// PlayerInfo is the externally visible description of a seated player.
type PlayerInfo struct {
	ID    string
	Name  string
	Color rules.Color
}

// GameStatus is the verdict attached to a game state after a move
// reaches check, checkmate or a draw. Winner is set for checkmate only.
type GameStatus struct {
	Status rules.Status
	Winner *rules.Color
}

// GameState is an immutable snapshot handed to the dispatcher. Slices
// are copies; hub mutations after the snapshot never leak into it.
type GameState struct {
	Board    rules.Board
	FEN      string
	Players  []PlayerInfo
	Chat     []ChatMessage
	Turn     rules.Color
	LastMove *rules.Move
	Status   *GameStatus
}
