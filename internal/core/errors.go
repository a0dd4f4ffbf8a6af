package core

// Error codes for domain errors.
const (
	ErrCodeRoomNotFound    = "room_not_found"
	ErrCodeRoomFull        = "room_full"
	ErrCodePlayerNotInRoom = "player_not_in_room"
	ErrCodeNotYourTurn     = "not_your_turn"
	ErrCodeIllegalMove     = "illegal_move"
	ErrCodeGameNotActive   = "game_not_active"
	ErrCodeAlreadyInRoom   = "already_in_room"
	ErrCodeBadRequest      = "bad_request"
	ErrCodeInternal        = "internal_error"
)

// CoreError wraps a code and the human-readable reason sent to callers.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}

var (
	errRoomNotFound     = coreError(ErrCodeRoomNotFound, "Room not found")
	errRoomFull         = coreError(ErrCodeRoomFull, "Room is full")
	errPlayerNotInRoom  = coreError(ErrCodePlayerNotInRoom, "Player not found in this room")
	errNotYourTurn      = coreError(ErrCodeNotYourTurn, "Not your turn")
	errIllegalMove      = coreError(ErrCodeIllegalMove, "Invalid move")
	errGameNotActive    = coreError(ErrCodeGameNotActive, "Game is not active")
	errAlreadyInRoom    = coreError(ErrCodeAlreadyInRoom, "Already in a room")
	errRoomIDsExhausted = coreError(ErrCodeInternal, "Could not allocate a room id")
)
