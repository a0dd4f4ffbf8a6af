package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomCreated acknowledges a successful createRoom to its caller.
	EventRoomCreated EventKind = iota
	// EventRoomJoined acknowledges a successful joinRoom with a full snapshot.
	EventRoomJoined
	// EventMoveAccepted acknowledges an accepted move to its caller.
	EventMoveAccepted
	// EventGameStart announces a seated second player to the whole room.
	EventGameStart
	// EventGameState carries the position after an accepted move.
	EventGameState
	// EventNewMessage carries one chat message to the whole room.
	EventNewMessage
	// EventPlayerDisconnected tells remaining members a seat went dark.
	EventPlayerDisconnected
	// EventError is a failed acknowledgement for the originating caller.
	EventError
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind   EventKind
	Room   string
	Op     string // inbound type an ack answers
	State  *GameState
	Msg    *ChatMessage
	Player *PlayerInfo // for EventPlayerDisconnected
	Error  *CoreError
}
