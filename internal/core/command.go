package core

import "chesswire/internal/rules"

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandCreateRoom opens a fresh room with the sender seated white.
	CommandCreateRoom CommandKind = iota
	// CommandJoinRoom seats the sender black in an existing room.
	CommandJoinRoom
	// CommandMove submits a move for arbitration.
	CommandMove
	// CommandSendMessage appends a chat message. Fire-and-forget.
	CommandSendMessage
)

// Command represents an action requested by a client.
type Command struct {
	Kind       CommandKind
	Room       string
	PlayerName string
	Move       rules.Move
	Text       string
}

// op maps a command back to the inbound type it answers, for acks.
func (c *Command) op() string {
	switch c.Kind {
	case CommandCreateRoom:
		return "createRoom"
	case CommandJoinRoom:
		return "joinRoom"
	case CommandMove:
		return "move"
	default:
		return "sendMessage"
	}
}
