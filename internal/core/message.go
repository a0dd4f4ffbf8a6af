package core

import "time"

// ChatMessage is one entry in a room's append-only chat log.
type ChatMessage struct {
	ID        string
	Sender    string
	Text      string
	CreatedAt time.Time
}
