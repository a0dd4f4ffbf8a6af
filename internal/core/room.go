package core

import "chesswire/internal/rules"

// Phase is the lifecycle stage of a room.
type Phase int

const (
	// PhaseSetup holds one seated player waiting for an opponent.
	PhaseSetup Phase = iota
	// PhaseActive holds two seated players with a game in progress.
	PhaseActive
	// PhaseFinished is terminal; the position stays readable.
	PhaseFinished
)

// Player is a seat in a room. Color never changes after seating.
type Player struct {
	ConnID string
	Name   string
	Color  rules.Color
}

// Room is the authoritative per-room state. Only the hub goroutine
// touches it.
type Room struct {
	ID       string
	Phase    Phase
	Players  []Player // join order, at most 2
	Position rules.Position
	Chat     []ChatMessage

	subscribers map[*Client]struct{}
}

// NewRoom constructs a room around a fresh position.
func NewRoom(id string, pos rules.Position) *Room {
	return &Room{
		ID:          id,
		Phase:       PhaseSetup,
		Position:    pos,
		subscribers: make(map[*Client]struct{}),
	}
}

// Subscribe adds a connection to the room's broadcast group. There is no
// explicit unsubscribe event; membership lapses on disconnect only.
func (r *Room) Subscribe(c *Client) {
	r.subscribers[c] = struct{}{}
}

// Unsubscribe drops a connection from the broadcast group.
func (r *Room) Unsubscribe(c *Client) {
	delete(r.subscribers, c)
}

// Broadcast sends an event to every subscribed connection present right
// now. Slow consumers are skipped rather than blocking the hub.
func (r *Room) Broadcast(event *Event) {
	for client := range r.subscribers {
		select {
		case client.Events <- event:
		default:
			// Drop if slow consumer.
		}
	}
}

// PlayerByConn resolves a seated player by connection identity.
func (r *Room) PlayerByConn(connID string) *Player {
	for i := range r.Players {
		if r.Players[i].ConnID == connID {
			return &r.Players[i]
		}
	}
	return nil
}

// Snapshot captures the full room state for a broadcast. Players and
// chat are copied so later mutations stay out of in-flight events.
func (r *Room) Snapshot() *GameState {
	players := make([]PlayerInfo, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, PlayerInfo{ID: p.ConnID, Name: p.Name, Color: p.Color})
	}
	chat := make([]ChatMessage, len(r.Chat))
	copy(chat, r.Chat)

	return &GameState{
		Board:   r.Position.Board(),
		FEN:     r.Position.FEN(),
		Players: players,
		Chat:    chat,
		Turn:    r.Position.Turn(),
	}
}
