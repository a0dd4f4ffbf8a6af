package core

import (
	"chesswire/internal/ident"
	"chesswire/internal/rules"
)

// roomIDRetries bounds regenerate-on-collision before createRoom fails.
const roomIDRetries = 5

// Registry owns the id -> room mapping plus a connection -> room index
// for O(1) disconnect lookup. It is confined to the hub goroutine, which
// serializes every structural mutation.
type Registry struct {
	engine rules.Engine
	rooms  map[string]*Room
	byConn map[string]*Room
}

// NewRegistry constructs an empty registry backed by the given engine.
func NewRegistry(engine rules.Engine) *Registry {
	return &Registry{
		engine: engine,
		rooms:  make(map[string]*Room),
		byConn: make(map[string]*Room),
	}
}

// Create allocates a fresh room in Setup phase with the creator seated
// white. Fails only when id allocation exhausts its retries.
func (reg *Registry) Create(creator Player) (*Room, *CoreError) {
	id := ""
	for i := 0; i < roomIDRetries; i++ {
		candidate := ident.RoomID()
		if _, taken := reg.rooms[candidate]; !taken {
			id = candidate
			break
		}
	}
	if id == "" {
		return nil, errRoomIDsExhausted
	}

	creator.Color = rules.White
	room := NewRoom(id, reg.engine.NewGame())
	room.Players = append(room.Players, creator)

	reg.rooms[id] = room
	reg.byConn[creator.ConnID] = room
	return room, nil
}

// Join seats the joiner as the remaining color and flips the room to
// Active. Callers see first-failure results; nothing retries.
func (reg *Registry) Join(roomID string, joiner Player) (*Room, *CoreError) {
	room, ok := reg.rooms[roomID]
	if !ok {
		return nil, errRoomNotFound
	}
	if len(room.Players) >= 2 {
		return nil, errRoomFull
	}

	joiner.Color = rules.White
	if len(room.Players) == 1 {
		joiner.Color = room.Players[0].Color.Other()
	}
	room.Players = append(room.Players, joiner)
	room.Phase = PhaseActive

	reg.byConn[joiner.ConnID] = room
	return room, nil
}

// Lookup returns the room for an id, or nil.
func (reg *Registry) Lookup(roomID string) *Room {
	return reg.rooms[roomID]
}

// RoomByConn returns the room a connection is seated in, or nil.
func (reg *Registry) RoomByConn(connID string) *Room {
	return reg.byConn[connID]
}

// DropConn removes a connection from the seat index. The seat itself
// stays occupied; retained rooms keep their player list as-is.
func (reg *Registry) DropConn(connID string) {
	delete(reg.byConn, connID)
}

// Delete removes a room and any seat index entries pointing at it.
func (reg *Registry) Delete(roomID string) {
	room, ok := reg.rooms[roomID]
	if !ok {
		return
	}
	for _, p := range room.Players {
		if reg.byConn[p.ConnID] == room {
			delete(reg.byConn, p.ConnID)
		}
	}
	delete(reg.rooms, roomID)
}

// Len reports the number of live rooms.
func (reg *Registry) Len() int {
	return len(reg.rooms)
}
