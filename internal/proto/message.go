// Package proto defines the JSON wire protocol between clients and the
// gateway. Event names and payload shapes match what game clients
// already speak; do not rename fields casually.
package proto

import (
	"encoding/json"

	"chesswire/internal/rules"
)

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeCreateRoom  = "createRoom"
	InboundTypeJoinRoom    = "joinRoom"
	InboundTypeMove        = "move"
	InboundTypeSendMessage = "sendMessage"

	OutboundTypeAck   = "ack"
	OutboundTypeEvent = "event"

	EventGameStart          = "gameStart"
	EventGameState          = "gameState"
	EventNewMessage         = "newMessage"
	EventPlayerDisconnected = "playerDisconnected"
)

// CreateRoomData opens a new room.
type CreateRoomData struct {
	PlayerName string `json:"playerName"`
}

// JoinRoomData requests a seat in an existing room.
type JoinRoomData struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

// MovePayload is one proposed move.
type MovePayload struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// MoveData submits a move for the given room.
type MoveData struct {
	RoomID string      `json:"roomId"`
	Move   MovePayload `json:"move"`
}

// SendMessageData is a chat message. Fire-and-forget: no ack exists.
type SendMessageData struct {
	RoomID     string `json:"roomId"`
	Message    string `json:"message"`
	PlayerName string `json:"playerName"`
}

// Outbound is the envelope for messages sent to the client. Acks carry
// the inbound type they answer in Event.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// Ack is the caller-facing result of a request.
type Ack struct {
	Success   bool       `json:"success"`
	Error     string     `json:"error,omitempty"`
	RoomID    string     `json:"roomId,omitempty"`
	GameState *GameState `json:"gameState,omitempty"`
}

// PlayerInfo describes one seated player.
type PlayerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ChatMessage is one chat log entry. Timestamp is ISO 8601.
type ChatMessage struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// GameStatus reports check, checkmate or draw after a move.
type GameStatus struct {
	Status string `json:"status"`
	Winner string `json:"winner,omitempty"`
}

// GameState mirrors the chess.js encodings the clients render from:
// board is the 8x8 occupancy grid, fen the compact position string,
// turn the one-character color code.
type GameState struct {
	Board      rules.Board   `json:"board"`
	FEN        string        `json:"fen"`
	Players    []PlayerInfo  `json:"players,omitempty"`
	Chat       []ChatMessage `json:"chat"`
	Turn       string        `json:"turn"`
	LastMove   *MovePayload  `json:"lastMove,omitempty"`
	GameStatus *GameStatus   `json:"gameStatus,omitempty"`
}

// DisconnectData names the player whose connection dropped.
type DisconnectData struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}
