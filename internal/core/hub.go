package core

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"chesswire/internal/ident"
	"chesswire/internal/rules"
)

// Hub is the session coordinator. A single Run goroutine owns the
// registry and every room, so all room reads and mutations are totally
// ordered; at most one move is ever being evaluated for a given room.
type Hub struct {
	log      *zerolog.Logger
	registry *Registry

	register   chan *Client
	unregister chan *Client
	inbox      chan inbound

	clients map[*Client]struct{}
}

type inbound struct {
	client *Client
	cmd    *Command
}

// NewHub creates a hub coordinating games played on the given engine.
func NewHub(engine rules.Engine, logger *zerolog.Logger) *Hub {
	return &Hub{
		log:        logger,
		registry:   NewRegistry(engine),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		inbox:      make(chan inbound, 64),
		clients:    make(map[*Client]struct{}),
	}
}

// RegisterClient hands a freshly accepted connection to the hub.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient reports a lost connection. Never surfaces an error;
// it is a cleanup path, not a request.
func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

// Run processes registrations, commands and disconnects until the
// context is cancelled. Each command runs to completion, including its
// broadcasts, before the next one starts.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			go h.pump(ctx, c)
		case c := <-h.unregister:
			h.handleDisconnect(c)
		case in := <-h.inbox:
			h.dispatch(in.client, in.cmd)
		case <-ctx.Done():
			return
		}
	}
}

// pump forwards one client's commands into the hub inbox so the Run
// loop stays the only place commands execute.
func (h *Hub) pump(ctx context.Context, c *Client) {
	for {
		select {
		case cmd, ok := <-c.Commands:
			if !ok {
				return
			}
			select {
			case h.inbox <- inbound{client: c, cmd: cmd}:
			case <-c.done:
				return
			case <-ctx.Done():
				return
			}
		case <-c.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) dispatch(c *Client, cmd *Command) {
	if _, ok := h.clients[c]; !ok {
		return
	}

	switch cmd.Kind {
	case CommandCreateRoom:
		h.handleCreate(c, cmd)
	case CommandJoinRoom:
		h.handleJoin(c, cmd)
	case CommandMove:
		h.handleMove(c, cmd)
	case CommandSendMessage:
		h.handleChat(c, cmd)
	}
}

func (h *Hub) handleCreate(c *Client, cmd *Command) {
	if h.registry.RoomByConn(c.ID) != nil {
		h.fail(c, cmd, errAlreadyInRoom)
		return
	}

	room, cerr := h.registry.Create(Player{ConnID: c.ID, Name: h.displayName(c, cmd)})
	if cerr != nil {
		h.log.Error().Str("client_id", c.ID).Msg("room id allocation exhausted")
		h.fail(c, cmd, cerr)
		return
	}
	room.Subscribe(c)

	h.log.Info().Str("room_id", room.ID).Str("client_id", c.ID).
		Str("player", room.Players[0].Name).Msg("room created")
	h.sendTo(c, &Event{Kind: EventRoomCreated, Room: room.ID, Op: cmd.op()})
}

func (h *Hub) handleJoin(c *Client, cmd *Command) {
	if h.registry.RoomByConn(c.ID) != nil {
		h.fail(c, cmd, errAlreadyInRoom)
		return
	}

	room, cerr := h.registry.Join(cmd.Room, Player{ConnID: c.ID, Name: h.displayName(c, cmd)})
	if cerr != nil {
		h.fail(c, cmd, cerr)
		return
	}
	room.Subscribe(c)

	state := room.Snapshot()
	h.log.Info().Str("room_id", room.ID).Str("client_id", c.ID).Msg("player joined")

	h.sendTo(c, &Event{Kind: EventRoomJoined, Room: room.ID, Op: cmd.op(), State: state})
	room.Broadcast(&Event{Kind: EventGameStart, Room: room.ID, State: state})
}

// handleMove is the turn arbiter. Rejections leave the position, chat
// log and phase untouched, and nothing is broadcast.
func (h *Hub) handleMove(c *Client, cmd *Command) {
	room := h.registry.Lookup(cmd.Room)
	if room == nil {
		h.fail(c, cmd, errRoomNotFound)
		return
	}
	player := room.PlayerByConn(c.ID)
	if player == nil {
		h.fail(c, cmd, errPlayerNotInRoom)
		return
	}
	if room.Phase == PhaseSetup {
		h.fail(c, cmd, errGameNotActive)
		return
	}
	if room.Phase == PhaseFinished {
		// A finished position has no legal moves left.
		h.fail(c, cmd, errIllegalMove)
		return
	}
	if player.Color != room.Position.Turn() {
		h.fail(c, cmd, errNotYourTurn)
		return
	}
	if err := room.Position.Apply(cmd.Move); err != nil {
		h.log.Debug().Err(err).Str("room_id", room.ID).Str("client_id", c.ID).Msg("move rejected")
		h.fail(c, cmd, errIllegalMove)
		return
	}

	var status *GameStatus
	switch room.Position.Status() {
	case rules.Checkmate:
		winner := player.Color
		status = &GameStatus{Status: rules.Checkmate, Winner: &winner}
		room.Phase = PhaseFinished
	case rules.Draw:
		status = &GameStatus{Status: rules.Draw}
		room.Phase = PhaseFinished
	case rules.Check:
		status = &GameStatus{Status: rules.Check}
	}

	move := cmd.Move
	state := &GameState{
		Board:    room.Position.Board(),
		FEN:      room.Position.FEN(),
		Turn:     room.Position.Turn(),
		LastMove: &move,
		Status:   status,
	}

	h.sendTo(c, &Event{Kind: EventMoveAccepted, Room: room.ID, Op: cmd.op()})
	room.Broadcast(&Event{Kind: EventGameState, Room: room.ID, State: state})
}

// handleChat relays a message. Unknown rooms are dropped silently; chat
// is best-effort and carries no error channel.
func (h *Hub) handleChat(c *Client, cmd *Command) {
	room := h.registry.Lookup(cmd.Room)
	if room == nil {
		return
	}

	msg := ChatMessage{
		ID:        ident.MessageID(),
		Sender:    h.displayName(c, cmd),
		Text:      cmd.Text,
		CreatedAt: time.Now().UTC(),
	}
	room.Chat = append(room.Chat, msg)
	room.Broadcast(&Event{Kind: EventNewMessage, Room: room.ID, Msg: &msg})
}

// handleDisconnect locates the (at most one) room the connection sat in,
// notifies the remaining members, and evicts rooms still in setup.
// Active and finished rooms are retained as-is.
func (h *Hub) handleDisconnect(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)

	if room := h.registry.RoomByConn(c.ID); room != nil {
		player := room.PlayerByConn(c.ID)
		room.Unsubscribe(c)
		h.registry.DropConn(c.ID)

		if player != nil {
			room.Broadcast(&Event{
				Kind:   EventPlayerDisconnected,
				Room:   room.ID,
				Player: &PlayerInfo{ID: player.ConnID, Name: player.Name, Color: player.Color},
			})
		}

		if room.Phase == PhaseSetup {
			h.registry.Delete(room.ID)
			h.log.Info().Str("room_id", room.ID).Msg("room deleted")
		}
	}

	close(c.done)
	close(c.Events)
	h.log.Debug().Str("client_id", c.ID).Msg("client disconnected")
}

func (h *Hub) displayName(c *Client, cmd *Command) string {
	if cmd.PlayerName != "" {
		return cmd.PlayerName
	}
	return c.Name
}

func (h *Hub) fail(c *Client, cmd *Command, cerr *CoreError) {
	h.sendTo(c, &Event{Kind: EventError, Room: cmd.Room, Op: cmd.op(), Error: cerr})
}

func (h *Hub) sendTo(c *Client, event *Event) {
	select {
	case c.Events <- event:
	default:
		// Drop if slow consumer.
	}
}
