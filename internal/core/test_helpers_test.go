package core

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"chesswire/internal/rules"
)

func newTestHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()

	logger := zerolog.Nop()
	hub := NewHub(rules.NewEngine(), &logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	go hub.Run(ctx)
	t.Cleanup(cancel)

	return hub, cancel
}

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev, ok := <-ch:
			if !ok {
				t.Fatalf("events channel closed while waiting for kind %v", kind)
			}
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

func mustNoEvent(t *testing.T, ch <-chan *Event, kind EventKind) {
	t.Helper()

	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if ev != nil && ev.Kind == kind {
				t.Fatalf("unexpected event of kind %v: %+v", kind, ev)
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// waitClosed drains a client's events until the hub closes the channel,
// which marks the disconnect as fully processed.
func waitClosed(t *testing.T, ch <-chan *Event) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel not closed after disconnect")
		}
	}
}

func createRoom(t *testing.T, hub *Hub, c *Client, name string) string {
	t.Helper()

	c.Commands <- &Command{Kind: CommandCreateRoom, PlayerName: name}
	ev := mustEvent(t, c.Events, EventRoomCreated)
	return ev.Room
}

func joinRoom(t *testing.T, hub *Hub, c *Client, roomID, name string) *Event {
	t.Helper()

	c.Commands <- &Command{Kind: CommandJoinRoom, Room: roomID, PlayerName: name}
	return mustEvent(t, c.Events, EventRoomJoined)
}

func playMove(t *testing.T, c *Client, roomID, from, to string) {
	t.Helper()

	c.Commands <- &Command{Kind: CommandMove, Room: roomID, Move: rules.Move{From: from, To: to}}
	mustEvent(t, c.Events, EventMoveAccepted)
}
