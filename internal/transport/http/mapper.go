package http

import (
	"encoding/json"
	"time"

	"chesswire/internal/core"
	"chesswire/internal/proto"
	"chesswire/internal/rules"
)

// inboundToCommand maps one inbound envelope to a hub command. A non-nil
// reply means the request failed validation and the reply goes straight
// back to the caller; sendMessage validation failures drop silently.
func inboundToCommand(client *core.Client, inbound proto.Inbound) (*core.Command, *proto.Outbound, error) {
	switch inbound.Type {
	case proto.InboundTypeCreateRoom:
		var data proto.CreateRoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.PlayerName == "" && client.Name == "" {
			return nil, failAck(inbound.Type, "Player name is required"), nil
		}
		return &core.Command{
			Kind:       core.CommandCreateRoom,
			PlayerName: data.PlayerName,
		}, nil, nil
	case proto.InboundTypeJoinRoom:
		var data proto.JoinRoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.RoomID == "" {
			return nil, failAck(inbound.Type, "Room id is required"), nil
		}
		if data.PlayerName == "" && client.Name == "" {
			return nil, failAck(inbound.Type, "Player name is required"), nil
		}
		return &core.Command{
			Kind:       core.CommandJoinRoom,
			Room:       data.RoomID,
			PlayerName: data.PlayerName,
		}, nil, nil
	case proto.InboundTypeMove:
		var data proto.MoveData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.RoomID == "" {
			return nil, failAck(inbound.Type, "Room id is required"), nil
		}
		if data.Move.From == "" || data.Move.To == "" {
			return nil, failAck(inbound.Type, "Invalid move"), nil
		}
		return &core.Command{
			Kind: core.CommandMove,
			Room: data.RoomID,
			Move: rules.Move{
				From:      data.Move.From,
				To:        data.Move.To,
				Promotion: data.Move.Promotion,
			},
		}, nil, nil
	case proto.InboundTypeSendMessage:
		var data proto.SendMessageData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.RoomID == "" {
			// Chat is fire-and-forget; a message with no room vanishes.
			return nil, nil, nil
		}
		return &core.Command{
			Kind:       core.CommandSendMessage,
			Room:       data.RoomID,
			PlayerName: data.PlayerName,
			Text:       data.Message,
		}, nil, nil
	default:
		return nil, failAck(inbound.Type, "Unknown message type"), nil
	}
}

func failAck(op, reason string) *proto.Outbound {
	return &proto.Outbound{
		Type:  proto.OutboundTypeAck,
		Event: op,
		Data:  proto.Ack{Success: false, Error: reason},
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomCreated:
		return proto.Outbound{
			Type:  proto.OutboundTypeAck,
			Event: event.Op,
			Data:  proto.Ack{Success: true, RoomID: event.Room},
		}
	case core.EventRoomJoined:
		return proto.Outbound{
			Type:  proto.OutboundTypeAck,
			Event: event.Op,
			Data:  proto.Ack{Success: true, RoomID: event.Room, GameState: stateToProto(event.State)},
		}
	case core.EventMoveAccepted:
		return proto.Outbound{
			Type:  proto.OutboundTypeAck,
			Event: event.Op,
			Data:  proto.Ack{Success: true},
		}
	case core.EventGameStart:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventGameStart,
			Data:  stateToProto(event.State),
		}
	case core.EventGameState:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventGameState,
			Data:  stateToProto(event.State),
		}
	case core.EventNewMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNewMessage,
			Data:  chatToProto(*event.Msg),
		}
	case core.EventPlayerDisconnected:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventPlayerDisconnected,
			Data: proto.DisconnectData{
				PlayerID:   event.Player.ID,
				PlayerName: event.Player.Name,
			},
		}
	case core.EventError:
		reason := "unknown error"
		if event.Error != nil {
			reason = event.Error.Message
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeAck,
			Event: event.Op,
			Data:  proto.Ack{Success: false, Error: reason},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}

func stateToProto(state *core.GameState) *proto.GameState {
	if state == nil {
		return nil
	}

	out := &proto.GameState{
		Board: state.Board,
		FEN:   state.FEN,
		Turn:  state.Turn.Code(),
	}
	for _, p := range state.Players {
		out.Players = append(out.Players, proto.PlayerInfo{
			ID:    p.ID,
			Name:  p.Name,
			Color: p.Color.String(),
		})
	}
	// Snapshots carry a chat log even when empty; clients expect an
	// array there, not null.
	if state.Chat != nil {
		out.Chat = make([]proto.ChatMessage, 0, len(state.Chat))
		for _, m := range state.Chat {
			out.Chat = append(out.Chat, chatToProto(m))
		}
	}
	if state.LastMove != nil {
		out.LastMove = &proto.MovePayload{
			From:      state.LastMove.From,
			To:        state.LastMove.To,
			Promotion: state.LastMove.Promotion,
		}
	}
	if state.Status != nil {
		status := &proto.GameStatus{Status: state.Status.Status.String()}
		if state.Status.Winner != nil {
			status.Winner = state.Status.Winner.String()
		}
		out.GameStatus = status
	}
	return out
}

func chatToProto(msg core.ChatMessage) proto.ChatMessage {
	return proto.ChatMessage{
		ID:        msg.ID,
		Sender:    msg.Sender,
		Text:      msg.Text,
		Timestamp: msg.CreatedAt.Format(time.RFC3339),
	}
}
