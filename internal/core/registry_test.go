package core

import (
	"fmt"
	"testing"

	"chesswire/internal/ident"
	"chesswire/internal/rules"
)

func TestRegistryAllocatesDistinctIDs(t *testing.T) {
	reg := NewRegistry(rules.NewEngine())

	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		room, cerr := reg.Create(Player{ConnID: fmt.Sprintf("conn-%d", i), Name: "p"})
		if cerr != nil {
			t.Fatalf("create %d: %v", i, cerr)
		}
		if len(room.ID) != ident.RoomIDLength {
			t.Fatalf("unexpected id %q", room.ID)
		}
		if _, dup := seen[room.ID]; dup {
			t.Fatalf("duplicate room id %q", room.ID)
		}
		seen[room.ID] = struct{}{}
	}

	if reg.Len() != n {
		t.Fatalf("expected %d live rooms, got %d", n, reg.Len())
	}
}

func TestRegistryJoinAssignsRemainingColor(t *testing.T) {
	reg := NewRegistry(rules.NewEngine())

	room, cerr := reg.Create(Player{ConnID: "a", Name: "alice"})
	if cerr != nil {
		t.Fatalf("create: %v", cerr)
	}

	joined, cerr := reg.Join(room.ID, Player{ConnID: "b", Name: "bob"})
	if cerr != nil {
		t.Fatalf("join: %v", cerr)
	}
	if joined.Players[0].Color != rules.White || joined.Players[1].Color != rules.Black {
		t.Fatalf("unexpected colors: %+v", joined.Players)
	}
	if joined.Phase != PhaseActive {
		t.Fatalf("expected active phase after join")
	}

	if _, cerr := reg.Join(room.ID, Player{ConnID: "c", Name: "carol"}); cerr == nil || cerr.Code != ErrCodeRoomFull {
		t.Fatalf("expected room_full, got %+v", cerr)
	}
}

func TestRegistryDeleteClearsSeatIndex(t *testing.T) {
	reg := NewRegistry(rules.NewEngine())

	room, _ := reg.Create(Player{ConnID: "a", Name: "alice"})
	if reg.RoomByConn("a") != room {
		t.Fatal("seat index missing after create")
	}

	reg.Delete(room.ID)
	if reg.Lookup(room.ID) != nil {
		t.Fatal("room still resolvable after delete")
	}
	if reg.RoomByConn("a") != nil {
		t.Fatal("seat index not cleared by delete")
	}
}
