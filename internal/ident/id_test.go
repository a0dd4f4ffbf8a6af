package ident

import (
	"strings"
	"testing"
)

func TestRoomIDLengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := RoomID()
		if len(id) != RoomIDLength {
			t.Fatalf("unexpected room id length: %q", id)
		}
		for _, r := range id {
			if !strings.ContainsRune(alphabet, r) {
				t.Fatalf("room id %q contains %q outside the alphabet", id, r)
			}
		}
	}
}

func TestRoomIDsDistinct(t *testing.T) {
	// Registry-level uniqueness (collision check + retry) is covered in
	// internal/core; here we only sanity-check the raw generator.
	const n = 500

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := RoomID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate room id %q after %d generations", id, i)
		}
		seen[id] = struct{}{}
	}
}

func TestMessageIDLongerThanRoomID(t *testing.T) {
	if len(MessageID()) <= RoomIDLength {
		t.Fatalf("message id should be longer than a room id")
	}
}
