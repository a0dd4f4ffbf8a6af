package ident

import (
	"crypto/rand"
	"time"
)

// alphabet avoids characters that read alike (0/O, 1/I/l).
const alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const (
	// RoomIDLength is the length of every room identifier.
	RoomIDLength = 6

	messageIDLength = 16
)

// RoomID returns a short room identifier. Callers must check it against
// the set of live rooms before accepting it.
func RoomID() string {
	return generate(RoomIDLength)
}

// MessageID returns a best-effort unique chat message identifier.
func MessageID() string {
	return generate(messageIDLength)
}

func generate(n int) string {
	out := make([]byte, n)

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err == nil {
		for i, b := range buf {
			out[i] = alphabet[int(b)%len(alphabet)]
		}
		return string(out)
	}

	// Fallback to timestamp digits if crypto/rand is unavailable.
	seed := uint64(time.Now().UnixNano())
	for i := range out {
		out[i] = alphabet[seed%uint64(len(alphabet))]
		seed = seed/uint64(len(alphabet)) + uint64(i)
	}
	return string(out)
}
