// Package domain contains core concepts of the pairing and relay system.
// This file defines Message entities and related rules.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"
)

// Message is a single unit of communication between two participants.
// ID is unique and strictly increasing within the store that created it.
// IsRead only ever transitions from false to true.
type Message struct {
	ID         uint64
	SenderID   string
	ReceiverID string
	Content    string
	Timestamp  time.Time
	IsRead     bool
}

// Belongs reports whether the message is part of the conversation
// between a and b, in either direction. The endpoints are compared as a
// set of two IDs, never through a joined key.
func (m Message) Belongs(a, b string) bool {
	return (m.SenderID == a && m.ReceiverID == b) ||
		(m.SenderID == b && m.ReceiverID == a)
}
