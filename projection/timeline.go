// Package projection builds local read models from observed events.
// Handles ordering and read-flag reconciliation for UI-less consumers.
// Does not emit events or interact with the stores directly.
package projection

import (
	"sync"

	"duochat/domain"
	"duochat/domain/event"
)

// Timeline is a per-conversation projection fed by bus events.
// It mirrors what a connected client would have seen: sent messages in
// delivery order, read flags flipped as receipts arrive, and whole
// conversations dropped when a participant logs out.
type Timeline struct {
	mu            sync.RWMutex
	conversations map[string][]domain.Message
}

func NewTimeline() *Timeline {
	return &Timeline{conversations: make(map[string][]domain.Message)}
}

func (t *Timeline) Consume(e event.DomainEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch evt := e.(type) {
	case event.MessageSent:
		key := domain.PairKey(evt.Message.SenderID, evt.Message.ReceiverID)
		t.conversations[key] = append(t.conversations[key], evt.Message)
	case event.MessageRead:
		key := domain.PairKey(evt.Message.SenderID, evt.Message.ReceiverID)
		for i, m := range t.conversations[key] {
			if m.ID == evt.Message.ID {
				t.conversations[key][i].IsRead = true
				break
			}
		}
	case event.UserLoggedOut:
		for key := range t.conversations {
			if t.involves(key, evt.UserID) {
				delete(t.conversations, key)
			}
		}
	}
}

func (t *Timeline) involves(pairKey, participantID string) bool {
	_, ok := t.conversations[pairKey]
	if !ok {
		return false
	}
	for _, m := range t.conversations[pairKey] {
		if m.SenderID == participantID || m.ReceiverID == participantID {
			return true
		}
	}
	return false
}

// Conversation returns a copy of the projected thread between a and b.
func (t *Timeline) Conversation(a, b string) []domain.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stored := t.conversations[domain.PairKey(a, b)]
	out := make([]domain.Message, len(stored))
	copy(out, stored)
	return out
}
