package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"

	"duochat/domain"
	"duochat/errors"
)

// MemoryRepository is the ephemeral variant of the message store.
// Everything lives in process memory and a participant's history is
// discarded when they log out. Safe for concurrent use.
type MemoryRepository struct {
	mu       sync.RWMutex
	messages []domain.Message
	nextID   uint64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Append(_ context.Context, senderID, receiverID, content string) (domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	message := domain.Message{
		ID:         r.nextID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now().UTC(),
		IsRead:     false,
	}
	r.nextID++
	r.messages = append(r.messages, message)
	return message, nil
}

// FindConversation returns both directions of the pair in insertion order.
// Insertion order and ID order coincide since IDs are assigned on append.
func (r *MemoryRepository) FindConversation(_ context.Context, a, b string) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(r.messages, func(m domain.Message, _ int) bool {
		return m.Belongs(a, b)
	}), nil
}

func (r *MemoryRepository) MarkRead(_ context.Context, id uint64) (domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.messages {
		if r.messages[i].ID == id {
			r.messages[i].IsRead = true
			return r.messages[i], nil
		}
	}
	return domain.Message{}, fmt.Errorf("mark read %d: %w", id, errors.ErrMessageNotFound)
}

// PurgeParticipant drops every message the participant sent or received.
// Invoked on logout; remaining IDs keep their original values so the
// monotonic ID guarantee is unaffected.
func (r *MemoryRepository) PurgeParticipant(_ context.Context, participantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = lo.Reject(r.messages, func(m domain.Message, _ int) bool {
		return m.SenderID == participantID || m.ReceiverID == participantID
	})
	return nil
}
