package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"duochat/domain"
	"duochat/domain/event"
	"duochat/errors"
	"duochat/pubsub"
	"duochat/repositories"
	"duochat/sessions"
)

type IChatService interface {
	Login(ctx context.Context, userID, partnerID string) error
	SendMessage(ctx context.Context, senderID, receiverID, content string) (domain.Message, error)
	GetConversation(ctx context.Context, a, b string) ([]domain.Message, error)
	MarkRead(ctx context.Context, id uint64) (domain.Message, error)
	SubscribeMessageSent(ctx context.Context, a, b string) *pubsub.Subscription
	SubscribeMessageRead(ctx context.Context, a, b string) *pubsub.Subscription
}

// Options tunes service behavior that the pairing rules leave open.
type Options struct {
	// RequirePairing rejects SendMessage unless sender and receiver hold
	// an exclusive binding. Off by default: messages outside an active
	// session are accepted.
	RequirePairing bool
}

// ChatService is the persistent variant of the session engine: the pairing
// registry acts purely as a pairing lock and history survives logout.
//
// Mutations and their events are serialized by one mutex so subscribers
// observe message-sent events in append order, and never see a
// message-read before the message-sent of the same message. The pairing
// precondition is checked under the same mutex, so a logout serialized
// through it cannot slip between the check and the append.
type ChatService struct {
	mu       sync.Mutex
	log      *slog.Logger
	registry sessions.IPairingRegistry
	store    repositories.IMessageRepository
	bus      *pubsub.Bus
	options  Options
}

func NewChatService(log *slog.Logger, registry sessions.IPairingRegistry,
	store repositories.IMessageRepository, bus *pubsub.Bus, options Options) *ChatService {
	return &ChatService{
		log:      log,
		registry: registry,
		store:    store,
		bus:      bus,
		options:  options,
	}
}

// Login binds userID and partnerID exclusively. A SessionConflict from the
// registry is propagated unchanged.
func (s *ChatService) Login(_ context.Context, userID, partnerID string) error {
	if err := s.registry.Bind(userID, partnerID); err != nil {
		return err
	}
	s.log.Info("session established", "user_id", userID, "partner_id", partnerID)
	return nil
}

func (s *ChatService) SendMessage(ctx context.Context, senderID, receiverID, content string) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.options.RequirePairing && !s.registry.IsBoundExclusively(senderID, receiverID) {
		return domain.Message{}, fmt.Errorf("send from %s to %s: %w",
			senderID, receiverID, errors.ErrNotPaired)
	}

	message, err := s.store.Append(ctx, senderID, receiverID, content)
	if err != nil {
		return domain.Message{}, err
	}
	s.bus.Publish(event.MessageSent{Message: message})
	return message, nil
}

func (s *ChatService) GetConversation(ctx context.Context, a, b string) ([]domain.Message, error) {
	return s.store.FindConversation(ctx, a, b)
}

// MarkRead flips the read flag and notifies both ends of the conversation.
// The store reports ErrMessageNotFound for unknown IDs.
func (s *ChatService) MarkRead(ctx context.Context, id uint64) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, err := s.store.MarkRead(ctx, id)
	if err != nil {
		return domain.Message{}, err
	}
	s.bus.Publish(event.MessageRead{Message: message})
	return message, nil
}

func (s *ChatService) SubscribeMessageSent(ctx context.Context, a, b string) *pubsub.Subscription {
	return s.bus.Subscribe(ctx, event.StreamMessageSent, event.PairFilter(a, b))
}

func (s *ChatService) SubscribeMessageRead(ctx context.Context, a, b string) *pubsub.Subscription {
	return s.bus.Subscribe(ctx, event.StreamMessageRead, event.PairFilter(a, b))
}
