package services

import (
	"context"
	"log/slog"

	"duochat/domain/event"
	"duochat/pubsub"
	"duochat/repositories"
	"duochat/sessions"
)

type IAnonymousChatService interface {
	IChatService
	Logout(ctx context.Context, userID string) error
	SubscribeUserLoggedOut(ctx context.Context, userID string) *pubsub.Subscription
}

// AnonymousChatService is the ephemeral variant: same engine as
// ChatService, but history is purged when a participant logs out and the
// former partner is notified.
type AnonymousChatService struct {
	*ChatService
	store repositories.IPurgeableRepository
}

func NewAnonymousChatService(log *slog.Logger, registry sessions.IPairingRegistry,
	store repositories.IPurgeableRepository, bus *pubsub.Bus, options Options) *AnonymousChatService {
	return &AnonymousChatService{
		ChatService: NewChatService(log, registry, store, bus, options),
		store:       store,
	}
}

// Logout tears the session down: the binding is released, the
// participant's conversation history is discarded, and each former partner
// receives a user-logged-out event. The whole teardown holds the service
// mutex so no send can land between the unbind and the purge.
func (s *AnonymousChatService) Logout(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	partners := s.registry.Unbind(userID)

	if err := s.store.PurgeParticipant(ctx, userID); err != nil {
		return err
	}

	for _, partnerID := range partners {
		s.bus.Publish(event.UserLoggedOut{UserID: userID, PartnerID: partnerID})
	}
	s.log.Info("session closed", "user_id", userID, "partners_notified", len(partners))
	return nil
}

func (s *AnonymousChatService) SubscribeUserLoggedOut(ctx context.Context, userID string) *pubsub.Subscription {
	return s.bus.Subscribe(ctx, event.StreamUserLoggedOut, event.LogoutFilter(userID))
}
