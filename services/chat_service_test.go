package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"duochat/domain"
	"duochat/domain/event"
	"duochat/errors"
	"duochat/mocks"
	"duochat/pubsub"
	"duochat/repositories"
	"duochat/sessions"
)

func newTestService(t *testing.T, options Options) *ChatService {
	t.Helper()
	bus := pubsub.NewBus(slog.Default(), 16)
	t.Cleanup(bus.Close)
	return NewChatService(slog.Default(), sessions.NewRegistry(),
		repositories.NewMemoryRepository(), bus, options)
}

func receiveOne(t *testing.T, sub *pubsub.Subscription) event.DomainEvent {
	t.Helper()
	select {
	case e := <-sub.Events():
		return e
	case <-time.After(time.Second):
		t.Fatal("expected an event, got none")
		return nil
	}
}

func requireNoEvent(t *testing.T, sub *pubsub.Subscription) {
	t.Helper()
	select {
	case e := <-sub.Events():
		t.Fatalf("expected no event, got %v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestChatService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("should propagate session conflicts unchanged", func(t *testing.T) {
		req := require.New(t)
		svc := newTestService(t, Options{})

		req.NoError(svc.Login(ctx, "alice", "bob"))
		req.ErrorIs(svc.Login(ctx, "alice", "clara"), errors.ErrSessionConflict)
		req.NoError(svc.Login(ctx, "clara", "dave"))
	})

	t.Run("should accept a re-login with the same partner", func(t *testing.T) {
		req := require.New(t)
		svc := newTestService(t, Options{})

		req.NoError(svc.Login(ctx, "alice", "bob"))
		req.NoError(svc.Login(ctx, "bob", "alice"))
	})
}

func TestChatService_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("should store and notify the matching subscriber", func(t *testing.T) {
		req := require.New(t)
		svc := newTestService(t, Options{})

		// Subscriber params are order-insensitive against the message pair
		partner := svc.SubscribeMessageSent(ctx, "bob", "alice")
		bystander := svc.SubscribeMessageSent(ctx, "alice", "clara")

		message, err := svc.SendMessage(ctx, "alice", "bob", "hi")
		req.NoError(err)
		req.Equal(uint64(1), message.ID)
		req.False(message.IsRead)

		delivered := receiveOne(t, partner)
		req.Equal(message, delivered.(event.MessageSent).Message)
		requireNoEvent(t, bystander)
	})

	t.Run("should keep pairs with separator-looking IDs apart", func(t *testing.T) {
		req := require.New(t)
		svc := newTestService(t, Options{})

		// "a|b"->"c" must stay invisible to the ("a", "b|c") pair.
		eavesdropper := svc.SubscribeMessageSent(ctx, "a", "b|c")

		_, err := svc.SendMessage(ctx, "a|b", "c", "secret")
		req.NoError(err)
		requireNoEvent(t, eavesdropper)

		other, err := svc.GetConversation(ctx, "a", "b|c")
		req.NoError(err)
		req.Empty(other)

		own, err := svc.GetConversation(ctx, "a|b", "c")
		req.NoError(err)
		req.Len(own, 1)
		req.Equal("secret", own[0].Content)
	})

	t.Run("should accept messages outside a session by default", func(t *testing.T) {
		req := require.New(t)
		svc := newTestService(t, Options{})

		_, err := svc.SendMessage(ctx, "alice", "bob", "no session needed")
		req.NoError(err)
	})

	t.Run("should enforce pairing when the policy requires it", func(t *testing.T) {
		req := require.New(t)
		svc := newTestService(t, Options{RequirePairing: true})

		_, err := svc.SendMessage(ctx, "alice", "bob", "rejected")
		req.ErrorIs(err, errors.ErrNotPaired)

		req.NoError(svc.Login(ctx, "alice", "bob"))
		_, err = svc.SendMessage(ctx, "alice", "bob", "accepted")
		req.NoError(err)
	})

	t.Run("should deliver events in append order", func(t *testing.T) {
		req := require.New(t)
		svc := newTestService(t, Options{})
		sub := svc.SubscribeMessageSent(ctx, "alice", "bob")

		for i := 0; i < 5; i++ {
			_, err := svc.SendMessage(ctx, "alice", "bob", fmt.Sprintf("m%d", i))
			req.NoError(err)
		}

		var previous uint64
		for i := 0; i < 5; i++ {
			delivered := receiveOne(t, sub).(event.MessageSent)
			req.Greater(delivered.Message.ID, previous)
			previous = delivered.Message.ID
		}
	})
}

func TestChatService_GetConversation(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newTestService(t, Options{})

	_, err := svc.SendMessage(ctx, "alice", "bob", "one")
	req.NoError(err)
	_, err = svc.SendMessage(ctx, "bob", "alice", "two")
	req.NoError(err)

	forward, err := svc.GetConversation(ctx, "alice", "bob")
	req.NoError(err)
	backward, err := svc.GetConversation(ctx, "bob", "alice")
	req.NoError(err)
	req.Equal(forward, backward)
	req.Len(forward, 2)
}

func TestChatService_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("should flip the flag and notify the pair", func(t *testing.T) {
		req := require.New(t)
		svc := newTestService(t, Options{})
		sub := svc.SubscribeMessageRead(ctx, "alice", "bob")

		message, err := svc.SendMessage(ctx, "alice", "bob", "mark me")
		req.NoError(err)

		updated, err := svc.MarkRead(ctx, message.ID)
		req.NoError(err)
		req.True(updated.IsRead)

		delivered := receiveOne(t, sub).(event.MessageRead)
		req.True(delivered.Message.IsRead)
		req.Equal(message.ID, delivered.Message.ID)
	})

	t.Run("should fail with not found and publish nothing", func(t *testing.T) {
		req := require.New(t)
		svc := newTestService(t, Options{})
		sub := svc.SubscribeMessageRead(ctx, "alice", "bob")

		_, err := svc.MarkRead(ctx, 99)
		req.ErrorIs(err, errors.ErrMessageNotFound)
		requireNoEvent(t, sub)

		// Queries are unaffected by the failed mutation
		messages, err := svc.GetConversation(ctx, "alice", "bob")
		req.NoError(err)
		req.Empty(messages)
	})
}

func TestChatService_StoreFailurePropagates(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	infraErr := fmt.Errorf("disk on fire")
	store := mocks.NewMockIMessageRepository(ctrl)
	store.EXPECT().
		Append(gomock.Any(), "alice", "bob", "doomed").
		Return(domain.Message{}, infraErr).
		Times(1)

	bus := pubsub.NewBus(slog.Default(), 4)
	defer bus.Close()
	svc := NewChatService(slog.Default(), sessions.NewRegistry(), store, bus, Options{})
	sub := svc.SubscribeMessageSent(ctx, "alice", "bob")

	_, err := svc.SendMessage(ctx, "alice", "bob", "doomed")
	req.ErrorIs(err, infraErr)
	req.NotErrorIs(err, errors.ErrMessageNotFound, "infrastructure failures keep their own identity")
	requireNoEvent(t, sub)
}
