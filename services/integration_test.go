package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"duochat/domain/event"
	"duochat/errors"
	"duochat/projection"
	"duochat/pubsub"
	"duochat/repositories"
	"duochat/search"
	"duochat/sessions"
)

// Wires the persistent variant against a real BadgerDB with the search
// indexer and a timeline projection attached, and walks one full session.
func TestPersistentVariant_FullFlow(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	store, err := repositories.NewBadgerRepository(db, slog.Default())
	req.NoError(err)
	defer store.Close()

	bus := pubsub.NewBus(slog.Default(), 32)
	defer bus.Close()
	svc := NewChatService(slog.Default(), sessions.NewRegistry(), store, bus, Options{})

	index, err := search.NewMemoryIndex(slog.Default())
	req.NoError(err)
	defer index.Close()
	go pubsub.Drain(ctx, bus.Subscribe(ctx, event.StreamMessageSent, event.All),
		search.NewIndexer(index, slog.Default()))

	timeline := projection.NewTimeline()
	go pubsub.Drain(ctx, bus.Subscribe(ctx, event.StreamMessageSent, event.PairFilter("alice", "bob")), timeline)

	// Pairing lock holds, but does not gate message storage
	req.NoError(svc.Login(ctx, "alice", "bob"))
	req.ErrorIs(svc.Login(ctx, "bob", "clara"), errors.ErrSessionConflict)

	first, err := svc.SendMessage(ctx, "alice", "bob", "persisted hello")
	req.NoError(err)
	second, err := svc.SendMessage(ctx, "bob", "alice", "persisted reply")
	req.NoError(err)
	req.Greater(second.ID, first.ID)

	// Read receipt round-trips through the store
	updated, err := svc.MarkRead(ctx, first.ID)
	req.NoError(err)
	req.True(updated.IsRead)

	conversation, err := svc.GetConversation(ctx, "bob", "alice")
	req.NoError(err)
	req.Len(conversation, 2)
	req.True(conversation[0].IsRead)
	req.False(conversation[1].IsRead)

	// Subscribers and the projection observed the same flow
	req.Eventually(func() bool {
		return len(timeline.Conversation("alice", "bob")) == 2
	}, time.Second, 10*time.Millisecond)

	req.Eventually(func() bool {
		hits, err := index.Search(context.Background(), "alice", "bob", search.NewQuery("persisted"))
		return err == nil && len(hits) == 2
	}, 2*time.Second, 20*time.Millisecond)
}
