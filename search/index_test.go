package search

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"duochat/domain"
	"duochat/domain/event"
	"duochat/pubsub"
)

func message(id uint64, sender, receiver, content string) domain.Message {
	return domain.Message{
		ID:         id,
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	}
}

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	req := require.New(t)
	index, err := NewMemoryIndex(slog.Default())
	req.NoError(err)
	t.Cleanup(func() { _ = index.Close() })
	return index
}

func TestIndex_SearchIsConversationScoped(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)
	ctx := context.Background()

	req.NoError(index.Add(message(1, "alice", "bob", "the invoice is overdue")))
	req.NoError(index.Add(message(2, "bob", "alice", "which invoice exactly")))
	req.NoError(index.Add(message(3, "alice", "clara", "another invoice entirely")))

	hits, err := index.Search(ctx, "bob", "alice", NewQuery("invoice"))
	req.NoError(err)
	req.Len(hits, 2, "order-insensitive pair scope, no leak from the clara thread")

	ids := lo.Map(hits, func(h Hit, _ int) uint64 { return h.MessageID })
	req.ElementsMatch([]uint64{1, 2}, ids)
}

func TestIndex_SearchBySender(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)
	ctx := context.Background()

	req.NoError(index.Add(message(1, "alice", "bob", "lunch tomorrow")))
	req.NoError(index.Add(message(2, "bob", "alice", "lunch sounds good")))

	hits, err := index.Search(ctx, "alice", "bob", NewQuery("lunch --from bob"))
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("bob", hits[0].SenderID)
	req.Equal("lunch sounds good", hits[0].Content)
}

func TestIndex_SearchHonorsLimit(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)
	ctx := context.Background()

	for id := uint64(1); id <= 5; id++ {
		req.NoError(index.Add(message(id, "alice", "bob", "same words every time")))
	}

	hits, err := index.Search(ctx, "alice", "bob", NewQuery("words --limit 2"))
	req.NoError(err)
	req.Len(hits, 2)
}

func TestIndexer_FeedsFromBus(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)
	bus := pubsub.NewBus(slog.Default(), 16)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := bus.Subscribe(ctx, event.StreamMessageSent, event.All)
	go pubsub.Drain(ctx, sub, NewIndexer(index, slog.Default()))

	bus.Publish(event.MessageSent{Message: message(1, "alice", "bob", "findable later")})

	req.Eventually(func() bool {
		hits, err := index.Search(context.Background(), "alice", "bob", NewQuery("findable"))
		return err == nil && len(hits) == 1
	}, 2*time.Second, 20*time.Millisecond)
}
