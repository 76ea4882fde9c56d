// Package search maintains a full-text index over relayed messages and
// answers conversation-scoped content queries.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/blugelabs/bluge"

	"duochat/domain"
	"duochat/domain/event"
)

// Hit is one search result.
type Hit struct {
	MessageID uint64
	SenderID  string
	Content   string
	Score     float64
}

// Index wraps a bluge writer holding one document per message.
// Documents are scoped to their conversation through the canonical pair
// key, so queries never leak content across conversations.
type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewIndex(path string, log *slog.Logger) (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(path))
	if err != nil {
		return nil, fmt.Errorf("open search index: %w", err)
	}
	return &Index{writer: writer, log: log}, nil
}

// NewMemoryIndex keeps the whole index in memory. Used for the ephemeral
// variant and in tests.
func NewMemoryIndex(log *slog.Logger) (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("open in-memory search index: %w", err)
	}
	return &Index{writer: writer, log: log}, nil
}

func (i *Index) Close() error {
	return i.writer.Close()
}

// Add indexes one message. Re-adding the same message ID replaces the
// previous document.
func (i *Index) Add(message domain.Message) error {
	docID := strconv.FormatUint(message.ID, 10)
	doc := bluge.NewDocument(docID).
		AddField(bluge.NewKeywordField("pair", domain.PairKey(message.SenderID, message.ReceiverID))).
		AddField(bluge.NewKeywordField("sender", message.SenderID).StoreValue()).
		AddField(bluge.NewTextField("content", message.Content).StoreValue())

	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("index message %d: %w", message.ID, err)
	}
	return nil
}

// Search matches query terms against the content of the conversation
// between a and b. Hits come back in descending score order.
func (i *Index) Search(ctx context.Context, a, b string, query *Query) ([]Hit, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("index reader: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("closing index reader", "error", err)
		}
	}()

	boolean := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(domain.PairKey(a, b)).SetField("pair")).
		AddMust(bluge.NewMatchQuery(query.Terms).SetField("content"))
	if query.Sender != "" {
		boolean.AddMust(bluge.NewTermQuery(query.Sender).SetField("sender"))
	}

	request := bluge.NewTopNSearch(query.Limit, boolean)
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var hits []Hit
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("search iteration: %w", err)
		}
		if match == nil {
			break
		}

		hit := Hit{Score: match.Score}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.MessageID, _ = strconv.ParseUint(string(value), 10, 64)
			case "sender":
				hit.SenderID = string(value)
			case "content":
				hit.Content = string(value)
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("stored fields: %w", err)
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// Indexer is the EventSink feeding the index from a message-sent
// subscription, typically run through pubsub.Drain. Like any other
// subscriber it sees only messages published while it is live.
type Indexer struct {
	index *Index
	log   *slog.Logger
}

func NewIndexer(index *Index, log *slog.Logger) *Indexer {
	return &Indexer{index: index, log: log}
}

func (w *Indexer) Consume(e event.DomainEvent) {
	sent, ok := e.(event.MessageSent)
	if !ok {
		return
	}
	if err := w.index.Add(sent.Message); err != nil {
		w.log.Error("failed to index message",
			"message_id", sent.Message.ID, "error", err)
	}
}
