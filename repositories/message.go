//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"duochat/domain"
	"duochat/errors"
)

type IMessageRepository interface {
	Append(ctx context.Context, senderID, receiverID, content string) (domain.Message, error)
	FindConversation(ctx context.Context, a, b string) ([]domain.Message, error)
	MarkRead(ctx context.Context, id uint64) (domain.Message, error)
}

// IPurgeableRepository is implemented by the ephemeral store only.
// Durable history is never purged on logout.
type IPurgeableRepository interface {
	IMessageRepository
	PurgeParticipant(ctx context.Context, participantID string) error
}

// storedMessage is the persisted record layout.
type storedMessage struct {
	ID         uint64    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"is_read"`
}

// BadgerRepository persists messages in BadgerDB.
// Two key families are maintained per message:
//  1. "msg:{id_padded}" holds the record itself, so MarkRead is a single Get.
//  2. "conv:{pair_key}:{id_padded}" is an empty index entry; the 20-digit
//     zero padding makes a prefix scan yield the conversation in
//     chronological (ID) order.
type BadgerRepository struct {
	db  *badger.DB
	seq *badger.Sequence
	log *slog.Logger
}

const idSequenceKey = "duochat-message-id"

func NewBadgerRepository(db *badger.DB, log *slog.Logger) (*BadgerRepository, error) {
	seq, err := db.GetSequence([]byte(idSequenceKey), 128)
	if err != nil {
		return nil, fmt.Errorf("message id sequence: %w", err)
	}
	return &BadgerRepository{db: db, seq: seq, log: log}, nil
}

// NewReadOnlyBadgerRepository opens the store for queries only. Append is
// rejected; no sequence lease is taken, so it can attach to a database
// opened with WithReadOnly.
func NewReadOnlyBadgerRepository(db *badger.DB, log *slog.Logger) *BadgerRepository {
	return &BadgerRepository{db: db, log: log}
}

// Close releases the ID sequence lease. Unused IDs in the current
// bandwidth window are discarded, which keeps IDs unique but may leave
// gaps across restarts.
func (r *BadgerRepository) Close() error {
	if r.seq == nil {
		return nil
	}
	return r.seq.Release()
}

func messageKey(id uint64) []byte {
	return []byte(fmt.Sprintf("msg:%020d", id))
}

func conversationKey(pair string, id uint64) []byte {
	return []byte(fmt.Sprintf("conv:%s:%020d", pair, id))
}

func (r *BadgerRepository) Append(_ context.Context, senderID, receiverID, content string) (domain.Message, error) {
	if r.seq == nil {
		return domain.Message{}, errors.ErrReadOnlyStore
	}
	next, err := r.seq.Next()
	if err != nil {
		return domain.Message{}, fmt.Errorf("next message id: %w", err)
	}

	// Sequences start at zero; public IDs start at one.
	record := storedMessage{
		ID:         next + 1,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now().UTC(),
		IsRead:     false,
	}

	bytes, err := json.Marshal(record)
	if err != nil {
		return domain.Message{}, err
	}

	pair := domain.PairKey(senderID, receiverID)
	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(messageKey(record.ID), bytes); err != nil {
			return err
		}
		return txn.Set(conversationKey(pair, record.ID), nil)
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("store message %d: %w", record.ID, err)
	}
	return toMessage(record), nil
}

// FindConversation scans the conversation index for the canonical pair key.
// The padded ID in the key guarantees ascending chronological order, so no
// sort is needed after the scan.
func (r *BadgerRepository) FindConversation(_ context.Context, a, b string) ([]domain.Message, error) {
	var messages []domain.Message
	prefix := []byte(fmt.Sprintf("conv:%s:", domain.PairKey(a, b)))

	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			var id uint64
			if _, err := fmt.Sscanf(string(key[len(prefix):]), "%d", &id); err != nil {
				return fmt.Errorf("malformed conversation key %q: %w", key, err)
			}
			item, err := txn.Get(messageKey(id))
			if err != nil {
				return err
			}
			record, err := decodeMessage(item)
			if err != nil {
				return err
			}
			messages = append(messages, toMessage(record))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("conversation scan: %w", err)
	}
	return messages, nil
}

// MarkRead flips the read flag in place. Marking an already-read message
// succeeds and returns it unchanged.
func (r *BadgerRepository) MarkRead(_ context.Context, id uint64) (domain.Message, error) {
	var record storedMessage
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(messageKey(id))
		if goerrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrMessageNotFound
		}
		if err != nil {
			return err
		}
		if record, err = decodeMessage(item); err != nil {
			return err
		}
		if record.IsRead {
			return nil
		}
		record.IsRead = true
		bytes, err := json.Marshal(record)
		if err != nil {
			return err
		}
		return txn.Set(messageKey(id), bytes)
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("mark read %d: %w", id, err)
	}
	return toMessage(record), nil
}

func decodeMessage(item *badger.Item) (storedMessage, error) {
	var record storedMessage
	err := item.Value(func(value []byte) error {
		return json.Unmarshal(value, &record)
	})
	return record, err
}

func toMessage(record storedMessage) domain.Message {
	return domain.Message{
		ID:         record.ID,
		SenderID:   record.SenderID,
		ReceiverID: record.ReceiverID,
		Content:    record.Content,
		Timestamp:  record.Timestamp,
		IsRead:     record.IsRead,
	}
}
