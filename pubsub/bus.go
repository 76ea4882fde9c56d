// Package pubsub implements the in-process event bus.
//
// It provides fire-and-forget fan-out: a publish never blocks on a slow
// subscriber and never fails when nobody is listening. Each subscription
// owns a buffered channel; when the buffer is full the event is dropped
// for that subscriber only. pubsub is not a message broker — there is no
// durability, no replay, and no cross-process delivery.
package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"duochat/domain/event"
)

// Stats is a snapshot of bus delivery counters.
type Stats struct {
	Published uint64
	Delivered uint64
	Dropped   uint64
}

// Subscription is a live, cancellable listener on one stream.
type Subscription struct {
	ID     uuid.UUID
	stream event.Stream
	filter event.Filter
	events chan event.DomainEvent
	cancel func()
}

// Events yields matching payloads in publish order until the subscription
// is cancelled, at which point the channel is closed.
func (s *Subscription) Events() <-chan event.DomainEvent {
	return s.events
}

// Cancel deregisters the subscription and closes its channel.
// Safe to call more than once.
func (s *Subscription) Cancel() {
	s.cancel()
}

// Bus fans out events to live subscriptions, filtered per subscriber.
// An instance is owned by exactly one service; there is no process-wide
// singleton. Safe for concurrent use.
type Bus struct {
	mu         sync.RWMutex
	log        *slog.Logger
	bufferSize int
	closed     bool
	subs       map[event.Stream]map[uuid.UUID]*Subscription

	published atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64
}

func NewBus(log *slog.Logger, bufferSize int) *Bus {
	return &Bus{
		log:        log,
		bufferSize: bufferSize,
		subs:       make(map[event.Stream]map[uuid.UUID]*Subscription),
	}
}

// Publish delivers e to every live subscription on its stream whose filter
// accepts it. The send is non-blocking: a subscriber whose buffer is full
// loses the event and the loss is logged.
func (b *Bus) Publish(e event.DomainEvent) {
	b.published.Add(1)

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	for _, sub := range b.subs[e.Stream()] {
		if !sub.filter(e) {
			continue
		}
		select {
		case sub.events <- e:
			b.delivered.Add(1)
		default:
			b.dropped.Add(1)
			b.log.Warn("subscriber buffer full, event dropped",
				"stream", string(e.Stream()),
				"subscription", sub.ID.String())
		}
	}
}

// Subscribe registers a listener on a stream. The subscription starts with
// no backlog: only events published after this call are delivered. It ends
// when the caller cancels it, the context is done, or the bus closes.
func (b *Bus) Subscribe(ctx context.Context, stream event.Stream, filter event.Filter) *Subscription {
	if filter == nil {
		filter = event.All
	}
	sub := &Subscription{
		ID:     uuid.New(),
		stream: stream,
		filter: filter,
		events: make(chan event.DomainEvent, b.bufferSize),
	}

	var once sync.Once
	sub.cancel = func() {
		once.Do(func() { b.unsubscribe(sub) })
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.events)
		return sub
	}
	if _, ok := b.subs[stream]; !ok {
		b.subs[stream] = make(map[uuid.UUID]*Subscription)
	}
	b.subs[stream][sub.ID] = sub
	b.mu.Unlock()

	// A disconnecting caller usually cancels its context rather than the
	// subscription itself. Watching ctx keeps the registry leak-free.
	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			sub.Cancel()
		}()
	}

	return sub
}

func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if streamSubs, ok := b.subs[sub.stream]; ok {
		if _, live := streamSubs[sub.ID]; live {
			delete(streamSubs, sub.ID)
			close(sub.events)
		}
		if len(streamSubs) == 0 {
			delete(b.subs, sub.stream)
		}
	}
}

// Close cancels every live subscription and rejects further deliveries.
// Publish on a closed bus is a silent no-op so in-flight publishers
// never observe a failure.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, streamSubs := range b.subs {
		for _, sub := range streamSubs {
			close(sub.events)
		}
	}
	b.subs = make(map[event.Stream]map[uuid.UUID]*Subscription)
}

func (b *Bus) Stats() Stats {
	return Stats{
		Published: b.published.Load(),
		Delivered: b.delivered.Load(),
		Dropped:   b.dropped.Load(),
	}
}
