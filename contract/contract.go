//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"duochat/domain/event"
)

// EventSink consumes events on a subscriber's own delivery path.
// A stalled or failing sink only loses its own events; it can never block
// the bus or other subscribers.
type EventSink interface {
	Consume(e event.DomainEvent)
}
