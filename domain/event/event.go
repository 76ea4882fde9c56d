// Package event defines the streams and payloads exchanged over the bus.
// Events are transient. They are never persisted and carry no backlog.
package event

import (
	"duochat/domain"
)

// Stream names a live event stream on the bus.
type Stream string

const (
	StreamMessageSent   Stream = "message-sent"
	StreamMessageRead   Stream = "message-read"
	StreamUserLoggedOut Stream = "user-logged-out"
)

// DomainEvent is anything that can be published on the bus.
type DomainEvent interface {
	Stream() Stream
}

// MessageSent is published after a message has been appended to the store.
type MessageSent struct {
	Message domain.Message
}

func (MessageSent) Stream() Stream { return StreamMessageSent }

// MessageRead is published after a message's read flag has been persisted.
// It is never published before the MessageSent of the same message.
type MessageRead struct {
	Message domain.Message
}

func (MessageRead) Stream() Stream { return StreamMessageRead }

// UserLoggedOut is published once per former partner when an anonymous
// participant logs out. UserID is the participant who left, PartnerID the
// former partner the notification is addressed to.
type UserLoggedOut struct {
	UserID    string
	PartnerID string
}

func (UserLoggedOut) Stream() Stream { return StreamUserLoggedOut }
