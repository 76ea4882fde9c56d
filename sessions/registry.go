//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=../mocks/mock_registry.go -package=mocks
// Package sessions tracks which participants are exclusively paired.
// The registry is the single source of truth for the pairing invariant:
// no participant is ever simultaneously paired with two different partners.
package sessions

import (
	"sync"

	"duochat/errors"
)

type IPairingRegistry interface {
	Bind(a, b string) error
	Unbind(a string) []string
	IsBoundExclusively(a, b string) bool
}

// Registry keeps a single partner per participant. Binding is symmetric:
// partners[a] == b implies partners[b] == a.
type Registry struct {
	mu       sync.Mutex
	partners map[string]string
}

func NewRegistry() *Registry {
	return &Registry{partners: make(map[string]string)}
}

// Bind establishes exclusivity between a and b. It fails with
// ErrSessionConflict when either side is already bound to a third party,
// and is idempotent when the exact same pair is already bound.
func (r *Registry) Bind(a, b string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.partners[a]; ok && current != b {
		return errors.SessionConflict(a)
	}
	if current, ok := r.partners[b]; ok && current != a {
		return errors.SessionConflict(b)
	}

	r.partners[a] = b
	r.partners[b] = a
	return nil
}

// Unbind removes a's binding and returns the former partners so the caller
// can notify them. It returns an empty slice when a was not bound.
func (r *Registry) Unbind(a string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	partner, ok := r.partners[a]
	if !ok {
		return nil
	}
	delete(r.partners, a)
	if partner != a {
		delete(r.partners, partner)
	}
	return []string{partner}
}

// IsBoundExclusively reports whether a and b are mutually bound to each
// other and to nobody else.
func (r *Registry) IsBoundExclusively(a, b string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	partner, ok := r.partners[a]
	return ok && partner == b && r.partners[b] == a
}
