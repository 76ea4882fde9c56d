// Package domain contains core concepts of the pairing and relay system.
// This file defines Participant identity and conversation derivation.
package domain

import "net/url"

// ParticipantID is an opaque caller-supplied identity.
// No authentication is modeled at this layer.
type ParticipantID = string

// PairKey returns the canonical, order-insensitive key of a conversation
// between two participants. PairKey(a, b) == PairKey(b, a).
// Each ID is query-escaped before joining, so an ID containing the
// separator cannot collide with another pair and the key stays safe to
// embed in store and index keys.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return url.QueryEscape(a) + "|" + url.QueryEscape(b)
}
