package event

// Filter decides whether a subscriber receives a published event.
// Filters run at publish time, once per event per subscriber.
type Filter func(DomainEvent) bool

// All accepts every event of the subscribed stream.
func All(DomainEvent) bool { return true }

// PairFilter accepts message events whose {sender, receiver} pair equals
// {a, b} in either order. Other event kinds are rejected.
func PairFilter(a, b string) Filter {
	return func(e DomainEvent) bool {
		switch evt := e.(type) {
		case MessageSent:
			return evt.Message.Belongs(a, b)
		case MessageRead:
			return evt.Message.Belongs(a, b)
		default:
			return false
		}
	}
}

// LogoutFilter accepts logout events addressed to the subscribing
// participant. The delivered payload names the partner who left.
func LogoutFilter(userID string) Filter {
	return func(e DomainEvent) bool {
		evt, ok := e.(UserLoggedOut)
		return ok && evt.PartnerID == userID
	}
}
