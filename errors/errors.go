package errors

import "fmt"

var (
	ErrSessionConflict = fmt.Errorf("already in a session with someone else")
	ErrMessageNotFound = fmt.Errorf("message not found")
	ErrNotPaired       = fmt.Errorf("sender and receiver are not paired")
	ErrReadOnlyStore   = fmt.Errorf("message store is opened read-only")
)

// SessionConflict wraps ErrSessionConflict with the participant that
// already holds an exclusive binding.
func SessionConflict(userID string) error {
	return fmt.Errorf("%s is %w", userID, ErrSessionConflict)
}
