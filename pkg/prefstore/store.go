package prefstore

import "context"

// Store defines the interface for preference persistence
type Store interface {
	// Get retrieves the preference stored for a subject.
	// Returns ErrNotFound when the subject has no recorded preference.
	Get(ctx context.Context, subject string) (string, error)

	// Set stores the preference for a subject, replacing any previous value
	Set(ctx context.Context, subject, value string) error

	// Delete removes the preference stored for a subject.
	// Deleting an absent subject is not an error.
	Delete(ctx context.Context, subject string) error
}
