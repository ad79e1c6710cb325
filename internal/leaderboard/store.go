package leaderboard

import "context"

// Store persists the board between runs.
type Store interface {
	// Load returns the stored entries in board order.
	Load(ctx context.Context) ([]Entry, error)
	// Save replaces the stored entries.
	Save(ctx context.Context, entries []Entry) error
	// Close releases storage resources.
	Close() error
}
