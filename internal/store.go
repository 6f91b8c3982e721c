package internal

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInvalidInput rejects malformed user input, such as blank event
	// text or an out-of-range startup month.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound reports a delete of an event id that no longer exists.
	ErrNotFound = errors.New("event not found")
	// ErrStoreUnavailable wraps connection-level failures of the backing
	// store. Callers surface it and retry on the next user action.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Store is the persistence contract for per-day events. Fetches return
// events in creation order, and an empty day is an empty slice, not an
// error. Implementations map connection failures to ErrStoreUnavailable.
type Store interface {
	EventsByDate(ctx context.Context, date Date) ([]Event, error)
	EventsByMonth(ctx context.Context, year int, month time.Month) ([]Event, error)
	// CreateEvent trims text and fails with ErrInvalidInput when nothing
	// is left. On success the returned event carries its assigned id.
	CreateEvent(ctx context.Context, date Date, text string) (*Event, error)
	// DeleteEvent fails with ErrNotFound when id does not exist; a second
	// delete of the same id is a caller error, not a no-op.
	DeleteEvent(ctx context.Context, id int64) error
	HasEvents(ctx context.Context, date Date) (bool, error)
}

// ImportStore is the extra surface a store needs to mirror events from
// an external provider keyed by the provider's own ids.
type ImportStore interface {
	Store
	UpsertImported(ctx context.Context, ev *Event) error
	// PruneImported deletes imported events whose provider id is not in
	// keep and returns how many were removed.
	PruneImported(ctx context.Context, keep []string) (int64, error)
}

// Iterator walks a stream of events coming from an external provider.
type Iterator interface {
	Next() bool
	Event() *Event
	Err() error
}
