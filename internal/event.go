package internal

import "time"

// Event is a note attached to a single calendar day. ID is assigned by
// the store when the event is created and is never reused.
type Event struct {
	ID        int64
	Date      Date
	Text      string
	CreatedAt time.Time
	// GoogleID is set only on events brought in by a Google Calendar
	// import; it carries the provider's event id so repeated imports
	// dedupe instead of duplicating.
	GoogleID string
}
