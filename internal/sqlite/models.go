package sqlite

import (
	"database/sql"
	"time"

	"termcal/internal"
)

type Event struct {
	ID        int64          `db:"id"`
	Date      string         `db:"date"`
	Text      string         `db:"text"`
	CreatedAt string         `db:"created_at"`
	GoogleID  sql.NullString `db:"google_id"`
}

func (e Event) Convert() internal.Event {
	// Rows are only ever written through CreateEvent/UpsertImported with
	// valid dates, so parse failures cannot happen here.
	date, _ := internal.ParseDate(e.Date)
	createdAt, _ := time.Parse(time.RFC3339, e.CreatedAt)
	return internal.Event{
		ID:        e.ID,
		Date:      date,
		Text:      e.Text,
		CreatedAt: createdAt,
		GoogleID:  e.GoogleID.String,
	}
}
