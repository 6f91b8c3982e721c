package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"termcal/internal"

	"github.com/jmoiron/sqlx"
)

const DriverName = "sqlite3"

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sql.DB) *Storage {
	s := &Storage{
		db: sqlx.NewDb(db, DriverName),
	}
	err := s.RunMigrations()
	if err != nil {
		panic(fmt.Sprintf("sqlite: running migrations: %v", err))
	}
	return s
}

func (s Storage) EventsByDate(ctx context.Context, date internal.Date) ([]internal.Event, error) {
	var rows []Event

	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, date, text, created_at, google_id
		FROM events
		WHERE date = ?
		ORDER BY id
	`, date.String())
	if err != nil {
		return nil, storeErr(err)
	}
	return convert(rows), nil
}

func (s Storage) EventsByMonth(ctx context.Context, year int, month time.Month) ([]internal.Event, error) {
	var rows []Event

	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, date, text, created_at, google_id
		FROM events
		WHERE strftime('%Y', date) = ? AND strftime('%m', date) = ?
		ORDER BY date, id
	`, strconv.Itoa(year), fmt.Sprintf("%02d", int(month)))
	if err != nil {
		return nil, storeErr(err)
	}
	return convert(rows), nil
}

func (s Storage) CreateEvent(ctx context.Context, date internal.Date, text string) (*internal.Event, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: event text is empty", internal.ErrInvalidInput)
	}

	createdAt := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO events (date, text, created_at) VALUES (?, ?, ?)
	`, date.String(), text, createdAt.Format(time.RFC3339))
	if err != nil {
		return nil, storeErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeErr(err)
	}
	return &internal.Event{
		ID:        id,
		Date:      date,
		Text:      text,
		CreatedAt: createdAt,
	}, nil
}

func (s Storage) DeleteEvent(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM events WHERE id = ?
	`, id)
	if err != nil {
		return storeErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr(err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", internal.ErrNotFound, id)
	}
	return nil
}

func (s Storage) HasEvents(ctx context.Context, date internal.Date) (bool, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `
		SELECT COUNT(1) FROM events WHERE date = ?
	`, date.String())
	if err != nil {
		return false, storeErr(err)
	}
	return n > 0, nil
}

func (s Storage) UpsertImported(ctx context.Context, ev *internal.Event) error {
	if ev.GoogleID == "" {
		return fmt.Errorf("%w: imported event without provider id", internal.ErrInvalidInput)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (date, text, created_at, google_id)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(google_id) DO UPDATE SET date = excluded.date, text = excluded.text;
	`, ev.Date.String(), ev.Text, ev.CreatedAt.Format(time.RFC3339), ev.GoogleID)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (s Storage) PruneImported(ctx context.Context, keep []string) (int64, error) {
	query := `DELETE FROM events WHERE google_id IS NOT NULL`
	var args []interface{}

	if len(keep) > 0 {
		in, inArgs, err := sqlx.In(` AND google_id NOT IN (?)`, keep)
		if err != nil {
			return 0, err
		}
		query += in
		args = inArgs
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, storeErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func convert(rows []Event) []internal.Event {
	res := make([]internal.Event, len(rows))
	for i, r := range rows {
		res[i] = r.Convert()
	}
	return res
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", internal.ErrStoreUnavailable, err)
}
