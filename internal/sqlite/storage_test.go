package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termcal/internal"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	db, err := sql.Open(DriverName, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStorage(db)
}

func TestCreateAndFetchOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	day := internal.MustDate(2024, time.March, 5)

	for _, text := range []string{"first", "second", "third"} {
		_, err := s.CreateEvent(ctx, day, text)
		require.NoError(t, err)
	}

	events, err := s.EventsByDate(ctx, day)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "first", events[0].Text)
	assert.Equal(t, "second", events[1].Text)
	assert.Equal(t, "third", events[2].Text)
	assert.Equal(t, day, events[0].Date)
	assert.NotZero(t, events[0].ID)
}

func TestCreateTrimsAndRejectsBlank(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	day := internal.MustDate(2024, time.March, 5)

	ev, err := s.CreateEvent(ctx, day, "  padded  ")
	require.NoError(t, err)
	assert.Equal(t, "padded", ev.Text)

	_, err = s.CreateEvent(ctx, day, "   ")
	require.ErrorIs(t, err, internal.ErrInvalidInput)

	_, err = s.CreateEvent(ctx, day, "")
	require.ErrorIs(t, err, internal.ErrInvalidInput)
}

func TestDeleteTwiceFails(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	day := internal.MustDate(2024, time.March, 5)

	ev, err := s.CreateEvent(ctx, day, "once")
	require.NoError(t, err)

	require.NoError(t, s.DeleteEvent(ctx, ev.ID))
	require.ErrorIs(t, s.DeleteEvent(ctx, ev.ID), internal.ErrNotFound)
}

func TestHasEvents(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	day := internal.MustDate(2024, time.March, 5)

	has, err := s.HasEvents(ctx, day)
	require.NoError(t, err)
	assert.False(t, has)

	ev, err := s.CreateEvent(ctx, day, "x")
	require.NoError(t, err)

	has, err = s.HasEvents(ctx, day)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, s.DeleteEvent(ctx, ev.ID))

	has, err = s.HasEvents(ctx, day)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestEventsByMonth(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.CreateEvent(ctx, internal.MustDate(2024, time.March, 5), "in")
	require.NoError(t, err)
	_, err = s.CreateEvent(ctx, internal.MustDate(2024, time.March, 28), "also in")
	require.NoError(t, err)
	_, err = s.CreateEvent(ctx, internal.MustDate(2024, time.April, 1), "out")
	require.NoError(t, err)
	_, err = s.CreateEvent(ctx, internal.MustDate(2023, time.March, 5), "wrong year")
	require.NoError(t, err)

	events, err := s.EventsByMonth(ctx, 2024, time.March)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "in", events[0].Text)
	assert.Equal(t, "also in", events[1].Text)
}

func TestUpsertImportedDedupes(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	day := internal.MustDate(2024, time.March, 5)

	ev := &internal.Event{
		Date:      day,
		Text:      "standup",
		CreatedAt: time.Now().UTC(),
		GoogleID:  "gid-1",
	}
	require.NoError(t, s.UpsertImported(ctx, ev))

	moved := *ev
	moved.Date = internal.MustDate(2024, time.March, 6)
	moved.Text = "standup (moved)"
	require.NoError(t, s.UpsertImported(ctx, &moved))

	events, err := s.EventsByMonth(ctx, 2024, time.March)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "standup (moved)", events[0].Text)
	assert.Equal(t, moved.Date, events[0].Date)
	assert.Equal(t, "gid-1", events[0].GoogleID)
}

func TestUpsertImportedRequiresID(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	err := s.UpsertImported(ctx, &internal.Event{
		Date:      internal.MustDate(2024, time.March, 5),
		Text:      "no id",
		CreatedAt: time.Now().UTC(),
	})
	require.ErrorIs(t, err, internal.ErrInvalidInput)
}

func TestPruneImportedKeepsManualEvents(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	day := internal.MustDate(2024, time.March, 5)

	_, err := s.CreateEvent(ctx, day, "manual")
	require.NoError(t, err)

	now := time.Now().UTC()
	for _, gid := range []string{"keep", "stale-1", "stale-2"} {
		require.NoError(t, s.UpsertImported(ctx, &internal.Event{
			Date:      day,
			Text:      gid,
			CreatedAt: now,
			GoogleID:  gid,
		}))
	}

	pruned, err := s.PruneImported(ctx, []string{"keep"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, pruned)

	events, err := s.EventsByDate(ctx, day)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "manual", events[0].Text)
	assert.Equal(t, "keep", events[1].Text)
}

func TestPruneImportedEmptyKeepRemovesAll(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	day := internal.MustDate(2024, time.March, 5)

	require.NoError(t, s.UpsertImported(ctx, &internal.Event{
		Date:      day,
		Text:      "imported",
		CreatedAt: time.Now().UTC(),
		GoogleID:  "gid",
	}))

	pruned, err := s.PruneImported(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pruned)

	has, err := s.HasEvents(ctx, day)
	require.NoError(t, err)
	assert.False(t, has)
}
