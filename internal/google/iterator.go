package google

import (
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"

	"termcal/internal"
)

type eventOrError struct {
	e   *internal.Event
	err error
}

type eventIterator struct {
	events  chan eventOrError
	current eventOrError
}

func newEventIterator() *eventIterator {
	return &eventIterator{
		events: make(chan eventOrError),
	}
}

func (it *eventIterator) Next() (ok bool) {
	it.current, ok = <-it.events
	if it.current.err != nil {
		return false
	}
	return ok
}

func (it *eventIterator) Event() *internal.Event {
	c := it.current
	if c.e == nil && c.err == nil {
		panic("google: Event() called before Next()")
	}
	return c.e
}

func (it *eventIterator) Err() error {
	return it.current.err
}

func newEvent(item *calendar.Event) (*internal.Event, bool) {
	if item.Status == "cancelled" || item.Start == nil {
		return nil, false
	}

	var day internal.Date
	if item.Start.Date != "" {
		// All-day events carry a plain date.
		d, err := internal.ParseDate(item.Start.Date)
		if err != nil {
			return nil, false
		}
		day = d
	} else {
		t, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return nil, false
		}
		day = internal.NewDateFromTime(t)
	}

	text := strings.TrimSpace(item.Summary)
	if text == "" {
		text = "(untitled)"
	}

	createdAt, err := time.Parse(time.RFC3339, item.Created)
	if err != nil {
		createdAt = time.Now().UTC()
	}

	return &internal.Event{
		Date:      day,
		Text:      text,
		CreatedAt: createdAt,
		GoogleID:  item.Id,
	}, true
}
