package view

import (
	"context"
	"errors"
	"strings"
	"time"

	"termcal/internal"
)

// Machine drives an interactive session: it owns the date cursor, the
// active state and a cache of the cursor month's events, and applies
// one key event at a time. Store calls happen synchronously inside
// Handle; a failing store never takes the machine down, it only sets
// the transient message.
type Machine struct {
	store  internal.Store
	cursor internal.Date
	state  State
	msg    string
	done   bool

	cacheYear  int
	cacheMonth time.Month
	cache      []internal.Event
	cacheOK    bool
}

func NewMachine(store internal.Store, start internal.Date) *Machine {
	return &Machine{
		store:  store,
		cursor: start,
		state:  CalendarView{},
	}
}

func (m *Machine) Cursor() internal.Date { return m.cursor }
func (m *Machine) State() State          { return m.state }

// Message is the transient message of the last transition, cleared on
// the next key event.
func (m *Machine) Message() string { return m.msg }

// Done reports that the session was quit from the calendar view.
func (m *Machine) Done() bool { return m.done }

// Reload primes the month cache for the cursor's month. Failures become
// the transient message; the machine stays usable.
func (m *Machine) Reload(ctx context.Context) {
	m.reloadMonth(ctx)
}

// HasEvents reports whether the cached month has an event on d. Days
// outside the cached month report false.
func (m *Machine) HasEvents(d internal.Date) bool {
	if !m.cacheOK || d.Year() != m.cacheYear || d.Month() != m.cacheMonth {
		return false
	}
	for _, ev := range m.cache {
		if ev.Date == d {
			return true
		}
	}
	return false
}

// EventsOn returns the cached events for d in creation order.
func (m *Machine) EventsOn(d internal.Date) []internal.Event {
	var res []internal.Event
	for _, ev := range m.cache {
		if ev.Date == d {
			res = append(res, ev)
		}
	}
	return res
}

// Handle applies a single key event to the active state.
func (m *Machine) Handle(ctx context.Context, key KeyEvent) {
	m.msg = ""
	if key.Kind == KeyQuit {
		m.done = true
		return
	}
	switch st := m.state.(type) {
	case CalendarView:
		m.handleCalendar(ctx, key)
	case AddEventPrompt:
		m.handlePrompt(ctx, st, key)
	case EventListView:
		m.handleList(ctx, st, key)
	}
}

func (m *Machine) handleCalendar(ctx context.Context, key KeyEvent) {
	switch key.Kind {
	case KeyArrowLeft:
		m.moveCursor(ctx, internal.PrevDay)
	case KeyArrowRight:
		m.moveCursor(ctx, internal.NextDay)
	case KeyArrowUp:
		m.moveCursor(ctx, internal.PrevWeek)
	case KeyArrowDown:
		m.moveCursor(ctx, internal.NextWeek)
	case KeyPageUp:
		m.moveCursor(ctx, internal.PrevMonth)
	case KeyPageDown:
		m.moveCursor(ctx, internal.NextMonth)
	case KeyHome:
		m.moveCursor(ctx, internal.FirstOfMonth)
	case KeyEnd:
		m.moveCursor(ctx, internal.LastOfMonth)
	case KeyEnter:
		m.state = AddEventPrompt{Date: m.cursor}
	case KeyTab:
		m.openList(ctx)
	case KeyRune:
		if key.Rune == 'q' || key.Rune == 'Q' {
			m.done = true
		}
	}
}

func (m *Machine) moveCursor(ctx context.Context, dir internal.Direction) {
	next := m.cursor.Move(dir)
	changedMonth := !next.SameMonth(m.cursor)
	m.cursor = next
	if changedMonth || !m.cacheOK {
		m.reloadMonth(ctx)
	}
}

func (m *Machine) openList(ctx context.Context) {
	if !m.cacheOK {
		m.reloadMonth(ctx)
	}
	if !m.HasEvents(m.cursor) {
		return
	}
	events, err := m.store.EventsByDate(ctx, m.cursor)
	if err != nil {
		m.msg = storeMessage(err)
		return
	}
	if len(events) == 0 {
		// The day's events vanished between the cached mark and the
		// fetch (deleted by another process); fall back to the calendar.
		m.reloadMonth(ctx)
		return
	}
	m.state = EventListView{Date: m.cursor, Events: events, Selected: 0}
}

func (m *Machine) handlePrompt(ctx context.Context, st AddEventPrompt, key KeyEvent) {
	switch key.Kind {
	case KeyRune:
		st.Draft += string(key.Rune)
		m.state = st
	case KeyBackspace:
		if st.Draft != "" {
			runes := []rune(st.Draft)
			st.Draft = string(runes[:len(runes)-1])
			m.state = st
		}
	case KeyEscape:
		m.state = CalendarView{}
	case KeyEnter:
		if strings.TrimSpace(st.Draft) == "" {
			return
		}
		if _, err := m.store.CreateEvent(ctx, st.Date, st.Draft); err != nil {
			// Stay in the prompt so the typed text is not lost.
			m.msg = storeMessage(err)
			return
		}
		m.cursor = st.Date
		m.state = CalendarView{}
		m.reloadMonth(ctx)
	}
}

func (m *Machine) handleList(ctx context.Context, st EventListView, key KeyEvent) {
	switch key.Kind {
	case KeyArrowUp:
		if st.Selected > 0 {
			st.Selected--
			m.state = st
		}
	case KeyArrowDown:
		if st.Selected < len(st.Events)-1 {
			st.Selected++
			m.state = st
		}
	case KeyEnter:
		// Display-only: the full text rides the transient message until
		// the next key.
		m.msg = st.Events[st.Selected].Text
	case KeyDelete:
		m.deleteSelected(ctx, st)
	case KeyTab:
		m.closeList(st)
	case KeyRune:
		if key.Rune == 'q' || key.Rune == 'Q' {
			m.closeList(st)
		}
	}
}

func (m *Machine) closeList(st EventListView) {
	m.cursor = st.Date
	m.state = CalendarView{}
}

func (m *Machine) deleteSelected(ctx context.Context, st EventListView) {
	ev := st.Events[st.Selected]

	err := m.store.DeleteEvent(ctx, ev.ID)
	if err != nil {
		m.msg = storeMessage(err)
		if !errors.Is(err, internal.ErrNotFound) {
			return
		}
		// The row is already gone; refresh the list either way.
	}

	events, ferr := m.store.EventsByDate(ctx, st.Date)
	if ferr != nil {
		m.msg = storeMessage(ferr)
		return
	}
	m.reloadMonth(ctx)

	if len(events) == 0 {
		m.closeList(st)
		return
	}
	st.Events = events
	if st.Selected >= len(events) {
		st.Selected = len(events) - 1
	}
	m.state = st
}

func (m *Machine) reloadMonth(ctx context.Context) {
	events, err := m.store.EventsByMonth(ctx, m.cursor.Year(), m.cursor.Month())
	if err != nil {
		m.cacheOK = false
		m.msg = storeMessage(err)
		return
	}
	m.cacheYear = m.cursor.Year()
	m.cacheMonth = m.cursor.Month()
	m.cache = events
	m.cacheOK = true
}

func storeMessage(err error) string {
	switch {
	case errors.Is(err, internal.ErrStoreUnavailable):
		return "store unavailable, try again"
	case errors.Is(err, internal.ErrNotFound):
		return "event no longer exists"
	case errors.Is(err, internal.ErrInvalidInput):
		return "event text is empty"
	}
	return err.Error()
}
