package view

import "termcal/internal"

// KeyKind enumerates the discrete key events the machine understands.
// Anything else the terminal produces is dropped before it gets here.
type KeyKind int

const (
	KeyArrowUp KeyKind = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyTab
	KeyEscape
	KeyDelete
	KeyBackspace
	KeyRune
	KeyQuit
)

type KeyEvent struct {
	Kind KeyKind
	Rune rune // set only when Kind == KeyRune
}

// State is the active screen. The set of implementations is closed:
// exactly one of CalendarView, EventListView or AddEventPrompt is live
// at any time, and it is the sole source of truth for input routing.
type State interface {
	state()
}

// CalendarView is the month grid; the machine's cursor is the selected
// day.
type CalendarView struct{}

// EventListView lists the events of a single day. Events is a read-only
// snapshot in creation order.
type EventListView struct {
	Date     internal.Date
	Events   []internal.Event
	Selected int
}

// AddEventPrompt collects the text of a new event for Date.
type AddEventPrompt struct {
	Date  internal.Date
	Draft string
}

func (CalendarView) state()   {}
func (EventListView) state()  {}
func (AddEventPrompt) state() {}
