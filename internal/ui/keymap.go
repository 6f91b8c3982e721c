package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"termcal/internal/view"
)

// keyEvent translates a Bubble Tea key message into the machine's input
// alphabet. ok is false for keys the machine does not care about.
func keyEvent(msg tea.KeyMsg) (key view.KeyEvent, ok bool) {
	switch msg.Type {
	case tea.KeyUp:
		return view.KeyEvent{Kind: view.KeyArrowUp}, true
	case tea.KeyDown:
		return view.KeyEvent{Kind: view.KeyArrowDown}, true
	case tea.KeyLeft:
		return view.KeyEvent{Kind: view.KeyArrowLeft}, true
	case tea.KeyRight:
		return view.KeyEvent{Kind: view.KeyArrowRight}, true
	case tea.KeyPgUp:
		return view.KeyEvent{Kind: view.KeyPageUp}, true
	case tea.KeyPgDown:
		return view.KeyEvent{Kind: view.KeyPageDown}, true
	case tea.KeyHome:
		return view.KeyEvent{Kind: view.KeyHome}, true
	case tea.KeyEnd:
		return view.KeyEvent{Kind: view.KeyEnd}, true
	case tea.KeyEnter:
		return view.KeyEvent{Kind: view.KeyEnter}, true
	case tea.KeyTab:
		return view.KeyEvent{Kind: view.KeyTab}, true
	case tea.KeyEsc:
		return view.KeyEvent{Kind: view.KeyEscape}, true
	case tea.KeyDelete:
		return view.KeyEvent{Kind: view.KeyDelete}, true
	case tea.KeyBackspace:
		return view.KeyEvent{Kind: view.KeyBackspace}, true
	case tea.KeyCtrlC:
		return view.KeyEvent{Kind: view.KeyQuit}, true
	case tea.KeySpace:
		return view.KeyEvent{Kind: view.KeyRune, Rune: ' '}, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return view.KeyEvent{Kind: view.KeyRune, Rune: msg.Runes[0]}, true
		}
	}
	return view.KeyEvent{}, false
}
