package ui

import (
	"fmt"
	"strings"
	"time"

	"termcal/internal"

	"github.com/charmbracelet/lipgloss"
)

var dayNames = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

const gridWidth = 7*3 - 1 // seven two-char cells, space separated

// RenderMonth lays out one month as a grid, Sunday first. selected and
// today are highlighted when they fall inside the month; marks reports
// whether a day carries the event marker.
func RenderMonth(st Styles, year int, month time.Month, selected, today internal.Date, marks func(internal.Date) bool) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", month, year)
	b.WriteString(st.Title.Render(centerText(title, gridWidth)))
	b.WriteString("\n")

	for i, name := range dayNames {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == 0 {
			b.WriteString(st.Weekend.Render(name))
		} else {
			b.WriteString(st.Header.Render(name))
		}
	}
	b.WriteString("\n")

	first := internal.MustDate(year, month, 1)
	offset := int(first.Weekday())
	total := internal.DaysInMonth(year, month)

	day := 1
	for week := 0; day <= total; week++ {
		cells := make([]string, 7)
		for wd := 0; wd < 7; wd++ {
			if (week == 0 && wd < offset) || day > total {
				cells[wd] = "  "
				continue
			}
			d := internal.MustDate(year, month, day)
			cells[wd] = dayCell(st, d, wd, selected, today, marks)
			day++
		}
		b.WriteString(strings.Join(cells, " "))
		if day <= total {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func dayCell(st Styles, d internal.Date, weekday int, selected, today internal.Date, marks func(internal.Date) bool) string {
	cell := fmt.Sprintf("%2d", d.Day())
	switch {
	case d == selected:
		return st.Selected.Render(cell)
	case d == today:
		return st.Today.Render(cell)
	case marks != nil && marks(d):
		return st.Event.Render(cell)
	case weekday == 0:
		return st.Weekend.Render(cell)
	}
	return st.Normal.Render(cell)
}

func centerText(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
