package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termcal/internal"
)

func TestRenderMonthLayout(t *testing.T) {
	st := Styles{} // unstyled output keeps the assertions byte-exact

	out := RenderMonth(st, 2024, time.February, internal.Date{}, internal.Date{}, nil)
	lines := strings.Split(out, "\n")

	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "February 2024", strings.TrimSpace(lines[0]))
	assert.Equal(t, "Su Mo Tu We Th Fr Sa", lines[1])

	// Feb 1 2024 is a Thursday: four leading empty cells.
	assert.Equal(t, "             1  2  3", lines[2])
	assert.Contains(t, out, "29", "leap february runs through the 29th")

	nonLeap := RenderMonth(st, 2023, time.February, internal.Date{}, internal.Date{}, nil)
	assert.NotContains(t, nonLeap, "29")
	assert.Contains(t, nonLeap, "28")
}

func TestRenderMonthWeekCount(t *testing.T) {
	st := Styles{}

	// June 2025 starts on a Sunday and fits exactly five week rows.
	out := RenderMonth(st, 2025, time.June, internal.Date{}, internal.Date{}, nil)
	assert.Len(t, strings.Split(out, "\n"), 2+5)

	// March 2025 starts on a Saturday and needs six.
	out = RenderMonth(st, 2025, time.March, internal.Date{}, internal.Date{}, nil)
	assert.Len(t, strings.Split(out, "\n"), 2+6)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "much too …", truncate("much too long for it", 10))
}
