package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveDayRoundTrip(t *testing.T) {
	dates := []Date{
		MustDate(2024, time.February, 28),
		MustDate(2024, time.February, 29),
		MustDate(2023, time.December, 31),
		MustDate(2024, time.January, 1),
		MustDate(2023, time.June, 15),
		MustDate(1583, time.January, 1),
	}
	for _, d := range dates {
		assert.Equal(t, d, d.Move(NextDay).Move(PrevDay), "round-trip through %s", d)
		assert.Equal(t, d, d.Move(NextWeek).Move(PrevWeek), "week round-trip through %s", d)
	}
}

func TestMoveDayRollover(t *testing.T) {
	tests := []struct {
		name string
		from Date
		dir  Direction
		want Date
	}{
		{"leap february", MustDate(2024, time.February, 28), NextDay, MustDate(2024, time.February, 29)},
		{"non-leap february", MustDate(2023, time.February, 28), NextDay, MustDate(2023, time.March, 1)},
		{"year rollover forward", MustDate(2023, time.December, 31), NextDay, MustDate(2024, time.January, 1)},
		{"year rollover back", MustDate(2024, time.January, 1), PrevDay, MustDate(2023, time.December, 31)},
		{"week crosses month", MustDate(2023, time.January, 29), NextWeek, MustDate(2023, time.February, 5)},
		{"week crosses year back", MustDate(2024, time.January, 3), PrevWeek, MustDate(2023, time.December, 27)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Move(tt.dir))
		})
	}
}

func TestMoveMonthClamps(t *testing.T) {
	tests := []struct {
		name string
		from Date
		dir  Direction
		want Date
	}{
		{"jan 31 to non-leap feb", MustDate(2023, time.January, 31), NextMonth, MustDate(2023, time.February, 28)},
		{"jan 31 to leap feb", MustDate(2024, time.January, 31), NextMonth, MustDate(2024, time.February, 29)},
		{"mar 31 back to non-leap feb", MustDate(2023, time.March, 31), PrevMonth, MustDate(2023, time.February, 28)},
		{"dec to jan next year", MustDate(2023, time.December, 15), NextMonth, MustDate(2024, time.January, 15)},
		{"jan to dec previous year", MustDate(2024, time.January, 31), PrevMonth, MustDate(2023, time.December, 31)},
		{"may 31 to june 30", MustDate(2023, time.May, 31), NextMonth, MustDate(2023, time.June, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Move(tt.dir))
		})
	}
}

func TestMoveFirstLastOfMonth(t *testing.T) {
	d := MustDate(2024, time.February, 14)
	assert.Equal(t, MustDate(2024, time.February, 1), d.Move(FirstOfMonth))
	assert.Equal(t, MustDate(2024, time.February, 29), d.Move(LastOfMonth))
	assert.Equal(t, MustDate(2023, time.February, 28), MustDate(2023, time.February, 3).Move(LastOfMonth))
}

func TestNewDateValidation(t *testing.T) {
	_, err := NewDate(2023, time.Month(13), 1)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewDate(2023, time.February, 29)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewDate(2023, time.April, 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	d, err := NewDate(2024, time.February, 29)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2023))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2023, time.January))
	assert.Equal(t, 30, DaysInMonth(2023, time.November))
}

func TestParseDateAndSet(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, MustDate(2024, time.February, 29), d)

	_, err = ParseDate("2023-02-29")
	require.Error(t, err)

	var flagDate Date
	require.NoError(t, flagDate.Set("2023-07-04"))
	assert.Equal(t, MustDate(2023, time.July, 4), flagDate)
}
