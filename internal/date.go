package internal

import (
	"fmt"
	"time"
)

const DateFormat = "2006-01-02"

// Date is a civil calendar date. The zero value is not a valid date;
// build one through NewDate, NewDateFromTime, Today or ParseDate so the
// (year, month, day) triple always names a real Gregorian date.
type Date struct {
	year  int
	month time.Month
	day   int
}

func Today() Date {
	return NewDateFromTime(time.Now())
}

func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidInput, int(month))
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: day %d out of range for %s %d", ErrInvalidInput, day, month, year)
	}
	return Date{year, month, day}, nil
}

// MustDate is NewDate for dates known valid at compile time.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

func NewDateFromTime(t time.Time) Date {
	return Date{t.Year(), t.Month(), t.Day()}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return NewDateFromTime(t), nil
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) String() string {
	return d.Time().Format(DateFormat)
}

// Set implements flag.Value.
func (d *Date) Set(v string) error {
	parsed, err := ParseDate(v)
	if err == nil {
		*d = parsed
	}
	return err
}

// SameMonth reports whether both dates fall in the same month of the
// same year.
func (d Date) SameMonth(o Date) bool {
	return d.year == o.year && d.month == o.month
}

// Direction is one navigation step of the date cursor.
type Direction int

const (
	PrevDay Direction = iota
	NextDay
	PrevWeek
	NextWeek
	PrevMonth
	NextMonth
	FirstOfMonth
	LastOfMonth
)

// Move returns the date one step away from d. Day and week moves roll
// over month and year boundaries; month moves keep the day and clamp it
// to the target month's length. Every result is a valid date.
func (d Date) Move(dir Direction) Date {
	switch dir {
	case PrevDay:
		return d.addDays(-1)
	case NextDay:
		return d.addDays(1)
	case PrevWeek:
		return d.addDays(-7)
	case NextWeek:
		return d.addDays(7)
	case PrevMonth:
		return d.addMonths(-1)
	case NextMonth:
		return d.addMonths(1)
	case FirstOfMonth:
		return Date{d.year, d.month, 1}
	case LastOfMonth:
		return Date{d.year, d.month, DaysInMonth(d.year, d.month)}
	}
	return d
}

func (d Date) addDays(n int) Date {
	return NewDateFromTime(d.Time().AddDate(0, 0, n))
}

func (d Date) addMonths(n int) Date {
	// time.AddDate normalizes Jan 31 + 1 month to Mar 2/3, so walk the
	// month index directly and clamp the day instead.
	idx := d.year*12 + int(d.month) - 1 + n
	year, month := idx/12, time.Month(idx%12+1)
	day := d.day
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return Date{year, month, day}
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
