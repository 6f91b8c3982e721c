package main

import (
	"fmt"
	"strconv"
	"time"

	"termcal/internal"
)

// The Gregorian calendar is not defined before this.
const minYear = 1583

// startDate resolves optional positional year/month arguments into the
// initial cursor date. One number up to 12 selects that month of the
// current year; a larger number selects a year. Two numbers are year
// then month. The cursor lands on today when today is inside the chosen
// month, on day 1 otherwise.
func startDate(args []string) (internal.Date, error) {
	today := internal.Today()
	year, month := today.Year(), today.Month()

	switch len(args) {
	case 0:
	case 1:
		n, err := parseNumber(args[0])
		if err != nil {
			return internal.Date{}, err
		}
		if n > 12 {
			year, month = n, time.January
		} else {
			month = time.Month(n)
		}
	case 2:
		y, err := parseNumber(args[0])
		if err != nil {
			return internal.Date{}, err
		}
		m, err := parseNumber(args[1])
		if err != nil {
			return internal.Date{}, err
		}
		if m < 1 || m > 12 {
			return internal.Date{}, fmt.Errorf("%w: month must be between 1 and 12", internal.ErrInvalidInput)
		}
		year, month = y, time.Month(m)
	default:
		return internal.Date{}, fmt.Errorf("%w: expected at most [year] [month]", internal.ErrInvalidInput)
	}

	if year < minYear {
		return internal.Date{}, fmt.Errorf("%w: year must be %d or later", internal.ErrInvalidInput, minYear)
	}

	day := 1
	if year == today.Year() && month == today.Month() {
		day = today.Day()
	}
	return internal.NewDate(year, month, day)
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: invalid number %q", internal.ErrInvalidInput, s)
	}
	return n, nil
}
