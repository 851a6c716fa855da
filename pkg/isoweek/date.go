package isoweek

import (
	"fmt"
	"time"
)

// Date is a calendar date without a clock or time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given day number (days since 1970-01-01).
func NewDate(dayNumber int) Date {
	return fromDayNumber(dayNumber)
}

// DateOf extracts the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// DayNumber returns the number of days between 1970-01-01 and d.
// Dates before the epoch yield negative numbers.
func (d Date) DayNumber() int {
	return dayNumber(d.Year, d.Month, d.Day)
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return fromDayNumber(d.DayNumber() + n)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return time.Weekday((isoWeekday(d.DayNumber()) + 1) % 7)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// dayNumber converts a civil date to days since 1970-01-01 using
// 400-year eras of 146097 days, with years starting in March so the leap
// day is the last day of the shifted year.
func dayNumber(y int, m time.Month, d int) int {
	if m <= time.February {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (int(m) + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// fromDayNumber is the inverse of dayNumber.
func fromDayNumber(n int) Date {
	z := n + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if month > 12 {
		month -= 12
	}
	if month <= 2 {
		y++
	}
	return Date{Year: y, Month: time.Month(month), Day: day}
}

// isoWeekday returns 0 for Monday through 6 for Sunday.
// Day 0 (1970-01-01) was a Thursday.
func isoWeekday(n int) int {
	return floorMod(n+3, 7)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
