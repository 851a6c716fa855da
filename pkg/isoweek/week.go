package isoweek

import (
	"fmt"

	"github.com/matzehuels/gridcal/pkg/errors"
)

const (
	// MinWeek is the first ISO week number.
	MinWeek = 1
	// MaxWeek is the largest ISO week number any year can have.
	MaxWeek = 53
)

// Range is the Monday-to-Sunday span of one ISO week.
type Range struct {
	Start Date
	End   Date
}

// String formats the range as "Jan 6-12" when both ends share a month,
// and as "Dec 30-Jan 5" otherwise.
func (r Range) String() string {
	if r.Start.Month == r.End.Month {
		return fmt.Sprintf("%s %d-%d", monthAbbrev(r.Start), r.Start.Day, r.End.Day)
	}
	return fmt.Sprintf("%s %d-%s %d", monthAbbrev(r.Start), r.Start.Day, monthAbbrev(r.End), r.End.Day)
}

// Resolve returns the display string for the given ISO week of year.
// It fails with INVALID_WEEK when week is outside [1, 53].
func Resolve(year, week int) (string, error) {
	r, err := WeekRange(year, week)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// WeekRange returns the dates of the given ISO week of year.
// Week 53 is answered with plain date arithmetic even when year has only
// 52 weeks; use [HasWeek53] to tell the two cases apart.
func WeekRange(year, week int) (Range, error) {
	if week < MinWeek || week > MaxWeek {
		return Range{}, errors.New(errors.ErrCodeInvalidWeek, "week %d out of range [%d, %d]", week, MinWeek, MaxWeek)
	}
	start := week1Monday(year) + (week-1)*7
	return Range{Start: fromDayNumber(start), End: fromDayNumber(start + 6)}, nil
}

// Week1Monday returns the Monday that starts ISO week 1 of year: the
// Monday on or before January 4th.
func Week1Monday(year int) Date {
	return fromDayNumber(week1Monday(year))
}

// HasWeek53 reports whether year has a 53rd ISO week. The 53rd week
// belongs to year exactly when its Thursday still falls in year.
func HasWeek53(year int) bool {
	thursday := week1Monday(year) + 52*7 + 3
	return fromDayNumber(thursday).Year == year
}

// WeeksInYear returns 53 for long ISO years and 52 otherwise.
func WeeksInYear(year int) int {
	if HasWeek53(year) {
		return 53
	}
	return 52
}

// Week returns the ISO year and week number that contain d. The ISO year
// differs from d.Year for some days around New Year.
func Week(d Date) (isoYear, week int) {
	n := d.DayNumber()
	thursday := n - isoWeekday(n) + 3
	isoYear = fromDayNumber(thursday).Year
	week = (thursday-week1Monday(isoYear))/7 + 1
	return isoYear, week
}

func week1Monday(year int) int {
	jan4 := dayNumber(year, 1, 4)
	return jan4 - isoWeekday(jan4)
}

func monthAbbrev(d Date) string {
	return d.Month.String()[:3]
}
