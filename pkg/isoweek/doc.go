// Package isoweek resolves ISO-8601 week numbers to calendar date ranges.
//
// ISO weeks start on Monday. Week 1 of a year is the week that contains
// January 4th (equivalently, the year's first Thursday), so the first
// Monday of week 1 may fall in late December of the previous year. A year
// has 52 or 53 ISO weeks.
//
// All arithmetic is done on proleptic Gregorian day numbers (days since
// 1970-01-01), never on clock time, so results cannot drift by a day around
// daylight-saving transitions.
//
// # Usage
//
//	s, err := isoweek.Resolve(2025, 1) // "Dec 30-Jan 5"
//
//	if isoweek.HasWeek53(2026) {
//	    // print a 53rd column
//	}
//
// [Resolve] does not reject week 53 for years that only have 52 weeks; it
// answers with the same date arithmetic (the dates then belong to week 1 of
// the following year). Callers iterating a year's weeks should stop at
// [WeeksInYear].
package isoweek
