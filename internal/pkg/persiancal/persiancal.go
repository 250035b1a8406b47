// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package persiancal converts between the Gregorian calendar and the Persian
// (Solar Hijri) calendar.
//
// Persian years are located with the break-table leap cycle arithmetic: the
// calendar is a sequence of 33-year leap cycles, restarted at a fixed list of
// break years. The table reproduces the official Iranian calendar up to year
// 3177; later years continue the final segment as a plain 33-year cycle.
//
// All functions are pure. Times are treated as naive wall-clock values: the
// location of a time.Time passed in is ignored beyond its wall clock, and
// returned times are anchored in UTC.
package persiancal

import (
	"errors"
	"fmt"
	"time"

	"github.com/bufdev/pdate/internal/standard/xtime"
)

const (
	// MinYear is the first supported Persian year.
	MinYear = 1
	// MaxYear is the last supported Persian year.
	//
	// MaxSupportedTime falls in this year, so only part of it is convertible.
	MaxYear = 9378
)

// ErrInvalidDate is returned when a Persian date or time of day is out of range.
var ErrInvalidDate = errors.New("invalid Persian date")

var (
	// breaks are the Persian years at which a new leap cycle segment starts.
	//
	// The final entry is a sentinel past MaxYear that closes the last segment.
	breaks = [...]int{
		-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
		1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178, 10000,
	}
	minSupportedTime = time.Date(622, time.March, 22, 0, 0, 0, 0, time.UTC)
	maxSupportedTime = time.Date(9999, time.December, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)
)

// Fields are the Persian calendar fields of an instant.
type Fields struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// DayOfYear returns the 1-based day of the year of the fields' date.
func (f Fields) DayOfYear() int {
	return daysBeforeMonth(f.Month) + f.Day
}

// String returns the fields as "YYYY/MM/DD hh:mm:ss.fff".
func (f Fields) String() string {
	return fmt.Sprintf(
		"%04d/%02d/%02d %02d:%02d:%02d.%03d",
		f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Millisecond,
	)
}

// MinSupportedTime returns the earliest convertible instant, Persian 0001/01/01.
func MinSupportedTime() time.Time {
	return minSupportedTime
}

// MaxSupportedTime returns the latest convertible instant.
func MaxSupportedTime() time.Time {
	return maxSupportedTime
}

// ToGregorian converts a Persian date and time of day to the Gregorian instant.
//
// The returned time carries the wall clock in UTC. Returns an error wrapping
// ErrInvalidDate if any field is out of range or the result is past
// MaxSupportedTime.
func ToGregorian(year, month, day, hour, minute, second, millisecond int) (time.Time, error) {
	daysInMonth, err := DaysInMonth(year, month)
	if err != nil {
		return time.Time{}, err
	}
	if day < 1 || day > daysInMonth {
		return time.Time{}, fmt.Errorf("%w: day %d out of range [1, %d] for %04d/%02d", ErrInvalidDate, day, daysInMonth, year, month)
	}
	if err := validateTimeOfDay(hour, minute, second, millisecond); err != nil {
		return time.Time{}, err
	}
	cycle := leapCycle(year)
	// Day number of Farvardin 1, then the offset into the year.
	jdn := xtime.Date{Year: cycle.gregorianYear, Month: time.March, Day: cycle.march}.JulianDay() +
		daysBeforeMonth(month) + day - 1
	date := xtime.DateFromJulianDay(jdn)
	t := time.Date(
		date.Year, date.Month, date.Day,
		hour, minute, second, millisecond*int(time.Millisecond),
		time.UTC,
	)
	if t.After(maxSupportedTime) {
		return time.Time{}, fmt.Errorf("%w: %04d/%02d/%02d is after the maximum supported date", ErrInvalidDate, year, month, day)
	}
	return t, nil
}

// FromGregorian converts the wall clock of t to Persian calendar fields.
//
// Returns an error wrapping ErrInvalidDate if t is outside
// [MinSupportedTime, MaxSupportedTime].
func FromGregorian(t time.Time) (Fields, error) {
	wall := wallClock(t)
	if wall.Before(minSupportedTime) || wall.After(maxSupportedTime) {
		return Fields{}, fmt.Errorf("%w: %s is outside the supported range", ErrInvalidDate, wall.Format(time.DateTime))
	}
	date := xtime.TimeToDate(wall)
	jdn := date.JulianDay()
	// Farvardin 1 always falls in March, so the Persian year starting in
	// this Gregorian year is year - 621.
	year := date.Year - 621
	cycle := leapCycle(year)
	daysSinceFarvardin := jdn - xtime.Date{Year: date.Year, Month: time.March, Day: cycle.march}.JulianDay()
	var month, day int
	switch {
	case daysSinceFarvardin >= 186:
		daysSinceFarvardin -= 186
		month = 7 + daysSinceFarvardin/30
		day = daysSinceFarvardin%30 + 1
	case daysSinceFarvardin >= 0:
		month = 1 + daysSinceFarvardin/31
		day = daysSinceFarvardin%31 + 1
	default:
		// Before Nowruz: Dey, Bahman or Esfand of the previous year.
		year--
		daysSinceMehr := daysSinceFarvardin + 179
		if cycle.yearsSinceLeap == 1 {
			daysSinceMehr++
		}
		month = 7 + daysSinceMehr/30
		day = daysSinceMehr%30 + 1
	}
	hour, minute, second := wall.Clock()
	return Fields{
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        hour,
		Minute:      minute,
		Second:      second,
		Millisecond: wall.Nanosecond() / int(time.Millisecond),
	}, nil
}

// IsLeapYear reports whether the Persian year has 366 days.
//
// Returns false for years outside [MinYear, MaxYear].
func IsLeapYear(year int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	return leapCycle(year).yearsSinceLeap == 0
}

// DaysInMonth returns the number of days in the Persian month.
//
// Months 1-6 have 31 days, months 7-11 have 30 days, and month 12 has 30 days
// in leap years and 29 otherwise.
func DaysInMonth(year, month int) (int, error) {
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("%w: year %d out of range [%d, %d]", ErrInvalidDate, year, MinYear, MaxYear)
	}
	switch {
	case month >= 1 && month <= 6:
		return 31, nil
	case month >= 7 && month <= 11:
		return 30, nil
	case month == 12:
		if IsLeapYear(year) {
			return 30, nil
		}
		return 29, nil
	default:
		return 0, fmt.Errorf("%w: month %d out of range [1, 12]", ErrInvalidDate, month)
	}
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) (int, error) {
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("%w: year %d out of range [%d, %d]", ErrInvalidDate, year, MinYear, MaxYear)
	}
	if IsLeapYear(year) {
		return 366, nil
	}
	return 365, nil
}

// *** PRIVATE ***

type cycleInfo struct {
	// gregorianYear is the Gregorian year in which the Persian year starts.
	gregorianYear int
	// march is the day of March of Farvardin 1.
	march int
	// yearsSinceLeap is 0 for leap years, otherwise the number of years
	// since the last leap year.
	yearsSinceLeap int
}

// leapCycle locates year in the break table.
//
// year must be within [breaks[0], breaks[len(breaks)-1]).
func leapCycle(year int) cycleInfo {
	gregorianYear := year + 621
	leapsBefore := -14
	segmentStart := breaks[0]
	var jump int
	for _, segmentEnd := range breaks[1:] {
		jump = segmentEnd - segmentStart
		if year < segmentEnd {
			break
		}
		leapsBefore += jump/33*8 + jump%33/4
		segmentStart = segmentEnd
	}
	n := year - segmentStart
	leapsBefore += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapsBefore++
	}
	gregorianLeapsBefore := gregorianYear/4 - (gregorianYear/100+1)*3/4 - 150
	march := 20 + leapsBefore - gregorianLeapsBefore
	// The last years of a segment belong to the next segment's cycle.
	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	yearsSinceLeap := ((n+1)%33 - 1) % 4
	if yearsSinceLeap == -1 {
		yearsSinceLeap = 4
	}
	return cycleInfo{
		gregorianYear:  gregorianYear,
		march:          march,
		yearsSinceLeap: yearsSinceLeap,
	}
}

// daysBeforeMonth returns the number of days in a Persian year before the month.
func daysBeforeMonth(month int) int {
	if month <= 7 {
		return (month - 1) * 31
	}
	return 186 + (month-7)*30
}

func validateTimeOfDay(hour, minute, second, millisecond int) error {
	switch {
	case hour < 0 || hour > 23:
		return fmt.Errorf("%w: hour %d out of range [0, 23]", ErrInvalidDate, hour)
	case minute < 0 || minute > 59:
		return fmt.Errorf("%w: minute %d out of range [0, 59]", ErrInvalidDate, minute)
	case second < 0 || second > 59:
		return fmt.Errorf("%w: second %d out of range [0, 59]", ErrInvalidDate, second)
	case millisecond < 0 || millisecond > 999:
		return fmt.Errorf("%w: millisecond %d out of range [0, 999]", ErrInvalidDate, millisecond)
	}
	return nil
}

// wallClock re-anchors the wall clock of t in UTC.
func wallClock(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return time.Date(year, month, day, hour, minute, second, t.Nanosecond(), time.UTC)
}
