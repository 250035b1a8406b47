// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package persiandate provides DateTime, a Gregorian instant viewed through
// the Persian (Solar Hijri) calendar.
//
// A DateTime stores only the Gregorian instant. Persian fields are derived on
// every read and written by rebuilding the instant from the full field set, so
// the converter in persiancal stays the single authority on validity.
//
// DateTime is a mutable value type: the Set methods modify the receiver and
// are not safe for concurrent use without external synchronization. All other
// methods, including the Add methods, return new values.
package persiandate

import (
	"fmt"
	"math"
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiancal"
)

// ErrInvalidDate is returned when a Persian date or time of day is out of range.
//
// It is the same error as persiancal.ErrInvalidDate.
var ErrInvalidDate = persiancal.ErrInvalidDate

var (
	// minSupportedTime and maxSupportedTime bound the converter range to what
	// common SQL datetime columns accept.
	minSupportedTime = time.Date(1753, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxSupportedTime = time.Date(9999, time.December, 31, 23, 59, 59, int(997*time.Millisecond), time.UTC)
	minUnixMilli     = minSupportedTime.UnixMilli()
	maxOffset        = maxSupportedTime.UnixMilli() - minUnixMilli
)

// DateTime is a Gregorian date and time of day with millisecond precision,
// with accessors in the Persian calendar.
//
// The zero value is MinValue. DateTime values are comparable with ==, and
// two values are equal exactly when their Gregorian instants are equal, so
// DateTime can be used as a map key.
type DateTime struct {
	// offset is the number of milliseconds since minSupportedTime.
	//
	// Always within [0, maxOffset].
	offset int64
}

// New returns the default DateTime, the minimum supported instant.
func New() DateTime {
	return DateTime{}
}

// FromTime returns the DateTime for the wall clock of t.
//
// The location of t is dropped and sub-millisecond precision is truncated.
// Times outside [MinSupportedTime, MaxSupportedTime] are clamped to the
// nearest bound without error.
func FromTime(t time.Time) DateTime {
	wall := wallClock(t)
	switch {
	case wall.Before(minSupportedTime):
		return MinValue()
	case wall.After(maxSupportedTime):
		return MaxValue()
	default:
		return DateTime{offset: wall.UnixMilli() - minUnixMilli}
	}
}

// Now returns the current local date and time.
func Now() DateTime {
	return FromTime(time.Now())
}

// MinValue returns the DateTime at MinSupportedTime.
func MinValue() DateTime {
	return DateTime{}
}

// MaxValue returns the DateTime at MaxSupportedTime.
func MaxValue() DateTime {
	return DateTime{offset: maxOffset}
}

// MinSupportedTime returns the earliest instant a DateTime can hold.
func MinSupportedTime() time.Time {
	return minSupportedTime
}

// MaxSupportedTime returns the latest instant a DateTime can hold.
func MaxSupportedTime() time.Time {
	return maxSupportedTime
}

// DaysInMonth returns the number of days in the month of the Persian year.
func DaysInMonth(year int, month Month) (int, error) {
	return persiancal.DaysInMonth(year, int(month))
}

// Time returns the Gregorian instant as a wall clock in UTC.
func (d DateTime) Time() time.Time {
	return time.UnixMilli(minUnixMilli + d.offset).UTC()
}

// Fields returns all Persian calendar fields of d.
func (d DateTime) Fields() persiancal.Fields {
	fields, err := persiancal.FromGregorian(d.Time())
	if err != nil {
		// The DateTime range is contained in the converter range.
		panic(err.Error())
	}
	return fields
}

// Year returns the Persian year.
func (d DateTime) Year() int {
	return d.Fields().Year
}

// Month returns the Persian month, 1 through 12.
func (d DateTime) Month() int {
	return d.Fields().Month
}

// MonthOfYear returns the Persian month.
func (d DateTime) MonthOfYear() Month {
	return Month(d.Fields().Month)
}

// Day returns the day of the Persian month.
func (d DateTime) Day() int {
	return d.Fields().Day
}

// Hour returns the hour of the day, 0 through 23.
func (d DateTime) Hour() int {
	return d.Time().Hour()
}

// Minute returns the minute of the hour.
func (d DateTime) Minute() int {
	return d.Time().Minute()
}

// Second returns the second of the minute.
func (d DateTime) Second() int {
	return d.Time().Second()
}

// Millisecond returns the millisecond of the second.
func (d DateTime) Millisecond() int {
	return d.Time().Nanosecond() / int(time.Millisecond)
}

// DayOfWeek returns the day of the week.
func (d DateTime) DayOfWeek() DayOfWeek {
	return DayOfWeek(d.Time().Weekday())
}

// DayOfYear returns the 1-based day of the Persian year.
func (d DateTime) DayOfYear() int {
	return d.Fields().DayOfYear()
}

// DaysInMonth returns the number of days in the current Persian month.
func (d DateTime) DaysInMonth() int {
	fields := d.Fields()
	daysInMonth, err := persiancal.DaysInMonth(fields.Year, fields.Month)
	if err != nil {
		panic(err.Error())
	}
	return daysInMonth
}

// IsLeapYear reports whether the current Persian year has 366 days.
func (d DateTime) IsLeapYear() bool {
	return persiancal.IsLeapYear(d.Year())
}

// SetYear sets the Persian year, keeping all other fields.
//
// Returns an error wrapping ErrInvalidDate if the resulting date does not
// exist, such as Esfand 30 in a common year. On error d is unchanged.
func (d *DateTime) SetYear(year int) error {
	return d.set(fieldYear, year)
}

// SetMonth sets the Persian month, keeping all other fields.
func (d *DateTime) SetMonth(month int) error {
	return d.set(fieldMonth, month)
}

// SetMonthOfYear sets the Persian month, keeping all other fields.
func (d *DateTime) SetMonthOfYear(month Month) error {
	return d.set(fieldMonth, int(month))
}

// SetDay sets the day of the Persian month, keeping all other fields.
func (d *DateTime) SetDay(day int) error {
	return d.set(fieldDay, day)
}

// SetHour sets the hour, keeping all other fields.
func (d *DateTime) SetHour(hour int) error {
	return d.set(fieldHour, hour)
}

// SetMinute sets the minute, keeping all other fields.
func (d *DateTime) SetMinute(minute int) error {
	return d.set(fieldMinute, minute)
}

// SetSecond sets the second, keeping all other fields.
func (d *DateTime) SetSecond(second int) error {
	return d.set(fieldSecond, second)
}

// SetMillisecond sets the millisecond, keeping all other fields.
func (d *DateTime) SetMillisecond(millisecond int) error {
	return d.set(fieldMillisecond, millisecond)
}

// SetTime replaces the Gregorian instant, clamping as FromTime does.
func (d *DateTime) SetTime(t time.Time) {
	*d = FromTime(t)
}

// AddYears returns d plus the given number of Gregorian years.
//
// The arithmetic is done on the Gregorian instant with time.Time.AddDate, so
// the Persian month and day are not preserved in general.
func (d DateTime) AddYears(years int) DateTime {
	return FromTime(d.Time().AddDate(years, 0, 0))
}

// AddMonths returns d plus the given number of Gregorian months.
//
// As with AddYears, this is not Persian month arithmetic.
func (d DateTime) AddMonths(months int) DateTime {
	return FromTime(d.Time().AddDate(0, months, 0))
}

// AddDays returns d plus the given number of days, rounded to the millisecond.
func (d DateTime) AddDays(days float64) DateTime {
	return d.add(days, 24*time.Hour)
}

// AddHours returns d plus the given number of hours, rounded to the millisecond.
func (d DateTime) AddHours(hours float64) DateTime {
	return d.add(hours, time.Hour)
}

// AddMinutes returns d plus the given number of minutes, rounded to the millisecond.
func (d DateTime) AddMinutes(minutes float64) DateTime {
	return d.add(minutes, time.Minute)
}

// AddMilliseconds returns d plus the given number of milliseconds, rounded to the millisecond.
func (d DateTime) AddMilliseconds(milliseconds float64) DateTime {
	return d.add(milliseconds, time.Millisecond)
}

// Equal reports whether d and other hold the same instant.
func (d DateTime) Equal(other DateTime) bool {
	return d.offset == other.offset
}

// Compare returns -1 if d is before other, +1 if after, and 0 if equal.
func (d DateTime) Compare(other DateTime) int {
	switch {
	case d.offset < other.offset:
		return -1
	case d.offset > other.offset:
		return +1
	default:
		return 0
	}
}

// Before reports whether d is before other.
func (d DateTime) Before(other DateTime) bool {
	return d.offset < other.offset
}

// After reports whether d is after other.
func (d DateTime) After(other DateTime) bool {
	return d.offset > other.offset
}

// MarshalText implements encoding.TextMarshaler using DefaultFormat.
//
// A nonzero millisecond is appended as a fractional second, so that
// UnmarshalText restores an equal value.
func (d DateTime) MarshalText() ([]byte, error) {
	text := d.String()
	if millisecond := d.Millisecond(); millisecond != 0 {
		text += fmt.Sprintf(".%03d", millisecond)
	}
	return []byte(text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (d *DateTime) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// *** PRIVATE ***

type field int

const (
	fieldYear field = iota + 1
	fieldMonth
	fieldDay
	fieldHour
	fieldMinute
	fieldSecond
	fieldMillisecond
)

func (d *DateTime) set(f field, value int) error {
	updated, err := d.withField(f, value)
	if err != nil {
		return err
	}
	*d = updated
	return nil
}

// withField returns d with one Persian field replaced.
//
// The result is clamped into the supported range.
func (d DateTime) withField(f field, value int) (DateTime, error) {
	fields := d.Fields()
	applyField(&fields, f, value)
	t, err := fieldsToTime(fields)
	if err != nil {
		return DateTime{}, err
	}
	return FromTime(t), nil
}

func applyField(fields *persiancal.Fields, f field, value int) {
	switch f {
	case fieldYear:
		fields.Year = value
	case fieldMonth:
		fields.Month = value
	case fieldDay:
		fields.Day = value
	case fieldHour:
		fields.Hour = value
	case fieldMinute:
		fields.Minute = value
	case fieldSecond:
		fields.Second = value
	case fieldMillisecond:
		fields.Millisecond = value
	}
}

func fieldsToTime(fields persiancal.Fields) (time.Time, error) {
	return persiancal.ToGregorian(
		fields.Year,
		fields.Month,
		fields.Day,
		fields.Hour,
		fields.Minute,
		fields.Second,
		fields.Millisecond,
	)
}

func (d DateTime) add(value float64, unit time.Duration) DateTime {
	delta := math.Round(value * float64(unit/time.Millisecond))
	if math.IsNaN(delta) {
		return d
	}
	offset := float64(d.offset) + delta
	switch {
	case offset <= 0:
		return MinValue()
	case offset >= float64(maxOffset):
		return MaxValue()
	default:
		return DateTime{offset: int64(offset)}
	}
}

// wallClock re-anchors the wall clock of t in UTC.
func wallClock(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return time.Date(year, month, day, hour, minute, second, t.Nanosecond(), time.UTC)
}
