// Copyright 2026 Peter Edge
//
// All rights reserved.

package persiandate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiancal"
)

// timeOfDayLayouts are the layouts accepted by ParseTimeOfDay, in order.
//
// A fractional second is accepted after the seconds field of any layout.
var timeOfDayLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05PM",
	"3:04PM",
	"3:04:05pm",
	"3:04pm",
}

// ParseError is returned when text cannot be parsed as a Persian date.
type ParseError struct {
	// Input is the text that was parsed.
	Input string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements error.
func (e *ParseError) Error() string {
	message := fmt.Sprintf("convert %q to Persian date time was unsuccessful", e.Input)
	if e.Cause != nil {
		return message + ": " + e.Cause.Error()
	}
	return message
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// TimeOfDay is a time of day with millisecond precision.
type TimeOfDay struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// ParseTimeOfDay parses a 24-hour "15:04:05[.000]" or "15:04" time of day,
// or a 12-hour "3:04:05PM" or "3:04PM" one.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var firstErr error
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return TimeOfDay{
				Hour:        t.Hour(),
				Minute:      t.Minute(),
				Second:      t.Second(),
				Millisecond: t.Nanosecond() / int(time.Millisecond),
			}, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return TimeOfDay{}, firstErr
}

// Parse parses a Persian date with an optional time of day.
//
// Accepted forms are "YYYY/MM/DD", "YYYY/MM" and "YYYY", with "-" allowed in
// place of "/", optionally followed by whitespace and a time of day accepted
// by ParseTimeOfDay. Months and days may have a single digit.
//
// Omitted fields are taken from Persian 0001/01/01 00:00:00.000, the earliest
// converter date, so "1370" is 1370/01/01 00:00:00.
//
// A valid Persian date outside [MinSupportedTime, MaxSupportedTime], such as
// one before 1753, is clamped to MinValue or MaxValue without error.
//
// Returns a *ParseError if the text does not have this shape, and an error
// wrapping ErrInvalidDate if the fields do not form a valid date.
func Parse(input string) (DateTime, error) {
	var datePart, timePart string
	switch tokens := strings.Fields(input); len(tokens) {
	case 1:
		datePart = tokens[0]
	case 2:
		datePart, timePart = tokens[0], tokens[1]
	default:
		return DateTime{}, &ParseError{Input: input}
	}
	var parsed persiancal.Fields
	// Empty parts are kept so that "1370//01" is rejected.
	parts := strings.Split(strings.ReplaceAll(datePart, "-", "/"), "/")
	dateFields := []*int{&parsed.Year, &parsed.Month, &parsed.Day}
	if len(parts) > len(dateFields) {
		return DateTime{}, &ParseError{Input: input}
	}
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return DateTime{}, &ParseError{Input: input}
		}
		*dateFields[i] = value
	}
	defaults, err := persiancal.FromGregorian(persiancal.MinSupportedTime())
	if err != nil {
		return DateTime{}, err
	}
	updates := []fieldValue{
		{fieldYear, parsed.Year},
		{fieldMonth, parsed.Month},
		{fieldDay, parsed.Day},
	}[:len(parts)]
	if timePart != "" {
		timeOfDay, err := ParseTimeOfDay(timePart)
		if err != nil {
			return DateTime{}, &ParseError{Input: input, Cause: err}
		}
		updates = append(
			updates,
			fieldValue{fieldHour, timeOfDay.Hour},
			fieldValue{fieldMinute, timeOfDay.Minute},
			fieldValue{fieldSecond, timeOfDay.Second},
			fieldValue{fieldMillisecond, timeOfDay.Millisecond},
		)
	}
	// Each field is applied and validated in turn, from the year down.
	fields := defaults
	t := persiancal.MinSupportedTime()
	for _, update := range updates {
		applyField(&fields, update.field, update.value)
		t, err = fieldsToTime(fields)
		if err != nil {
			return DateTime{}, err
		}
	}
	return FromTime(t), nil
}

type fieldValue struct {
	field field
	value int
}
