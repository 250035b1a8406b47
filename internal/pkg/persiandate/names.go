// Copyright 2026 Peter Edge
//
// All rights reserved.

package persiandate

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// DayOfWeek is a day of the Persian week.
//
// Values match time.Weekday, so Yekshanbeh (Sunday) is 0 and Shanbeh
// (Saturday), the first day of the Persian week, is 6.
type DayOfWeek int

const (
	// Yekshanbeh is Sunday.
	Yekshanbeh DayOfWeek = 0
	// Doshanbeh is Monday.
	Doshanbeh DayOfWeek = 1
	// Seshanbeh is Tuesday.
	Seshanbeh DayOfWeek = 2
	// Chaharshanbeh is Wednesday.
	Chaharshanbeh DayOfWeek = 3
	// Panjshanbeh is Thursday.
	Panjshanbeh DayOfWeek = 4
	// Jomeh is Friday.
	Jomeh DayOfWeek = 5
	// Shanbeh is Saturday.
	Shanbeh DayOfWeek = 6
)

// Month is a month of the Persian year.
type Month int

const (
	// Farvardin is the first month. It has 31 days.
	Farvardin Month = 1
	// Ordibehesht is the second month. It has 31 days.
	Ordibehesht Month = 2
	// Khordad is the third month. It has 31 days.
	Khordad Month = 3
	// Tir is the fourth month. It has 31 days.
	Tir Month = 4
	// Mordad is the fifth month. It has 31 days.
	Mordad Month = 5
	// Shahrivar is the sixth month. It has 31 days.
	Shahrivar Month = 6
	// Mehr is the seventh month. It has 30 days.
	Mehr Month = 7
	// Aban is the eighth month. It has 30 days.
	Aban Month = 8
	// Azar is the ninth month. It has 30 days.
	Azar Month = 9
	// Dey is the tenth month. It has 30 days.
	Dey Month = 10
	// Bahman is the eleventh month. It has 30 days.
	Bahman Month = 11
	// Esfand is the twelfth month. It has 30 days in a leap year and 29 otherwise.
	Esfand Month = 12
)

// nameSeparator joins the words of multi-word names in the name tables.
const nameSeparator = "_"

// enumName is a name table entry.
type enumName struct {
	persian         string
	transliteration string
}

var (
	dayOfWeekNames = [...]enumName{
		Yekshanbeh:    {"یکشنبه", "Yekshanbeh"},
		Doshanbeh:     {"دوشنبه", "Doshanbeh"},
		Seshanbeh:     {"سه_شنبه", "Seshanbeh"},
		Chaharshanbeh: {"چهارشنبه", "Chaharshanbeh"},
		Panjshanbeh:   {"پنجشنبه", "Panjshanbeh"},
		Jomeh:         {"جمعه", "Jomeh"},
		Shanbeh:       {"شنبه", "Shanbeh"},
	}
	monthNames = [...]enumName{
		Farvardin:   {"فروردین", "Farvardin"},
		Ordibehesht: {"اردیبهشت", "Ordibehesht"},
		Khordad:     {"خرداد", "Khordad"},
		Tir:         {"تیر", "Tir"},
		Mordad:      {"مرداد", "Mordad"},
		Shahrivar:   {"شهریور", "Shahrivar"},
		Mehr:        {"مهر", "Mehr"},
		Aban:        {"آبان", "Aban"},
		Azar:        {"آذر", "Azar"},
		Dey:         {"دی", "Dey"},
		Bahman:      {"بهمن", "Bahman"},
		Esfand:      {"اسفند", "Esfand"},
	}
)

// IsValid reports whether d is one of the seven days of the week.
func (d DayOfWeek) IsValid() bool {
	return d >= Yekshanbeh && d <= Shanbeh
}

// String returns the Persian name of the day, with spaces between words.
func (d DayOfWeek) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("%%!DayOfWeek(%d)", int(d))
	}
	return displayName(dayOfWeekNames[d].persian)
}

// Transliteration returns the Latin transliteration of the day name.
func (d DayOfWeek) Transliteration() string {
	if !d.IsValid() {
		return fmt.Sprintf("%%!DayOfWeek(%d)", int(d))
	}
	return dayOfWeekNames[d].transliteration
}

// IsValid reports whether m is one of the twelve months.
func (m Month) IsValid() bool {
	return m >= Farvardin && m <= Esfand
}

// String returns the Persian name of the month.
func (m Month) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return displayName(monthNames[m].persian)
}

// Transliteration returns the Latin transliteration of the month name.
func (m Month) Transliteration() string {
	if !m.IsValid() {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return monthNames[m].transliteration
}

// WeekdayName returns the Persian name of the day of the week.
func WeekdayName(d DayOfWeek) string {
	return d.String()
}

// MonthName returns the Persian name of the month.
func MonthName(m Month) string {
	return m.String()
}

// WeekdayNames returns the Persian day names ordered by value, starting with Yekshanbeh.
func WeekdayNames() []string {
	names := make([]string, 0, len(dayOfWeekNames))
	for d := Yekshanbeh; d <= Shanbeh; d++ {
		names = append(names, d.String())
	}
	return names
}

// MonthNames returns the Persian month names from Farvardin to Esfand.
func MonthNames() []string {
	names := make([]string, 0, len(monthNames)-1)
	for m := Farvardin; m <= Esfand; m++ {
		names = append(names, m.String())
	}
	return names
}

// ParseWeekdayName parses a Persian or transliterated day name.
//
// Matching ignores case, and spaces match the separator of multi-word names,
// so "سه شنبه" and "سه_شنبه" both parse as Seshanbeh.
func ParseWeekdayName(name string) (DayOfWeek, error) {
	key := nameKey(name)
	for d := Yekshanbeh; d <= Shanbeh; d++ {
		if nameMatches(key, dayOfWeekNames[d]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown day of week name %q", name)
}

// ParseMonthName parses a Persian or transliterated month name, ignoring case.
func ParseMonthName(name string) (Month, error) {
	key := nameKey(name)
	for m := Farvardin; m <= Esfand; m++ {
		if nameMatches(key, monthNames[m]) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month name %q", name)
}

// *** PRIVATE ***

func displayName(name string) string {
	return strings.ReplaceAll(name, nameSeparator, " ")
}

func nameMatches(key string, name enumName) bool {
	return key == nameKey(name.persian) || key == nameKey(name.transliteration)
}

// nameKey returns the comparison form of a name.
//
// A Caser is stateful, so a new one is created per call.
func nameKey(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", nameSeparator)
	return cases.Fold().String(norm.NFC.String(name))
}
