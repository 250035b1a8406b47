// Copyright 2026 Peter Edge
//
// All rights reserved.

package persiancal

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFromGregorian(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		gregorian time.Time
		want      Fields
	}{
		{
			gregorian: time.Date(1991, time.March, 21, 0, 0, 0, 0, time.UTC),
			want:      Fields{Year: 1370, Month: 1, Day: 1},
		},
		{
			gregorian: time.Date(1981, time.August, 17, 0, 0, 0, 0, time.UTC),
			want:      Fields{Year: 1360, Month: 5, Day: 26},
		},
		{
			gregorian: time.Date(2013, time.January, 10, 0, 0, 0, 0, time.UTC),
			want:      Fields{Year: 1391, Month: 10, Day: 21},
		},
		{
			gregorian: time.Date(2014, time.August, 4, 12, 30, 45, int(250*time.Millisecond), time.UTC),
			want:      Fields{Year: 1393, Month: 5, Day: 13, Hour: 12, Minute: 30, Second: 45, Millisecond: 250},
		},
		{
			gregorian: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
			want:      Fields{Year: 1403, Month: 1, Day: 1},
		},
		{
			gregorian: time.Date(2025, time.March, 20, 23, 59, 59, 0, time.UTC),
			want:      Fields{Year: 1403, Month: 12, Day: 30, Hour: 23, Minute: 59, Second: 59},
		},
		{
			gregorian: time.Date(2025, time.March, 21, 0, 0, 0, 0, time.UTC),
			want:      Fields{Year: 1404, Month: 1, Day: 1},
		},
		{
			gregorian: time.Date(2021, time.March, 20, 0, 0, 0, 0, time.UTC),
			want:      Fields{Year: 1399, Month: 12, Day: 30},
		},
		{
			gregorian: time.Date(2023, time.September, 23, 0, 0, 0, 0, time.UTC),
			want:      Fields{Year: 1402, Month: 7, Day: 1},
		},
		{
			gregorian: MinSupportedTime(),
			want:      Fields{Year: 1, Month: 1, Day: 1},
		},
		{
			gregorian: MaxSupportedTime(),
			want:      Fields{Year: 9378, Month: 10, Day: 10, Hour: 23, Minute: 59, Second: 59, Millisecond: 999},
		},
	} {
		got, err := FromGregorian(test.gregorian)
		require.NoError(t, err)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("FromGregorian(%v) mismatch (-want +got):\n%s", test.gregorian, diff)
		}
		back, err := ToGregorian(got.Year, got.Month, got.Day, got.Hour, got.Minute, got.Second, got.Millisecond)
		require.NoError(t, err)
		require.True(t, test.gregorian.Equal(back), "ToGregorian(%v) = %v, want %v", got, back, test.gregorian)
	}
}

func TestFromGregorianIgnoresLocation(t *testing.T) {
	t.Parallel()
	tehran := time.FixedZone("IRST", 3*60*60+30*60)
	got, err := FromGregorian(time.Date(2024, time.March, 20, 1, 0, 0, 0, tehran))
	require.NoError(t, err)
	require.Equal(t, Fields{Year: 1403, Month: 1, Day: 1, Hour: 1}, got)
}

func TestFromGregorianOutOfRange(t *testing.T) {
	t.Parallel()
	for _, gregorian := range []time.Time{
		MinSupportedTime().Add(-time.Millisecond),
		time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC),
		MaxSupportedTime().Add(time.Millisecond),
	} {
		_, err := FromGregorian(gregorian)
		require.ErrorIs(t, err, ErrInvalidDate, "%v", gregorian)
	}
}

func TestToGregorianInvalid(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		desc   string
		fields Fields
	}{
		{"month zero", Fields{Year: 1370, Month: 0, Day: 1}},
		{"month thirteen", Fields{Year: 1370, Month: 13, Day: 1}},
		{"day zero", Fields{Year: 1370, Month: 1, Day: 0}},
		{"day 32 in a 31-day month", Fields{Year: 1370, Month: 6, Day: 32}},
		{"day 31 in a 30-day month", Fields{Year: 1370, Month: 7, Day: 31}},
		{"Esfand 30 in a common year", Fields{Year: 1404, Month: 12, Day: 30}},
		{"hour 24", Fields{Year: 1370, Month: 1, Day: 1, Hour: 24}},
		{"minute 60", Fields{Year: 1370, Month: 1, Day: 1, Minute: 60}},
		{"second -1", Fields{Year: 1370, Month: 1, Day: 1, Second: -1}},
		{"millisecond 1000", Fields{Year: 1370, Month: 1, Day: 1, Millisecond: 1000}},
		{"year zero", Fields{Year: 0, Month: 1, Day: 1}},
		{"year past maximum", Fields{Year: MaxYear + 1, Month: 1, Day: 1}},
		{"past maximum supported time", Fields{Year: MaxYear, Month: 10, Day: 11}},
	} {
		f := test.fields
		_, err := ToGregorian(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Millisecond)
		require.ErrorIs(t, err, ErrInvalidDate, test.desc)
	}
}

func TestIsLeapYear(t *testing.T) {
	t.Parallel()
	// One full 33-year cycle, 1375 through 1407.
	leapYears := map[int]struct{}{
		1375: {}, 1379: {}, 1383: {}, 1387: {}, 1391: {}, 1395: {}, 1399: {}, 1403: {},
	}
	for year := 1375; year <= 1407; year++ {
		_, want := leapYears[year]
		require.Equal(t, want, IsLeapYear(year), "year %d", year)
	}
	// 1404 through 1407 is the five-year gap that closes the cycle.
	require.True(t, IsLeapYear(1370))
	require.True(t, IsLeapYear(1408))
	require.False(t, IsLeapYear(1393))
	require.False(t, IsLeapYear(0))
	require.False(t, IsLeapYear(MaxYear+1))
}

func TestLeapYearsMatchYearLength(t *testing.T) {
	t.Parallel()
	// The length of every year must agree with the distance between consecutive Nowruz days.
	for year := MinYear; year < MaxYear; year++ {
		start, err := ToGregorian(year, 1, 1, 0, 0, 0, 0)
		require.NoError(t, err)
		next, err := ToGregorian(year+1, 1, 1, 0, 0, 0, 0)
		require.NoError(t, err)
		days, err := DaysInYear(year)
		require.NoError(t, err)
		require.Equal(t, days, int(next.Sub(start).Hours()/24), "year %d", year)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	for _, year := range []int{1370, 1393, 1403, 1404} {
		for month := 1; month <= 12; month++ {
			got, err := DaysInMonth(year, month)
			require.NoError(t, err)
			switch {
			case month <= 6:
				require.Equal(t, 31, got)
			case month <= 11:
				require.Equal(t, 30, got)
			case IsLeapYear(year):
				require.Equal(t, 30, got)
			default:
				require.Equal(t, 29, got)
			}
		}
	}
	_, err := DaysInMonth(1403, 0)
	require.ErrorIs(t, err, ErrInvalidDate)
	_, err = DaysInMonth(1403, 13)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestRoundTripGregorian(t *testing.T) {
	t.Parallel()
	// Every day from 1750 to 2100, at a time of day that moves with the date.
	start := time.Date(1750, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
	i := 0
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		instant := day.Add(time.Duration(i%86400000) * time.Millisecond * 997 % (24 * time.Hour))
		fields, err := FromGregorian(instant)
		require.NoError(t, err)
		back, err := ToGregorian(fields.Year, fields.Month, fields.Day, fields.Hour, fields.Minute, fields.Second, fields.Millisecond)
		require.NoError(t, err)
		if !back.Equal(instant) {
			t.Fatalf("round trip of %v through %v gave %v", instant, fields, back)
		}
		i++
	}
}

func TestRoundTripPersian(t *testing.T) {
	t.Parallel()
	for _, year := range []int{1, 2, 622, 1131, 1342, 1370, 1399, 1403, 1404, 2000, 3177, 3178, 5000} {
		for month := 1; month <= 12; month++ {
			daysInMonth, err := DaysInMonth(year, month)
			require.NoError(t, err)
			for day := 1; day <= daysInMonth; day++ {
				want := Fields{Year: year, Month: month, Day: day, Hour: day % 24, Minute: month * 4, Second: 59, Millisecond: year % 1000}
				gregorian, err := ToGregorian(want.Year, want.Month, want.Day, want.Hour, want.Minute, want.Second, want.Millisecond)
				require.NoError(t, err)
				got, err := FromGregorian(gregorian)
				require.NoError(t, err)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}
}

func TestDayOfYear(t *testing.T) {
	t.Parallel()
	require.Equal(t, 1, Fields{Month: 1, Day: 1}.DayOfYear())
	require.Equal(t, 187, Fields{Month: 7, Day: 1}.DayOfYear())
	require.Equal(t, 366, Fields{Month: 12, Day: 30}.DayOfYear())
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()
	_, err := ToGregorian(1370, 7, 31, 0, 0, 0, 0)
	require.True(t, errors.Is(err, ErrInvalidDate))
	require.EqualError(t, err, "invalid Persian date: day 31 out of range [1, 30] for 1370/07")
}
