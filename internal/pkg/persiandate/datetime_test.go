// Copyright 2026 Peter Edge
//
// All rights reserved.

package persiandate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiancal"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	require.Equal(t, MinValue(), New())
	require.Equal(t, MinValue(), DateTime{})
	require.True(t, New().Time().Equal(MinSupportedTime()))
	require.True(t, MaxValue().Time().Equal(MaxSupportedTime()))
	require.Equal(t, "9378/10/10 23:59:59", MaxValue().String())
	require.Equal(t, 997, MaxValue().Millisecond())
}

func TestFromTime(t *testing.T) {
	t.Parallel()
	dateTime := FromTime(time.Date(1991, time.March, 21, 8, 15, 30, int(125*time.Millisecond), time.UTC))
	require.Equal(t, 1370, dateTime.Year())
	require.Equal(t, 1, dateTime.Month())
	require.Equal(t, Farvardin, dateTime.MonthOfYear())
	require.Equal(t, 1, dateTime.Day())
	require.Equal(t, 8, dateTime.Hour())
	require.Equal(t, 15, dateTime.Minute())
	require.Equal(t, 30, dateTime.Second())
	require.Equal(t, 125, dateTime.Millisecond())
	require.Equal(t, Panjshanbeh, dateTime.DayOfWeek())
	require.Equal(t, 31, dateTime.DaysInMonth())
	require.Equal(t, 1, dateTime.DayOfYear())
	require.True(t, dateTime.IsLeapYear())
}

func TestFromTimeDropsLocationAndSubMillisecond(t *testing.T) {
	t.Parallel()
	tehran := time.FixedZone("IRST", 3*60*60+30*60)
	local := FromTime(time.Date(2024, time.March, 20, 10, 0, 0, int(1500*time.Microsecond), tehran))
	utc := FromTime(time.Date(2024, time.March, 20, 10, 0, 0, int(time.Millisecond), time.UTC))
	require.Equal(t, utc, local)
	require.Equal(t, 1, local.Millisecond())
	require.Equal(t, time.UTC, local.Time().Location())
}

func TestClamping(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		desc string
		time time.Time
		want DateTime
	}{
		{"before the safe range", time.Date(1700, time.January, 1, 0, 0, 0, 0, time.UTC), MinValue()},
		{"before the Persian epoch", time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC), MinValue()},
		{"zero time", time.Time{}, MinValue()},
		{"one millisecond early", MinSupportedTime().Add(-time.Millisecond), MinValue()},
		{"past the safe range", time.Date(9999, time.December, 31, 23, 59, 59, int(998*time.Millisecond), time.UTC), MaxValue()},
		{"past year 9999", time.Date(12000, time.January, 1, 0, 0, 0, 0, time.UTC), MaxValue()},
	} {
		require.Equal(t, test.want, FromTime(test.time), test.desc)
	}
	var dateTime DateTime
	dateTime.SetTime(time.Date(1500, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, MinValue(), dateTime)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for _, instant := range []time.Time{
		MinSupportedTime(),
		MaxSupportedTime(),
		time.Date(1991, time.March, 20, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 20, 6, 1, 2, int(3*time.Millisecond), time.UTC),
	} {
		fields := FromTime(instant).Fields()
		back, err := persiancal.ToGregorian(fields.Year, fields.Month, fields.Day, fields.Hour, fields.Minute, fields.Second, fields.Millisecond)
		require.NoError(t, err)
		require.True(t, instant.Equal(back), "%v -> %v -> %v", instant, fields, back)
	}
}

func TestEquality(t *testing.T) {
	t.Parallel()
	instant := time.Date(2024, time.March, 20, 6, 36, 26, 0, time.UTC)
	a := FromTime(instant)
	b := FromTime(instant)
	c := FromTime(instant.Add(time.Millisecond))
	require.True(t, a == b)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.Equal(t, 0, a.Compare(b))
	require.Equal(t, -1, a.Compare(c))
	require.Equal(t, +1, c.Compare(a))
	require.True(t, a.Before(c))
	require.True(t, c.After(a))
	// Equal values hash identically.
	seen := map[DateTime]int{a: 1}
	seen[b]++
	seen[c]++
	require.Len(t, seen, 2)
	require.Equal(t, 2, seen[a])
}

func TestSetters(t *testing.T) {
	t.Parallel()
	dateTime, err := Parse("1370/01/01")
	require.NoError(t, err)
	require.NoError(t, dateTime.SetYear(1403))
	require.NoError(t, dateTime.SetMonthOfYear(Esfand))
	require.NoError(t, dateTime.SetDay(30))
	require.NoError(t, dateTime.SetHour(23))
	require.NoError(t, dateTime.SetMinute(59))
	require.NoError(t, dateTime.SetSecond(58))
	require.NoError(t, dateTime.SetMillisecond(500))
	require.Equal(t, persiancal.Fields{Year: 1403, Month: 12, Day: 30, Hour: 23, Minute: 59, Second: 58, Millisecond: 500}, dateTime.Fields())
	require.True(t, time.Date(2025, time.March, 20, 23, 59, 58, int(500*time.Millisecond), time.UTC).Equal(dateTime.Time()))
	require.NoError(t, dateTime.SetMonth(1))
	require.Equal(t, "1403/01/30 23:59:58", dateTime.String())
}

func TestSetterRejectsInvalidDate(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		desc  string
		input string
		set   func(*DateTime) error
	}{
		{"day 31 in a 30-day month", "1370/07/01", func(d *DateTime) error { return d.SetDay(31) }},
		{"Esfand 30 in a common year", "1403/12/30", func(d *DateTime) error { return d.SetYear(1404) }},
		{"31-day month moved to Mehr", "1370/01/31", func(d *DateTime) error { return d.SetMonthOfYear(Mehr) }},
		{"month 13", "1370/01/01", func(d *DateTime) error { return d.SetMonth(13) }},
		{"hour 24", "1370/01/01", func(d *DateTime) error { return d.SetHour(24) }},
		{"negative minute", "1370/01/01", func(d *DateTime) error { return d.SetMinute(-1) }},
		{"second 60", "1370/01/01", func(d *DateTime) error { return d.SetSecond(60) }},
		{"millisecond 1000", "1370/01/01", func(d *DateTime) error { return d.SetMillisecond(1000) }},
	} {
		dateTime, err := Parse(test.input)
		require.NoError(t, err, test.desc)
		before := dateTime
		require.ErrorIs(t, test.set(&dateTime), ErrInvalidDate, test.desc)
		require.Equal(t, before, dateTime, test.desc)
	}
}

func TestSetterClamps(t *testing.T) {
	t.Parallel()
	dateTime, err := Parse("1370/01/01")
	require.NoError(t, err)
	// Persian 1000 is in 1621, before the supported range.
	require.NoError(t, dateTime.SetYear(1000))
	require.Equal(t, MinValue(), dateTime)
}

func TestAdd(t *testing.T) {
	t.Parallel()
	dateTime, err := Parse("1370/01/01")
	require.NoError(t, err)
	require.Equal(t, "1370/01/02 00:00:00", dateTime.AddDays(1).String())
	require.Equal(t, "1369/12/29 12:00:00", dateTime.AddDays(-0.5).String())
	require.Equal(t, "1370/01/01 01:30:00", dateTime.AddHours(1.5).String())
	require.Equal(t, "1370/01/01 00:01:30", dateTime.AddMinutes(1.5).String())
	require.Equal(t, 250, dateTime.AddMilliseconds(250.4).Millisecond())
	require.True(t, dateTime.Time().AddDate(1, 0, 0).Equal(dateTime.AddYears(1).Time()))
	require.True(t, dateTime.Time().AddDate(0, 7, 0).Equal(dateTime.AddMonths(7).Time()))
	// The receiver is unchanged.
	require.Equal(t, "1370/01/01 00:00:00", dateTime.String())
	// Results are clamped.
	require.Equal(t, MinValue(), MinValue().AddMilliseconds(-1))
	require.Equal(t, MaxValue(), MaxValue().AddDays(1))
	require.Equal(t, MaxValue(), dateTime.AddYears(20000))
	require.Equal(t, MinValue(), dateTime.AddDays(-1e12))
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	daysInMonth, err := DaysInMonth(1403, Esfand)
	require.NoError(t, err)
	require.Equal(t, 30, daysInMonth)
	daysInMonth, err = DaysInMonth(1404, Esfand)
	require.NoError(t, err)
	require.Equal(t, 29, daysInMonth)
	daysInMonth, err = DaysInMonth(1404, Shahrivar)
	require.NoError(t, err)
	require.Equal(t, 31, daysInMonth)
	_, err = DaysInMonth(1404, Month(13))
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestNow(t *testing.T) {
	t.Parallel()
	before := FromTime(time.Now())
	now := Now()
	after := FromTime(time.Now())
	require.False(t, now.Before(before))
	require.False(t, now.After(after))
}

func TestJSON(t *testing.T) {
	t.Parallel()
	dateTime, err := Parse("1370/01/01 12:30:45")
	require.NoError(t, err)
	data, err := json.Marshal(map[string]DateTime{"date": dateTime})
	require.NoError(t, err)
	require.JSONEq(t, `{"date":"1370/01/01 12:30:45"}`, string(data))
	var decoded map[string]DateTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, dateTime, decoded["date"])
	var bad DateTime
	require.Error(t, json.Unmarshal([]byte(`"not a date"`), &bad))
}

func TestTextRoundTripKeepsMilliseconds(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		dateTime DateTime
		want     string
	}{
		{FromTime(time.Date(2014, time.August, 4, 12, 30, 45, int(250*time.Millisecond), time.UTC)), "1393/05/13 12:30:45.250"},
		{FromTime(time.Date(2014, time.August, 4, 12, 30, 45, int(7*time.Millisecond), time.UTC)), "1393/05/13 12:30:45.007"},
		{FromTime(time.Date(2014, time.August, 4, 12, 30, 45, 0, time.UTC)), "1393/05/13 12:30:45"},
		{MinValue(), "1131/10/12 00:00:00"},
		{MaxValue(), "9378/10/10 23:59:59.997"},
	} {
		data, err := test.dateTime.MarshalText()
		require.NoError(t, err)
		require.Equal(t, test.want, string(data))
		var decoded DateTime
		require.NoError(t, decoded.UnmarshalText(data), test.want)
		require.Equal(t, test.dateTime, decoded, test.want)
	}
	data, err := json.Marshal(map[string]DateTime{"date": MaxValue()})
	require.NoError(t, err)
	require.JSONEq(t, `{"date":"9378/10/10 23:59:59.997"}`, string(data))
	var decoded map[string]DateTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, MaxValue(), decoded["date"])
}
