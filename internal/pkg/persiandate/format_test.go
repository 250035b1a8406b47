// Copyright 2026 Peter Edge
//
// All rights reserved.

package persiandate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	dateTime, err := Parse("1370/01/01")
	require.NoError(t, err)
	require.Equal(t, "1370/01/01", dateTime.Format("{YYYY}/{MM}/{DD}"))
	require.Equal(t, "1370/01/01 00:00:00", dateTime.Format(DefaultFormat))
	require.Equal(t, "1370/01/01 00:00:00", dateTime.String())

	dateTime, err = Parse("1403/01/07 09:05:03")
	require.NoError(t, err)
	for _, test := range []struct {
		template string
		want     string
	}{
		{"{YYYY}", "1403"},
		{"{YY}", "03"},
		{"{MM}/{M}", "01/1"},
		{"{Mn}", "فروردین"},
		{"{DD}/{D}", "07/7"},
		{"{Dn}", "سه شنبه"},
		{"{hh}:{h}", "09:9"},
		{"{mm}:{m}", "05:5"},
		{"{ss}:{s}", "03:3"},
		{"{Dn} {D} {Mn} {YYYY}", "سه شنبه 7 فروردین 1403"},
		{"{D}-{D}", "7-7"},
		{"year {YYYY}!", "year 1403!"},
		{"{YYYYY} {X} {", "{YYYYY} {X} {"},
		{"{{YYYY}}", "{1403}"},
		{"", ""},
	} {
		require.Equal(t, test.want, dateTime.Format(test.template), test.template)
	}
}

func TestFormatPadsSmallYears(t *testing.T) {
	t.Parallel()
	// Persian year 1131 is the smallest a DateTime can hold.
	require.Equal(t, "31", MinValue().Format("{YY}"))
	require.Equal(t, "1131", MinValue().Format("{YYYY}"))
	require.Equal(t, "0622", FormatGregorian(time.Date(622, time.March, 22, 0, 0, 0, 0, time.UTC), "{YYYY}"))
	require.Equal(t, "22", FormatGregorian(time.Date(622, time.March, 22, 0, 0, 0, 0, time.UTC), "{YY}"))
}

func TestFormatGregorian(t *testing.T) {
	t.Parallel()
	dateTime, err := Parse("1403/01/01 06:36:26")
	require.NoError(t, err)
	require.Equal(t, "2024-03-20 06:36:26", dateTime.FormatGregorian(DefaultGregorianFormat))
	require.Equal(t, "20/03/24", dateTime.FormatGregorian("{DD}/{MM}/{YY}"))
	// Persian-only tokens are not recognized.
	require.Equal(t, "{Mn} {D}", dateTime.FormatGregorian("{Mn} {D}"))
}
