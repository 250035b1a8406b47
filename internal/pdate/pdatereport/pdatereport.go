// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package pdatereport builds and writes the tabular output of pdate commands.
package pdatereport

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/bufdev/pdate/internal/pkg/cliio"
	"github.com/bufdev/pdate/internal/pkg/persiancal"
	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"github.com/bufdev/pdate/internal/pkg/persianpb"
)

// Templates are the format templates used to render both calendars.
type Templates struct {
	// Persian is the template for persiandate.DateTime.Format.
	Persian string
	// Gregorian is the template for persiandate.DateTime.FormatGregorian.
	Gregorian string
}

// WriteDateTimes writes one record per DateTime.
//
// The columns are persianpb.RecordFields.
func WriteDateTimes(writer io.Writer, format cliio.Format, templates Templates, dateTimes ...persiandate.DateTime) error {
	rows := make([][]string, 0, len(dateTimes))
	for _, dateTime := range dateTimes {
		record, err := persianpb.DateTimeToStruct(dateTime, templates.Persian, templates.Gregorian)
		if err != nil {
			return err
		}
		rows = append(rows, persianpb.StructToRow(record, persianpb.RecordFields))
	}
	return cliio.WriteRows(writer, format, persianpb.RecordFields, rows)
}

// MonthDays returns midnight of every day of the Persian month.
//
// Returns an error wrapping persiandate.ErrInvalidDate if the month does not
// exist or any of its days is outside the range a DateTime can hold.
func MonthDays(year int, month persiandate.Month) ([]persiandate.DateTime, error) {
	daysInMonth, err := persiandate.DaysInMonth(year, month)
	if err != nil {
		return nil, err
	}
	dateTimes := make([]persiandate.DateTime, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		t, err := persiancal.ToGregorian(year, int(month), day, 0, 0, 0, 0)
		if err != nil {
			return nil, err
		}
		if t.Before(persiandate.MinSupportedTime()) || t.After(persiandate.MaxSupportedTime()) {
			return nil, fmt.Errorf(
				"%w: %04d/%02d/%02d is outside the supported range %s to %s",
				persiandate.ErrInvalidDate,
				year,
				int(month),
				day,
				persiandate.MinSupportedTime().Format(time.DateOnly),
				persiandate.MaxSupportedTime().Format(time.DateOnly),
			)
		}
		dateTimes = append(dateTimes, persiandate.FromTime(t))
	}
	return dateTimes, nil
}

// MonthHeaders returns the column headers of WriteMonth.
func MonthHeaders() []string {
	return []string{"day", "day_of_week", "persian", "gregorian"}
}

// WriteMonth writes a calendar of the Persian month, one row per day.
func WriteMonth(writer io.Writer, format cliio.Format, templates Templates, year int, month persiandate.Month) error {
	dateTimes, err := MonthDays(year, month)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(dateTimes))
	for _, dateTime := range dateTimes {
		rows = append(
			rows,
			[]string{
				strconv.Itoa(dateTime.Day()),
				dateTime.DayOfWeek().String(),
				dateTime.Format(templates.Persian),
				dateTime.FormatGregorian(templates.Gregorian),
			},
		)
	}
	return cliio.WriteRows(writer, format, MonthHeaders(), rows)
}

// NamesHeaders returns the column headers of WriteNames.
func NamesHeaders() []string {
	return []string{"kind", "value", "name", "transliteration"}
}

// WriteNames writes the month names followed by the day of week names.
//
// Days of the week are listed from Shanbeh, the first day of the Persian week.
func WriteNames(writer io.Writer, format cliio.Format) error {
	var rows [][]string
	for month := persiandate.Farvardin; month <= persiandate.Esfand; month++ {
		rows = append(rows, []string{"month", strconv.Itoa(int(month)), month.String(), month.Transliteration()})
	}
	for i := range 7 {
		dayOfWeek := (persiandate.Shanbeh + persiandate.DayOfWeek(i)) % 7
		rows = append(rows, []string{"day_of_week", strconv.Itoa(int(dayOfWeek)), dayOfWeek.String(), dayOfWeek.Transliteration()})
	}
	return cliio.WriteRows(writer, format, NamesHeaders(), rows)
}
