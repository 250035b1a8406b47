// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package persianpb provides conversion functions between persiandate.DateTime
// and protobuf well-known types.
package persianpb

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Record field names, in column order.
const (
	FieldPersian     = "persian"
	FieldGregorian   = "gregorian"
	FieldYear        = "year"
	FieldMonth       = "month"
	FieldDay         = "day"
	FieldHour        = "hour"
	FieldMinute      = "minute"
	FieldSecond      = "second"
	FieldMillisecond = "millisecond"
	FieldDayOfWeek   = "day_of_week"
	FieldMonthName   = "month_name"
	FieldTimestamp   = "timestamp"
	// FieldInput and FieldError are only set on error records.
	FieldInput = "input"
	FieldError = "error"
)

// RecordFields are the fields of a record created by DateTimeToStruct, in column order.
var RecordFields = []string{
	FieldPersian,
	FieldGregorian,
	FieldYear,
	FieldMonth,
	FieldDay,
	FieldHour,
	FieldMinute,
	FieldSecond,
	FieldMillisecond,
	FieldDayOfWeek,
	FieldMonthName,
	FieldTimestamp,
}

// DateTimeToTimestamp converts a DateTime to a proto Timestamp.
//
// The wall clock of the DateTime is interpreted as UTC.
func DateTimeToTimestamp(dateTime persiandate.DateTime) *timestamppb.Timestamp {
	return timestamppb.New(dateTime.Time())
}

// TimestampToDateTime converts a validated proto Timestamp to a DateTime.
//
// The Timestamp is read as a UTC wall clock and clamped as persiandate.FromTime does.
func TimestampToDateTime(timestamp *timestamppb.Timestamp) (persiandate.DateTime, error) {
	if err := timestamp.CheckValid(); err != nil {
		return persiandate.DateTime{}, err
	}
	return persiandate.FromTime(timestamp.AsTime()), nil
}

// DateTimeToStruct converts a DateTime to a proto Struct record.
//
// The persian and gregorian fields are rendered with the given templates.
func DateTimeToStruct(dateTime persiandate.DateTime, persianTemplate string, gregorianTemplate string) (*structpb.Struct, error) {
	fields := dateTime.Fields()
	return structpb.NewStruct(
		map[string]any{
			FieldPersian:     dateTime.Format(persianTemplate),
			FieldGregorian:   dateTime.FormatGregorian(gregorianTemplate),
			FieldYear:        fields.Year,
			FieldMonth:       fields.Month,
			FieldDay:         fields.Day,
			FieldHour:        fields.Hour,
			FieldMinute:      fields.Minute,
			FieldSecond:      fields.Second,
			FieldMillisecond: fields.Millisecond,
			FieldDayOfWeek:   dateTime.DayOfWeek().String(),
			FieldMonthName:   dateTime.MonthOfYear().String(),
			FieldTimestamp:   DateTimeToTimestamp(dateTime).AsTime().Format(time.RFC3339Nano),
		},
	)
}

// StructToDateTime reads the timestamp field of a record created by DateTimeToStruct.
func StructToDateTime(record *structpb.Struct) (persiandate.DateTime, error) {
	value, ok := record.GetFields()[FieldTimestamp]
	if !ok {
		return persiandate.DateTime{}, fmt.Errorf("record has no %q field", FieldTimestamp)
	}
	stringValue, ok := value.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return persiandate.DateTime{}, fmt.Errorf("record field %q is not a string", FieldTimestamp)
	}
	t, err := time.Parse(time.RFC3339Nano, stringValue.StringValue)
	if err != nil {
		return persiandate.DateTime{}, err
	}
	return TimestampToDateTime(timestamppb.New(t))
}

// NewErrorStruct creates the record written in place of a record for input that failed to convert.
func NewErrorStruct(input string, err error) (*structpb.Struct, error) {
	if err == nil {
		return nil, errors.New("cannot create an error record for a nil error")
	}
	return structpb.NewStruct(
		map[string]any{
			FieldInput: input,
			FieldError: err.Error(),
		},
	)
}

// StructToRow returns the values of the named fields of a record as strings.
//
// Missing fields are empty. Numbers are printed without a fractional part when they are integral.
func StructToRow(record *structpb.Struct, fieldNames []string) []string {
	row := make([]string, len(fieldNames))
	for i, fieldName := range fieldNames {
		value, ok := record.GetFields()[fieldName]
		if !ok {
			continue
		}
		row[i] = valueToString(value)
	}
	return row
}

// *** PRIVATE ***

func valueToString(value *structpb.Value) string {
	switch kind := value.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(kind.NumberValue, 'f', -1, 64)
	case *structpb.Value_BoolValue:
		return strconv.FormatBool(kind.BoolValue)
	case *structpb.Value_NullValue, nil:
		return ""
	default:
		data, err := value.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(data)
	}
}
