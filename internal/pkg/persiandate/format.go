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

const (
	// DefaultFormat is the template used by DateTime.String.
	DefaultFormat = "{YYYY}/{MM}/{DD} {hh}:{mm}:{ss}"
	// DefaultGregorianFormat is the template used for Gregorian output.
	DefaultGregorianFormat = "{YYYY}-{MM}-{DD} {hh}:{mm}:{ss}"
)

// formatToken is a template token and the function producing its replacement.
type formatToken[T any] struct {
	text    string
	resolve func(T) string
}

// persianValue is what Persian format tokens are resolved against.
type persianValue struct {
	fields    persiancal.Fields
	dayOfWeek DayOfWeek
}

// persianTokens are tried in order at each "{", so longer tokens of a family
// come before shorter ones.
var persianTokens = []formatToken[persianValue]{
	{"{YYYY}", func(v persianValue) string { return pad4(v.fields.Year) }},
	{"{YY}", func(v persianValue) string { return pad4(v.fields.Year)[2:] }},
	{"{MM}", func(v persianValue) string { return pad2(v.fields.Month) }},
	{"{Mn}", func(v persianValue) string { return Month(v.fields.Month).String() }},
	{"{M}", func(v persianValue) string { return strconv.Itoa(v.fields.Month) }},
	{"{DD}", func(v persianValue) string { return pad2(v.fields.Day) }},
	{"{Dn}", func(v persianValue) string { return v.dayOfWeek.String() }},
	{"{D}", func(v persianValue) string { return strconv.Itoa(v.fields.Day) }},
	{"{hh}", func(v persianValue) string { return pad2(v.fields.Hour) }},
	{"{h}", func(v persianValue) string { return strconv.Itoa(v.fields.Hour) }},
	{"{mm}", func(v persianValue) string { return pad2(v.fields.Minute) }},
	{"{m}", func(v persianValue) string { return strconv.Itoa(v.fields.Minute) }},
	{"{ss}", func(v persianValue) string { return pad2(v.fields.Second) }},
	{"{s}", func(v persianValue) string { return strconv.Itoa(v.fields.Second) }},
}

var gregorianTokens = []formatToken[time.Time]{
	{"{YYYY}", func(t time.Time) string { return pad4(t.Year()) }},
	{"{YY}", func(t time.Time) string { return pad4(t.Year())[2:] }},
	{"{MM}", func(t time.Time) string { return pad2(int(t.Month())) }},
	{"{DD}", func(t time.Time) string { return pad2(t.Day()) }},
	{"{hh}", func(t time.Time) string { return pad2(t.Hour()) }},
	{"{mm}", func(t time.Time) string { return pad2(t.Minute()) }},
	{"{ss}", func(t time.Time) string { return pad2(t.Second()) }},
}

// Format renders d in the Persian calendar using a template.
//
// Recognized tokens:
//
//	{YYYY}  4-digit year          {YY}  last 2 digits of the year
//	{MM}    2-digit month         {M}   month
//	{Mn}    month name
//	{DD}    2-digit day           {D}   day
//	{Dn}    day of week name
//	{hh}    2-digit hour (0-23)   {h}   hour
//	{mm}    2-digit minute        {m}   minute
//	{ss}    2-digit second        {s}   second
//
// Every occurrence of a token is replaced. Any other text, including unknown
// tokens, is copied as is.
func (d DateTime) Format(template string) string {
	return substitute(
		template,
		persianTokens,
		persianValue{
			fields:    d.Fields(),
			dayOfWeek: d.DayOfWeek(),
		},
	)
}

// String returns d formatted with DefaultFormat.
func (d DateTime) String() string {
	return d.Format(DefaultFormat)
}

// FormatGregorian renders the Gregorian instant of d using a template.
//
// See the package function FormatGregorian for the recognized tokens.
func (d DateTime) FormatGregorian(template string) string {
	return FormatGregorian(d.Time(), template)
}

// FormatGregorian renders the wall clock of t in the Gregorian calendar.
//
// Recognized tokens are {YYYY}, {YY}, {MM}, {DD}, {hh}, {mm} and {ss}, with
// the same meaning as in DateTime.Format.
func FormatGregorian(t time.Time, template string) string {
	return substitute(template, gregorianTokens, t)
}

// *** PRIVATE ***

// substitute replaces tokens in a single left-to-right pass.
//
// Replacement text is never rescanned.
func substitute[T any](template string, tokens []formatToken[T], value T) string {
	var builder strings.Builder
	builder.Grow(len(template))
	for len(template) > 0 {
		index := strings.IndexByte(template, '{')
		if index < 0 {
			builder.WriteString(template)
			break
		}
		builder.WriteString(template[:index])
		template = template[index:]
		token, ok := matchToken(template, tokens)
		if !ok {
			builder.WriteByte('{')
			template = template[1:]
			continue
		}
		builder.WriteString(token.resolve(value))
		template = template[len(token.text):]
	}
	return builder.String()
}

func matchToken[T any](s string, tokens []formatToken[T]) (formatToken[T], bool) {
	for _, token := range tokens {
		if strings.HasPrefix(s, token.text) {
			return token, true
		}
	}
	return formatToken[T]{}, false
}

func pad2(value int) string {
	return fmt.Sprintf("%02d", value)
}

func pad4(value int) string {
	return fmt.Sprintf("%04d", value)
}
