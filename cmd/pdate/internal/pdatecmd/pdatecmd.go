// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package pdatecmd provides shared wiring for pdate commands (reading config,
// resolving output flags, parsing Gregorian arguments).
package pdatecmd

import (
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/internal/pdate/pdateconfig"
	"github.com/bufdev/pdate/internal/pdate/pdatereport"
	"github.com/bufdev/pdate/internal/pkg/cliio"
	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"github.com/bufdev/pdate/internal/standard/xtime"
)

const (
	// TemplateFlagName is the flag name for overriding the output template.
	TemplateFlagName = "template"
	// FormatFlagName is the flag name for the output format.
	FormatFlagName = "format"
	// FormatFlagUsage is the usage of the format flag.
	FormatFlagUsage = "Output format (table, csv, json), defaults to the configured format"
)

// ReadConfig reads the configuration file from the container's config directory.
func ReadConfig(container appext.Container) (*pdateconfig.Config, error) {
	return pdateconfig.ReadConfig(container.ConfigDirPath())
}

// NewTemplates returns the configured templates.
//
// Non-empty overrides replace the configured template of that calendar.
func NewTemplates(config *pdateconfig.Config, persianOverride string, gregorianOverride string) pdatereport.Templates {
	templates := pdatereport.Templates{
		Persian:   config.PersianTemplate,
		Gregorian: config.GregorianTemplate,
	}
	if persianOverride != "" {
		templates.Persian = persianOverride
	}
	if gregorianOverride != "" {
		templates.Gregorian = gregorianOverride
	}
	return templates
}

// ResolveFormat returns the format named by the flag value, or the configured
// format if the flag value is empty.
func ResolveFormat(config *pdateconfig.Config, flagValue string) (cliio.Format, error) {
	if flagValue == "" {
		return config.Format, nil
	}
	format, err := cliio.ParseFormat(flagValue)
	if err != nil {
		return "", appcmd.NewInvalidArgumentError(err.Error())
	}
	return format, nil
}

// ParseGregorian parses a "2006-01-02" date and an optional time of day
// accepted by persiandate.ParseTimeOfDay into a UTC wall clock.
//
// Returns an invalid argument error if either does not parse.
func ParseGregorian(dateArg string, timeArg string) (time.Time, error) {
	date, err := xtime.ParseDate(dateArg)
	if err != nil {
		return time.Time{}, appcmd.NewInvalidArgumentErrorf("invalid Gregorian date %q, must be YYYY-MM-DD", dateArg)
	}
	var timeOfDay persiandate.TimeOfDay
	if timeArg != "" {
		timeOfDay, err = persiandate.ParseTimeOfDay(timeArg)
		if err != nil {
			return time.Time{}, appcmd.NewInvalidArgumentErrorf("invalid time of day %q: %v", timeArg, err)
		}
	}
	return time.Date(
		date.Year,
		date.Month,
		date.Day,
		timeOfDay.Hour,
		timeOfDay.Minute,
		timeOfDay.Second,
		timeOfDay.Millisecond*int(time.Millisecond),
		time.UTC,
	), nil
}

// JoinArgs returns the positional arguments of the container joined by spaces.
func JoinArgs(container appext.Container) string {
	var input string
	for i := range container.NumArgs() {
		if i > 0 {
			input += " "
		}
		input += container.Arg(i)
	}
	return input
}
