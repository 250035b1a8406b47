// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package converttopersian implements the "convert to-persian" command.
package converttopersian

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/pdatecmd"
	"github.com/bufdev/pdate/internal/pdate/pdatereport"
	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"github.com/spf13/pflag"
)

// NewCommand returns a new convert to-persian command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <gregorian-date> [time]",
		Short: "Convert a Gregorian date such as 2024-03-20 to the Persian calendar",
		Args:  appcmd.MaximumNArgs(2),
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Template overrides the configured Persian template.
	Template string
	// Format prints a record in the given format instead of the rendered date.
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Template, pdatecmd.TemplateFlagName, "", "The Persian template, defaults to the configured template")
	flagSet.StringVar(&f.Format, pdatecmd.FormatFlagName, "", "Print a record with both calendars in this format (table, csv, json)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	if container.NumArgs() == 0 {
		return appcmd.NewInvalidArgumentError("<gregorian-date> is required")
	}
	config, err := pdatecmd.ReadConfig(container)
	if err != nil {
		return err
	}
	templates := pdatecmd.NewTemplates(config, flags.Template, "")
	var timeArg string
	if container.NumArgs() > 1 {
		timeArg = container.Arg(1)
	}
	t, err := pdatecmd.ParseGregorian(container.Arg(0), timeArg)
	if err != nil {
		return err
	}
	dateTime := persiandate.FromTime(t)
	logger := container.Logger()
	if !dateTime.Time().Equal(t) {
		logger.Warn(
			"date clamped to the supported range",
			"input", persiandate.FormatGregorian(t, persiandate.DefaultGregorianFormat),
			"clamped", dateTime.FormatGregorian(persiandate.DefaultGregorianFormat),
		)
	}
	logger.Debug("converted to Persian", "gregorian", t.String(), "persian", dateTime.String())
	if flags.Format == "" {
		_, err := fmt.Fprintln(container.Stdout(), dateTime.Format(templates.Persian))
		return err
	}
	format, err := pdatecmd.ResolveFormat(config, flags.Format)
	if err != nil {
		return err
	}
	return pdatereport.WriteDateTimes(container.Stdout(), format, templates, dateTime)
}
