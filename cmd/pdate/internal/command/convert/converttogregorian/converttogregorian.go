// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package converttogregorian implements the "convert to-gregorian" command.
package converttogregorian

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

// NewCommand returns a new convert to-gregorian command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <persian-date> [time]",
		Short: "Convert a Persian date such as 1403/01/01 to the Gregorian calendar",
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
	// Template overrides the configured Gregorian template.
	Template string
	// Format prints a record in the given format instead of the rendered date.
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Template, pdatecmd.TemplateFlagName, "", "The Gregorian template, defaults to the configured template")
	flagSet.StringVar(&f.Format, pdatecmd.FormatFlagName, "", "Print a record with both calendars in this format (table, csv, json)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	if container.NumArgs() == 0 {
		return appcmd.NewInvalidArgumentError("<persian-date> is required")
	}
	config, err := pdatecmd.ReadConfig(container)
	if err != nil {
		return err
	}
	templates := pdatecmd.NewTemplates(config, "", flags.Template)
	input := pdatecmd.JoinArgs(container)
	dateTime, err := persiandate.Parse(input)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	container.Logger().Debug(
		"converted to Gregorian",
		"input", input,
		"persian", dateTime.String(),
		"gregorian", dateTime.FormatGregorian(persiandate.DefaultGregorianFormat),
	)
	if flags.Format == "" {
		_, err := fmt.Fprintln(container.Stdout(), dateTime.FormatGregorian(templates.Gregorian))
		return err
	}
	format, err := pdatecmd.ResolveFormat(config, flags.Format)
	if err != nil {
		return err
	}
	return pdatereport.WriteDateTimes(container.Stdout(), format, templates, dateTime)
}
