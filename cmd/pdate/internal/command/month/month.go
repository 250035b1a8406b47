// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package month implements the "month" command.
package month

import (
	"context"
	"errors"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/pdatecmd"
	"github.com/bufdev/pdate/internal/pdate/pdatereport"
	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"github.com/spf13/pflag"
)

// NewCommand returns a new month command that prints every day of a Persian month.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <year> <month>",
		Short: "Print every day of a Persian month with its weekday and Gregorian date",
		Long:  "The month is a number from 1 to 12, or a Persian or transliterated month name such as Esfand.",
		Args:  appcmd.ExactArgs(2),
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Format, pdatecmd.FormatFlagName, "", pdatecmd.FormatFlagUsage)
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	config, err := pdatecmd.ReadConfig(container)
	if err != nil {
		return err
	}
	format, err := pdatecmd.ResolveFormat(config, flags.Format)
	if err != nil {
		return err
	}
	year, err := strconv.Atoi(container.Arg(0))
	if err != nil {
		return appcmd.NewInvalidArgumentErrorf("invalid year %q", container.Arg(0))
	}
	month, err := parseMonth(container.Arg(1))
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	templates := pdatecmd.NewTemplates(config, "", "")
	if err := pdatereport.WriteMonth(container.Stdout(), format, templates, year, month); err != nil {
		if errors.Is(err, persiandate.ErrInvalidDate) {
			return appcmd.NewInvalidArgumentError(err.Error())
		}
		return err
	}
	return nil
}

func parseMonth(s string) (persiandate.Month, error) {
	if value, err := strconv.Atoi(s); err == nil {
		return persiandate.Month(value), nil
	}
	return persiandate.ParseMonthName(s)
}
