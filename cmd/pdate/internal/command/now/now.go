// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package now implements the "now" command.
package now

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

// NewCommand returns a new now command that prints the current local time in the Persian calendar.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Print the current local date and time in the Persian calendar",
		Args:  appcmd.NoArgs,
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
	config, err := pdatecmd.ReadConfig(container)
	if err != nil {
		return err
	}
	templates := pdatecmd.NewTemplates(config, flags.Template, "")
	dateTime := persiandate.Now()
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
