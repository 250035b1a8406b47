// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package names implements the "names" command.
package names

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/pdatecmd"
	"github.com/bufdev/pdate/internal/pdate/pdatereport"
	"github.com/spf13/pflag"
)

// NewCommand returns a new names command that prints the month and day of week names.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Print the Persian month and day of week names",
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
	return pdatereport.WriteNames(container.Stdout(), format)
}
