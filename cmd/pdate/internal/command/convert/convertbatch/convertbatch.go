// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package convertbatch implements the "convert batch" command.
package convertbatch

import (
	"context"
	"io"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/pdatecmd"
	"github.com/bufdev/pdate/internal/pdate/pdatebatch"
	"github.com/bufdev/pdate/internal/pkg/cli"
	"github.com/spf13/pflag"
)

const (
	// inputFlagName is the flag name for the input file path.
	inputFlagName = "input"
	// outputFlagName is the flag name for the output file path.
	outputFlagName = "output"
)

// NewCommand returns a new convert batch command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Convert one Persian date per line to newline-delimited JSON records",
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
	// Input is the path to read dates from, or "-" for stdin.
	Input string
	// Output is the path to write records to, or "-" for stdout.
	Output string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Input, inputFlagName, cli.StdioPath, `The file to read dates from, "-" for stdin`)
	flagSet.StringVar(&f.Output, outputFlagName, cli.StdioPath, `The file to write records to, "-" for stdout`)
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	if flags.Input == "" {
		return appcmd.NewInvalidArgumentErrorf("--%s is required", inputFlagName)
	}
	if flags.Output == "" {
		return appcmd.NewInvalidArgumentErrorf("--%s is required", outputFlagName)
	}
	config, err := pdatecmd.ReadConfig(container)
	if err != nil {
		return err
	}
	templates := pdatecmd.NewTemplates(config, "", "")
	logger := container.Logger()
	return cli.ForReadPath(flags.Input, container.Stdin(), func(reader io.Reader) error {
		return cli.ForWritePath(flags.Output, container.Stdout(), func(writer io.Writer) error {
			result, err := pdatebatch.Convert(ctx, logger, reader, writer, templates)
			if err != nil {
				return err
			}
			if result.Failed > 0 {
				logger.Warn("some lines could not be converted", "converted", result.Converted, "failed", result.Failed)
			}
			return nil
		})
	})
}
