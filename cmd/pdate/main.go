// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/config"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/convert"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/month"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/names"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/now"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("pdate"))
}

// newRootCommand creates the root pdate command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Convert dates between the Persian (Solar Hijri) and Gregorian calendars",
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			config.NewCommand("config", builder),
			convert.NewCommand("convert", builder),
			month.NewCommand("month", builder),
			names.NewCommand("names", builder),
			now.NewCommand("now", builder),
		},
	}
}
