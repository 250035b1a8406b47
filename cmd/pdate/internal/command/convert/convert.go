// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package convert implements the "convert" command group.
package convert

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/convert/convertbatch"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/convert/converttogregorian"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/convert/converttopersian"
)

// NewCommand returns a new convert command group.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Convert dates between the Persian and Gregorian calendars",
		SubCommands: []*appcmd.Command{
			converttogregorian.NewCommand("to-gregorian", builder),
			converttopersian.NewCommand("to-persian", builder),
			convertbatch.NewCommand("batch", builder),
		},
	}
}
