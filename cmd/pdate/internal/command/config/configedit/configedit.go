// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configedit implements the "config edit" command.
package configedit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/internal/pdate/pdateconfig"
)

// editorEnvKeys are the environment variables consulted for the editor, in order.
var editorEnvKeys = []string{"VISUAL", "EDITOR"}

// NewCommand returns a new config edit command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Open the pdate configuration file in $VISUAL or $EDITOR",
		Long: `Open the pdate configuration file in an editor, creating it from the default template if needed.

The editor is taken from $VISUAL, then $EDITOR, and may include arguments, such as "code --wait".
The file is validated once the editor exits.`,
		Args: appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container)
			},
		),
	}
}

func run(ctx context.Context, container appext.Container) error {
	editorArgs, err := editorCommand(container.Env)
	if err != nil {
		return err
	}
	configDirPath := container.ConfigDirPath()
	configFilePath := pdateconfig.ConfigFilePath(configDirPath)
	if _, err := os.Stat(configFilePath); errors.Is(err, fs.ErrNotExist) {
		if _, err := pdateconfig.InitConfig(configDirPath); err != nil {
			return err
		}
		container.Logger().Info("created configuration file", "path", configFilePath)
	}
	cmd := exec.CommandContext(ctx, editorArgs[0], append(editorArgs[1:], configFilePath)...)
	cmd.Stdin = container.Stdin()
	cmd.Stdout = container.Stdout()
	cmd.Stderr = container.Stderr()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q exited with error: %w", editorArgs[0], err)
	}
	if err := pdateconfig.ValidateConfig(configDirPath); err != nil {
		return fmt.Errorf("edited configuration is invalid: %w", err)
	}
	_, err = fmt.Fprintln(container.Stdout(), configFilePath)
	return err
}

// editorCommand returns the editor program and its arguments from the first
// non-blank variable in editorEnvKeys.
func editorCommand(getenv func(string) string) ([]string, error) {
	for _, key := range editorEnvKeys {
		if fields := strings.Fields(getenv(key)); len(fields) > 0 {
			return fields, nil
		}
	}
	return nil, appcmd.NewInvalidArgumentErrorf("set $%s or $%s to edit the configuration file", editorEnvKeys[0], editorEnvKeys[1])
}
