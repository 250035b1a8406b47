// Copyright 2026 Peter Edge
//
// All rights reserved.

package pdateconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bufdev/pdate/internal/pkg/cliio"
	"github.com/stretchr/testify/require"
)

func TestReadConfigMissingFile(t *testing.T) {
	t.Parallel()
	config, err := ReadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, NewDefaultConfig(), config)
	require.ErrorContains(t, ValidateConfig(t.TempDir()), "pdate config init")
}

func TestInitConfig(t *testing.T) {
	t.Parallel()
	configDirPath := filepath.Join(t.TempDir(), "pdate")
	filePath, err := InitConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, ConfigFilePath(configDirPath), filePath)
	require.NoError(t, ValidateConfig(configDirPath))
	config, err := ReadConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, NewDefaultConfig(), config)
	_, err = InitConfig(configDirPath)
	require.ErrorContains(t, err, "already exists")
}

func TestReadConfig(t *testing.T) {
	t.Parallel()
	configDirPath := t.TempDir()
	writeConfig(
		t,
		configDirPath,
		`version: v1
persian_template: "{Dn} {D} {Mn} {YYYY}"
format: json
`,
	)
	config, err := ReadConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(
		t,
		&Config{
			PersianTemplate:   "{Dn} {D} {Mn} {YYYY}",
			GregorianTemplate: "{YYYY}-{MM}-{DD} {hh}:{mm}:{ss}",
			Format:            cliio.FormatJSON,
		},
		config,
	)
}

func TestReadConfigInvalid(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		desc string
		data string
	}{
		{"missing version", "format: csv\n"},
		{"wrong version", "version: v2\n"},
		{"unknown field", "version: v1\ncalendar: hijri\n"},
		{"unknown format", "version: v1\nformat: xml\n"},
		{"blank template", "version: v1\npersian_template: \"  \"\n"},
		{"not yaml", "version: [v1\n"},
	} {
		configDirPath := t.TempDir()
		writeConfig(t, configDirPath, test.data)
		_, err := ReadConfig(configDirPath)
		require.Error(t, err, test.desc)
		require.Error(t, ValidateConfig(configDirPath), test.desc)
	}
}

func writeConfig(t *testing.T, configDirPath string, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(ConfigFilePath(configDirPath), []byte(data), 0o600))
}
