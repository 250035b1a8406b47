// Copyright 2026 Peter Edge
//
// All rights reserved.

package cliio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()
	format, err := ParseFormat("CSV")
	require.NoError(t, err)
	require.Equal(t, FormatCSV, format)
	_, err = ParseFormat("yaml")
	require.Error(t, err)
}

func TestWriteRows(t *testing.T) {
	t.Parallel()
	headers := []string{"persian", "gregorian"}
	rows := [][]string{
		{"1403/01/01", "2024-03-20"},
		{"1404/01/01", "2025-03-21"},
	}

	var buffer bytes.Buffer
	require.NoError(t, WriteRows(&buffer, FormatTable, headers, rows))
	require.Equal(
		t,
		"persian     gregorian\n1403/01/01  2024-03-20\n1404/01/01  2025-03-21\n",
		buffer.String(),
	)

	buffer.Reset()
	require.NoError(t, WriteRows(&buffer, FormatCSV, headers, rows))
	require.Equal(t, "persian,gregorian\n1403/01/01,2024-03-20\n1404/01/01,2025-03-21\n", buffer.String())

	buffer.Reset()
	require.NoError(t, WriteRows(&buffer, FormatJSON, headers, rows))
	require.Equal(
		t,
		`{"gregorian":"2024-03-20","persian":"1403/01/01"}`+"\n"+`{"gregorian":"2025-03-21","persian":"1404/01/01"}`+"\n",
		buffer.String(),
	)

	require.Error(t, WriteRows(&buffer, Format("xml"), headers, rows))
}
