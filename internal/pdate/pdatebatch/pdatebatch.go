// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package pdatebatch converts newline-separated Persian dates to records.
package pdatebatch

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/bufdev/pdate/internal/pdate/pdatereport"
	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"github.com/bufdev/pdate/internal/pkg/persianpb"
	"github.com/bufdev/pdate/internal/pkg/protoio"
	"google.golang.org/protobuf/types/known/structpb"
)

// Result summarizes a batch conversion.
type Result struct {
	// Converted is the number of lines converted to records.
	Converted int
	// Failed is the number of lines written as error records.
	Failed int
}

// Convert reads one Persian date per line and writes one JSON record per line.
//
// Each record is a google.protobuf.Struct with the fields persianpb.RecordFields.
// A line that fails to parse is logged and written as a record with only the
// input and error fields, and conversion continues. Blank lines are skipped.
func Convert(
	ctx context.Context,
	logger *slog.Logger,
	reader io.Reader,
	writer io.Writer,
	templates pdatereport.Templates,
) (*Result, error) {
	result := &Result{}
	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		record, err := convertLine(line, templates)
		if err != nil {
			logger.Warn("could not convert line", "line", lineNumber, "input", line, "error", err)
			record, err = persianpb.NewErrorStruct(line, err)
			if err != nil {
				return nil, err
			}
			result.Failed++
		} else {
			result.Converted++
		}
		if err := protoio.WriteMessageJSON(writer, record); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	logger.Debug("batch converted", "converted", result.Converted, "failed", result.Failed)
	return result, nil
}

func convertLine(line string, templates pdatereport.Templates) (*structpb.Struct, error) {
	dateTime, err := persiandate.Parse(line)
	if err != nil {
		return nil, err
	}
	return persianpb.DateTimeToStruct(dateTime, templates.Persian, templates.Gregorian)
}
