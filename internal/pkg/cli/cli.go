// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package cli provides CLI utility functions for file I/O.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/bufdev/pdate/internal/standard/xos"
)

// StdioPath is the path that refers to stdin when reading and stdout when writing.
const StdioPath = "-"

// ForReadPath calls f with the file at filePath opened for reading, or with
// stdin if filePath is StdioPath.
//
// A leading ~ in filePath is expanded to the user's home directory.
func ForReadPath(filePath string, stdin io.Reader, f func(io.Reader) error) error {
	if filePath == StdioPath {
		return f(stdin)
	}
	filePath, err := xos.ExpandHome(filePath)
	if err != nil {
		return err
	}
	return ForFile(filePath, f)
}

// ForWritePath calls f with the file at filePath opened for writing, or with
// stdout if filePath is StdioPath.
//
// A leading ~ in filePath is expanded to the user's home directory.
func ForWritePath(filePath string, stdout io.Writer, f func(io.Writer) error) error {
	if filePath == StdioPath {
		return f(stdout)
	}
	filePath, err := xos.ExpandHome(filePath)
	if err != nil {
		return err
	}
	return ForWriteFile(filePath, f)
}

// ForFile calls f for an opened *os.File opened for reading.
func ForFile(filePath string, f func(io.Reader) error) (retErr error) {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer func() {
		retErr = errors.Join(retErr, file.Close())
	}()
	return f(file)
}

// ForWriteFile calls f for an opened *os.File opened for writing, creating the file if needed.
func ForWriteFile(filePath string, f func(io.Writer) error) (retErr error) {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer func() {
		retErr = errors.Join(retErr, file.Close())
	}()
	return f(file)
}
