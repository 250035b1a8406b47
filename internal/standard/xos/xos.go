// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package xos provides extensions to the standard os package.
package xos

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" path element with the user's home directory.
//
// Only "~" itself and paths starting with "~" followed by a separator are
// expanded. Other paths, including "~name" forms, are returned unchanged.
func ExpandHome(path string) (string, error) {
	rest, ok := homeRelative(path)
	if !ok {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not expand %q: %w", path, err)
	}
	return filepath.Join(homeDir, rest), nil
}

// homeRelative returns the part of path after a leading "~" element.
func homeRelative(path string) (string, bool) {
	if path == "~" {
		return "", true
	}
	if !strings.HasPrefix(path, "~") || len(path) < 2 || !os.IsPathSeparator(path[1]) {
		return "", false
	}
	return path[2:], true
}
