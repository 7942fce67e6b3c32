// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetConfigDir returns the bidcheck configuration directory.
// BIDCHECK_CONFIG_DIR overrides platform defaults on every OS.
func GetConfigDir() string {
	if dir := os.Getenv("BIDCHECK_CONFIG_DIR"); dir != "" {
		return NormalizePath(dir)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "bidcheck")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "bidcheck")
}

// GetConfigFile returns the path to the main config file.
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// NormalizePath normalizes a file path for the current platform.
func NormalizePath(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(filepath.FromSlash(path))
}

// ValidatePath validates a path for the current platform.
func ValidatePath(path string) error {
	if path == "" {
		return nil
	}

	for _, char := range path {
		if char == 0 {
			return &PathValidationError{Path: path, Reason: "contains null byte"}
		}
	}

	if runtime.GOOS == "windows" {
		return validateWindowsPath(path)
	}
	return nil
}

// validateWindowsPath rejects Windows reserved characters. The colon is
// allowed only as part of a drive letter (position 1).
func validateWindowsPath(path string) error {
	invalidChars := []rune{'<', '>', ':', '"', '|', '?', '*'}
	for i, char := range path {
		for _, invalid := range invalidChars {
			if char == invalid {
				if char == ':' && i == 1 {
					continue
				}
				return &PathValidationError{
					Path:   path,
					Reason: "contains invalid character: " + string(char),
				}
			}
		}
	}
	return nil
}

// PathValidationError represents a path validation error
type PathValidationError struct {
	Path   string
	Reason string
}

func (e *PathValidationError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Reason
}
