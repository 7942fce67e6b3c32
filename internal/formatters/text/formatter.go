// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"sort"
	"strings"

	"bidcheck/internal/formatters"
	"bidcheck/internal/validation"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":   color.New(color.FgGreen),
			"yellow":  color.New(color.FgYellow),
			"red":     color.New(color.FgRed),
			"cyan":    color.New(color.FgCyan),
			"magenta": color.New(color.FgMagenta),
			"white":   color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable validation report with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result validation.Result, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder

	f.appendVerdict(&builder, result, options)

	if options.Quiet {
		return builder.String(), nil
	}

	f.appendSection(&builder, "Matched documents", result.MatchedDocuments, "green", "+", options)
	f.appendSection(&builder, "Missing documents", result.MissingDocuments, "red", "-", options)
	f.appendSection(&builder, "Duplicates", result.DuplicateDocuments, "yellow", "=", options)
	f.appendSection(&builder, "Warnings", result.Warnings, "yellow", "!", options)

	if options.Verbose && len(result.DocumentDetails) > 0 {
		f.appendDetails(&builder, result, options)
	}

	return builder.String(), nil
}

func (f *Formatter) appendVerdict(builder *strings.Builder, result validation.Result, options formatters.FormatterOptions) {
	verdict := "INVALID"
	verdictColor := f.colors["red"]
	if result.Valid {
		verdict = "VALID"
		verdictColor = f.colors["green"]
	}

	if !options.NoColor {
		verdictColor.Fprintf(builder, "%s", verdict)
		fmt.Fprintf(builder, ": %s\n", result.Message)
	} else {
		fmt.Fprintf(builder, "%s: %s\n", verdict, result.Message)
	}
}

func (f *Formatter) appendSection(builder *strings.Builder, title string, entries []string, colorName, marker string, options formatters.FormatterOptions) {
	if len(entries) == 0 {
		return
	}

	fmt.Fprintln(builder)
	if !options.NoColor {
		f.colors["white"].Fprintf(builder, "%s (%d):\n", title, len(entries))
	} else {
		fmt.Fprintf(builder, "%s (%d):\n", title, len(entries))
	}

	for _, entry := range entries {
		if !options.NoColor {
			f.colors[colorName].Fprintf(builder, "  %s ", marker)
			fmt.Fprintf(builder, "%s\n", entry)
		} else {
			fmt.Fprintf(builder, "  %s %s\n", marker, entry)
		}
	}
}

func (f *Formatter) appendDetails(builder *strings.Builder, result validation.Result, options formatters.FormatterOptions) {
	// Map iteration order is random; sort for stable output.
	names := make([]string, 0, len(result.DocumentDetails))
	for name := range result.DocumentDetails {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(builder)
	if !options.NoColor {
		f.colors["white"].Fprintf(builder, "Document details:\n")
	} else {
		fmt.Fprintf(builder, "Document details:\n")
	}

	for _, name := range names {
		detail := result.DocumentDetails[name]
		if !options.NoColor {
			f.colors["cyan"].Fprintf(builder, "  %s", name)
			fmt.Fprintf(builder, " (%s)\n", detail.DocumentType)
		} else {
			fmt.Fprintf(builder, "  %s (%s)\n", name, detail.DocumentType)
		}
		if detail.Identifier != "" {
			fmt.Fprintf(builder, "    identifier: %s\n", detail.Identifier)
		}
		if len(detail.ValidatedFields) > 0 {
			fmt.Fprintf(builder, "    validated fields: %s\n", strings.Join(detail.ValidatedFields, ", "))
		}
		if len(detail.MissingFields) > 0 {
			fmt.Fprintf(builder, "    missing fields: %s\n", strings.Join(detail.MissingFields, ", "))
		}
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
