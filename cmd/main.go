// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"bidcheck/internal/classifier"
	"bidcheck/internal/config"
	"bidcheck/internal/duplicate"
	"bidcheck/internal/observability"
	"bidcheck/internal/ocr"
	"bidcheck/internal/paths"
	"bidcheck/internal/scorer"
	"bidcheck/internal/validation"
	"bidcheck/internal/version"

	"bidcheck/internal/formatters"
	_ "bidcheck/internal/formatters/json"
	_ "bidcheck/internal/formatters/text"
	_ "bidcheck/internal/formatters/yaml"

	"golang.org/x/term"
)

// configFlags holds command line flag values
type configFlags struct {
	outputFormat string
	verbose      bool
	debug        bool
	noColor      bool
	quiet        bool
	workers      int
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format  string
	verbose bool
	debug   bool
	noColor bool
	quiet   bool
	workers int
}

// resolveConfiguration resolves final values from config file, profile, and
// command line flags, in that order of precedence.
func resolveConfiguration(cfg *config.Config, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{
		format:  cfg.Defaults.Format,
		verbose: cfg.Defaults.Verbose,
		debug:   cfg.Defaults.Debug,
		noColor: cfg.Defaults.NoColor,
		quiet:   cfg.Defaults.Quiet,
		workers: cfg.Defaults.Workers,
	}

	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}
	if isFlagSet("quiet") {
		final.quiet = flags.quiet
	}
	if isFlagSet("workers") && flags.workers > 0 {
		final.workers = flags.workers
	}

	// Colored output only makes sense on a terminal.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		final.noColor = true
	}

	return final
}

func main() {
	inputPath := flag.String("file", "", "Path to a document file, directory, or glob pattern (e.g., uploads/*.pdf)")
	requiredList := flag.String("required", "", "Comma-separated required document labels from the tender notice")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles from config file")
	outputFile := flag.String("output", "", "Write the report to a file instead of stdout")

	flags := &configFlags{}
	flag.StringVar(&flags.outputFormat, "format", "text", "Output format: text, json, or yaml")
	flag.BoolVar(&flags.verbose, "verbose", false, "Include per-document field detail in the report")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug output")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.quiet, "quiet", false, "Only print the verdict line")
	flag.IntVar(&flags.workers, "workers", 0, "Number of concurrent extraction workers")

	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	cfg := config.LoadConfigOrDefault(*configFile)

	if *listProfiles {
		names := cfg.ListProfiles()
		sort.Strings(names)
		if len(names) == 0 {
			fmt.Println("No profiles available.")
			return
		}
		fmt.Println("Available profiles:")
		for _, name := range names {
			if profile := cfg.GetProfile(name); profile != nil && profile.Description != "" {
				fmt.Printf("  - %s: %s\n", name, profile.Description)
			} else {
				fmt.Printf("  - %s\n", name)
			}
		}
		return
	}

	if *profileName != "" {
		if err := cfg.ApplyProfile(*profileName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	}

	finalConfig := resolveConfiguration(cfg, flags)

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: input file or directory is required")
		flag.Usage()
		os.Exit(2)
	}

	requiredLabels := splitLabels(*requiredList)

	files, err := loadFiles(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	result := runValidation(cfg, finalConfig, files, requiredLabels)

	output, err := formatters.Export(finalConfig.format, result, formatters.FormatterOptions{
		Verbose: finalConfig.verbose,
		NoColor: finalConfig.noColor,
		Quiet:   finalConfig.quiet,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *outputFile != "" {
		if err := paths.ValidatePath(*outputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		if err := os.WriteFile(filepath.Clean(*outputFile), []byte(output), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(2)
		}
	} else {
		fmt.Print(output)
	}

	if !result.Valid {
		os.Exit(1)
	}
}

// runValidation wires the pipeline from resolved configuration and runs it.
func runValidation(cfg *config.Config, finalConfig *finalConfiguration, files []validation.File, requiredLabels []string) validation.Result {
	var observer *observability.StandardObserver
	if finalConfig.debug {
		debugObserver := observability.NewDebugObserver(os.Stderr)
		observer = debugObserver.StandardObserver
		observer.DebugObserver = debugObserver
	} else {
		observer = observability.NewStandardObserver(observability.ObservabilityMetrics, os.Stderr)
	}

	sc := scorer.New(cfg.Scoring.ContextKeywordHits)
	engine := validation.NewEngine(
		ocr.NewFileExtractor(cfg.Extraction.MaxPages, observer),
		classifier.New(sc, cfg.Scoring.MinClassifyScore, cfg.Scoring.AmbiguityGap),
		sc,
		duplicate.New(observer),
		observer,
		validation.Options{
			Workers:        finalConfig.workers,
			FileTimeout:    time.Duration(cfg.Extraction.FileTimeoutSeconds) * time.Second,
			IncludeDetails: finalConfig.verbose,
		},
	)

	return engine.Validate(context.Background(), files, requiredLabels)
}

// loadFiles resolves a file, directory, or glob pattern into in-memory
// documents, in deterministic name order for directories and globs.
func loadFiles(path string) ([]validation.File, error) {
	info, err := os.Stat(path)

	var names []string
	switch {
	case err == nil && info.IsDir():
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", path, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				names = append(names, filepath.Join(path, entry.Name()))
			}
		}
	case err == nil:
		names = []string{path}
	default:
		// Not a plain path, try it as a glob pattern.
		matches, globErr := filepath.Glob(path)
		if globErr != nil || len(matches) == 0 {
			return nil, fmt.Errorf("no files found at %s", path)
		}
		sort.Strings(matches)
		names = matches
	}

	files := make([]validation.File, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Clean(name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		files = append(files, validation.File{Name: filepath.Base(name), Data: data})
	}
	return files, nil
}

func splitLabels(list string) []string {
	var labels []string
	for _, label := range strings.Split(list, ",") {
		label = strings.TrimSpace(label)
		if label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// isFlagSet reports whether a flag was explicitly passed on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
