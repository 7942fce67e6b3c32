// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"bidcheck/internal/formatters"
	"bidcheck/internal/validation"

	"gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML format output, same structure as JSON"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

type yamlResult struct {
	Valid              bool                                 `yaml:"valid"`
	MatchedDocuments   []string                             `yaml:"matchedDocuments"`
	MissingDocuments   []string                             `yaml:"missingDocuments"`
	Warnings           []string                             `yaml:"warnings"`
	DuplicateDocuments []string                             `yaml:"duplicateDocuments"`
	Message            string                               `yaml:"message"`
	DocumentDetails    map[string]validation.DocumentDetail `yaml:"documentDetails,omitempty"`
}

func (f *Formatter) Format(result validation.Result, options formatters.FormatterOptions) (string, error) {
	out := yamlResult{
		Valid:              result.Valid,
		MatchedDocuments:   result.MatchedDocuments,
		MissingDocuments:   result.MissingDocuments,
		Warnings:           result.Warnings,
		DuplicateDocuments: result.DuplicateDocuments,
		Message:            result.Message,
	}
	if options.Verbose {
		out.DocumentDetails = result.DocumentDetails
	}

	yamlData, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}

	return string(yamlData), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
