// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validation

import (
	"fmt"
	"strings"

	"bidcheck/internal/classifier"
	"bidcheck/internal/doctype"
	"bidcheck/internal/ocr"
	"bidcheck/internal/requirements"
)

// Result is the outcome of one validation call. The descriptor strings in
// MatchedDocuments and DuplicateDocuments are part of the caller-facing
// contract; their format must not change.
type Result struct {
	Valid              bool                      `json:"valid"`
	MatchedDocuments   []string                  `json:"matchedDocuments"`
	MissingDocuments   []string                  `json:"missingDocuments"`
	Warnings           []string                  `json:"warnings"`
	DuplicateDocuments []string                  `json:"duplicateDocuments"`
	Message            string                    `json:"message"`
	DocumentDetails    map[string]DocumentDetail `json:"documentDetails,omitempty"`
}

// DocumentDetail carries per-file field evidence for matched documents,
// populated only when detail output is requested.
type DocumentDetail struct {
	DocumentType    string   `json:"documentType"`
	Identifier      string   `json:"identifier,omitempty"`
	ValidatedFields []string `json:"validatedFields,omitempty"`
	MissingFields   []string `json:"missingFields,omitempty"`
}

// Messages returned on the three terminal paths of a validation call.
const (
	MsgNoRequirements = "No required documents specified."
	MsgNoDocuments    = "No documents uploaded."
	MsgAllValidated   = "All required documents validated successfully."
)

func newResult() Result {
	return Result{
		MatchedDocuments:   []string{},
		MissingDocuments:   []string{},
		Warnings:           []string{},
		DuplicateDocuments: []string{},
	}
}

// Aggregate merges per-file classifications, requirement matching, and
// duplicate detection into the final result. It performs no I/O and never
// fails: every problem becomes a warning or a missing entry.
func Aggregate(requiredLabels []string, contents []ocr.Content, classifications []classifier.Classification, duplicates []string) Result {
	result := newResult()
	result.DuplicateDocuments = append(result.DuplicateDocuments, duplicates...)

	if len(requiredLabels) == 0 {
		result.Valid = true
		result.Message = MsgNoRequirements
		return result
	}

	if len(contents) == 0 {
		result.MissingDocuments = append(result.MissingDocuments, requiredLabels...)
		result.Message = MsgNoDocuments
		return result
	}

	byType := classifier.GroupByType(classifications)

	for _, label := range requiredLabels {
		requiredType := requirements.Normalize(label)

		if requiredType == doctype.Unknown {
			result.MissingDocuments = append(result.MissingDocuments, label)
			result.Warnings = append(result.Warnings, "Unknown required document type: "+label)
			continue
		}

		best, found := requirements.Match(requiredType, byType)
		if !found {
			result.MissingDocuments = append(result.MissingDocuments, label)
			continue
		}

		result.MatchedDocuments = append(result.MatchedDocuments, matchDescriptor(label, best))
	}

	// Advisory warnings about the uploads themselves.
	for _, cl := range classifications {
		if cl.Type == doctype.Unknown && hasText(contents, cl.FileName) {
			result.Warnings = append(result.Warnings, cl.FileName+": Could not classify document")
		} else if cl.Ambiguous {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: Classification ambiguous, picked %s (score=%d)", cl.FileName, cl.Type, cl.Score))
		}
	}

	if warning := ocrFailureWarning(requiredLabels, contents); warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	if len(result.MissingDocuments) == 0 {
		result.Valid = true
		result.Message = MsgAllValidated
	} else {
		result.Message = "Missing documents: " + strings.Join(result.MissingDocuments, ", ")
	}

	return result
}

// matchDescriptor renders the fixed caller-facing match format:
// "<label> -> <file> (<TYPE>, score=<n>[, id=<identifier>])".
func matchDescriptor(label string, cl classifier.Classification) string {
	id := ""
	if cl.Identifier != "" {
		id = ", id=" + cl.Identifier
	}
	return fmt.Sprintf("%s -> %s (%s, score=%d%s)", label, cl.FileName, cl.Type, cl.Score, id)
}

func hasText(contents []ocr.Content, fileName string) bool {
	for _, c := range contents {
		if c.FileName == fileName {
			return !c.Empty()
		}
	}
	return false
}

// fileNameTokens are the filename fragments that suggest a file was meant
// to satisfy a required type. Used only to scope OCR-failure warnings to
// files the bidder plausibly uploaded on purpose.
var fileNameTokens = map[doctype.Type][]string{
	doctype.PAN:        {"pan"},
	doctype.Aadhaar:    {"aadhaar", "aadhar"},
	doctype.GST:        {"gst"},
	doctype.IncomeTax:  {"income tax", "itr"},
	doctype.Experience: {"experience"},
	doctype.CompanyReg: {"company", "incorporation"},
	doctype.Insurance:  {"insurance"},
}

// ocrFailureWarning reports extraction failures, but only for files whose
// name suggests a required document. A failed scan of something the tender
// never asked for is not worth a warning.
func ocrFailureWarning(requiredLabels []string, contents []ocr.Content) string {
	tokens := make(map[string]struct{})
	for _, label := range requiredLabels {
		lower := strings.ToLower(strings.TrimSpace(label))
		if lower != "" {
			tokens[lower] = struct{}{}
		}
		for _, t := range fileNameTokens[requirements.Normalize(label)] {
			tokens[t] = struct{}{}
		}
	}

	var failed []string
	for _, c := range contents {
		if !c.Empty() {
			continue
		}
		nameLower := strings.ToLower(c.FileName)
		for t := range tokens {
			if strings.Contains(nameLower, t) {
				failed = append(failed, c.FileName)
				break
			}
		}
	}

	if len(failed) == 0 {
		return ""
	}
	return "OCR failed for: " + strings.Join(failed, ", ")
}
