// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package requirements maps the free-text document names a tender creator
// types ("GST Registration", "Valid PAN Card") onto canonical types and
// picks the best classified file for each.
package requirements

import (
	"regexp"
	"strings"

	"bidcheck/internal/doctype"
)

// Word-boundary patterns for tokens short enough to hide inside other
// words: "pan" must not match inside "company", "roc" not inside
// "process". "gst" and "uid" are anchored at the front only so "gstin"
// and "uidai" still match.
var (
	panWord = regexp.MustCompile(`\bpan\b`)
	itrWord = regexp.MustCompile(`\bitr\b`)
	rocWord = regexp.MustCompile(`\broc\b`)
	gstWord = regexp.MustCompile(`\bgst`)
	uidWord = regexp.MustCompile(`\buid`)
)

// Normalize maps a required-document label to its canonical type. Rules
// run in fixed precedence order; the first match wins. Labels that match
// nothing come back as Unknown and are reported missing by the caller.
func Normalize(label string) doctype.Type {
	lower := strings.ToLower(strings.TrimSpace(label))
	if lower == "" {
		return doctype.Unknown
	}

	switch {
	case panWord.MatchString(lower):
		return doctype.PAN
	case strings.Contains(lower, "aadhaar"), strings.Contains(lower, "aadhar"), uidWord.MatchString(lower):
		return doctype.Aadhaar
	case gstWord.MatchString(lower):
		return doctype.GST
	case strings.Contains(lower, "income tax"), itrWord.MatchString(lower), strings.Contains(lower, "tax clearance"):
		return doctype.IncomeTax
	case strings.Contains(lower, "experience"):
		return doctype.Experience
	case strings.Contains(lower, "company"), strings.Contains(lower, "incorporation"), rocWord.MatchString(lower):
		return doctype.CompanyReg
	case strings.Contains(lower, "insurance"):
		return doctype.Insurance
	}

	return doctype.Unknown
}
