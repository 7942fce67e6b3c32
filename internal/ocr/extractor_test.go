// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ocr

import (
	"context"
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestExtract_TextFile(t *testing.T) {
	e := NewFileExtractor(0, nil)
	content := e.Extract(context.Background(), "doc.txt", []byte("pan card details"))

	if content.FileName != "doc.txt" {
		t.Errorf("file name = %q", content.FileName)
	}
	if content.Text != "pan card details" {
		t.Errorf("text = %q", content.Text)
	}
	if content.Empty() {
		t.Error("content should not be empty")
	}
}

func TestExtract_DegradesToFallback(t *testing.T) {
	e := NewFileExtractor(0, nil)

	cases := []struct {
		name     string
		fileName string
		raw      []byte
	}{
		{"empty bytes", "scan.pdf", nil},
		{"not a pdf", "scan.pdf", []byte("plain text pretending to be pdf")},
		{"image upload", "scan.jpg", []byte{0xFF, 0xD8, 0xFF}},
		{"unsupported extension", "archive.zip", []byte{0x50, 0x4B}},
		{"empty text file", "blank.txt", []byte("   ")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := e.Extract(context.Background(), tc.fileName, tc.raw)
			if content.Text != FallbackMarker {
				t.Errorf("text = %q, want fallback marker", content.Text)
			}
			if !content.Empty() {
				t.Error("fallback content should report empty")
			}
		})
	}
}

func TestContent_Empty(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"blank", "", true},
		{"whitespace", " \n\t", true},
		{"fallback marker", FallbackMarker, true},
		{"real text", "gst registration", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Content{FileName: "f", Text: tc.text}
			if got := c.Empty(); got != tc.want {
				t.Errorf("Empty() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCleanExtractedText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"trims lines", "  name: a  \n\t value: b ", "name: a\nvalue: b"},
		{"drops empty lines", "a\n\n\nb", "a\nb"},
		{"tabs to spaces", "a\tb", "a b"},
		{"empty input", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanExtractedText(tc.in); got != tc.want {
				t.Errorf("cleanExtractedText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestJoinRowText(t *testing.T) {
	elements := []pdf.Text{
		{S: "Number", X: 120},
		{S: "Account", X: 60},
		{S: "Permanent", X: 10},
	}
	if got := joinRowText(elements); got != "Permanent Account Number" {
		t.Errorf("joinRowText = %q", got)
	}
}

func TestAverageY(t *testing.T) {
	elements := []pdf.Text{{Y: 10}, {Y: 30}}
	if got := averageY(elements); got != 20 {
		t.Errorf("averageY = %v, want 20", got)
	}
	if got := averageY(nil); got != 0 {
		t.Errorf("averageY(nil) = %v, want 0", got)
	}
}
