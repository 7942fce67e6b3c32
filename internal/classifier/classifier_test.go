// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"testing"

	"bidcheck/internal/doctype"
	"bidcheck/internal/ocr"
	"bidcheck/internal/scorer"
)

func newTestClassifier() *Classifier {
	return New(scorer.New(scorer.DefaultContextHits), DefaultMinScore, DefaultAmbiguityGap)
}

func TestClassify_ConfirmedPAN(t *testing.T) {
	c := newTestClassifier()
	got := c.Classify("pan.pdf", "Income Tax Department\nPermanent Account Number ABCDE1234F")

	if got.Type != doctype.PAN {
		t.Errorf("type = %s, want PAN", got.Type)
	}
	if got.Score != scorer.ScoreConfirmedIdentifier {
		t.Errorf("score = %d, want %d", got.Score, scorer.ScoreConfirmedIdentifier)
	}
	if got.Identifier != "ABCDE1234F" {
		t.Errorf("identifier = %q, want ABCDE1234F", got.Identifier)
	}
}

func TestClassify_EmptyAndFallbackText(t *testing.T) {
	c := newTestClassifier()

	cases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t "},
		{"fallback marker", ocr.FallbackMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify("scan.pdf", tc.text)
			if got.Type != doctype.Unknown {
				t.Errorf("type = %s, want UNKNOWN", got.Type)
			}
			if got.Score != 0 {
				t.Errorf("score = %d, want 0", got.Score)
			}
		})
	}
}

func TestClassify_BelowThresholdIsUnknown(t *testing.T) {
	c := newTestClassifier()
	got := c.Classify("notes.txt", "meeting notes about the project schedule")
	if got.Type != doctype.Unknown {
		t.Errorf("type = %s, want UNKNOWN", got.Type)
	}
}

func TestClassify_TieBreaksByCanonicalOrder(t *testing.T) {
	c := newTestClassifier()

	// Two PAN keywords and the income tax phrase score 60 each; PAN comes
	// first in canonical order so the tie goes to PAN.
	got := c.Classify("doc.pdf", "pan card with pan number referencing income tax dues")
	if got.Type != doctype.PAN {
		t.Errorf("type = %s, want PAN on a tie", got.Type)
	}
	if !got.Ambiguous {
		t.Error("tied plausible scores should be flagged ambiguous")
	}
}

func TestClassify_ClearWinnerNotAmbiguous(t *testing.T) {
	c := newTestClassifier()
	got := c.Classify("gst.pdf", "Goods and Services Tax Registration Certificate GSTIN 22ABCDE1234F1Z5")
	if got.Type != doctype.GST {
		t.Errorf("type = %s, want GST", got.Type)
	}
	if got.Ambiguous {
		t.Error("confirmed identifier should not be ambiguous against zero runner-up")
	}
}

func TestClassify_ExactlyOneType(t *testing.T) {
	c := newTestClassifier()
	// Text matching several categories still yields a single assignment.
	got := c.Classify("mixed.pdf", "pan card permanent account number insurance policy experience certificate")
	if got.Type == doctype.Unknown {
		t.Fatal("expected a concrete classification")
	}
	found := false
	for _, typ := range doctype.Concrete {
		if got.Type == typ {
			found = true
		}
	}
	if !found {
		t.Errorf("type %s is not a canonical concrete type", got.Type)
	}
}

func TestGroupByType(t *testing.T) {
	classifications := []Classification{
		{FileName: "a.pdf", Type: doctype.PAN, Score: 60},
		{FileName: "b.pdf", Type: doctype.PAN, Score: 90},
		{FileName: "c.pdf", Type: doctype.GST, Score: 70},
		{FileName: "d.pdf", Type: doctype.PAN, Score: 60},
	}

	byType := GroupByType(classifications)

	pans := byType[doctype.PAN]
	if len(pans) != 3 {
		t.Fatalf("got %d PAN entries, want 3", len(pans))
	}
	if pans[0].FileName != "b.pdf" {
		t.Errorf("highest score should lead, got %s", pans[0].FileName)
	}
	// Equal scores keep upload order.
	if pans[1].FileName != "a.pdf" || pans[2].FileName != "d.pdf" {
		t.Errorf("tied entries out of upload order: %s, %s", pans[1].FileName, pans[2].FileName)
	}

	if len(byType[doctype.GST]) != 1 {
		t.Errorf("got %d GST entries, want 1", len(byType[doctype.GST]))
	}
	if len(byType[doctype.Insurance]) != 0 {
		t.Error("unexpected Insurance bucket")
	}
}
