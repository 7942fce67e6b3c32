// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package scorer

import (
	"testing"

	"bidcheck/internal/doctype"
)

func TestScore_ConfirmedIdentifier(t *testing.T) {
	s := New(DefaultContextHits)

	cases := []struct {
		name   string
		typ    doctype.Type
		text   string
		wantID string
	}{
		{
			"pan with strong context",
			doctype.PAN,
			"Income Tax Department\nPermanent Account Number ABCDE1234F",
			"ABCDE1234F",
		},
		{
			"aadhaar with strong context",
			doctype.Aadhaar,
			"UIDAI Aadhaar 1234 5678 9012",
			"123456789012",
		},
		{
			"gstin with strong context",
			doctype.GST,
			"Goods and Services Tax Registration Certificate GSTIN 22ABCDE1234F1Z5",
			"22ABCDE1234F1Z5",
		},
		{
			"cin with strong context",
			doctype.CompanyReg,
			"Certificate of Incorporation\nCIN: U12345MH2010PTC123456",
			"U12345MH2010PTC123456",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Score(tc.typ, tc.text)
			if got.Score != ScoreConfirmedIdentifier {
				t.Errorf("score = %d, want %d", got.Score, ScoreConfirmedIdentifier)
			}
			if got.Identifier != tc.wantID {
				t.Errorf("identifier = %q, want %q", got.Identifier, tc.wantID)
			}
		})
	}
}

func TestScore_UnconfirmedIdentifierDiscarded(t *testing.T) {
	s := New(DefaultContextHits)

	// PAN-shaped token with no PAN context at all: must not score and the
	// identifier must not leak into the result.
	got := s.Score(doctype.PAN, "invoice reference ABCDE1234F for catering services")
	if got.Score != 0 {
		t.Errorf("score = %d, want 0", got.Score)
	}
	if got.Identifier != "" {
		t.Errorf("identifier = %q, want empty", got.Identifier)
	}
}

func TestScore_PANInsideGSTCertificate(t *testing.T) {
	s := New(DefaultContextHits)

	// A GSTIN embeds a PAN-shaped substring. The GST certificate text has
	// no PAN keywords, so PAN must stay at zero while GST confirms.
	text := "Goods and Services Tax Registration Certificate\nGSTIN: 22ABCDE1234F1Z5\nLegal Name: Sharma Traders"

	pan := s.Score(doctype.PAN, text)
	if pan.Score != 0 {
		t.Errorf("PAN score = %d, want 0", pan.Score)
	}

	gst := s.Score(doctype.GST, text)
	if gst.Score != ScoreConfirmedIdentifier {
		t.Errorf("GST score = %d, want %d", gst.Score, ScoreConfirmedIdentifier)
	}
	if gst.Identifier != "22ABCDE1234F1Z5" {
		t.Errorf("GST identifier = %q", gst.Identifier)
	}
}

func TestScore_KeywordOnly(t *testing.T) {
	s := New(DefaultContextHits)

	cases := []struct {
		name string
		typ  doctype.Type
		text string
		want int
	}{
		{
			"pan keywords without number",
			doctype.PAN,
			"copy of PAN Card issued as Permanent Account Number",
			ScoreKeywordWeak,
		},
		{
			"single pan keyword insufficient",
			doctype.PAN,
			"mentions pan once in passing",
			0,
		},
		{
			"company registration single keyword",
			doctype.CompanyReg,
			"Certificate of Incorporation for Sharma Constructions",
			ScoreKeywordStrong,
		},
		{
			"insurance single keyword",
			doctype.Insurance,
			"insurance policy for works contract",
			ScoreKeywordStrong,
		},
		{
			"income tax plain",
			doctype.IncomeTax,
			"income tax clearance produced on request",
			ScoreKeywordWeak,
		},
		{
			"experience certificate keyword",
			doctype.Experience,
			"work experience certificate of the bidder",
			ScoreKeywordStrong,
		},
		{
			"empty text",
			doctype.PAN,
			"   ",
			0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Score(tc.typ, tc.text)
			if got.Score != tc.want {
				t.Errorf("score = %d, want %d", got.Score, tc.want)
			}
		})
	}
}

func TestScore_IncomeTaxBoost(t *testing.T) {
	s := New(DefaultContextHits)

	cases := []struct {
		name string
		text string
		want int
	}{
		{"assessment year boosts", "income tax return for assessment year 2023-24", ScoreIncomeTaxBoosted},
		{"itr boosts", "acknowledgement of ITR filing", ScoreIncomeTaxBoosted},
		{"return of income boosts", "return of income filed under the income tax act", ScoreIncomeTaxBoosted},
		{"no boost phrase", "income tax clearance certificate attached", ScoreKeywordWeak},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Score(doctype.IncomeTax, tc.text)
			if got.Score != tc.want {
				t.Errorf("score = %d, want %d", got.Score, tc.want)
			}
		})
	}
}

func TestScore_ExperienceEvidence(t *testing.T) {
	s := New(DefaultContextHits)

	// No experience keyword phrase, but employment wording, designation,
	// tenure, and dates accumulate enough evidence.
	text := "This is to certify that Mr. Sharma worked as Site Engineer in the position of lead from 01/04/2018 to 31/03/2021"
	got := s.Score(doctype.Experience, text)
	if got.Score != ScoreKeywordStrong {
		t.Errorf("score = %d, want %d", got.Score, ScoreKeywordStrong)
	}

	// Employment wording alone without a date or the word experience must
	// not be enough.
	weak := s.Score(doctype.Experience, "worked as contractor in the role of supplier during the period")
	if weak.Score != 0 {
		t.Errorf("score = %d, want 0", weak.Score)
	}
}

func TestScoreAll_OrderMatchesConcrete(t *testing.T) {
	s := New(DefaultContextHits)
	results := s.ScoreAll("some unrelated text")
	if len(results) != len(doctype.Concrete) {
		t.Fatalf("got %d results, want %d", len(results), len(doctype.Concrete))
	}
	for i, r := range results {
		if r.Type != doctype.Concrete[i] {
			t.Errorf("result %d has type %s, want %s", i, r.Type, doctype.Concrete[i])
		}
	}
}

func TestEvaluateTemplate(t *testing.T) {
	s := New(DefaultContextHits)

	text := "Income Tax Department\nPermanent Account Number ABCDE1234F\nName: RAKESH SHARMA\nFather's Name: SURESH SHARMA\nDate of Birth: 01/01/1980"
	ev := s.EvaluateTemplate(doctype.PAN, text)

	wantValidated := map[string]bool{"name": true, "fatherName": true, "dateOfBirth": true}
	for _, f := range ev.ValidatedFields {
		delete(wantValidated, f)
	}
	if len(wantValidated) != 0 {
		t.Errorf("missing expected validated fields: %v", wantValidated)
	}

	foundSignatureMissing := false
	for _, f := range ev.MissingFields {
		if f == "signature" {
			foundSignatureMissing = true
		}
	}
	if !foundSignatureMissing {
		t.Error("signature should be reported missing")
	}

	if ev.Identifier != "ABCDE1234F" {
		t.Errorf("identifier = %q, want ABCDE1234F", ev.Identifier)
	}
}

func TestEvaluateTemplate_UnknownType(t *testing.T) {
	s := New(DefaultContextHits)
	ev := s.EvaluateTemplate(doctype.Unknown, "anything")
	if len(ev.ValidatedFields) != 0 || len(ev.MissingFields) != 0 {
		t.Error("unknown type should produce no field evidence")
	}
}
