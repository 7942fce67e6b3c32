// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package requirements

import (
	"testing"

	"bidcheck/internal/doctype"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		label string
		want  doctype.Type
	}{
		{"PAN Card", doctype.PAN},
		{"Valid PAN", doctype.PAN},
		{"pan", doctype.PAN},
		{"Aadhaar Card", doctype.Aadhaar},
		{"Aadhar", doctype.Aadhaar},
		{"UID Number", doctype.Aadhaar},
		{"UIDAI Letter", doctype.Aadhaar},
		{"GST Registration", doctype.GST},
		{"GSTIN Certificate", doctype.GST},
		{"Income Tax Clearance", doctype.IncomeTax},
		{"ITR Acknowledgement", doctype.IncomeTax},
		{"Tax Clearance Certificate", doctype.IncomeTax},
		{"Experience Certificate", doctype.Experience},
		{"Work Experience Proof", doctype.Experience},
		{"Company Registration", doctype.CompanyReg},
		{"Certificate of Incorporation", doctype.CompanyReg},
		{"ROC Certificate", doctype.CompanyReg},
		{"Insurance Certificate", doctype.Insurance},
		{"Notarized Affidavit", doctype.Unknown},
		{"", doctype.Unknown},
		{"   ", doctype.Unknown},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			if got := Normalize(tc.label); got != tc.want {
				t.Errorf("Normalize(%q) = %s, want %s", tc.label, got, tc.want)
			}
		})
	}
}

func TestNormalize_WordBoundaries(t *testing.T) {
	// "company" contains "pan" and "process" contains "roc"; neither may
	// trigger the short-token rules.
	if got := Normalize("Company Registration"); got == doctype.PAN {
		t.Error("'Company Registration' must not normalize to PAN")
	}
	if got := Normalize("Process Audit Report"); got == doctype.CompanyReg {
		t.Error("'Process Audit Report' must not normalize to COMPANY_REG")
	}
	if got := Normalize("Expenditure Report"); got == doctype.IncomeTax {
		t.Error("'Expenditure Report' must not normalize to INCOME_TAX via 'itr'")
	}
}

func TestNormalize_PrecedenceOrder(t *testing.T) {
	// A label naming both PAN and GST resolves to PAN, the earlier rule.
	if got := Normalize("PAN and GST certificates"); got != doctype.PAN {
		t.Errorf("got %s, want PAN by precedence", got)
	}
	// GST beats income tax when both appear.
	if got := Normalize("GST and Income Tax papers"); got != doctype.GST {
		t.Errorf("got %s, want GST by precedence", got)
	}
}
