// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package doctype

import (
	"regexp"
	"strings"
)

// Type identifies a canonical tender document category.
type Type string

const (
	PAN        Type = "PAN"
	Aadhaar    Type = "AADHAAR"
	GST        Type = "GST"
	IncomeTax  Type = "INCOME_TAX"
	Experience Type = "EXPERIENCE"
	CompanyReg Type = "COMPANY_REG"
	Insurance  Type = "INSURANCE"
	Unknown    Type = "UNKNOWN"
)

// Concrete lists every classifiable type in scoring order. The order is
// load-bearing: classification ties are broken by position in this slice.
var Concrete = []Type{PAN, Aadhaar, GST, IncomeTax, Experience, CompanyReg, Insurance}

// Keywords maps each type to the phrases that suggest a document of that
// type. Matching is case-insensitive substring matching on extracted text.
var Keywords = map[Type][]string{
	PAN: {
		"pan", "pan card", "permanent account number",
		"permanentaccountnumber", "income tax department",
		"panno", "pan no", "pan number",
	},
	Aadhaar: {
		"aadhaar", "aadhar", "uidai", "uid number",
		"unique identification", "aadhar card", "aadhaar number",
	},
	GST: {
		"gst", "gstin", "gst registration", "goods and services tax",
		"gstn", "gst certificate", "gst number",
	},
	IncomeTax: {
		"income tax", "income tax clearance", "tax clearance", "itr",
		"income tax return", "itr filing", "tax assessment",
	},
	Experience: {
		"experience certificate", "work experience", "experience letter",
		"employment certificate", "service certificate", "work history",
	},
	CompanyReg: {
		"company registration", "certificate of incorporation", "roc",
		"incorporation certificate", "company incorporation",
		"ministry of corporate affairs", "mca",
		"corporate identification number", "cin",
		"memorandum of association", "articles of association",
		"moa", "aoa",
	},
	Insurance: {
		"insurance", "insurance certificate", "insurance policy",
		"insurance cover", "policy document", "coverage certificate",
	},
}

// StrongContext maps identifier-bearing types to phrases that on their own
// confirm an identifier-shaped token really belongs to that document type.
// A bare PAN-shaped substring inside a GST certificate must not count as a
// PAN card; these phrases are what tip that decision.
var StrongContext = map[Type][]string{
	PAN:        {"income tax department", "income tax", "permanent account number", "pan card"},
	Aadhaar:    {"uidai", "aadhaar", "aadhar", "unique identification"},
	GST:        {"goods and services tax", "gst registration", "gstin"},
	CompanyReg: {"ministry of corporate affairs", "certificate of incorporation", "corporate identification number"},
}

// Identifier regexes. These match structure only; none of the underlying
// formats carry a checksum we could verify.
var (
	panPattern         = regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`)
	panRelaxedPattern  = regexp.MustCompile(`\b[A-Za-z]{5}[0-9]{4}[A-Za-z]\b`)
	aadhaarPattern     = regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`)
	gstinPattern       = regexp.MustCompile(`\b\d{2}[A-Z]{5}\d{4}[A-Z][A-Z0-9][A-Z]\d\b`)
	cinPattern         = regexp.MustCompile(`\b[LUlu]\d{5}[A-Za-z]{2}\d{4}[A-Za-z]{3}\d{6}\b`)
	nonAlphanumPattern = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// HasIdentifier reports whether the type has a recognizable document number
// format.
func HasIdentifier(t Type) bool {
	switch t {
	case PAN, Aadhaar, GST, CompanyReg:
		return true
	}
	return false
}

// ExtractIdentifier returns the first identifier-shaped token for the given
// type found in text, or "" when none is present. The returned value is
// normalized to upper case with grouping characters removed.
func ExtractIdentifier(t Type, text string) string {
	if text == "" {
		return ""
	}

	switch t {
	case PAN:
		// OCR output frequently breaks the PAN across spaces or dots, so
		// strip everything but letters and digits before the first attempt.
		normalized := strings.ToUpper(nonAlphanumPattern.ReplaceAllString(text, ""))
		if m := panPattern.FindString(normalized); m != "" {
			return m
		}
		if m := panRelaxedPattern.FindString(text); m != "" {
			return strings.ToUpper(m)
		}
	case Aadhaar:
		if m := aadhaarPattern.FindString(text); m != "" {
			return strings.NewReplacer(" ", "", "-", "").Replace(m)
		}
	case GST:
		if m := gstinPattern.FindString(text); m != "" {
			return m
		}
	case CompanyReg:
		if m := cinPattern.FindString(text); m != "" {
			return strings.ToUpper(m)
		}
	}

	return ""
}

// Field is one semantic field a document template expects, described by the
// alternative keywords that evidence it.
type Field struct {
	Name     string
	Keywords []string
}

// Template describes the expected layout of one document type: the semantic
// fields a genuine document carries and, where applicable, its identifier
// format.
type Template struct {
	Type          Type
	Fields        []Field
	HasIdentifier bool
}

var templates = map[Type]*Template{
	PAN: {
		Type:          PAN,
		HasIdentifier: true,
		Fields: []Field{
			{Name: "name", Keywords: []string{"name", "name of", "holder name", "card holder"}},
			{Name: "fatherName", Keywords: []string{"father", "father's name", "father name", "parent"}},
			{Name: "dateOfBirth", Keywords: []string{"dob", "date of birth", "birth date", "birthday"}},
			{Name: "signature", Keywords: []string{"signature", "signed", "sign"}},
		},
	},
	Aadhaar: {
		Type:          Aadhaar,
		HasIdentifier: true,
		Fields: []Field{
			{Name: "name", Keywords: []string{"name", "name of", "holder name"}},
			{Name: "dateOfBirth", Keywords: []string{"dob", "date of birth", "birth date", "year of birth"}},
			{Name: "gender", Keywords: []string{"gender", "sex", "male", "female"}},
			{Name: "address", Keywords: []string{"address", "residence", "village", "city", "district", "state"}},
		},
	},
	GST: {
		Type:          GST,
		HasIdentifier: true,
		Fields: []Field{
			{Name: "businessName", Keywords: []string{"legal name", "business name", "trade name", "company name", "firm name"}},
			{Name: "address", Keywords: []string{"address", "principal place", "business address", "registered address"}},
			{Name: "state", Keywords: []string{"state", "state code", "state name"}},
		},
	},
	IncomeTax: {
		Type: IncomeTax,
		Fields: []Field{
			{Name: "documentType", Keywords: []string{"itr", "income tax return", "return of income", "tax return"}},
			{Name: "assessmentYear", Keywords: []string{"assessment year", "ay", "financial year", "fy"}},
			{Name: "name", Keywords: []string{"name", "assessee name", "taxpayer name"}},
			{Name: "income", Keywords: []string{"income", "total income", "gross income", "taxable income"}},
			{Name: "tax", Keywords: []string{"tax", "tax payable", "tax deducted", "tds"}},
		},
	},
	Experience: {
		Type: Experience,
		Fields: []Field{
			{Name: "employeeName", Keywords: []string{
				"employee name", "name of employee", "candidate name",
				"this is to certify", "to certify that", "certify that",
				"mr.", "mrs.", "ms.", "shri", "smt",
			}},
			{Name: "companyName", Keywords: []string{"company name", "organization", "employer", "institution", "company"}},
			{Name: "designation", Keywords: []string{"designation", "position", "job title", "role", "post", "worked as", "employed as"}},
			{Name: "duration", Keywords: []string{
				"duration", "period", "from date", "to date", "working period",
				"years", "months", "joining date", "relieving date",
				"from", "to", "since", "till", "tenure",
			}},
			{Name: "certificateType", Keywords: []string{
				"experience", "experience certificate", "work experience",
				"service certificate", "employment certificate", "experience letter",
			}},
		},
	},
	CompanyReg: {
		Type:          CompanyReg,
		HasIdentifier: true,
		Fields: []Field{
			{Name: "companyName", Keywords: []string{"company name", "name of company", "corporate name"}},
			{Name: "dateOfIncorporation", Keywords: []string{"date of incorporation", "incorporated on", "incorporation date", "formation date"}},
			{Name: "registeredAddress", Keywords: []string{"registered office", "registered address", "principal place"}},
			{Name: "capital", Keywords: []string{"authorized capital", "paid up capital", "share capital"}},
		},
	},
	Insurance: {
		Type: Insurance,
		Fields: []Field{
			{Name: "policyNumber", Keywords: []string{"policy number", "policy no", "policy id", "certificate number"}},
			{Name: "insuredName", Keywords: []string{"insured name", "proposer name", "policy holder", "beneficiary"}},
			{Name: "insuranceCompany", Keywords: []string{"insurance company", "insurer", "company name", "issued by"}},
			{Name: "validity", Keywords: []string{"validity", "valid from", "valid until", "expiry date", "policy period", "start date", "end date", "coverage"}},
			{Name: "sumInsured", Keywords: []string{"sum insured", "coverage amount", "sum assured", "limit"}},
		},
	},
}

// TemplateFor returns the field template for the given type, or nil for
// Unknown.
func TemplateFor(t Type) *Template {
	return templates[t]
}

// CountKeywordHits returns how many of the type's keywords occur in the
// lower-cased text.
func CountKeywordHits(t Type, lowerText string) int {
	hits := 0
	for _, kw := range Keywords[t] {
		if strings.Contains(lowerText, kw) {
			hits++
		}
	}
	return hits
}

// HasStrongContext reports whether the lower-cased text contains one of the
// type's confirming phrases.
func HasStrongContext(t Type, lowerText string) bool {
	for _, phrase := range StrongContext[t] {
		if strings.Contains(lowerText, phrase) {
			return true
		}
	}
	return false
}
