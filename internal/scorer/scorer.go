// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package scorer

import (
	"regexp"
	"strings"

	"bidcheck/internal/doctype"
)

// Score values awarded by the rules below. They were chosen empirically
// against real tender uploads and are tunable, not derived.
const (
	ScoreConfirmedIdentifier = 90
	ScoreIncomeTaxBoosted    = 80
	ScoreKeywordStrong       = 70
	ScoreKeywordWeak         = 60
)

// DefaultContextHits is the number of keyword occurrences that counts as
// contextual confirmation for an identifier-shaped token.
const DefaultContextHits = 2

// Result is the outcome of scoring one file's text against one type.
type Result struct {
	Type       doctype.Type
	Score      int
	Identifier string
}

// FieldEvidence records which of a template's semantic fields were found in
// a document's text.
type FieldEvidence struct {
	Type            doctype.Type
	ValidatedFields []string
	MissingFields   []string
	Identifier      string
}

// rule drives the generic scoring loop for one document type. Identifier
// types go through the two-stage pattern-plus-context check; the rest are
// keyword-only with an optional phrase boost.
type rule struct {
	keywordScore int
	minHits      int
	boostPhrases []string
	boostScore   int
	evidence     func(text, lower string) bool
}

var rules = map[doctype.Type]rule{
	doctype.PAN:        {keywordScore: ScoreKeywordWeak, minHits: 2},
	doctype.Aadhaar:    {keywordScore: ScoreKeywordWeak, minHits: 2},
	doctype.GST:        {keywordScore: ScoreKeywordWeak, minHits: 2},
	doctype.CompanyReg: {keywordScore: ScoreKeywordStrong, minHits: 1},
	doctype.Insurance:  {keywordScore: ScoreKeywordStrong, minHits: 1},
	doctype.IncomeTax: {
		keywordScore: ScoreKeywordWeak,
		minHits:      1,
		boostPhrases: []string{"assessment year", "return of income", "itr"},
		boostScore:   ScoreIncomeTaxBoosted,
	},
	doctype.Experience: {
		keywordScore: ScoreKeywordStrong,
		minHits:      1,
		evidence:     experienceEvidence,
	},
}

var datePattern = regexp.MustCompile(`\b\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}\b`)

// Scorer scores document text against the canonical types. It is stateless
// and safe for concurrent use.
type Scorer struct {
	contextHits int
}

// New returns a Scorer using the given keyword-hit threshold for identifier
// confirmation. Values below one fall back to the default.
func New(contextHits int) *Scorer {
	if contextHits < 1 {
		contextHits = DefaultContextHits
	}
	return &Scorer{contextHits: contextHits}
}

// Score rates text against one document type, returning 0-100 and the
// document identifier when one was found and confirmed.
//
// Identifier types (PAN, AADHAAR, GST, COMPANY_REG) use a two-stage check:
// an identifier-shaped token alone scores nothing, because PAN-shaped
// substrings occur by coincidence inside GST and CIN numbers. The token
// only counts when the surrounding text supports it, either through a
// strong context phrase or enough type keywords.
func (s *Scorer) Score(t doctype.Type, text string) Result {
	r, ok := rules[t]
	if !ok || strings.TrimSpace(text) == "" {
		return Result{Type: t}
	}

	lower := strings.ToLower(text)
	hits := doctype.CountKeywordHits(t, lower)
	supported := doctype.HasStrongContext(t, lower) || hits >= s.contextHits

	if doctype.HasIdentifier(t) {
		if id := doctype.ExtractIdentifier(t, text); id != "" && supported {
			return Result{Type: t, Score: ScoreConfirmedIdentifier, Identifier: id}
		}
		// Identifier absent or unconfirmed: fall through to the keyword
		// path with the identifier discarded.
	}

	if hits >= r.minHits {
		score := r.keywordScore
		for _, phrase := range r.boostPhrases {
			if strings.Contains(lower, phrase) {
				score = r.boostScore
				break
			}
		}
		return Result{Type: t, Score: score}
	}

	if r.evidence != nil && r.evidence(text, lower) {
		return Result{Type: t, Score: r.keywordScore}
	}

	return Result{Type: t}
}

// ScoreAll rates text against every concrete type, in canonical order.
func (s *Scorer) ScoreAll(text string) []Result {
	results := make([]Result, 0, len(doctype.Concrete))
	for _, t := range doctype.Concrete {
		results = append(results, s.Score(t, text))
	}
	return results
}

// experienceEvidence recognizes experience certificates that never use the
// phrase "experience certificate". Points accumulate for employment
// wording, a designation, a tenure phrase, and a date-shaped token; three
// points with at least a date or the word "experience" is enough.
func experienceEvidence(text, lower string) bool {
	evidence := 0
	hasDate := datePattern.MatchString(text)

	if strings.Contains(lower, "experience") {
		evidence += 2
	}
	if strings.Contains(lower, "worked as") || strings.Contains(lower, "has worked") ||
		strings.Contains(lower, "worked with") || strings.Contains(lower, "employed as") ||
		strings.Contains(lower, "employment") {
		evidence++
	}
	if strings.Contains(lower, "designation") || strings.Contains(lower, "position") ||
		strings.Contains(lower, "job title") || strings.Contains(lower, "role") {
		evidence++
	}
	if (strings.Contains(lower, "from") && strings.Contains(lower, "to")) ||
		strings.Contains(lower, "joining") || strings.Contains(lower, "relieving") ||
		strings.Contains(lower, "tenure") || strings.Contains(lower, "period") {
		evidence++
	}
	if hasDate {
		evidence++
	}

	return evidence >= 3 && (hasDate || strings.Contains(lower, "experience"))
}

// EvaluateTemplate checks text against the type's field template and
// reports which semantic fields were evidenced. Used for diagnostics on
// matched documents; classification itself goes through Score.
func (s *Scorer) EvaluateTemplate(t doctype.Type, text string) FieldEvidence {
	ev := FieldEvidence{Type: t}
	tpl := doctype.TemplateFor(t)
	if tpl == nil || strings.TrimSpace(text) == "" {
		return ev
	}

	lower := strings.ToLower(text)
	for _, field := range tpl.Fields {
		found := false
		for _, kw := range field.Keywords {
			if strings.Contains(lower, kw) {
				found = true
				break
			}
		}
		if found {
			ev.ValidatedFields = append(ev.ValidatedFields, field.Name)
		} else {
			ev.MissingFields = append(ev.MissingFields, field.Name)
		}
	}

	if tpl.HasIdentifier {
		ev.Identifier = doctype.ExtractIdentifier(t, text)
	}

	return ev
}
