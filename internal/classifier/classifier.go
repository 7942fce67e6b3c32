// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"sort"
	"strings"

	"bidcheck/internal/doctype"
	"bidcheck/internal/ocr"
	"bidcheck/internal/scorer"
)

// Thresholds below which a file stays unclassified or gets flagged as
// ambiguous. Empirically tuned; see the config package for overrides.
const (
	DefaultMinScore     = 50
	DefaultAmbiguityGap = 10
)

// Classification assigns one file to exactly one canonical type.
type Classification struct {
	FileName   string
	Type       doctype.Type
	Score      int
	Identifier string
	Ambiguous  bool
}

// Classifier turns extracted text into per-file classifications. Each file
// is classified independently, so calls are safe to run concurrently.
type Classifier struct {
	scorer       *scorer.Scorer
	minScore     int
	ambiguityGap int
}

// New returns a Classifier with the given scorer and thresholds.
// Non-positive thresholds fall back to the defaults.
func New(s *scorer.Scorer, minScore, ambiguityGap int) *Classifier {
	if minScore <= 0 {
		minScore = DefaultMinScore
	}
	if ambiguityGap <= 0 {
		ambiguityGap = DefaultAmbiguityGap
	}
	return &Classifier{scorer: s, minScore: minScore, ambiguityGap: ambiguityGap}
}

// Classify scores the text against every concrete type and picks the best.
// Files with no usable text come back as UNKNOWN with score zero. A file
// whose best score stays under the minimum is UNKNOWN too, though any
// identifier found is kept for diagnostics. Ambiguity is advisory: when the
// runner-up is plausible and close, the best type still wins but the result
// is flagged.
func (c *Classifier) Classify(fileName, text string) Classification {
	if strings.TrimSpace(text) == "" || strings.HasPrefix(text, ocr.FallbackMarker) {
		return Classification{FileName: fileName, Type: doctype.Unknown}
	}

	results := c.scorer.ScoreAll(text)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	best, second := results[0], results[1]

	if best.Score < c.minScore {
		return Classification{
			FileName:   fileName,
			Type:       doctype.Unknown,
			Score:      best.Score,
			Identifier: best.Identifier,
		}
	}

	ambiguous := second.Score >= c.minScore && best.Score-second.Score <= c.ambiguityGap

	return Classification{
		FileName:   fileName,
		Type:       best.Type,
		Score:      best.Score,
		Identifier: best.Identifier,
		Ambiguous:  ambiguous,
	}
}

// GroupByType buckets classifications by assigned type, each bucket sorted
// by descending score. The sort is stable, so equal scores keep the input
// (encounter) order.
func GroupByType(classifications []Classification) map[doctype.Type][]Classification {
	byType := make(map[doctype.Type][]Classification)
	for _, cl := range classifications {
		byType[cl.Type] = append(byType[cl.Type], cl)
	}
	for t := range byType {
		list := byType[t]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Score > list[j].Score
		})
		byType[t] = list
	}
	return byType
}
