// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package requirements

import (
	"bidcheck/internal/classifier"
	"bidcheck/internal/doctype"
)

// Match selects the best classified file for one required type. Candidate
// lists are already sorted by descending score (see classifier.GroupByType)
// so the head of the bucket wins; ties keep upload order. The lookup does
// not consume the candidate: two labels normalizing to the same type may
// both be satisfied by the same best file.
func Match(required doctype.Type, byType map[doctype.Type][]classifier.Classification) (classifier.Classification, bool) {
	candidates := byType[required]
	if len(candidates) == 0 {
		return classifier.Classification{}, false
	}
	return candidates[0], true
}
