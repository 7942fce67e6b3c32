// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package duplicate flags byte-identical uploads, a common tactic when a
// bidder pads a submission by uploading the same scan under several names.
package duplicate

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"bidcheck/internal/observability"
)

// File is one uploaded file's name and raw bytes.
type File struct {
	Name string
	Data []byte
}

// Detector groups uploads by content hash. MD5 is fine here: this is
// duplicate grouping of trusted-enough uploads, not integrity protection.
type Detector struct {
	observer *observability.StandardObserver
}

// New returns a Detector.
func New(observer *observability.StandardObserver) *Detector {
	return &Detector{observer: observer}
}

// FindDuplicates returns one descriptor per redundant upload, in upload
// order: "<name> (duplicate of <firstName>)". Files whose bytes cannot be
// hashed are logged and excluded from grouping; they are never reported as
// duplicates.
func (d *Detector) FindDuplicates(files []File) []string {
	type group struct {
		names []string
	}

	groups := make(map[string]*group)
	var order []string

	for _, f := range files {
		if len(f.Data) == 0 {
			if d.observer != nil {
				d.observer.LogOperation(observability.StandardObservabilityData{
					Component: "duplicate_detector",
					Operation: "hash_file",
					FileName:  f.Name,
					Success:   false,
					Error:     "empty file content, excluded from grouping",
				})
			}
			continue
		}

		sum := md5.Sum(f.Data)
		hash := hex.EncodeToString(sum[:])

		g, seen := groups[hash]
		if !seen {
			g = &group{}
			groups[hash] = g
			order = append(order, hash)
		}
		g.names = append(g.names, f.Name)
	}

	var duplicates []string
	for _, hash := range order {
		g := groups[hash]
		for i := 1; i < len(g.names); i++ {
			duplicates = append(duplicates, fmt.Sprintf("%s (duplicate of %s)", g.names[i], g.names[0]))
		}
	}

	return duplicates
}
