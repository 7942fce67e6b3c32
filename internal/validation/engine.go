// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validation

import (
	"context"
	"fmt"
	"time"

	"bidcheck/internal/classifier"
	"bidcheck/internal/doctype"
	"bidcheck/internal/duplicate"
	"bidcheck/internal/observability"
	"bidcheck/internal/ocr"
	"bidcheck/internal/parallel"
	"bidcheck/internal/requirements"
	"bidcheck/internal/scorer"
)

// File is one uploaded document, held fully in memory.
type File struct {
	Name string
	Data []byte
}

// Options tune engine concurrency and output.
type Options struct {
	// Workers bounds concurrent extraction. Zero means DefaultWorkers.
	Workers int
	// FileTimeout bounds extraction of a single file. Zero means
	// DefaultFileTimeout. A timed-out file degrades to unreadable,
	// it never fails the batch.
	FileTimeout time.Duration
	// IncludeDetails adds per-document field evidence to the result.
	IncludeDetails bool
}

const (
	DefaultWorkers     = 4
	DefaultFileTimeout = 30 * time.Second
)

// Engine runs the full validation pipeline: extract text from every upload,
// classify each one, detect duplicates, and aggregate against the tender's
// required document labels.
type Engine struct {
	extractor      ocr.Extractor
	classifier     *classifier.Classifier
	scorer         *scorer.Scorer
	detector       *duplicate.Detector
	observer       *observability.StandardObserver
	workers        int
	fileTimeout    time.Duration
	includeDetails bool
}

// NewEngine wires an engine from its parts. The scorer is the same instance
// the classifier scores with, reused here for field-evidence detail.
func NewEngine(extractor ocr.Extractor, cl *classifier.Classifier, sc *scorer.Scorer, det *duplicate.Detector, observer *observability.StandardObserver, opts Options) *Engine {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	fileTimeout := opts.FileTimeout
	if fileTimeout <= 0 {
		fileTimeout = DefaultFileTimeout
	}
	return &Engine{
		extractor:      extractor,
		classifier:     cl,
		scorer:         sc,
		detector:       det,
		observer:       observer,
		workers:        workers,
		fileTimeout:    fileTimeout,
		includeDetails: opts.IncludeDetails,
	}
}

// Validate processes one batch of uploads against the required labels.
// It never returns an error: unreadable files, unclassifiable content, and
// unknown labels all degrade to warnings or missing entries in the result.
// Result order follows upload order for files and label order for
// requirements, so repeated calls on the same inputs give identical results.
func (e *Engine) Validate(ctx context.Context, files []File, requiredLabels []string) Result {
	var finishTiming func(bool, map[string]interface{})
	var finishStep func(bool, string)
	if e.observer != nil {
		finishTiming = e.observer.StartTiming("engine", "validate_batch", "")
		if e.observer.DebugObserver != nil {
			finishStep = e.observer.DebugObserver.StartStep("engine", "validate_batch", "")
		}
	}

	if len(requiredLabels) == 0 {
		result := Aggregate(requiredLabels, nil, nil, nil)
		if finishTiming != nil {
			finishTiming(true, map[string]interface{}{"files": len(files), "required": 0})
		}
		if finishStep != nil {
			finishStep(true, "no required documents specified")
		}
		return result
	}

	// Duplicate detection only needs raw bytes, so it runs alongside
	// extraction.
	dupFiles := make([]duplicate.File, len(files))
	for i, f := range files {
		dupFiles[i] = duplicate.File{Name: f.Name, Data: f.Data}
	}
	dupCh := make(chan []string, 1)
	go func() {
		dupCh <- e.detector.FindDuplicates(dupFiles)
	}()

	contents := make([]ocr.Content, len(files))
	classifications := make([]classifier.Classification, len(files))

	pool := parallel.NewWorkerPool(e.workers, e.observer)
	pool.Run(ctx, len(files), func(ctx context.Context, i int) {
		contents[i] = e.processFile(ctx, files[i])
		classifications[i] = e.classifier.Classify(contents[i].FileName, contents[i].Text)
	})

	duplicates := <-dupCh

	result := Aggregate(requiredLabels, contents, classifications, duplicates)
	if e.includeDetails {
		e.attachDetails(&result, requiredLabels, contents, classifications)
	}
	if finishTiming != nil {
		finishTiming(result.Valid, map[string]interface{}{
			"files":    len(files),
			"required": len(requiredLabels),
			"matched":  len(result.MatchedDocuments),
			"missing":  len(result.MissingDocuments),
		})
	}
	if finishStep != nil {
		finishStep(result.Valid, fmt.Sprintf("%d matched, %d missing", len(result.MatchedDocuments), len(result.MissingDocuments)))
	}
	return result
}

func (e *Engine) processFile(ctx context.Context, f File) ocr.Content {
	fileCtx, cancel := context.WithTimeout(ctx, e.fileTimeout)
	defer cancel()
	return e.extractor.Extract(fileCtx, f.Name, f.Data)
}

// attachDetails re-derives the matched file for each satisfied label and
// evaluates that document's field template against its extracted text.
func (e *Engine) attachDetails(result *Result, requiredLabels []string, contents []ocr.Content, classifications []classifier.Classification) {
	byType := classifier.GroupByType(classifications)
	textByName := make(map[string]string, len(contents))
	for _, c := range contents {
		textByName[c.FileName] = c.Text
	}

	details := make(map[string]DocumentDetail)
	for _, label := range requiredLabels {
		requiredType := requirements.Normalize(label)
		if requiredType == doctype.Unknown {
			continue
		}
		best, found := requirements.Match(requiredType, byType)
		if !found {
			continue
		}
		if _, seen := details[best.FileName]; seen {
			continue
		}
		evidence := e.scorer.EvaluateTemplate(best.Type, textByName[best.FileName])
		details[best.FileName] = DocumentDetail{
			DocumentType:    string(best.Type),
			Identifier:      best.Identifier,
			ValidatedFields: evidence.ValidatedFields,
			MissingFields:   evidence.MissingFields,
		}
	}
	if len(details) > 0 {
		result.DocumentDetails = details
	}
}
