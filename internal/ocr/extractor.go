// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ocr is the text-extraction boundary of the validation core. An
// Extractor must never fail a validation call: whatever goes wrong with one
// file, the result is the fallback marker and the batch moves on.
package ocr

import (
	"context"
	"path/filepath"
	"strings"

	"bidcheck/internal/observability"
)

// FallbackMarker is the content recorded for files that produced no usable
// text, whether extraction failed outright or the file is an image-only
// scan we cannot read. Downstream code treats it the same as empty text.
const FallbackMarker = "IMAGE_PDF_FALLBACK"

// Content is the per-file extraction result.
type Content struct {
	FileName string
	Text     string
}

// Empty reports whether the file yielded no classifiable text.
func (c Content) Empty() bool {
	return strings.TrimSpace(c.Text) == "" || strings.HasPrefix(c.Text, FallbackMarker)
}

// Extractor produces text from raw uploaded bytes. Implementations must not
// return errors; failures degrade to the fallback marker.
type Extractor interface {
	Extract(ctx context.Context, fileName string, raw []byte) Content
}

// FileExtractor dispatches on file extension: PDFs go through the embedded
// text layer, images degrade to the fallback marker (no OCR engine is
// bundled) after their capture metadata is logged for diagnostics.
type FileExtractor struct {
	maxPages int
	observer *observability.StandardObserver
}

// NewFileExtractor creates an extractor with the given per-file page cap.
// Non-positive caps fall back to the default.
func NewFileExtractor(maxPages int, observer *observability.StandardObserver) *FileExtractor {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &FileExtractor{maxPages: maxPages, observer: observer}
}

// Extract pulls text out of one uploaded file.
func (e *FileExtractor) Extract(ctx context.Context, fileName string, raw []byte) Content {
	var finishTiming func(bool, map[string]interface{})
	if e.observer != nil {
		finishTiming = e.observer.StartTiming("ocr", "extract_text", fileName)
	}

	text, err := e.extract(ctx, fileName, raw)
	if err != nil || strings.TrimSpace(text) == "" {
		if finishTiming != nil {
			meta := map[string]interface{}{"fallback": true}
			if err != nil {
				meta["error"] = err.Error()
			}
			finishTiming(false, meta)
		}
		return Content{FileName: fileName, Text: FallbackMarker}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"content_length": len(text)})
	}
	return Content{FileName: fileName, Text: text}
}

func (e *FileExtractor) extract(ctx context.Context, fileName string, raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return e.extractPDFText(ctx, raw)
	case ".jpg", ".jpeg", ".png":
		// Image-only uploads need an OCR engine we do not bundle. Log
		// whatever EXIF provenance the scan carries and fall back.
		e.logImageMetadata(fileName, raw)
		return "", nil
	case ".txt":
		return string(raw), nil
	default:
		return "", nil
	}
}
