// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ocr

import (
	"bytes"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// exifWalker collects every EXIF tag present in an image.
type exifWalker struct {
	tags map[string]string
}

// Walk implements the exif.Walker interface
func (w *exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag != nil {
		w.tags[string(name)] = tag.String()
	}
	return nil
}

// logImageMetadata records EXIF provenance of an image upload (capture
// time, device) before the file degrades to the fallback marker. Useful
// when a bidder disputes why their phone-camera scan was not recognized.
func (e *FileExtractor) logImageMetadata(fileName string, raw []byte) {
	if e.observer == nil || e.observer.DebugObserver == nil {
		return
	}

	x, err := exif.Decode(bytes.NewReader(raw))
	if err != nil {
		e.observer.DebugObserver.LogDetail("ocr", "no EXIF data in "+fileName)
		return
	}

	walker := &exifWalker{tags: make(map[string]string)}
	if err := x.Walk(walker); err != nil {
		return
	}

	for _, field := range []string{"DateTime", "Make", "Model", "Software"} {
		if v, ok := walker.tags[field]; ok {
			e.observer.DebugObserver.LogDetail("ocr", fileName+" "+field+"="+v)
		}
	}
}
