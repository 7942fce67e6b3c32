// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ocr

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// DefaultMaxPages bounds how much of a single PDF gets processed so one
// oversized upload cannot stall the whole batch.
const DefaultMaxPages = 50

// extractPDFText extracts the text layer of a PDF. The bytes are first
// validated with pdfcpu; a file that fails structural validation is not
// worth handing to the text extractor.
func (e *FileExtractor) extractPDFText(ctx context.Context, raw []byte) (string, error) {
	pdfCtx, err := api.ReadContext(bytes.NewReader(raw), model.NewDefaultConfiguration())
	if err != nil {
		return "", fmt.Errorf("invalid PDF: %w", err)
	}

	pageCount := pdfCtx.PageCount
	if pageCount > e.maxPages {
		pageCount = e.maxPages
	}

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("error opening PDF: %w", err)
	}
	if n := reader.NumPage(); n < pageCount {
		pageCount = n
	}

	var buf bytes.Buffer
	failedPages := 0

	for i := 1; i <= pageCount; i++ {
		select {
		case <-ctx.Done():
			// Timeout mid-document: keep what we have, partial text
			// beats no text.
			return cleanExtractedText(buf.String()), nil
		default:
		}

		p := reader.Page(i)
		if p.V.IsNull() {
			failedPages++
			continue
		}

		text, err := extractPageText(p)
		if err != nil {
			failedPages++
			continue
		}

		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	if failedPages == pageCount {
		return "", fmt.Errorf("no extractable pages (%d of %d failed)", failedPages, pageCount)
	}

	return cleanExtractedText(buf.String()), nil
}

// extractPageText prefers row-based extraction, which keeps label/value
// pairs on one line, and falls back to plain text when the page has no
// usable row layout.
func extractPageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	sorted := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return averageY(sorted[i].Content) > averageY(sorted[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sorted {
		rowText := joinRowText(row.Content)
		if strings.TrimSpace(rowText) != "" {
			buf.WriteString(rowText)
			buf.WriteString("\n")
		}
	}

	return buf.String(), nil
}

// averageY is used to order rows top to bottom. PDF Y coordinates grow
// upward, so higher averages come first.
func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, el := range elements {
		total += el.Y
	}
	return total / float64(len(elements))
}

// joinRowText assembles one reading-order line from a row's text elements.
func joinRowText(elements []pdf.Text) string {
	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, el := range sorted {
		buf.WriteString(el.S)
		if i < len(sorted)-1 && !strings.HasSuffix(el.S, " ") {
			buf.WriteString(" ")
		}
	}
	return buf.String()
}

// cleanExtractedText trims each line and drops empty ones while keeping
// the line structure the scorers rely on.
func cleanExtractedText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.ReplaceAll(line, "\t", " "))
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
