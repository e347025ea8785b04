package converters

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"convert-api/internal/domain/conversion"
)

// PDFToTextProcessor extracts the plain text content of a PDF, one blank
// line between pages. Pages without extractable text are skipped.
type PDFToTextProcessor struct{}

func NewPDFToTextProcessor() *PDFToTextProcessor {
	return &PDFToTextProcessor{}
}

func (p *PDFToTextProcessor) Convert(ctx context.Context, input []byte, params conversion.Params) (*conversion.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := pdf.NewReader(bytes.NewReader(input), int64(len(input)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var out strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		out.WriteString(text)
		out.WriteString("\n\n")
	}

	result := strings.TrimSpace(out.String())
	if result == "" {
		return nil, fmt.Errorf("no extractable text in pdf (%d pages)", numPages)
	}

	return &conversion.Result{
		Output:   []byte(result + "\n"),
		Original: conversion.FileInfo{Pages: numPages},
	}, nil
}
