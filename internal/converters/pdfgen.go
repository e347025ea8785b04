package converters

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/go-pdf/fpdf"

	"convert-api/internal/domain/conversion"
)

// ImageToPDFProcessor embeds a single raster image into a one-page PDF,
// scaled to fit the printable area while keeping its aspect ratio.
type ImageToPDFProcessor struct {
	input conversion.Format
}

func NewImageToPDFProcessor(input conversion.Format) *ImageToPDFProcessor {
	return &ImageToPDFProcessor{input: input}
}

func (p *ImageToPDFProcessor) Convert(ctx context.Context, input []byte, params conversion.Params) (*conversion.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, ok := params.(conversion.PDFParams)
	if !ok {
		return nil, fmt.Errorf("pdf output wants PDFParams, got %T", params)
	}

	imgCfg, _, err := image.DecodeConfig(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("decode %s header: %w", p.input, err)
	}

	doc := fpdf.New("P", "mm", cfg.PageSize, "")
	doc.SetMargins(cfg.MarginMM, cfg.MarginMM, cfg.MarginMM)
	doc.AddPage()

	imageType := "PNG"
	if p.input == conversion.FormatJPG || p.input == conversion.FormatJPEG {
		imageType = "JPG"
	}
	opts := fpdf.ImageOptions{ImageType: imageType}
	doc.RegisterImageOptionsReader("upload", opts, bytes.NewReader(input))

	pageW, pageH := doc.GetPageSize()
	maxW := pageW - 2*cfg.MarginMM
	maxH := pageH - 2*cfg.MarginMM
	w, h := fitBox(float64(imgCfg.Width), float64(imgCfg.Height), maxW, maxH)
	doc.ImageOptions("upload", cfg.MarginMM, cfg.MarginMM, w, h, false, opts, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return &conversion.Result{
		Output:   buf.Bytes(),
		Original: conversion.FileInfo{Width: imgCfg.Width, Height: imgCfg.Height},
		Final:    conversion.FileInfo{Pages: 1},
	}, nil
}

// TextToPDFProcessor typesets plain text or markdown into a paginated PDF.
// Markdown input gets light styling: ATX headings are rendered bold and
// larger, fenced code blocks in a monospaced face.
type TextToPDFProcessor struct {
	markdown bool
}

func NewTextToPDFProcessor(markdown bool) *TextToPDFProcessor {
	return &TextToPDFProcessor{markdown: markdown}
}

func (p *TextToPDFProcessor) Convert(ctx context.Context, input []byte, params conversion.Params) (*conversion.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, ok := params.(conversion.PDFParams)
	if !ok {
		return nil, fmt.Errorf("pdf output wants PDFParams, got %T", params)
	}

	text := normalizeToUTF8(input)

	doc := fpdf.New("P", "mm", cfg.PageSize, "")
	doc.SetMargins(cfg.MarginMM, cfg.MarginMM, cfg.MarginMM)
	doc.SetAutoPageBreak(true, cfg.MarginMM)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	lineHeight := cfg.FontSize * 0.5
	inCode := false
	for _, line := range strings.Split(text, "\n") {
		switch {
		case p.markdown && strings.HasPrefix(line, "```"):
			inCode = !inCode
			continue
		case inCode:
			doc.SetFont("Courier", "", cfg.FontSize-1)
		case p.markdown && strings.HasPrefix(line, "#"):
			level := len(line) - len(strings.TrimLeft(line, "#"))
			if level > 3 {
				level = 3
			}
			doc.SetFont("Helvetica", "B", cfg.FontSize+float64(8-2*level))
			line = strings.TrimSpace(strings.TrimLeft(line, "#"))
		default:
			doc.SetFont("Helvetica", "", cfg.FontSize)
		}
		doc.MultiCell(0, lineHeight, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return &conversion.Result{
		Output: buf.Bytes(),
		Final:  conversion.FileInfo{Pages: doc.PageCount()},
	}, nil
}

func fitBox(w, h, maxW, maxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return maxW, maxH
	}
	scale := maxW / w
	if s := maxH / h; s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}
	return w * scale, h * scale
}
