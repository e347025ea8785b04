package converters

import (
	"convert-api/internal/domain/conversion"
)

// Encoder defaults per output format. Per-request option flags bias these
// through Params.WithOptions; the table itself is immutable.
var (
	defaultJPEG = conversion.JPEGParams{Quality: 85}
	defaultPNG  = conversion.PNGParams{Compression: conversion.PNGCompressionDefault}
	defaultGIF  = conversion.GIFParams{NumColors: 256}
	defaultBMP  = conversion.BMPParams{}
	defaultTIFF = conversion.TIFFParams{Compression: conversion.TIFFCompressionDeflate}
	defaultPDF  = conversion.PDFParams{PageSize: "A4", MarginMM: 10, FontSize: 12, JPEGQuality: 85}
	defaultCSV  = conversion.CSVParams{Delimiter: ','}
	defaultXLSX = conversion.XLSXParams{SheetName: "Sheet1"}
	defaultJSON = conversion.JSONParams{Indent: "  "}
)

// rasterPairs lists every image-to-image conversion. WEBP appears only as
// an input: x/image/webp is decode-only.
var rasterPairs = []struct {
	input, output conversion.Format
}{
	{conversion.FormatJPG, conversion.FormatPNG},
	{conversion.FormatJPEG, conversion.FormatPNG},
	{conversion.FormatPNG, conversion.FormatJPG},
	{conversion.FormatPNG, conversion.FormatJPEG},
	{conversion.FormatJPG, conversion.FormatGIF},
	{conversion.FormatGIF, conversion.FormatJPG},
	{conversion.FormatPNG, conversion.FormatGIF},
	{conversion.FormatGIF, conversion.FormatPNG},
	{conversion.FormatBMP, conversion.FormatPNG},
	{conversion.FormatBMP, conversion.FormatJPG},
	{conversion.FormatTIFF, conversion.FormatPNG},
	{conversion.FormatTIFF, conversion.FormatJPG},
	{conversion.FormatPNG, conversion.FormatBMP},
	{conversion.FormatJPG, conversion.FormatBMP},
	{conversion.FormatPNG, conversion.FormatTIFF},
	{conversion.FormatJPG, conversion.FormatTIFF},
	{conversion.FormatWEBP, conversion.FormatPNG},
	{conversion.FormatWEBP, conversion.FormatJPG},
}

func rasterDefaults(output conversion.Format) conversion.Params {
	switch output {
	case conversion.FormatJPG, conversion.FormatJPEG:
		return defaultJPEG
	case conversion.FormatPNG:
		return defaultPNG
	case conversion.FormatGIF:
		return defaultGIF
	case conversion.FormatBMP:
		return defaultBMP
	case conversion.FormatTIFF:
		return defaultTIFF
	}
	return nil
}

// Entries returns the full declarative conversion table. Adding a pair is
// one line here; the registry validates defaults at startup.
func Entries() []conversion.Entry {
	var entries []conversion.Entry

	for _, pair := range rasterPairs {
		entries = append(entries, conversion.Entry{
			Input:     pair.input,
			Output:    pair.output,
			Processor: NewImageProcessor(pair.input, pair.output),
			Defaults:  rasterDefaults(pair.output),
		})
	}

	entries = append(entries,
		conversion.Entry{
			Input:     conversion.FormatJPG,
			Output:    conversion.FormatPDF,
			Processor: NewImageToPDFProcessor(conversion.FormatJPG),
			Defaults:  defaultPDF,
		},
		conversion.Entry{
			Input:     conversion.FormatPNG,
			Output:    conversion.FormatPDF,
			Processor: NewImageToPDFProcessor(conversion.FormatPNG),
			Defaults:  defaultPDF,
		},
		conversion.Entry{
			Input:     conversion.FormatTXT,
			Output:    conversion.FormatPDF,
			Processor: NewTextToPDFProcessor(false),
			Defaults:  defaultPDF,
		},
		conversion.Entry{
			Input:     conversion.FormatMD,
			Output:    conversion.FormatPDF,
			Processor: NewTextToPDFProcessor(true),
			Defaults:  defaultPDF,
		},
		conversion.Entry{
			Input:     conversion.FormatPDF,
			Output:    conversion.FormatTXT,
			Processor: NewPDFToTextProcessor(),
			Defaults:  conversion.TextParams{},
		},
		conversion.Entry{
			Input:     conversion.FormatHTML,
			Output:    conversion.FormatMD,
			Processor: NewHTMLToMarkdownProcessor(),
			Defaults:  conversion.MarkdownParams{KeepTables: true},
		},
		conversion.Entry{
			Input:     conversion.FormatMD,
			Output:    conversion.FormatHTML,
			Processor: NewMarkdownToHTMLProcessor(),
			Defaults:  conversion.HTMLParams{Standalone: true},
		},
		conversion.Entry{
			Input:     conversion.FormatTXT,
			Output:    conversion.FormatMD,
			Processor: NewTextToMarkdownProcessor(),
			Defaults:  conversion.TextParams{},
		},
		conversion.Entry{
			Input:     conversion.FormatXLSX,
			Output:    conversion.FormatCSV,
			Processor: NewXLSXToCSVProcessor(),
			Defaults:  defaultCSV,
		},
		conversion.Entry{
			Input:     conversion.FormatXLS,
			Output:    conversion.FormatCSV,
			Processor: NewXLSToCSVProcessor(),
			Defaults:  defaultCSV,
		},
		conversion.Entry{
			Input:     conversion.FormatCSV,
			Output:    conversion.FormatXLSX,
			Processor: NewCSVToXLSXProcessor(),
			Defaults:  defaultXLSX,
		},
		conversion.Entry{
			Input:     conversion.FormatCSV,
			Output:    conversion.FormatJSON,
			Processor: NewCSVToJSONProcessor(),
			Defaults:  defaultJSON,
		},
	)

	return entries
}
