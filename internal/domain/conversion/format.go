package conversion

import "strings"

// Format identifies a file format as it appears in a conversion key.
type Format string

const (
	FormatJPG  Format = "jpg"
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatWEBP Format = "webp"
	FormatPDF  Format = "pdf"
	FormatTXT  Format = "txt"
	FormatMD   Format = "md"
	FormatHTML Format = "html"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLS  Format = "xls"
	FormatXLSX Format = "xlsx"
)

// mimeByFormat maps an output format to the MIME type used in data URIs
// and Content-Type negotiation.
var mimeByFormat = map[Format]string{
	FormatJPG:  "image/jpeg",
	FormatJPEG: "image/jpeg",
	FormatPNG:  "image/png",
	FormatGIF:  "image/gif",
	FormatBMP:  "image/bmp",
	FormatTIFF: "image/tiff",
	FormatWEBP: "image/webp",
	FormatPDF:  "application/pdf",
	FormatTXT:  "text/plain",
	FormatMD:   "text/markdown",
	FormatHTML: "text/html",
	FormatCSV:  "text/csv",
	FormatJSON: "application/json",
	FormatXLS:  "application/vnd.ms-excel",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// MIME returns the MIME type for the format, or application/octet-stream
// when the format is unknown.
func (f Format) MIME() string {
	if m, ok := mimeByFormat[f]; ok {
		return m
	}
	return "application/octet-stream"
}

// IsText reports whether the format belongs to the text family, where
// content sniffing cannot distinguish members by magic bytes.
func (f Format) IsText() bool {
	switch f {
	case FormatTXT, FormatMD, FormatHTML, FormatCSV, FormatJSON:
		return true
	}
	return false
}

func (f Format) String() string { return string(f) }

// Normalize lowercases a caller-supplied format segment.
func Normalize(raw string) Format {
	return Format(strings.ToLower(strings.TrimSpace(raw)))
}
