package conversion

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// sniffMIMEs maps an input format to the MIME types mimetype.Detect may
// legitimately report for it. OOXML containers detect as zip on truncated
// sniff windows, hence the extra entries.
var sniffMIMEs = map[Format][]string{
	FormatJPG:  {"image/jpeg"},
	FormatJPEG: {"image/jpeg"},
	FormatPNG:  {"image/png"},
	FormatGIF:  {"image/gif"},
	FormatBMP:  {"image/bmp", "image/x-ms-bmp"},
	FormatTIFF: {"image/tiff"},
	FormatWEBP: {"image/webp"},
	FormatPDF:  {"application/pdf"},
	FormatXLS:  {"application/vnd.ms-excel", "application/x-ole-storage"},
	FormatXLSX: {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "application/zip"},
}

// ValidateFormat confirms the buffer's magic bytes match the claimed input
// format before any expensive processing runs. Text-family formats cannot be
// distinguished by signature, so they only have to sniff as text.
func ValidateFormat(input []byte, format Format) error {
	detected := mimetype.Detect(input)

	if format.IsText() {
		for mt := detected; mt != nil; mt = mt.Parent() {
			if strings.HasPrefix(mt.String(), "text/") {
				return nil
			}
		}
		return fmt.Errorf("not a valid %s: detected %s", strings.ToUpper(string(format)), detected.String())
	}

	allowed, ok := sniffMIMEs[format]
	if !ok {
		return fmt.Errorf("no validator for format %s", format)
	}
	for _, want := range allowed {
		if detected.Is(want) {
			return nil
		}
	}
	return fmt.Errorf("not a valid %s: detected %s", strings.ToUpper(string(format)), detected.String())
}
