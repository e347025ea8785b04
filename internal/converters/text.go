package converters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"

	"convert-api/internal/domain/conversion"
)

// TextToMarkdownProcessor passes plain text through as markdown after
// charset normalization to UTF-8.
type TextToMarkdownProcessor struct{}

func NewTextToMarkdownProcessor() *TextToMarkdownProcessor {
	return &TextToMarkdownProcessor{}
}

func (p *TextToMarkdownProcessor) Convert(ctx context.Context, input []byte, params conversion.Params) (*conversion.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text := normalizeToUTF8(input)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return &conversion.Result{Output: []byte(text)}, nil
}

// CSVToJSONProcessor converts CSV rows into a JSON array of objects, using
// the first row as field names.
type CSVToJSONProcessor struct{}

func NewCSVToJSONProcessor() *CSVToJSONProcessor {
	return &CSVToJSONProcessor{}
}

func (p *CSVToJSONProcessor) Convert(ctx context.Context, input []byte, params conversion.Params) (*conversion.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, ok := params.(conversion.JSONParams)
	if !ok {
		return nil, fmt.Errorf("json output wants JSONParams, got %T", params)
	}

	rows, err := readCSV([]byte(normalizeToUTF8(input)))
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv has no rows")
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}

	var out []byte
	if cfg.Indent != "" {
		out, err = json.MarshalIndent(records, "", cfg.Indent)
	} else {
		out, err = json.Marshal(records)
	}
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return &conversion.Result{Output: out}, nil
}

// normalizeToUTF8 decodes text of unknown charset into UTF-8. Valid UTF-8
// passes through untouched; everything else goes through charset detection
// with a latin-1 fallback, which never fails.
func normalizeToUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	detector := chardet.NewTextDetector()
	if result, err := detector.DetectBest(data); err == nil {
		if enc := lookupEncoding(result.Charset); enc != nil {
			if decoded, err := enc.NewDecoder().Bytes(data); err == nil {
				return string(decoded)
			}
		}
	}

	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
	return string(decoded)
}

// lookupEncoding maps common charset names to Go encoding implementations.
func lookupEncoding(charset string) encoding.Encoding {
	switch strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(charset, "-", ""), "_", "")) {
	case "utf8", "utf8bom", "ascii", "usascii":
		return unicode.UTF8
	case "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "iso88591", "latin1":
		return charmap.ISO8859_1
	case "iso88592":
		return charmap.ISO8859_2
	case "iso88595":
		return charmap.ISO8859_5
	case "iso88597":
		return charmap.ISO8859_7
	case "iso88599":
		return charmap.ISO8859_9
	case "windows1250", "cp1250":
		return charmap.Windows1250
	case "windows1251", "cp1251":
		return charmap.Windows1251
	case "windows1252", "cp1252":
		return charmap.Windows1252
	case "koi8r":
		return charmap.KOI8R
	case "shiftjis", "sjis", "cp932":
		return japanese.ShiftJIS
	case "eucjp":
		return japanese.EUCJP
	case "euckr", "cp949":
		return korean.EUCKR
	case "gb2312", "gbk", "cp936", "gb18030":
		return simplifiedchinese.GBK
	case "big5", "cp950":
		return traditionalchinese.Big5
	default:
		return nil
	}
}
