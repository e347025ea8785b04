package conversion

import "fmt"

// Option is a caller-supplied processing flag that biases a processor's
// effective parameters away from the registry defaults.
type Option string

const (
	OptionOptimizeSize   Option = "optimize-size"
	OptionImproveQuality Option = "improve-quality"
	OptionReduceNoise    Option = "reduce-noise"
)

// ParseOptions maps raw flag strings onto known options, returning unknown
// flags separately so the caller can log them.
func ParseOptions(raw []string) (known []Option, unknown []string) {
	for _, flag := range raw {
		switch opt := Option(flag); opt {
		case OptionOptimizeSize, OptionImproveQuality, OptionReduceNoise:
			known = append(known, opt)
		default:
			unknown = append(unknown, flag)
		}
	}
	return known, unknown
}

func hasOption(opts []Option, want Option) bool {
	for _, o := range opts {
		if o == want {
			return true
		}
	}
	return false
}

// Params is the typed per-output-format configuration carried by a registry
// entry. WithOptions returns an adjusted copy; the receiver is never mutated.
type Params interface {
	Validate() error
	WithOptions(opts []Option) Params
}

// JPEGParams configures JPEG encoding.
type JPEGParams struct {
	Quality int
}

func (p JPEGParams) Validate() error {
	if p.Quality < 1 || p.Quality > 100 {
		return fmt.Errorf("jpeg quality %d out of range [1,100]", p.Quality)
	}
	return nil
}

func (p JPEGParams) WithOptions(opts []Option) Params {
	if hasOption(opts, OptionOptimizeSize) {
		p.Quality = 60
	}
	if hasOption(opts, OptionImproveQuality) {
		p.Quality = 95
	}
	return p
}

// PNG compression levels, mirroring image/png.
const (
	PNGCompressionDefault = iota
	PNGCompressionSpeed
	PNGCompressionSize
)

// PNGParams configures PNG encoding.
type PNGParams struct {
	Compression int
}

func (p PNGParams) Validate() error {
	if p.Compression < PNGCompressionDefault || p.Compression > PNGCompressionSize {
		return fmt.Errorf("png compression level %d unknown", p.Compression)
	}
	return nil
}

func (p PNGParams) WithOptions(opts []Option) Params {
	if hasOption(opts, OptionOptimizeSize) {
		p.Compression = PNGCompressionSize
	}
	return p
}

// GIFParams configures GIF encoding.
type GIFParams struct {
	NumColors int
}

func (p GIFParams) Validate() error {
	if p.NumColors < 2 || p.NumColors > 256 {
		return fmt.Errorf("gif palette size %d out of range [2,256]", p.NumColors)
	}
	return nil
}

func (p GIFParams) WithOptions(opts []Option) Params {
	if hasOption(opts, OptionOptimizeSize) {
		p.NumColors = 64
	}
	if hasOption(opts, OptionImproveQuality) {
		p.NumColors = 256
	}
	return p
}

// BMPParams configures BMP encoding. BMP has no tunables; the type exists so
// every output format carries a Params value.
type BMPParams struct{}

func (p BMPParams) Validate() error { return nil }
func (p BMPParams) WithOptions(opts []Option) Params { return p }

// TIFF compression schemes.
const (
	TIFFCompressionNone = iota
	TIFFCompressionDeflate
)

// TIFFParams configures TIFF encoding.
type TIFFParams struct {
	Compression int
}

func (p TIFFParams) Validate() error {
	if p.Compression < TIFFCompressionNone || p.Compression > TIFFCompressionDeflate {
		return fmt.Errorf("tiff compression %d unknown", p.Compression)
	}
	return nil
}

func (p TIFFParams) WithOptions(opts []Option) Params {
	if hasOption(opts, OptionOptimizeSize) {
		p.Compression = TIFFCompressionDeflate
	}
	return p
}

// PDFParams configures PDF page generation.
type PDFParams struct {
	PageSize    string // "A4", "Letter"
	MarginMM    float64
	FontSize    float64
	JPEGQuality int // quality for raster content embedded into the page
}

func (p PDFParams) Validate() error {
	switch p.PageSize {
	case "A4", "A3", "Letter", "Legal":
	default:
		return fmt.Errorf("pdf page size %q unsupported", p.PageSize)
	}
	if p.MarginMM < 0 {
		return fmt.Errorf("pdf margin %.1f negative", p.MarginMM)
	}
	return nil
}

func (p PDFParams) WithOptions(opts []Option) Params {
	if hasOption(opts, OptionOptimizeSize) && p.JPEGQuality > 0 {
		p.JPEGQuality = 60
	}
	if hasOption(opts, OptionImproveQuality) && p.JPEGQuality > 0 {
		p.JPEGQuality = 95
	}
	return p
}

// MarkdownParams configures HTML-to-Markdown output.
type MarkdownParams struct {
	KeepTables bool
}

func (p MarkdownParams) Validate() error { return nil }
func (p MarkdownParams) WithOptions(opts []Option) Params { return p }

// HTMLParams configures Markdown-to-HTML rendering.
type HTMLParams struct {
	Standalone bool // wrap fragment in a full document
}

func (p HTMLParams) Validate() error { return nil }
func (p HTMLParams) WithOptions(opts []Option) Params { return p }

// TextParams configures plain-text outputs.
type TextParams struct{}

func (p TextParams) Validate() error { return nil }
func (p TextParams) WithOptions(opts []Option) Params { return p }

// CSVParams configures CSV output.
type CSVParams struct {
	Delimiter rune
}

func (p CSVParams) Validate() error {
	if p.Delimiter == 0 {
		return fmt.Errorf("csv delimiter unset")
	}
	return nil
}

func (p CSVParams) WithOptions(opts []Option) Params { return p }

// XLSXParams configures XLSX workbook output.
type XLSXParams struct {
	SheetName string
}

func (p XLSXParams) Validate() error {
	if p.SheetName == "" {
		return fmt.Errorf("xlsx sheet name empty")
	}
	return nil
}

func (p XLSXParams) WithOptions(opts []Option) Params { return p }

// JSONParams configures JSON output.
type JSONParams struct {
	Indent string
}

func (p JSONParams) Validate() error { return nil }

func (p JSONParams) WithOptions(opts []Option) Params {
	if hasOption(opts, OptionOptimizeSize) {
		p.Indent = ""
	}
	return p
}
