package conversion

import "context"

// FileInfo describes one side of a conversion.
type FileInfo struct {
	Format Format `json:"format"`
	Size   int64  `json:"size"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Pages  int    `json:"pages,omitempty"`
}

// ProcessingInfo summarizes what the conversion did.
type ProcessingInfo struct {
	AppliedOptions   []string `json:"appliedOptions"`
	SizeChange       int64    `json:"sizeChange"`
	CompressionRatio float64  `json:"compressionRatio"`
	DurationMs       int64    `json:"durationMs"`
}

// Metadata carries before/after/processing information for a conversion.
type Metadata struct {
	Original   FileInfo       `json:"original"`
	Final      FileInfo       `json:"final"`
	Processing ProcessingInfo `json:"processing"`
}

// Result is what a processor returns. Output must be non-empty on success;
// the dispatcher treats an empty output the same as a processor error.
type Result struct {
	Output   []byte
	Original FileInfo
	Final    FileInfo
}

// Processor performs one specific format conversion. Implementations wrap a
// single codec library call and must not retain the input buffer.
type Processor interface {
	Convert(ctx context.Context, input []byte, params Params) (*Result, error)
}

// ProcessorFunc adapts a plain function to the Processor interface.
type ProcessorFunc func(ctx context.Context, input []byte, params Params) (*Result, error)

func (f ProcessorFunc) Convert(ctx context.Context, input []byte, params Params) (*Result, error) {
	return f(ctx, input, params)
}
