package converters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"convert-api/internal/domain/conversion"
)

// HTMLToMarkdownProcessor turns an HTML document into commonmark text.
type HTMLToMarkdownProcessor struct{}

func NewHTMLToMarkdownProcessor() *HTMLToMarkdownProcessor {
	return &HTMLToMarkdownProcessor{}
}

func (p *HTMLToMarkdownProcessor) Convert(ctx context.Context, input []byte, params conversion.Params) (*conversion.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, ok := params.(conversion.MarkdownParams)
	if !ok {
		return nil, fmt.Errorf("markdown output wants MarkdownParams, got %T", params)
	}

	plugins := []converter.Plugin{
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(
			commonmark.WithHeadingStyle("atx"),
		),
	}
	if cfg.KeepTables {
		plugins = append(plugins, table.NewTablePlugin())
	}

	conv := converter.NewConverter(converter.WithPlugins(plugins...))
	md, err := conv.ConvertString(normalizeToUTF8(input))
	if err != nil {
		return nil, fmt.Errorf("convert html: %w", err)
	}

	return &conversion.Result{Output: []byte(md)}, nil
}

const htmlShell = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body>
%s</body>
</html>
`

// MarkdownToHTMLProcessor renders markdown to HTML with GFM extensions.
type MarkdownToHTMLProcessor struct{}

func NewMarkdownToHTMLProcessor() *MarkdownToHTMLProcessor {
	return &MarkdownToHTMLProcessor{}
}

func (p *MarkdownToHTMLProcessor) Convert(ctx context.Context, input []byte, params conversion.Params) (*conversion.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, ok := params.(conversion.HTMLParams)
	if !ok {
		return nil, fmt.Errorf("html output wants HTMLParams, got %T", params)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(normalizeToUTF8(input)), &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	out := buf.Bytes()
	if cfg.Standalone {
		out = []byte(fmt.Sprintf(htmlShell, buf.String()))
	}
	return &conversion.Result{Output: out}, nil
}
