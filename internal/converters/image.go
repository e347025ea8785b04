// Package converters contains the per-pair conversion processors. Each
// processor wraps a single codec library behind the conversion.Processor
// contract and never inspects request state.
package converters

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"convert-api/internal/domain/conversion"
)

// ImageProcessor converts one raster format into another. Decoding and
// encoding both happen fully in memory; the pipeline performs no resizing.
type ImageProcessor struct {
	input  conversion.Format
	output conversion.Format
}

// NewImageProcessor builds a processor for the given raster pair.
func NewImageProcessor(input, output conversion.Format) *ImageProcessor {
	return &ImageProcessor{input: input, output: output}
}

func (p *ImageProcessor) Convert(ctx context.Context, input []byte, params conversion.Params) (*conversion.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := decodeImage(input, p.input)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.input, err)
	}
	bounds := img.Bounds()

	var buf bytes.Buffer
	if err := encodeImage(&buf, img, p.output, params); err != nil {
		return nil, fmt.Errorf("encode %s: %w", p.output, err)
	}

	return &conversion.Result{
		Output:   buf.Bytes(),
		Original: conversion.FileInfo{Width: bounds.Dx(), Height: bounds.Dy()},
		Final:    conversion.FileInfo{Width: bounds.Dx(), Height: bounds.Dy()},
	}, nil
}

func decodeImage(input []byte, format conversion.Format) (image.Image, error) {
	r := bytes.NewReader(input)
	switch format {
	case conversion.FormatJPG, conversion.FormatJPEG:
		return jpeg.Decode(r)
	case conversion.FormatPNG:
		return png.Decode(r)
	case conversion.FormatGIF:
		return gif.Decode(r)
	case conversion.FormatBMP:
		return bmp.Decode(r)
	case conversion.FormatTIFF:
		return tiff.Decode(r)
	case conversion.FormatWEBP:
		return webp.Decode(r)
	}
	return nil, fmt.Errorf("no decoder for format %s", format)
}

func encodeImage(buf *bytes.Buffer, img image.Image, format conversion.Format, params conversion.Params) error {
	switch format {
	case conversion.FormatJPG, conversion.FormatJPEG:
		p, ok := params.(conversion.JPEGParams)
		if !ok {
			return fmt.Errorf("jpeg output wants JPEGParams, got %T", params)
		}
		return jpeg.Encode(buf, img, &jpeg.Options{Quality: p.Quality})
	case conversion.FormatPNG:
		p, ok := params.(conversion.PNGParams)
		if !ok {
			return fmt.Errorf("png output wants PNGParams, got %T", params)
		}
		enc := png.Encoder{CompressionLevel: pngLevel(p.Compression)}
		return enc.Encode(buf, img)
	case conversion.FormatGIF:
		p, ok := params.(conversion.GIFParams)
		if !ok {
			return fmt.Errorf("gif output wants GIFParams, got %T", params)
		}
		return gif.Encode(buf, img, &gif.Options{NumColors: p.NumColors})
	case conversion.FormatBMP:
		return bmp.Encode(buf, img)
	case conversion.FormatTIFF:
		p, ok := params.(conversion.TIFFParams)
		if !ok {
			return fmt.Errorf("tiff output wants TIFFParams, got %T", params)
		}
		comp := tiff.Uncompressed
		if p.Compression == conversion.TIFFCompressionDeflate {
			comp = tiff.Deflate
		}
		return tiff.Encode(buf, img, &tiff.Options{Compression: comp})
	}
	return fmt.Errorf("no encoder for format %s", format)
}

func pngLevel(level int) png.CompressionLevel {
	switch level {
	case conversion.PNGCompressionSpeed:
		return png.BestSpeed
	case conversion.PNGCompressionSize:
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}
