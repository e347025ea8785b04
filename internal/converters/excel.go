package converters

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"convert-api/internal/domain/conversion"
)

// XLSXToCSVProcessor flattens the first sheet of an XLSX workbook to CSV.
type XLSXToCSVProcessor struct{}

func NewXLSXToCSVProcessor() *XLSXToCSVProcessor {
	return &XLSXToCSVProcessor{}
}

func (p *XLSXToCSVProcessor) Convert(ctx context.Context, input []byte, params conversion.Params) (*conversion.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, ok := params.(conversion.CSVParams)
	if !ok {
		return nil, fmt.Errorf("csv output wants CSVParams, got %T", params)
	}

	book, err := excelize.OpenReader(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	out, err := writeCSV(rows, cfg.Delimiter)
	if err != nil {
		return nil, err
	}
	return &conversion.Result{Output: out}, nil
}

// CSVToXLSXProcessor loads CSV rows into a single-sheet XLSX workbook.
type CSVToXLSXProcessor struct{}

func NewCSVToXLSXProcessor() *CSVToXLSXProcessor {
	return &CSVToXLSXProcessor{}
}

func (p *CSVToXLSXProcessor) Convert(ctx context.Context, input []byte, params conversion.Params) (*conversion.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, ok := params.(conversion.XLSXParams)
	if !ok {
		return nil, fmt.Errorf("xlsx output wants XLSXParams, got %T", params)
	}

	rows, err := readCSV(input)
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	book := excelize.NewFile()
	defer book.Close()
	defaultSheet := book.GetSheetName(0)
	if cfg.SheetName != defaultSheet {
		if err := book.SetSheetName(defaultSheet, cfg.SheetName); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := book.SetSheetRow(cfg.SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := book.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return &conversion.Result{Output: buf.Bytes()}, nil
}

// XLSToCSVProcessor flattens the first sheet of a legacy XLS workbook to
// CSV. The xls library wants a file path, so the buffer goes through a
// temp file.
type XLSToCSVProcessor struct{}

func NewXLSToCSVProcessor() *XLSToCSVProcessor {
	return &XLSToCSVProcessor{}
}

func (p *XLSToCSVProcessor) Convert(ctx context.Context, input []byte, params conversion.Params) (*conversion.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, ok := params.(conversion.CSVParams)
	if !ok {
		return nil, fmt.Errorf("csv output wants CSVParams, got %T", params)
	}

	tmp, err := os.CreateTemp("", "convert-*.xls")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, bytes.NewReader(input)); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	book, err := xls.Open(tmpPath, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	sheet := book.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	var rows [][]string
	for rowIdx := 0; rowIdx <= int(sheet.MaxRow); rowIdx++ {
		row := sheet.Row(rowIdx)
		if row == nil {
			continue
		}
		var cells []string
		for colIdx := row.FirstCol(); colIdx <= row.LastCol(); colIdx++ {
			cells = append(cells, row.Col(colIdx))
		}
		rows = append(rows, cells)
	}

	out, err := writeCSV(rows, cfg.Delimiter)
	if err != nil {
		return nil, err
	}
	return &conversion.Result{Output: out}, nil
}

func readCSV(input []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(input))
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func writeCSV(rows [][]string, delimiter rune) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = delimiter
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
