package converters

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"convert-api/internal/domain/conversion"
)

func xlsxFixture(t *testing.T, rows [][]string) []byte {
	t.Helper()
	book := excelize.NewFile()
	defer book.Close()
	sheet := book.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		require.NoError(t, book.SetSheetRow(sheet, cell, &values))
	}
	var buf bytes.Buffer
	require.NoError(t, book.Write(&buf))
	return buf.Bytes()
}

func TestXLSXToCSV(t *testing.T) {
	input := xlsxFixture(t, [][]string{
		{"name", "city"},
		{"ada", "london"},
		{"grace", "arlington"},
	})

	result, err := NewXLSXToCSVProcessor().Convert(context.Background(), input, defaultCSV)
	require.NoError(t, err)

	got := strings.Split(strings.TrimSpace(string(result.Output)), "\n")
	require.Len(t, got, 3)
	assert.Equal(t, "name,city", got[0])
	assert.Equal(t, "ada,london", got[1])
	assert.Equal(t, "grace,arlington", got[2])
}

func TestXLSXToCSVRejectsGarbage(t *testing.T) {
	_, err := NewXLSXToCSVProcessor().Convert(context.Background(), []byte("not a workbook"), defaultCSV)
	require.Error(t, err)
}

func TestXLSToCSVRejectsGarbage(t *testing.T) {
	_, err := NewXLSToCSVProcessor().Convert(context.Background(), []byte("not an ole document"), defaultCSV)
	require.Error(t, err)
}

func TestCSVToXLSXRoundTrip(t *testing.T) {
	csvIn := []byte("id,value\n1,alpha\n2,beta\n")

	result, err := NewCSVToXLSXProcessor().Convert(context.Background(), csvIn, defaultXLSX)
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(result.Output))
	require.NoError(t, err)
	defer book.Close()

	require.Equal(t, []string{"Sheet1"}, book.GetSheetList())
	rows, err := book.GetRows("Sheet1")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"id", "value"},
		{"1", "alpha"},
		{"2", "beta"},
	}, rows)
}

func TestCSVToXLSXCustomSheetName(t *testing.T) {
	result, err := NewCSVToXLSXProcessor().Convert(context.Background(),
		[]byte("a,b\n1,2\n"), conversion.XLSXParams{SheetName: "Data"})
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(result.Output))
	require.NoError(t, err)
	defer book.Close()
	assert.Equal(t, []string{"Data"}, book.GetSheetList())
}

func TestCSVToJSON(t *testing.T) {
	csvIn := []byte("name,age\nada,36\ngrace,85\n")

	result, err := NewCSVToJSONProcessor().Convert(context.Background(), csvIn,
		conversion.JSONParams{Indent: ""})
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal(result.Output, &records))
	require.Len(t, records, 2)
	assert.Equal(t, map[string]string{"name": "ada", "age": "36"}, records[0])
	assert.Equal(t, map[string]string{"name": "grace", "age": "85"}, records[1])
}

func TestCSVToJSONRaggedRows(t *testing.T) {
	csvIn := []byte("a,b,c\n1,2\n")

	result, err := NewCSVToJSONProcessor().Convert(context.Background(), csvIn,
		conversion.JSONParams{Indent: ""})
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal(result.Output, &records))
	require.Len(t, records, 1)
	assert.Equal(t, map[string]string{"a": "1", "b": "2", "c": ""}, records[0])
}

func TestCSVToJSONEmptyInput(t *testing.T) {
	_, err := NewCSVToJSONProcessor().Convert(context.Background(), []byte(""),
		conversion.JSONParams{})
	require.Error(t, err)
}
