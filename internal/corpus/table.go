// Package corpus loads the delimited annotation tables RefTag reads:
// CSV and TSV via encoding/csv, XLSX via excelize.
package corpus

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptyTable is returned when the source file has no rows at all.
var ErrEmptyTable = errors.New("corpus file is empty")

// Table is an in-memory delimited table with normalized column names.
// Rows are padded or trimmed to header width.
type Table struct {
	Headers []string
	Rows    [][]string
	index   map[string]int
}

// Load reads a CSV, TSV, or XLSX corpus file into a Table.
// The format is chosen by file extension.
func Load(path string) (*Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCSV(content, false)
	case ".tsv":
		return parseCSV(content, true)
	case ".xlsx":
		return parseExcel(content)
	default:
		return nil, fmt.Errorf("unsupported corpus file type: %s", path)
	}
}

func parseCSV(content []byte, isTSV bool) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	if isTSV {
		reader.Comma = '\t'
	}
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	// Rows are padded to header width in newTable instead.
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(all) == 0 {
		return nil, ErrEmptyTable
	}

	return newTable(all[0], all[1:]), nil
}

func parseExcel(content []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet, err := dataSheet(f)
	if err != nil {
		return nil, err
	}

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	if len(all) == 0 {
		return nil, ErrEmptyTable
	}

	return newTable(all[0], all[1:]), nil
}

// dataSheet skips common metadata sheets; if every sheet looks like
// metadata, the last one is assumed to hold the data.
func dataSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New("no sheets in xlsx file")
	}

	skip := map[string]bool{
		"info":     true,
		"metadata": true,
		"about":    true,
		"readme":   true,
		"notes":    true,
	}
	for _, s := range sheets {
		if !skip[strings.ToLower(s)] {
			return s, nil
		}
	}
	return sheets[len(sheets)-1], nil
}

func newTable(headers []string, rows [][]string) *Table {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		headers[i] = NormalizeColumnName(h)
		if _, ok := index[headers[i]]; !ok {
			index[headers[i]] = i
		}
	}

	for i, row := range rows {
		if len(row) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, row)
			rows[i] = padded
		} else if len(row) > len(headers) {
			rows[i] = row[:len(headers)]
		}
	}

	return &Table{Headers: headers, Rows: rows, index: index}
}

var nonIdent = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeColumnName lowercases, trims, and collapses runs of
// non-alphanumeric characters to single underscores, so "Case Number" and
// "case_number" address the same column.
func NormalizeColumnName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = nonIdent.ReplaceAllString(n, "_")
	return strings.Trim(n, "_")
}

// Column returns the index of the named column after normalization.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[NormalizeColumnName(name)]
	return i, ok
}

// Cell returns row r's value in the named column, or "" when the column
// does not exist.
func (t *Table) Cell(r int, name string) string {
	i, ok := t.Column(name)
	if !ok {
		return ""
	}
	return t.Rows[r][i]
}
