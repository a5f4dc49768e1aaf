package vocabimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/finlingo/finlingo/internal/catalog"
)

// Config controls how a spreadsheet maps onto vocabulary items.
type Config struct {
	FilePath          string
	TermColumn        string // column letter, e.g. "A"
	TranslationColumn string
	ExampleColumn     string
	SheetName         string
	StartRow          int // 1-based; rows before it are skipped
}

// DefaultConfig maps the conventional term/translation/example layout
// with a header row.
func DefaultConfig(path string) Config {
	return Config{
		FilePath:          path,
		TermColumn:        "A",
		TranslationColumn: "B",
		ExampleColumn:     "C",
		SheetName:         "Sheet1",
		StartRow:          2,
	}
}

// Result summarizes an import run. Row-level problems are collected in
// Errors rather than aborting the run.
type Result struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string

	Items []catalog.VocabularyItem
}

// Import reads vocabulary from an .xlsx or .csv file.
func Import(cfg Config) (*Result, error) {
	if strings.EqualFold(filepath.Ext(cfg.FilePath), ".csv") {
		return importCSV(cfg)
	}
	return importExcel(cfg)
}

func importExcel(cfg Config) (*Result, error) {
	f, err := excelize.OpenFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(cfg.SheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", cfg.SheetName, err)
	}

	result := &Result{}
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < cfg.StartRow {
			continue
		}
		result.TotalProcessed++
		addRow(result, cfg, row, rowNum)
	}
	return result, nil
}

func importCSV(cfg Config) (*Result, error) {
	file, err := os.Open(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	result := &Result{}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		rowNum++
		if rowNum < cfg.StartRow {
			continue
		}
		result.TotalProcessed++
		addRow(result, cfg, row, rowNum)
	}
	return result, nil
}

func addRow(result *Result, cfg Config, row []string, rowNum int) {
	item, err := itemFromRow(cfg, row)
	if err != nil {
		result.Skipped++
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
		return
	}
	result.Items = append(result.Items, item)
	result.Imported++
}

func itemFromRow(cfg Config, row []string) (catalog.VocabularyItem, error) {
	term := cell(row, cfg.TermColumn)
	translation := cell(row, cfg.TranslationColumn)

	if term == "" {
		return catalog.VocabularyItem{}, fmt.Errorf("empty term")
	}
	if translation == "" {
		return catalog.VocabularyItem{}, fmt.Errorf("empty translation")
	}

	return catalog.VocabularyItem{
		Term:        term,
		Translation: translation,
		Example:     cell(row, cfg.ExampleColumn),
	}, nil
}

// cell returns the trimmed value at the given column letter, or "" when
// the row is too short.
func cell(row []string, column string) string {
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnToIndex converts an Excel column letter to a zero-based index.
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	index := 0
	for i := 0; i < len(column); i++ {
		c := column[i]
		if c < 'A' || c > 'Z' {
			return -1
		}
		index = index*26 + int(c-'A'+1)
	}
	return index - 1
}
