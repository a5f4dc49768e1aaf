package vocabimport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestColumnToIndex(t *testing.T) {
	tests := []struct {
		column string
		want   int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"a", 0},
		{"", -1},
		{"1", -1},
	}
	for _, tt := range tests {
		if got := columnToIndex(tt.column); got != tt.want {
			t.Errorf("columnToIndex(%q) = %d, want %d", tt.column, got, tt.want)
		}
	}
}

func TestImportCSV(t *testing.T) {
	path := writeCSV(t, "term,translation,example\nhola,hello,Hola amigo\nadios,bye,\n,missing-term,\ngracias,,\n")

	result, err := Import(DefaultConfig(path))
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if result.TotalProcessed != 4 {
		t.Errorf("processed = %d, want 4", result.TotalProcessed)
	}
	if result.Imported != 2 {
		t.Errorf("imported = %d, want 2", result.Imported)
	}
	if result.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", result.Skipped)
	}
	if len(result.Errors) != 2 {
		t.Errorf("errors = %d, want 2", len(result.Errors))
	}

	if len(result.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(result.Items))
	}
	first := result.Items[0]
	if first.Term != "hola" || first.Translation != "hello" || first.Example != "Hola amigo" {
		t.Errorf("first item = %+v", first)
	}
	if result.Items[1].Example != "" {
		t.Errorf("second item example = %q, want empty", result.Items[1].Example)
	}
}

func TestImportExcel(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]string{
		{"Term", "Translation", "Example"},
		{"cuenta", "account", "Abrir una cuenta"},
		{"ahorro", "savings", ""},
	}
	for i, row := range rows {
		for j, val := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue("Sheet1", cellName, val); err != nil {
				t.Fatal(err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "vocab.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	result, err := Import(DefaultConfig(path))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Imported != 2 || result.Skipped != 0 {
		t.Errorf("imported = %d, skipped = %d, want 2, 0", result.Imported, result.Skipped)
	}
	if result.Items[0].Term != "cuenta" {
		t.Errorf("first term = %q, want cuenta", result.Items[0].Term)
	}
}

func TestImportMissingFile(t *testing.T) {
	if _, err := Import(DefaultConfig("/nonexistent/vocab.xlsx")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
