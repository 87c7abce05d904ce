package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"nathanbeddoewebdev/wlsync/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a workbook whose first sheet holds rows, header first.
// Extra sheets are appended after it in order.
func writeWorkbook(t *testing.T, rows [][]any, extra map[string][][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	setRows(t, f, "Sheet1", rows)
	for name, sheetRows := range extra {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet failed: %v", err)
		}
		setRows(t, f, name, sheetRows)
	}

	path := filepath.Join(t.TempDir(), "submissions.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}

func setRows(t *testing.T, f *excelize.File, sheet string, rows [][]any) {
	t.Helper()
	for r, row := range rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName failed: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("SetCellValue failed: %v", err)
			}
		}
	}
}

func TestExtract_Workbook(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"提交者", "提交时间", DefaultColumn},
		{"alice", "2024-01-01", "AB.CD.12"},
		{"bob", "2024-01-02", "  12-ab-34  "},
		{"carol", "2024-01-03", nil},
		{"dave", "2024-01-04", "abcd12"},
		{"erin", "2024-01-05", "xyz"},
		{"frank", "2024-01-06", 12345678},
	}, nil)

	ext, err := Extract(path, DefaultColumn)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	want := []string{"12345678", "12ab34", "abcd12"}
	if diff := cmp.Diff(want, ext.Tokens.Sorted()); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if ext.Sheet != "Sheet1" {
		t.Errorf("expected sheet Sheet1, got %q", ext.Sheet)
	}
	if ext.Rows != 6 {
		t.Errorf("expected 6 data rows, got %d", ext.Rows)
	}
	if ext.Values != 5 {
		t.Errorf("expected 5 values, got %d", ext.Values)
	}
	if diff := cmp.Diff([]string{"xyz"}, ext.Rejected); diff != "" {
		t.Errorf("rejected mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_OnlyFirstSheet(t *testing.T) {
	path := writeWorkbook(t,
		[][]any{{DefaultColumn}, {"aa"}},
		map[string][][]any{"Second": {{DefaultColumn}, {"bb"}}},
	)

	ext, err := Extract(path, DefaultColumn)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if diff := cmp.Diff([]string{"aa"}, ext.Tokens.Sorted()); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]any{{"name", "serial"}, {"alice", "aa"}}, nil)

	_, err := Extract(path, DefaultColumn)
	if err == nil {
		t.Fatal("expected error for missing column, got nil")
	}
	if !errors.Is(err, domain.ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}

	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("expected *MissingColumnError, got %T", err)
	}
	if diff := cmp.Diff([]string{"name", "serial"}, mce.Available); diff != "" {
		t.Errorf("available mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_HeaderMatchesAcrossWidths(t *testing.T) {
	path := writeWorkbook(t, [][]any{{" 此处填写(必填) "}, {"ff"}}, nil)

	ext, err := Extract(path, DefaultColumn)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !ext.Tokens.Has("ff") {
		t.Errorf("expected token ff, got %v", ext.Tokens.Sorted())
	}
}

func TestExtract_NoInputFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultColumn)
	if !errors.Is(err, domain.ErrNoInputFile) {
		t.Errorf("expected ErrNoInputFile, got %v", err)
	}
}

func TestExtract_CorruptWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("definitely not a zip archive"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := Extract(path, DefaultColumn)
	if !errors.Is(err, domain.ErrSourceRead) {
		t.Errorf("expected ErrSourceRead, got %v", err)
	}
}

func TestExtract_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.csv")
	content := "\ufeff提交者," + DefaultColumn + "\nalice,AB.CD.12\nbob,\ncarol,ab.cd.12\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	ext, err := Extract(path, DefaultColumn)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if diff := cmp.Diff([]string{"abcd12"}, ext.Tokens.Sorted()); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if ext.Values != 2 {
		t.Errorf("expected 2 values, got %d", ext.Values)
	}
}

func TestExtract_EmptyCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := Extract(path, DefaultColumn)
	if !errors.Is(err, domain.ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"data/form.xlsx", FormatXLSX},
		{"data/form.XLSM", FormatXLSX},
		{"data/form.csv", FormatCSV},
		{"data/form.TSV", FormatCSV},
		{"data/form", FormatXLSX},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectFormat(tt.path); got != tt.want {
				t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
