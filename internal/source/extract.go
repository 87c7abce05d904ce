// Package source extracts serial tokens from a submitted spreadsheet.
//
// Only the first sheet is consulted and its first row is the header. Every
// other column is ignored.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"nathanbeddoewebdev/wlsync/internal/domain"
	"nathanbeddoewebdev/wlsync/internal/serial"

	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultPath is where the form export is expected when none is configured.
	DefaultPath = "data/八位序列号收集（收集结果）.xlsx"

	// DefaultColumn is the header of the column holding submitted serials.
	DefaultColumn = "此处填写（必填）"
)

// Extraction is the result of reading one source.
type Extraction struct {
	// Tokens holds the unique normalized tokens.
	Tokens serial.Set

	// Sheet is the name of the sheet that was read.
	Sheet string

	// Rows is the number of data rows below the header.
	Rows int

	// Values is the number of non-blank cells in the serial column.
	Values int

	// Rejected lists the non-blank values that held no hex digits.
	Rejected []string
}

// Extract reads path and returns the normalized tokens found in column.
// A missing path returns an error wrapping domain.ErrNoInputFile.
func Extract(path, column string) (*Extraction, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("source: %s: %w", path, domain.ErrNoInputFile)
		}
		return nil, &ReadError{Path: path, Err: err}
	}

	tbl, err := readTable(path)
	if err != nil {
		return nil, err
	}
	return extractColumn(tbl, column)
}

func extractColumn(tbl *table, column string) (*Extraction, error) {
	var header []string
	if len(tbl.rows) > 0 {
		header = tbl.rows[0]
	}

	idx := columnIndex(header, column)
	if idx < 0 {
		return nil, &MissingColumnError{Column: column, Available: headerNames(header)}
	}

	ext := &Extraction{
		Tokens: serial.NewSet(),
		Sheet:  tbl.name,
		Rows:   len(tbl.rows) - 1,
	}
	for _, row := range tbl.rows[1:] {
		if idx >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[idx])
		if value == "" {
			continue
		}
		ext.Values++

		token, ok := serial.Normalize(value)
		if !ok {
			ext.Rejected = append(ext.Rejected, value)
			continue
		}
		ext.Tokens.Add(token)
	}
	return ext, nil
}

// columnIndex returns the position of the header matching column, or -1.
// Headers are compared after NFKC folding so full-width and ASCII
// punctuation match each other.
func columnIndex(header []string, column string) int {
	want := foldHeader(column)
	for i, h := range header {
		if foldHeader(h) == want {
			return i
		}
	}
	return -1
}

func foldHeader(s string) string {
	return norm.NFKC.String(strings.TrimSpace(s))
}

func headerNames(header []string) []string {
	names := make([]string, 0, len(header))
	for _, h := range header {
		if h = strings.TrimSpace(h); h != "" {
			names = append(names, h)
		}
	}
	return names
}
