package source

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// table is the first sheet of a source: a name plus its rows, header first.
type table struct {
	name string
	rows [][]string
}

func readTable(path string) (*table, error) {
	switch DetectFormat(path) {
	case FormatCSV:
		return readCSV(path)
	default:
		return readWorkbook(path)
	}
}

// readWorkbook loads the first sheet of an Excel workbook. Other sheets are
// ignored.
func readWorkbook(path string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ReadError{Path: path, Err: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return &table{name: sheets[0], rows: rows}, nil
}

func readCSV(path string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		r.Comma = '\t'
	}

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		rows = append(rows, record)
	}

	// Spreadsheet exports often start with a UTF-8 byte order mark.
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return &table{name: filepath.Base(path), rows: rows}, nil
}
