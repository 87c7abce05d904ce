package source

import (
	"path/filepath"
	"strings"
)

// Format identifies how a source file is parsed.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// DetectFormat picks a format from the file extension. Anything that is not
// recognisably CSV is treated as a workbook.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return FormatCSV
	default:
		return FormatXLSX
	}
}
