package importer

import (
	"fmt"
	"io"

	"roster-importer/core/grid"

	"github.com/xuri/excelize/v2"
)

// DocumentReader turns a roster document into a cell grid.
type DocumentReader interface {
	ReadGrid(r io.Reader) (grid.Grid, error)
}

// XLSXReader reads the first sheet of an xlsx workbook as the roster
// grid.
type XLSXReader struct{}

// NewXLSXReader creates a reader for xlsx roster documents.
func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

// ReadGrid parses the workbook and returns the first sheet's cells.
func (x *XLSXReader) ReadGrid(r io.Reader) (grid.Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &UnsupportedFormatError{Reason: fmt.Sprintf("not an xlsx workbook: %v", err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &UnsupportedFormatError{Reason: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &UnsupportedFormatError{Reason: fmt.Sprintf("failed to read sheet %q: %v", sheets[0], err)}
	}
	if len(rows) == 0 {
		return nil, &UnsupportedFormatError{Reason: "first sheet is empty"}
	}

	return grid.Grid(rows), nil
}
