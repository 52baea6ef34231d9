// Package rowsource reads spreadsheet rows as column-name keyed mappings.
//
// It is the only package that touches the binary workbook format; the rest
// of the pipeline operates on plain Row values and can be driven from
// in-memory data in tests.
package rowsource

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Recognized column headers of the Constraints sheet.
const (
	ColStructureIDs   = "Structure IDs"
	ColStructureCodes = "Structure Codes"
	ColIDAliases      = "IDAliases"
	ColDVHObjective   = "DVH Objective"
	ColEvalPoint      = "Evaluation Point"
	ColVariation      = "Variation"
	ColSource         = "Source"
	ColPriority       = "Priority"
	ColTemplateID     = "TemplateID"
	ColZusatzInfo     = "ZusatzInfo"
	ColEndpoint       = "Endpoint (grade >= 3)"
)

// headerVariants maps accepted alternate spellings to canonical headers.
var headerVariants = map[string]string{
	"Zusatzinfo":              ColZusatzInfo,
	"Endpoint (grade ≥ 3)": ColEndpoint,
}

// Row is one spreadsheet row keyed by canonical column header.
type Row struct {
	// Num is the 1-based spreadsheet row number.
	Num int
	// Cells maps canonical header to the trimmed cell value.
	Cells map[string]string
}

// Get returns the trimmed value of the named column, or "" when absent.
func (r Row) Get(col string) string {
	return r.Cells[col]
}

// Sheet is the header and data rows of one worksheet.
type Sheet struct {
	Name   string
	Header []string
	Rows   []Row
}

// HasColumn reports whether the header contains the canonical column name.
func (s *Sheet) HasColumn(name string) bool {
	for _, h := range s.Header {
		if h == name {
			return true
		}
	}
	return false
}

// Source is an open workbook yielding rows of named sheets.
type Source struct {
	id   string
	name string
	file *excelize.File
}

// Open opens the workbook at path.
func Open(path string) (*Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Source{id: uuid.New().String(), name: path, file: f}, nil
}

// OpenReader opens a workbook from a reader; name is used in messages only.
func OpenReader(r io.Reader, name string) (*Source, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", name, err)
	}
	return &Source{id: uuid.New().String(), name: name, file: f}, nil
}

// Close releases the underlying workbook.
func (s *Source) Close() error {
	return s.file.Close()
}

// ID returns the unique id assigned to this source when it was opened.
func (s *Source) ID() string {
	return s.id
}

// Sheet reads the named worksheet. The first row is the header; alternate
// header spellings are canonicalized. Data rows keep their spreadsheet row
// numbers so validation errors can point back at the cell.
func (s *Source) Sheet(name string) (*Sheet, error) {
	rows, err := s.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", name, s.name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q of %s has no header row", name, s.name)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = CanonicalHeader(h)
	}

	sheet := &Sheet{Name: name, Header: header}
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		cells := make(map[string]string)
		for colIdx, v := range rows[rowIdx] {
			if colIdx >= len(header) || header[colIdx] == "" {
				continue
			}
			cells[header[colIdx]] = strings.TrimSpace(v)
		}
		sheet.Rows = append(sheet.Rows, Row{Num: rowIdx + 1, Cells: cells})
	}

	return sheet, nil
}

// CanonicalHeader trims a header cell and resolves accepted spelling
// variants to the canonical column name.
func CanonicalHeader(h string) string {
	h = strings.TrimSpace(h)
	if canonical, ok := headerVariants[h]; ok {
		return canonical
	}
	return h
}
