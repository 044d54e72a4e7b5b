package excel

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"semgen/domain/core"
	"semgen/domain/sem"
	"semgen/internal"
	"semgen/internal/errors"

	"github.com/xuri/excelize/v2"
)

// WorkbookSource reads the rule sheets from the tabs of one .xlsx workbook.
// Tab names are the sheet titles ("System Variables", "Privileges", ...).
type WorkbookSource struct {
	filePath string
	logger   *internal.Logger
}

// NewWorkbookSource creates a source for the workbook at filePath
func NewWorkbookSource(filePath string, logger *internal.Logger) *WorkbookSource {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &WorkbookSource{filePath: filePath, logger: logger}
}

// Location returns the workbook path
func (s *WorkbookSource) Location() string {
	return s.filePath
}

// ReadSheet reads one tab of the workbook into rows
func (s *WorkbookSource) ReadSheet(ctx context.Context, kind sem.SheetKind) ([]sem.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound("workbook "+s.filePath, err)
	}

	startTime := time.Now()
	f, err := excelize.OpenFile(s.filePath)
	if err != nil {
		return nil, errors.InvalidInput("failed to open workbook "+s.filePath, err)
	}
	defer f.Close()

	sheetName := string(kind)
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, errors.NotFound(fmt.Sprintf("sheet %q in %s", sheetName, s.filePath),
			core.NewSheetNotFoundError(sheetName, s.filePath))
	}

	cells, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.InvalidInput(fmt.Sprintf("failed to read sheet %q", sheetName), err)
	}

	rows := processRows(cells)
	s.logger.Debug("[WorkbookSource] %s read in %.2fms (%d rows)",
		sheetName, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return rows, nil
}

// processRows converts raw cell rows into sheet rows. Blank rows are skipped
// and the first remaining row is the header, as for CSV exports.
func processRows(cells [][]string) []sem.Row {
	var nonBlank [][]string
	for _, row := range cells {
		if !isBlankRow(row) {
			nonBlank = append(nonBlank, row)
		}
	}
	if len(nonBlank) == 0 {
		return []sem.Row{}
	}

	// Extract headers from first row
	headerRow := nonBlank[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]sem.Row, 0, len(nonBlank)-1)
	for _, row := range nonBlank[1:] {
		rowData := make(sem.Row, len(headers))
		for j, header := range headers {
			if j < len(row) {
				rowData[header] = strings.TrimSpace(row[j])
			} else {
				rowData[header] = ""
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return dataRows
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
