// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/Neolvie/PollKiosk/layout"
	"github.com/Neolvie/PollKiosk/models"
)

const (
	// SelectedMark fills a multi-select option cell when the respondent
	// picked that option. Downstream spreadsheet consumers key on it.
	SelectedMark = "✓"

	// Two leading metadata columns: row ordinal and first-seen date.
	metaColumns = 2

	ordinalHeader = "№"
	dateHeader    = "Date"

	dateFormat = "2006-01-02 15:04:05"

	minColumnWidth = 8.0
	maxColumnWidth = 50.0
)

// Writer renders survey blocks into one worksheet. Column widths only
// ever grow, so a wide block never gets squeezed by a later narrow one.
type Writer struct {
	f      *excelize.File
	sheet  string
	widths map[int]float64

	frozen bool

	bannerStyle int
	headerStyle int
}

// NewWriter renames the workbook's default sheet and prepares styles.
func NewWriter(f *excelize.File, sheetName string) (*Writer, error) {
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bannerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create banner style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	return &Writer{
		f:           f,
		sheet:       sheetName,
		widths:      make(map[int]float64),
		bannerStyle: bannerStyle,
		headerStyle: headerStyle,
	}, nil
}

// WriteBlock renders one survey block (title banner, header tiers, data
// rows) starting at startRow and returns the next unused row index. A
// respondent with no answer to some question renders blank cells there;
// partial completion is not an error.
func (w *Writer) WriteBlock(title string, plan layout.ColumnPlan, rows []models.RespondentRow, startRow int) (int, error) {
	totalCols := metaColumns + plan.Width()
	hasSub := plan.HasMultiSelect()

	// Title banner across all columns
	if err := w.setCell(1, startRow, title); err != nil {
		return 0, err
	}
	if err := w.mergeRange(1, startRow, totalCols, startRow); err != nil {
		return 0, err
	}
	if err := w.styleRange(1, startRow, totalCols, startRow, w.bannerStyle); err != nil {
		return 0, err
	}

	headerRow := startRow + 1
	if err := w.writeHeaders(plan, headerRow, hasSub); err != nil {
		return 0, err
	}

	dataStart := headerRow + 1
	if hasSub {
		dataStart++
	}

	// Freeze the first block's banner and headers for the whole sheet
	if !w.frozen {
		topLeft, err := excelize.CoordinatesToCellName(1, dataStart)
		if err != nil {
			return 0, fmt.Errorf("failed to compute pane anchor: %w", err)
		}
		err = w.f.SetPanes(w.sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      dataStart - 1,
			TopLeftCell: topLeft,
			ActivePane:  "bottomLeft",
		})
		if err != nil {
			return 0, fmt.Errorf("failed to freeze panes: %w", err)
		}
		w.frozen = true
	}

	for i, row := range rows {
		if err := w.writeDataRow(plan, dataStart+i, i+1, row); err != nil {
			return 0, err
		}
	}

	return dataStart + len(rows), nil
}

// writeHeaders emits the question header tier and, when any multi-select
// question is present, the option sub-header tier below it.
func (w *Writer) writeHeaders(plan layout.ColumnPlan, headerRow int, hasSub bool) error {
	if err := w.setCell(1, headerRow, ordinalHeader); err != nil {
		return err
	}
	if err := w.setCell(2, headerRow, dateHeader); err != nil {
		return err
	}

	for _, span := range plan.Spans {
		col := metaColumns + 1 + span.Start
		if err := w.setCell(col, headerRow, span.Text); err != nil {
			return err
		}
		if span.MultiSelect && span.Width > 1 {
			if err := w.mergeRange(col, headerRow, col+span.Width-1, headerRow); err != nil {
				return err
			}
		}
	}

	lastRow := headerRow
	if hasSub {
		subRow := headerRow + 1
		if err := w.setCell(1, subRow, ordinalHeader); err != nil {
			return err
		}
		if err := w.setCell(2, subRow, dateHeader); err != nil {
			return err
		}
		// Option labels under multi-select headers; single-choice columns
		// repeat the question text to keep the grid aligned.
		for i, spec := range plan.Specs {
			if err := w.setCell(metaColumns+1+i, subRow, spec.Label); err != nil {
				return err
			}
		}
		lastRow = subRow
	}

	return w.styleRange(1, headerRow, metaColumns+plan.Width(), lastRow, w.headerStyle)
}

func (w *Writer) writeDataRow(plan layout.ColumnPlan, rowIdx, ordinal int, row models.RespondentRow) error {
	if err := w.setCell(1, rowIdx, ordinal); err != nil {
		return err
	}
	if err := w.setCell(2, rowIdx, row.FirstSeenAt.Format(dateFormat)); err != nil {
		return err
	}

	for i, spec := range plan.Specs {
		cell, answered := row.Answers[spec.QuestionID]
		if !answered {
			continue
		}

		value := ""
		if spec.OptionIndex == nil {
			// Single choice: first recorded vote wins the cell
			if len(cell.ChosenTexts) > 0 {
				value = cell.ChosenTexts[0]
			}
		} else if containsIndex(cell.ChosenIndices, *spec.OptionIndex) {
			value = SelectedMark
		}

		if value == "" {
			continue
		}
		if err := w.setCell(metaColumns+1+i, rowIdx, value); err != nil {
			return err
		}
	}

	return nil
}

// setCell writes a value and grows the column width to fit it.
func (w *Writer) setCell(col, row int, value interface{}) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	if err := w.f.SetCellValue(w.sheet, name, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", name, err)
	}

	if text, ok := value.(string); ok {
		if err := w.growColumn(col, text); err != nil {
			return err
		}
	}
	return nil
}

// growColumn widens a column to fit text, capped at maxColumnWidth.
// Widths never shrink, so blocks written later cannot narrow columns a
// wider block already claimed.
func (w *Writer) growColumn(col int, text string) error {
	width := float64(utf8.RuneCountInString(text)) + 2
	if width < minColumnWidth {
		width = minColumnWidth
	}
	if width > maxColumnWidth {
		width = maxColumnWidth
	}
	if width <= w.widths[col] {
		return nil
	}
	w.widths[col] = width

	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return fmt.Errorf("failed to compute column name: %w", err)
	}
	if err := w.f.SetColWidth(w.sheet, name, name, width); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	return nil
}

func (w *Writer) mergeRange(startCol, startRow, endCol, endRow int) error {
	if endCol < startCol {
		endCol = startCol
	}
	start, err := excelize.CoordinatesToCellName(startCol, startRow)
	if err != nil {
		return fmt.Errorf("failed to compute merge start: %w", err)
	}
	end, err := excelize.CoordinatesToCellName(endCol, endRow)
	if err != nil {
		return fmt.Errorf("failed to compute merge end: %w", err)
	}
	if start == end {
		return nil
	}
	if err := w.f.MergeCell(w.sheet, start, end); err != nil {
		return fmt.Errorf("failed to merge %s:%s: %w", start, end, err)
	}
	return nil
}

func (w *Writer) styleRange(startCol, startRow, endCol, endRow, style int) error {
	if endCol < startCol {
		endCol = startCol
	}
	start, err := excelize.CoordinatesToCellName(startCol, startRow)
	if err != nil {
		return fmt.Errorf("failed to compute style start: %w", err)
	}
	end, err := excelize.CoordinatesToCellName(endCol, endRow)
	if err != nil {
		return fmt.Errorf("failed to compute style end: %w", err)
	}
	if err := w.f.SetCellStyle(w.sheet, start, end, style); err != nil {
		return fmt.Errorf("failed to style %s:%s: %w", start, end, err)
	}
	return nil
}

func containsIndex(indices []int, want int) bool {
	for _, idx := range indices {
		if idx == want {
			return true
		}
	}
	return false
}
