// Package spreadsheet renders export workbooks to xlsx and reads
// uploaded workbooks back as raw rows, on top of excelize.
package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"io"

	domain "github.com/rosterhub/excelsync/internal/domain/roster"
	"github.com/xuri/excelize/v2"
)

const (
	// TitleRow and DataStartRow fix the sheet layout: three metadata
	// rows, one blank row, the styled title row, then data.
	TitleRow     = 5
	DataStartRow = 6

	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"

	titleFillColor = "D3D3D3"
)

var titleCells = []any{"User Name", "User Email", "Created By", "Created Date", "Modified By", "Modified Date"}

var (
	ErrNoSheets           = errors.New("workbook has no sheets")
	ErrDuplicateSheetName = errors.New("duplicate sheet name")
)

type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

// Write serializes the workbook model to w as an xlsx file.
func (c *Codec) Write(wb domain.Workbook, w io.Writer) error {
	f, err := c.render(wb)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// ReadRows opens the file at path and returns the first sheet's rows
// as raw strings. Trailing empty cells are dropped by excelize, so
// callers must tolerate ragged rows.
func (c *Codec) ReadRows(ctx context.Context, path string) ([][]string, error) {
	_ = ctx

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func (c *Codec) render(wb domain.Workbook) (*excelize.File, error) {
	f := excelize.NewFile()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: thinBorders(),
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{titleFillColor}},
	})
	if err != nil {
		return nil, fmt.Errorf("title style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("data style: %w", err)
	}

	// excelize reuses the existing index when NewSheet is handed a name
	// that already exists, which would let a second group with the same
	// name overwrite the first group's rows. Refusing the workbook keeps
	// the export all-or-nothing.
	seen := make(map[string]struct{}, len(wb.Sheets))

	for i, sheet := range wb.Sheets {
		if _, ok := seen[sheet.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSheetName, sheet.Name)
		}
		seen[sheet.Name] = struct{}{}

		if i == 0 {
			// Reuse the default sheet so the workbook starts with the
			// first group instead of an empty Sheet1.
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return nil, fmt.Errorf("rename sheet %s: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", sheet.Name, err)
		}

		if err := renderSheet(f, sheet, titleStyle, dataStyle); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func renderSheet(f *excelize.File, sheet domain.Sheet, titleStyle, dataStyle int) error {
	meta := [][]any{
		{"Group Name:", sheet.Name},
		{"Group Owner:", sheet.GroupOwner},
		{"Date:", sheet.Date.Format(dateLayout)},
	}
	for i, cells := range meta {
		if err := f.SetSheetRow(sheet.Name, fmt.Sprintf("A%d", i+1), &cells); err != nil {
			return fmt.Errorf("write metadata row: %w", err)
		}
	}

	if err := f.SetSheetRow(sheet.Name, fmt.Sprintf("A%d", TitleRow), &titleCells); err != nil {
		return fmt.Errorf("write title row: %w", err)
	}
	if err := f.SetCellStyle(sheet.Name, fmt.Sprintf("A%d", TitleRow), fmt.Sprintf("F%d", TitleRow), titleStyle); err != nil {
		return fmt.Errorf("style title row: %w", err)
	}

	for i, user := range sheet.Users {
		row := DataStartRow + i
		cells := userCells(user)
		if err := f.SetSheetRow(sheet.Name, fmt.Sprintf("A%d", row), &cells); err != nil {
			return fmt.Errorf("write data row %d: %w", row, err)
		}
		if err := f.SetCellStyle(sheet.Name, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle); err != nil {
			return fmt.Errorf("style data row %d: %w", row, err)
		}
	}

	return nil
}

func userCells(user domain.User) []any {
	modifiedBy := ""
	if user.ModifiedBy != nil {
		modifiedBy = *user.ModifiedBy
	}
	modifiedDate := ""
	if user.ModifiedDate != nil {
		modifiedDate = user.ModifiedDate.Format(timestampLayout)
	}

	return []any{
		user.Name,
		user.Email,
		user.CreatedBy,
		user.CreatedDate.Format(timestampLayout),
		modifiedBy,
		modifiedDate,
	}
}

func thinBorders() []excelize.Border {
	sides := []string{"top", "bottom", "left", "right"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		borders = append(borders, excelize.Border{Type: side, Style: 1, Color: "000000"})
	}
	return borders
}
