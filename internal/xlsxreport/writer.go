package xlsxreport

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"majlis/internal/domain"
)

const sheetName = "Attendance"

// Register is the data needed to render an attendance register: every
// member as a row, every occasion as a column, plus a percentage column.
type Register struct {
	Members   []domain.Member
	Occasions []domain.Occasion
	// Marks is keyed by member then occasion. A missing entry is an
	// unmarked occasion and renders as absent.
	Marks map[uuid.UUID]map[uuid.UUID]bool
}

// WriteRegister renders the register as an xlsx workbook onto w.
func WriteRegister(w io.Writer, reg Register) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("xlsxreport: creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("xlsxreport: removing default sheet: %w", err)
	}

	header := []interface{}{"Member", "House"}
	for _, o := range reg.Occasions {
		header = append(header, fmt.Sprintf("%s (%s)", o.Title, o.Date.Format("2006-01-02")))
	}
	header = append(header, "Attendance %")
	if err := setRow(f, 1, header); err != nil {
		return err
	}

	for i, m := range reg.Members {
		row := []interface{}{m.Name + " " + m.Surname, string(m.HouseColor)}
		present := 0
		for _, o := range reg.Occasions {
			if reg.Marks[m.ID][o.ID] {
				present++
				row = append(row, "P")
			} else {
				row = append(row, "A")
			}
		}
		row = append(row, percentage(present, len(reg.Occasions)))
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsxreport: writing workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("xlsxreport: row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("xlsxreport: row %d: %w", row, err)
	}
	return nil
}

func percentage(present, total int) int {
	if total <= 0 {
		return 0
	}
	return (present*100 + total/2) / total
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition. Replaces
// non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition.
// Format: {sanitized_name}_{YYYY-MM-DD}.xlsx
func BuildFilename(name string) string {
	return fmt.Sprintf("%s_%s.xlsx", SanitizeFilename(name), time.Now().Format("2006-01-02"))
}
