package service

import (
	"bytes"
	"flexwork/internal/domains/booking/model"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Bookings"

var header = []any{"Date", "User", "Team", "Type", "Status", "Reviewer", "Comment", "Created at"}

func row(booking model.Booking) []any {
	return []any{
		booking.Date,
		booking.UserName,
		booking.TeamID,
		string(booking.Type),
		booking.Status.String(),
		booking.ReviewerID,
		booking.Comment,
		booking.CreatedAt,
	}
}

// writeWorkbook renders one sheet with a bold header row followed by one row per booking.
func writeWorkbook(bookings []model.Booking) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := file.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	style, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err == nil {
		_ = file.SetRowStyle(sheetName, 1, 1, style)
	}

	for i, booking := range bookings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}

		values := row(booking)
		if err = file.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err = file.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err = file.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
