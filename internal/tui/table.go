package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

var recordHeaders = []string{"ID", "NAME", "TOTAL", "MALE SHARE", "FEMALE SHARE", "GAP"}

// RenderTable renders records as a bordered table followed by a row count.
// Columns other than the name are right-aligned.
func RenderTable(records []namesetl.NameRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Fields())
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers(recordHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderCellStyle
			case col == 1:
				return CellStyle
			default:
				return NumericCellStyle
			}
		})

	return t.Render() + "\n" + MutedStyle.Render(countLabel(len(records)))
}

func countLabel(n int) string {
	if n == 1 {
		return "1 record"
	}
	return fmt.Sprintf("%d records", n)
}
