package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ahsan757/attendance/internal/core/attendance"
	"github.com/ahsan757/attendance/internal/core/report"
)

const (
	headerFillColor    = "366092"
	presentFillColor   = "C6EFCE"
	detailedSheetName  = "Detailed"
	employeeSheetName  = "Employee Summary"
	branchSheetName    = "Branch Summary"
	dailyDataStartRow  = 4
	dailyHeaderRowIdx  = 3
	detailDataStartRow = 2
)

type excelStyles struct {
	title   int
	header  int
	present int
	bold    int
}

func newExcelStyles(f *excelize.File) (*excelStyles, error) {
	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("render: title style: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("render: header style: %w", err)
	}

	present, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{presentFillColor}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("render: present style: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("render: bold style: %w", err)
	}

	return &excelStyles{title: title, header: header, present: present, bold: bold}, nil
}

// renderDailyExcel は元帳 1 日分を 1 シートに書き出します。タイトル行、
// 装飾付きヘッダ、Present 行のハイライト、末尾の集計ブロックを持ちます。
func renderDailyExcel(daily *report.DailyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance " + daily.Date.Format(attendance.DateLayout)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("render: rename sheet: %w", err)
	}

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	title := "Daily Attendance Report - " + daily.Date.Format("02 January 2006")
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, fmt.Errorf("render: title: %w", err)
	}
	if err := f.MergeCell(sheet, "A1", "G1"); err != nil {
		return nil, fmt.Errorf("render: merge title: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", styles.title); err != nil {
		return nil, fmt.Errorf("render: style title: %w", err)
	}

	if err := writeHeaderRow(f, sheet, dailyHeaderRowIdx, dailyHeaders, styles.header); err != nil {
		return nil, err
	}

	for i, row := range daily.Rows {
		rowIdx := dailyDataStartRow + i
		values := []any{row.Branch, row.Employee, row.CheckIn, row.CheckOut, row.Hours, row.Status, row.DeviceIdentity}
		if err := writeRow(f, sheet, rowIdx, values); err != nil {
			return nil, err
		}

		if row.Status == "Present" {
			cell, err := excelize.CoordinatesToCellName(6, rowIdx)
			if err != nil {
				return nil, fmt.Errorf("render: status cell: %w", err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, styles.present); err != nil {
				return nil, fmt.Errorf("render: style status: %w", err)
			}
		}
	}

	widths := []float64{20, 25, 12, 12, 12, 10, 15}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("render: column name: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, fmt.Errorf("render: column width: %w", err)
		}
	}

	if err := writeDailySummary(f, sheet, styles.bold, daily.Rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeDailySummary(f *excelize.File, sheet string, boldStyle int, rows []report.Row) error {
	var totalHours float64
	for _, row := range rows {
		totalHours += row.Hours
	}

	averageHours := 0.0
	if len(rows) > 0 {
		averageHours = totalHours / float64(len(rows))
	}

	start := dailyDataStartRow + len(rows) + 1
	cell := fmt.Sprintf("A%d", start)
	if err := f.SetCellValue(sheet, cell, "Summary:"); err != nil {
		return fmt.Errorf("render: summary label: %w", err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, boldStyle); err != nil {
		return fmt.Errorf("render: style summary label: %w", err)
	}

	entries := []struct {
		label string
		value any
	}{
		{"Total Employees:", len(rows)},
		{"Total Hours:", totalHours},
		{"Average Hours:", averageHours},
	}
	for i, entry := range entries {
		rowIdx := start + 1 + i
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), entry.label); err != nil {
			return fmt.Errorf("render: summary entry: %w", err)
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), entry.value); err != nil {
			return fmt.Errorf("render: summary value: %w", err)
		}
	}
	return nil
}

// renderWeeklyExcel は明細・従業員集計・ブランチ集計の 3 シート構成です。
func renderWeeklyExcel(weekly *report.WeeklyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", detailedSheetName); err != nil {
		return nil, fmt.Errorf("render: rename sheet: %w", err)
	}

	if err := writeHeaderRow(f, detailedSheetName, 1, weeklyHeaders, styles.header); err != nil {
		return nil, err
	}
	for i, row := range weekly.Rows {
		values := []any{row.Date, row.Day, row.Branch, row.Employee, row.CheckIn, row.CheckOut, row.Hours}
		if err := writeRow(f, detailedSheetName, detailDataStartRow+i, values); err != nil {
			return nil, err
		}
	}

	employeeRows := make([][]any, 0, len(weekly.Employees))
	for _, summary := range weekly.Employees {
		employeeRows = append(employeeRows, []any{summary.Employee, summary.Hours, summary.DaysPresent})
	}
	if err := writeSummarySheet(f, employeeSheetName, []string{"Employee", "Hours", "Days Present"}, employeeRows, styles.header); err != nil {
		return nil, err
	}

	if err := writeBranchSheet(f, weekly.Branches, styles.header); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// renderMonthlyExcel は週次と同じ 3 シート構成に出勤率列を加えます。
func renderMonthlyExcel(monthly *report.MonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", detailedSheetName); err != nil {
		return nil, fmt.Errorf("render: rename sheet: %w", err)
	}

	if err := writeHeaderRow(f, detailedSheetName, 1, monthlyHeaders, styles.header); err != nil {
		return nil, err
	}
	for i, row := range monthly.Rows {
		values := []any{row.Date, row.Branch, row.Employee, row.Hours, row.Status}
		if err := writeRow(f, detailedSheetName, detailDataStartRow+i, values); err != nil {
			return nil, err
		}
	}

	employeeRows := make([][]any, 0, len(monthly.Employees))
	for _, summary := range monthly.Employees {
		employeeRows = append(employeeRows, []any{summary.Employee, summary.Hours, summary.DaysPresent, summary.AttendancePercent})
	}
	if err := writeSummarySheet(f, employeeSheetName, []string{"Employee", "Hours", "Present Days", "Attendance %"}, employeeRows, styles.header); err != nil {
		return nil, err
	}

	if err := writeBranchSheet(f, monthly.Branches, styles.header); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeBranchSheet(f *excelize.File, branches []report.BranchSummary, headerStyle int) error {
	rows := make([][]any, 0, len(branches))
	for _, summary := range branches {
		rows = append(rows, []any{summary.Branch, summary.Hours, summary.Employees})
	}
	return writeSummarySheet(f, branchSheetName, []string{"Branch", "Hours", "Total Employees"}, rows, headerStyle)
}

func writeSummarySheet(f *excelize.File, name string, headers []string, rows [][]any, headerStyle int) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("render: new sheet %s: %w", name, err)
	}

	if err := writeHeaderRow(f, name, 1, headers, headerStyle); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeRow(f, name, detailDataStartRow+i, row); err != nil {
			return err
		}
	}
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, rowIdx int, headers []string, style int) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
		if err != nil {
			return fmt.Errorf("render: header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("render: header value: %w", err)
		}
	}

	first, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		return fmt.Errorf("render: header range: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), rowIdx)
	if err != nil {
		return fmt.Errorf("render: header range: %w", err)
	}
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("render: style header: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowIdx int, values []any) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
		if err != nil {
			return fmt.Errorf("render: data cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("render: data value: %w", err)
		}
	}
	return nil
}
