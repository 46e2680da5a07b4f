// Package render は集計済みレポートを Excel・CSV ファイルへ書き出します。
package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/ahsan757/attendance/internal/core/attendance"
	"github.com/ahsan757/attendance/internal/core/report"
)

const (
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV   = "text/csv"
)

// Renderer は report.Renderer の excelize・encoding/csv 実装です。
type Renderer struct{}

// NewRenderer は Renderer を生成します。
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderDaily は日次レポートを指定形式で書き出します。
func (r *Renderer) RenderDaily(daily *report.DailyReport, format report.Format) (*report.File, error) {
	base := fmt.Sprintf("attendance_report%s_%s", branchSuffix(daily.BranchFilter), daily.Date.Format(attendance.DateLayout))

	switch format {
	case report.FormatCSV:
		data, err := writeCSV(dailyHeaders, dailyCSVRows(daily.Rows))
		if err != nil {
			return nil, err
		}
		return &report.File{Name: base + ".csv", ContentType: contentTypeCSV, Data: data}, nil
	case report.FormatExcel:
		data, err := renderDailyExcel(daily)
		if err != nil {
			return nil, err
		}
		return &report.File{Name: base + ".xlsx", ContentType: contentTypeExcel, Data: data}, nil
	default:
		return nil, fmt.Errorf("%w: %s", report.ErrInvalidFormat, format)
	}
}

// RenderWeekly は週次レポートを指定形式で書き出します。
func (r *Renderer) RenderWeekly(weekly *report.WeeklyReport, format report.Format) (*report.File, error) {
	base := fmt.Sprintf("weekly_report_%s_%s", weekly.Start.Format("02_01"), weekly.End.Format(attendance.DateLayout))

	switch format {
	case report.FormatCSV:
		data, err := writeCSV(weeklyHeaders, weeklyCSVRows(weekly.Rows))
		if err != nil {
			return nil, err
		}
		return &report.File{Name: base + ".csv", ContentType: contentTypeCSV, Data: data}, nil
	case report.FormatExcel:
		data, err := renderWeeklyExcel(weekly)
		if err != nil {
			return nil, err
		}
		return &report.File{Name: base + ".xlsx", ContentType: contentTypeExcel, Data: data}, nil
	default:
		return nil, fmt.Errorf("%w: %s", report.ErrInvalidFormat, format)
	}
}

// RenderMonthly は月次レポートを指定形式で書き出します。
func (r *Renderer) RenderMonthly(monthly *report.MonthlyReport, format report.Format) (*report.File, error) {
	base := fmt.Sprintf("monthly_report_%s_%d", monthly.Month.String(), monthly.Year)

	switch format {
	case report.FormatCSV:
		data, err := writeCSV(monthlyHeaders, monthlyCSVRows(monthly.Rows))
		if err != nil {
			return nil, err
		}
		return &report.File{Name: base + ".csv", ContentType: contentTypeCSV, Data: data}, nil
	case report.FormatExcel:
		data, err := renderMonthlyExcel(monthly)
		if err != nil {
			return nil, err
		}
		return &report.File{Name: base + ".xlsx", ContentType: contentTypeExcel, Data: data}, nil
	default:
		return nil, fmt.Errorf("%w: %s", report.ErrInvalidFormat, format)
	}
}

func branchSuffix(filter string) string {
	if filter == "" {
		return "_All_Branches"
	}
	return "_" + filter
}

var (
	dailyHeaders   = []string{"Branch", "Employee Name", "Check In", "Check Out", "Total Hours", "Status", "Device IP"}
	weeklyHeaders  = []string{"Date", "Day", "Branch", "Employee", "Check In", "Check Out", "Hours"}
	monthlyHeaders = []string{"Date", "Branch", "Employee", "Hours", "Status"}
)

func dailyCSVRows(rows []report.Row) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{
			row.Branch,
			row.Employee,
			row.CheckIn,
			row.CheckOut,
			formatHours(row.Hours),
			row.Status,
			row.DeviceIdentity,
		})
	}
	return out
}

func weeklyCSVRows(rows []report.Row) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{
			row.Date,
			row.Day,
			row.Branch,
			row.Employee,
			row.CheckIn,
			row.CheckOut,
			formatHours(row.Hours),
		})
	}
	return out
}

func monthlyCSVRows(rows []report.Row) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{
			row.Date,
			row.Branch,
			row.Employee,
			formatHours(row.Hours),
			row.Status,
		})
	}
	return out
}

func writeCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("render: write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("render: write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("render: flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 2, 64)
}
