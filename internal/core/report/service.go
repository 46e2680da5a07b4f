package report

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/ahsan757/attendance/internal/core/attendance"
	"github.com/ahsan757/attendance/internal/core/branch"
)

// BranchLister は既知の全ブランチを列挙する読取ポートです。
type BranchLister interface {
	List(ctx context.Context) ([]*branch.Branch, error)
}

// Ledger は勤怠レジャーのパーティション読取ポートです。
type Ledger interface {
	ListPartition(ctx context.Context, branchName string, date time.Time) ([]*attendance.Record, error)
}

// Service はレジャーを横断して日次・週次・月次のレポートを構築します。
type Service struct {
	branches BranchLister
	ledger   Ledger
}

// UseCase はレポート集計の公開インターフェースです。
type UseCase interface {
	Daily(ctx context.Context, date time.Time, branchName string) (*DailyReport, error)
	Weekly(ctx context.Context, end time.Time, branchName string) (*WeeklyReport, error)
	Monthly(ctx context.Context, year int, month time.Month, branchName string) (*MonthlyReport, error)
}

// NewService は Service を生成します。
func NewService(branches BranchLister, ledger Ledger) *Service {
	return &Service{branches: branches, ledger: ledger}
}

// Daily は指定日の全レコードを平坦な行リストとして返します。
func (s *Service) Daily(ctx context.Context, date time.Time, branchName string) (*DailyReport, error) {
	names, err := s.branchNames(ctx, branchName)
	if err != nil {
		return nil, err
	}

	rows, err := s.collect(ctx, names, []time.Time{attendance.DateOf(date)})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	return &DailyReport{Date: attendance.DateOf(date), BranchFilter: branchName, Rows: rows}, nil
}

// Weekly は end を含む直近 7 日分の行リストと従業員・ブランチ集計を返します。
func (s *Service) Weekly(ctx context.Context, end time.Time, branchName string) (*WeeklyReport, error) {
	names, err := s.branchNames(ctx, branchName)
	if err != nil {
		return nil, err
	}

	endDay := attendance.DateOf(end)
	start := endDay.AddDate(0, 0, -6)
	days := make([]time.Time, 0, 7)
	for day := start; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	rows, err := s.collect(ctx, names, days)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	employees, branches := summarize(rows)
	return &WeeklyReport{
		Start:     start,
		End:       endDay,
		Rows:      rows,
		Employees: employees,
		Branches:  branches,
	}, nil
}

// Monthly は暦月全体の行リストに出勤率を加えた集計を返します。
// 出勤率は 出勤日数 ÷ 月の日数 × 100 を小数第 2 位で丸めたものです。
func (s *Service) Monthly(ctx context.Context, year int, month time.Month, branchName string) (*MonthlyReport, error) {
	if month < time.January || month > time.December || year < 1 {
		return nil, ErrInvalidMonth
	}

	names, err := s.branchNames(ctx, branchName)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	days := make([]time.Time, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		days = append(days, time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	}

	rows, err := s.collect(ctx, names, days)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	employees, branches := summarize(rows)
	monthly := make([]MonthlyEmployeeSummary, 0, len(employees))
	for _, summary := range employees {
		percent := float64(summary.DaysPresent) / float64(daysInMonth) * 100
		monthly = append(monthly, MonthlyEmployeeSummary{
			Employee:          summary.Employee,
			Hours:             summary.Hours,
			DaysPresent:       summary.DaysPresent,
			AttendancePercent: math.Round(percent*100) / 100,
		})
	}

	return &MonthlyReport{
		Year:      year,
		Month:     month,
		Rows:      rows,
		Employees: monthly,
		Branches:  branches,
	}, nil
}

func (s *Service) branchNames(ctx context.Context, filter string) ([]string, error) {
	if filter != "" {
		return []string{filter}, nil
	}

	branches, err := s.branches.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(branches))
	for _, b := range branches {
		names = append(names, b.BranchName)
	}
	return names, nil
}

func (s *Service) collect(ctx context.Context, branchNames []string, days []time.Time) ([]Row, error) {
	var rows []Row
	for _, day := range days {
		for _, name := range branchNames {
			records, err := s.ledger.ListPartition(ctx, name, day)
			if err != nil {
				return nil, err
			}
			for _, record := range records {
				rows = append(rows, recordToRow(record, day))
			}
		}
	}
	return rows, nil
}

func recordToRow(record *attendance.Record, day time.Time) Row {
	checkOut := "N/A"
	if record.CheckOut != nil {
		checkOut = record.CheckOut.String()
	}

	status := "Absent"
	if record.Present {
		status = "Present"
	}

	return Row{
		Date:           day.Format(RowDateLayout),
		Day:            day.Weekday().String(),
		Branch:         record.BranchName,
		Employee:       record.EmployeeName,
		CheckIn:        record.CheckIn.String(),
		CheckOut:       checkOut,
		Hours:          record.TotalHours,
		Status:         status,
		DeviceIdentity: record.DeviceIdentity,
	}
}

// summarize は行リストから従業員別・ブランチ別の集計を作ります。
// 出勤日数は日付単位で重複を除いて数えます。
func summarize(rows []Row) ([]EmployeeSummary, []BranchSummary) {
	employeeHours := make(map[string]float64)
	employeeDays := make(map[string]map[string]struct{})
	branchHours := make(map[string]float64)
	branchStaff := make(map[string]map[string]struct{})

	for _, row := range rows {
		employeeHours[row.Employee] += row.Hours
		if row.Status == "Present" {
			if employeeDays[row.Employee] == nil {
				employeeDays[row.Employee] = make(map[string]struct{})
			}
			employeeDays[row.Employee][row.Date] = struct{}{}
		}

		branchHours[row.Branch] += row.Hours
		if branchStaff[row.Branch] == nil {
			branchStaff[row.Branch] = make(map[string]struct{})
		}
		branchStaff[row.Branch][row.Employee] = struct{}{}
	}

	employees := make([]EmployeeSummary, 0, len(employeeHours))
	for name, hours := range employeeHours {
		employees = append(employees, EmployeeSummary{
			Employee:    name,
			Hours:       math.Round(hours*100) / 100,
			DaysPresent: len(employeeDays[name]),
		})
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].Employee < employees[j].Employee })

	branches := make([]BranchSummary, 0, len(branchHours))
	for name, hours := range branchHours {
		branches = append(branches, BranchSummary{
			Branch:    name,
			Hours:     math.Round(hours*100) / 100,
			Employees: len(branchStaff[name]),
		})
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].Branch < branches[j].Branch })

	return employees, branches
}
