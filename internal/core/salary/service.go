package salary

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahsan757/attendance/internal/core/attendance"
	"github.com/ahsan757/attendance/internal/core/branch"
	"github.com/ahsan757/attendance/internal/core/employee"
)

const periodLayout = "2006-01-02"

// EmployeeDirectory は給与計算が参照する従業員プロファイルの読取ポートです。
type EmployeeDirectory interface {
	FindByName(ctx context.Context, name string) (*employee.Employee, error)
}

// BranchLister は既知の全ブランチを列挙する読取ポートです。
type BranchLister interface {
	List(ctx context.Context) ([]*branch.Branch, error)
}

// Ledger は勤怠レジャーの読取ポートです。
type Ledger interface {
	Find(ctx context.Context, branchName string, date time.Time, employeeName string) (*attendance.Record, error)
}

// Result は 1 従業員の給与計算結果です。
type Result struct {
	EmployeeName string
	HourlyRate   decimal.Decimal
	TotalHours   float64
	DaysPresent  int
	TotalPay     decimal.Decimal
	Period       string
}

// Service は勤怠レジャーを読み戻して給与を算出します。
type Service struct {
	employees EmployeeDirectory
	branches  BranchLister
	ledger    Ledger
}

// UseCase は給与計算の公開インターフェースです。
type UseCase interface {
	Calculate(ctx context.Context, employeeName string, start, end time.Time) (*Result, error)
}

// NewService は Service を生成します。
func NewService(employees EmployeeDirectory, branches BranchLister, ledger Ledger) *Service {
	return &Service{employees: employees, branches: branches, ledger: ledger}
}

// Calculate は期間内の全カレンダー日 × 全ブランチのレジャーを照会し、
// 勤務時間と出勤日数を積算して支払額を算出します。照会回数は
// (日数 × ブランチ数) ですが、給与期間は有界なので許容されます。
func (s *Service) Calculate(ctx context.Context, employeeName string, start, end time.Time) (*Result, error) {
	name := strings.TrimSpace(employeeName)
	if name == "" {
		return nil, ErrInvalidEmployeeName
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	profile, err := s.employees.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	branches, err := s.branches.List(ctx)
	if err != nil {
		return nil, err
	}

	var (
		totalHours  float64
		daysPresent int
	)

	for day := attendance.DateOf(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, b := range branches {
			record, err := s.ledger.Find(ctx, b.BranchName, day, name)
			if err != nil {
				if errors.Is(err, attendance.ErrRecordNotFound) {
					continue
				}
				return nil, err
			}
			totalHours += record.TotalHours
			daysPresent++
		}
	}

	totalHours = math.Round(totalHours*100) / 100
	totalPay := profile.HourlyRate.Mul(decimal.NewFromFloat(totalHours)).Round(2)

	return &Result{
		EmployeeName: name,
		HourlyRate:   profile.HourlyRate,
		TotalHours:   totalHours,
		DaysPresent:  daysPresent,
		TotalPay:     totalPay,
		Period:       fmt.Sprintf("%s to %s", start.Format(periodLayout), end.Format(periodLayout)),
	}, nil
}
