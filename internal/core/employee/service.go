package employee

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Clock は現在時刻を提供します。入社日の既定値算出に使用します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Service は従業員プロファイルのユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
}

// UseCase は従業員プロファイルの公開インターフェースです。
type UseCase interface {
	UpsertEmployee(ctx context.Context, in UpsertEmployeeInput) (*Employee, error)
	GetEmployee(ctx context.Context, name string) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	DeleteEmployee(ctx context.Context, name string) error
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, clock: clock}
}

// UpsertEmployeeInput は従業員登録・更新時の入力です。
type UpsertEmployeeInput struct {
	Name       string
	HourlyRate decimal.Decimal
	Position   string
	Status     *Status
}

// UpsertEmployee は従業員プロファイルを name キーで登録または更新します。
// 役職は未指定なら DefaultPosition、入社日は当日、状態は active が既定です。
func (s *Service) UpsertEmployee(ctx context.Context, in UpsertEmployeeInput) (*Employee, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	if in.HourlyRate.IsNegative() {
		return nil, ErrInvalidHourlyRate
	}

	position := strings.TrimSpace(in.Position)
	if position == "" {
		position = DefaultPosition
	}

	status := StatusActive
	if in.Status != nil {
		if !isValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status = *in.Status
	}

	now := s.clock.Now()
	return s.repo.Upsert(ctx, &Employee{
		Name:        name,
		HourlyRate:  in.HourlyRate,
		Position:    position,
		JoiningDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Status:      status,
	})
}

// GetEmployee は従業員プロファイルを取得します。
func (s *Service) GetEmployee(ctx context.Context, name string) (*Employee, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrInvalidName
	}
	return s.repo.FindByName(ctx, trimmed)
}

// ListEmployees は全従業員プロファイルを返します。
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	return s.repo.List(ctx)
}

// DeleteEmployee はプロファイルのみを削除します。勤怠履歴には触れません。
func (s *Service) DeleteEmployee(ctx context.Context, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrInvalidName
	}
	return s.repo.Delete(ctx, trimmed)
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}
