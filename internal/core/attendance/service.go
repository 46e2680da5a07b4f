package attendance

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock は構成されたローカルタイムゾーンにおける現在時刻を提供します。
// 営業日の境界はこの時刻のカレンダー日付で決まります。
type Clock interface {
	Now() time.Time
}

type zoneClock struct {
	loc *time.Location
}

// NewZoneClock は指定ロケーションの現在時刻を返す Clock を生成します。
func NewZoneClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return zoneClock{loc: loc}
}

func (c zoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// BranchResolver はデバイス識別子からブランチ名を解決します。
// 未登録デバイスは番兵ブランチ名に解決され、エラーにはなりません。
type BranchResolver interface {
	Resolve(ctx context.Context, deviceIP string, deviceSerial int64) (string, error)
}

// Notifier は確定したチェックイン・チェックアウトを外部チャネルへ通知します。
// 通知の失敗がイベント処理を失敗させてはなりません。
type Notifier interface {
	NotifyCheckIn(ctx context.Context, employeeName, branchName string, at TimeOfDay)
	NotifyCheckOut(ctx context.Context, employeeName, branchName string, at TimeOfDay, totalHours float64)
}

type noopNotifier struct{}

func (noopNotifier) NotifyCheckIn(context.Context, string, string, TimeOfDay) {}

func (noopNotifier) NotifyCheckOut(context.Context, string, string, TimeOfDay, float64) {}

// Status はイベント処理結果の大分類です。
type Status string

const (
	StatusSuccess Status = "success"
	StatusIgnored Status = "ignored"
)

// Action は成功時に実行された遷移を表します。
type Action string

const (
	ActionCheckIn  Action = "check_in"
	ActionCheckOut Action = "check_out"
)

// Reason は無視されたイベントの業務上の理由を表します。
type Reason string

const (
	ReasonNoName            Reason = "no_name"
	ReasonNotAccessEvent    Reason = "not_access_event"
	ReasonDuplicateCheckIn  Reason = "duplicate_check_in"
	ReasonAlreadyCheckedOut Reason = "already_checked_out"
)

// Result はイベント 1 件の処理結果です。
type Result struct {
	ReceiptID  string
	Status     Status
	Action     Action
	Reason     Reason
	Time       string
	Branch     string
	Employee   string
	TotalHours float64
}

// DefaultDuplicateWindow は重複チェックイン抑止の既定ウィンドウです。
const DefaultDuplicateWindow = 3 * time.Minute

// Service はイベント分類と勤怠状態遷移のユースケースをまとめます。
type Service struct {
	repo     Repository
	branches BranchResolver
	notifier Notifier
	clock    Clock
	tx       TransactionManager
	window   time.Duration
}

// UseCase はイベント処理ユースケースの公開インターフェースです。
type UseCase interface {
	ProcessEvent(ctx context.Context, ev *DeviceEvent) (*Result, error)
}

// NewService は Service を生成します。notifier・clock・tx は nil の場合に
// それぞれ無操作実装・既定タイムゾーンの時計・無トランザクションとなります。
func NewService(repo Repository, branches BranchResolver, notifier Notifier, clock Clock, tx TransactionManager, window time.Duration) *Service {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if clock == nil {
		clock = NewZoneClock(time.UTC)
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if window <= 0 {
		window = DefaultDuplicateWindow
	}
	return &Service{repo: repo, branches: branches, notifier: notifier, clock: clock, tx: tx, window: window}
}

// ProcessEvent は生イベント 1 件をレジャーへ適用します。
// 名前なし・非入退室イベント・重複・チェックアウト済みは ignored として
// 正常終了し、ストレージ障害のみがエラーとして返却されます。
func (s *Service) ProcessEvent(ctx context.Context, ev *DeviceEvent) (*Result, error) {
	if ev == nil {
		return nil, ErrMalformedEvent
	}

	receipt := uuid.NewString()

	name := strings.TrimSpace(ev.AccessControllerEvent.Name)
	if name == "" {
		return &Result{ReceiptID: receipt, Status: StatusIgnored, Reason: ReasonNoName}, nil
	}

	branchName, err := s.branches.Resolve(ctx, ev.IPAddress, ev.AccessControllerEvent.SerialNo)
	if err != nil {
		return nil, err
	}

	if ev.AccessControllerEvent.MajorEventType != MajorEventAccessGranted {
		return &Result{
			ReceiptID: receipt,
			Status:    StatusIgnored,
			Reason:    ReasonNotAccessEvent,
			Branch:    branchName,
			Employee:  name,
		}, nil
	}

	now := s.clock.Now()
	today := DateOf(now)
	nowTime := NewTimeOfDay(now)

	var result *Result
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		applied, err := s.apply(txCtx, branchName, today, name, ev.DeviceIdentity(), nowTime, receipt)
		if err != nil {
			return err
		}
		result = applied
		return nil
	}); err != nil {
		return nil, err
	}

	s.notify(ctx, result)
	return result, nil
}

// apply は (branch, day, employee) キーに対する 1 回の読み取り・条件付き書き込み
// シーケンスです。挿入競合に敗れた場合は勝者のレコードに対して遷移をやり直します。
func (s *Service) apply(ctx context.Context, branchName string, day time.Time, name, identity string, now TimeOfDay, receipt string) (*Result, error) {
	record, err := s.repo.Find(ctx, branchName, day, name)
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return nil, err
	}

	if record == nil {
		fresh := &Record{
			BranchName:     branchName,
			WorkDate:       day,
			EmployeeName:   name,
			CheckIn:        now,
			Present:        true,
			DeviceIdentity: identity,
		}
		switch err := s.repo.Insert(ctx, fresh); {
		case err == nil:
			return &Result{
				ReceiptID: receipt,
				Status:    StatusSuccess,
				Action:    ActionCheckIn,
				Time:      now.String(),
				Branch:    branchName,
				Employee:  name,
			}, nil
		case errors.Is(err, ErrRecordAlreadyExists):
			record, err = s.repo.Find(ctx, branchName, day, name)
			if err != nil {
				return nil, err
			}
		default:
			return nil, err
		}
	}

	if record.CheckedOut() {
		return &Result{
			ReceiptID: receipt,
			Status:    StatusIgnored,
			Reason:    ReasonAlreadyCheckedOut,
			Branch:    branchName,
			Employee:  name,
		}, nil
	}

	elapsed := ElapsedSince(record.CheckIn, now)
	if elapsed < s.window {
		return &Result{
			ReceiptID: receipt,
			Status:    StatusIgnored,
			Reason:    ReasonDuplicateCheckIn,
			Branch:    branchName,
			Employee:  name,
		}, nil
	}

	hours := RoundHours(elapsed)
	updated, err := s.repo.SetCheckOut(ctx, branchName, day, name, now, hours)
	if err != nil {
		return nil, err
	}
	if !updated {
		// 競合する要求が先にチェックアウトを記録した場合
		return &Result{
			ReceiptID: receipt,
			Status:    StatusIgnored,
			Reason:    ReasonAlreadyCheckedOut,
			Branch:    branchName,
			Employee:  name,
		}, nil
	}

	return &Result{
		ReceiptID:  receipt,
		Status:     StatusSuccess,
		Action:     ActionCheckOut,
		Time:       now.String(),
		Branch:     branchName,
		Employee:   name,
		TotalHours: hours,
	}, nil
}

func (s *Service) notify(ctx context.Context, result *Result) {
	if result == nil || result.Status != StatusSuccess {
		return
	}

	at, err := ParseTimeOfDay(result.Time)
	if err != nil {
		return
	}

	switch result.Action {
	case ActionCheckIn:
		s.notifier.NotifyCheckIn(ctx, result.Employee, result.Branch, at)
	case ActionCheckOut:
		s.notifier.NotifyCheckOut(ctx, result.Employee, result.Branch, at, result.TotalHours)
	}
}
