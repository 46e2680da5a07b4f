package attendance

import (
	"context"
	"time"
)

// Repository は勤怠レジャーの永続化を行うインターフェースです。
// パーティションは (branchName, date) で指定し、従業員名でレコードを特定します。
type Repository interface {
	// Find は該当パーティションの従業員レコードを取得します。
	// 存在しない場合は ErrRecordNotFound を返します。
	Find(ctx context.Context, branchName string, date time.Time, employeeName string) (*Record, error)
	// Insert は新規レコードを挿入します。同一キーのレコードが既に存在する
	// 場合は ErrRecordAlreadyExists を返し、既存レコードは変更しません。
	Insert(ctx context.Context, record *Record) error
	// SetCheckOut は未チェックアウトのレコードに限りチェックアウトを記録し、
	// 更新が行われたかどうかを返します。
	SetCheckOut(ctx context.Context, branchName string, date time.Time, employeeName string, checkOut TimeOfDay, totalHours float64) (bool, error)
	// ListPartition は該当パーティションの全レコードを返します。
	ListPartition(ctx context.Context, branchName string, date time.Time) ([]*Record, error)
}
