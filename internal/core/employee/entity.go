package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status は従業員の状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// DefaultPosition は役職未指定時の既定値です。
const DefaultPosition = "Employee"

// Employee は給与計算の参照元となる従業員プロファイルです。
// Name が一意キーで、勤怠レジャーのレコードとも名前で対応付きます。
type Employee struct {
	Name        string
	HourlyRate  decimal.Decimal
	Position    string
	JoiningDate time.Time
	Status      Status
}
