package attendance

import (
	"fmt"
	"time"
)

// DateLayout はパーティションキーおよび外部 API で用いる日付書式です。
const DateLayout = "02_01_2006"

// Record は 1 拠点・1 営業日・1 従業員の勤怠記録です。
// (BranchName, WorkDate, EmployeeName) が識別キーとなり、
// 1 日につき最大 1 回のチェックイン・チェックアウトを保持します。
type Record struct {
	BranchName     string
	WorkDate       time.Time
	EmployeeName   string
	CheckIn        TimeOfDay
	CheckOut       *TimeOfDay
	TotalHours     float64
	Present        bool
	DeviceIdentity string
}

// CheckedOut はその日のチェックアウトが完了しているかを返します。
func (r *Record) CheckedOut() bool {
	return r.CheckOut != nil
}

// PartitionKey は (ブランチ, 日付) からレジャーパーティションキーを導出します。
// レジャー・給与集計・レポートはすべてこの関数を通してキーを得ます。
func PartitionKey(branchName string, date time.Time) string {
	return fmt.Sprintf("%s_%s", branchName, date.Format(DateLayout))
}

// DateOf は時刻から同一ロケーションの 0 時ちょうどの日付を取り出します。
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
